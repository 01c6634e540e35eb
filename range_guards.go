package guard

// Min fails with ErrOutOfRange when value is strictly less than min. The
// error carries the offending value. Values equal to min pass.
func Min[T Ordered](name string, value, min T, opts ...Option) (T, error) {
	if lessThan(value, min) {
		var zero T
		return zero, newRangeError(name, value, applyOptions(opts))
	}
	return value, nil
}

// Max fails with ErrOutOfRange when value is strictly greater than max.
// Values equal to max pass.
func Max[T Ordered](name string, value, max T, opts ...Option) (T, error) {
	if greaterThan(value, max) {
		var zero T
		return zero, newRangeError(name, value, applyOptions(opts))
	}
	return value, nil
}

// InRange fails with ErrOutOfRange unless min <= value <= max. Both bounds
// are inclusive.
func InRange[T Ordered](name string, value, min, max T, opts ...Option) (T, error) {
	if outOfRange(value, min, max) {
		var zero T
		return zero, newRangeError(name, value, applyOptions(opts))
	}
	return value, nil
}

// MinFn evaluates fn exactly once and guards its result like Min.
// A nil fn fails with ErrNilArgument.
func MinFn[T Ordered](name string, fn func() T, min T, opts ...Option) (T, error) {
	if fn == nil {
		var zero T
		return zero, newError(ErrNilArgument, name, applyOptions(opts))
	}
	return Min(name, fn(), min, opts...)
}

// MaxFn evaluates fn exactly once and guards its result like Max.
// A nil fn fails with ErrNilArgument.
func MaxFn[T Ordered](name string, fn func() T, max T, opts ...Option) (T, error) {
	if fn == nil {
		var zero T
		return zero, newError(ErrNilArgument, name, applyOptions(opts))
	}
	return Max(name, fn(), max, opts...)
}

// InRangeFn evaluates fn exactly once and guards its result like InRange.
// A nil fn fails with ErrNilArgument.
func InRangeFn[T Ordered](name string, fn func() T, min, max T, opts ...Option) (T, error) {
	if fn == nil {
		var zero T
		return zero, newError(ErrNilArgument, name, applyOptions(opts))
	}
	return InRange(name, fn(), min, max, opts...)
}

// OptionalMin permits a nil value: the guard passes without evaluating the
// bound. A present value requires a present bound; a nil min fails with
// ErrNilArgument, a violated bound with ErrOutOfRange.
func OptionalMin[T Ordered](name string, value, min *T, opts ...Option) (*T, error) {
	if value == nil {
		return nil, nil
	}
	if min == nil {
		return nil, newError(ErrNilArgument, name, applyOptions(opts))
	}
	if lessThan(*value, *min) {
		return nil, newRangeError(name, *value, applyOptions(opts))
	}
	return value, nil
}

// OptionalMax is the upper-bound counterpart of OptionalMin.
func OptionalMax[T Ordered](name string, value, max *T, opts ...Option) (*T, error) {
	if value == nil {
		return nil, nil
	}
	if max == nil {
		return nil, newError(ErrNilArgument, name, applyOptions(opts))
	}
	if greaterThan(*value, *max) {
		return nil, newRangeError(name, *value, applyOptions(opts))
	}
	return value, nil
}

// OptionalInRange permits a nil value; a present value requires both bounds
// and must satisfy min <= value <= max inclusive.
func OptionalInRange[T Ordered](name string, value, min, max *T, opts ...Option) (*T, error) {
	if value == nil {
		return nil, nil
	}
	if min == nil || max == nil {
		return nil, newError(ErrNilArgument, name, applyOptions(opts))
	}
	if outOfRange(*value, *min, *max) {
		return nil, newRangeError(name, *value, applyOptions(opts))
	}
	return value, nil
}

// RequiredMin is OptionalMin with a mandatory value: a nil value fails with
// ErrNilArgument instead of passing.
func RequiredMin[T Ordered](name string, value, min *T, opts ...Option) (*T, error) {
	if value == nil {
		return nil, newError(ErrNilArgument, name, applyOptions(opts))
	}
	return OptionalMin(name, value, min, opts...)
}

// RequiredMax is OptionalMax with a mandatory value.
func RequiredMax[T Ordered](name string, value, max *T, opts ...Option) (*T, error) {
	if value == nil {
		return nil, newError(ErrNilArgument, name, applyOptions(opts))
	}
	return OptionalMax(name, value, max, opts...)
}

// RequiredInRange is OptionalInRange with a mandatory value.
func RequiredInRange[T Ordered](name string, value, min, max *T, opts ...Option) (*T, error) {
	if value == nil {
		return nil, newError(ErrNilArgument, name, applyOptions(opts))
	}
	return OptionalInRange(name, value, min, max, opts...)
}
