package guard

// NotNil fails with ErrNilArgument when value is nil; otherwise it returns
// value so the call can be bound inline:
//
//	conn, err := guard.NotNil("conn", conn)
func NotNil[T any](name string, value *T, opts ...Option) (*T, error) {
	if value == nil {
		return nil, newError(ErrNilArgument, name, applyOptions(opts))
	}
	return value, nil
}

// NotNilFn evaluates fn exactly once and guards its result like NotNil.
// A nil fn fails with ErrNilArgument, since no value can be produced.
func NotNilFn[T any](name string, fn func() *T, opts ...Option) (*T, error) {
	if fn == nil {
		return nil, newError(ErrNilArgument, name, applyOptions(opts))
	}
	return NotNil(name, fn(), opts...)
}

// NotZero fails with ErrInvalidArgument when value equals the zero value of
// its type; otherwise it returns value.
func NotZero[T comparable](name string, value T, opts ...Option) (T, error) {
	var zero T
	if value == zero {
		return zero, newError(ErrInvalidArgument, name, applyOptions(opts))
	}
	return value, nil
}

// NotZeroFn evaluates fn exactly once and guards its result like NotZero.
// A nil fn fails with ErrNilArgument.
func NotZeroFn[T comparable](name string, fn func() T, opts ...Option) (T, error) {
	if fn == nil {
		var zero T
		return zero, newError(ErrNilArgument, name, applyOptions(opts))
	}
	return NotZero(name, fn(), opts...)
}
