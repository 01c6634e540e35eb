package guard

// Meaning selects which boolean outcome a condition guard treats as invalid.
type Meaning uint8

const (
	// TrueIsInvalid fails the guard when the condition evaluates to true.
	// This is the zero value and the default polarity.
	TrueIsInvalid Meaning = iota

	// TrueIsValid fails the guard when the condition evaluates to false.
	TrueIsValid
)

// violated reports whether condition breaks the polarity rule. The two
// meanings are exact logical complements for every condition.
func (m Meaning) violated(condition bool) bool {
	return condition == (m == TrueIsInvalid)
}

// Argument fails with ErrInvalidArgument when condition disagrees with the
// given polarity:
//
//	err := guard.Argument("page", page < 0, guard.TrueIsInvalid)
func Argument(name string, condition bool, meaning Meaning, opts ...Option) error {
	if meaning.violated(condition) {
		return newError(ErrInvalidArgument, name, applyOptions(opts))
	}
	return nil
}

// ArgumentFn evaluates predicate exactly once and applies the polarity rule
// to its result. A nil predicate never fails.
func ArgumentFn(name string, predicate func() bool, meaning Meaning, opts ...Option) error {
	if predicate == nil {
		return nil
	}
	return Argument(name, predicate(), meaning, opts...)
}

// ArgumentValue applies predicate to value and the polarity rule to the
// result, returning value on success. A nil predicate never fails.
func ArgumentValue[T any](name string, value T, predicate func(T) bool, meaning Meaning, opts ...Option) (T, error) {
	if predicate == nil {
		return value, nil
	}
	if err := Argument(name, predicate(value), meaning, opts...); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

// Operation fails with ErrInvalidOperation when condition disagrees with the
// given polarity. Operation errors carry no argument name; they describe
// violated object or runtime state rather than a bad input.
func Operation(condition bool, meaning Meaning, opts ...Option) error {
	if meaning.violated(condition) {
		return newError(ErrInvalidOperation, "", applyOptions(opts))
	}
	return nil
}

// OperationFn evaluates predicate exactly once and guards its result like
// Operation. A nil predicate never fails.
func OperationFn(predicate func() bool, meaning Meaning, opts ...Option) error {
	if predicate == nil {
		return nil
	}
	return Operation(predicate(), meaning, opts...)
}
