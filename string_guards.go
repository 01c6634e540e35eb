package guard

import "strings"

// NotEmpty fails with ErrInvalidArgument when value has zero length.
// A non-empty string of whitespace passes; use NotBlank to reject it.
func NotEmpty(name, value string, opts ...Option) (string, error) {
	if len(value) == 0 {
		return "", newError(ErrInvalidArgument, name, applyOptions(opts))
	}
	return value, nil
}

// NotBlank fails with ErrInvalidArgument when value is empty or consists
// only of whitespace.
func NotBlank(name, value string, opts ...Option) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", newError(ErrInvalidArgument, name, applyOptions(opts))
	}
	return value, nil
}

// NotEmptyFn evaluates fn exactly once and guards its result like NotEmpty.
// A nil fn fails with ErrNilArgument.
func NotEmptyFn(name string, fn func() string, opts ...Option) (string, error) {
	if fn == nil {
		return "", newError(ErrNilArgument, name, applyOptions(opts))
	}
	return NotEmpty(name, fn(), opts...)
}

// NotBlankFn evaluates fn exactly once and guards its result like NotBlank.
// A nil fn fails with ErrNilArgument.
func NotBlankFn(name string, fn func() string, opts ...Option) (string, error) {
	if fn == nil {
		return "", newError(ErrNilArgument, name, applyOptions(opts))
	}
	return NotBlank(name, fn(), opts...)
}

// NotNilOrEmpty fails with ErrNilArgument when value is nil and with
// ErrInvalidArgument when it points at an empty string.
func NotNilOrEmpty(name string, value *string, opts ...Option) (*string, error) {
	if value == nil {
		return nil, newError(ErrNilArgument, name, applyOptions(opts))
	}
	if _, err := NotEmpty(name, *value, opts...); err != nil {
		return nil, err
	}
	return value, nil
}

// NotNilOrBlank fails with ErrNilArgument when value is nil and with
// ErrInvalidArgument when it points at an empty or whitespace-only string.
func NotNilOrBlank(name string, value *string, opts ...Option) (*string, error) {
	if value == nil {
		return nil, newError(ErrNilArgument, name, applyOptions(opts))
	}
	if _, err := NotBlank(name, *value, opts...); err != nil {
		return nil, err
	}
	return value, nil
}

// OptionalNotEmpty permits a nil value; a present value must be non-empty or
// the guard fails with ErrInvalidArgument.
func OptionalNotEmpty(name string, value *string, opts ...Option) (*string, error) {
	if value == nil {
		return nil, nil
	}
	if _, err := NotEmpty(name, *value, opts...); err != nil {
		return nil, err
	}
	return value, nil
}

// OptionalNotBlank permits a nil value; a present value must contain at
// least one non-whitespace character or the guard fails with
// ErrInvalidArgument.
func OptionalNotBlank(name string, value *string, opts ...Option) (*string, error) {
	if value == nil {
		return nil, nil
	}
	if _, err := NotBlank(name, *value, opts...); err != nil {
		return nil, err
	}
	return value, nil
}
