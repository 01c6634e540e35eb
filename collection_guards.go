package guard

// NotEmptySlice fails with ErrInvalidArgument when value has no elements.
// Elements themselves are not inspected.
func NotEmptySlice[T any](name string, value []T, opts ...Option) ([]T, error) {
	if len(value) == 0 {
		return nil, newError(ErrInvalidArgument, name, applyOptions(opts))
	}
	return value, nil
}

// NotEmptyMap fails with ErrInvalidArgument when value has no entries.
func NotEmptyMap[K comparable, V any](name string, value map[K]V, opts ...Option) (map[K]V, error) {
	if len(value) == 0 {
		return nil, newError(ErrInvalidArgument, name, applyOptions(opts))
	}
	return value, nil
}
