package guard

// Ordered covers every type with a built-in total order, usable by the range
// guards. The comparison semantics are those of the underlying type; types
// without a total order (NaN floats) follow the language's comparison rules.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

func lessThan[T Ordered](value, min T) bool {
	return value < min
}

func greaterThan[T Ordered](value, max T) bool {
	return value > max
}

// outOfRange reports whether value falls outside the inclusive [min, max]
// interval. Values equal to either bound are in range.
func outOfRange[T Ordered](value, min, max T) bool {
	return value < min || value > max
}
