package guard

// options collects the optional error metadata accepted by every guard.
type options struct {
	message string
	details []Detail
}

// Option customizes the error a guard produces on failure. Options have no
// effect on a passing guard.
type Option func(*options)

// WithMessage attaches a human-readable explanation to the error.
// Blank messages are ignored.
func WithMessage(message string) Option {
	return func(o *options) {
		o.message = message
	}
}

// WithDetail appends one diagnostic key/value pair to the error. Pairs are
// kept in the order they were supplied.
func WithDetail(key string, value any) Option {
	return func(o *options) {
		o.details = append(o.details, Detail{Key: key, Value: value})
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
