// Package guard provides fail-fast, guard-clause style precondition checks
// for function arguments: nil, zero, empty, blank, range, UUID shape, and
// custom boolean conditions.
//
// Each guard inspects a single value and either returns it (so the call can
// be bound inline) or returns a structured *Error carrying the argument
// name, an optional message, the offending value for range failures, and
// optional diagnostic key/value details. Guards never panic and never
// aggregate: the first violated precondition is reported immediately.
//
// # Architecture
//
// Each source file groups a guard family (`string_guards.go`,
// `range_guards.go`, `condition_guards.go`, ...). Every guard is a pure
// function over its own arguments; the package holds no state, making all
// guards goroutine-safe without synchronization.
//
// Core building blocks:
//   - Error    – structured failure with name, message, value, and details
//   - Detail   – one diagnostic key/value pair, insertion order preserved
//   - Option   – functional options (WithMessage, WithDetail)
//   - Meaning  – polarity of condition guards (TrueIsInvalid, TrueIsValid)
//   - Ordered  – generic constraint used by the range guards
//
// # Usage
//
//	func NewClient(baseURL string, retries int, tags []string) (*Client, error) {
//		url, err := guard.NotBlank("baseURL", baseURL)
//		if err != nil {
//			return nil, err
//		}
//		if _, err := guard.InRange("retries", retries, 0, 10); err != nil {
//			return nil, err
//		}
//		if _, err := guard.NotEmptySlice("tags", tags, guard.WithDetail("source", "config")); err != nil {
//			return nil, err
//		}
//		return &Client{baseURL: url, retries: retries, tags: tags}, nil
//	}
//
// # Error Handling
//
// Failures are classified by four sentinels (ErrNilArgument,
// ErrInvalidArgument, ErrOutOfRange, ErrInvalidOperation) reachable through
// errors.Is. The full *Error is reachable through errors.As; its Details
// field holds the pairs supplied via WithDetail so outer handlers and
// loggers can inspect call-site context without re-deriving it.
//
// # Performance Considerations
//
// Passing guards allocate nothing. Deferred `*Fn` variants call their
// accessor exactly once; expensive value production should stay in the
// accessor so it is only paid when the guard actually runs.
package guard
