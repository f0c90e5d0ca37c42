// Package xgxmatch defines the tagged-error and dispatch model used across
// xgx projects. It focuses on precise variant classification and declarative
// per-variant handling, while remaining perfectly interoperable with the Go
// standard library.
//
// Design tenets:
//   - Interop-first: play nicely with errors.Is/As and errors.Join.
//   - Minimal surface: no logging/HTTP/JSON in core.
//   - Non-mutating ergonomics: fluent builders return a new value.
//   - One value, one handler: every When call invokes exactly one handler.
//
// Implementations SHOULD:
//   - Keep fluent methods non-mutating (copy-on-write).
//   - Implement Unwrap() error so stdlib traversal (errors.Is/As) observes
//     full causal chains, including tags buried under wrapping.
//
// See: errors.Is / errors.As / errors.Join contracts in the Go standard library.
package xgxmatch

// Tag is the immutable string discriminant identifying a concrete error
// variant.
//
// Tags are stringly-typed for stability across serialization boundaries and
// to avoid a central enum with breaking changes. Projects define their own
// tags via Define; the core does not reserve semantics here.
type Tag string

// TaggedError is the minimal, fluent, interop-friendly contract for an
// error-bearing value carrying a tag.
//
// All fluent methods MUST be non-mutating: they return a new TaggedError
// value (copy-on-write) and MUST NOT alter the receiver state. This
// guarantees thread-safety for shared error values without external
// synchronization.
//
// Classification is a capability check, not inheritance: any error whose
// unwrap chain exposes TagVal() Tag dispatches as a tagged variant, with the
// first such tag along the chain winning.
type TaggedError interface {
	// error provides the canonical message string. Keep it concise; rich
	// export (JSON, structured logs) belongs to adapters outside the core.
	error

	// TagVal returns the variant discriminant. It is fixed at Define time
	// and identical for every instance of one variant. The getter is named
	// TagVal to keep Tag free as the type name (and to avoid a fluent-setter
	// collision should one ever exist — tags have none on purpose).
	TagVal() Tag

	// Message returns the instance message without the tag prefix ("" when
	// constructed without one). Error() renders "tag: message".
	Message() string

	// With adds a single payload key-value field. Returns a NEW TaggedError.
	//
	// Example:
	//   err = err.With("elapsed_ms", 12.7)
	With(key string, val any) TaggedError

	// WithStack attaches a stack trace to this error. Returns a NEW
	// TaggedError. Stacks are captured lazily and only when requested.
	WithStack() TaggedError

	// WithStackSkip is like WithStack but allows skipping call frames
	// (e.g., helper wrappers). Returns a NEW TaggedError.
	WithStackSkip(skip int) TaggedError

	// Payload returns a shallow COPY of the variant's payload as a map.
	// The returned map is safe to mutate by callers without affecting the
	// stored payload (copy-on-read).
	Payload() map[string]any

	// Unwrap returns the causal parent error (if any) to enable stdlib
	// traversal via errors.Is/As. Instances that wrap nothing return nil.
	Unwrap() error
}

// tagCarrier is the minimal capability the resolver checks for: an error that
// reports a tag. TaggedError satisfies it; so does a Variant used directly as
// an input value.
type tagCarrier interface {
	error
	TagVal() Tag
}
