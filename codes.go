// codes.go — dispatch failure codes & the DispatchError type.
//
// Intent:
//   - Classify the ways a When call itself can fail, as opposed to the
//     domain failures it dispatches on.
//   - Keep semantics open-ended: no HTTP/status/retry policy in core.
//   - Always carry the offending tag or case key for diagnosis.
//
// Conventions (documented, not enforced here):
//   - Codes are lowercase snake_case ASCII.
//   - The empty string is never a built-in code.
package xgxmatch

import (
	"errors"
	"fmt"
)

// Code classifies dispatch failures into machine-readable categories.
type Code string

// Dispatch failures.
const (
	// CodeUnhandledTag: a tagged input's tag has neither a direct case nor
	// an "error" fallback.
	CodeUnhandledTag Code = "unhandled_tag"

	// CodeUnhandledError: a plain-error input has no "error" case.
	CodeUnhandledError Code = "unhandled_error"

	// CodeInvalidHandler: the selected case value is neither a handler
	// function nor a sentinel valid for that branch.
	CodeInvalidHandler Code = "invalid_handler"

	// CodeProducerPanic: a producer panicked with a non-error value; the
	// value is preserved as the wrapper's payload.
	CodeProducerPanic Code = "producer_panic"
)

// allBuiltinCodes is the ordered set of codes the core ships with.
// Unexported to avoid exposing mutable slice identity to callers.
var allBuiltinCodes = []Code{
	CodeUnhandledTag,
	CodeUnhandledError,
	CodeInvalidHandler,
	CodeProducerPanic,
}

// builtinCodeSet provides O(1) membership checks for built-ins.
var builtinCodeSet = map[Code]struct{}{
	CodeUnhandledTag:   {},
	CodeUnhandledError: {},
	CodeInvalidHandler: {},
	CodeProducerPanic:  {},
}

// BuiltinCodes returns a defensive copy of the built-in codes in a stable order.
func BuiltinCodes() []Code {
	out := make([]Code, len(allBuiltinCodes))
	copy(out, allBuiltinCodes)
	return out
}

// IsBuiltin reports whether c is one of the built-in core codes.
func (c Code) IsBuiltin() bool {
	_, ok := builtinCodeSet[c]
	return ok
}

// -----------------------------------------------------------------------------
// DispatchError — a failure of the dispatch itself
// -----------------------------------------------------------------------------

// DispatchError reports that a When call could not complete: no case covered
// the classified input, the selected case held garbage, or a producer
// panicked with a non-error value. It always names the offending key.
type DispatchError struct {
	code  Code
	key   string // offending tag or case key ("" for producer panics)
	val   any    // offending handler value or recovered panic value
	cause error  // classified input, when error-shaped
	stk   Stack  // captured at the recovery boundary for producer panics
}

func (e *DispatchError) Error() string {
	switch e.code {
	case CodeUnhandledTag:
		return fmt.Sprintf("unhandled_tag: no case for tag %q and no \"error\" fallback", e.key)
	case CodeUnhandledError:
		return fmt.Sprintf("unhandled_error: no \"error\" case for %v", e.cause)
	case CodeInvalidHandler:
		return fmt.Sprintf("invalid_handler: case %q holds %T, want a handler func or a sentinel valid for this branch", e.key, e.val)
	case CodeProducerPanic:
		return fmt.Sprintf("producer_panic: %v", e.val)
	}
	return string(e.code)
}

// CodeVal returns the failure classification.
func (e *DispatchError) CodeVal() Code { return e.code }

// Key returns the offending tag or case key ("" when not applicable).
func (e *DispatchError) Key() string { return e.key }

// Unwrap exposes the classified input (if error-shaped) to errors.Is/As, so
// callers can still reach the original failure behind an unhandled dispatch.
func (e *DispatchError) Unwrap() error { return e.cause }

func errUnhandledTag(tag Tag, input error) *DispatchError {
	return &DispatchError{code: CodeUnhandledTag, key: string(tag), cause: input}
}

func errUnhandledError(input error) *DispatchError {
	return &DispatchError{code: CodeUnhandledError, key: KeyError, cause: input}
}

func errInvalidHandler(key string, got any) *DispatchError {
	return &DispatchError{code: CodeInvalidHandler, key: key, val: got}
}

// errProducerPanic wraps a non-error panic value recovered during
// realization. The skip accounts for the recovery helper's frames.
func errProducerPanic(recovered any) *DispatchError {
	return &DispatchError{
		code: CodeProducerPanic,
		val:  recovered,
		stk:  captureStackDefault(1),
	}
}

// -----------------------------------------------------------------------------
// Predicates — nil-safe, errors.As-based
// -----------------------------------------------------------------------------

// CodeOf returns the first discovered Code along err's chain, or "" if none.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var cv interface{ CodeVal() Code }
	if errors.As(err, &cv) {
		return cv.CodeVal()
	}
	return ""
}

// IsUnhandledTag reports whether err is (or wraps) an unhandled-tag failure.
func IsUnhandledTag(err error) bool { return CodeOf(err) == CodeUnhandledTag }

// IsUnhandledError reports whether err is (or wraps) an unhandled-error failure.
func IsUnhandledError(err error) bool { return CodeOf(err) == CodeUnhandledError }

// IsInvalidHandler reports whether err is (or wraps) an invalid-handler failure.
func IsInvalidHandler(err error) bool { return CodeOf(err) == CodeInvalidHandler }

var _ error = (*DispatchError)(nil)
