// doc.go — package documentation for xgx-match
//
// Package xgxmatch provides a tiny, policy-free tagged-error and dispatch
// core: declare closed families of error variants distinguished by a string
// tag, then replace ad-hoc failure branching with a declarative case table
// resolved against exactly one of {tagged error, plain error, plain value}.
// It is designed to be:
//   - Ergonomic at call sites (small surface, clear semantics)
//   - Interoperable with the stdlib (errors.Is/As/Join, fmt.Formatter)
//   - Policy-free (no HTTP/logging/retry rules in core)
//
// # Variants and Tags
//
// A variant is declared once with Define; every instance it constructs
// reports the same immutable tag:
//
//	var ErrTimeout = xgxmatch.Define("TimeoutError")
//
//	err := ErrTimeout.New("upstream took too long").With("elapsed_ms", 1200)
//	errors.Is(err, ErrTimeout) // true — the Variant is the family sentinel
//
// A tagged error composes rather than inherits: it is an error-capable
// record carrying tag, message, optional cause, and payload. Classification
// is one capability check ("error-bearing value with a tag"), found through
// arbitrary wrapping via errors.As.
//
// # Dispatch
//
// Match wraps one computation result; When resolves it against a Cases
// table keyed by tags plus the reserved "error" and "value" entries:
//
//	out, err := xgxmatch.Match(do()).When(xgxmatch.Cases{
//	    "TimeoutError": func(e error) any { return retryLater(e) },
//	    "QuotaError":   xgxmatch.Ignore,
//	    xgxmatch.KeyError: xgxmatch.Rethrow,
//	    xgxmatch.KeyValue: func(v any) any { return v.(int) * 2 },
//	})
//
// The fallback chain is fixed: a tagged input uses its tag case, else the
// "error" catch-all (the handler then sees a bare error — an explicit opt-in
// to losing tag-specific narrowing), else When fails with unhandled_tag. A
// plain error uses "error" or fails with unhandled_error. A plain value uses
// "value" or passes through unchanged — the only branch with a non-failing
// default.
//
// # Sentinels
//
// Trivial handlers have named stand-ins: Ignore (discard, produce nil),
// Rethrow (return the classified input, unwrapped, as When's own error),
// and Pipe (identity, "value" only). Anything else under the selected key
// fails with invalid_handler — validated lazily, only for the case that
// actually fires.
//
// # Deferred Inputs
//
// Match also accepts producers, normalized to one realized value before
// classification:
//   - func() (any, error) / func() any — invoked exactly once; a returned
//     error or panicked error is used directly, a non-error panic value is
//     wrapped (code producer_panic, value preserved).
//   - *Pending from Go(producer) — started immediately; When blocks until
//     settlement, with the same rejection-wrapping rule.
//
// Captured production failures re-enter normal classification, so a
// producer that fails with a tagged error still dispatches on its tag.
//
// # Exhaustiveness
//
// Go has no closed-sum inference over string tags, so exhaustiveness is an
// authoring-time contract enforced in tests: CheckExhaustive(cases, vs...)
// reports the first variant lacking a case unless the "error" catch-all is
// present. Define feeds a process-wide registry (DefinedTags) for this.
//
// # Formatting
//
// Tagged errors and dispatch failures implement fmt.Formatter:
//   - %v, %s → concise, single-line Error()
//   - %+v    → verbose, multi-line (tag, msg, payload, cause, stack)
//   - %q     → quoted Error()
//
// Joining multiple errors: use Join for %+v-aware recursion; errors.Is/As
// and Tags traverse multi-error unwraps.
//
// # Concurrency
//
// The dispatcher performs no concurrent work of its own. All fluent builders
// are copy-on-write, a Pending settles exactly once for any number of
// waiters, and concurrent unrelated Match/When calls need no coordination.
// Cancellation is not a primitive: cancel the underlying work before handing
// it to Match.
//
// # Minimal Surface, Clear Semantics
//
// The v1 surface is intentionally small to remain ergonomic:
//   - Define / Variant constructors (New, NewKV, Errorf, Wrap)
//   - With / WithStack / WithStackSkip / Payload / Typed fields
//   - Match / When / MustWhen, Go / Pending
//   - Predicates (IsTagged, TagOf, HasTag, CodeOf, …) and CheckExhaustive
package xgxmatch
