// match.go — the matcher facade: realize → classify → resolve → invoke.
//
// A Matcher owns one input and performs no concurrent work of its own; the
// only asynchronous boundary is realization of a Pending, where When blocks
// until settlement. Concurrent unrelated When calls need no coordination.
//
// Per call: exactly one caller-supplied handler is invoked, exactly once.
// The Matcher realizes its input at most once; repeated When calls observe
// the same realized value and never re-invoke a producer.
package xgxmatch

import (
	"sync"
)

// Matcher dispatches one computation result against a Cases table.
// Construct with Match; the zero value matches a nil input.
type Matcher struct {
	input    any
	realized any
	once     sync.Once
}

// Match wraps an input for dispatch. It accepts, transparently:
//
//   - a ready value (anything, including an error or a tagged error),
//   - a synchronous producer: Producer, func() (any, error), or func() any,
//   - a pending result started earlier with Go.
//
// Production failures are captured and folded into classification rather
// than propagated raw (see realize.go).
func Match(input any) *Matcher {
	return &Matcher{input: input}
}

// When dispatches the realized input against cases and returns the selected
// handler's result.
//
// Resolution follows the fallback chain documented on Cases: a tagged input
// resolves to its tag case, then the "error" catch-all; a plain error to
// "error"; a plain value to "value", defaulting to pass-through. A handler's
// returned Pending is awaited before When finalizes, so asynchronous
// handlers compose.
//
// When fails with a DispatchError (unhandled_tag, unhandled_error,
// invalid_handler) when no valid handler covers the classified input; the
// Rethrow sentinel instead returns the classified input itself, unwrapped.
func (m *Matcher) When(cases Cases) (any, error) {
	m.once.Do(func() { m.realized = realize(m.input) })

	k, tag, errv := classify(m.realized)
	entry, key, ok := cases.resolve(k, tag)
	if !ok {
		switch k {
		case kindTagged:
			return nil, errUnhandledTag(tag, errv)
		case kindError:
			return nil, errUnhandledError(errv)
		default:
			// Pipe default: absence of "value" is never an error.
			return m.realized, nil
		}
	}

	out, err := apply(entry, key, k, errv, m.realized)
	if err != nil {
		return nil, err
	}
	// Await a pending result produced by the handler itself before
	// finalizing the outcome.
	if p, pending := out.(*Pending); pending {
		return p.Wait()
	}
	return out, nil
}

// MustWhen is When for call sites where a dispatch failure is a programming
// error: it panics on any error return, including Rethrow. Use sparingly —
// tests and top-level glue, not libraries.
func (m *Matcher) MustWhen(cases Cases) any {
	v, err := m.When(cases)
	if err != nil {
		panic(err)
	}
	return v
}
