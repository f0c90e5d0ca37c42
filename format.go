// format.go — fmt.Formatter implementations for tagged errors and dispatch
// failures.
//
// Behavior:
//
//   %s, %v   → concise string (Error()).
//   %+v      → verbose, structured multi-line format:
//                tag=<tag> msg="<message>"
//                payload: key1=val1 key2=val2 ...
//                cause: <recursively formatted with %+v>
//                stack:
//                  funcA file.go:123
//                  funcB other.go:45
//
// Rationale:
//   - Keep core free of logging/HTTP/JSON policy; only fmt formatting.
//   - Deterministic payload order via []Field from payload.go.
//   - Defer cause formatting to fmt with %+v to preserve nested details.
package xgxmatch

import (
	"fmt"
	"io"
)

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, e.Error())
}

// formatVerbose writes a structured multi-line representation.
// If stk is nil/empty, the stack section is omitted.
// If cause is non-nil, it is formatted with %+v to recurse verbosely.
func formatVerbose(w io.Writer, head string, pl fields, cause error, stk Stack) {
	_, _ = io.WriteString(w, head)

	// Payload (ordered, space-separated key=val)
	if len(pl) > 0 {
		_, _ = io.WriteString(w, "\npayload:")
		for _, f := range pl {
			if f.Key != "" {
				_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
			}
		}
	}

	if cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		// Recurse with %+v so nested payloads/stacks render if available.
		_, _ = fmt.Fprintf(w, "%+v", cause)
	}

	// Stack frames (most recent first)
	if len(stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}

// -----------------------------------------------------------------------------
// taggedErr formatting
// -----------------------------------------------------------------------------

func (e *taggedErr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			head := fmt.Sprintf("tag=%s msg=%q", e.tag, e.msg)
			formatVerbose(s, head, e.pl, e.cause, e.stk)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}

// -----------------------------------------------------------------------------
// DispatchError formatting
// -----------------------------------------------------------------------------

func (e *DispatchError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			head := fmt.Sprintf("code=%s key=%q", e.code, e.key)
			if e.code == CodeInvalidHandler || e.code == CodeProducerPanic {
				head += fmt.Sprintf(" val=%v", e.val)
			}
			formatVerbose(s, head, nil, e.cause, e.stk)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}
