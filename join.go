// join.go — formatting-aware multi-error join.
//
// Goals:
//   • Preserve stdlib semantics for unwrapping & default string form:
//       - Unwrap() []error for tree traversal (errors.Is/As pre-order DFS),
//         which is also what classification and Tags walk.
//       - Error() == newline-joined child Error() strings (like errors.Join).
//   • Improve ergonomics for diagnostics:
//       - fmt.Formatter so "%+v" prints each child with its own "%+v"
//         (tags, payloads, causes, stacks) while "%v"/"%s" stay concise.
//
// Dispatch note: a joined error classifies as Tagged when any member carries
// a tag, resolving on the FIRST tag in pre-order — the same order errors.As
// uses. Use Tags to enumerate the rest.
package xgxmatch

import (
	"fmt"
	"strings"
)

// multi is a formatting-aware join that mirrors errors.Join for
// Error()/Unwrap() but also implements fmt.Formatter so "%+v" recurses.
type multi struct {
	errs []error // non-nil children only
}

// Error concatenates child Error() strings with newlines, identical to
// errors.Join.
func (m *multi) Error() string {
	if len(m.errs) == 0 {
		return ""
	}
	if len(m.errs) == 1 {
		return m.errs[0].Error()
	}
	sb := strings.Builder{}
	for i, e := range m.errs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// Unwrap exposes the children to stdlib traversal (errors.Is/As walk
// pre-order), and through it to classify/Tags/Walk.
func (m *multi) Unwrap() []error { return m.errs }

// Format implements fmt.Formatter.
//
//	%v, %s, %q  → render like Error() (concise, stdlib-compatible).
//	%+v         → recurse into children and render each with %+v.
func (m *multi) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			for i, e := range m.errs {
				if i > 0 {
					fmt.Fprint(s, "\n")
				}
				// Child may itself implement fmt.Formatter for %+v.
				fmt.Fprintf(s, "%+v", e)
			}
			return
		}
		formatConcise(s, m)
	case 's':
		formatConcise(s, m)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", m.Error())
	default:
		formatConcise(s, m)
	}
}

// Join returns an error that wraps the given errors, ignoring nils.
// Behavior:
//   • All nil → nil
//   • One non-nil → that error (identity preserved)
//   • 2+ non-nil → Unwrap() []error container; Error() newline-joins like
//     errors.Join; %+v prints full recursive details
func Join(errs ...error) error {
	nz := make([]error, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			nz = append(nz, e)
		}
	}
	switch len(nz) {
	case 0:
		return nil
	case 1:
		// Preserve identity for the ergonomic single-element case.
		return nz[0]
	default:
		return &multi{errs: nz}
	}
}
