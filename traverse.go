// traverse.go — unwrap-graph traversal for tag discovery.
//
// Scope (tiny core):
//   - Pre-order DFS over error graphs that cooperates with both classic
//     wrapping (Unwrap() error) and errors.Join (Unwrap() []error).
//   - Tags: all distinct tags in one error graph, in traversal order.
//
// Design notes (Go ≥1.20):
//   - errors.Unwrap only calls Unwrap() error; correct traversal must handle
//     both unwrap forms.
//   - A blanket map[error] "seen" set would panic on non-comparable dynamic
//     types, so cycle detection uses a dual guard: map[error] for comparable
//     dynamics and pointer identity for non-comparable pointers. Anything
//     else is treated as acyclic and bounded by the depth cap.
package xgxmatch

import (
	"reflect"
)

// single/multi unwrap interfaces (stdlib-compatible)
type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// walkMaxDepth caps traversal against runaway graphs.
const walkMaxDepth = 1 << 10

// markSeen returns true if err was newly marked, false if already seen.
func markSeen(err error, seenErr map[error]struct{}, seenPtr map[uintptr]struct{}) bool {
	if err == nil {
		return false
	}
	if reflect.TypeOf(err).Comparable() {
		if _, dup := seenErr[err]; dup {
			return false
		}
		seenErr[err] = struct{}{}
		return true
	}
	if rv := reflect.ValueOf(err); rv.Kind() == reflect.Ptr && !rv.IsNil() {
		id := rv.Pointer()
		if _, dup := seenPtr[id]; dup {
			return false
		}
		seenPtr[id] = struct{}{}
		return true
	}
	return true
}

// Walk traverses err's unwrap graph depth-first and calls visit for each
// distinct node in pre-order (visit before expanding children). If visit
// returns false, traversal stops early. Safe on cycles; nil is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	seenErr := make(map[error]struct{}, 8)
	seenPtr := make(map[uintptr]struct{}, 8)
	_ = markSeen(err, seenErr, seenPtr)

	stack := make([]error, 0, 8)
	stack = append(stack, err)
	steps := 0

	for len(stack) > 0 && steps < walkMaxDepth {
		steps++
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		// Expand children (multi first; push in reverse for L→R order).
		if m, ok := cur.(multiUnwrapper); ok {
			kids := m.Unwrap()
			for i := len(kids) - 1; i >= 0; i-- {
				if kids[i] == nil {
					continue
				}
				if markSeen(kids[i], seenErr, seenPtr) {
					stack = append(stack, kids[i])
				}
			}
			continue
		}
		if s, ok := cur.(singleUnwrapper); ok {
			if u := s.Unwrap(); u != nil && markSeen(u, seenErr, seenPtr) {
				stack = append(stack, u)
			}
		}
	}
}

// Tags returns every distinct tag found in err's unwrap graph, in pre-order
// traversal order. The first element, when present, is the tag the dispatcher
// resolves on. Returns nil for nil or untagged errors.
func Tags(err error) []Tag {
	if err == nil {
		return nil
	}
	var out []Tag
	seen := make(map[Tag]struct{}, 4)
	Walk(err, func(e error) bool {
		if tc, ok := e.(tagCarrier); ok {
			t := tc.TagVal()
			if _, dup := seen[t]; !dup {
				seen[t] = struct{}{}
				out = append(out, t)
			}
		}
		return true
	})
	return out
}
