// stack.go — selective stack capture.
//
// Design goals:
//   - Correctness: runtime.Callers + runtime.CallersFrames so inlined frames
//     resolve accurately.
//   - Minimal policy: no global toggles; callers opt in via WithStack*, and
//     the realization boundary captures one when a producer panics.
//   - Bounded depth, no allocations unless capture is requested.
package xgxmatch

import (
	"runtime"
)

// Frame represents a single call site in a stack trace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// defaultMaxDepth bounds capture work on exceptional paths.
const defaultMaxDepth = 64

// captureStackDefault captures a stack skipping 'skip' frames beyond the
// internal helpers, with the default depth bound.
//
// Skip model for a typical call chain:
//
//	WithStack → WithStackSkip → captureStackDefault → captureStack → runtime.Callers
//
// captureStack adds +3 internally (runtime.Callers, captureStack,
// captureStackDefault) so user-visible stacks begin at the user call site;
// any extra 'skip' is applied on top.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack captures up to maxDepth frames, skipping 'skip' initial frames
// beyond the internal helpers.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}
