// variant.go — variant definitions & the concrete tagged-error type.
//
// Scope (tiny core):
//   - Define declares a variant (the tag) once, at package scope.
//   - Variant constructors (New/NewKV/Errorf/Wrap) build instances.
//   - taggedErr implements TaggedError with NON-MUTATING fluent methods.
//   - Keep policy out (no logging/HTTP/JSON/retry policy here).
//
// Interop:
//   - errors.Is(instance, variant) matches by tag, so a Variant doubles as a
//     package-level sentinel for its whole family of instances.
//   - errors.As finds the TaggedError through arbitrary wrapping.
//
// Notes:
//   - Copy-on-write everywhere: each fluent method returns a fresh value.
//   - Payload uses the internal []Field representation from payload.go.
//   - Stack capture uses captureStackDefault from stack.go.
package xgxmatch

import (
	"fmt"
	"sort"
	"sync"
)

// -----------------------------------------------------------------------------
// Variant — the declared base of a tagged-error family
// -----------------------------------------------------------------------------

// Variant is the base type produced by Define. It constructs instances and
// acts as an errors.Is target for every instance sharing its tag.
//
// A Variant is itself a (payload-free) tag carrier, so passing a Variant
// directly to Match classifies as Tagged — useful for signalling conditions
// that need no per-instance data, like stdlib sentinel errors.
type Variant struct {
	tag Tag
}

// Define declares a variant with the given tag and records it in the
// process-wide registry (see DefinedTags). Defining the same tag twice
// returns an equivalent Variant; instances of either match both.
//
// Typical usage, once at package scope:
//
//	var (
//	    ErrTimeout  = xgxmatch.Define("TimeoutError")
//	    ErrNotReady = xgxmatch.Define("NotReadyError")
//	)
func Define(tag string) Variant {
	registerTag(Tag(tag))
	return Variant{tag: Tag(tag)}
}

// TagVal returns the variant's discriminant.
func (v Variant) TagVal() Tag { return v.tag }

// Error renders the variant as a bare, message-free error: its tag.
func (v Variant) Error() string { return string(v.tag) }

// New builds an instance carrying msg and no cause.
func (v Variant) New(msg string) TaggedError {
	return &taggedErr{tag: v.tag, msg: msg, pl: emptyFields}
}

// NewKV builds an instance carrying msg and payload parsed from kv pairs
// (see payload.go for the pairing rules).
func (v Variant) NewKV(msg string, kv ...any) TaggedError {
	return &taggedErr{tag: v.tag, msg: msg, pl: pairFields(kv)}
}

// Errorf builds an instance with a formatted message.
func (v Variant) Errorf(format string, args ...any) TaggedError {
	return &taggedErr{tag: v.tag, msg: fmt.Sprintf(format, args...), pl: emptyFields}
}

// Wrap builds an instance keeping cause for diagnostics. cause may be nil;
// the instance then behaves exactly like New(msg).
func (v Variant) Wrap(cause error, msg string) TaggedError {
	return &taggedErr{tag: v.tag, msg: msg, cause: cause, pl: emptyFields}
}

// -----------------------------------------------------------------------------
// taggedErr — concrete instance
// -----------------------------------------------------------------------------

// taggedErr is an error-capable record composing tag + message + cause +
// payload. No inheritance: the tag is plain data fixed at construction.
type taggedErr struct {
	tag   Tag
	msg   string
	cause error
	pl    fields
	stk   Stack
}

func (e *taggedErr) Error() string {
	if e.msg == "" {
		if e.cause != nil {
			return fmt.Sprintf("%s: %s", e.tag, e.cause.Error())
		}
		return string(e.tag)
	}
	return fmt.Sprintf("%s: %s", e.tag, e.msg)
}

func (e *taggedErr) TagVal() Tag             { return e.tag }
func (e *taggedErr) Unwrap() error           { return e.cause }
func (e *taggedErr) Payload() map[string]any { return e.pl.asMap() }

// Message returns the instance message without the tag prefix.
func (e *taggedErr) Message() string { return e.msg }

// Is matches the defining Variant (and any Variant sharing the tag), making
// errors.Is(instance, variant) work without identity tricks.
func (e *taggedErr) Is(target error) bool {
	v, ok := target.(Variant)
	return ok && v.tag == e.tag
}

func (e *taggedErr) With(key string, val any) TaggedError {
	n := e.clone()
	n.pl = n.pl.add(Field{Key: key, Val: val})
	return n
}

func (e *taggedErr) WithStack() TaggedError {
	return e.WithStackSkip(0)
}

func (e *taggedErr) WithStackSkip(skip int) TaggedError {
	n := e.clone()
	n.stk = captureStackDefault(skip + 1) // +1 to skip this method
	return n
}

func (e *taggedErr) clone() *taggedErr {
	n := *e
	// defensively copy the payload slice to preserve immutability guarantees
	if len(e.pl) > 0 {
		copied := make(fields, len(e.pl))
		copy(copied, e.pl)
		n.pl = copied
	} else {
		n.pl = emptyFields
	}
	// Stack is an immutable value type (slice of frames); shallow copy is fine.
	return &n
}

// -----------------------------------------------------------------------------
// Registry — authoring-time tag enumeration
// -----------------------------------------------------------------------------

// The registry exists for exhaustiveness checking (CheckExhaustive) and
// diagnostics. Runtime dispatch never consults it.
var (
	regMu   sync.Mutex
	regSet  = make(map[Tag]struct{})
	regTags []Tag // insertion order
)

func registerTag(t Tag) {
	regMu.Lock()
	defer regMu.Unlock()
	if _, dup := regSet[t]; dup {
		return
	}
	regSet[t] = struct{}{}
	regTags = append(regTags, t)
}

// DefinedTags returns a sorted defensive copy of every tag declared via
// Define in this process.
func DefinedTags() []Tag {
	regMu.Lock()
	defer regMu.Unlock()
	out := make([]Tag, len(regTags))
	copy(out, regTags)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// -----------------------------------------------------------------------------
// Interface conformance guards (keep in the file that defines the types)
// -----------------------------------------------------------------------------
var (
	_ TaggedError = (*taggedErr)(nil)
	_ tagCarrier  = Variant{}
	_ tagCarrier  = (*taggedErr)(nil)
)
