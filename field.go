// field.go — optional, type-safe payload helpers.
//
// Overview
//   TypedField provides an *optional* ergonomic layer for attaching and
//   reading strongly-typed payload fields on tagged errors. It does not
//   replace the plain string/any API (With, NewKV) — it complements it.
//
// Goals
//   • Zero policy: purely a convenience for authors who prefer typed access.
//   • No lock-in: you can mix `.With("k", any)` with `Typed[T]("k").Set/Get`.
//   • Interop-first: Get accepts any error and finds the payload through
//     wrapping (errors.As), so handlers receiving a bare error still read
//     typed fields without asserting the concrete type first.
//
// Usage
//   package mypkg
//   var (
//       ErrQuota  = xgxmatch.Define("QuotaError")
//       FLimit    = xgxmatch.Typed[int64]("limit")
//   )
//
//   func do() error {
//       err := ErrQuota.New("limit reached")
//       err = FLimit.Set(err, 100)
//       limit, ok := FLimit.Get(err) // limit=100, ok=true
//       _ = limit; _ = ok
//       return err
//   }
//
// Caveats
//   • TypedField relies on Go’s type assertions. The dynamic type stored in
//     the payload MUST match T exactly; no implicit conversions are made.
package xgxmatch

import (
	"errors"
	"fmt"
)

// TypedField is a small, zero-policy helper for type-safe payload access.
// T is the Go type you intend to store/retrieve for the given key.
type TypedField[T any] struct {
	key string
}

// Typed constructs a TypedField[T] for a given key.
// Keys SHOULD be snake_case for consistency across logs/exports.
func Typed[T any](key string) TypedField[T] {
	return TypedField[T]{key: key}
}

// Key returns the underlying string key for this field.
func (f TypedField[T]) Key() string { return f.key }

// Set attaches (key = val) to e and returns a NEW TaggedError.
// e must be non-nil; typed fields only make sense on an existing instance.
func (f TypedField[T]) Set(e TaggedError, val T) TaggedError {
	if e == nil {
		panic(fmt.Errorf("xgxmatch.TypedField(%q): Set on nil TaggedError", f.key))
	}
	return e.With(f.key, any(val))
}

// Get retrieves the typed value for this field from anywhere in err's unwrap
// chain. Returns (zero, false) if err is nil, no tagged error is found, the
// field is absent, or the value has a different dynamic type than T.
func (f TypedField[T]) Get(err error) (T, bool) {
	var zero T
	if err == nil {
		return zero, false
	}
	var te TaggedError
	if !errors.As(err, &te) {
		return zero, false
	}
	m := te.Payload() // copy-on-read (allocates a map)
	v, ok := m[f.key]
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}

// MustGet retrieves the typed value or panics with a descriptive error if the
// field is missing or has a different dynamic type than T.
//
// Use sparingly — it is intended for test code or contexts where absence is a
// programming error rather than a runtime condition.
func (f TypedField[T]) MustGet(err error) T {
	var zero T
	v, ok := f.Get(err)
	if !ok {
		panic(fmt.Errorf("xgxmatch.TypedField[%T](%q): field missing or wrong type in %v", zero, f.key, err))
	}
	return v
}
