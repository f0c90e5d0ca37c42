// classify.go — total, side-effect-free classification of one realized input.
//
// Scope:
//   • The three-way discriminant the dispatcher resolves on:
//     tagged error → plain error → plain value, in that priority order.
//   • Zero-policy predicates that answer common tag questions.
//
// Order matters: every tagged error is also a plain error, so the tag check
// must run first. Classification uses errors.As, so a tag buried under
// fmt.Errorf("%w") wrapping or errors.Join still dispatches as Tagged — the
// capability ("error-bearing value with a tag") is what counts, not the
// concrete type at the surface.
package xgxmatch

import (
	"errors"
)

// kind is the three-way discriminant of one realized input.
type kind uint8

const (
	kindValue kind = iota
	kindError
	kindTagged
)

func (k kind) String() string {
	switch k {
	case kindTagged:
		return "tagged"
	case kindError:
		return "error"
	default:
		return "value"
	}
}

// classify places input into exactly one kind. For kindTagged it reports the
// first tag along the unwrap chain; for kindTagged and kindError it also
// returns the input's error view (the classified input handlers receive).
// nil is a value.
func classify(input any) (k kind, tag Tag, errv error) {
	err, ok := input.(error)
	if !ok || err == nil {
		return kindValue, "", nil
	}
	var tc tagCarrier
	if errors.As(err, &tc) {
		return kindTagged, tc.TagVal(), err
	}
	return kindError, "", err
}

// IsTagged reports whether err carries a tag anywhere in its unwrap chain.
func IsTagged(err error) bool {
	if err == nil {
		return false
	}
	var tc tagCarrier
	return errors.As(err, &tc)
}

// TagOf returns the first tag along err's unwrap chain, or "" if none.
// "First" follows the stdlib's pre-order traversal, so the outermost tag wins
// — the same tag the dispatcher resolves on.
func TagOf(err error) Tag {
	if err == nil {
		return ""
	}
	var tc tagCarrier
	if errors.As(err, &tc) {
		return tc.TagVal()
	}
	return ""
}

// HasTag reports whether any error in err's unwrap graph carries the given
// tag, including tags that are not the first (e.g., deeper members of a
// joined error).
func HasTag(err error, tag Tag) bool {
	if err == nil || tag == "" {
		return false
	}
	found := false
	Walk(err, func(e error) bool {
		if tc, ok := e.(tagCarrier); ok && tc.TagVal() == tag {
			found = true
			return false
		}
		return true
	})
	return found
}

// As finds the first TaggedError in err's unwrap chain. It is a typed
// convenience over errors.As for handlers that received a bare error.
func As(err error) (TaggedError, bool) {
	if err == nil {
		return nil, false
	}
	var te TaggedError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
