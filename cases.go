// cases.go — the declarative case table, sentinel handlers, and the
// resolution algorithm selecting one handler per call.
//
// Resolution (fallback chain):
//   1. Tagged(tag): cases[tag] → cases["error"] → fail unhandled_tag.
//      When the "error" fallback takes a tagged input, the handler sees it
//      as a bare error; tag-specific payload access is intentionally
//      narrowed (use As/TypedField.Get inside the handler to widen again).
//   2. PlainError: cases["error"] → fail unhandled_error.
//   3. Value: cases["value"] → behave as Pipe. Absence here is never an
//      error, unlike branches 1–2.
//
// Validation is lazy: only the one case actually selected is inspected.
// A junk value parked under a tag that never fires costs nothing.
package xgxmatch

// Reserved case keys. All other keys are tag names.
const (
	// KeyError is the catch-all for any error-shaped input whose tag has no
	// direct case (or that carries no tag at all). Supplying it is an
	// explicit opt-in to bare-error handling for every unlisted tag.
	KeyError = "error"

	// KeyValue handles non-error inputs. When absent the value passes
	// through unchanged (Pipe).
	KeyValue = "value"
)

// Cases maps tag names (plus the reserved "error" and "value" keys) to
// handlers. Each value is one of:
//
//   - func(error) any / func(error)   — tag and "error" cases
//   - func(any) any / func(any)       — the "value" case
//   - a Sentinel valid for the branch
//
// A Cases table is read-only for the duration of one When call and never
// retained afterward.
type Cases map[string]any

// Sentinel is a named constant standing in for a trivial handler.
type Sentinel uint8

const (
	// Ignore discards the input and produces nil. Valid for tag and "error"
	// cases.
	Ignore Sentinel = iota + 1

	// Rethrow makes When return the classified input, unwrapped, as its own
	// error. Valid for tag and "error" cases.
	Rethrow

	// Pipe returns the input unchanged. Valid only for the "value" case; it
	// is also the implicit default when "value" is absent.
	Pipe
)

func (s Sentinel) String() string {
	switch s {
	case Ignore:
		return "Ignore"
	case Rethrow:
		return "Rethrow"
	case Pipe:
		return "Pipe"
	}
	return "Sentinel(?)"
}

// resolve selects the case entry for one classification, applying the
// fallback chain. ok=false means no entry was found; the caller decides
// whether that is a failure (tagged/error) or the pipe default (value).
func (c Cases) resolve(k kind, tag Tag) (entry any, key string, ok bool) {
	switch k {
	case kindTagged:
		if e, hit := c[string(tag)]; hit {
			return e, string(tag), true
		}
		if e, hit := c[KeyError]; hit {
			return e, KeyError, true
		}
		return nil, string(tag), false
	case kindError:
		if e, hit := c[KeyError]; hit {
			return e, KeyError, true
		}
		return nil, KeyError, false
	default:
		if e, hit := c[KeyValue]; hit {
			return e, KeyValue, true
		}
		return nil, KeyValue, false
	}
}

// apply validates the selected entry and runs it. errv is the classified
// input's error view (tagged/error branches); val is the realized input
// (value branch). Exactly one handler runs, exactly once.
func apply(entry any, key string, k kind, errv error, val any) (any, error) {
	if s, ok := entry.(Sentinel); ok {
		return applySentinel(s, key, k, errv, val)
	}
	switch fn := entry.(type) {
	case func(error) any:
		if fn == nil || k == kindValue {
			return nil, errInvalidHandler(key, entry)
		}
		return fn(errv), nil
	case func(error):
		if fn == nil || k == kindValue {
			return nil, errInvalidHandler(key, entry)
		}
		fn(errv)
		return nil, nil
	case func(any) any:
		if fn == nil || k != kindValue {
			return nil, errInvalidHandler(key, entry)
		}
		return fn(val), nil
	case func(any):
		if fn == nil || k != kindValue {
			return nil, errInvalidHandler(key, entry)
		}
		fn(val)
		return nil, nil
	}
	return nil, errInvalidHandler(key, entry)
}

func applySentinel(s Sentinel, key string, k kind, errv error, val any) (any, error) {
	switch s {
	case Ignore:
		if k == kindValue {
			return nil, errInvalidHandler(key, s)
		}
		return nil, nil
	case Rethrow:
		if k == kindValue {
			return nil, errInvalidHandler(key, s)
		}
		return nil, errv
	case Pipe:
		if k != kindValue {
			return nil, errInvalidHandler(key, s)
		}
		return val, nil
	}
	return nil, errInvalidHandler(key, s)
}

// CheckExhaustive is an authoring-time helper (intended for tests): it
// reports nil when every listed variant's tag has a case in cases, or when
// the "error" catch-all is present (tag cases then become optional).
// Otherwise it returns an unhandled_tag DispatchError naming the first
// missing tag in vs order. Runtime dispatch never calls it.
func CheckExhaustive(cases Cases, vs ...Variant) error {
	if _, ok := cases[KeyError]; ok {
		return nil
	}
	for _, v := range vs {
		if _, ok := cases[string(v.TagVal())]; !ok {
			return errUnhandledTag(v.TagVal(), nil)
		}
	}
	return nil
}
