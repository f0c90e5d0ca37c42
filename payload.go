// payload.go — immutable key-value payload carried by tagged-error
// instances. Stored as an ordered slice rather than a map so that
// formatting output is deterministic; callers get a map view on demand.
package xgxmatch

// Field is one payload entry on a tagged error. Keys SHOULD be snake_case
// for consistency, but nothing here enforces it.
type Field struct {
	Key string
	Val any
}

// fields is append-only once published: builders return fresh slices and
// never write through a shared backing array.
type fields []Field

var emptyFields = make(fields, 0)

// add returns a new payload extending fs with one entry. The backing array
// is always freshly allocated so instances sharing a history cannot observe
// each other's writes.
func (fs fields) add(f Field) fields {
	out := make(fields, len(fs), len(fs)+1)
	copy(out, fs)
	return append(out, f)
}

// asMap builds a fresh map view of fs. Duplicate keys resolve
// last-write-wins; an empty payload yields nil.
func (fs fields) asMap() map[string]any {
	if len(fs) == 0 {
		return nil
	}
	m := make(map[string]any, len(fs))
	for _, f := range fs {
		m[f.Key] = f.Val
	}
	return m
}

// pairFields turns a variadic key-value list into a payload. It reads the
// list left to right as (key, value) pairs. A pair whose key is not a
// string is dropped whole (key and value together) so one bad key cannot
// shift every later value into key position. A trailing key with no value
// maps to nil.
func pairFields(kv []any) fields {
	if len(kv) == 0 {
		return emptyFields
	}
	out := make(fields, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			continue // skip this pair entirely
		}
		f := Field{Key: k}
		if i+1 < len(kv) {
			f.Val = kv[i+1]
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return emptyFields
	}
	return out
}
