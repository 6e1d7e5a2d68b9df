package components

import (
	"math"
	"reflect"
)

// Attrs is a bag of pass-through attributes forwarded opaquely to a
// button primitive (ids, tooltips, disabled flags, ...).
type Attrs map[string]any

// Attribute keys with a meaning of their own.
const (
	AttrExpanded = "expanded"
	AttrOnToggle = "onToggle"
	AttrVariant  = "variant"
	AttrOnClick  = "onClick"
	AttrID       = "id"
	AttrTitle    = "title"
	AttrDisabled = "disabled"
)

// without returns a copy of a with the given keys removed.
// The receiver is never modified; a nil bag yields an empty one.
func (a Attrs) without(keys ...string) Attrs {
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// String returns the attribute as a string, or "" when it is absent or not a string.
func (a Attrs) String(key string) string {
	s, _ := a[key].(string)
	return s
}

// Truthy reports whether v counts as "set". nil, false, numeric zero and the
// empty string are falsy; everything else is truthy.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}
