package sliceutil

import (
	"iter"
	"reflect"
	"unicode/utf8"
)

// ArrayLike is implemented by values that expose ordered, integer-indexed
// access and a length without being a native slice or array.
type ArrayLike interface {
	Len() int
	At(i int) any
}

// Spreadable marks an ArrayLike value that should be expanded in place when it
// is nested inside a collection being flattened.
type Spreadable interface {
	ArrayLike
	Spreadable() bool
}

// Arguments is an arguments-like list: it is always expanded when nested.
type Arguments struct {
	values []any
}

// Args packs values into an Arguments list.
func Args(values ...any) Arguments {
	return Arguments{values: values}
}

func (a Arguments) Len() int { return len(a.values) }

func (a Arguments) At(i int) any { return a.values[i] }

// absent reports whether value is nil or a nil pointer, map, func or chan.
// Such values are treated like a missing input.
func absent(value any) bool {
	if value == nil {
		return true
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// IsArrayLike reports whether value exposes ordered, length-bounded
// indexable access: a non-nil slice, an array, a string or an ArrayLike.
func IsArrayLike(value any) bool {
	if absent(value) {
		return false
	}
	if _, ok := value.(string); ok {
		return true
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Slice:
		return !rv.IsNil()
	case reflect.Array:
		return true
	}
	_, ok := value.(ArrayLike)
	return ok
}

// IsFlattenable reports whether a nested value is expanded by Flatten.
// Slices and arrays always are, except byte slices, which stay leaves like
// strings. Other ArrayLike values only when they are Arguments or Spreadable.
func IsFlattenable(value any) bool {
	if absent(value) {
		return false
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Slice:
		return rv.Type().Elem().Kind() != reflect.Uint8
	case reflect.Array:
		return true
	}
	switch v := value.(type) {
	case Arguments:
		return true
	case Spreadable:
		return v.Spreadable()
	}
	return false
}

// elements returns the top-level elements of an array-like value.
// It returns nil when value is not array-like.
func elements(value any) []any {
	if absent(value) {
		return nil
	}
	switch v := value.(type) {
	case []any:
		return v
	case string:
		res := make([]any, 0, utf8.RuneCountInString(v))
		for _, r := range v {
			res = append(res, string(r))
		}
		return res
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		res := make([]any, rv.Len())
		for i := range res {
			res[i] = rv.Index(i).Interface()
		}
		return res
	}

	v, ok := value.(ArrayLike)
	if !ok {
		return nil
	}
	n := v.Len()
	if n <= 0 {
		return []any{}
	}
	res := make([]any, n)
	for i := range n {
		res[i] = v.At(i)
	}
	return res
}

// Values returns a sequence over the top-level elements of an array-like
// value. The sequence is empty when value is not array-like.
func Values(value any) iter.Seq[any] {
	return func(yield func(any) bool) {
		if absent(value) {
			return
		}
		switch v := value.(type) {
		case []any:
			for _, item := range v {
				if !yield(item) {
					return
				}
			}
			return
		case string:
			for _, r := range v {
				if !yield(string(r)) {
					return
				}
			}
			return
		}

		rv := reflect.ValueOf(value)
		if k := rv.Kind(); k == reflect.Slice || k == reflect.Array {
			for i := range rv.Len() {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
			return
		}

		if v, ok := value.(ArrayLike); ok {
			for i := range v.Len() {
				if !yield(v.At(i)) {
					return
				}
			}
		}
	}
}
