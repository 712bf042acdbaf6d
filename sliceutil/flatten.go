package sliceutil

import "math"

// ==========================================
//  Dynamic Flatten (any values)
// ==========================================

// Unbounded is the depth used by FlattenDeep.
const Unbounded = math.MaxInt

// Flatten flattens value a single level deep.
// It is equivalent to FlattenDepth(value, 1).
func Flatten(value any) []any {
	return FlattenDepth(value, 1)
}

// FlattenDeep recursively flattens value until no flattenable element remains.
func FlattenDeep(value any) []any {
	return FlattenDepth(value, Unbounded)
}

// FlattenDepth flattens value up to depth levels.
//
// Elements nested inside slices, arrays, Arguments or Spreadable values are
// hoisted into the result in depth-first, left-to-right order; anything
// deeper than depth stays nested. A depth <= 0 returns a shallow copy.
// If value is not array-like, an empty slice is returned.
//
// The result never aliases value.
func FlattenDepth(value any, depth int) []any {
	top := elements(value)
	if len(top) == 0 {
		return []any{}
	}
	// BCE hint: avoid bounds check in loop
	_ = top[len(top)-1]

	res := make([]any, 0, len(top))
	return flattenInto(res, top, 0, depth)
}

func flattenInto(res []any, items []any, current, depth int) []any {
	for _, item := range items {
		if current < depth && IsFlattenable(item) {
			res = flattenInto(res, elements(item), current+1, depth)
			continue
		}
		res = append(res, item)
	}
	return res
}

// DepthOf floors a fractional depth into an int suitable for FlattenDepth.
// Negative depths and NaN yield 0, +Inf and values beyond the int range
// yield Unbounded.
func DepthOf(depth float64) int {
	switch {
	case math.IsNaN(depth), depth <= 0:
		return 0
	case depth >= float64(Unbounded):
		return Unbounded
	}
	return int(math.Floor(depth))
}

// ==========================================
//  Typed Flatten
// ==========================================

// Flat concatenates the inner slices of collection into a new slice.
func Flat[T any](collection [][]T) []T {
	if len(collection) == 0 {
		return []T{}
	}
	_ = collection[len(collection)-1]

	// Exact pre-allocation
	total := 0
	for _, inner := range collection {
		total += len(inner)
	}
	res := make([]T, 0, total)
	for _, inner := range collection {
		res = append(res, inner...)
	}
	return res
}

// FlatMap maps each element to a slice and concatenates the results.
func FlatMap[T any, R any](collection []T, transform func(T) []R) []R {
	if len(collection) == 0 {
		return []R{}
	}
	_ = collection[len(collection)-1]

	res := make([]R, 0, len(collection))
	for _, v := range collection {
		res = append(res, transform(v)...)
	}
	return res
}
