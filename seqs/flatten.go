package seqs

import (
	"iter"
	"slices"

	"deepflat/sliceutil"
)

// Flatten lazily flattens seq up to depth levels.
// It follows the same rules as sliceutil.FlattenDepth: nested slices, arrays,
// Arguments and Spreadable values are expanded depth-first, left to right,
// and everything deeper than depth is yielded as is.
func Flatten(seq iter.Seq[any], depth int) iter.Seq[any] {
	return func(yield func(any) bool) {
		flattenSeq(seq, 0, depth, yield)
	}
}

// flattenSeq reports false once the consumer has stopped.
func flattenSeq(seq iter.Seq[any], current, depth int, yield func(any) bool) bool {
	for v := range seq {
		if current < depth && sliceutil.IsFlattenable(v) {
			if !flattenSeq(sliceutil.Values(v), current+1, depth, yield) {
				return false
			}
			continue
		}
		if !yield(v) {
			return false
		}
	}
	return true
}

// FlattenSlices yields every element of every slice produced by seq.
func FlattenSlices[T any](seq iter.Seq[[]T]) iter.Seq[T] {
	return FlatMap(seq, slices.Values[[]T])
}

// FlatMap maps each element of source to a sequence and yields those
// sequences back to back, stopping as soon as the consumer does.
func FlatMap[S any, T any](source iter.Seq[S], f func(S) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := range source {
			for t := range f(s) {
				if !yield(t) {
					return
				}
			}
		}
	}
}
