/*
Package seqs provides lazy flattening over Go 1.23+ iterators (iter.Seq).

It mirrors the eager helpers in sliceutil without materializing the result:

  - **Dynamic Flatten**: [Flatten] expands nested slices, arrays, Arguments and
    Spreadable values up to a depth, using the same rules as
    sliceutil.FlattenDepth.
  - **Typed Flatten**: [FlattenSlices] and [FlatMap] for statically known shapes.

Every sequence stops producing as soon as the consumer stops ranging.

	for v := range seqs.Flatten(slices.Values(input), 2) {
		fmt.Println(v)
	}
*/
package seqs
