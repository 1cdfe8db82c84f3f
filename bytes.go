// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Bytes returns the memory of s as a byte slice, for uploading vertex,
// index, uniform or pixel data. The result aliases s.
func Bytes[T constraints.Integer | constraints.Float](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}
