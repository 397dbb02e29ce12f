// Package bcmp is bytes comparetor.
package bcmp

import (
	"unsafe"

	"github.com/syndtr/goleveldb/leveldb/comparer"
)

// Compare orders a and b byte by byte, a prefix sorts before any longer key.
func Compare(a, b []byte) int {
	return comparer.DefaultComparer.Compare(a, b)
}

// CompareString compares a and b without copying them.
func CompareString(a, b string) int {
	return Compare(s2b(a), s2b(b))
}

// s2b returns the bytes of s, which must not be modified.
func s2b(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
