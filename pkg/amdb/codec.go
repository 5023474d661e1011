package amdb

import "strconv"

// Category is implemented by every categorical attribute type.
type Category interface {
	// String returns the variant name, or "Unknown(n)" for an index outside
	// the variant table.
	String() string

	// Known reports whether the index maps to a named variant.
	Known() bool

	// Index returns the index exactly as it appeared in the document.
	Index() int32
}

// variants is the ordered variant-name table of one categorical attribute.
type variants []string

func (v variants) known(index int32) bool {
	return index >= 0 && int(index) < len(v)
}

func (v variants) name(index int32) string {
	if v.known(index) {
		return v[index]
	}
	return "Unknown(" + strconv.FormatInt(int64(index), 10) + ")"
}

// decodeCategory turns a raw document index into a categorical value.
//
// Decoding never fails. Producers emit indices past the documented tables, so
// an out-of-range or negative index becomes an unknown value that keeps the
// original number rather than an error.
func decodeCategory[T ~int32](index int32) T {
	return T(index)
}
