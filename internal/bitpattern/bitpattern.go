// Package bitpattern compares raw byte representations of fixed-width values.
package bitpattern

// Equal reports whether a and b have the same length and contents.
// Indices are visited from the highest to the lowest.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
