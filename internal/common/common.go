// Package common holds small helpers shared across client layers.
package common

// WipeByteArray zeroes b in place. Used to scrub password buffers once they
// have been handed off.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
