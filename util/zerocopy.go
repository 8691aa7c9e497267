package util

import "unsafe"

// String converts b to a string without copying. b must not be modified
// afterwards.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

