// File: diag/format.go
// Author: momentics <momentics@gmail.com>
//
// Bounded message rendering shared by the store and the fatal path.

package diag

import "fmt"

// MaxLen is the capacity of the shared error buffer. Stored text is
// always strictly shorter, so a rendered message occupies at most
// MaxLen-1 bytes.
const MaxLen = 1024

// appendBounded renders format and args into dst, truncating the
// result to at most max-1 bytes. Pure and reentrant; rendering
// problems degrade to fmt's error annotations, never a failure.
func appendBounded(dst []byte, max int, format string, args ...any) []byte {
	if max <= 1 {
		return dst[:0]
	}
	out := fmt.Appendf(dst[:0], format, args...)
	if len(out) > max-1 {
		out = out[:max-1]
	}
	return out
}
