//go:build !linux
// +build !linux

// File: internal/threadid/tid_stub.go
// Author: momentics <momentics@gmail.com>
//
// Fallback for platforms without a usable thread id. Always overridden
// by a matching platform file via build tag where one exists.

package threadid

// Current returns 0 on platforms without thread id support; the
// classifier then treats every caller as primary.
func Current() int { return 0 }
