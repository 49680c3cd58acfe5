//go:build linux
// +build linux

// File: internal/threadid/tid_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific thread id retrieval via gettid(2).

package threadid

import "golang.org/x/sys/unix"

// Current returns the kernel thread id of the calling OS thread.
func Current() int {
	return unix.Gettid()
}
