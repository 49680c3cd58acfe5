//go:build !windows
// +build !windows

// File: diag/abort_unix.go
// Author: momentics <momentics@gmail.com>
//
// Abnormal process exit for Unix platforms.

package diag

import (
	"os"

	"golang.org/x/sys/unix"
)

// abort raises SIGABRT against the whole process so termination is
// recorded as an abnormal, core-dump-producing exit rather than a
// clean one. os.Exit is the backstop for environments that block
// SIGABRT.
func abort() {
	_ = unix.Kill(unix.Getpid(), unix.SIGABRT)
	os.Exit(2)
}
