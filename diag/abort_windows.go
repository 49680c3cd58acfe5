//go:build windows
// +build windows

// File: diag/abort_windows.go
// Author: momentics <momentics@gmail.com>
//
// Abnormal process exit for Windows. No SIGABRT delivery; exit with the
// status the C runtime's abort() uses.

package diag

import "os"

func abort() {
	os.Exit(3)
}
