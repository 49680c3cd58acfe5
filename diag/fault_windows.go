//go:build windows
// +build windows

// File: diag/fault_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows has no asynchronous SIGSEGV delivery; only the panic-driven
// HandleFault path applies there.

package diag

import (
	"os"
	"runtime"
)

func installFaultHandler() {}

func faultAbort() {
	_, _ = os.Stderr.WriteString("ERROR: Segmentation Fault\n")
	buf := make([]byte, 64<<10)
	n := runtime.Stack(buf, true)
	_, _ = os.Stderr.Write(buf[:n])
	abort()
}
