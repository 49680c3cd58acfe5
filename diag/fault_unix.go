//go:build !windows
// +build !windows

// File: diag/fault_unix.go
// Author: momentics <momentics@gmail.com>
//
// Asynchronous memory-fault handler. Runs under restricted safety
// rules: everything it touches is preallocated at package init, output
// bypasses the general sink and goes straight to stderr, and the only
// runtime facility used is the stack dumper. Once entered, the path
// always runs to abort.

package diag

import (
	"os"
	"os/signal"
	"runtime"
	"sync"

	"golang.org/x/sys/unix"
)

var (
	faultBanner = []byte("ERROR: Segmentation Fault\n")
	faultStack  [64 << 10]byte
	installOnce sync.Once
)

// installFaultHandler registers for asynchronously delivered memory
// fault signals. Faults raised synchronously by Go code surface as
// runtime panics instead and are covered by HandleFault. Idempotent:
// repeated Init calls keep a single handler goroutine.
func installFaultHandler() {
	installOnce.Do(func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, unix.SIGSEGV, unix.SIGBUS)
		go func() {
			<-ch
			faultAbort()
		}()
	})
}

// faultAbort logs a best-effort banner and all-goroutine stack dump
// through direct write(2) calls, then aborts. No allocation, no fmt,
// no sink.
func faultAbort() {
	_, _ = unix.Write(2, faultBanner)
	n := runtime.Stack(faultStack[:], true)
	_, _ = unix.Write(2, faultStack[:n])
	abort()
}
