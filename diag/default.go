// File: diag/default.go
// Author: momentics <momentics@gmail.com>
//
// Package-level default store. The agent configures it once at startup
// and every code path reports through the package functions; tests and
// embedders needing isolation construct their own Store.

package diag

var std = New()

// Configure replaces the default store. Call once at agent startup,
// before any goroutine reports errors through the package functions.
func Configure(opts ...Option) {
	std = New(opts...)
}

// Default returns the package-level store.
func Default() *Store {
	return std
}

// SetMessage records an error description in the default store.
func SetMessage(format string, args ...any) {
	std.SetMessage(format, args...)
}

// ReplaceEmptyMessage writes the default store's shared buffer only
// when it is empty.
func ReplaceEmptyMessage(format string, args ...any) {
	std.ReplaceEmptyMessage(format, args...)
}

// ClearMessage empties the default store's shared buffer.
func ClearMessage() {
	std.ClearMessage()
}

// GetMessage returns the default store's current text.
func GetMessage() string {
	return std.GetMessage()
}

// RegisterPrimaryThread marks the calling goroutine's OS thread as the
// owner of the default store's shared buffer.
func RegisterPrimaryThread() {
	std.RegisterPrimaryThread()
}

// Init installs the asynchronous fault handler for the process.
func Init() {
	std.Init()
}

// Terminate logs the formatted message with a callstack, then aborts.
// Never returns.
func Terminate(format string, args ...any) {
	std.Terminate(format, args...)
}

// TerminateBadCase aborts after reporting an unexpected switch value.
func TerminateBadCase(fn string, line int, value int) {
	std.TerminateBadCase(fn, line, value)
}

// TerminateOnAssert aborts after reporting a failed assertion.
func TerminateOnAssert(fn string, line int, statement string) {
	std.TerminateOnAssert(fn, line, statement)
}

// Assert terminates the process unless cond holds.
func Assert(cond bool, fn string, line int, statement string) {
	std.Assert(cond, fn, line, statement)
}

// SetMessageSQL records a storage-engine failure in the default store.
func SetMessageSQL(fn string, line int, sqlfunc string, err error) {
	std.SetMessageSQL(fn, line, sqlfunc, err)
}

// SetMessageSQLParam records a storage-engine parameter-binding failure
// in the default store.
func SetMessageSQLParam(fn string, line int, sqlfunc string, err error) {
	std.SetMessageSQLParam(fn, line, sqlfunc, err)
}

// SetMessageErrno records an OS-call failure in the default store.
func SetMessageErrno(fn string, line int, call string, err error) {
	std.SetMessageErrno(fn, line, call, err)
}
