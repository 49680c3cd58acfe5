// Package logsink
// Author: momentics <momentics@gmail.com>
//
// Default api.LogSink implementation: timestamped line output to an
// io.Writer with a bounded ring of recent lines retained for
// post-mortem dumps, and goroutine callstack emission.
package logsink
