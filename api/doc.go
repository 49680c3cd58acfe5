// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Interface contracts consumed by the agent-diag core: the thread
// classifier that decides ownership of the shared error buffer, and the
// log sink that receives pre-rendered diagnostic lines.
//
// The core depends only on these contracts; concrete implementations
// live outside it (logsink ships the default sink, internal/threadid
// the default classifier).
package api
