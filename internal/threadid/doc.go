// File: internal/threadid/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// OS-thread identity plumbing and the default thread classifier used by
// the diagnostics core. The primary (data-model) goroutine registers
// itself once; registration locks the goroutine to its OS thread so the
// thread id stays a stable identity for the classifier to compare
// against. Platform-specific thread id retrieval is partitioned by
// build tags (Linux via gettid, stub elsewhere).
package threadid
