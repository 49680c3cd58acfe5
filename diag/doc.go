// File: diag/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Centralized error-message capture and fatal-termination diagnostics
// for a long-running, multi-threaded agent process.
//
// Coding style for the surrounding agent:
//  1. SetMessage is called where an error is first encountered.
//  2. Intermediate code that just passes a failure back up does not
//     call SetMessage again; the first detector keeps priority.
//  3. Fatal conditions go through Terminate and its helpers, which
//     never return.
//
// The shared message buffer is owned by exactly one thread, decided by
// the api.ThreadClassifier on every call. Writes from any other thread
// land in a transient call-scoped buffer that only the log sink ever
// observes, so no lock is needed. The classifier's accuracy is a hard
// precondition; stores built with WithStrictOwnership turn a
// misclassified shared write into a fatal termination instead of a
// silent race.
package diag
