// File: diag/sqlerr.go
// Author: momentics <momentics@gmail.com>
//
// Storage-engine message adapters. Thin helpers that keep the common
// sqlite failure format string out of the codebase; they delegate
// entirely to SetMessage.

package diag

import (
	"errors"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// SetMessageSQL records a storage-engine failure: calling function and
// line, the sqlite call that failed, and the engine-reported extended
// code and text.
func (s *Store) SetMessageSQL(fn string, line int, sqlfunc string, err error) {
	code, text := sqliteCode(err)
	s.SetMessage("%s(%d): %s failed: (err=%d) %s", fn, line, sqlfunc, code, text)
}

// SetMessageSQLParam is the parameter-binding variant of SetMessageSQL.
// The format differs only in punctuation, kept as-is for log parsers
// that match on it.
func (s *Store) SetMessageSQLParam(fn string, line int, sqlfunc string, err error) {
	code, text := sqliteCode(err)
	s.SetMessage("%s(%d): %s failed (err=%d) %s", fn, line, sqlfunc, code, text)
}

// sqliteCode extracts the extended result code and message from a
// sqlite driver error. Non-sqlite errors report code -1 with their
// plain text, so the adapter stays usable behind database/sql wrappers.
func sqliteCode(err error) (int, string) {
	if err == nil {
		return 0, "ok"
	}
	var se sqlite3.Error
	if errors.As(err, &se) {
		return int(se.ExtendedCode), se.Error()
	}
	return -1, err.Error()
}
