// File: diag/sqlerr_test.go
// Author: momentics <momentics@gmail.com>
//
// Format checks for the storage-engine adapters against a real sqlite
// driver error.

package diag_test

import (
	"database/sql"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/momentics/agent-diag/api"
	"github.com/momentics/agent-diag/control"
	"github.com/momentics/agent-diag/diag"
)

func sqliteFailure(t *testing.T) error {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, qerr := db.Exec("SELECT id FROM missing_table")
	require.Error(t, qerr)
	return qerr
}

func TestSetMessageSQLFormat(t *testing.T) {
	control.SetLogLevel(api.LevelOff)
	t.Cleanup(func() { control.SetLogLevel(api.LevelError) })

	s := diag.New()
	s.SetMessageSQL("StoreTransaction", 101, "sqlite3_prepare", sqliteFailure(t))

	got := s.GetMessage()
	require.Regexp(t, `^StoreTransaction\(101\): sqlite3_prepare failed: \(err=1\) `, got)
	require.Contains(t, got, "no such table: missing_table")
}

func TestSetMessageSQLParamFormat(t *testing.T) {
	control.SetLogLevel(api.LevelOff)
	t.Cleanup(func() { control.SetLogLevel(api.LevelError) })

	s := diag.New()
	s.SetMessageSQLParam("BindArgs", 55, "sqlite3_bind_int", sqliteFailure(t))

	// Param variant drops the colon after "failed".
	require.Regexp(t, `^BindArgs\(55\): sqlite3_bind_int failed \(err=1\) `, s.GetMessage())
}

func TestSetMessageSQLNonSqliteError(t *testing.T) {
	control.SetLogLevel(api.LevelOff)
	t.Cleanup(func() { control.SetLogLevel(api.LevelError) })

	s := diag.New()
	s.SetMessageSQL("Vacuum", 7, "sqlite3_step", errors.New("disk vanished"))
	require.Equal(t, "Vacuum(7): sqlite3_step failed: (err=-1) disk vanished", s.GetMessage())

	s.SetMessageSQL("Vacuum", 8, "sqlite3_step", nil)
	require.Equal(t, "Vacuum(8): sqlite3_step failed: (err=0) ok", s.GetMessage())
}
