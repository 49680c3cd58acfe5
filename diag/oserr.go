// File: diag/oserr.go
// Author: momentics <momentics@gmail.com>
//
// OS-call message adapter: numeric errno plus its strerror text. A
// thin helper over SetMessage, like the sqlite adapters.

package diag

import (
	"errors"
	"syscall"
)

// SetMessageErrno records an OS-call failure: calling function and
// line, the call that failed, and the errno with its description.
// Wrapped errors (fs.PathError and friends) are unwrapped down to the
// errno; non-errno errors report code -1 with their plain text.
func (s *Store) SetMessageErrno(fn string, line int, call string, err error) {
	code, text := errnoCode(err)
	s.SetMessage("%s(%d): %s failed : (err=%d) %s", fn, line, call, code, text)
}

func errnoCode(err error) (int, string) {
	if err == nil {
		return 0, "ok"
	}
	var e syscall.Errno
	if errors.As(err, &e) {
		return int(e), e.Error()
	}
	return -1, err.Error()
}
