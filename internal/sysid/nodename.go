//go:build unix

package sysid

import (
	"sync"

	"golang.org/x/sys/unix"
)

// lookupMu serializes every lookup-and-copy sequence. The underlying
// getpwnam/getgrnam family reuses one static reply buffer per process,
// so two overlapping lookups would scribble over each other's result
// before it is copied out.
var lookupMu sync.Mutex

// Nodename returns the host's network node name as reported by
// uname(2). Failure of uname is an unrecoverable environment failure.
func Nodename() (string, error) {
	var un unix.Utsname
	if err := unix.Uname(&un); err != nil {
		return "", &UnrecoverableError{Call: "uname", Err: err}
	}
	return cstr(un.Nodename[:]), nil
}

// cstr copies a NUL-terminated C character array into a Go string.
// The element type differs across platforms (byte on Linux, int8 on
// the BSDs and Solaris).
func cstr[T byte | int8](b []T) string {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c == 0 {
			break
		}
		out = append(out, byte(c))
	}
	return string(out)
}
