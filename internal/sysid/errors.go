package sysid

import (
	"errors"
	"fmt"
)

// LookupError reports a directory-service call that failed outright,
// as opposed to affirmatively finding no entry. Errno is the numeric
// error code the call left behind.
type LookupError struct {
	Call  string
	Errno int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: errno %d", e.Call, e.Errno)
}

// DecodeError reports a structured record field that was not valid
// UTF-8. Attribute-map pairs are dropped silently instead; see the
// package comment.
type DecodeError struct {
	Call  string
	Field string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: field %s is not valid UTF-8", e.Call, e.Field)
}

// UnrecoverableError marks a failure of an environment assumption
// (host nodename, zone identity) the rest of the system depends on.
// Callers are expected to treat it as non-continuable; sysidd exits
// with FatalExitStatus when it sees one.
type UnrecoverableError struct {
	Call string
	Err  error
}

// FatalExitStatus is the process exit status for unrecoverable
// environment failures.
const FatalExitStatus = 100

func (e *UnrecoverableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failure: %v", e.Call, e.Err)
	}
	return fmt.Sprintf("%s failure", e.Call)
}

func (e *UnrecoverableError) Unwrap() error { return e.Err }

// IsUnrecoverable reports whether err is (or wraps) an
// UnrecoverableError.
func IsUnrecoverable(err error) bool {
	var ue *UnrecoverableError
	return errors.As(err, &ue)
}
