package sysid

// Package sysid provides typed accessors over the operating system's
// identity databases: extended user attributes, the password and group
// databases, the host's nodename, and the calling process's zone
// identity.
//
// Every lookup copies all needed fields out of the foreign reply
// buffer into an owned record before returning, and the whole
// lookup-and-copy sequence runs under a package mutex because the
// password/group family is backed by a single static reply buffer
// shared by the entire process.
//
// Contract: a by-name or by-id lookup returns (nil, nil) when the
// directory service affirmatively reports no match (errno left at
// zero), and a *LookupError carrying the call name and errno
// otherwise. Text that fails to decode as UTF-8 fails the whole record
// for Passwd and Group (*DecodeError) but is silently dropped for
// attribute-map pairs; the asymmetry is inherited behavior, kept as-is.
//
// On illumos and Solaris with cgo the accessors call the C library
// directly. Everywhere else a file-backed implementation serves the
// same contract from the databases under the hostfs root.
