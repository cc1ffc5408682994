package hostfs

// Package hostfs maps relative identity-database paths onto a
// configurable root directory.
//
// When sysidd runs in a container the host's /etc is typically
// bind-mounted (e.g. under /host), and every database read goes through
// Path() so the whole daemon can be repointed with one SetRoot call.
// The same mechanism lets tests serve fixture trees.
