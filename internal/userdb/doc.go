package userdb

// Package userdb parses the colon-separated identity databases
// (passwd(4), group(4), shadow(4), user_attr(4)) from the host
// filesystem.
//
// Parsing is read-only. Comment lines, blank lines and lines that do
// not have enough fields are preserved as raw text and never match a
// lookup; a malformed numeric field fails the whole load so a corrupt
// database is not silently half-served.
