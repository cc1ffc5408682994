package sysid

import "strings"

// UserAttr is an extended user attribute record. Attr holds the
// key/value pairs exactly as stored; keys are unique, order is not
// meaningful.
type UserAttr struct {
	Name string            `json:"name"`
	Attr map[string]string `json:"attr"`
}

// Profiles splits the comma-delimited "profiles" attribute into an
// ordered list with surrounding whitespace trimmed. "a, b,c" yields
// ["a","b","c"]. Duplicates are kept.
func (u *UserAttr) Profiles() []string {
	p, ok := u.Attr["profiles"]
	if !ok {
		return []string{}
	}
	parts := strings.Split(p, ",")
	out := make([]string, 0, len(parts))
	for _, s := range parts {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

// Passwd is an owned copy of a password database entry. String fields
// are nil when the underlying C field was a null pointer; an empty
// string means the field was present and empty.
type Passwd struct {
	Name     *string `json:"name"`
	Password *string `json:"passwd"`
	UID      uint32  `json:"uid"`
	GID      uint32  `json:"gid"`
	Age      *string `json:"age,omitempty"`
	Comment  *string `json:"comment,omitempty"`
	Gecos    *string `json:"gecos,omitempty"`
	Dir      *string `json:"dir,omitempty"`
	Shell    *string `json:"shell,omitempty"`
}

// Group is an owned copy of a group database entry. Members is nil
// when the member array itself was absent, and empty but non-nil when
// the array was present with no entries.
type Group struct {
	Name     *string  `json:"name"`
	Password *string  `json:"passwd"`
	GID      uint32   `json:"gid"`
	Members  []string `json:"members"`
}
