//go:build unix && !(solaris && cgo)

package sysid

import (
	"errors"
	"io/fs"
	"syscall"
	"unicode/utf8"

	"github.com/identops/sysid/internal/hostfs"
	"github.com/identops/sysid/internal/userdb"
)

// File-backed implementation of the lookup contract, serving the
// databases under the hostfs root. Error call names match the C
// library calls the cgo implementation makes, so diagnostics keep the
// same shape whichever backend is compiled in.

// LookupUserAttr queries the extended user attribute database. A
// missing user_attr file reads as an empty database, matching
// getusernam's lack of an errno channel.
func LookupUserAttr(name string) (*UserAttr, error) {
	path, err := hostfs.Path(hostfs.EtcUserAttrRel)
	if err != nil {
		return nil, err
	}

	lookupMu.Lock()
	defer lookupMu.Unlock()

	f, err := userdb.LoadUserAttr(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &LookupError{Call: "getusernam", Errno: errnoOf(err)}
	}
	e := f.Find(name)
	if e == nil {
		return nil, nil
	}

	out := &UserAttr{Name: name, Attr: map[string]string{}}
	for k, v := range e.Attr {
		if !utf8.ValidString(k) || !utf8.ValidString(v) {
			continue
		}
		out.Attr[k] = v
	}
	return out, nil
}

// LookupPasswdID looks up a password entry by numeric uid.
func LookupPasswdID(uid uint32) (*Passwd, error) {
	return lookupPasswd("getpwuid", func(f *userdb.PasswdFile) *userdb.PasswdEntry {
		return f.FindByUID(uid)
	})
}

// LookupPasswdName looks up a password entry by account name.
func LookupPasswdName(name string) (*Passwd, error) {
	return lookupPasswd("getpwnam", func(f *userdb.PasswdFile) *userdb.PasswdEntry {
		return f.Find(name)
	})
}

// LookupGroupID looks up a group entry by numeric gid.
func LookupGroupID(gid uint32) (*Group, error) {
	return lookupGroup("getgrgid", func(f *userdb.GroupFile) *userdb.GroupEntry {
		return f.FindByGID(gid)
	})
}

// LookupGroupName looks up a group entry by group name.
func LookupGroupName(name string) (*Group, error) {
	return lookupGroup("getgrnam", func(f *userdb.GroupFile) *userdb.GroupEntry {
		return f.Find(name)
	})
}

func lookupPasswd(call string, find func(*userdb.PasswdFile) *userdb.PasswdEntry) (*Passwd, error) {
	path, err := hostfs.Path(hostfs.EtcPasswdRel)
	if err != nil {
		return nil, err
	}

	lookupMu.Lock()
	defer lookupMu.Unlock()

	f, err := userdb.LoadPasswd(path)
	if err != nil {
		return nil, &LookupError{Call: call, Errno: errnoOf(err)}
	}
	e := find(f)
	if e == nil {
		return nil, nil
	}

	out := &Passwd{UID: e.UID, GID: e.GID}
	var derr error
	if out.Name, derr = fieldString(call, "pw_name", e.Name); derr != nil {
		return nil, derr
	}
	if out.Password, derr = fieldString(call, "pw_passwd", e.Passwd); derr != nil {
		return nil, derr
	}
	if out.Gecos, derr = fieldString(call, "pw_gecos", e.Gecos); derr != nil {
		return nil, derr
	}
	if out.Dir, derr = fieldString(call, "pw_dir", e.Home); derr != nil {
		return nil, derr
	}
	if out.Shell, derr = fieldString(call, "pw_shell", e.Shell); derr != nil {
		return nil, derr
	}
	// Aging and comment fields only exist in the 9-field file form.
	if e.Age != "" {
		if out.Age, derr = fieldString(call, "pw_age", e.Age); derr != nil {
			return nil, derr
		}
	}
	if e.Comment != "" {
		if out.Comment, derr = fieldString(call, "pw_comment", e.Comment); derr != nil {
			return nil, derr
		}
	}
	return out, nil
}

func lookupGroup(call string, find func(*userdb.GroupFile) *userdb.GroupEntry) (*Group, error) {
	path, err := hostfs.Path(hostfs.EtcGroupRel)
	if err != nil {
		return nil, err
	}

	lookupMu.Lock()
	defer lookupMu.Unlock()

	f, err := userdb.LoadGroup(path)
	if err != nil {
		return nil, &LookupError{Call: call, Errno: errnoOf(err)}
	}
	e := find(f)
	if e == nil {
		return nil, nil
	}

	out := &Group{GID: e.GID}
	var derr error
	if out.Name, derr = fieldString(call, "gr_name", e.Name); derr != nil {
		return nil, derr
	}
	if out.Password, derr = fieldString(call, "gr_passwd", e.Passwd); derr != nil {
		return nil, derr
	}
	members := make([]string, 0, len(e.Members))
	for _, m := range e.Members {
		s, derr := fieldString(call, "gr_mem", m)
		if derr != nil {
			return nil, derr
		}
		members = append(members, *s)
	}
	out.Members = members
	return out, nil
}

func fieldString(call, field, s string) (*string, error) {
	if !utf8.ValidString(s) {
		return nil, &DecodeError{Call: call, Field: field}
	}
	return &s, nil
}

func errnoOf(err error) int {
	var e syscall.Errno
	if errors.As(err, &e) {
		return int(e)
	}
	return int(syscall.EIO)
}
