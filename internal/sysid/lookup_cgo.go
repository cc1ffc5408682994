//go:build solaris && cgo

package sysid

/*
#cgo LDFLAGS: -lsecdb

#include <stdlib.h>
#include <errno.h>
#include <pwd.h>
#include <grp.h>
#include <zone.h>
#include <user_attr.h>
#include <secdb.h>

static void clear_errno(void) {
	errno = 0;
}
static int get_errno(void) {
	return errno;
}
*/
import "C"

import (
	"unicode/utf8"
	"unsafe"
)

// LookupUserAttr queries the extended user attribute database via
// getusernam(3SECDB). The returned userattr_t is freed exactly once,
// after every needed pair has been copied out. getusernam does not use
// the errno channel, so a null reply is always absence.
func LookupUserAttr(name string) (*UserAttr, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	lookupMu.Lock()
	defer lookupMu.Unlock()

	ua := C.getusernam(cname)
	if ua == nil {
		return nil, nil
	}
	defer C.free_userattr(ua)

	out := &UserAttr{Name: name, Attr: map[string]string{}}
	if ua.attr != nil {
		kvs := unsafe.Slice(ua.attr.data, int(ua.attr.length))
		for i := range kvs {
			if kvs[i].key == nil || kvs[i].value == nil {
				continue
			}
			k := C.GoString(kvs[i].key)
			v := C.GoString(kvs[i].value)
			if !utf8.ValidString(k) || !utf8.ValidString(v) {
				continue
			}
			out.Attr[k] = v
		}
	}
	return out, nil
}

// LookupPasswdID looks up a password entry by numeric uid.
func LookupPasswdID(uid uint32) (*Passwd, error) {
	lookupMu.Lock()
	defer lookupMu.Unlock()
	C.clear_errno()
	return copyPasswd("getpwuid", C.getpwuid(C.uid_t(uid)))
}

// LookupPasswdName looks up a password entry by account name.
func LookupPasswdName(name string) (*Passwd, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	lookupMu.Lock()
	defer lookupMu.Unlock()
	C.clear_errno()
	return copyPasswd("getpwnam", C.getpwnam(cname))
}

// LookupGroupID looks up a group entry by numeric gid.
func LookupGroupID(gid uint32) (*Group, error) {
	lookupMu.Lock()
	defer lookupMu.Unlock()
	C.clear_errno()
	return copyGroup("getgrgid", C.getgrgid(C.gid_t(gid)))
}

// LookupGroupName looks up a group entry by group name.
func LookupGroupName(name string) (*Group, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	lookupMu.Lock()
	defer lookupMu.Unlock()
	C.clear_errno()
	return copyGroup("getgrnam", C.getgrnam(cname))
}

// copyPasswd transfers a static struct passwd reply into an owned
// record. Caller holds lookupMu and has cleared errno before the call.
func copyPasswd(call string, p *C.struct_passwd) (*Passwd, error) {
	if p == nil {
		if e := int(C.get_errno()); e != 0 {
			return nil, &LookupError{Call: call, Errno: e}
		}
		return nil, nil
	}

	out := &Passwd{
		UID: uint32(p.pw_uid),
		GID: uint32(p.pw_gid),
	}
	var err error
	if out.Name, err = optString(call, "pw_name", p.pw_name); err != nil {
		return nil, err
	}
	if out.Password, err = optString(call, "pw_passwd", p.pw_passwd); err != nil {
		return nil, err
	}
	if out.Age, err = optString(call, "pw_age", p.pw_age); err != nil {
		return nil, err
	}
	if out.Comment, err = optString(call, "pw_comment", p.pw_comment); err != nil {
		return nil, err
	}
	if out.Gecos, err = optString(call, "pw_gecos", p.pw_gecos); err != nil {
		return nil, err
	}
	if out.Dir, err = optString(call, "pw_dir", p.pw_dir); err != nil {
		return nil, err
	}
	if out.Shell, err = optString(call, "pw_shell", p.pw_shell); err != nil {
		return nil, err
	}
	return out, nil
}

// copyGroup transfers a static struct group reply into an owned record,
// walking the NUL-terminated gr_mem pointer array.
func copyGroup(call string, g *C.struct_group) (*Group, error) {
	if g == nil {
		if e := int(C.get_errno()); e != 0 {
			return nil, &LookupError{Call: call, Errno: e}
		}
		return nil, nil
	}

	out := &Group{GID: uint32(g.gr_gid)}
	var err error
	if out.Name, err = optString(call, "gr_name", g.gr_name); err != nil {
		return nil, err
	}
	if out.Password, err = optString(call, "gr_passwd", g.gr_passwd); err != nil {
		return nil, err
	}
	if g.gr_mem != nil {
		members := []string{}
		for p := g.gr_mem; *p != nil; p = (**C.char)(unsafe.Add(unsafe.Pointer(p), unsafe.Sizeof(*p))) {
			s, err := optString(call, "gr_mem", *p)
			if err != nil {
				return nil, err
			}
			members = append(members, *s)
		}
		out.Members = members
	}
	return out, nil
}

func optString(call, field string, p *C.char) (*string, error) {
	if p == nil {
		return nil, nil
	}
	s := C.GoString(p)
	if !utf8.ValidString(s) {
		return nil, &DecodeError{Call: call, Field: field}
	}
	return &s, nil
}

// ZoneID returns the calling process's zone id.
func ZoneID() int32 {
	return int32(C.getzoneid())
}

// Zonename resolves the calling process's zone name. Failure or
// truncation means the process cannot even establish where it is
// running, which the rest of the system treats as non-continuable.
func Zonename() (string, error) {
	buf := make([]byte, C.ZONENAME_MAX)
	sz := C.getzonenamebyid(C.getzoneid(), (*C.char)(unsafe.Pointer(&buf[0])), C.size_t(len(buf)))
	if sz < 0 || int(sz) > len(buf) {
		return "", &UnrecoverableError{Call: "getzonenamebyid"}
	}
	return cstr(buf[:sz]), nil
}
