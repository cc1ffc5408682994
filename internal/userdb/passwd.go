package userdb

import (
	"bytes"

	"github.com/identops/sysid/internal/hostfs"
)

type PasswdFile struct {
	pf parsedFile[PasswdEntry]
}

func LoadPasswd(path string) (*PasswdFile, error) {
	b, err := hostfs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines, err := readLines(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	var pf parsedFile[PasswdEntry]
	for _, line := range lines {
		if skippable(line) {
			pf.lines = append(pf.lines, rawLine[PasswdEntry]{raw: line})
			continue
		}
		parts := parseColonLine(line)
		if len(parts) < 7 {
			// Preserve unknown line as-is.
			pf.lines = append(pf.lines, rawLine[PasswdEntry]{raw: line})
			continue
		}
		uid, err := parseID(parts[2], "passwd.uid")
		if err != nil {
			return nil, err
		}
		gid, err := parseID(parts[3], "passwd.gid")
		if err != nil {
			return nil, err
		}
		e := PasswdEntry{
			Name:   parts[0],
			Passwd: parts[1],
			UID:    uid,
			GID:    gid,
			Gecos:  parts[4],
			Home:   parts[5],
			Shell:  parts[6],
		}
		// 9-field form carries the aging and comment fields after the
		// gid, shifting the rest: name:passwd:uid:gid:age:comment:gecos:home:shell.
		if len(parts) >= 9 {
			e.Age = parts[4]
			e.Comment = parts[5]
			e.Gecos = parts[6]
			e.Home = parts[7]
			e.Shell = parts[8]
		}
		pf.lines = append(pf.lines, rawLine[PasswdEntry]{entry: &e})
	}

	return &PasswdFile{pf: pf}, nil
}

func (f *PasswdFile) Find(name string) *PasswdEntry {
	for _, e := range f.pf.entries() {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func (f *PasswdFile) FindByUID(uid uint32) *PasswdEntry {
	for _, e := range f.pf.entries() {
		if e.UID == uid {
			return e
		}
	}
	return nil
}

func (f *PasswdFile) List() []PasswdEntry {
	out := make([]PasswdEntry, 0)
	for _, e := range f.pf.entries() {
		out = append(out, *e)
	}
	return out
}
