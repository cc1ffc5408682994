package userdb

import (
	"bytes"
	"strings"

	"github.com/identops/sysid/internal/hostfs"
)

type GroupFile struct {
	pf parsedFile[GroupEntry]
}

func LoadGroup(path string) (*GroupFile, error) {
	b, err := hostfs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines, err := readLines(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	var pf parsedFile[GroupEntry]
	for _, line := range lines {
		if skippable(line) {
			pf.lines = append(pf.lines, rawLine[GroupEntry]{raw: line})
			continue
		}
		parts := parseColonLine(line)
		if len(parts) < 4 {
			pf.lines = append(pf.lines, rawLine[GroupEntry]{raw: line})
			continue
		}
		gid, err := parseID(parts[2], "group.gid")
		if err != nil {
			return nil, err
		}
		members := []string{}
		if parts[3] != "" {
			members = strings.Split(parts[3], ",")
		}
		e := GroupEntry{Name: parts[0], Passwd: parts[1], GID: gid, Members: members}
		pf.lines = append(pf.lines, rawLine[GroupEntry]{entry: &e})
	}
	return &GroupFile{pf: pf}, nil
}

func (f *GroupFile) Find(name string) *GroupEntry {
	for _, e := range f.pf.entries() {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func (f *GroupFile) FindByGID(gid uint32) *GroupEntry {
	for _, e := range f.pf.entries() {
		if e.GID == gid {
			return e
		}
	}
	return nil
}

func (f *GroupFile) List() []GroupEntry {
	out := make([]GroupEntry, 0)
	for _, e := range f.pf.entries() {
		out = append(out, *e)
	}
	return out
}
