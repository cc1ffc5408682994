package userdb

import (
	"bytes"
	"strings"

	"github.com/identops/sysid/internal/hostfs"
)

type UserAttrFile struct {
	pf parsedFile[UserAttrEntry]
}

func LoadUserAttr(path string) (*UserAttrFile, error) {
	b, err := hostfs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines, err := readLines(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	var pf parsedFile[UserAttrEntry]
	for _, line := range lines {
		if skippable(line) {
			pf.lines = append(pf.lines, rawLine[UserAttrEntry]{raw: line})
			continue
		}
		parts := parseColonLine(line)
		if len(parts) < 5 {
			pf.lines = append(pf.lines, rawLine[UserAttrEntry]{raw: line})
			continue
		}
		e := UserAttrEntry{
			Name:      parts[0],
			Qualifier: parts[1],
			Attr:      parseKVList(parts[4]),
		}
		pf.lines = append(pf.lines, rawLine[UserAttrEntry]{entry: &e})
	}
	return &UserAttrFile{pf: pf}, nil
}

// parseKVList splits "k1=v1;k2=v2" into a map. Pairs without an equals
// sign are dropped, matching how the system library skips them.
func parseKVList(s string) map[string]string {
	attr := map[string]string{}
	for _, pair := range strings.Split(s, ";") {
		if pair == "" {
			continue
		}
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		attr[k] = v
	}
	return attr
}

func (f *UserAttrFile) Find(name string) *UserAttrEntry {
	for _, e := range f.pf.entries() {
		if e.Name == name {
			return e
		}
	}
	return nil
}
