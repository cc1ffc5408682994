package userdb

import (
	"bytes"

	"github.com/identops/sysid/internal/hostfs"
)

type ShadowFile struct {
	pf parsedFile[ShadowEntry]
}

func LoadShadow(path string) (*ShadowFile, error) {
	b, err := hostfs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines, err := readLines(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	var pf parsedFile[ShadowEntry]
	for _, line := range lines {
		if skippable(line) {
			pf.lines = append(pf.lines, rawLine[ShadowEntry]{raw: line})
			continue
		}
		parts := parseColonLine(line)
		if len(parts) < 2 {
			pf.lines = append(pf.lines, rawLine[ShadowEntry]{raw: line})
			continue
		}
		e := ShadowEntry{Name: parts[0], Hash: parts[1]}
		pf.lines = append(pf.lines, rawLine[ShadowEntry]{entry: &e})
	}
	return &ShadowFile{pf: pf}, nil
}

func (f *ShadowFile) Find(name string) *ShadowEntry {
	for _, e := range f.pf.entries() {
		if e.Name == name {
			return e
		}
	}
	return nil
}
