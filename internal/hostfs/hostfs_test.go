package hostfs

import (
	"path/filepath"
	"testing"
)

func TestPathJoinsRoot(t *testing.T) {
	SetRoot("/mnt/host")
	t.Cleanup(func() { SetRoot(DefaultRoot) })

	got, err := Path(EtcPasswdRel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Join("/mnt/host", "etc/passwd") {
		t.Fatalf("unexpected path: %s", got)
	}
}

func TestPathStripsLeadingSlash(t *testing.T) {
	SetRoot("/host")
	t.Cleanup(func() { SetRoot(DefaultRoot) })

	got, err := Path("/etc/group")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/host/etc/group" {
		t.Fatalf("unexpected path: %s", got)
	}
}

func TestPathRejectsEscapes(t *testing.T) {
	for _, rel := range []string{"", ".", "..", "../etc/passwd", "a/../../b"} {
		if _, err := Path(rel); err == nil {
			t.Fatalf("expected rejection for %q", rel)
		}
	}
}

func TestSetRootEmptyRestoresDefault(t *testing.T) {
	SetRoot("/somewhere")
	SetRoot("")
	if Root() != DefaultRoot {
		t.Fatalf("unexpected root: %s", Root())
	}
}
