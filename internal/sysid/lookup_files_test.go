//go:build unix && !(solaris && cgo)

package sysid

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/identops/sysid/internal/hostfs"
)

func fixtureRoot(t *testing.T, files map[string]string) {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "etc"), 0o755); err != nil {
		t.Fatalf("mkdir etc: %v", err)
	}
	for rel, content := range files {
		if err := os.WriteFile(filepath.Join(root, rel), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	hostfs.SetRoot(root)
	t.Cleanup(func() { hostfs.SetRoot(hostfs.DefaultRoot) })
}

const passwdFixture = "root:x:0:0:Super User:/root:/bin/sh\n" +
	"alice:x:1000:1000:Alice Arnold:/home/alice:/bin/bash\n" +
	"bob:x:1001:1001::/home/bob:/bin/zsh\n"

const groupFixture = "root:x:0:\n" +
	"staff:x:50:alice,bob\n" +
	"empty:x:60:\n"

func TestLookupPasswdNameAbsent(t *testing.T) {
	fixtureRoot(t, map[string]string{"etc/passwd": passwdFixture})

	p, err := LookupPasswdName("nosuch")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Fatalf("expected absence, got %+v", p)
	}
}

func TestLookupPasswdNameFields(t *testing.T) {
	fixtureRoot(t, map[string]string{"etc/passwd": passwdFixture})

	p, err := LookupPasswdName("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil {
		t.Fatal("expected entry for alice")
	}
	if p.Name == nil || *p.Name != "alice" {
		t.Fatalf("unexpected name: %v", p.Name)
	}
	if p.UID != 1000 || p.GID != 1000 {
		t.Fatalf("unexpected ids: uid=%d gid=%d", p.UID, p.GID)
	}
	if p.Gecos == nil || *p.Gecos != "Alice Arnold" {
		t.Fatalf("unexpected gecos: %v", p.Gecos)
	}
	if p.Dir == nil || *p.Dir != "/home/alice" {
		t.Fatalf("unexpected dir: %v", p.Dir)
	}
	if p.Shell == nil || *p.Shell != "/bin/bash" {
		t.Fatalf("unexpected shell: %v", p.Shell)
	}
	if p.Age != nil || p.Comment != nil {
		t.Fatalf("expected absent aging fields, got age=%v comment=%v", p.Age, p.Comment)
	}
	// Empty gecos must stay a present empty field, not vanish.
	b, err := LookupPasswdName("bob")
	if err != nil || b == nil {
		t.Fatalf("lookup bob: %v %v", b, err)
	}
	if b.Gecos == nil || *b.Gecos != "" {
		t.Fatalf("expected present empty gecos, got %v", b.Gecos)
	}
}

func TestLookupPasswdID(t *testing.T) {
	fixtureRoot(t, map[string]string{"etc/passwd": passwdFixture})

	p, err := LookupPasswdID(1001)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil || p.Name == nil || *p.Name != "bob" {
		t.Fatalf("expected bob, got %+v", p)
	}

	p, err = LookupPasswdID(4242)
	if err != nil || p != nil {
		t.Fatalf("expected absence for unknown uid, got %+v, %v", p, err)
	}
}

func TestLookupPasswdMissingDatabase(t *testing.T) {
	fixtureRoot(t, map[string]string{})

	_, err := LookupPasswdName("alice")
	var le *LookupError
	if !errors.As(err, &le) {
		t.Fatalf("expected LookupError, got %v", err)
	}
	if le.Call != "getpwnam" {
		t.Fatalf("unexpected call name: %s", le.Call)
	}
	if le.Errno != int(syscall.ENOENT) {
		t.Fatalf("unexpected errno: %d", le.Errno)
	}
}

func TestLookupGroupMembers(t *testing.T) {
	fixtureRoot(t, map[string]string{"etc/group": groupFixture})

	g, err := LookupGroupName("staff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g == nil || g.Name == nil || *g.Name != "staff" {
		t.Fatalf("expected staff, got %+v", g)
	}
	if g.GID != 50 {
		t.Fatalf("unexpected gid: %d", g.GID)
	}
	if len(g.Members) != 2 || g.Members[0] != "alice" || g.Members[1] != "bob" {
		t.Fatalf("unexpected members: %v", g.Members)
	}
}

func TestLookupGroupEmptyMembers(t *testing.T) {
	fixtureRoot(t, map[string]string{"etc/group": groupFixture})

	g, err := LookupGroupName("empty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g == nil {
		t.Fatal("expected entry")
	}
	if g.Members == nil || len(g.Members) != 0 {
		t.Fatalf("expected present empty member list, got %v", g.Members)
	}
}

func TestLookupGroupID(t *testing.T) {
	fixtureRoot(t, map[string]string{"etc/group": groupFixture})

	g, err := LookupGroupID(60)
	if err != nil || g == nil || g.Name == nil || *g.Name != "empty" {
		t.Fatalf("expected empty group, got %+v, %v", g, err)
	}
	g, err = LookupGroupID(999)
	if err != nil || g != nil {
		t.Fatalf("expected absence, got %+v, %v", g, err)
	}
}

func TestLookupUserAttr(t *testing.T) {
	fixtureRoot(t, map[string]string{
		"etc/user_attr": "# header comment\n" +
			"alice::::profiles=Device Management, Printer Management,Software Installation;roles=operator\n",
	})

	ua, err := LookupUserAttr("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ua == nil {
		t.Fatal("expected entry")
	}
	if ua.Name != "alice" {
		t.Fatalf("unexpected name: %s", ua.Name)
	}
	if ua.Attr["roles"] != "operator" {
		t.Fatalf("unexpected roles: %q", ua.Attr["roles"])
	}
	want := []string{"Device Management", "Printer Management", "Software Installation"}
	got := ua.Profiles()
	if len(got) != len(want) {
		t.Fatalf("unexpected profiles: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("profile %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestLookupUserAttrAbsent(t *testing.T) {
	fixtureRoot(t, map[string]string{"etc/user_attr": "alice::::profiles=X\n"})

	ua, err := LookupUserAttr("nosuch")
	if err != nil || ua != nil {
		t.Fatalf("expected absence, got %+v, %v", ua, err)
	}
}

func TestLookupUserAttrMissingDatabase(t *testing.T) {
	fixtureRoot(t, map[string]string{})

	ua, err := LookupUserAttr("alice")
	if err != nil || ua != nil {
		t.Fatalf("missing user_attr should read as empty database, got %+v, %v", ua, err)
	}
}

func TestConsecutiveLookupsDoNotLeakState(t *testing.T) {
	fixtureRoot(t, map[string]string{
		"etc/passwd": passwdFixture,
		"etc/group":  groupFixture,
	})

	a, err := LookupPasswdName("alice")
	if err != nil || a == nil {
		t.Fatalf("lookup alice: %v", err)
	}
	b, err := LookupPasswdName("bob")
	if err != nil || b == nil {
		t.Fatalf("lookup bob: %v", err)
	}
	if *a.Name != "alice" || *a.Dir != "/home/alice" {
		t.Fatalf("first result mutated by second lookup: %+v", a)
	}
	if *b.Name != "bob" || *b.Dir != "/home/bob" {
		t.Fatalf("second result carries stale data: %+v", b)
	}

	staff, err := LookupGroupName("staff")
	if err != nil || staff == nil {
		t.Fatalf("lookup staff: %v", err)
	}
	empty, err := LookupGroupName("empty")
	if err != nil || empty == nil {
		t.Fatalf("lookup empty: %v", err)
	}
	if len(staff.Members) != 2 {
		t.Fatalf("first member list mutated: %v", staff.Members)
	}
	if len(empty.Members) != 0 {
		t.Fatalf("stale members leaked into second result: %v", empty.Members)
	}
}

func TestDecodeAsymmetry(t *testing.T) {
	fixtureRoot(t, map[string]string{
		"etc/passwd":    "mojibake:x:2000:2000:bad\xffname:/home/m:/bin/sh\n",
		"etc/user_attr": "mojibake::::good=value;bad=\xffbroken\n",
	})

	// Structured record: invalid UTF-8 fails the whole call.
	_, err := LookupPasswdName("mojibake")
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if de.Field != "pw_gecos" {
		t.Fatalf("unexpected field: %s", de.Field)
	}

	// Attribute map: the bad pair is dropped, the rest survives.
	ua, err := LookupUserAttr("mojibake")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ua == nil {
		t.Fatal("expected entry")
	}
	if ua.Attr["good"] != "value" {
		t.Fatalf("good pair missing: %v", ua.Attr)
	}
	if _, ok := ua.Attr["bad"]; ok {
		t.Fatalf("undecodable pair should be dropped: %v", ua.Attr)
	}
}

func TestNodename(t *testing.T) {
	n, err := Nodename()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n == "" {
		t.Fatal("expected non-empty nodename")
	}
}

func TestZoneIdentity(t *testing.T) {
	if id := ZoneID(); id != 0 {
		t.Fatalf("expected global zone id 0, got %d", id)
	}
	name, err := Zonename()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "global" {
		t.Fatalf("expected global zone, got %q", name)
	}
}
