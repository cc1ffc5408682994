package sysid

import (
	"errors"
	"fmt"
	"testing"
)

func TestLookupErrorMessage(t *testing.T) {
	err := &LookupError{Call: "getpwnam", Errno: 5}
	if got := err.Error(); got != "getpwnam: errno 5" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestIsUnrecoverable(t *testing.T) {
	base := &UnrecoverableError{Call: "getzonenamebyid"}
	if !IsUnrecoverable(base) {
		t.Fatal("direct UnrecoverableError not detected")
	}
	wrapped := fmt.Errorf("startup probe: %w", base)
	if !IsUnrecoverable(wrapped) {
		t.Fatal("wrapped UnrecoverableError not detected")
	}
	if IsUnrecoverable(errors.New("plain")) {
		t.Fatal("plain error misclassified")
	}
	if IsUnrecoverable(&LookupError{Call: "getgrgid", Errno: 13}) {
		t.Fatal("LookupError misclassified")
	}
}

func TestUnrecoverableErrorUnwrap(t *testing.T) {
	inner := errors.New("uname failed")
	err := &UnrecoverableError{Call: "uname", Err: inner}
	if !errors.Is(err, inner) {
		t.Fatal("expected Unwrap to expose the inner error")
	}
	if err.Error() != "uname failure: uname failed" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestProfilesSplit(t *testing.T) {
	ua := &UserAttr{Name: "x", Attr: map[string]string{"profiles": "a, b,c"}}
	got := ua.Profiles()
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected split: %v", got)
	}
}

func TestProfilesMissing(t *testing.T) {
	ua := &UserAttr{Name: "x", Attr: map[string]string{}}
	if got := ua.Profiles(); len(got) != 0 {
		t.Fatalf("expected empty profiles, got %v", got)
	}
}

func TestProfilesKeepsDuplicates(t *testing.T) {
	ua := &UserAttr{Name: "x", Attr: map[string]string{"profiles": "a,a, a"}}
	got := ua.Profiles()
	if len(got) != 3 {
		t.Fatalf("duplicates must be preserved: %v", got)
	}
}
