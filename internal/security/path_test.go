package security

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveWithinValidPath(t *testing.T) {
	root := t.TempDir()

	resolved, err := ResolveWithin(root, "src", "styles", "global.scss")
	if err != nil {
		t.Fatalf("ResolveWithin returned error: %v", err)
	}

	expected := filepath.Join(root, "src", "styles", "global.scss")
	if resolved != expected {
		t.Errorf("expected %s, got %s", expected, resolved)
	}
}

func TestResolveWithinBlocksEscape(t *testing.T) {
	root := t.TempDir()
	_, err := ResolveWithin(root, "..", "etc", "passwd")
	if !errors.Is(err, ErrPathEscape) {
		t.Fatalf("expected ErrPathEscape, got %v", err)
	}
}

func TestResolveWithinEmptyRoot(t *testing.T) {
	_, err := ResolveWithin("", "index.html")
	if err == nil {
		t.Fatal("expected error for empty project root")
	}
	if err.Error() != "project root is required" {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestResolveWithinAbsolutePathAttempt(t *testing.T) {
	root := t.TempDir()

	resolved, err := ResolveWithin(root, "/etc/passwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(resolved, root) {
		t.Errorf("resolved path %s should be within root %s", resolved, root)
	}
}
