package version

import (
	"strings"
	"testing"
)

func TestVersionDefault(t *testing.T) {
	if Version == "" {
		t.Fatal("Version should have a default value")
	}
	if !strings.Contains(Version, ".") {
		t.Fatalf("Version should look semantic: %q", Version)
	}
}

func TestVersionOverridable(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	// Simulates build-time -ldflags override.
	Version = "1.2.3"
	if Version != "1.2.3" {
		t.Fatalf("Version = %q, want %q", Version, "1.2.3")
	}
}
