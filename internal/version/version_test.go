package version

import (
	"strings"
	"testing"
)

func TestResolve_Injected(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "v9.9.9"
	if got := Resolve(); got != "v9.9.9" {
		t.Fatalf("Resolve() = %q, want injected version", got)
	}
}

func TestString(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, "refdoc ") {
		t.Fatalf("unexpected version line %q", s)
	}
	if !strings.Contains(s, "commit "+GitCommit) || !strings.Contains(s, "built "+BuildTime) {
		t.Fatalf("build metadata missing from %q", s)
	}
}
