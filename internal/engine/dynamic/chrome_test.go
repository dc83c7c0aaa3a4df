package dynamic

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func fakeChrome(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("executable-bit check not applicable on windows")
	}
	path := filepath.Join(t.TempDir(), "chrome")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("Failed to create fake browser: %v", err)
	}
	return path
}

func TestResolveExecPathPrefersConfigured(t *testing.T) {
	configured := fakeChrome(t)
	other := fakeChrome(t)
	t.Setenv("CHROME_PATH", other)

	if got := resolveExecPath(configured); got != configured {
		t.Errorf("Expected configured path %q, got %q", configured, got)
	}
}

func TestResolveExecPathFallsBackToDiscovery(t *testing.T) {
	discovered := fakeChrome(t)
	t.Setenv("CHROME_PATH", discovered)

	if got := resolveExecPath(""); got != discovered {
		t.Errorf("Expected discovered path %q, got %q", discovered, got)
	}

	// A bogus configured path must not shadow discovery
	if got := resolveExecPath(filepath.Join(t.TempDir(), "missing")); got != discovered {
		t.Errorf("Expected fallback to discovered path %q, got %q", discovered, got)
	}
}
