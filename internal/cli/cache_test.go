package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestClearDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"cards/ab/1.json", "cards/cd/2.json", "http/font/baloo_2.json"} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	count, err := clearDir(dir)
	if err != nil {
		t.Fatalf("clearDir() error: %v", err)
	}
	if count != 3 {
		t.Errorf("clearDir() = %d, want 3", count)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("%d entries left after clear", len(entries))
	}
	if _, err := os.Stat(dir); err != nil {
		t.Error("clearDir should keep the root directory")
	}
}

func TestClearDirMissing(t *testing.T) {
	count, err := clearDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil || count != 0 {
		t.Errorf("clearDir(missing) = %d, %v", count, err)
	}
}

func TestCachePathCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "statcard.toml")
	if err := os.WriteFile(cfgPath, []byte("[cache]\ndir = \""+filepath.ToSlash(dir)+"/cache\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, newTestCLI(t), "cache", "path", "--config", cfgPath)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != filepath.ToSlash(dir)+"/cache" {
		t.Errorf("cache path = %q", got)
	}
}

func TestCachePathDefault(t *testing.T) {
	out, err := runCommand(t, newTestCLI(t), "cache", "path")
	if err != nil {
		t.Fatal(err)
	}

	home, _ := os.UserHomeDir()
	want := filepath.Join(home, ".cache", appName)
	if got := strings.TrimSpace(out); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}
}
