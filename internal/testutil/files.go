// Package testutil holds INI fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CombatINI is the smallest file the plugin is usually exercised with.
const CombatINI = "[Combat]\ndamage=10\n"

// WriteFile writes body to dir/name and returns the full path.
// Fails the test on error.
//
// Example:
//
//	path := testutil.WriteFile(t, t.TempDir(), "game.ini", testutil.CombatINI)
func WriteFile(t testing.TB, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the contents of path as a string.
// Fails the test on error.
func ReadFile(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
