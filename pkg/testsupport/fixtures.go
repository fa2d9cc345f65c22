// Package testsupport holds helpers for loading JSON fixtures in tests.
package testsupport

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

// LoadFixture loads test data from a fixture file.
// The path is relative to the test package directory.
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture from %s: %v", path, err)
	}

	return data
}

// LoadFixtureJSON loads JSON test data from a fixture file and unmarshals it.
// The path is relative to the test package directory.
func LoadFixtureJSON(t *testing.T, path string, dest any) {
	t.Helper()

	data := LoadFixture(t, path)
	if err := json.Unmarshal(data, dest); err != nil {
		t.Fatalf("failed to unmarshal JSON fixture from %s: %v", path, err)
	}
}

// FixturePath constructs a path to a fixture file relative to the testdata directory.
func FixturePath(filename string) string {
	return filepath.Join("testdata", filename)
}

// ServeFixture writes a fixture file as a JSON response body. It keeps
// test servers declarative: routes map to fixture files instead of inline
// response literals.
func ServeFixture(t *testing.T, w http.ResponseWriter, path string) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(LoadFixture(t, path)); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
}
