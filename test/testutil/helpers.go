// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

// projectRoot returns the repository root (testutil is in test/testutil).
func projectRoot(t *testing.T) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}

// TestDataPath returns the absolute path of a file in the test/testdata directory.
func TestDataPath(t *testing.T, filename string) string {
	t.Helper()
	return filepath.Join(projectRoot(t), "test", "testdata", filename)
}

// LoadTestData loads a file from the testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestData(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(TestDataPath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// LoadDataFile loads a file from the data directory shipped with the service.
func LoadDataFile(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(projectRoot(t), "data", filename))
	if err != nil {
		t.Fatalf("Failed to load data file %s: %v", filename, err)
	}
	return data
}

// WriteTempFile writes content to a file in a per-test temporary directory
// and returns its path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write temp file %s: %v", name, err)
	}
	return path
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", value, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// FloatPtr returns a pointer to a float64.
// Convenience function for max hours tests.
func FloatPtr(f float64) *float64 {
	return &f
}

// StringPtr returns a pointer to a string.
// Convenience function for preferred carrier tests.
func StringPtr(s string) *string {
	return &s
}
