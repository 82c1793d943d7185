package middleware

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// logEntries decodes every JSON line written to buf.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log line should be JSON: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

// entryWithMessage returns the first entry logged with msg, or nil.
func entryWithMessage(entries []map[string]interface{}, msg string) map[string]interface{} {
	for _, e := range entries {
		if e["message"] == msg {
			return e
		}
	}
	return nil
}
