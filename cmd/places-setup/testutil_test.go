package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places-setup.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
