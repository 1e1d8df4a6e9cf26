package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// WriteFile puts content in a file called name inside the test's temporary
// directory and returns its path. The file is only readable by its owner so
// tests can tell whether code under test changed the mode.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// MissingFile returns a path inside the test's temporary directory that
// nothing exists at.
func MissingFile(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)
	return path
}

// ReadYaml decodes the YAML mapping stored at path.
func ReadYaml(t *testing.T, path string) map[string]any {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var document map[string]any
	require.NoError(t, yaml.Unmarshal(content, &document))
	return document
}
