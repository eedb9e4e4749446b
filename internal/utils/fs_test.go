package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"home directory with slash", "~/test", filepath.Join(home, "test")},
		{"home directory only", "~", home},
		{"regular path", "/tmp/test", "/tmp/test"},
		{"relative path", "./test", "./test"},
		{"tilde in the middle", "./a~/b", "./a~/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "stylecfg.yaml")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "missing.yaml")))
}
