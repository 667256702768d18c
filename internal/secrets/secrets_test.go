// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSecret(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeSecret(t, dir, PatentsViewAPIKey, "  pk_abc123  \n")
	writeSecret(t, dir, "ops-email", "user@example.com\n")
	writeSecret(t, dir, "empty-key", "")
	writeSecret(t, dir, "whitespace-only", "   \n\t  ")
	writeSecret(t, dir, ".hidden-key", "secret")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	got, err := Load(dir)
	require.NoError(t, err)

	// Values are trimmed; empty files, dotfiles, and subdirectories are skipped.
	assert.Equal(t, map[string]string{
		PatentsViewAPIKey: "pk_abc123",
		"ops-email":       "user@example.com",
	}, got)
}

func TestLoadMissingDir(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadEmptyDir(t *testing.T) {
	got, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root ignores file modes")
	}

	dir := t.TempDir()
	writeSecret(t, dir, PatentsViewAPIKey, "pk_real")

	badPath := filepath.Join(dir, "bad-key")
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	got, err := Load(dir)
	require.NoError(t, err)

	// The readable file still loads; the unreadable one is skipped with a warning.
	assert.Equal(t, "pk_real", got[PatentsViewAPIKey])
	assert.NotContains(t, got, "bad-key")
}
