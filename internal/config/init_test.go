package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/siteconf/internal/foundation/errors"
)

func TestInitWritesLoadableExample(t *testing.T) {
	want, err := Load(ExampleRaw())
	require.NoError(t, err)

	for _, name := range []string{"siteconf.yaml", "siteconf.toml", "nested/siteconf.json"} {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), name)
			require.NoError(t, Init(p, false))

			got, err := LoadFiles(p)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestInitRefusesToOverwrite(t *testing.T) {
	p := filepath.Join(t.TempDir(), "siteconf.yaml")
	require.NoError(t, os.WriteFile(p, []byte("integrations: []\n"), 0o600))

	err := Init(p, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))

	require.NoError(t, Init(p, true))
	cfg, err := LoadFiles(p)
	require.NoError(t, err)
	assert.Len(t, cfg.Integrations, 3)
}

func TestInitReportsWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "taken")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := Init(filepath.Join(blocker, "siteconf.yaml"), false)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))
}

func TestInitRejectsUnknownExtension(t *testing.T) {
	assert.Error(t, Init(filepath.Join(t.TempDir(), "siteconf.ini"), false))
}
