package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("AACBOARD_CONFIG", filepath.Join(home, "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".local", "share", "aacboard", "board.txt"), cfg.Board.Path)
	require.False(t, cfg.Board.Strict)
	require.True(t, cfg.History.Enabled)
	require.Equal(t, 8, cfg.History.Limit)
	require.Equal(t, 4, cfg.Suggest.MaxDistance)
	require.Empty(t, cfg.Database.Migrations)
}

func TestLoadFileAndEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "config.toml")
	t.Setenv("AACBOARD_CONFIG", path)
	t.Setenv("AACBOARD_HISTORY_LIMIT", "3")

	content := "[board]\npath = \"/tmp/my-board.txt\"\nstrict = true\n\n[suggest]\nmax_distance = 2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/my-board.txt", cfg.Board.Path)
	require.True(t, cfg.Board.Strict)
	require.Equal(t, 2, cfg.Suggest.MaxDistance)
	require.Equal(t, 3, cfg.History.Limit)
}

func TestLoadBadFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "config.toml")
	t.Setenv("AACBOARD_CONFIG", path)
	require.NoError(t, os.WriteFile(path, []byte("[board\npath = "), 0o644))

	_, err := Load()
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "nested", "config.toml")
	t.Setenv("AACBOARD_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Board.Path = filepath.Join(home, "b.txt")
	cfg.Board.Strict = true
	cfg.History.Enabled = false
	require.NoError(t, Save(cfg))

	again, err := Load()
	require.NoError(t, err)
	require.Equal(t, cfg, again)
}

func TestEnsureFileWritesOnce(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "cfg", "config.toml")
	t.Setenv("AACBOARD_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	wrote, err := EnsureFile(cfg)
	require.NoError(t, err)
	require.True(t, wrote)
	require.FileExists(t, path)

	before, err := os.ReadFile(path)
	require.NoError(t, err)
	cfg.History.Limit = 99
	wrote, err = EnsureFile(cfg)
	require.NoError(t, err)
	require.False(t, wrote)
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, before, after)

	again, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8, again.History.Limit)
}
