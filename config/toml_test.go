package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[player]
socket = "/tmp/custom.sock"
speed = 1.5

[playback]
caption-dwell-ms = 1500

[log]
catalog = "/data/actions.txt"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Player.SocketPath)
	assert.Equal(t, "/tmp/custom.sock", *cfg.Player.SocketPath)
	require.NotNil(t, cfg.Player.Speed)
	assert.Equal(t, 1.5, *cfg.Player.Speed)
	require.NotNil(t, cfg.Playback.CaptionDwellMs)
	assert.Equal(t, 1500, *cfg.Playback.CaptionDwellMs)
	assert.Nil(t, cfg.Playback.FadeGapMs)
	require.NotNil(t, cfg.Log.CatalogPath)
	assert.Equal(t, "/data/actions.txt", *cfg.Log.CatalogPath)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Player.SocketPath)
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}
