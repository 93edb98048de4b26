package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, 60, cfg.Window.Framerate)
	assert.Equal(t, 100.0, cfg.Movement.Delta)
	assert.Equal(t, 2.1, cfg.Collision.Tolerance)
	assert.Equal(t, 0.05, cfg.Camera.ZoomStep)
	assert.Equal(t, 10, cfg.Console.MaxLines)

	player, ok := cfg.Sprites["player"]
	require.True(t, ok)
	assert.Equal(t, "bird.png", player.Image)
	assert.Equal(t, 24.0, player.Height)
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "")

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoader_PartialOverride(t *testing.T) {
	fsys := fstest.MapFS{
		FileName: {Data: []byte("movement:\n  delta: 250\n")},
	}

	cfg, err := NewFSLoader(fsys, "").Load()
	require.NoError(t, err)

	assert.Equal(t, 250.0, cfg.Movement.Delta)
	assert.Equal(t, 2.1, cfg.Collision.Tolerance, "untouched sections keep defaults")
	assert.Len(t, cfg.Sprites, 6)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "window: [oops"},
		{"zero tolerance", "collision:\n  tolerance: 0\n"},
		{"bad window", "window:\n  width: -1\n"},
		{"bad sprite", "sprites:\n  player: {image: bird.png, width: 0, height: 3}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{FileName: {Data: []byte(tt.data)}}
			_, err := NewFSLoader(fsys, "").Load()
			assert.Error(t, err)
		})
	}
}

func TestWatcher_ReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("movement:\n  delta: 1\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, path, name)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for yaml write")
	}
}

func TestIsConfigFile(t *testing.T) {
	assert.True(t, isConfigFile("a/game.yaml"))
	assert.True(t, isConfigFile("GAME.YML"))
	assert.False(t, isConfigFile("bird.png"))
}
