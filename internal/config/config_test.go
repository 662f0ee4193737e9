package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	return Load(NewFlagSet("test"), args)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t, "game.sgf", "out.png")
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.False(t, cfg.Kifu)
	assert.Equal(t, -1, cfg.Move)
	assert.Equal(t, 800, cfg.Canvas)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, []string{"game.sgf", "out.png"}, cfg.Args)

	opts := cfg.Options()
	assert.Nil(t, opts.MoveNumber)
	assert.Equal(t, "dark", opts.Theme)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := load(t, "--theme", "paper", "--kifu", "--move", "78", "--canvas=400", "--log-level", "debug", "in.sgf")
	require.NoError(t, err)
	assert.Equal(t, "paper", cfg.Theme)
	assert.True(t, cfg.Kifu)
	assert.Equal(t, 400, cfg.Canvas)
	assert.Equal(t, "debug", cfg.LogLevel)

	opts := cfg.Options()
	require.NotNil(t, opts.MoveNumber)
	assert.Equal(t, 78, *opts.MoveNumber)
}

func TestLoad_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sgfrender.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: light\nkifu: true\ncanvas: 600\nmove: 10\n"), 0644))
	t.Setenv("SGFRENDER_CANVAS", "500")
	t.Setenv("SGFRENDER_LOG_LEVEL", "error")

	cfg, err := load(t, "--config", path, "--move", "20")
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme, "from the file")
	assert.True(t, cfg.Kifu, "from the file")
	assert.Equal(t, 500, cfg.Canvas, "environment beats the file")
	assert.Equal(t, "error", cfg.LogLevel, "environment beats the default")
	assert.Equal(t, 20, cfg.Move, "flags beat everything")
}

func TestLoad_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"--theme", "neon"},
		{"--canvas", "0"},
		{"--canvas", "100000"},
		{"--format", "jpeg"},
	} {
		_, err := load(t, args...)
		var ce *Error
		assert.True(t, errors.As(err, &ce), "%v: %v", args, err)
	}

	_, err := load(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = load(t, "--no-such-flag")
	assert.Error(t, err)
}

func TestOutputFormat(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, cfg.OutputFormat("board.png"))
	assert.Equal(t, FormatGIF, cfg.OutputFormat("replay.GIF"))
	assert.Equal(t, FormatPNG, cfg.OutputFormat("-"))

	cfg, err = load(t, "--format", "GIF")
	require.NoError(t, err)
	assert.Equal(t, FormatGIF, cfg.OutputFormat("board.png"))
}
