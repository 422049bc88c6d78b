package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/glyphstage/terminal"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stage.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
fps: 30
screen:
  width: 40
  auto_resize: true
  color_mode: truecolor
log:
  file: /tmp/stage.log
theme:
  player: "#ff8800"
`), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, 40, cfg.Screen.Width)
	assert.Equal(t, 24, cfg.Screen.Height)
	assert.True(t, cfg.Screen.AutoResize)
	assert.Equal(t, terminal.ColorModeTrueColor, cfg.ColorMode())
	assert.Equal(t, "/tmp/stage.log", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "#ff8800", cfg.Theme.Player)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stage.yaml")
	require.NoError(t, os.WriteFile(path, []byte("screen:\n  width: 40\n  height: 10\nfps: 30\n"), 0o644))

	t.Setenv("GLYPHSTAGE_SCREEN_WIDTH", "50")
	t.Setenv("GLYPHSTAGE_FPS", "20")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--width=60", "--log-level=debug"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Screen.Width, "flag beats env")
	assert.Equal(t, 20, cfg.FPS, "env beats file")
	assert.Equal(t, 10, cfg.Screen.Height, "file beats default")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 1, cfg.Screen.Margin, "untouched flag keeps default")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"fps above max", func(c *Config) { c.FPS = 10_000 }},
		{"zero width", func(c *Config) { c.Screen.Width = 0 }},
		{"negative height", func(c *Config) { c.Screen.Height = -1 }},
		{"negative margin", func(c *Config) { c.Screen.Margin = -1 }},
		{"color mode", func(c *Config) { c.Screen.ColorMode = "16" }},
		{"log level", func(c *Config) { c.Log.Level = "chatty" }},
		{"theme color", func(c *Config) { c.Theme.Wall = "not-a-color" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestValidateReportsFirstThemeColor(t *testing.T) {
	cfg := Default()
	cfg.Theme.Player = "bad-player"
	cfg.Theme.Wall = "bad-wall"
	cfg.Theme.Text = "bad-text"

	for range 20 {
		err := cfg.Validate()
		require.ErrorIs(t, err, ErrInvalid)
		assert.Contains(t, err.Error(), "theme.player")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("GLYPHSTAGE_FPS", "0")
	_, err := Load("", nil)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("Red")
	require.NoError(t, err)
	assert.Equal(t, tcell.ColorRed, c)

	c, err = ParseColor("#102030")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewHexColor(0x102030), c)

	c, err = ParseColor("")
	require.NoError(t, err)
	assert.Equal(t, tcell.ColorDefault, c)

	_, err = ParseColor("chartreuse-ish")
	assert.Error(t, err)
}
