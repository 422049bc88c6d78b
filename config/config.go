// Package config loads stage settings from defaults, an optional YAML file, the environment and flags
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/glyphstage/parameter"
	"github.com/lixenwraith/glyphstage/terminal"
)

// EnvPrefix prefixes every environment override, e.g. GLYPHSTAGE_SCREEN_WIDTH
const EnvPrefix = "GLYPHSTAGE"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full runtime configuration
type Config struct {
	FPS    int          `mapstructure:"fps"`
	Screen ScreenConfig `mapstructure:"screen"`
	Log    LogConfig    `mapstructure:"log"`
	Assets AssetConfig  `mapstructure:"assets"`
	Theme  ThemeConfig  `mapstructure:"theme"`
}

// ScreenConfig sizes the compositor
type ScreenConfig struct {
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	AutoResize bool   `mapstructure:"auto_resize"`
	Margin     int    `mapstructure:"margin"`
	ColorMode  string `mapstructure:"color_mode"`
}

// LogConfig routes the zap logger; empty File disables logging
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// AssetConfig holds the loader roots
type AssetConfig struct {
	TextureRoot   string `mapstructure:"texture_root"`
	AnimationRoot string `mapstructure:"animation_root"`
	Manifest      string `mapstructure:"manifest"`
}

// ThemeConfig names sprite colors; values are tcell color names or #rrggbb
type ThemeConfig struct {
	Player string `mapstructure:"player"`
	Wall   string `mapstructure:"wall"`
	Text   string `mapstructure:"text"`
}

// flagKeys maps flag names to config keys
var flagKeys = map[string]string{
	"fps":            "fps",
	"width":          "screen.width",
	"height":         "screen.height",
	"auto-resize":    "screen.auto_resize",
	"margin":         "screen.margin",
	"color-mode":     "screen.color_mode",
	"log-level":      "log.level",
	"log-file":       "log.file",
	"texture-root":   "assets.texture_root",
	"animation-root": "assets.animation_root",
	"manifest":       "assets.manifest",
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		FPS: parameter.DefaultFPS,
		Screen: ScreenConfig{
			Width:     parameter.DefaultScreenWidth,
			Height:    parameter.DefaultScreenHeight,
			Margin:    parameter.DefaultScreenMargin,
			ColorMode: "auto",
		},
		Log: LogConfig{Level: "info"},
		Theme: ThemeConfig{
			Player: "yellow",
			Wall:   "gray",
			Text:   "white",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("fps", d.FPS)
	v.SetDefault("screen.width", d.Screen.Width)
	v.SetDefault("screen.height", d.Screen.Height)
	v.SetDefault("screen.auto_resize", d.Screen.AutoResize)
	v.SetDefault("screen.margin", d.Screen.Margin)
	v.SetDefault("screen.color_mode", d.Screen.ColorMode)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("assets.texture_root", d.Assets.TextureRoot)
	v.SetDefault("assets.animation_root", d.Assets.AnimationRoot)
	v.SetDefault("assets.manifest", d.Assets.Manifest)
	v.SetDefault("theme.player", d.Theme.Player)
	v.SetDefault("theme.wall", d.Theme.Wall)
	v.SetDefault("theme.text", d.Theme.Text)
}

// RegisterFlags adds the command-line overrides to fs
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int("fps", d.FPS, "target frames per second")
	fs.Int("width", d.Screen.Width, "viewport width in cells")
	fs.Int("height", d.Screen.Height, "viewport height in cells")
	fs.Bool("auto-resize", d.Screen.AutoResize, "follow the terminal size")
	fs.Int("margin", d.Screen.Margin, "cells kept free at the right and bottom edges")
	fs.String("color-mode", d.Screen.ColorMode, "color encoding: auto, 256 or truecolor")
	fs.String("log-level", d.Log.Level, "log level: debug, info, warn, error")
	fs.String("log-file", d.Log.File, "log file path, empty disables logging")
	fs.String("texture-root", d.Assets.TextureRoot, "directory textures are loaded from")
	fs.String("animation-root", d.Assets.AnimationRoot, "directory animations are loaded from")
	fs.String("manifest", d.Assets.Manifest, "YAML animation manifest")
}

// Load resolves configuration in order: defaults, file, environment, changed flags
// Empty path skips the file; nil flags skips flag binding
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate fails on the first out-of-range setting
func (c *Config) Validate() error {
	if c.FPS <= 0 || c.FPS > parameter.MaxFPS {
		return fmt.Errorf("%w: fps %d outside 1..%d", ErrInvalid, c.FPS, parameter.MaxFPS)
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.Margin < 0 {
		return fmt.Errorf("%w: screen margin %d", ErrInvalid, c.Screen.Margin)
	}
	if _, err := terminal.ParseColorMode(c.Screen.ColorMode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Log.Level != "" {
		if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	for _, theme := range []struct{ name, value string }{
		{"theme.player", c.Theme.Player},
		{"theme.wall", c.Theme.Wall},
		{"theme.text", c.Theme.Text},
	} {
		if _, err := ParseColor(theme.value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, theme.name, err)
		}
	}
	return nil
}

// ColorMode returns the parsed screen color mode
func (c *Config) ColorMode() terminal.ColorMode {
	mode, _ := terminal.ParseColorMode(c.Screen.ColorMode)
	return mode
}

// ParseColor resolves a tcell color name or #rrggbb; empty and "default" mean terminal default
func ParseColor(name string) (tcell.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "default" {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
