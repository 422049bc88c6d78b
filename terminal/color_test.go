package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want uint8
	}{
		{"black", RGB{0, 0, 0}, 16},
		{"white", RGB{255, 255, 255}, 231},
		{"red", RGB{255, 0, 0}, 196},
		{"green", RGB{0, 255, 0}, 46},
		{"blue", RGB{0, 0, 255}, 21},
		{"mid gray", RGB{128, 128, 128}, 244},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBTo256(tt.in))
		})
	}
}

func TestParseColorMode(t *testing.T) {
	m, err := ParseColorMode("truecolor")
	require.NoError(t, err)
	assert.Equal(t, ColorModeTrueColor, m)

	m, err = ParseColorMode("256")
	require.NoError(t, err)
	assert.Equal(t, ColorMode256, m)

	_, err = ParseColorMode("16")
	assert.Error(t, err)
}

func TestDetectColorMode(t *testing.T) {
	for _, key := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		t.Setenv(key, "")
	}
	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-256color")
	assert.Equal(t, ColorMode256, DetectColorMode())

	t.Setenv("COLORTERM", "truecolor")
	assert.Equal(t, ColorModeTrueColor, DetectColorMode())
}

func TestPaletteHelpers(t *testing.T) {
	assert.Equal(t, uint8(16), Cube256(0, 0, 0))
	assert.Equal(t, uint8(208), Cube256(5, 2, 0))
	assert.Equal(t, uint8(231), Cube256(9, 9, 9))
	assert.Equal(t, uint8(232), Gray256(0))
	assert.Equal(t, uint8(255), Gray256(40))
}
