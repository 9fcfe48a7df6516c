package config

import (
	"testing"

	"classic-snake/game/types"

	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, v := range []string{"SNAKE_WIDTH", "SNAKE_HEIGHT", "SNAKE_CELL", "SNAKE_SPEED", "SNAKE_BACKEND", "SNAKE_SOUND"} {
		t.Setenv(v, "")
	}
	c := FromEnv()
	require.Equal(t, 640, c.ScreenWidth)
	require.Equal(t, 480, c.ScreenHeight)
	require.Equal(t, 20, c.CellSize)
	require.Equal(t, 20, c.Speed)
	require.Equal(t, BackendWindow, c.Backend)
	require.False(t, c.Sound)
	require.NoError(t, c.Validate())
	require.Equal(t, types.DefaultGrid(), c.Grid())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SNAKE_WIDTH", "400")
	t.Setenv("SNAKE_SPEED", "bogus")
	t.Setenv("SNAKE_BACKEND", BackendTerminal)
	t.Setenv("SNAKE_SOUND", "true")

	c := FromEnv()
	require.Equal(t, 400, c.ScreenWidth)
	require.Equal(t, 20, c.Speed)
	require.Equal(t, BackendTerminal, c.Backend)
	require.True(t, c.Sound)
}

func TestValidate(t *testing.T) {
	base := Config{ScreenWidth: 640, ScreenHeight: 480, CellSize: 20, Speed: 20, Backend: BackendWindow}
	require.NoError(t, base.Validate())

	cases := map[string]func(c *Config){
		"zero cell":   func(c *Config) { c.CellSize = 0 },
		"zero width":  func(c *Config) { c.ScreenWidth = 0 },
		"misaligned":  func(c *Config) { c.ScreenHeight = 470 },
		"zero speed":  func(c *Config) { c.Speed = 0 },
		"bad backend": func(c *Config) { c.Backend = "opengl" },
	}
	for name, mutate := range cases {
		c := base
		mutate(&c)
		require.Error(t, c.Validate(), name)
	}
}
