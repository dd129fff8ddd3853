package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)

	assert.False(t, cfg.Color)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Banner, "unset fields keep their default")
	assert.Equal(t, "/tmp/concepts.log", cfg.LogFile)
	assert.Equal(t, "light", cfg.NotesStyle)
	assert.Equal(t, 100, cfg.NotesWidth)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadInvalid(t *testing.T) {
	cases := []string{"config_invalid.yaml", "config_bad_style.yaml"}
	for _, name := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(filepath.Join("testdata", name))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestValidateNegativeWidth(t *testing.T) {
	cfg := Default()
	cfg.NotesWidth = -1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
