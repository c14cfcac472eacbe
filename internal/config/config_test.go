package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/matchpoint/internal/match"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadAppliesDefaultsForMissingValues(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
match {
  location = "Club Central"
}
export {
  auto_export = false
}
ui {
  log_level = "debug"
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Club Central", cfg.Match.Location)
	assert.False(t, cfg.Export.AutoExport)
	assert.Equal(t, "debug", cfg.UI.LogLevel)
	// Unset values fall back.
	assert.Equal(t, 3, cfg.Match.DefaultFormat)
	assert.Equal(t, "p1", cfg.Match.FirstServer)
	assert.Equal(t, ".", cfg.Export.Dir)
	assert.Equal(t, "matchpoint.log", cfg.UI.LogFile)
}

func TestCustomFormatBlock(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
format {
  name              = "Club evening"
  games_to_win_set  = 5
  tiebreak_at_games = 4
  deciding_tb10     = true
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	f := cfg.DefaultFormat()
	assert.Equal(t, "Club evening", f.Name)
	assert.Equal(t, 5, f.GamesToWinSet)
	assert.Equal(t, 4, f.TiebreakAtGames)
	// Tiebreak points default to 7 when unset.
	assert.Equal(t, 7, f.SetTiebreakTarget)
	assert.Equal(t, match.MatchTiebreak10, f.Deciding)
}

func TestCustomFormatValidation(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Format = &FormatSettings{GamesToWinSet: 6, TiebreakAtGames: 9, SetTiebreakPoints: 7}
	assert.Error(t, cfg.Validate())

	cfg.Format.TiebreakAtGames = 6
	assert.NoError(t, cfg.Validate())
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `match { default_format = `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"format out of range", func(c *Config) { c.Match.DefaultFormat = 9 }, true},
		{"bad first server", func(c *Config) { c.Match.FirstServer = "p3" }, true},
		{"bad log level", func(c *Config) { c.UI.LogLevel = "trace" }, true},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolvedAccessors(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Match.DefaultFormat = 2
	cfg.Match.FirstServer = "p2"

	assert.Equal(t, match.MatchTiebreak10, cfg.DefaultFormat().Deciding)
	assert.Equal(t, match.PlayerTwo, cfg.FirstServer())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matchpoint.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}
