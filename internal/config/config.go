// Package config loads operator configuration from an HCL file. A
// missing file yields the defaults so a fresh install runs with no
// setup.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/matchpoint/internal/match"
)

// Config represents the complete tracker configuration
type Config struct {
	Match  MatchSettings   `hcl:"match,block"`
	Format *FormatSettings `hcl:"format,block"`
	Export ExportSettings  `hcl:"export,block"`
	UI     UISettings      `hcl:"ui,block"`
}

// FormatSettings defines a custom match format. When present it takes
// precedence over the built-in format menu choice.
type FormatSettings struct {
	Name              string `hcl:"name,optional"`
	GamesToWinSet     int    `hcl:"games_to_win_set"`
	TiebreakAtGames   int    `hcl:"tiebreak_at_games"`
	SetTiebreakPoints int    `hcl:"set_tiebreak_points,optional"`
	DecidingTB10      bool   `hcl:"deciding_tb10,optional"`
}

// MatchSettings contains defaults applied at match setup
type MatchSettings struct {
	DefaultFormat int    `hcl:"default_format,optional"` // 1-based menu choice
	Location      string `hcl:"location,optional"`
	FirstServer   string `hcl:"first_server,optional"` // "p1" or "p2"
}

// ExportSettings controls where finished matches are written
type ExportSettings struct {
	Dir        string `hcl:"dir,optional"`
	AutoExport bool   `hcl:"auto_export,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel      string `hcl:"log_level,optional"`
	LogFile       string `hcl:"log_file,optional"`
	ShowPointLog  bool   `hcl:"show_point_log,optional"`
	ConfirmUndo   bool   `hcl:"confirm_undo,optional"`
	EndChangeCues bool   `hcl:"end_change_cues,optional"`
	Theme         string `hcl:"theme,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Match: MatchSettings{
			DefaultFormat: 3,
			Location:      "",
			FirstServer:   "p1",
		},
		Export: ExportSettings{
			Dir:        ".",
			AutoExport: true,
		},
		UI: UISettings{
			LogLevel:      "warn",
			LogFile:       "matchpoint.log",
			ShowPointLog:  true,
			ConfirmUndo:   false,
			EndChangeCues: true,
			Theme:         "default",
		},
	}
}

// Load loads configuration from an HCL file, falling back to defaults
// when the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := Default()

	if cfg.Match.DefaultFormat == 0 {
		cfg.Match.DefaultFormat = defaults.Match.DefaultFormat
	}
	if cfg.Match.FirstServer == "" {
		cfg.Match.FirstServer = defaults.Match.FirstServer
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = defaults.Export.Dir
	}
	if cfg.UI.LogLevel == "" {
		cfg.UI.LogLevel = defaults.UI.LogLevel
	}
	if cfg.UI.LogFile == "" {
		cfg.UI.LogFile = defaults.UI.LogFile
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.Format != nil {
		if cfg.Format.Name == "" {
			cfg.Format.Name = "Custom format"
		}
		if cfg.Format.SetTiebreakPoints == 0 {
			cfg.Format.SetTiebreakPoints = 7
		}
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Match.DefaultFormat < 1 || c.Match.DefaultFormat > 3 {
		return fmt.Errorf("default format must be 1, 2 or 3")
	}

	if c.Match.FirstServer != "p1" && c.Match.FirstServer != "p2" {
		return fmt.Errorf("invalid first server: %s", c.Match.FirstServer)
	}

	if c.Format != nil {
		if c.Format.GamesToWinSet < 1 {
			return fmt.Errorf("custom format games_to_win_set must be positive")
		}
		if c.Format.TiebreakAtGames < 1 || c.Format.TiebreakAtGames > c.Format.GamesToWinSet {
			return fmt.Errorf("custom format tiebreak_at_games must be between 1 and games_to_win_set")
		}
		if c.Format.SetTiebreakPoints < 2 {
			return fmt.Errorf("custom format set_tiebreak_points must be at least 2")
		}
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	validThemes := map[string]bool{
		"default": true,
		"dark":    true,
		"light":   true,
	}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}

	return nil
}

// DefaultFormat resolves the configured format: a custom format block
// when present, otherwise the built-in menu choice.
func (c *Config) DefaultFormat() match.Format {
	if c.Format == nil {
		return match.FormatByChoice(c.Match.DefaultFormat)
	}
	deciding := match.RegularThirdSet
	if c.Format.DecidingTB10 {
		deciding = match.MatchTiebreak10
	}
	return match.Format{
		Name:                   c.Format.Name,
		GamesToWinSet:          c.Format.GamesToWinSet,
		TiebreakAtGames:        c.Format.TiebreakAtGames,
		SetTiebreakTarget:      c.Format.SetTiebreakPoints,
		Deciding:               deciding,
		DecidingTiebreakTarget: 10,
		BestOfSets:             3,
	}
}

// FirstServer resolves the configured first server.
func (c *Config) FirstServer() match.Player {
	if c.Match.FirstServer == "p2" {
		return match.PlayerTwo
	}
	return match.PlayerOne
}
