package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/lox/matchpoint/cmd/matchpoint/shared"
	"github.com/lox/matchpoint/internal/config"
	"github.com/lox/matchpoint/internal/match"
	"github.com/lox/matchpoint/internal/tui"
)

// ScoreCmd runs the interactive match tracker.
type ScoreCmd struct {
	Config      string `short:"c" default:"matchpoint.hcl" help:"Path to HCL configuration file"`
	PlayerOne   string `short:"1" help:"Player 1 name"`
	PlayerTwo   string `short:"2" help:"Player 2 name"`
	Location    string `short:"L" help:"Match location (overrides config)"`
	Format      int    `short:"f" help:"Format: 1) best-of-3  2) best-of-3 with match TB10  3) short sets to 4 (overrides config)"`
	FirstServer string `short:"s" enum:",p1,p2" default:"" help:"Who serves first (overrides config)"`
	ExportDir   string `help:"Directory for exported match files (overrides config)"`
	LogLevel    string `short:"l" help:"Log level (overrides config)"`
	LogFile     string `help:"Log file path (overrides config)"`
}

func (s *ScoreCmd) Run() error {
	cfg, err := config.Load(s.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Apply command line overrides
	if s.Location != "" {
		cfg.Match.Location = s.Location
	}
	if s.Format != 0 {
		cfg.Match.DefaultFormat = s.Format
		cfg.Format = nil // an explicit menu choice beats a custom block
	}
	if s.FirstServer != "" {
		cfg.Match.FirstServer = s.FirstServer
	}
	if s.ExportDir != "" {
		cfg.Export.Dir = s.ExportDir
	}
	if s.LogLevel != "" {
		cfg.UI.LogLevel = s.LogLevel
	}
	if s.LogFile != "" {
		cfg.UI.LogFile = s.LogFile
	}

	playerOne := prompt("Enter Player 1 name: ", s.PlayerOne)
	playerTwo := prompt("Enter Player 2 name: ", s.PlayerTwo)
	if playerOne == "" || playerTwo == "" {
		return fmt.Errorf("both player names are required")
	}
	if cfg.Match.Location == "" {
		cfg.Match.Location = prompt("Enter location: ", "")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	logger := shared.SetupLogger(logFile, cfg.UI.LogLevel)

	controller := match.StartMatch(
		cfg.DefaultFormat(),
		playerOne, playerTwo,
		cfg.Match.Location,
		cfg.FirstServer(),
		match.WithLogger(logger.WithPrefix("match")),
	)

	logger.Info("Starting matchpoint",
		"playerOne", playerOne,
		"playerTwo", playerTwo,
		"format", cfg.DefaultFormat().Name,
		"config", s.Config)

	return tui.Run(tui.New(controller, cfg, logger))
}

var stdin = bufio.NewReader(os.Stdin)

// prompt asks on stdin when the flag did not provide a value. Names may
// contain spaces, so the whole line is read.
func prompt(label, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	fmt.Print(label)
	line, _ := stdin.ReadString('\n')
	return strings.TrimSpace(line)
}
