// Package export writes a finished (or abandoned) match out as a text
// summary, a JSON document, and a bundle of CSV files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lox/matchpoint/internal/display"
	"github.com/lox/matchpoint/internal/match"
)

// BaseName builds the shared filename stem for one export bundle.
// Spaces in player names become underscores so the result is a safe
// path segment.
func BaseName(playerOne, playerTwo string, at time.Time) string {
	base := fmt.Sprintf("%s_vs_%s_%s", playerOne, playerTwo, at.Format("20060102_150405"))
	return strings.ReplaceAll(base, " ", "_")
}

// Bundle writes every export format for one match into a directory.
type Bundle struct {
	state    *match.State
	renderer *display.Renderer
	dir      string
	base     string
}

// NewBundle prepares an export bundle rooted at dir. The timestamp is
// injected so callers control the clock.
func NewBundle(state *match.State, dir string, at time.Time) *Bundle {
	return &Bundle{
		state:    state,
		renderer: display.NewPlain(),
		dir:      dir,
		base:     BaseName(state.Players[match.PlayerOne], state.Players[match.PlayerTwo], at),
	}
}

// Base returns the filename stem shared by every file in the bundle.
func (b *Bundle) Base() string {
	return b.base
}

func (b *Bundle) path(suffix string) string {
	return filepath.Join(b.dir, b.base+suffix)
}

// Files lists the paths WriteAll produces.
func (b *Bundle) Files() []string {
	return []string{
		b.path(".txt"),
		b.path(".json"),
		b.path("_match_totals.csv"),
		b.path("_per_set_stats.csv"),
		b.path("_points.csv"),
	}
}

// WriteAll writes the text summary, the JSON document, and the three
// CSVs concurrently. The first failure cancels nothing already written;
// partial bundles are acceptable and the caller reports the error.
func (b *Bundle) WriteAll() error {
	var g errgroup.Group
	g.Go(b.WriteText)
	g.Go(b.WriteJSON)
	g.Go(b.WriteMatchTotalsCSV)
	g.Go(b.WritePerSetCSV)
	g.Go(b.WritePointsCSV)
	return g.Wait()
}

// WriteText writes the human-readable match summary.
func (b *Bundle) WriteText() error {
	s := b.state
	var out strings.Builder

	out.WriteString("Match Summary\n=============\n")
	fmt.Fprintf(&out, "Players: %s vs %s\n", s.Players[match.PlayerOne], s.Players[match.PlayerTwo])
	fmt.Fprintf(&out, "Location: %s\n", s.Location)
	fmt.Fprintf(&out, "Format: %s; sets to %d (TB%d at %d-%d)",
		s.Format.Name, s.Format.GamesToWinSet, s.Format.SetTiebreakTarget,
		s.Format.TiebreakAtGames, s.Format.TiebreakAtGames)
	if s.Format.Deciding == match.MatchTiebreak10 {
		fmt.Fprintf(&out, "; deciding TB%d", s.Format.DecidingTiebreakTarget)
	}
	out.WriteString("\n\nFinal Set Scores:\n")
	out.WriteString(b.renderer.SetScores(s.Sets))
	out.WriteString("\n")

	for _, p := range []match.Player{match.PlayerOne, match.PlayerTwo} {
		title := fmt.Sprintf("Player: %s (Match Totals)", s.Players[p])
		out.WriteString("\n" + b.renderer.PlayerStats(s.MatchStats[p], title) + "\n")
	}

	out.WriteString("\nPer-set stats\n-------------\n")
	for i := range s.Sets {
		fmt.Fprintf(&out, "Set %d:\n", i+1)
		for _, p := range []match.Player{match.PlayerOne, match.PlayerTwo} {
			out.WriteString(b.renderer.PlayerStats(s.SetStats[i][p], "  "+s.Players[p]) + "\n")
		}
	}

	out.WriteString("\nPoint-by-point log\n-------------------\n")
	out.WriteString(b.renderer.PointLog(s.Log, s.Players))
	out.WriteString("\n")

	return os.WriteFile(b.path(".txt"), []byte(out.String()), 0o644)
}
