// Package display renders match state for the terminal. It only reads
// scoreboards, statistics, and the point log; no scoring logic lives
// here.
package display

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/lox/matchpoint/internal/match"
	"github.com/lox/matchpoint/internal/stats"
)

// Renderer formats scoreboards and statistics as text.
type Renderer struct {
	color bool
}

// New creates a renderer, detecting terminal color support.
func New() *Renderer {
	return &Renderer{color: termenv.ColorProfile() != termenv.Ascii}
}

// NewPlain creates a renderer that never emits color, for tests and
// file output.
func NewPlain() *Renderer {
	return &Renderer{}
}

// Percent formats num/den as a percentage, or "--" when there is no
// denominator yet.
func Percent(num, den int) string {
	if den <= 0 {
		return "--"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(num)/float64(den))
}

// Ratio formats num/den as "num/den".
func Ratio(num, den int) string {
	return fmt.Sprintf("%d/%d", num, den)
}

// pointLabel maps a raw in-game point count to tennis scoring.
func pointLabel(p int) string {
	switch {
	case p <= 0:
		return "0"
	case p == 1:
		return "15"
	case p == 2:
		return "30"
	default:
		return "40"
	}
}

// GamePoints renders both players' in-game points, folding deuce and
// advantage out of the raw counters.
func GamePoints(a, b int) (string, string) {
	if a >= 3 && b >= 3 {
		switch {
		case a == b:
			return "40", "40"
		case a == b+1:
			return "Ad", ""
		case b == a+1:
			return "", "Ad"
		}
	}
	return pointLabel(a), pointLabel(b)
}

func (r *Renderer) servingDot() string {
	if r.color {
		return ServerDotStyle.Render("●")
	}
	return "●"
}

// Scoreboard renders the boxed live scoreboard with a serving marker
// before the server's name.
func (r *Renderer) Scoreboard(sb match.Scoreboard) string {
	names := [2]string{"  " + sb.Players[0], "  " + sb.Players[1]}
	names[sb.Server] = r.servingDot() + " " + sb.Players[sb.Server]

	var ptsA, ptsB string
	if sb.TiebreakActive {
		ptsA = fmt.Sprintf("%d", sb.TiebreakPoints[match.PlayerOne])
		ptsB = fmt.Sprintf("%d", sb.TiebreakPoints[match.PlayerTwo])
	} else {
		ptsA, ptsB = GamePoints(sb.GamePoints[match.PlayerOne], sb.GamePoints[match.PlayerTwo])
	}

	var b strings.Builder
	line := "+--------------------------------------------------+"
	b.WriteString(line + "\n")
	fmt.Fprintf(&b, "| Location: %-39s|\n", sb.Location)
	fmt.Fprintf(&b, "| %-24s| %-24s|\n", names[0], names[1])
	fmt.Fprintf(&b, "| Sets:   %-16d| Sets:   %-16d|\n", sb.SetsWon[0], sb.SetsWon[1])
	fmt.Fprintf(&b, "| Games:  %-16d| Games:  %-16d|\n", sb.Games[0], sb.Games[1])
	fmt.Fprintf(&b, "| Points: %-16s| Points: %-16s|\n", ptsA, ptsB)
	b.WriteString(line)
	return b.String()
}

// statLine is one labelled row of a statistics block.
type statLine struct {
	label string
	value string
}

func statLines(s stats.PlayerStatistics) []statLine {
	return []statLine{
		{"First serve", fmt.Sprintf("%s (%s)", Ratio(s.FirstServesIn, s.FirstServesAttempted), Percent(s.FirstServesIn, s.FirstServesAttempted))},
		{"1st pts won", fmt.Sprintf("%s (%s)", Ratio(s.PointsWonOnFirst, s.FirstServesIn), Percent(s.PointsWonOnFirst, s.FirstServesIn))},
		{"Second serve", fmt.Sprintf("%s (%s)", Ratio(s.SecondServesIn, s.SecondServesAttempted), Percent(s.SecondServesIn, s.SecondServesAttempted))},
		{"2nd pts won", fmt.Sprintf("%s (%s)", Ratio(s.PointsWonOnSecond, s.SecondServesIn), Percent(s.PointsWonOnSecond, s.SecondServesIn))},
		{"Aces (1st/2nd)", fmt.Sprintf("%d / %d", s.AcesFirst, s.AcesSecond)},
		{"Service winners", fmt.Sprintf("%d / %d", s.ServiceWinnersFirst, s.ServiceWinnersSecond)},
		{"Double faults", fmt.Sprintf("%d", s.DoubleFaults)},
		{"Return won vs 1st", fmt.Sprintf("%d", s.ReturnPointsWonVsFirst)},
		{"Return won vs 2nd", fmt.Sprintf("%d", s.ReturnPointsWonVsSecond)},
		{"Return W/UE/FE", fmt.Sprintf("%d/%d/%d", s.ReturnWinners, s.ReturnUnforcedErrors, s.ReturnForcedErrors)},
		{"Rally winners", fmt.Sprintf("%d", s.RallyWinners)},
		{"Unforced errors", fmt.Sprintf("%d", s.UnforcedErrors)},
		{"Forced drawn", fmt.Sprintf("%d", s.ForcedErrorsDrawn)},
		{"Net points", fmt.Sprintf("%s (%s)", Ratio(s.NetPointsWon, s.NetPointsTotal), Percent(s.NetPointsWon, s.NetPointsTotal))},
		{"Break points", Ratio(s.BreakPointsWon, s.BreakPointsTotal)},
		{"Total points", fmt.Sprintf("%s (%s)", Ratio(s.PointsWon, s.PointsPlayed), Percent(s.PointsWon, s.PointsPlayed))},
	}
}

// PlayerStats renders a single player's statistics block under a title.
func (r *Renderer) PlayerStats(s stats.PlayerStatistics, title string) string {
	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, l := range statLines(s) {
		fmt.Fprintf(&b, "  %-20s%s\n", l.label+":", l.value)
	}
	return strings.TrimRight(b.String(), "\n")
}

// SideBySide renders both players' statistics blocks in two columns.
func (r *Renderer) SideBySide(a, b stats.PlayerStatistics, nameA, nameB string) string {
	const width = 38
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s   %-*s\n", width, nameA, width, nameB)
	fmt.Fprintf(&sb, "%-*s   %-*s\n", width, strings.Repeat("-", 32), width, strings.Repeat("-", 32))
	la, lb := statLines(a), statLines(b)
	for i := range la {
		left := fmt.Sprintf("%s: %s", la[i].label, la[i].value)
		right := fmt.Sprintf("%s: %s", lb[i].label, lb[i].value)
		fmt.Fprintf(&sb, "%-*s   %-*s\n", width, left, width, right)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// pressureMarks renders the BP/GP/SP/MP markers for a log entry.
func pressureMarks(rec match.PointRecord) string {
	var marks []string
	if rec.BreakPoint {
		marks = append(marks, "BP")
	}
	if rec.GamePoint {
		marks = append(marks, "GP")
	}
	if rec.SetPoint {
		marks = append(marks, "SP")
	}
	if rec.MatchPoint {
		marks = append(marks, "MP")
	}
	return strings.Join(marks, " ")
}

// PointLog renders the point-by-point log as a table.
func (r *Renderer) PointLog(log []match.PointRecord, names [2]string) string {
	var b strings.Builder
	b.WriteString("#   | Set | Game | TB | Server | Serve | Winner | Marks | Event\n")
	for i, rec := range log {
		tb := "N"
		if rec.Tiebreak {
			tb = "Y"
		}
		fmt.Fprintf(&b, "%-3d | %-3d | %-4d | %s  | %-6s | %-5s | %-6s | %-5s | %s\n",
			i+1, rec.Set+1, rec.Game+1, tb,
			names[rec.Server], rec.ServeType,
			names[rec.Winner], pressureMarks(rec), rec.Event.Describe())
	}
	return strings.TrimRight(b.String(), "\n")
}

// SetScores renders the final line scores of all recorded sets.
func (r *Renderer) SetScores(sets []match.SetRecord) string {
	var b strings.Builder
	for i, s := range sets {
		fmt.Fprintf(&b, "  Set %d: %d-%d", i+1, s.Games[0], s.Games[1])
		if s.TiebreakPlayed {
			fmt.Fprintf(&b, " (TB %d-%d)", s.TiebreakScore[0], s.TiebreakScore[1])
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
