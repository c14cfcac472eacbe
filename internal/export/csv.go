package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/lox/matchpoint/internal/match"
	"github.com/lox/matchpoint/internal/stats"
)

var statsColumns = []string{
	"FirstServIn", "FirstServAtt", "FirstPtsWon",
	"SecondServIn", "SecondServAtt", "SecondPtsWon",
	"Aces1", "Aces2", "SrvW1", "SrvW2", "DF",
	"RetWonV1", "RetWonV2", "RetW", "RetUE", "RetFE",
	"RallyW", "UE", "FEdrawn", "NetWon", "NetTot",
	"BPWon", "BPTot", "PtsWon", "PtsPlayed",
}

func statsRow(s stats.PlayerStatistics) []string {
	vals := []int{
		s.FirstServesIn, s.FirstServesAttempted, s.PointsWonOnFirst,
		s.SecondServesIn, s.SecondServesAttempted, s.PointsWonOnSecond,
		s.AcesFirst, s.AcesSecond, s.ServiceWinnersFirst, s.ServiceWinnersSecond, s.DoubleFaults,
		s.ReturnPointsWonVsFirst, s.ReturnPointsWonVsSecond,
		s.ReturnWinners, s.ReturnUnforcedErrors, s.ReturnForcedErrors,
		s.RallyWinners, s.UnforcedErrors, s.ForcedErrorsDrawn,
		s.NetPointsWon, s.NetPointsTotal,
		s.BreakPointsWon, s.BreakPointsTotal,
		s.PointsWon, s.PointsPlayed,
	}
	row := make([]string, len(vals))
	for i, v := range vals {
		row[i] = strconv.Itoa(v)
	}
	return row
}

func (b *Bundle) writeCSV(suffix string, rows [][]string) error {
	f, err := os.Create(b.path(suffix))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return f.Close()
}

// WriteMatchTotalsCSV writes one row of match-scope counters per player.
func (b *Bundle) WriteMatchTotalsCSV() error {
	s := b.state
	rows := [][]string{append([]string{"Player"}, statsColumns...)}
	for _, p := range []match.Player{match.PlayerOne, match.PlayerTwo} {
		rows = append(rows, append([]string{s.Players[p]}, statsRow(s.MatchStats[p])...))
	}
	return b.writeCSV("_match_totals.csv", rows)
}

// WritePerSetCSV writes two rows per recorded set, one per player.
func (b *Bundle) WritePerSetCSV() error {
	s := b.state
	rows := [][]string{append([]string{"Set", "Player"}, statsColumns...)}
	for i := range s.Sets {
		for _, p := range []match.Player{match.PlayerOne, match.PlayerTwo} {
			row := append([]string{strconv.Itoa(i + 1), s.Players[p]}, statsRow(s.SetStats[i][p])...)
			rows = append(rows, row)
		}
	}
	return b.writeCSV("_per_set_stats.csv", rows)
}

func yn(v bool) string {
	if v {
		return "Y"
	}
	return "N"
}

// WritePointsCSV writes the point-by-point log.
func (b *Bundle) WritePointsCSV() error {
	s := b.state
	rows := [][]string{{"Idx", "Set", "Game", "TB", "Server", "ServeType", "Winner", "BP", "GP", "SP", "MP", "Event"}}
	for i, rec := range s.Log {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(rec.Set + 1),
			strconv.Itoa(rec.Game + 1),
			yn(rec.Tiebreak),
			rec.Server.String(),
			rec.ServeType.String(),
			rec.Winner.String(),
			yn(rec.BreakPoint),
			yn(rec.GamePoint),
			yn(rec.SetPoint),
			yn(rec.MatchPoint),
			rec.Event.Describe(),
		})
	}
	return b.writeCSV("_points.csv", rows)
}
