// Package stats holds the per-player counters accumulated over a match.
// Counters are plain integers updated by the scoring engine; derived
// ratios are computed on demand so the struct stays trivially copyable
// for undo snapshots.
package stats

import "fmt"

// PlayerStatistics tracks every counter kept for one player at one scope
// (whole match or a single set).
type PlayerStatistics struct {
	// Serve attempts
	FirstServesAttempted  int
	FirstServesIn         int
	SecondServesAttempted int
	SecondServesIn        int

	// Serve results
	AcesFirst            int
	AcesSecond           int
	ServiceWinnersFirst  int
	ServiceWinnersSecond int
	DoubleFaults         int
	PointsWonOnFirst     int
	PointsWonOnSecond    int

	// Return
	ReturnPointsWonVsFirst  int
	ReturnPointsWonVsSecond int
	ReturnWinners           int
	ReturnUnforcedErrors    int
	ReturnForcedErrors      int

	// Rally
	RallyWinners      int
	UnforcedErrors    int
	ForcedErrorsDrawn int

	// Net play
	NetPointsWon   int
	NetPointsTotal int

	// Pressure
	BreakPointsWon   int
	BreakPointsTotal int

	// Totals
	PointsWon    int
	PointsPlayed int
}

// Add accumulates other into s. Used to check that match-scope counters
// equal the sum of the per-set counters.
func (s *PlayerStatistics) Add(other PlayerStatistics) {
	s.FirstServesAttempted += other.FirstServesAttempted
	s.FirstServesIn += other.FirstServesIn
	s.SecondServesAttempted += other.SecondServesAttempted
	s.SecondServesIn += other.SecondServesIn
	s.AcesFirst += other.AcesFirst
	s.AcesSecond += other.AcesSecond
	s.ServiceWinnersFirst += other.ServiceWinnersFirst
	s.ServiceWinnersSecond += other.ServiceWinnersSecond
	s.DoubleFaults += other.DoubleFaults
	s.PointsWonOnFirst += other.PointsWonOnFirst
	s.PointsWonOnSecond += other.PointsWonOnSecond
	s.ReturnPointsWonVsFirst += other.ReturnPointsWonVsFirst
	s.ReturnPointsWonVsSecond += other.ReturnPointsWonVsSecond
	s.ReturnWinners += other.ReturnWinners
	s.ReturnUnforcedErrors += other.ReturnUnforcedErrors
	s.ReturnForcedErrors += other.ReturnForcedErrors
	s.RallyWinners += other.RallyWinners
	s.UnforcedErrors += other.UnforcedErrors
	s.ForcedErrorsDrawn += other.ForcedErrorsDrawn
	s.NetPointsWon += other.NetPointsWon
	s.NetPointsTotal += other.NetPointsTotal
	s.BreakPointsWon += other.BreakPointsWon
	s.BreakPointsTotal += other.BreakPointsTotal
	s.PointsWon += other.PointsWon
	s.PointsPlayed += other.PointsPlayed
}

// Sum returns the element-wise total of the given records.
func Sum(records []PlayerStatistics) PlayerStatistics {
	var total PlayerStatistics
	for _, r := range records {
		total.Add(r)
	}
	return total
}

// Validate checks internal consistency of a single record.
func (s *PlayerStatistics) Validate() error {
	if s.FirstServesIn > s.FirstServesAttempted {
		return fmt.Errorf("first serves in (%d) exceeds attempts (%d)", s.FirstServesIn, s.FirstServesAttempted)
	}
	if s.SecondServesIn > s.SecondServesAttempted {
		return fmt.Errorf("second serves in (%d) exceeds attempts (%d)", s.SecondServesIn, s.SecondServesAttempted)
	}
	if s.PointsWon > s.PointsPlayed {
		return fmt.Errorf("points won (%d) exceeds points played (%d)", s.PointsWon, s.PointsPlayed)
	}
	if s.NetPointsWon > s.NetPointsTotal {
		return fmt.Errorf("net points won (%d) exceeds net points total (%d)", s.NetPointsWon, s.NetPointsTotal)
	}
	if s.BreakPointsWon > s.BreakPointsTotal {
		return fmt.Errorf("break points won (%d) exceeds break points total (%d)", s.BreakPointsWon, s.BreakPointsTotal)
	}
	return nil
}

// Aces returns the combined ace count across both serves.
func (s *PlayerStatistics) Aces() int {
	return s.AcesFirst + s.AcesSecond
}

// ServicePointsWon returns points won on serve across both serves.
func (s *PlayerStatistics) ServicePointsWon() int {
	return s.PointsWonOnFirst + s.PointsWonOnSecond
}

// ReturnPointsWon returns points won on return against both serves.
func (s *PlayerStatistics) ReturnPointsWon() int {
	return s.ReturnPointsWonVsFirst + s.ReturnPointsWonVsSecond
}
