package match

import (
	"fmt"

	"github.com/lox/matchpoint/internal/stats"
)

// Statistics aggregation. Each resolved point maps deterministically to
// counter increments, applied to the match-scope and current-set-scope
// records together so the two can never drift apart.

// eachScope runs fn against both statistics records for p.
func (s *State) eachScope(p Player, fn func(*stats.PlayerStatistics)) {
	fn(&s.MatchStats[p])
	fn(&s.SetStats[s.CurrentSet][p])
}

// winner returns who won the point the event describes, given who
// served it.
func (e PointEvent) winner(server Player) Player {
	returner := server.Opponent()
	switch e.Rally {
	case RallyServerWinner, RallyReturnerUnforcedError, RallyReturnerForcedError:
		return server
	case RallyReturnerWinner, RallyServerUnforcedError, RallyServerForcedError:
		return returner
	}
	switch e.Return {
	case ReturnWinner:
		return returner
	case ReturnUnforcedError, ReturnForcedError:
		return server
	}
	switch e.Serve {
	case ServeDoubleFault:
		return returner
	default:
		return server
	}
}

// applyResolvedPoint attributes a completed point to both players'
// statistics and returns the point winner. ctx carries the pre-point
// pressure flags; the break-point totals follow the flag regardless of
// how the point was resolved.
func (s *State) applyResolvedPoint(event PointEvent, server Player, ctx PointContext) Player {
	returner := server.Opponent()
	winner := event.winner(server)

	s.applyServeAttempts(event, server)

	serverPointWon := func(ps *stats.PlayerStatistics) {
		if event.ServeType == ServeFirst {
			ps.PointsWonOnFirst++
		} else {
			ps.PointsWonOnSecond++
		}
	}
	returnPointWon := func(ps *stats.PlayerStatistics) {
		if event.ServeType == ServeFirst {
			ps.ReturnPointsWonVsFirst++
		} else {
			ps.ReturnPointsWonVsSecond++
		}
	}

	switch {
	case event.Rally != RallyNone:
		switch event.Rally {
		case RallyServerWinner:
			s.eachScope(server, func(ps *stats.PlayerStatistics) { ps.RallyWinners++; serverPointWon(ps) })
		case RallyReturnerWinner:
			s.eachScope(returner, func(ps *stats.PlayerStatistics) { ps.RallyWinners++; returnPointWon(ps) })
		case RallyServerUnforcedError:
			s.eachScope(server, func(ps *stats.PlayerStatistics) { ps.UnforcedErrors++ })
			s.eachScope(returner, returnPointWon)
		case RallyReturnerUnforcedError:
			s.eachScope(returner, func(ps *stats.PlayerStatistics) { ps.UnforcedErrors++ })
			s.eachScope(server, serverPointWon)
		case RallyServerForcedError:
			s.eachScope(returner, func(ps *stats.PlayerStatistics) { ps.ForcedErrorsDrawn++; returnPointWon(ps) })
		case RallyReturnerForcedError:
			s.eachScope(server, func(ps *stats.PlayerStatistics) { ps.ForcedErrorsDrawn++; serverPointWon(ps) })
		}
	case event.Return != ReturnNone:
		switch event.Return {
		case ReturnWinner:
			s.eachScope(returner, func(ps *stats.PlayerStatistics) { ps.ReturnWinners++; returnPointWon(ps) })
		case ReturnUnforcedError:
			s.eachScope(returner, func(ps *stats.PlayerStatistics) { ps.ReturnUnforcedErrors++ })
			s.eachScope(server, serverPointWon)
		case ReturnForcedError:
			s.eachScope(returner, func(ps *stats.PlayerStatistics) { ps.ReturnForcedErrors++ })
			s.eachScope(server, func(ps *stats.PlayerStatistics) { ps.ForcedErrorsDrawn++; serverPointWon(ps) })
		}
	default:
		switch event.Serve {
		case ServeDoubleFault:
			s.eachScope(server, func(ps *stats.PlayerStatistics) { ps.DoubleFaults++ })
		case ServeAceFirst:
			s.eachScope(server, func(ps *stats.PlayerStatistics) { ps.AcesFirst++; serverPointWon(ps) })
		case ServeAceSecond:
			s.eachScope(server, func(ps *stats.PlayerStatistics) { ps.AcesSecond++; serverPointWon(ps) })
		case ServeServiceWinnerFirst:
			s.eachScope(server, func(ps *stats.PlayerStatistics) { ps.ServiceWinnersFirst++; serverPointWon(ps) })
		case ServeServiceWinnerSecond:
			s.eachScope(server, func(ps *stats.PlayerStatistics) { ps.ServiceWinnersSecond++; serverPointWon(ps) })
		}
	}

	// Point ownership for both players.
	s.eachScope(winner, func(ps *stats.PlayerStatistics) { ps.PointsWon++; ps.PointsPlayed++ })
	s.eachScope(winner.Opponent(), func(ps *stats.PlayerStatistics) { ps.PointsPlayed++ })

	if event.NetMark {
		won := event.NetPlayer == winner
		s.eachScope(event.NetPlayer, func(ps *stats.PlayerStatistics) {
			ps.NetPointsTotal++
			if won {
				ps.NetPointsWon++
			}
		})
	}

	if ctx.BreakPoint {
		won := winner == returner
		s.eachScope(returner, func(ps *stats.PlayerStatistics) {
			ps.BreakPointsTotal++
			if won {
				ps.BreakPointsWon++
			}
		})
	}

	return winner
}

// applyServeAttempts records the serve attempt counters implied by the
// event's serve phase. A fault before the deciding serve counts a
// missed first-serve attempt.
func (s *State) applyServeAttempts(event PointEvent, server Player) {
	s.eachScope(server, func(ps *stats.PlayerStatistics) {
		if event.FirstFault {
			ps.FirstServesAttempted++
			ps.SecondServesAttempted++
			if event.Serve != ServeDoubleFault {
				ps.SecondServesIn++
			}
			return
		}
		switch event.ServeType {
		case ServeFirst:
			ps.FirstServesAttempted++
			ps.FirstServesIn++
		case ServeSecond:
			ps.SecondServesAttempted++
			if event.Serve != ServeDoubleFault {
				ps.SecondServesIn++
			}
		}
	})
}

// validateLedger checks the accounting invariants after a resolved
// point: every point involves both players, and the match-scope
// counters must equal the sum of the per-set counters. A failure here
// is a defect in the controller, not operator error.
func (s *State) validateLedger() error {
	total := len(s.Log)
	for _, p := range []Player{PlayerOne, PlayerTwo} {
		ms := s.MatchStats[p]
		if ms.PointsPlayed != total {
			return fmt.Errorf("%s points played (%d) does not match log length (%d)", p, ms.PointsPlayed, total)
		}
		if err := ms.Validate(); err != nil {
			return fmt.Errorf("%s match stats: %w", p, err)
		}
		perSet := make([]stats.PlayerStatistics, len(s.SetStats))
		for i := range s.SetStats {
			perSet[i] = s.SetStats[i][p]
		}
		if sum := stats.Sum(perSet); sum != ms {
			return fmt.Errorf("%s match stats diverge from per-set totals", p)
		}
	}
	won := s.MatchStats[PlayerOne].PointsWon + s.MatchStats[PlayerTwo].PointsWon
	if won != total {
		return fmt.Errorf("points won across players (%d) does not match log length (%d)", won, total)
	}
	return nil
}
