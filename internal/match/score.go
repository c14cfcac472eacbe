package match

import "github.com/lox/matchpoint/internal/stats"

// Score transition rules. Every mutation funnels through awardPoint,
// which routes the point to the regular-game or tiebreak rules and
// performs any resulting game, set, and match transitions before
// returning.

// startNewSet opens a fresh set with its own statistics records.
func (s *State) startNewSet() {
	s.Sets = append(s.Sets, SetRecord{})
	s.SetStats = append(s.SetStats, [2]stats.PlayerStatistics{})
	s.CurrentSet = len(s.Sets) - 1

	s.GamePoints = [2]int{}
	s.InSetTiebreak = false
	s.TiebreakPoints = [2]int{}
}

// awardGame credits a game to p, resets the in-game points, and flips
// the server for the next game.
func (s *State) awardGame(p Player) {
	s.Sets[s.CurrentSet].Games[p]++
	s.Server = s.Server.Opponent()
	s.GamePoints = [2]int{}
}

// setTiebreakDue reports whether the current set has reached the
// tiebreak trigger score.
func (s *State) setTiebreakDue() bool {
	ss := s.Sets[s.CurrentSet]
	return ss.Games[PlayerOne] == s.Format.TiebreakAtGames &&
		ss.Games[PlayerTwo] == s.Format.TiebreakAtGames
}

// setWinner returns the winner of the current set if it is decided.
// Outside a tiebreak a set needs GamesToWinSet games and a two-game
// lead; inside a tiebreak it needs SetTiebreakTarget points and a
// two-point lead.
func (s *State) setWinner() (Player, bool) {
	if s.InSetTiebreak {
		p1, p2 := s.TiebreakPoints[PlayerOne], s.TiebreakPoints[PlayerTwo]
		if (p1 >= s.Format.SetTiebreakTarget || p2 >= s.Format.SetTiebreakTarget) && abs(p1-p2) >= 2 {
			if p1 > p2 {
				return PlayerOne, true
			}
			return PlayerTwo, true
		}
		return 0, false
	}
	ss := s.Sets[s.CurrentSet]
	g1, g2 := ss.Games[PlayerOne], ss.Games[PlayerTwo]
	if (g1 >= s.Format.GamesToWinSet || g2 >= s.Format.GamesToWinSet) && abs(g1-g2) >= 2 {
		if g1 > g2 {
			return PlayerOne, true
		}
		return PlayerTwo, true
	}
	return 0, false
}

// closeSet finishes the current set for winner and prepares whatever
// comes next: match completion, the deciding match tiebreak, or a
// fresh set.
func (s *State) closeSet(winner Player) {
	s.Sets[s.CurrentSet].Finished = true
	s.SetsWon[winner]++

	if s.MatchComplete() {
		return
	}
	if len(s.Sets) == 2 && s.Format.Deciding == MatchTiebreak10 &&
		s.SetsWon[PlayerOne] == 1 && s.SetsWon[PlayerTwo] == 1 {
		// The starting server is injected by the presentation layer
		// before the first tiebreak point.
		s.InMatchTiebreak = true
		s.TiebreakPoints = [2]int{}
		s.TiebreakServerChosen = false
		return
	}
	s.startNewSet()
}

// awardRegularPoint applies a point inside a regular game. A game is
// won at four or more points with a two-point lead, which subsumes
// deuce and advantage.
func (s *State) awardRegularPoint(winner Player) {
	s.GamePoints[winner]++
	p1, p2 := s.GamePoints[PlayerOne], s.GamePoints[PlayerTwo]
	if (p1 < 4 && p2 < 4) || abs(p1-p2) < 2 {
		return
	}
	gameWinner := PlayerOne
	if p2 > p1 {
		gameWinner = PlayerTwo
	}
	s.awardGame(gameWinner)

	if s.setTiebreakDue() {
		s.InSetTiebreak = true
		s.Sets[s.CurrentSet].TiebreakPlayed = true
		s.TiebreakPoints = [2]int{}
		// The next player due to serve opens the tiebreak.
		s.TiebreakStartServer = s.Server
		s.TiebreakServerChosen = true
		return
	}
	if w, ok := s.setWinner(); ok {
		s.closeSet(w)
	}
}

// awardSetTiebreakPoint applies a point inside a set tiebreak, stamping
// the final tiebreak score onto the set record when it decides the set.
func (s *State) awardSetTiebreakPoint(winner Player) {
	s.TiebreakPoints[winner]++
	w, ok := s.setWinner()
	if !ok {
		return
	}
	ss := &s.Sets[s.CurrentSet]
	ss.TiebreakScore = s.TiebreakPoints
	s.InSetTiebreak = false
	s.closeSet(w)
}

// awardMatchTiebreakPoint applies a point inside the deciding match
// tiebreak. On completion a synthetic trailing set record is appended,
// mirroring the last real set's games with the tiebreak score stamped,
// so reporting can show the decider as a set.
func (s *State) awardMatchTiebreakPoint(winner Player) {
	s.TiebreakPoints[winner]++
	p1, p2 := s.TiebreakPoints[PlayerOne], s.TiebreakPoints[PlayerTwo]
	if (p1 < s.Format.DecidingTiebreakTarget && p2 < s.Format.DecidingTiebreakTarget) || abs(p1-p2) < 2 {
		return
	}
	w := PlayerOne
	if p2 > p1 {
		w = PlayerTwo
	}
	s.SetsWon[w]++

	last := s.Sets[len(s.Sets)-1]
	s.Sets = append(s.Sets, SetRecord{
		Games:          last.Games,
		Finished:       true,
		TiebreakPlayed: true,
		TiebreakScore:  s.TiebreakPoints,
	})
	s.SetStats = append(s.SetStats, [2]stats.PlayerStatistics{})
	s.InMatchTiebreak = false
}

// awardPoint routes a resolved point through the applicable rules.
func (s *State) awardPoint(winner Player) {
	switch {
	case s.InSetTiebreak:
		s.awardSetTiebreakPoint(winner)
	case s.InMatchTiebreak:
		s.awardMatchTiebreakPoint(winner)
	default:
		s.awardRegularPoint(winner)
	}
}

// syncTiebreakServer recomputes the server for the next tiebreak point
// from the rotation rule. It holds no state of its own.
func (s *State) syncTiebreakServer() {
	if !s.InTiebreak() {
		return
	}
	played := s.TiebreakPoints[PlayerOne] + s.TiebreakPoints[PlayerTwo]
	s.Server = TiebreakServer(s.TiebreakStartServer, played)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
