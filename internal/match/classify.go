package match

// Point context classification. All predicates are evaluated against
// the pre-point score and are only meaningful outside tiebreaks; inside
// any tiebreak they all report false.

// PointContext captures the pressure flags for the point about to be
// played. They are stamped verbatim onto the resulting PointRecord and
// drive the break-point statistic.
type PointContext struct {
	BreakPoint bool
	GamePoint  bool
	SetPoint   bool
	MatchPoint bool
}

// isGamePointFor reports whether a player at p points, against an
// opponent at opp points, wins the game by winning the next point:
// at 40 against less than 40, or holding the advantage.
func isGamePointFor(p, opp int) bool {
	if p < 3 {
		return false
	}
	return opp <= 2 || p == opp+1
}

// IsBreakPoint reports whether the receiver winning the next point
// would break the server's serve.
func (s *State) IsBreakPoint() bool {
	if s.InTiebreak() {
		return false
	}
	receiver := s.Server.Opponent()
	return isGamePointFor(s.GamePoints[receiver], s.GamePoints[s.Server])
}

// IsGamePoint reports whether either player is a point away from
// winning the current game.
func (s *State) IsGamePoint() bool {
	if s.InTiebreak() {
		return false
	}
	return isGamePointFor(s.GamePoints[PlayerOne], s.GamePoints[PlayerTwo]) ||
		isGamePointFor(s.GamePoints[PlayerTwo], s.GamePoints[PlayerOne])
}

// IsSetPointFor reports whether p winning the next point would win both
// the current game and, with it, the current set.
func (s *State) IsSetPointFor(p Player) bool {
	if s.InTiebreak() {
		return false
	}
	if !isGamePointFor(s.GamePoints[p], s.GamePoints[p.Opponent()]) {
		return false
	}
	ss := s.Sets[s.CurrentSet]
	gamesAfter := ss.Games[p] + 1
	return gamesAfter >= s.Format.GamesToWinSet && gamesAfter-ss.Games[p.Opponent()] >= 2
}

// IsMatchPointFor reports whether p winning the next point would win
// the match: a set point while already holding all but one of the sets
// needed.
func (s *State) IsMatchPointFor(p Player) bool {
	if !s.IsSetPointFor(p) {
		return false
	}
	return s.SetsWon[p] == s.Format.SetsToWin()-1
}

// Context evaluates all four pressure flags for the point about to be
// played.
func (s *State) Context() PointContext {
	return PointContext{
		BreakPoint: s.IsBreakPoint(),
		GamePoint:  s.IsGamePoint(),
		SetPoint:   s.IsSetPointFor(PlayerOne) || s.IsSetPointFor(PlayerTwo),
		MatchPoint: s.IsMatchPointFor(PlayerOne) || s.IsMatchPointFor(PlayerTwo),
	}
}
