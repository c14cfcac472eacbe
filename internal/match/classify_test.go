package match

import "testing"

func TestIsGamePointFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		p, opp int
		want   bool
	}{
		{"love all", 0, 0, false},
		{"thirty up", 2, 0, false},
		{"forty love", 3, 0, true},
		{"forty thirty", 3, 2, true},
		{"deuce", 3, 3, false},
		{"advantage", 4, 3, true},
		{"advantage against", 3, 4, false},
		{"long deuce", 7, 7, false},
		{"long advantage", 8, 7, true},
		{"trailing at forty", 3, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isGamePointFor(tt.p, tt.opp); got != tt.want {
				t.Errorf("isGamePointFor(%d, %d) = %v, want %v", tt.p, tt.opp, got, tt.want)
			}
		})
	}
}

func TestBreakPointIsReceiverGamePoint(t *testing.T) {
	t.Parallel()

	s := NewState(BestOfThree(), "A", "B", "Court 1", PlayerOne)
	s.GamePoints = [2]int{0, 3} // 0-40, PlayerOne serving

	if !s.IsBreakPoint() {
		t.Error("expected break point at 0-40 on serve")
	}
	if !s.IsGamePoint() {
		t.Error("expected game point at 0-40")
	}

	// Server at 40-0 holds game point but not break point.
	s.GamePoints = [2]int{3, 0}
	if s.IsBreakPoint() {
		t.Error("40-0 on serve is not a break point")
	}
	if !s.IsGamePoint() {
		t.Error("expected game point at 40-0")
	}
}

func TestSetPointRequiresGameAndSetWin(t *testing.T) {
	t.Parallel()

	s := NewState(BestOfThree(), "A", "B", "Court 1", PlayerOne)
	s.Sets[0].Games = [2]int{5, 3}
	s.GamePoints = [2]int{3, 0}

	if !s.IsSetPointFor(PlayerOne) {
		t.Error("expected set point at 5-3 40-0")
	}
	if s.IsMatchPointFor(PlayerOne) {
		t.Error("no match point without a set in hand")
	}

	// Winning the game at 5-5 leaves 6-5: not a set win.
	s.Sets[0].Games = [2]int{5, 5}
	if s.IsSetPointFor(PlayerOne) {
		t.Error("5-5 40-0 is not a set point, diff would be 1")
	}
}

func TestMatchPointNeedsSetsInHand(t *testing.T) {
	t.Parallel()

	s := NewState(BestOfThree(), "A", "B", "Court 1", PlayerOne)
	s.SetsWon[PlayerOne] = 1
	s.Sets[0].Games = [2]int{5, 0}
	s.GamePoints = [2]int{3, 1}

	if !s.IsMatchPointFor(PlayerOne) {
		t.Error("expected match point with a set in hand at 5-0 40-15")
	}
	if s.IsMatchPointFor(PlayerTwo) {
		t.Error("trailing player cannot hold match point")
	}
}

func TestClassifierQuietInsideTiebreaks(t *testing.T) {
	t.Parallel()

	s := NewState(BestOfThree(), "A", "B", "Court 1", PlayerOne)
	s.InSetTiebreak = true
	s.TiebreakPoints = [2]int{6, 0}
	s.GamePoints = [2]int{3, 0} // stale, must be ignored

	ctx := s.Context()
	if ctx.BreakPoint || ctx.GamePoint || ctx.SetPoint || ctx.MatchPoint {
		t.Errorf("expected all flags false inside a tiebreak, got %+v", ctx)
	}
}
