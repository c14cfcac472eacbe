package match

import "testing"

func TestTiebreakServerPattern(t *testing.T) {
	t.Parallel()

	// 1-2-2 pattern starting with PlayerOne: S,O,O,S,S,O,O,S
	want := []Player{
		PlayerOne, PlayerTwo, PlayerTwo, PlayerOne,
		PlayerOne, PlayerTwo, PlayerTwo, PlayerOne,
	}
	for played, expected := range want {
		if got := TiebreakServer(PlayerOne, played); got != expected {
			t.Errorf("point %d: expected server %s, got %s", played, expected, got)
		}
	}
}

func TestTiebreakServerPatternOppositeStart(t *testing.T) {
	t.Parallel()

	want := []Player{
		PlayerTwo, PlayerOne, PlayerOne, PlayerTwo,
		PlayerTwo, PlayerOne, PlayerOne, PlayerTwo,
	}
	for played, expected := range want {
		if got := TiebreakServer(PlayerTwo, played); got != expected {
			t.Errorf("point %d: expected server %s, got %s", played, expected, got)
		}
	}
}

func TestTiebreakServerLongSequence(t *testing.T) {
	t.Parallel()

	// The pattern repeats with period four indefinitely; deuce-like
	// extended tiebreaks must keep rotating legally.
	for played := 0; played < 40; played++ {
		expected := TiebreakServer(PlayerOne, played%4)
		if got := TiebreakServer(PlayerOne, played); got != expected {
			t.Errorf("point %d: expected server %s, got %s", played, expected, got)
		}
	}
}

func TestEndChangeDue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		played int
		want   bool
	}{
		{0, false},
		{1, false},
		{5, false},
		{6, true},
		{7, false},
		{12, true},
		{18, true},
		{19, false},
	}
	for _, tt := range tests {
		if got := EndChangeDue(tt.played); got != tt.want {
			t.Errorf("EndChangeDue(%d) = %v, want %v", tt.played, got, tt.want)
		}
	}
}
