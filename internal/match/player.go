package match

// Player identifies one of the two players in a match. It doubles as an
// index into the per-player arrays kept on State.
type Player int

const (
	PlayerOne Player = iota
	PlayerTwo
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (p Player) String() string {
	if p == PlayerOne {
		return "P1"
	}
	return "P2"
}
