package match

// TiebreakServer returns the player who serves the next tiebreak point,
// given the player who served the first point of the tiebreak and the
// number of points already played.
//
// The legal 1-2-2 pattern indexed from zero is S,O,O,S,S,O,O,S,... so
// the starting server serves whenever played mod 4 is 0 or 3.
func TiebreakServer(start Player, played int) Player {
	switch played % 4 {
	case 0, 3:
		return start
	default:
		return start.Opponent()
	}
}

// EndChangeDue reports whether the players change ends before the next
// tiebreak point. Ends change after every six points played.
func EndChangeDue(played int) bool {
	return played > 0 && played%6 == 0
}
