package match

// DecidingPolicy controls how a best-of-three match is decided when the
// players split the first two sets.
type DecidingPolicy int

const (
	// RegularThirdSet plays the deciding set like any other set.
	RegularThirdSet DecidingPolicy = iota
	// MatchTiebreak10 replaces the third set with a first-to-10,
	// win-by-2 match tiebreak.
	MatchTiebreak10
)

func (d DecidingPolicy) String() string {
	if d == MatchTiebreak10 {
		return "match tiebreak to 10"
	}
	return "regular third set"
}

// Format fixes the scoring parameters for one match. It is immutable
// once the match starts.
type Format struct {
	Name                   string
	GamesToWinSet          int
	TiebreakAtGames        int
	SetTiebreakTarget      int // win by 2
	Deciding               DecidingPolicy
	DecidingTiebreakTarget int // win by 2
	BestOfSets             int
}

// SetsToWin returns the number of sets required to win the match.
func (f Format) SetsToWin() int {
	return f.BestOfSets/2 + 1
}

// BestOfThree is the standard best-of-3 format: sets to 6, tiebreak to 7
// at 6-6, regular third set.
func BestOfThree() Format {
	return Format{
		Name:                   "Best-of-3 full sets",
		GamesToWinSet:          6,
		TiebreakAtGames:        6,
		SetTiebreakTarget:      7,
		Deciding:               RegularThirdSet,
		DecidingTiebreakTarget: 10,
		BestOfSets:             3,
	}
}

// BestOfThreeMatchTiebreak plays sets one and two as BestOfThree but
// replaces a deciding third set with a match tiebreak to 10.
func BestOfThreeMatchTiebreak() Format {
	f := BestOfThree()
	f.Name = "Best-of-3 with match tiebreak"
	f.Deciding = MatchTiebreak10
	return f
}

// ShortSets is the fast format: sets to 4, tiebreak to 7 at 4-4.
func ShortSets() Format {
	return Format{
		Name:                   "Short sets to 4",
		GamesToWinSet:          4,
		TiebreakAtGames:        4,
		SetTiebreakTarget:      7,
		Deciding:               RegularThirdSet,
		DecidingTiebreakTarget: 10,
		BestOfSets:             3,
	}
}

// FormatByChoice maps a 1-based menu selection to a format. Unrecognized
// selections fall back to short sets rather than failing; the operator
// is mid-setup and a usable default beats an error.
func FormatByChoice(choice int) Format {
	switch choice {
	case 1:
		return BestOfThree()
	case 2:
		return BestOfThreeMatchTiebreak()
	default:
		return ShortSets()
	}
}
