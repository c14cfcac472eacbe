package match

import "testing"

// awardPoints pushes n regular points to p through the transition rules.
func awardPoints(s *State, p Player, n int) {
	for i := 0; i < n; i++ {
		s.awardPoint(p)
	}
}

// winGame plays a clean four-point game for p.
func winGame(s *State, p Player) {
	awardPoints(s, p, 4)
}

func TestGameNeedsFourPointsAndTwoClear(t *testing.T) {
	t.Parallel()

	s := NewState(BestOfThree(), "A", "B", "Court 1", PlayerOne)

	awardPoints(s, PlayerOne, 3)
	awardPoints(s, PlayerTwo, 3)
	// Deuce: the next point alone must not decide the game.
	s.awardPoint(PlayerOne)
	if s.Sets[0].Games != [2]int{0, 0} {
		t.Fatalf("game decided from deuce by one point: games %v", s.Sets[0].Games)
	}

	// Advantage converted.
	s.awardPoint(PlayerOne)
	if s.Sets[0].Games[PlayerOne] != 1 {
		t.Fatalf("expected game for PlayerOne, games %v points %v", s.Sets[0].Games, s.GamePoints)
	}
}

func TestDeuceSwingsBackToLevel(t *testing.T) {
	t.Parallel()

	s := NewState(BestOfThree(), "A", "B", "Court 1", PlayerOne)
	awardPoints(s, PlayerOne, 3)
	awardPoints(s, PlayerTwo, 3)
	s.awardPoint(PlayerOne) // advantage PlayerOne
	s.awardPoint(PlayerTwo) // back to level at 4-4

	if s.Sets[0].Games != [2]int{0, 0} {
		t.Fatalf("unexpected game award at 4-4: %v", s.Sets[0].Games)
	}
	if s.GamePoints != [2]int{4, 4} {
		t.Fatalf("expected 4-4 points, got %v", s.GamePoints)
	}

	// Two in a row now ends it.
	awardPoints(s, PlayerTwo, 2)
	if s.Sets[0].Games[PlayerTwo] != 1 {
		t.Fatalf("expected game for PlayerTwo after winning by two, games %v", s.Sets[0].Games)
	}
}

func TestServerAlternatesBetweenGames(t *testing.T) {
	t.Parallel()

	s := NewState(BestOfThree(), "A", "B", "Court 1", PlayerOne)
	winGame(s, PlayerOne)
	if s.Server != PlayerTwo {
		t.Errorf("expected PlayerTwo to serve game two, got %s", s.Server)
	}
	winGame(s, PlayerOne)
	if s.Server != PlayerOne {
		t.Errorf("expected PlayerOne to serve game three, got %s", s.Server)
	}
}

func TestSetNeverCompletesWithOneGameLead(t *testing.T) {
	t.Parallel()

	s := NewState(BestOfThree(), "A", "B", "Court 1", PlayerOne)
	for i := 0; i < 5; i++ {
		winGame(s, PlayerOne)
		winGame(s, PlayerTwo)
	}
	winGame(s, PlayerOne) // 6-5
	if s.Sets[0].Finished {
		t.Fatal("set must not finish at 6-5")
	}
	winGame(s, PlayerOne) // 7-5
	if !s.Sets[0].Finished {
		t.Fatal("set must finish at 7-5")
	}
	if s.SetsWon[PlayerOne] != 1 {
		t.Errorf("expected one set for PlayerOne, got %d", s.SetsWon[PlayerOne])
	}
	if s.CurrentSet != 1 {
		t.Errorf("expected second set open, current set %d", s.CurrentSet)
	}
}

func TestTiebreakEntryAtTriggerScore(t *testing.T) {
	t.Parallel()

	s := NewState(BestOfThree(), "A", "B", "Court 1", PlayerOne)
	for i := 0; i < 6; i++ {
		winGame(s, PlayerOne)
		winGame(s, PlayerTwo)
	}
	if !s.InSetTiebreak {
		t.Fatal("expected set tiebreak at 6-6")
	}
	if !s.Sets[0].TiebreakPlayed {
		t.Error("tiebreak flag not stamped on set record")
	}
	// Twelve games played from PlayerOne's serve: PlayerOne is next to
	// serve and opens the tiebreak.
	if s.TiebreakStartServer != PlayerOne {
		t.Errorf("expected PlayerOne to open the tiebreak, got %s", s.TiebreakStartServer)
	}
}

func TestSetTiebreakToSevenStraight(t *testing.T) {
	t.Parallel()

	s := NewState(BestOfThree(), "A", "B", "Court 1", PlayerOne)
	for i := 0; i < 6; i++ {
		winGame(s, PlayerOne)
		winGame(s, PlayerTwo)
	}
	awardPoints(s, PlayerOne, 7)

	first := s.Sets[0]
	if !first.Finished {
		t.Fatal("set not finished after tiebreak to 7-0")
	}
	if first.Games != [2]int{7, 6} {
		t.Errorf("expected 7-6 games, got %v", first.Games)
	}
	if first.TiebreakScore != [2]int{7, 0} {
		t.Errorf("expected tiebreak 7-0 stamped, got %v", first.TiebreakScore)
	}
	if s.InSetTiebreak {
		t.Error("tiebreak flag still set after set completed")
	}
}

func TestSetTiebreakWinByTwo(t *testing.T) {
	t.Parallel()

	s := NewState(BestOfThree(), "A", "B", "Court 1", PlayerOne)
	for i := 0; i < 6; i++ {
		winGame(s, PlayerOne)
		winGame(s, PlayerTwo)
	}
	// 6-6 in the tiebreak: reaching 7 with a one-point lead is not enough.
	for i := 0; i < 6; i++ {
		s.awardPoint(PlayerOne)
		s.awardPoint(PlayerTwo)
	}
	s.awardPoint(PlayerOne) // 7-6
	if s.Sets[0].Finished {
		t.Fatal("tiebreak must not finish at 7-6")
	}
	s.awardPoint(PlayerOne) // 8-6
	if !s.Sets[0].Finished {
		t.Fatal("tiebreak must finish at 8-6")
	}
	if s.Sets[0].TiebreakScore != [2]int{8, 6} {
		t.Errorf("expected tiebreak 8-6, got %v", s.Sets[0].TiebreakScore)
	}
}

func TestShortSetsFormat(t *testing.T) {
	t.Parallel()

	s := NewState(ShortSets(), "A", "B", "Court 1", PlayerOne)
	for i := 0; i < 4; i++ {
		winGame(s, PlayerOne)
	}
	if !s.Sets[0].Finished {
		t.Fatal("short set must finish at 4-0")
	}

	// 4-4 triggers the tiebreak in the second set.
	for i := 0; i < 4; i++ {
		winGame(s, PlayerOne)
		winGame(s, PlayerTwo)
	}
	if !s.InSetTiebreak {
		t.Error("expected tiebreak at 4-4 in short sets")
	}
}

func TestMatchCompleteAfterTwoSets(t *testing.T) {
	t.Parallel()

	s := NewState(BestOfThree(), "A", "B", "Court 1", PlayerOne)
	for set := 0; set < 2; set++ {
		for i := 0; i < 6; i++ {
			winGame(s, PlayerOne)
		}
	}
	if !s.MatchComplete() {
		t.Fatal("expected match complete after two straight sets")
	}
	if s.Phase() != PhaseMatchComplete {
		t.Errorf("expected match complete phase, got %s", s.Phase())
	}
	if len(s.Sets) != 2 {
		t.Errorf("no third set should open, have %d", len(s.Sets))
	}
}

func TestRegularThirdSetWhenSetsSplit(t *testing.T) {
	t.Parallel()

	s := NewState(BestOfThree(), "A", "B", "Court 1", PlayerOne)
	for i := 0; i < 6; i++ {
		winGame(s, PlayerOne)
	}
	for i := 0; i < 6; i++ {
		winGame(s, PlayerTwo)
	}
	if s.InMatchTiebreak {
		t.Fatal("regular deciding policy must not enter a match tiebreak")
	}
	if s.CurrentSet != 2 {
		t.Errorf("expected third set open, current set %d", s.CurrentSet)
	}
}

func TestMatchTiebreakEntryAndCompletion(t *testing.T) {
	t.Parallel()

	s := NewState(BestOfThreeMatchTiebreak(), "A", "B", "Court 1", PlayerOne)
	for i := 0; i < 6; i++ {
		winGame(s, PlayerOne)
	}
	for i := 0; i < 6; i++ {
		winGame(s, PlayerTwo)
	}
	if !s.InMatchTiebreak {
		t.Fatal("expected match tiebreak with sets split under MatchTiebreak10")
	}
	if s.TiebreakServerChosen {
		t.Error("match tiebreak server must await injection")
	}

	s.TiebreakStartServer = PlayerTwo
	s.TiebreakServerChosen = true
	awardPoints(s, PlayerTwo, 10)

	if !s.MatchComplete() {
		t.Fatal("expected match complete after tiebreak to 10-0")
	}
	if s.SetsWon[PlayerTwo] != 2 {
		t.Errorf("expected two sets for PlayerTwo, got %d", s.SetsWon[PlayerTwo])
	}

	// Synthetic trailing set row mirrors the last real set's games with
	// the tiebreak score stamped.
	final := s.Sets[len(s.Sets)-1]
	if !final.TiebreakPlayed || final.TiebreakScore != [2]int{0, 10} {
		t.Errorf("unexpected synthetic decider row: %+v", final)
	}
	if final.Games != s.Sets[len(s.Sets)-2].Games {
		t.Errorf("decider row games %v do not mirror last set %v", final.Games, s.Sets[len(s.Sets)-2].Games)
	}
}

func TestMatchTiebreakWinByTwo(t *testing.T) {
	t.Parallel()

	s := NewState(BestOfThreeMatchTiebreak(), "A", "B", "Court 1", PlayerOne)
	for i := 0; i < 6; i++ {
		winGame(s, PlayerOne)
	}
	for i := 0; i < 6; i++ {
		winGame(s, PlayerTwo)
	}
	s.TiebreakStartServer = PlayerOne
	s.TiebreakServerChosen = true

	for i := 0; i < 9; i++ {
		s.awardPoint(PlayerOne)
		s.awardPoint(PlayerTwo)
	}
	s.awardPoint(PlayerOne) // 10-9
	if s.MatchComplete() {
		t.Fatal("match tiebreak must not finish at 10-9")
	}
	s.awardPoint(PlayerOne) // 11-9
	if !s.MatchComplete() {
		t.Fatal("match tiebreak must finish at 11-9")
	}
}
