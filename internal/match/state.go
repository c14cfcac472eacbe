package match

import (
	"time"

	"github.com/google/uuid"

	"github.com/lox/matchpoint/internal/stats"
)

// Phase is the current stage of the score state machine. SetComplete is
// transient and never observable between operations; it resolves into
// one of the phases below before control returns to the caller.
type Phase int

const (
	PhaseRegularGame Phase = iota
	PhaseSetTiebreak
	PhaseMatchTiebreak
	PhaseMatchComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseRegularGame:
		return "regular game"
	case PhaseSetTiebreak:
		return "set tiebreak"
	case PhaseMatchTiebreak:
		return "match tiebreak"
	case PhaseMatchComplete:
		return "match complete"
	default:
		return "unknown"
	}
}

// SetRecord holds the final shape of one set. Appended when a set
// begins; games accumulate until Finished is stamped. The tiebreak
// score is stamped when a tiebreak decides the set.
type SetRecord struct {
	Games          [2]int
	Finished       bool
	TiebreakPlayed bool
	TiebreakScore  [2]int
}

// PointRecord is one immutable entry in the point-by-point log. The
// four pressure flags are computed before the point was resolved.
type PointRecord struct {
	Set         int // 0-based set index
	Game        int // 0-based game index within the set
	Tiebreak    bool
	PointNumber int // 1-based within the game or tiebreak
	Server      Player
	ServeType   ServeType
	Event       PointEvent
	Winner      Player
	BreakPoint  bool
	GamePoint   bool
	SetPoint    bool
	MatchPoint  bool
	Timestamp   time.Time
}

// State is the single mutable session object for one match. It is owned
// and mutated exclusively by the Controller; everything else reads it
// through accessors or receives deep snapshots.
type State struct {
	ID        uuid.UUID
	Players   [2]string
	Location  string
	StartedAt time.Time
	Format    Format

	Sets       []SetRecord
	SetStats   [][2]stats.PlayerStatistics // parallel to Sets, indexed by Player
	CurrentSet int

	GamePoints [2]int // in-game points, 0..n (0/15/30/40/deuce+)

	InSetTiebreak        bool
	InMatchTiebreak      bool
	TiebreakPoints       [2]int
	TiebreakStartServer  Player
	TiebreakServerChosen bool // match tiebreak needs its server injected before play

	Server  Player // server of the current game; recomputed per point in tiebreaks
	SetsWon [2]int

	MatchStats [2]stats.PlayerStatistics

	Log []PointRecord
}

// NewState creates the match state with the first set open and ready
// for play.
func NewState(format Format, playerOne, playerTwo, location string, startingServer Player) *State {
	s := &State{
		ID:       uuid.New(),
		Players:  [2]string{playerOne, playerTwo},
		Location: location,
		Format:   format,
		Server:   startingServer,
	}
	s.startNewSet()
	return s
}

// Clone returns a deep, independent copy of the state. Snapshots on the
// undo stack must not share any mutable memory with the live state.
func (s *State) Clone() *State {
	c := *s
	c.Sets = make([]SetRecord, len(s.Sets))
	copy(c.Sets, s.Sets)
	c.SetStats = make([][2]stats.PlayerStatistics, len(s.SetStats))
	copy(c.SetStats, s.SetStats)
	c.Log = make([]PointRecord, len(s.Log))
	copy(c.Log, s.Log)
	return &c
}

// Phase returns the externally observable phase of play.
func (s *State) Phase() Phase {
	switch {
	case s.MatchComplete():
		return PhaseMatchComplete
	case s.InMatchTiebreak:
		return PhaseMatchTiebreak
	case s.InSetTiebreak:
		return PhaseSetTiebreak
	default:
		return PhaseRegularGame
	}
}

// MatchComplete reports whether either player holds enough sets.
func (s *State) MatchComplete() bool {
	target := s.Format.SetsToWin()
	return s.SetsWon[PlayerOne] == target || s.SetsWon[PlayerTwo] == target
}

// InTiebreak reports whether any tiebreak (set or match) is active.
func (s *State) InTiebreak() bool {
	return s.InSetTiebreak || s.InMatchTiebreak
}

// PlayerName returns the display name for p.
func (s *State) PlayerName(p Player) string {
	return s.Players[p]
}

// CurrentSetRecord returns the set currently being played.
func (s *State) CurrentSetRecord() SetRecord {
	return s.Sets[s.CurrentSet]
}

// MatchStatistics returns a copy of the match-scope counters for p.
func (s *State) MatchStatistics(p Player) stats.PlayerStatistics {
	return s.MatchStats[p]
}

// SetStatistics returns a copy of the per-set counters for p in the
// given 0-based set.
func (s *State) SetStatistics(set int, p Player) stats.PlayerStatistics {
	return s.SetStats[set][p]
}

// PointLog returns a copy of the ordered point log.
func (s *State) PointLog() []PointRecord {
	log := make([]PointRecord, len(s.Log))
	copy(log, s.Log)
	return log
}

// Scoreboard is a read-only snapshot of the live score for rendering.
type Scoreboard struct {
	Players        [2]string
	Location       string
	Server         Player
	SetsWon        [2]int
	Games          [2]int
	GamePoints     [2]int
	TiebreakActive bool
	TiebreakPoints [2]int
	Phase          Phase
}

// Scoreboard assembles the current display snapshot. In a tiebreak the
// displayed server follows the rotation rule for the next point.
func (s *State) Scoreboard() Scoreboard {
	server := s.Server
	if s.InTiebreak() && s.TiebreakServerChosen {
		played := s.TiebreakPoints[PlayerOne] + s.TiebreakPoints[PlayerTwo]
		server = TiebreakServer(s.TiebreakStartServer, played)
	}
	return Scoreboard{
		Players:        s.Players,
		Location:       s.Location,
		Server:         server,
		SetsWon:        s.SetsWon,
		Games:          s.Sets[s.CurrentSet].Games,
		GamePoints:     s.GamePoints,
		TiebreakActive: s.InTiebreak(),
		TiebreakPoints: s.TiebreakPoints,
		Phase:          s.Phase(),
	}
}
