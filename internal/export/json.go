package export

import (
	"encoding/json"
	"os"
	"time"

	"github.com/lox/matchpoint/internal/match"
)

// Document is the JSON shape of one exported match.
type Document struct {
	ID        string     `json:"id"`
	Players   [2]string  `json:"players"`
	Location  string     `json:"location"`
	StartedAt time.Time  `json:"started_at"`
	Format    FormatDoc  `json:"format"`
	Sets      []SetDoc   `json:"sets"`
	Log       []LogEntry `json:"log"`
}

type FormatDoc struct {
	GamesToWinSet     int  `json:"games_to_win_set"`
	TiebreakAtGames   int  `json:"tiebreak_at_games"`
	SetTiebreakPoints int  `json:"set_tiebreak_points"`
	DecidingTB10      bool `json:"deciding_tb10"`
}

type SetDoc struct {
	P1   int  `json:"p1"`
	P2   int  `json:"p2"`
	TB   bool `json:"tb"`
	TBP1 int  `json:"tb_p1"`
	TBP2 int  `json:"tb_p2"`
}

type LogEntry struct {
	Idx        int    `json:"idx"`
	Set        int    `json:"set"`
	Game       int    `json:"game"`
	TB         bool   `json:"tb"`
	Server     string `json:"server"`
	ServeType  string `json:"serve_type"`
	Winner     string `json:"winner"`
	BreakPoint bool   `json:"bp"`
	GamePoint  bool   `json:"gp"`
	SetPoint   bool   `json:"sp"`
	MatchPoint bool   `json:"mp"`
	Event      string `json:"event"`
}

// NewDocument flattens match state into the export shape.
func NewDocument(s *match.State) Document {
	doc := Document{
		ID:        s.ID.String(),
		Players:   s.Players,
		Location:  s.Location,
		StartedAt: s.StartedAt,
		Format: FormatDoc{
			GamesToWinSet:     s.Format.GamesToWinSet,
			TiebreakAtGames:   s.Format.TiebreakAtGames,
			SetTiebreakPoints: s.Format.SetTiebreakTarget,
			DecidingTB10:      s.Format.Deciding == match.MatchTiebreak10,
		},
	}
	for _, set := range s.Sets {
		doc.Sets = append(doc.Sets, SetDoc{
			P1:   set.Games[match.PlayerOne],
			P2:   set.Games[match.PlayerTwo],
			TB:   set.TiebreakPlayed,
			TBP1: set.TiebreakScore[match.PlayerOne],
			TBP2: set.TiebreakScore[match.PlayerTwo],
		})
	}
	for i, rec := range s.Log {
		doc.Log = append(doc.Log, LogEntry{
			Idx:        i + 1,
			Set:        rec.Set + 1,
			Game:       rec.Game + 1,
			TB:         rec.Tiebreak,
			Server:     rec.Server.String(),
			ServeType:  rec.ServeType.String(),
			Winner:     rec.Winner.String(),
			BreakPoint: rec.BreakPoint,
			GamePoint:  rec.GamePoint,
			SetPoint:   rec.SetPoint,
			MatchPoint: rec.MatchPoint,
			Event:      rec.Event.Describe(),
		})
	}
	return doc
}

// WriteJSON writes the structured match document.
func (b *Bundle) WriteJSON() error {
	data, err := json.MarshalIndent(NewDocument(b.state), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(b.path(".json"), append(data, '\n'), 0o644)
}
