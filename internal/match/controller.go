package match

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/matchpoint/internal/stats"
)

// Errors returned for out-of-order event submissions. Sequencing is the
// presentation layer's responsibility; the controller rejects anything
// it cannot attribute unambiguously rather than guessing.
var (
	ErrMatchComplete          = errors.New("match is already complete")
	ErrOutOfOrder             = errors.New("event submitted out of order")
	ErrNoPointInFlight        = errors.New("no point transaction in flight")
	ErrSecondServeRequired    = errors.New("expected a second serve outcome")
	ErrTiebreakServerRequired = errors.New("match tiebreak server has not been chosen")
)

// pointPhase tracks where the in-flight point transaction stands.
type pointPhase int

const (
	phaseIdle pointPhase = iota
	phaseSecondServe
	phaseReturn
	phaseRally
)

// pendingPoint accumulates the event taxonomy for the point being
// recorded. Nothing touches the live state until resolution, so an
// aborted transaction only needs its snapshot discarded.
type pendingPoint struct {
	ctx    PointContext
	event  PointEvent
	server Player
	record PointRecord
}

// Controller orchestrates the match: it owns the state, sequences point
// transactions, applies the scoring rules and statistics, and maintains
// the undo stack.
type Controller struct {
	state  *State
	hist   history
	logger *log.Logger
	clock  quartz.Clock

	phase   pointPhase
	pending pendingPoint
}

// Option configures a Controller at match start.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// WithClock sets the clock used for point timestamps. Tests inject a
// mock clock for deterministic records.
func WithClock(clock quartz.Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// StartMatch creates the match state and its controller. startingServer
// serves the first game.
func StartMatch(format Format, playerOne, playerTwo, location string, startingServer Player, opts ...Option) *Controller {
	c := &Controller{
		state:  NewState(format, playerOne, playerTwo, location, startingServer),
		logger: log.New(io.Discard),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state.StartedAt = c.clock.Now()
	c.logger.Info("match started",
		"playerOne", playerOne,
		"playerTwo", playerTwo,
		"format", format.Name,
		"server", startingServer)
	return c
}

// SubmitServeOutcome feeds a serve-phase event. The first submission of
// a point begins the transaction: the pre-point snapshot is pushed and
// the pressure context captured. A non-nil PointRecord means the point
// resolved on the serve.
func (c *Controller) SubmitServeOutcome(kind ServeOutcome) (*PointRecord, error) {
	switch c.phase {
	case phaseIdle:
		if err := c.beginPoint(); err != nil {
			return nil, err
		}
	case phaseSecondServe:
		if kind != ServeSecondIn && kind != ServeDoubleFault {
			return nil, fmt.Errorf("%w: got %q after a first-serve fault", ErrSecondServeRequired, kind)
		}
	default:
		return nil, fmt.Errorf("%w: serve outcome %q during return or rally", ErrOutOfOrder, kind)
	}

	c.pending.event.Serve = kind
	c.pending.event.ServeType = kind.serveType()

	switch {
	case kind == ServeFirstFault:
		c.pending.event.FirstFault = true
		c.phase = phaseSecondServe
		return nil, nil
	case kind.terminal():
		return c.resolve()
	default:
		c.phase = phaseReturn
		return nil, nil
	}
}

// SubmitReturnOutcome feeds the return-phase event. Only reachable
// after a serve landed in. ReturnIn advances the point to the rally
// phase; the other outcomes resolve it.
func (c *Controller) SubmitReturnOutcome(kind ReturnOutcome) (*PointRecord, error) {
	if c.phase != phaseReturn {
		return nil, fmt.Errorf("%w: return outcome %q before a serve in play", ErrOutOfOrder, kind)
	}
	c.pending.event.Return = kind
	if kind == ReturnIn {
		c.phase = phaseRally
		return nil, nil
	}
	return c.resolve()
}

// SubmitRallyOutcome resolves the point from the rally. netPlayer, when
// non-nil, tags that player as having been at the net for this point;
// the mark is a free operator choice and is never derived from who
// served.
func (c *Controller) SubmitRallyOutcome(kind RallyOutcome, netPlayer *Player) (*PointRecord, error) {
	if c.phase != phaseRally {
		return nil, fmt.Errorf("%w: rally outcome %q before the return was in", ErrOutOfOrder, kind)
	}
	c.pending.event.Rally = kind
	if netPlayer != nil {
		c.pending.event.NetMark = true
		c.pending.event.NetPlayer = *netPlayer
	}
	return c.resolve()
}

// AbortPointTransaction backs out of an unresolved point: the snapshot
// pushed at transaction begin is discarded so the undo stack never
// holds an entry for a point that was never recorded.
func (c *Controller) AbortPointTransaction() error {
	if c.phase == phaseIdle {
		return ErrNoPointInFlight
	}
	c.hist.discard()
	c.phase = phaseIdle
	c.pending = pendingPoint{}
	c.logger.Debug("point transaction aborted", "undoDepth", c.hist.depth())
	return nil
}

// Undo reverts the most recently resolved point by restoring its
// pre-point snapshot verbatim: score, statistics, phase, and point log
// all roll back together. Returns false when there is nothing to undo.
func (c *Controller) Undo() bool {
	if c.phase != phaseIdle {
		c.logger.Warn("undo ignored mid-point; abort the transaction first")
		return false
	}
	snap, ok := c.hist.pop()
	if !ok {
		return false
	}
	c.state = snap
	c.logger.Debug("undid last point", "points", len(c.state.Log))
	return true
}

// SetMatchTiebreakServer injects the starting server for the deciding
// match tiebreak. The choice belongs to the presentation layer and
// must arrive before the first tiebreak point.
func (c *Controller) SetMatchTiebreakServer(p Player) error {
	if !c.state.InMatchTiebreak {
		return fmt.Errorf("%w: no match tiebreak in progress", ErrOutOfOrder)
	}
	if c.phase != phaseIdle {
		return fmt.Errorf("%w: server change mid-point", ErrOutOfOrder)
	}
	c.state.TiebreakStartServer = p
	c.state.TiebreakServerChosen = true
	c.state.Server = p
	c.logger.Info("match tiebreak server set", "server", c.state.PlayerName(p))
	return nil
}

// NeedsMatchTiebreakServer reports whether play is blocked waiting for
// the match tiebreak starting-server choice.
func (c *Controller) NeedsMatchTiebreakServer() bool {
	return c.state.InMatchTiebreak && !c.state.TiebreakServerChosen
}

// EndChangeDue reports whether the players change ends before the next
// tiebreak point. Purely informational; it never affects state.
func (c *Controller) EndChangeDue() bool {
	if !c.state.InTiebreak() {
		return false
	}
	played := c.state.TiebreakPoints[PlayerOne] + c.state.TiebreakPoints[PlayerTwo]
	return EndChangeDue(played)
}

// beginPoint opens a point transaction: snapshot, server rotation, and
// pre-point context.
func (c *Controller) beginPoint() error {
	if c.state.MatchComplete() {
		return ErrMatchComplete
	}
	if c.NeedsMatchTiebreakServer() {
		return ErrTiebreakServerRequired
	}

	c.hist.push(c.state)
	c.state.syncTiebreakServer()

	ss := c.state.Sets[c.state.CurrentSet]
	c.pending = pendingPoint{
		ctx:    c.state.Context(),
		server: c.state.Server,
		record: PointRecord{
			Set:       c.state.CurrentSet,
			Game:      ss.Games[PlayerOne] + ss.Games[PlayerTwo],
			Tiebreak:  c.state.InTiebreak(),
			Server:    c.state.Server,
			Timestamp: c.clock.Now(),
		},
	}
	if c.state.InTiebreak() {
		c.pending.record.PointNumber = c.state.TiebreakPoints[PlayerOne] + c.state.TiebreakPoints[PlayerTwo] + 1
	} else {
		c.pending.record.PointNumber = c.state.GamePoints[PlayerOne] + c.state.GamePoints[PlayerTwo] + 1
	}
	return nil
}

// resolve finishes the in-flight point: statistics attribution, log
// entry, and the score transition, in that order.
func (c *Controller) resolve() (*PointRecord, error) {
	winner := c.state.applyResolvedPoint(c.pending.event, c.pending.server, c.pending.ctx)

	record := c.pending.record
	record.ServeType = c.pending.event.ServeType
	record.Event = c.pending.event
	record.Winner = winner
	record.BreakPoint = c.pending.ctx.BreakPoint
	record.GamePoint = c.pending.ctx.GamePoint
	record.SetPoint = c.pending.ctx.SetPoint
	record.MatchPoint = c.pending.ctx.MatchPoint
	c.state.Log = append(c.state.Log, record)

	c.state.awardPoint(winner)

	c.phase = phaseIdle
	c.pending = pendingPoint{}

	if err := c.state.validateLedger(); err != nil {
		c.logger.Error("statistics ledger out of balance", "error", err)
		return nil, fmt.Errorf("ledger invariant violated: %w", err)
	}

	c.logger.Debug("point resolved",
		"winner", c.state.PlayerName(winner),
		"event", record.Event.Describe(),
		"phase", c.state.Phase())
	return &record, nil
}

// State returns the live match state. Callers outside the controller
// treat it as read-only.
func (c *Controller) State() *State {
	return c.state
}

// Scoreboard returns the current display snapshot.
func (c *Controller) Scoreboard() Scoreboard {
	return c.state.Scoreboard()
}

// PointLog returns a copy of the ordered point log.
func (c *Controller) PointLog() []PointRecord {
	return c.state.PointLog()
}

// MatchStatistics returns match-scope counters for p.
func (c *Controller) MatchStatistics(p Player) stats.PlayerStatistics {
	return c.state.MatchStatistics(p)
}

// SetStatistics returns per-set counters for p in the 0-based set.
func (c *Controller) SetStatistics(set int, p Player) stats.PlayerStatistics {
	return c.state.SetStatistics(set, p)
}

// IsMatchComplete reports whether the match is over.
func (c *Controller) IsMatchComplete() bool {
	return c.state.MatchComplete()
}

// IsSetTiebreakActive reports whether a set tiebreak is in progress.
func (c *Controller) IsSetTiebreakActive() bool {
	return c.state.InSetTiebreak
}

// IsMatchTiebreakActive reports whether the deciding match tiebreak is
// in progress.
func (c *Controller) IsMatchTiebreakActive() bool {
	return c.state.InMatchTiebreak
}

// UndoDepth returns the number of resolved points available to undo.
func (c *Controller) UndoDepth() int {
	return c.hist.depth()
}
