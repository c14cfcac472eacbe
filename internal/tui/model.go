// Package tui is the operator interface: a menu-driven Bubble Tea
// program that records points against the match controller and surfaces
// scoreboards, statistics, and the point log.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/matchpoint/internal/config"
	"github.com/lox/matchpoint/internal/display"
	"github.com/lox/matchpoint/internal/export"
	"github.com/lox/matchpoint/internal/match"
)

// mode identifies which menu the operator is looking at.
type mode int

const (
	modeMenu mode = iota
	modeServe
	modeSecondServe
	modeReturn
	modeRally
	modeNetMark
	modeNetPlayer
	modeStats
	modeSetPick
	modeTiebreakServer
	modeFinished
)

// Model is the Bubble Tea model for one match session.
type Model struct {
	controller *match.Controller
	cfg        *config.Config
	renderer   *display.Renderer
	logger     *log.Logger

	viewport viewport.Model
	mode     mode
	status   string

	// Rally outcome held while the net-point questions run.
	pendingRally match.RallyOutcome
	netPlayer    *match.Player

	width       int
	height      int
	initialized bool
	saved       bool
	quitting    bool
}

// New creates the operator model for a started match.
func New(controller *match.Controller, cfg *config.Config, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")
	return &Model{
		controller: controller,
		cfg:        cfg,
		renderer:   display.New(),
		logger:     logger.WithPrefix("tui"),
		viewport:   vp,
		mode:       modeMenu,
	}
}

// Run drives the model under a full-screen Bubble Tea program until the
// operator quits.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width-4, 1)
		m.viewport.Height = max(msg.Height-10, 1)
		m.initialized = true

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg.String())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeMenu:
		return m.updateMenu(key)
	case modeServe:
		return m.updateServe(key)
	case modeSecondServe:
		return m.updateSecondServe(key)
	case modeReturn:
		return m.updateReturn(key)
	case modeRally:
		return m.updateRally(key)
	case modeNetMark:
		return m.updateNetMark(key)
	case modeNetPlayer:
		return m.updateNetPlayer(key)
	case modeStats, modeSetPick:
		return m.updateStats(key)
	case modeTiebreakServer:
		return m.updateTiebreakServer(key)
	case modeFinished:
		return m.updateFinished(key)
	}
	return m, nil
}

func (m *Model) updateMenu(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "1", "p":
		if m.controller.NeedsMatchTiebreakServer() {
			m.mode = modeTiebreakServer
			return m, nil
		}
		if m.controller.IsMatchComplete() {
			m.mode = modeFinished
			return m, nil
		}
		m.mode = modeServe
	case "2", "s":
		m.showMatchTotals()
	case "3":
		m.mode = modeSetPick
	case "4", "l":
		m.showPointLog()
	case "u":
		if m.controller.Undo() {
			m.status = "Undid last point."
		} else {
			m.status = "Nothing to undo."
		}
	case "e":
		m.mode = modeFinished
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

var serveKeys = map[string]match.ServeOutcome{
	"1": match.ServeFirstIn,
	"2": match.ServeFirstFault,
	"3": match.ServeSecondIn,
	"4": match.ServeDoubleFault,
	"5": match.ServeAceFirst,
	"6": match.ServeAceSecond,
	"7": match.ServeServiceWinnerFirst,
	"8": match.ServeServiceWinnerSecond,
}

func (m *Model) updateServe(key string) (tea.Model, tea.Cmd) {
	if key == "esc" {
		m.abortPoint()
		return m, nil
	}
	kind, ok := serveKeys[key]
	if !ok {
		return m, nil
	}
	record, err := m.controller.SubmitServeOutcome(kind)
	if err != nil {
		m.fail(err)
		return m, nil
	}
	switch {
	case record != nil:
		m.pointResolved(record)
	case kind == match.ServeFirstFault:
		m.mode = modeSecondServe
	default:
		m.mode = modeReturn
	}
	return m, nil
}

func (m *Model) updateSecondServe(key string) (tea.Model, tea.Cmd) {
	var kind match.ServeOutcome
	switch key {
	case "esc":
		m.abortPoint()
		return m, nil
	case "1":
		kind = match.ServeSecondIn
	case "2":
		kind = match.ServeDoubleFault
	default:
		return m, nil
	}
	record, err := m.controller.SubmitServeOutcome(kind)
	if err != nil {
		m.fail(err)
		return m, nil
	}
	if record != nil {
		m.pointResolved(record)
	} else {
		m.mode = modeReturn
	}
	return m, nil
}

var returnKeys = map[string]match.ReturnOutcome{
	"1": match.ReturnWinner,
	"2": match.ReturnUnforcedError,
	"3": match.ReturnForcedError,
	"4": match.ReturnIn,
}

func (m *Model) updateReturn(key string) (tea.Model, tea.Cmd) {
	if key == "esc" {
		m.abortPoint()
		return m, nil
	}
	kind, ok := returnKeys[key]
	if !ok {
		return m, nil
	}
	record, err := m.controller.SubmitReturnOutcome(kind)
	if err != nil {
		m.fail(err)
		return m, nil
	}
	if record != nil {
		m.pointResolved(record)
	} else {
		m.mode = modeRally
	}
	return m, nil
}

var rallyKeys = map[string]match.RallyOutcome{
	"1": match.RallyServerWinner,
	"2": match.RallyReturnerWinner,
	"3": match.RallyServerUnforcedError,
	"4": match.RallyReturnerUnforcedError,
	"5": match.RallyServerForcedError,
	"6": match.RallyReturnerForcedError,
}

func (m *Model) updateRally(key string) (tea.Model, tea.Cmd) {
	if key == "esc" {
		m.abortPoint()
		return m, nil
	}
	kind, ok := rallyKeys[key]
	if !ok {
		return m, nil
	}
	m.pendingRally = kind
	m.netPlayer = nil
	m.mode = modeNetMark
	return m, nil
}

func (m *Model) updateNetMark(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc":
		m.abortPoint()
	case "1", "n":
		m.resolveRally()
	case "2", "y":
		m.mode = modeNetPlayer
	}
	return m, nil
}

func (m *Model) updateNetPlayer(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc":
		m.abortPoint()
		return m, nil
	case "1":
		p := match.PlayerOne
		m.netPlayer = &p
	case "2":
		p := match.PlayerTwo
		m.netPlayer = &p
	default:
		return m, nil
	}
	m.resolveRally()
	return m, nil
}

func (m *Model) resolveRally() {
	record, err := m.controller.SubmitRallyOutcome(m.pendingRally, m.netPlayer)
	if err != nil {
		m.fail(err)
		return
	}
	m.pointResolved(record)
}

func (m *Model) updateStats(key string) (tea.Model, tea.Cmd) {
	if m.mode == modeSetPick {
		state := m.controller.State()
		if n := int(key[0] - '0'); len(key) == 1 && n >= 1 && n <= len(state.Sets) {
			m.showSetStats(n - 1)
			return m, nil
		}
		if key == "esc" {
			m.mode = modeMenu
		}
		return m, nil
	}

	switch key {
	case "esc", "b":
		m.mode = modeMenu
	case "up", "k":
		m.viewport.ScrollUp(1)
	case "down", "j":
		m.viewport.ScrollDown(1)
	case "pgup":
		m.viewport.HalfPageUp()
	case "pgdown":
		m.viewport.HalfPageDown()
	case "home", "g":
		m.viewport.GotoTop()
	case "end", "G":
		m.viewport.GotoBottom()
	}
	return m, nil
}

func (m *Model) updateTiebreakServer(key string) (tea.Model, tea.Cmd) {
	var p match.Player
	switch key {
	case "1":
		p = match.PlayerOne
	case "2":
		p = match.PlayerTwo
	default:
		return m, nil
	}
	if err := m.controller.SetMatchTiebreakServer(p); err != nil {
		m.fail(err)
		return m, nil
	}
	m.status = fmt.Sprintf("%s serves first in the match tiebreak.", m.controller.State().PlayerName(p))
	m.mode = modeServe
	return m, nil
}

func (m *Model) updateFinished(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "1", "s":
		m.saveMatch()
	case "2", "v":
		m.showMatchTotals()
	case "3", "b":
		// Back to the menu; an unfinished match can keep going.
		if !m.controller.IsMatchComplete() {
			m.mode = modeMenu
		}
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// abortPoint backs out of a half-recorded point and returns to the menu.
func (m *Model) abortPoint() {
	if err := m.controller.AbortPointTransaction(); err == nil {
		m.status = "Point entry cancelled."
	}
	m.mode = modeMenu
}

// pointResolved updates the status line after a recorded point and
// routes to whatever the new match state requires.
func (m *Model) pointResolved(record *match.PointRecord) {
	state := m.controller.State()
	m.status = fmt.Sprintf("Point to %s: %s", state.PlayerName(record.Winner), record.Event.Describe())
	if m.cfg.UI.EndChangeCues && m.controller.EndChangeDue() {
		m.status += "  |  Change ends."
	}

	switch {
	case m.controller.IsMatchComplete():
		m.mode = modeFinished
		if m.cfg.Export.AutoExport {
			m.saveMatch()
		}
	case m.controller.NeedsMatchTiebreakServer():
		m.mode = modeTiebreakServer
	default:
		m.mode = modeMenu
	}
}

func (m *Model) fail(err error) {
	m.logger.Error("submission rejected", "error", err)
	// A rejected submission leaves the point half-recorded; discard it
	// so the undo stack holds no entry for it.
	_ = m.controller.AbortPointTransaction()
	m.status = ErrorStyle.Render(err.Error())
	m.mode = modeMenu
}

func (m *Model) saveMatch() {
	if m.saved {
		m.status = "Already saved."
		return
	}
	b := export.NewBundle(m.controller.State(), m.cfg.Export.Dir, time.Now())
	if err := b.WriteAll(); err != nil {
		m.logger.Error("export failed", "error", err)
		m.status = ErrorStyle.Render(fmt.Sprintf("export failed: %v", err))
		return
	}
	m.saved = true
	m.status = SuccessStyle.Render(fmt.Sprintf("Saved %s.{txt,json} and CSVs", b.Base()))
}

func (m *Model) showMatchTotals() {
	state := m.controller.State()
	content := m.renderer.SideBySide(
		state.MatchStatistics(match.PlayerOne),
		state.MatchStatistics(match.PlayerTwo),
		state.PlayerName(match.PlayerOne)+" (Match Totals)",
		state.PlayerName(match.PlayerTwo)+" (Match Totals)")
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
	m.mode = modeStats
}

func (m *Model) showSetStats(set int) {
	state := m.controller.State()
	content := m.renderer.SideBySide(
		state.SetStatistics(set, match.PlayerOne),
		state.SetStatistics(set, match.PlayerTwo),
		fmt.Sprintf("%s (Set %d)", state.PlayerName(match.PlayerOne), set+1),
		fmt.Sprintf("%s (Set %d)", state.PlayerName(match.PlayerTwo), set+1))
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
	m.mode = modeStats
}

func (m *Model) showPointLog() {
	state := m.controller.State()
	m.viewport.SetContent(m.renderer.PointLog(state.PointLog(), state.Players))
	m.viewport.GotoBottom()
	m.mode = modeStats
}
