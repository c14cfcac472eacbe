package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/matchpoint/internal/config"
	"github.com/lox/matchpoint/internal/match"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	controller := match.StartMatch(match.BestOfThree(), "Ana", "Bea", "Court 1", match.PlayerOne)
	cfg := config.Default()
	cfg.Export.Dir = t.TempDir()
	cfg.Export.AutoExport = false
	return New(controller, cfg, log.New(io.Discard))
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		m.handleKey(k)
	}
}

func TestRecordAceFromMenu(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "1")
	assert.Equal(t, modeServe, m.mode)

	press(m, "5") // ace on first serve
	assert.Equal(t, modeMenu, m.mode)
	require.Len(t, m.controller.PointLog(), 1)
	assert.Contains(t, m.status, "Point to Ana")
	assert.Contains(t, m.status, "Ace (1st)")
}

func TestFirstFaultRoutesToSecondServe(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "1", "2")
	assert.Equal(t, modeSecondServe, m.mode)

	press(m, "2") // double fault
	assert.Equal(t, modeMenu, m.mode)
	require.Len(t, m.controller.PointLog(), 1)
	assert.Contains(t, m.status, "Point to Bea")
}

func TestFullRallyWithNetMark(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "1", "1") // record, first serve in
	assert.Equal(t, modeReturn, m.mode)

	press(m, "4") // return in
	assert.Equal(t, modeRally, m.mode)

	press(m, "2") // returner winner
	assert.Equal(t, modeNetMark, m.mode)

	press(m, "2") // yes, mark net
	assert.Equal(t, modeNetPlayer, m.mode)

	press(m, "2") // Bea at net
	assert.Equal(t, modeMenu, m.mode)
	require.Len(t, m.controller.PointLog(), 1)
	assert.Equal(t, 1, m.controller.MatchStatistics(match.PlayerTwo).NetPointsWon)
}

func TestEscapeAbortsHalfRecordedPoint(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "1", "1", "4") // serve in, return in
	assert.Equal(t, modeRally, m.mode)

	press(m, "esc")
	assert.Equal(t, modeMenu, m.mode)
	assert.Empty(t, m.controller.PointLog())
	assert.Equal(t, 0, m.controller.UndoDepth())
}

func TestUndoFromMenu(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "u")
	assert.Equal(t, "Nothing to undo.", m.status)

	press(m, "1", "5")
	require.Len(t, m.controller.PointLog(), 1)

	press(m, "u")
	assert.Empty(t, m.controller.PointLog())
	assert.Equal(t, "Undid last point.", m.status)
}

func TestStatsViewAndBack(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "2")
	assert.Equal(t, modeStats, m.mode)

	press(m, "esc")
	assert.Equal(t, modeMenu, m.mode)
}

func TestEndMatchEarlyAndSave(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "1", "5") // one recorded point
	press(m, "e")
	assert.Equal(t, modeFinished, m.mode)

	press(m, "1") // save
	assert.True(t, m.saved)
	entries, err := os.ReadDir(m.cfg.Export.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 5)

	// Saving twice does not rewrite.
	press(m, "1")
	assert.Equal(t, "Already saved.", m.status)

	// The match was not complete, so the menu is reachable again.
	press(m, "3")
	assert.Equal(t, modeMenu, m.mode)
}

func TestViewRendersScoreboardAndMenu(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	assert.Contains(t, view, "Court 1")
	assert.Contains(t, view, "Main Menu")
	assert.Contains(t, view, "Record next point")
}

func TestExportDirIsRespected(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "1", "5", "e", "1")
	require.True(t, m.saved)

	matches, err := filepath.Glob(filepath.Join(m.cfg.Export.Dir, "Ana_vs_Bea_*.json"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
