package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/matchpoint/internal/match"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.initialized {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderer.Scoreboard(m.controller.Scoreboard()))
	b.WriteString("\n\n")

	switch m.mode {
	case modeMenu:
		b.WriteString(m.renderMenu())
	case modeServe:
		b.WriteString(m.renderServeMenu())
	case modeSecondServe:
		b.WriteString(m.renderSecondServeMenu())
	case modeReturn:
		b.WriteString(m.renderReturnMenu())
	case modeRally:
		b.WriteString(m.renderRallyMenu())
	case modeNetMark:
		b.WriteString(PromptStyle.Render("Mark net point?") + "\n" + MenuStyle.Render("  1) No\n  2) Yes"))
	case modeNetPlayer:
		b.WriteString(m.renderNetPlayerMenu())
	case modeStats:
		b.WriteString(PaneStyle.Render(m.viewport.View()))
		b.WriteString("\n" + InfoStyle.Render("↑↓ scroll • Esc back"))
	case modeSetPick:
		b.WriteString(m.renderSetPickMenu())
	case modeTiebreakServer:
		b.WriteString(m.renderTiebreakServerMenu())
	case modeFinished:
		b.WriteString(m.renderFinished())
	}

	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m *Model) renderMenu() string {
	var b strings.Builder
	b.WriteString(PromptStyle.Render("Main Menu") + "\n")
	b.WriteString(MenuStyle.Render(strings.Join([]string{
		"  1) Record next point",
		"  2) Match totals",
		"  3) Stats by set",
		"  4) Point-by-point log",
		"  u) Undo last point",
		"  e) End match now",
		"  q) Quit",
	}, "\n")))
	return b.String()
}

func (m *Model) renderServeMenu() string {
	var b strings.Builder
	server := m.controller.Scoreboard().Server
	b.WriteString(PromptStyle.Render(fmt.Sprintf("Serve: %s", m.controller.State().PlayerName(server))) + "\n")
	b.WriteString(MenuStyle.Render(strings.Join([]string{
		"  1) First serve in",
		"  2) First serve fault -> second serve",
		"  3) Second serve in",
		"  4) Double fault",
		"  5) Ace (first)",
		"  6) Ace (second)",
		"  7) Service winner (first)",
		"  8) Service winner (second)",
	}, "\n")))
	b.WriteString("\n" + InfoStyle.Render("Esc cancels the point"))
	return b.String()
}

func (m *Model) renderSecondServeMenu() string {
	return PromptStyle.Render("Second serve") + "\n" +
		MenuStyle.Render("  1) In\n  2) Double fault") + "\n" +
		InfoStyle.Render("Esc cancels the point")
}

func (m *Model) renderReturnMenu() string {
	return PromptStyle.Render("Return") + "\n" +
		MenuStyle.Render(strings.Join([]string{
			"  1) Return winner",
			"  2) Return unforced error",
			"  3) Return forced error",
			"  4) Return in (go to rally)",
		}, "\n")) + "\n" +
		InfoStyle.Render("Esc cancels the point")
}

func (m *Model) renderRallyMenu() string {
	return PromptStyle.Render("Rally") + "\n" +
		MenuStyle.Render(strings.Join([]string{
			"  1) Server winner",
			"  2) Returner winner",
			"  3) Server unforced error",
			"  4) Returner unforced error",
			"  5) Server forced error (drawn by returner)",
			"  6) Returner forced error (drawn by server)",
		}, "\n")) + "\n" +
		InfoStyle.Render("Esc cancels the point")
}

func (m *Model) renderNetPlayerMenu() string {
	state := m.controller.State()
	return PromptStyle.Render("Who was at net?") + "\n" +
		MenuStyle.Render(fmt.Sprintf("  1) %s\n  2) %s",
			state.PlayerName(match.PlayerOne), state.PlayerName(match.PlayerTwo)))
}

func (m *Model) renderSetPickMenu() string {
	n := len(m.controller.State().Sets)
	return PromptStyle.Render(fmt.Sprintf("Which set? (1-%d)", n)) + "\n" +
		InfoStyle.Render("Esc back")
}

func (m *Model) renderTiebreakServerMenu() string {
	state := m.controller.State()
	return WarningStyle.Render(fmt.Sprintf("Match tiebreak to %d. Who serves first?", state.Format.DecidingTiebreakTarget)) + "\n" +
		MenuStyle.Render(fmt.Sprintf("  1) %s\n  2) %s",
			state.PlayerName(match.PlayerOne), state.PlayerName(match.PlayerTwo)))
}

func (m *Model) renderFinished() string {
	state := m.controller.State()
	var b strings.Builder

	if m.controller.IsMatchComplete() {
		b.WriteString(TitleStyle.Render(" Match finished! ") + "\n\n")
		fmt.Fprintf(&b, "Final sets won: %s %d - %s %d\n",
			state.PlayerName(match.PlayerOne), state.SetsWon[match.PlayerOne],
			state.PlayerName(match.PlayerTwo), state.SetsWon[match.PlayerTwo])
	} else {
		b.WriteString(WarningStyle.Render("Ending match early.") + "\n")
	}
	b.WriteString("Final set scores:\n")
	b.WriteString(m.renderer.SetScores(state.Sets))
	b.WriteString("\n\n")

	b.WriteString(MenuStyle.Render(strings.Join([]string{
		"  1) Save results",
		"  2) View match totals",
		"  3) Back (resume if unfinished)",
		"  q) Quit",
	}, "\n")))
	return b.String()
}
