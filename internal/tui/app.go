// Package tui provides the interactive Bubble Tea dashboard for snowplan.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/snowplan/internal/cli"
	"github.com/theirongolddev/snowplan/internal/engine"
	"github.com/theirongolddev/snowplan/internal/model"
	"github.com/theirongolddev/snowplan/internal/tui/components"
	"github.com/theirongolddev/snowplan/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// keyMap holds the app-level bindings; scrolling keys belong to the
// content viewport.
type keyMap struct {
	Quit    key.Binding
	Help    key.Binding
	PrevTab key.Binding
	NextTab key.Binding
	Top     key.Binding
	Bottom  key.Binding
}

var keys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	Help:    key.NewBinding(key.WithKeys("?")),
	PrevTab: key.NewBinding(key.WithKeys("left", "h")),
	NextTab: key.NewBinding(key.WithKeys("right", "l", "tab")),
	Top:     key.NewBinding(key.WithKeys("g")),
	Bottom:  key.NewBinding(key.WithKeys("G")),
}

// App is the root Bubble Tea model.
type App struct {
	// Pre-computed simulation data
	result  model.SimulationResult
	summary engine.Summary
	extra   float64

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	ready     bool
	content   viewport.Model
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 160

	minContentHeight = 5
)

// NewApp builds the dashboard from an already simulated result.
func NewApp(res model.SimulationResult, extra float64) App {
	return App{
		result:  res,
		summary: engine.Summarize(res),
		extra:   extra,
	}
}

// Init implements tea.Model. All data is computed up front, so there
// is nothing to kick off.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		contentH := a.height - a.chromeHeight()
		if contentH < minContentHeight {
			contentH = minContentHeight
		}
		if !a.ready {
			a.content = viewport.New(a.contentWidth(), contentH)
			a.ready = true
		} else {
			a.content.Width = a.contentWidth()
			a.content.Height = contentH
		}
		a.content.SetContent(a.renderActiveTab())
		return a, nil

	case tea.KeyMsg:
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, keys.Help):
			a.showHelp = true
			return a, nil

		case key.Matches(msg, keys.PrevTab):
			a.switchTab((a.activeTab + len(components.Tabs) - 1) % len(components.Tabs))
			return a, nil

		case key.Matches(msg, keys.NextTab):
			a.switchTab((a.activeTab + 1) % len(components.Tabs))
			return a, nil

		case key.Matches(msg, keys.Top):
			a.content.GotoTop()
			return a, nil

		case key.Matches(msg, keys.Bottom):
			a.content.GotoBottom()
			return a, nil
		}

		if len(msg.String()) == 1 {
			if idx := components.TabIdxByKey(rune(msg.String()[0])); idx >= 0 {
				a.switchTab(idx)
				return a, nil
			}
		}
	}

	// Everything else (j/k, page keys, mouse wheel) scrolls the viewport.
	var cmd tea.Cmd
	a.content, cmd = a.content.Update(msg)
	return a, cmd
}

func (a *App) switchTab(idx int) {
	if idx == a.activeTab {
		return
	}
	a.activeTab = idx
	if a.ready {
		a.content.SetContent(a.renderActiveTab())
		a.content.GotoTop()
	}
}

// chromeHeight is the rows taken by the header and status bar.
func (a App) chromeHeight() int {
	return 3 // tab bar + filter pill + status bar
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) renderActiveTab() string {
	cw := a.contentWidth()
	switch a.activeTab {
	case 1:
		return a.renderScheduleTab(cw)
	case 2:
		return a.renderBreakdownTab(cw)
	default:
		return a.renderOverviewTab(cw)
	}
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 || !a.ready {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  snowplan needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o s b", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Scroll"},
		{"^d ^u", "Half-page scroll"},
		{"g G", "Top / Bottom"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width

	// Header: tab bar + summary pill
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pillAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	pill := pillStyle.Render(" ") +
		pillAccentStyle.Render(cli.FormatMonths(a.result.TotalMonths))
	if a.extra > 0 {
		pill += pillStyle.Render(" │ ") +
			pillAccentStyle.Render("+"+cli.FormatMoney(a.extra)+"/mo")
	}
	if a.result.CapReached {
		warn := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).Bold(true)
		pill += pillStyle.Render(" │ ") + warn.Render("cap reached")
	}
	pill += pillStyle.Render(" ")

	pillRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab) + "\n" +
		pillRowStyle.Render(pill)

	statusBar := components.RenderStatusBar(w, a.summary.FreedomDate.Format("Jan 2006"))

	content := lipgloss.Place(w, a.content.Height, lipgloss.Center, lipgloss.Top,
		a.content.View(), lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, a.height, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}
