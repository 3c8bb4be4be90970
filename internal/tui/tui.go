package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/dragon-repeller/internal/session"
)

type sessionState int

const (
	stateChooseSave sessionState = iota
	statePlaying
)

type model struct {
	state   sessionState
	session *session.Session
	view    session.View
	keys    keyMap
	help    help.Model
	vp      viewport.Model
	entries []logEntry
	width   int
	height  int
	busy    bool
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	choiceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#F5C518")).
			Bold(true).
			Padding(0, 1).
			MarginRight(1)

	healthFill  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E04040"))
	xpFill      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A7CFF"))
	monsterFill = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00"))
)

// NewModel builds the program model. hasSave selects the opening screen.
func NewModel(sess *session.Session, hasSave bool) model {
	m := model{
		state:   statePlaying,
		session: sess,
		keys:    newKeyMap(),
		help:    help.New(),
	}
	if hasSave {
		m.state = stateChooseSave
	} else {
		m.show(sess.View(), "")
	}
	m.keys.update(m.state, m.view)
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

type logEntry struct {
	label string
	text  string
}

type dispatchedMsg struct {
	label string
	view  session.View
}

type bootedMsg struct {
	view session.View
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		switch m.state {
		case stateChooseSave:
			switch {
			case key.Matches(msg, m.keys.Continue):
				m.busy = true
				return m, m.boot(true)
			case key.Matches(msg, m.keys.NewGame):
				m.busy = true
				return m, m.boot(false)
			}
		case statePlaying:
			if id, label, ok := m.actionFor(msg); ok {
				m.busy = true
				return m, m.dispatch(id, label)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.vp.Width == 0 {
			m.vp = viewport.New(m.logWidth(), m.logHeight())
		} else {
			m.vp.Width = m.logWidth()
			m.vp.Height = m.logHeight()
		}
		m.vp.SetContent(m.renderLog())
		m.vp.GotoBottom()

	case bootedMsg:
		m.busy = false
		m.state = statePlaying
		m.entries = nil
		m.show(msg.view, "")

	case dispatchedMsg:
		m.busy = false
		m.show(msg.view, msg.label)
	}

	m.keys.update(m.state, m.view)
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// actionFor maps a key press to an action id available right now.
func (m model) actionFor(msg tea.KeyMsg) (id, label string, ok bool) {
	for i, b := range m.keys.Choices {
		if key.Matches(msg, b) && i < len(m.view.Actions) {
			c := m.view.Actions[i]
			return c.Action, c.Label, true
		}
	}
	switch {
	case key.Matches(msg, m.keys.Sell):
		return "sellWeapon", "Sell weapon (15 gold)", true
	case key.Matches(msg, m.keys.Egg):
		return "easterEgg", "🥚", true
	}
	return "", "", false
}

// show records a new view and appends it to the narrative log.
func (m *model) show(v session.View, label string) {
	m.view = v
	m.entries = append(m.entries, logEntry{label: label, text: v.Text})
	m.vp.SetContent(m.renderLog())
	m.vp.GotoBottom()
}

func (m model) renderLog() string {
	var b strings.Builder
	w := m.logWidth()
	for _, e := range m.entries {
		if e.label != "" {
			b.WriteString("\n" + userStyle.Width(w).Render("> "+e.label) + "\n\n")
		}
		b.WriteString(gameStyle.Width(w).Render(e.text) + "\n")
	}
	return b.String()
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateChooseSave:
		s = fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			titleStyle.Render("Welcome Back, Hero!"),
			"Continue your adventure or start fresh?",
			m.help.View(m.keys),
		)

	case statePlaying:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.vp.View(),
			m.renderState(),
		)
		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+m.renderChoices(),
			"\n"+helpStyle.Render(m.help.View(m.keys)),
		)
	}

	return "\n" + s + "\n"
}

func (m model) renderChoices() string {
	var parts []string
	for i, c := range m.view.Actions {
		parts = append(parts, choiceStyle.Render(fmt.Sprintf("%d %s", i+1, c.Label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m model) renderState() string {
	v := m.view
	p := v.Player
	barWidth := max(m.stateWidth()-6, 10)

	location := titleStyle.Render("LOCATION") + "\n" + v.LocationName + "\n\n"

	stats := titleStyle.Render("STATS") + "\n"
	stats += fmt.Sprintf("⭐ Level %d\n", p.Level)
	stats += fmt.Sprintf("❤️ %d/%d\n%s\n", p.Health, p.MaxHealth, bar(p.Health, p.MaxHealth, barWidth, healthFill))
	stats += fmt.Sprintf("✨ %d/%d\n%s\n", p.XP, p.XPNeeded, bar(p.XP, p.XPNeeded, barWidth, xpFill))
	stats += fmt.Sprintf("💰 %d\n", p.Gold)
	stats += fmt.Sprintf("⚔️ %s (%d)\n\n", p.Weapon, p.WeaponPower)

	inventory := titleStyle.Render("INVENTORY") + "\n"
	for _, item := range p.Inventory {
		inventory += "- " + item + "\n"
	}

	monster := ""
	if mon := v.Monster; mon != nil {
		monster = "\n" + titleStyle.Render("MONSTER") + "\n"
		monster += fmt.Sprintf("%s %s (lvl %d)\n", mon.Emoji, mon.Name, mon.Level)
		monster += fmt.Sprintf("%d/%d\n%s\n", max(mon.Health, 0), mon.MaxHealth, bar(mon.Health, mon.MaxHealth, barWidth, monsterFill))
	}

	content := location + stats + inventory + monster
	return stateStyle.Width(m.stateWidth()).Height(m.vp.Height).Render(content)
}

// bar draws value/total as a fixed-width gauge.
func bar(value, total, width int, style lipgloss.Style) string {
	if total <= 0 {
		total = 1
	}
	filled := min(max(value, 0)*width/total, width)
	return style.Render(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled)
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.65)
}

func (m model) stateWidth() int {
	return int(float64(m.width) * 0.32)
}

func (m model) logHeight() int {
	return max(m.height-8, 5)
}

func (m model) dispatch(id, label string) tea.Cmd {
	return func() tea.Msg {
		m.session.Dispatch(context.Background(), id)
		return dispatchedMsg{label: label, view: m.session.View()}
	}
}

func (m model) boot(resume bool) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if resume {
			m.session.ContinueGame(ctx)
		} else {
			m.session.StartNewGame(ctx)
		}
		return bootedMsg{view: m.session.View()}
	}
}

// Run starts the terminal shell and blocks until the player quits.
func Run(sess *session.Session) error {
	hasSave := sess.HasSavedGame(context.Background())
	p := tea.NewProgram(NewModel(sess, hasSave), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
