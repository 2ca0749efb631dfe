// Package tui provides the Bubble Tea game interface.
package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/reflex/internal/haptics"
	"github.com/verte-zerg/reflex/internal/model"
	"github.com/verte-zerg/reflex/internal/session"
)

const tickInterval = 50 * time.Millisecond

type tickMsg time.Time

type keymap struct {
	restart key.Binding
	quit    key.Binding
}

func newKeymap(restartKey string) keymap {
	return keymap{
		restart: key.NewBinding(
			key.WithKeys(restartKey),
			key.WithHelp(restartKey, "restart"),
		),
		quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// Model implements the Bubble Tea game UI and the session's display.
type Model struct {
	session *session.Session
	rumble  *haptics.Rumble
	rnd     *rand.Rand
	keys    keymap
	help    help.Model

	width  int
	height int

	lastTick time.Time
	errMsg   string

	icon          string
	iconVisible   bool
	scoreText     string
	timerText     string
	streakCount   int
	streakVisible bool
	endVisible    bool
	summary       model.Summary
}

// NewModel constructs the game model. The model becomes the session's display.
func NewModel(opts session.Options, restartKey string, rumble *haptics.Rumble) *Model {
	m := &Model{
		rumble: rumble,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		keys:   newKeymap(restartKey),
		help:   help.New(),
	}
	opts.Display = m
	if rumble != nil {
		opts.Haptics = rumble
	}
	m.session = session.New(opts)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.start()
	m.lastTick = time.Now()
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() {
			m.session.Tick(now.Sub(m.lastTick))
		}
		m.lastTick = now
		return m, tick()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.quit) {
		return tea.Quit
	}
	if key.Matches(msg, m.keys.restart) {
		switch m.session.State() {
		case model.StateEnded:
			m.restart()
		case model.StateIdle:
			m.start()
		}
		return nil
	}
	if id, ok := m.session.Lookup(msg.String()); ok {
		m.session.Press(id)
	}
	return nil
}

func (m *Model) start() {
	if err := m.session.Start(); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
}

func (m *Model) restart() {
	if err := m.session.Restart(); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
}

// ShowIcon implements session.Display.
func (m *Model) ShowIcon(glyph string) {
	m.icon = glyph
	m.iconVisible = true
}

// HideIcon implements session.Display.
func (m *Model) HideIcon() {
	m.icon = ""
	m.iconVisible = false
}

// SetScoreText implements session.Display.
func (m *Model) SetScoreText(text string) { m.scoreText = text }

// SetTimerText implements session.Display.
func (m *Model) SetTimerText(text string) { m.timerText = text }

// ShowStreak implements session.Display.
func (m *Model) ShowStreak(count int) {
	m.streakCount = count
	m.streakVisible = true
}

// HideStreak implements session.Display.
func (m *Model) HideStreak() { m.streakVisible = false }

// ShowEndScreen implements session.Display.
func (m *Model) ShowEndScreen(s model.Summary) {
	m.summary = s
	m.endVisible = true
}

// HideEndScreen implements session.Display.
func (m *Model) HideEndScreen() { m.endVisible = false }
