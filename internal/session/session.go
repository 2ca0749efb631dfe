// Package session drives the game lifecycle: Idle, Active, Ended and back to Active
// on restart. It owns the countdown and the active prompt and feeds presses to the
// scoring engine.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/reflex/internal/binding"
	"github.com/verte-zerg/reflex/internal/generator"
	"github.com/verte-zerg/reflex/internal/logging"
	"github.com/verte-zerg/reflex/internal/model"
	"github.com/verte-zerg/reflex/internal/scoring"
	"github.com/verte-zerg/reflex/internal/summary"
)

// Defaults used when Settings leaves a value unset.
const (
	DefaultDuration      = 20.0
	DefaultHapticSeconds = 0.2
)

// Display is the presentation layer.
type Display interface {
	ShowIcon(glyph string)
	HideIcon()
	SetScoreText(text string)
	SetTimerText(text string)
	ShowStreak(count int)
	HideStreak()
	ShowEndScreen(s model.Summary)
	HideEndScreen()
}

// Haptics is the vibration layer.
type Haptics interface {
	Vibrate(low, high float64, d time.Duration)
	Stop()
}

// Icons supplies the glyph of a prompt.
type Icons interface {
	IconFor(id model.PromptID) (string, bool)
}

// Detector reports the connected device families.
type Detector interface {
	Families() ([]model.DeviceFamily, error)
}

// Options wires a Session. Display, Icons and Detector are required; Haptics may be nil.
type Options struct {
	Settings  model.Settings
	Table     binding.Table
	Rules     scoring.Rules
	Detector  Detector
	Display   Display
	Icons     Icons
	Haptics   Haptics
	Generator *generator.Generator
	Clock     func() time.Time
	Logger    *slog.Logger
}

// Session is one player's game. All methods are safe for concurrent use; calls are
// serialized so no two presses resolve at the same time.
type Session struct {
	mu sync.Mutex

	settings model.Settings
	table    binding.Table
	detector Detector
	display  Display
	icons    Icons
	haptics  Haptics
	gen      *generator.Generator
	now      func() time.Time
	logger   *slog.Logger

	id        string
	state     model.SessionState
	ended     bool
	registry  *binding.Registry
	prompt    model.Prompt
	countdown float64
	engine    *scoring.Engine
	summary   model.Summary

	rumbling    bool
	rumbleUntil time.Time
}

// New returns an Idle session.
func New(opts Options) *Session {
	s := &Session{
		settings: opts.Settings,
		table:    opts.Table,
		detector: opts.Detector,
		display:  opts.Display,
		icons:    opts.Icons,
		haptics:  opts.Haptics,
		gen:      opts.Generator,
		now:      opts.Clock,
		logger:   opts.Logger,
	}
	if s.settings.Duration <= 0 {
		s.settings.Duration = DefaultDuration
	}
	if s.settings.HapticSeconds <= 0 {
		s.settings.HapticSeconds = DefaultHapticSeconds
	}
	if s.table == nil {
		s.table = binding.DefaultTable
	}
	rules := opts.Rules
	if rules == (scoring.Rules{}) {
		rules = scoring.DefaultRules()
	}
	s.engine = scoring.NewEngine(rules)
	if s.gen == nil {
		s.gen = generator.New()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	s.countdown = s.settings.Duration
	return s
}

// Start moves an Idle session to Active. It is a no-op in any other state.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != model.StateIdle {
		return nil
	}
	return s.start()
}

// Restart moves an Ended session back to Active with fresh aggregates. It is a
// no-op in any other state.
func (s *Session) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != model.StateEnded {
		return nil
	}
	s.logger.Info("session restart requested", "session", s.id)
	return s.start()
}

func (s *Session) start() error {
	if err := s.validate(); err != nil {
		s.logger.Error("cannot start session", "error", err)
		return err
	}
	families, err := s.detector.Families()
	if err != nil {
		s.logger.Error("device detection failed", "error", err)
		return fmt.Errorf("failed to detect devices: %w", err)
	}
	registry, err := binding.Build(s.table, families)
	if err != nil {
		if errors.Is(err, binding.ErrEmpty) {
			err = ErrUnsupportedDevice
		}
		s.logger.Error("cannot build input bindings", "error", err)
		return err
	}

	s.registry = registry
	s.id = uuid.NewString()
	s.countdown = s.settings.Duration
	s.engine.Reset()
	s.summary = model.Summary{}
	s.ended = false
	s.state = model.StateActive

	s.display.HideEndScreen()
	s.display.HideStreak()
	s.display.SetScoreText("0")
	s.display.SetTimerText(timerText(s.countdown))
	s.logger.Info("session started",
		"session", s.id,
		"families", families,
		"prompts", registry.Len(),
		"duration", s.settings.Duration,
	)
	s.issuePrompt()
	return nil
}

func (s *Session) validate() error {
	var missing []string
	if s.display == nil {
		missing = append(missing, "display")
	}
	if s.icons == nil {
		missing = append(missing, "icons")
	}
	if s.detector == nil {
		missing = append(missing, "device detector")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrConfiguration, strings.Join(missing, ", "))
	}
	return nil
}

// Tick advances the countdown by dt and stops an expired vibration.
func (s *Session) Tick(dt time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rumbling && !s.now().Before(s.rumbleUntil) {
		s.rumbling = false
		s.haptics.Stop()
	}
	if s.state != model.StateActive {
		return
	}
	s.countdown -= dt.Seconds()
	s.display.SetTimerText(timerText(s.countdown))
	if s.countdown <= 0 {
		s.end()
	}
}

func (s *Session) end() {
	if s.ended {
		return
	}
	s.ended = true
	s.state = model.StateEnded
	s.summary = summary.Summarize(s.engine.Aggregates(), s.engine.Reactions())
	s.display.ShowEndScreen(s.summary)

	avg := "n/a"
	if s.summary.AverageDefined {
		avg = strconv.FormatFloat(s.summary.AverageReactionTime, 'f', -1, 64)
	}
	s.logger.Info("session ended",
		"session", s.id,
		"base_score", s.summary.BaseScore,
		"streak_score", s.summary.TotalStreakScore,
		"reaction_score", s.summary.TotalReactionScore,
		"average_reaction", avg,
		"highest_streak", s.summary.HighestStreak,
		"total_score", s.summary.TotalScore,
	)
}

// Press resolves a press of id made now. See PressAt.
func (s *Session) Press(id model.PromptID) bool {
	return s.PressAt(id, time.Time{})
}

// PressAt resolves a press of id made at the given time; a zero time means now.
// It reports whether the press was resolved. Presses outside Active, presses of
// identifiers not in the registry and presses older than the active prompt are
// ignored.
func (s *Session) PressAt(id model.PromptID, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != model.StateActive || s.countdown <= 0 {
		return false
	}
	if at.IsZero() {
		at = s.now()
	}
	if at.Before(s.prompt.IssuedAt) {
		s.logger.Debug("discarding stale press", "session", s.id, "prompt", id)
		return false
	}
	if !s.registry.Contains(id) {
		return false
	}

	delta := s.engine.Resolve(id, s.prompt, at)
	s.display.SetScoreText(strconv.Itoa(delta.TotalScore))
	switch delta.Display {
	case scoring.StreakShow:
		s.display.ShowStreak(delta.Streak)
	case scoring.StreakHide:
		s.display.HideStreak()
	}
	if delta.Vibrate {
		s.vibrate(at)
	}
	s.logger.Debug("press resolved",
		"session", s.id,
		"pressed", id,
		"prompt", s.prompt.ID,
		"correct", delta.Correct,
		"reaction", delta.Reaction,
		"score", delta.TotalScore,
	)
	s.issuePrompt()
	return true
}

// Lookup maps a terminal key to a prompt of the current registry.
func (s *Session) Lookup(key string) (model.PromptID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.registry == nil {
		return "", false
	}
	return s.registry.Lookup(key)
}

func (s *Session) vibrate(at time.Time) {
	if s.haptics == nil {
		return
	}
	d := time.Duration(s.settings.HapticSeconds * float64(time.Second))
	s.haptics.Vibrate(s.settings.HapticLow, s.settings.HapticHigh, d)
	s.rumbling = true
	s.rumbleUntil = at.Add(d)
}

func (s *Session) issuePrompt() {
	id, err := s.gen.Next(s.registry)
	if err != nil {
		s.logger.Error("cannot issue prompt", "session", s.id, "error", err)
		return
	}
	s.prompt = model.Prompt{ID: id, IssuedAt: s.now()}
	glyph, ok := s.icons.IconFor(id)
	if !ok {
		s.logger.Warn("no icon for prompt", "session", s.id, "prompt", id)
		s.display.HideIcon()
		return
	}
	s.display.ShowIcon(glyph)
}

// State returns the lifecycle state.
func (s *Session) State() model.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ID returns the id of the current Active period.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// Countdown returns the remaining seconds.
func (s *Session) Countdown() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countdown
}

// Prompt returns the active prompt.
func (s *Session) Prompt() model.Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prompt
}

// Aggregates returns a snapshot of the running score.
func (s *Session) Aggregates() model.Aggregates {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Aggregates()
}

// Summary returns the end-of-session statistics once the session has Ended.
func (s *Session) Summary() (model.Summary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary, s.state == model.StateEnded
}

// Registry returns the bindings of the current Active period, or nil before start.
func (s *Session) Registry() *binding.Registry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry
}

func timerText(countdown float64) string {
	return "Time: " + strconv.Itoa(int(math.Ceil(math.Max(countdown, 0))))
}
