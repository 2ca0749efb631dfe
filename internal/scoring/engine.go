// Package scoring resolves button presses into score changes.
package scoring

import (
	"math"
	"time"

	"github.com/verte-zerg/reflex/internal/model"
)

// Rules holds the scoring constants.
type Rules struct {
	// FastThreshold is the slowest reaction that still extends a streak (exclusive).
	FastThreshold time.Duration
	StreakStep    float64
	// StreakVisibleAt is the streak length at which the streak display is shown.
	StreakVisibleAt int
	WrongPenalty    int
	BonusNumerator  float64
	// MinReaction floors the reaction time used for the bonus division.
	MinReaction time.Duration
}

// DefaultRules returns the standard rules.
func DefaultRules() Rules {
	return Rules{
		FastThreshold:   1200 * time.Millisecond,
		StreakStep:      0.2,
		StreakVisibleAt: 5,
		WrongPenalty:    2,
		BonusNumerator:  0.1,
		MinReaction:     time.Millisecond,
	}
}

// StreakDisplay tells the presentation layer what to do with the streak banner.
type StreakDisplay int

const (
	StreakUnchanged StreakDisplay = iota
	StreakShow
	StreakHide
)

// Delta describes the outcome of one resolved press.
type Delta struct {
	Correct       bool
	Reaction      time.Duration
	ReactionBonus int
	StreakScore   float64
	Streak        int
	Display       StreakDisplay
	Vibrate       bool
	TotalScore    int
}

// Engine tracks score aggregates for one Active period.
type Engine struct {
	rules       Rules
	agg         model.Aggregates
	streakScore float64
	reactions   []float64
}

// NewEngine returns an Engine with zeroed aggregates.
func NewEngine(rules Rules) *Engine {
	e := &Engine{rules: rules}
	e.Reset()
	return e
}

// Reset clears all aggregates. HighestStreak returns to its baseline of 1.
func (e *Engine) Reset() {
	e.agg = model.Aggregates{HighestStreak: 1}
	e.streakScore = 0
	e.reactions = nil
}

// Aggregates returns a snapshot of the running totals.
func (e *Engine) Aggregates() model.Aggregates {
	return e.agg
}

// StreakScore returns the current streak score value.
func (e *Engine) StreakScore() float64 {
	return e.streakScore
}

// Reactions returns the reaction times of correct presses, in seconds.
func (e *Engine) Reactions() []float64 {
	return append([]float64(nil), e.reactions...)
}

// Resolve scores a press against the active prompt at time now.
func (e *Engine) Resolve(pressed model.PromptID, prompt model.Prompt, now time.Time) Delta {
	reaction := now.Sub(prompt.IssuedAt)
	if reaction < 0 {
		reaction = 0
	}
	if pressed != prompt.ID {
		return e.wrong(reaction)
	}
	return e.correct(reaction)
}

func (e *Engine) correct(reaction time.Duration) Delta {
	seconds := reaction.Seconds()
	e.agg.TotalReactionTime += seconds
	e.agg.BaseScore++
	e.reactions = append(e.reactions, seconds)

	bonus := e.reactionBonus(reaction)
	delta := Delta{Correct: true, Reaction: reaction, ReactionBonus: bonus}

	if reaction >= e.rules.FastThreshold {
		e.agg.CurrentStreak = 0
		e.streakScore = 0
		delta.Display = StreakHide
	} else {
		e.streakScore += e.rules.StreakStep
		e.agg.CurrentStreak++
	}
	if e.agg.CurrentStreak >= e.rules.StreakVisibleAt {
		delta.Display = StreakShow
	}
	if e.agg.CurrentStreak > e.agg.HighestStreak {
		e.agg.HighestStreak = e.agg.CurrentStreak
	}
	e.agg.TotalStreakScore += e.streakScore
	e.agg.TotalReactionScore += bonus
	// Summed in floating point, then truncated toward zero.
	e.agg.TotalScore = int(float64(e.agg.TotalScore) + 1 + float64(bonus) + e.streakScore)

	delta.StreakScore = e.streakScore
	delta.Streak = e.agg.CurrentStreak
	delta.TotalScore = e.agg.TotalScore
	return delta
}

func (e *Engine) wrong(reaction time.Duration) Delta {
	e.agg.TotalScore -= e.rules.WrongPenalty
	e.agg.CurrentStreak = 0
	e.streakScore = 0
	return Delta{
		Reaction:   reaction,
		Display:    StreakHide,
		Vibrate:    true,
		TotalScore: e.agg.TotalScore,
	}
}

func (e *Engine) reactionBonus(reaction time.Duration) int {
	if reaction < e.rules.MinReaction {
		reaction = e.rules.MinReaction
	}
	seconds := reaction.Seconds()
	if seconds <= 0 {
		return 1
	}
	bonus := int(math.Floor(e.rules.BonusNumerator / seconds))
	if bonus < 1 {
		return 1
	}
	return bonus
}
