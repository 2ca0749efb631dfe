package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/verte-zerg/reflex/internal/model"
)

var epoch = time.Unix(1_700_000_000, 0)

func prompt(id model.PromptID) model.Prompt {
	return model.Prompt{ID: id, IssuedAt: epoch}
}

func press(e *Engine, id model.PromptID, correct bool, reaction time.Duration) Delta {
	pressed := id
	if !correct {
		pressed = "Other"
	}
	return e.Resolve(pressed, prompt(id), epoch.Add(reaction))
}

func TestCorrectFastPress(t *testing.T) {
	e := NewEngine(DefaultRules())
	d := press(e, "GenericA", true, 50*time.Millisecond)
	if !d.Correct || d.ReactionBonus != 2 {
		t.Fatalf("expected correct press with bonus 2, got %+v", d)
	}
	agg := e.Aggregates()
	want := model.Aggregates{
		BaseScore:          1,
		TotalReactionScore: 2,
		TotalReactionTime:  0.05,
		TotalStreakScore:   0.2,
		TotalScore:         3,
		CurrentStreak:      1,
		HighestStreak:      1,
	}
	if diff := cmp.Diff(want, agg); diff != "" {
		t.Fatalf("aggregates mismatch (-want +got):\n%s", diff)
	}
	if d.Display != StreakUnchanged {
		t.Fatalf("streak display should be unchanged below 5, got %v", d.Display)
	}
}

func TestStreakScoreAccumulatesRunningValue(t *testing.T) {
	e := NewEngine(DefaultRules())
	press(e, "GenericA", true, 100*time.Millisecond)
	d := press(e, "GenericA", true, 100*time.Millisecond)
	if math.Abs(d.StreakScore-0.4) > 1e-9 {
		t.Fatalf("expected streak score 0.4, got %v", d.StreakScore)
	}
	if got := e.Aggregates().TotalStreakScore; math.Abs(got-0.6) > 1e-9 {
		t.Fatalf("expected total streak score 0.6, got %v", got)
	}
}

func TestIncorrectPressesPenalize(t *testing.T) {
	e := NewEngine(DefaultRules())
	for n := 1; n <= 7; n++ {
		d := press(e, "GenericA", false, 300*time.Millisecond)
		if d.Correct || !d.Vibrate || d.Display != StreakHide {
			t.Fatalf("unexpected delta for wrong press: %+v", d)
		}
		if got := e.Aggregates().TotalScore; got != -2*n {
			t.Fatalf("after %d wrong presses expected %d, got %d", n, -2*n, got)
		}
	}
	if e.Aggregates().BaseScore != 0 {
		t.Fatalf("wrong presses must not count as base score")
	}
}

func TestSlowCorrectPressResetsStreak(t *testing.T) {
	e := NewEngine(DefaultRules())
	press(e, "GenericA", true, 100*time.Millisecond)
	press(e, "GenericA", true, 100*time.Millisecond)
	d := press(e, "GenericA", true, 1200*time.Millisecond)
	if d.Streak != 0 || d.StreakScore != 0 || d.Display != StreakHide {
		t.Fatalf("slow press should reset streak, got %+v", d)
	}
	if d.ReactionBonus != 1 {
		t.Fatalf("slow press bonus should floor at 1, got %d", d.ReactionBonus)
	}
	if e.Aggregates().HighestStreak != 2 {
		t.Fatalf("highest streak should keep the peak, got %d", e.Aggregates().HighestStreak)
	}
}

func TestStreakVisibleAtFive(t *testing.T) {
	e := NewEngine(DefaultRules())
	for i := 1; i <= 5; i++ {
		d := press(e, "GenericB", true, 200*time.Millisecond)
		if d.Streak != i {
			t.Fatalf("press %d: expected streak %d, got %d", i, i, d.Streak)
		}
		if i < 5 && d.Display == StreakShow {
			t.Fatalf("streak shown too early at %d", i)
		}
		if i == 5 && d.Display != StreakShow {
			t.Fatalf("streak should be shown at 5, got %v", d.Display)
		}
	}
	if e.Aggregates().HighestStreak != 5 {
		t.Fatalf("expected highest streak 5, got %d", e.Aggregates().HighestStreak)
	}
}

func TestStreakRuleProperty(t *testing.T) {
	e := NewEngine(DefaultRules())
	reactions := []time.Duration{
		10 * time.Millisecond, 1199 * time.Millisecond, 1200 * time.Millisecond,
		400 * time.Millisecond, 3 * time.Second, 0, 900 * time.Millisecond,
	}
	highest := e.Aggregates().HighestStreak
	for _, r := range reactions {
		before := e.Aggregates().CurrentStreak
		press(e, "GenericX", true, r)
		after := e.Aggregates().CurrentStreak
		if r >= 1200*time.Millisecond && after != 0 {
			t.Fatalf("r=%v must not extend the streak (got %d)", r, after)
		}
		if r < 1200*time.Millisecond && after != before+1 {
			t.Fatalf("r=%v must extend the streak by one (%d -> %d)", r, before, after)
		}
		if h := e.Aggregates().HighestStreak; h < highest {
			t.Fatalf("highest streak decreased from %d to %d", highest, h)
		} else {
			highest = h
		}
	}
}

func TestReactionBonusAlwaysPositive(t *testing.T) {
	e := NewEngine(DefaultRules())
	for _, r := range []time.Duration{time.Nanosecond, 25 * time.Millisecond, 99 * time.Millisecond, 2 * time.Second, time.Minute} {
		d := press(e, "GenericY", true, r)
		if d.ReactionBonus < 1 {
			t.Fatalf("bonus for r=%v is %d", r, d.ReactionBonus)
		}
	}
	if got := e.reactionBonus(25 * time.Millisecond); got != 4 {
		t.Fatalf("expected bonus 4 at 25ms, got %d", got)
	}
}

func TestZeroReactionIsBounded(t *testing.T) {
	e := NewEngine(DefaultRules())
	d := press(e, "GenericY", true, 0)
	if d.ReactionBonus != 100 {
		t.Fatalf("expected bonus clamped to 100 at r=0, got %d", d.ReactionBonus)
	}
	if math.IsInf(e.Aggregates().TotalReactionTime, 0) {
		t.Fatalf("reaction time must stay finite")
	}
}

func TestNegativeReactionClampedToZero(t *testing.T) {
	e := NewEngine(DefaultRules())
	d := e.Resolve("GenericA", prompt("GenericA"), epoch.Add(-time.Second))
	if d.Reaction != 0 {
		t.Fatalf("expected reaction clamped to 0, got %v", d.Reaction)
	}
}

func TestTotalScoreTruncatesTowardZero(t *testing.T) {
	e := NewEngine(DefaultRules())
	for i := 0; i < 3; i++ {
		press(e, "GenericA", false, 0)
	}
	// -6 + 1 + 1 + 0.2 = -3.8
	d := press(e, "GenericA", true, 500*time.Millisecond)
	if d.TotalScore != -3 {
		t.Fatalf("expected -3 after truncation toward zero, got %d", d.TotalScore)
	}
}

func TestResetRestoresBaseline(t *testing.T) {
	e := NewEngine(DefaultRules())
	for i := 0; i < 6; i++ {
		press(e, "GenericA", true, 100*time.Millisecond)
	}
	press(e, "GenericA", false, 0)
	e.Reset()
	if diff := cmp.Diff(model.Aggregates{HighestStreak: 1}, e.Aggregates()); diff != "" {
		t.Fatalf("reset mismatch (-want +got):\n%s", diff)
	}
	if e.StreakScore() != 0 || len(e.Reactions()) != 0 {
		t.Fatalf("expected streak score and reactions cleared")
	}
}
