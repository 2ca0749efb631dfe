// Package summary derives end-of-session statistics.
package summary

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/verte-zerg/reflex/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Summarize computes the end-of-session statistics from the aggregates.
func Summarize(agg model.Aggregates, reactions []float64) model.Summary {
	s := model.Summary{
		HighestStreak:      agg.HighestStreak,
		BaseScore:          agg.BaseScore,
		TotalStreakScore:   agg.TotalStreakScore,
		TotalReactionScore: agg.TotalReactionScore,
		TotalScore:         agg.TotalScore,
		Reactions:          append([]float64(nil), reactions...),
	}
	if agg.BaseScore <= 0 {
		return s
	}
	avg, _ := decimal.NewFromFloat(agg.TotalReactionTime).
		Div(decimal.NewFromInt(int64(agg.BaseScore))).
		RoundBank(2).
		Float64()
	s.AverageReactionTime = avg
	s.AverageDefined = true
	return s
}

// AverageText formats the average reaction line of the end screen.
func AverageText(s model.Summary) string {
	if !s.AverageDefined {
		return "Average reaction time: n/a"
	}
	return fmt.Sprintf("Average reaction time: %s seconds", decimal.NewFromFloat(s.AverageReactionTime).String())
}

// HighestStreakText formats the highest streak line of the end screen.
func HighestStreakText(s model.Summary) string {
	return fmt.Sprintf("Highest streak: %d", s.HighestStreak)
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
