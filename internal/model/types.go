// Package model defines shared data structures.
package model

import "time"

// PromptID names a canonical button, namespaced by device family (e.g. "GenericA").
type PromptID string

// DeviceFamily is a class of controllers sharing one button layout.
type DeviceFamily string

const (
	FamilyGeneric     DeviceFamily = "generic"
	FamilyPlayStation DeviceFamily = "playstation"
)

// SessionState is the lifecycle state of a game session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateActive
	StateEnded
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Settings defines session settings after config layering.
type Settings struct {
	Duration      float64
	Devices       []string
	RestartKey    string
	Seed          int64
	HapticLow     float64
	HapticHigh    float64
	HapticSeconds float64
	HapticBeep    bool
	LogLevel      string
	Icons         map[PromptID]string
}

// Prompt is the button the player must press and when it was issued.
type Prompt struct {
	ID       PromptID
	IssuedAt time.Time
}

// Aggregates holds the running score state of one Active period.
type Aggregates struct {
	BaseScore          int
	TotalReactionScore int
	TotalReactionTime  float64
	TotalStreakScore   float64
	TotalScore         int
	CurrentStreak      int
	HighestStreak      int
}

// Summary captures the end-of-session statistics.
type Summary struct {
	AverageReactionTime float64
	// AverageDefined is false when no correct press was made.
	AverageDefined bool
	HighestStreak  int

	BaseScore          int
	TotalStreakScore   float64
	TotalReactionScore int
	TotalScore         int
	Reactions          []float64
}
