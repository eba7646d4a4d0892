package users

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

// User is created on the first successful login with the external identity
// provider. Profile fields stay empty until onboarding fills them in.
type User struct {
	ID             int64     `json:"id"`
	Subject        string    `json:"-"`
	Email          string    `json:"email"`
	Name           string    `json:"name,omitempty"`
	CurrentWeight  *float64  `json:"currentWeight,omitempty"`
	GoalWeight     *float64  `json:"goalWeight,omitempty"`
	WeeklyWorkouts *int      `json:"weeklyWorkouts,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	LastSeenAt     time.Time `json:"lastSeenAt"`
}

// OnboardingStep tells which profile detail the user still has to provide.
// The steps are strictly ordered: name, then current weight, then the goal.
type OnboardingStep string

const (
	OnboardingNeedsName          OnboardingStep = "NEEDS_NAME"
	OnboardingNeedsCurrentWeight OnboardingStep = "NEEDS_CURRENT_WEIGHT"
	OnboardingNeedsGoal          OnboardingStep = "NEEDS_GOAL_WEIGHT"
	OnboardingComplete           OnboardingStep = "COMPLETE"
)

func (u *User) OnboardingStep() OnboardingStep {
	switch {
	case u.Name == "":
		return OnboardingNeedsName
	case u.CurrentWeight == nil:
		return OnboardingNeedsCurrentWeight
	case u.GoalWeight == nil:
		return OnboardingNeedsGoal
	default:
		return OnboardingComplete
	}
}

type ProfileUpdate struct {
	Name           string   `json:"name"`
	CurrentWeight  *float64 `json:"currentWeight"`
	GoalWeight     *float64 `json:"goalWeight"`
	WeeklyWorkouts *int     `json:"weeklyWorkouts"`
}
