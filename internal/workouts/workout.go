package workouts

import (
	"errors"
	"time"
)

var (
	ErrSessionNotFound     = errors.New("workout session not found")
	ErrNoActiveSession     = errors.New("no active workout session")
	ErrForbidden           = errors.New("workout session belongs to another user")
	ErrSessionNotCompleted = errors.New("workout session not completed")
)

// Session is one timed execution of a workout plan. Totals are recomputed
// from the set logs, never incremented.
type Session struct {
	ID              string     `json:"id"`
	UserID          int64      `json:"-"`
	PlanID          *int64     `json:"planId"`
	StartedAt       time.Time  `json:"startedAt"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	Completed       bool       `json:"completed"`
	Archived        bool       `json:"archived"`
	TotalSets       int        `json:"totalSets"`
	TotalReps       int        `json:"totalReps"`
	TotalWeight     float64    `json:"totalWeight"`
	DurationMinutes int        `json:"durationMinutes"`
}

// SetLog is one performed set. The natural key (plan exercise, set number,
// session) is unique, saving the same set again updates it in place.
type SetLog struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"-"`
	PlanID         *int64     `json:"planId"`
	ExerciseID     string     `json:"exerciseId"`
	PlanExerciseID *int64     `json:"planExerciseId"`
	SessionID      string     `json:"sessionId"`
	SetNumber      int        `json:"setNumber"`
	Reps           int        `json:"reps"`
	Weight         float64    `json:"weight"`
	Completed      bool       `json:"completed"`
	CreatedAt      time.Time  `json:"createdAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

// ExerciseLog is the per-exercise summary row written on session completion.
// Reps and Weight hold the mean across the contributing sets, not totals.
type ExerciseLog struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"-"`
	ExerciseID      string    `json:"exerciseId"`
	PlanID          *int64    `json:"planId"`
	SessionID       *string   `json:"sessionId"`
	Completed       bool      `json:"completed"`
	Sets            int       `json:"sets"`
	Reps            float64   `json:"reps"`
	Weight          float64   `json:"weight"`
	DurationMinutes *int      `json:"durationMinutes,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	CompletedAt     time.Time `json:"completedAt"`
}

type SaveSetParams struct {
	PlanExerciseID int64   `json:"planExerciseId"`
	SetNumber      int     `json:"setNumber"`
	Reps           int     `json:"reps"`
	Weight         float64 `json:"weight"`
	Completed      bool    `json:"completed"`
}

// SessionStats are the rolled up totals of a session. TotalWeight is the
// volume, reps times weight summed over completed sets.
type SessionStats struct {
	TotalSets       int     `json:"totalSets"`
	TotalReps       int     `json:"totalReps"`
	TotalWeight     float64 `json:"totalWeight"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ExerciseSummary groups the completed sets of one exercise in a session.
type ExerciseSummary struct {
	ExerciseID string  `json:"exerciseId"`
	Sets       int     `json:"sets"`
	TotalReps  int     `json:"totalReps"`
	Volume     float64 `json:"volume"`
	MaxWeight  float64 `json:"maxWeight"`
}

type SessionDetail struct {
	Session   *Session          `json:"session"`
	Exercises []ExerciseSummary `json:"exercises"`
	Sets      []SetLog          `json:"sets"`
}

// Progress describes how far along the active session is against the plan.
type Progress struct {
	SessionID      string  `json:"sessionId"`
	CompletedSets  int     `json:"completedSets"`
	PlannedSets    int     `json:"plannedSets"`
	Percent        float64 `json:"percent"`
	ElapsedMinutes int     `json:"elapsedMinutes"`
}
