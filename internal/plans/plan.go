package plans

import (
	"errors"
	"time"
)

var (
	ErrPlanNotFound      = errors.New("workout plan not found")
	ErrSlotNotFound      = errors.New("exercise not found in workout plan")
	ErrDuplicateExercise = errors.New("exercise already in workout plan")
	ErrForbidden         = errors.New("workout plan belongs to another user")
)

// Plan is a named list of exercise slots, ordered by Slot.Position.
// Positions are dense and zero based, the repo renumbers on every removal.
type Plan struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Name      string    `json:"name"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"createdAt"`
	Exercises []Slot    `json:"exercises"`
}

// Slot holds one exercise of a plan with its target sets, reps and weight.
type Slot struct {
	ID         int64   `json:"id"`
	PlanID     int64   `json:"planId"`
	ExerciseID string  `json:"exerciseId"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
	Position   int     `json:"position"`
}

// targets for a newly added exercise
const (
	DefaultSets   = 3
	DefaultReps   = 10
	DefaultWeight = 0.0
)

type SlotParams struct {
	ExerciseID string  `json:"exerciseId"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
}

type CreatePlanParams struct {
	Name      string       `json:"name"`
	Exercises []SlotParams `json:"exercises"`
}

// UpdateSlotParams updates only the fields that are set.
type UpdateSlotParams struct {
	Sets   *int     `json:"sets"`
	Reps   *int     `json:"reps"`
	Weight *float64 `json:"weight"`
}
