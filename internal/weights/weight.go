package weights

import (
	"errors"
	"time"
)

var (
	ErrNoEntries        = errors.New("no weight entries")
	ErrInsufficientData = errors.New("insufficient data")
)

// WeightLog is one body weight measurement.
type WeightLog struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"-"`
	Weight   float64   `json:"weight"`
	LoggedAt time.Time `json:"loggedAt"`
	Notes    *string   `json:"notes,omitempty"`
}

// Stats summarizes a user's weight history. RecentMean covers the entries
// of the last 30 days and is nil when there are none.
type Stats struct {
	Current     float64  `json:"current"`
	Start       float64  `json:"start"`
	TotalChange float64  `json:"totalChange"`
	Mean        float64  `json:"mean"`
	Min         float64  `json:"min"`
	Max         float64  `json:"max"`
	RecentMean  *float64 `json:"recentMean"`
	Count       int      `json:"count"`
	PeriodDays  int      `json:"periodDays"`
}
