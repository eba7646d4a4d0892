package weights

import (
	"time"
)

const recentWindow = 30 * 24 * time.Hour

// CalculateStats folds a chronologically ordered weight history into its
// summary statistics. At least one entry is required.
func CalculateStats(entries []WeightLog, now time.Time) (*Stats, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	first := entries[0]
	last := entries[len(entries)-1]
	stats := &Stats{
		Current:     last.Weight,
		Start:       first.Weight,
		TotalChange: last.Weight - first.Weight,
		Min:         first.Weight,
		Max:         first.Weight,
		Count:       len(entries),
		PeriodDays:  int(last.LoggedAt.Sub(first.LoggedAt).Hours() / 24),
	}

	var sum, recentSum float64
	var recentCount int
	recentCutoff := now.Add(-recentWindow)
	for _, entry := range entries {
		sum += entry.Weight
		if entry.Weight < stats.Min {
			stats.Min = entry.Weight
		}
		if entry.Weight > stats.Max {
			stats.Max = entry.Weight
		}
		if !entry.LoggedAt.Before(recentCutoff) {
			recentSum += entry.Weight
			recentCount++
		}
	}
	stats.Mean = sum / float64(len(entries))
	if recentCount > 0 {
		recentMean := recentSum / float64(recentCount)
		stats.RecentMean = &recentMean
	}
	return stats, nil
}
