package weights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(daysAgo int, weight float64, now time.Time) WeightLog {
	return WeightLog{
		Weight:   weight,
		LoggedAt: now.AddDate(0, 0, -daysAgo),
	}
}

func TestCalculateStats(t *testing.T) {
	now := time.Now()
	entries := []WeightLog{
		entryAt(90, 92.0, now),
		entryAt(60, 90.5, now),
		entryAt(20, 88.0, now),
		entryAt(5, 87.5, now),
	}

	stats, err := CalculateStats(entries, now)
	require.NoError(t, err)

	assert.Equal(t, 87.5, stats.Current)
	assert.Equal(t, 92.0, stats.Start)
	assert.Equal(t, -4.5, stats.TotalChange)
	assert.Equal(t, 89.5, stats.Mean)
	assert.Equal(t, 87.5, stats.Min)
	assert.Equal(t, 92.0, stats.Max)
	assert.Equal(t, 4, stats.Count)
	assert.Equal(t, 85, stats.PeriodDays)

	// only the two entries within the last 30 days
	require.NotNil(t, stats.RecentMean)
	assert.Equal(t, 87.75, *stats.RecentMean)
}

func TestCalculateStats_singleEntry(t *testing.T) {
	now := time.Now()
	stats, err := CalculateStats([]WeightLog{entryAt(0, 80.0, now)}, now)
	require.NoError(t, err)

	assert.Equal(t, 80.0, stats.Current)
	assert.Equal(t, 80.0, stats.Start)
	assert.Equal(t, 0.0, stats.TotalChange)
	assert.Equal(t, 80.0, stats.Mean)
	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, 0, stats.PeriodDays)
}

func TestCalculateStats_noRecentEntries(t *testing.T) {
	now := time.Now()
	entries := []WeightLog{
		entryAt(120, 95.0, now),
		entryAt(100, 93.0, now),
	}

	stats, err := CalculateStats(entries, now)
	require.NoError(t, err)
	assert.Nil(t, stats.RecentMean)
	assert.Equal(t, 94.0, stats.Mean)
}

func TestCalculateStats_empty(t *testing.T) {
	stats, err := CalculateStats(nil, time.Now())
	assert.ErrorIs(t, err, ErrNoEntries)
	assert.Nil(t, stats)
}
