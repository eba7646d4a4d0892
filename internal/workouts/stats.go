package workouts

import (
	"math"
	"time"
)

// CalculateStatistics folds the completed sets of a session into its totals.
// Total weight is volume (reps times weight summed), while the per-exercise
// logs store means. Both forms are kept on purpose.
//
// The function overwrites, never increments, so recomputing on the same
// input always yields the same totals.
func CalculateStatistics(sets []SetLog, startedAt time.Time, completedAt *time.Time) SessionStats {
	var stats SessionStats
	for _, set := range sets {
		if !set.Completed {
			continue
		}
		stats.TotalSets++
		stats.TotalReps += set.Reps
		stats.TotalWeight += float64(set.Reps) * set.Weight
	}
	if completedAt != nil && completedAt.After(startedAt) {
		stats.DurationMinutes = int(completedAt.Sub(startedAt).Seconds()) / 60
	}
	return stats
}

type exerciseAggregate struct {
	exerciseID  string
	sets        int
	totalReps   int
	totalWeight float64
	maxWeight   float64
	volume      float64
}

func aggregateSets(sets []SetLog) []exerciseAggregate {
	byExercise := map[string]int{}
	var aggregates []exerciseAggregate
	for _, set := range sets {
		if !set.Completed {
			continue
		}
		i, seen := byExercise[set.ExerciseID]
		if !seen {
			i = len(aggregates)
			byExercise[set.ExerciseID] = i
			aggregates = append(aggregates, exerciseAggregate{exerciseID: set.ExerciseID})
		}
		aggregates[i].sets++
		aggregates[i].totalReps += set.Reps
		aggregates[i].totalWeight += set.Weight
		aggregates[i].volume += float64(set.Reps) * set.Weight
		aggregates[i].maxWeight = math.Max(aggregates[i].maxWeight, set.Weight)
	}
	return aggregates
}

// AggregateExerciseLogs groups the completed sets of a session by exercise,
// one log per exercise with at least one completed set. Reps and weight of
// each log are the arithmetic mean across its sets. Groups come out in the
// order the exercises first appear.
func AggregateExerciseLogs(sets []SetLog) []ExerciseLog {
	aggregates := aggregateSets(sets)
	logs := make([]ExerciseLog, 0, len(aggregates))
	for _, agg := range aggregates {
		logs = append(logs, ExerciseLog{
			ExerciseID: agg.exerciseID,
			Completed:  true,
			Sets:       agg.sets,
			Reps:       float64(agg.totalReps) / float64(agg.sets),
			Weight:     agg.totalWeight / float64(agg.sets),
		})
	}
	return logs
}

// SummarizeSets builds the per-exercise breakdown shown on the session
// detail page.
func SummarizeSets(sets []SetLog) []ExerciseSummary {
	aggregates := aggregateSets(sets)
	summaries := make([]ExerciseSummary, 0, len(aggregates))
	for _, agg := range aggregates {
		summaries = append(summaries, ExerciseSummary{
			ExerciseID: agg.exerciseID,
			Sets:       agg.sets,
			TotalReps:  agg.totalReps,
			Volume:     agg.volume,
			MaxWeight:  agg.maxWeight,
		})
	}
	return summaries
}

// ProgressPercent is completed over planned sets as a percentage, rounded
// to one decimal.
func ProgressPercent(completedSets, plannedSets int) float64 {
	if plannedSets <= 0 {
		return 0
	}
	percent := float64(completedSets) / float64(plannedSets) * 100
	return math.Round(percent*10) / 10
}
