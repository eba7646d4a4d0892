package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchFilter(t *testing.T) {
	where, args := searchFilter(SearchParams{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = searchFilter(SearchParams{
		Term:  "squat",
		Level: "beginner",
	})
	assert.Equal(t, []any{"%squat%", "beginner"}, args)
	assert.Contains(t, where, "e.name ILIKE $1")
	assert.Contains(t, where, "e.level = $2")
}

func TestSearchFilter_muscle(t *testing.T) {
	where, args := searchFilter(SearchParams{
		Category: "strength",
		Muscle:   "quadriceps",
	})
	assert.Equal(t, []any{"strength", "quadriceps"}, args)
	assert.Contains(t, where, "e.category = $1")
	assert.Contains(t, where, "exercise_muscle_link")
	assert.Contains(t, where, "em.name = $2")
}
