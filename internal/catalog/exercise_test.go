package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixImagePath(t *testing.T) {
	for name, tc := range map[string]struct {
		in       string
		expected string
	}{
		"numbered dir": {
			in:       "exercises/90/0_Barbell-Squat.jpg",
			expected: "exercises/90_0_Barbell-Squat.jpg",
		},
		"nested name dirs": {
			in:       "exercises/Barbell_Squat/images/0.jpg",
			expected: "exercises/Barbell_Squat_images/0.jpg",
		},
		"already flat": {
			in:       "exercises/Barbell_Squat_0.jpg",
			expected: "exercises/Barbell_Squat_0.jpg",
		},
		"empty": {
			in:       "",
			expected: "",
		},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FixImagePath(tc.in))
		})
	}
}

func TestCleanInstruction(t *testing.T) {
	assert.Equal(
		t,
		"Stand with your feet shoulder width apart.",
		CleanInstruction("  Stand with your feet \n shoulder width   apart. "),
	)
	assert.Equal(t, "", CleanInstruction("   "))
}

func TestExercise_FixImagePaths(t *testing.T) {
	e := &Exercise{
		Images: []string{
			"exercises/90/0_Barbell-Squat.jpg",
			"exercises/91/1_Barbell-Squat.jpg",
		},
	}
	assert.Equal(t, []string{
		"exercises/90_0_Barbell-Squat.jpg",
		"exercises/91_1_Barbell-Squat.jpg",
	}, e.FixImagePaths())
}
