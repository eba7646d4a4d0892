package catalog

import (
	"errors"
	"regexp"
	"strings"
)

var ErrExerciseNotFound = errors.New("exercise not found")

// Exercise is one entry of the (read mostly) exercise catalog, seeded from
// the free-exercise-db CSV dump.
type Exercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Force            *string  `json:"force,omitempty"`
	Level            string   `json:"level"`
	Mechanic         *string  `json:"mechanic,omitempty"`
	Equipment        *string  `json:"equipment,omitempty"`
	Category         string   `json:"category"`
	Instructions     []string `json:"instructions"`
	Images           []string `json:"images"`
	PrimaryMuscles   []string `json:"primaryMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	ImageURL         string   `json:"imageUrl,omitempty"`
}

type SearchParams struct {
	Term      string
	Level     string
	Mechanic  string
	Equipment string
	Category  string
	Muscle    string
	Page      int
	Size      int
}

type Filters struct {
	Levels     []string `json:"levels"`
	Mechanics  []string `json:"mechanics"`
	Equipment  []string `json:"equipment"`
	Categories []string `json:"categories"`
	Muscles    []string `json:"muscles"`
}

// The image dumps come with two directory layouts. Both get flattened to
// the single layout the static file server actually uses.
var (
	numberedDirImageRe = regexp.MustCompile(`exercises/(\d+)/(\d+_[^/]+)`)
	nestedDirImageRe   = regexp.MustCompile(`exercises/([^/]+)/([^/]+)/(\d+\.jpg)`)
)

func FixImagePath(path string) string {
	path = numberedDirImageRe.ReplaceAllString(path, "exercises/${1}_$2")
	path = nestedDirImageRe.ReplaceAllString(path, "exercises/${1}_$2/$3")
	return path
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanInstruction normalizes one instruction step coming from the CSV dump.
func CleanInstruction(step string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(step), " ")
}

// FixImagePaths returns the image list with every path flattened.
func (e *Exercise) FixImagePaths() []string {
	fixed := make([]string, 0, len(e.Images))
	for _, img := range e.Images {
		fixed = append(fixed, FixImagePath(img))
	}
	return fixed
}
