package catalog

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Importer seeds the exercise catalog from the free-exercise-db CSV dump.
type Importer struct {
	repo exerciseAdder
}

type exerciseAdder interface {
	Add(ctx context.Context, exercise Exercise) error
}

func NewImporter(repo exerciseAdder) *Importer {
	return &Importer{
		repo: repo,
	}
}

// muscle names found in the dump, mapped onto the canonical set
var muscleMapping = map[string]string{
	"quadriceps":  "QUADRICEPS",
	"glutes":      "GLUTES",
	"hamstrings":  "HAMSTRINGS",
	"chest":       "CHEST",
	"triceps":     "TRICEPS",
	"shoulders":   "SHOULDERS",
	"biceps":      "BICEPS",
	"abdominals":  "ABDOMINALS",
	"abductors":   "ABDUCTORS",
	"adductors":   "ADDUCTORS",
	"calves":      "CALVES",
	"lower back":  "LOWER_BACK",
	"upper back":  "UPPER_BACK",
	"lats":        "LATS",
	"middle back": "TRAPS",
	"traps":       "TRAPS",
	"rhomboids":   "RHOMBOIDS",
}

// ImportCSV reads the whole dump and upserts every row. Rows without an id
// or name are skipped, a single broken row does not abort the import.
func (imp *Importer) ImportCSV(ctx context.Context, input io.Reader) (imported, skipped int, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return 0, 0, fmt.Errorf("read csv: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, 0, fmt.Errorf("read csv header: %w", err)
	}
	columns := map[string]int{}
	for i, name := range header {
		// the dump carries a duplicated id column, the first one wins
		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}
	for _, required := range []string{"id", "name"} {
		if _, ok := columns[required]; !ok {
			return 0, 0, fmt.Errorf("csv missing column %q", required)
		}
	}

	rowNumber := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNumber++
		if err != nil {
			log.Errorf("import row %d: %s", rowNumber, err)
			skipped++
			continue
		}

		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		id, name := field("id"), field("name")
		if id == "" || name == "" {
			log.Debugf("skipping row %d: missing exercise id or name", rowNumber)
			skipped++
			continue
		}

		exercise := Exercise{
			ID:               id,
			Name:             name,
			Force:            optional(field("force")),
			Level:            withDefault(field("level"), "beginner"),
			Mechanic:         optional(field("mechanic")),
			Equipment:        optional(field("equipment")),
			Category:         withDefault(field("category"), "strength"),
			Instructions:     parseListField(field("instructions")),
			Images:           parseListField(field("images")),
			PrimaryMuscles:   parseMuscleField(field("primaryMuscles")),
			SecondaryMuscles: parseMuscleField(field("secondaryMuscles")),
		}

		if err := imp.repo.Add(ctx, exercise); err != nil {
			log.Errorf("import row %d, exercise %s: %s", rowNumber, id, err)
			skipped++
			continue
		}
		imported++
	}

	log.Debugf("catalog import done: %d imported, %d skipped", imported, skipped)
	return imported, skipped, nil
}

// detectDelimiter picks the separator producing the most fields on the
// header line.
func detectDelimiter(data []byte) rune {
	firstLine, _, _ := strings.Cut(string(data), "\n")
	best, maxFields := ',', 0
	for _, delimiter := range []rune{',', ';', '\t'} {
		if fields := strings.Count(firstLine, string(delimiter)); fields > maxFields {
			maxFields = fields
			best = delimiter
		}
	}
	return best
}

// parseListField reads a JSON array field, falling back to a comma
// separated list.
func parseListField(field string) []string {
	if field == "" {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal([]byte(field), &list); err == nil {
		return list
	}
	var single string
	if err := json.Unmarshal([]byte(field), &single); err == nil {
		return []string{strings.TrimSpace(single)}
	}

	list = []string{}
	for _, item := range strings.Split(field, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

// parseMuscleField additionally deduplicates and maps onto the canonical
// muscle names.
func parseMuscleField(field string) []string {
	seen := map[string]bool{}
	var muscles []string
	for _, muscle := range parseListField(field) {
		canonical := mapMuscle(muscle)
		if canonical == "" || seen[canonical] {
			continue
		}
		seen[canonical] = true
		muscles = append(muscles, canonical)
	}
	return muscles
}

func mapMuscle(muscle string) string {
	muscle = strings.ToLower(strings.TrimSpace(muscle))
	if canonical, ok := muscleMapping[muscle]; ok {
		return canonical
	}
	return strings.ToUpper(muscle)
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
