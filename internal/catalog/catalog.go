package catalog

import (
	"embed"
	"errors"
	"fmt"
	"os"

	errorvalues "github.com/limbo/gymverse/internal/error_values"
	"github.com/limbo/gymverse/pkg/entity"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

var knownIntensities = map[string]bool{
	entity.IntensityLow:      true,
	entity.IntensityModerate: true,
	entity.IntensityHigh:     true,
	entity.IntensityHIIT:     true,
}

// Catalog holds the static exercise and cardio reference data.
// It is never modified after construction and is safe for concurrent reads.
type Catalog struct {
	exercises   []entity.Exercise
	cardio      []entity.CardioActivity
	exerciseIdx map[string]int
	cardioIdx   map[string]int
}

func New(exercises []entity.Exercise, cardio []entity.CardioActivity) *Catalog {
	c := &Catalog{
		exercises:   exercises,
		cardio:      cardio,
		exerciseIdx: make(map[string]int, len(exercises)),
		cardioIdx:   make(map[string]int, len(cardio)),
	}
	for i, e := range exercises {
		if _, ok := c.exerciseIdx[e.ID]; !ok {
			c.exerciseIdx[e.ID] = i
		}
	}
	for i, a := range cardio {
		if _, ok := c.cardioIdx[a.ID]; !ok {
			c.cardioIdx[a.ID] = i
		}
	}
	return c
}

// Load returns the catalog embedded into the binary.
func Load() (*Catalog, error) {
	exData, err := dataFS.ReadFile("data/exercises.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded exercises: %w", err)
	}
	cardioData, err := dataFS.ReadFile("data/cardio.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded cardio: %w", err)
	}
	return parse(exData, cardioData)
}

// LoadFiles reads the catalog from YAML files on disk.
func LoadFiles(exercisesPath, cardioPath string) (*Catalog, error) {
	exData, err := os.ReadFile(exercisesPath)
	if err != nil {
		return nil, fmt.Errorf("reading exercises file: %w", err)
	}
	cardioData, err := os.ReadFile(cardioPath)
	if err != nil {
		return nil, fmt.Errorf("reading cardio file: %w", err)
	}
	return parse(exData, cardioData)
}

func parse(exData, cardioData []byte) (*Catalog, error) {
	var exercises []entity.Exercise
	if err := yaml.Unmarshal(exData, &exercises); err != nil {
		return nil, fmt.Errorf("parsing exercises: %w", err)
	}
	var cardio []entity.CardioActivity
	if err := yaml.Unmarshal(cardioData, &cardio); err != nil {
		return nil, fmt.Errorf("parsing cardio: %w", err)
	}
	c := New(exercises, cardio)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks referential integrity of the dataset.
func (c *Catalog) Validate() error {
	var errs []error
	if len(c.exerciseIdx) != len(c.exercises) {
		errs = append(errs, errors.New("duplicate exercise ids"))
	}
	if len(c.cardioIdx) != len(c.cardio) {
		errs = append(errs, errors.New("duplicate cardio ids"))
	}
	for _, e := range c.exercises {
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("exercise %q has no id", e.Name))
		}
		for _, alt := range e.AlternateExerciseIDs {
			if _, ok := c.exerciseIdx[alt]; !ok {
				errs = append(errs, fmt.Errorf("exercise %s: unknown alternate %s", e.ID, alt))
			}
		}
	}
	for _, a := range c.cardio {
		if a.FunRating < 1 || a.FunRating > 5 {
			errs = append(errs, fmt.Errorf("cardio %s: fun rating %d out of range", a.ID, a.FunRating))
		}
		if !knownIntensities[a.IntensityLevel] {
			errs = append(errs, fmt.Errorf("cardio %s: unknown intensity %q", a.ID, a.IntensityLevel))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("catalog validation: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Catalog) Exercises() []entity.Exercise {
	return c.exercises
}

func (c *Catalog) Cardio() []entity.CardioActivity {
	return c.cardio
}

func (c *Catalog) Exercise(id string) (*entity.Exercise, error) {
	i, ok := c.exerciseIdx[id]
	if !ok {
		return nil, errorvalues.ErrExerciseNotFound
	}
	e := c.exercises[i]
	return &e, nil
}

func (c *Catalog) CardioActivity(id string) (*entity.CardioActivity, error) {
	i, ok := c.cardioIdx[id]
	if !ok {
		return nil, errorvalues.ErrCardioNotFound
	}
	a := c.cardio[i]
	return &a, nil
}

// Alternates resolves the alternate exercises of id, skipping dangling references.
func (c *Catalog) Alternates(id string) ([]entity.Exercise, error) {
	e, err := c.Exercise(id)
	if err != nil {
		return nil, err
	}
	alternates := make([]entity.Exercise, 0, len(e.AlternateExerciseIDs))
	for _, altID := range e.AlternateExerciseIDs {
		if i, ok := c.exerciseIdx[altID]; ok {
			alternates = append(alternates, c.exercises[i])
		}
	}
	return alternates, nil
}
