package catalog

import (
	"math/rand/v2"
	"slices"
	"strings"

	errorvalues "github.com/limbo/gymverse/internal/error_values"
	"github.com/limbo/gymverse/pkg/entity"
)

// ExerciseFilter narrows the exercise list. Empty fields are ignored.
type ExerciseFilter struct {
	MuscleGroup string
	Equipment   string
	Difficulty  string
	Search      string
	Tags        []string
}

// CardioFilter narrows the cardio list. Empty fields are ignored.
type CardioFilter struct {
	Category     string
	Intensity    string
	MinFunRating int
	Tags         []string
	Search       string
}

func (c *Catalog) FilterExercises(f ExerciseFilter) []entity.Exercise {
	query := strings.ToLower(f.Search)
	result := make([]entity.Exercise, 0, len(c.exercises))
	for _, e := range c.exercises {
		if f.MuscleGroup != "" && e.MuscleGroup != f.MuscleGroup && !slices.Contains(e.SecondaryMuscles, f.MuscleGroup) {
			continue
		}
		if f.Equipment != "" && e.Equipment != f.Equipment {
			continue
		}
		if f.Difficulty != "" && e.Difficulty != f.Difficulty {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(e.Name), query) && !anyContains(e.Tags, query) {
			continue
		}
		if len(f.Tags) > 0 && !anyTag(e.Tags, f.Tags) {
			continue
		}
		result = append(result, e)
	}
	return result
}

// MuscleGroups lists distinct primary muscle groups in catalog order.
func (c *Catalog) MuscleGroups() []string {
	groups := make([]string, 0, 8)
	for _, e := range c.exercises {
		if !slices.Contains(groups, e.MuscleGroup) {
			groups = append(groups, e.MuscleGroup)
		}
	}
	return groups
}

func (c *Catalog) FilterCardio(f CardioFilter) []entity.CardioActivity {
	query := strings.ToLower(f.Search)
	result := make([]entity.CardioActivity, 0, len(c.cardio))
	for _, a := range c.cardio {
		if f.Category != "" && a.Category != f.Category {
			continue
		}
		if f.Intensity != "" && a.IntensityLevel != f.Intensity {
			continue
		}
		if a.FunRating < f.MinFunRating {
			continue
		}
		if len(f.Tags) > 0 && !anyTag(a.Tags, f.Tags) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(a.Name), query) &&
			!strings.Contains(strings.ToLower(a.Description), query) &&
			!anyContains(a.Tags, query) {
			continue
		}
		result = append(result, a)
	}
	return result
}

// RandomCardio picks one activity matching f uniformly at random.
func (c *Catalog) RandomCardio(f CardioFilter) (*entity.CardioActivity, error) {
	pool := c.FilterCardio(f)
	if len(pool) == 0 {
		return nil, errorvalues.ErrCardioNotFound
	}
	a := pool[rand.IntN(len(pool))]
	return &a, nil
}

func (c *Catalog) Categories() []string {
	categories := make([]string, 0, 8)
	for _, a := range c.cardio {
		if !slices.Contains(categories, a.Category) {
			categories = append(categories, a.Category)
		}
	}
	return categories
}

func anyTag(have, want []string) bool {
	for _, t := range want {
		if slices.Contains(have, strings.TrimSpace(t)) {
			return true
		}
	}
	return false
}

func anyContains(tags []string, query string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}
