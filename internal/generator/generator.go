// Package generator builds weekly workout routines from a fitness goal and a
// set of constraints. Generation is a pure computation over read-only catalogs:
// every call draws from its own random source, so a Generator can be shared
// between goroutines.
package generator

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/gymverse/internal/error_values"
	"github.com/limbo/gymverse/pkg/entity"
)

// PreviewOwnerID owns routines that are generated but never stored.
var PreviewOwnerID = uuid.Nil

const (
	minExercisesPerDay = 3
	maxExercisesPerDay = 8
	// Average minutes one exercise slot takes, rest included.
	minutesPerExercise = 5
	compoundShare      = 0.6

	cardioDayShare   = 0.7
	mixedCardioShare = 0.5
	minCardioMinutes = 10
	maxCardioMinutes = 45

	// Goals at or above this cardio ratio get cardio every day.
	alwaysCardioRatio = 0.3
	minFunRating      = 4
)

type Catalog interface {
	Exercises() []entity.Exercise
	Cardio() []entity.CardioActivity
}

type Generator struct {
	catalog Catalog
	source  func() rand.Source
	now     func() time.Time
}

type Option func(*Generator)

// WithRandSource sets the factory for per-call random sources.
func WithRandSource(f func() rand.Source) Option {
	return func(g *Generator) {
		g.source = f
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func New(c Catalog, opts ...Option) *Generator {
	if c == nil {
		log.Fatal("generator: provided nil catalog")
	}
	g := &Generator{
		catalog: c,
		source: func() rand.Source {
			return rand.NewPCG(rand.Uint64(), rand.Uint64())
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Preview generates a routine that is not meant to be stored.
func (g *Generator) Preview(req *entity.GenerateRoutineRequest) (*entity.Routine, error) {
	return g.Generate(req, PreviewOwnerID)
}

// Generate builds a one-week routine for ownerID.
func (g *Generator) Generate(req *entity.GenerateRoutineRequest, ownerID uuid.UUID) (*entity.Routine, error) {
	profile, err := ProfileFor(req.Goal)
	if err != nil {
		return nil, err
	}
	rnd := rand.New(g.source())

	days := ClampDays(req.DaysPerWeek)
	templates := dayTemplates[days]
	focuses := templates[rnd.IntN(len(templates))]
	perDay := ExercisesPerDay(req.SessionDurationMin, profile)

	routineDays := make([]entity.RoutineDay, 0, len(focuses))
	for i, focus := range focuses {
		day, err := g.buildDay(rnd, req, profile, i+1, focus, perDay)
		if err != nil {
			return nil, err
		}
		routineDays = append(routineDays, day)
	}

	now := g.now().UTC()
	equipment := make([]string, len(req.AvailableEquipment))
	copy(equipment, req.AvailableEquipment)
	return &entity.Routine{
		ID:                 uuid.New(),
		UserID:             ownerID,
		Name:               fmt.Sprintf("%s - %d Day Plan", GoalTitle(req.Goal), days),
		Goal:               req.Goal,
		DaysPerWeek:        days,
		SessionDurationMin: req.SessionDurationMin,
		FitnessLevel:       req.FitnessLevel,
		AvailableEquipment: equipment,
		Weeks:              []entity.RoutineWeek{{WeekNumber: 1, Days: routineDays}},
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

func (g *Generator) buildDay(rnd *rand.Rand, req *entity.GenerateRoutineRequest, profile GoalProfile, dayNumber int, focus string, perDay int) (entity.RoutineDay, error) {
	all := g.catalog.Exercises()
	pool := targetPool(all, MuscleGroupsForFocus(focus))
	pool = filterByEquipment(pool, req.AvailableEquipment)
	pool = filterByDifficulty(pool, req.FitnessLevel)

	var selected []entity.Exercise
	if profile.CompoundPriority {
		compounds, others := splitCompound(pool)
		compoundCount := int(math.Ceil(float64(perDay) * compoundShare))
		selected = append(pickRandom(rnd, compounds, compoundCount), pickRandom(rnd, others, perDay-compoundCount)...)
	} else {
		selected = pickRandom(rnd, pool, perDay)
	}
	if len(selected) < minExercisesPerDay {
		selected = append(selected, pickRandom(rnd, fallbackPool(all, selected), minExercisesPerDay-len(selected))...)
	}
	if len(selected) < minExercisesPerDay {
		return entity.RoutineDay{}, fmt.Errorf("%w: day %d (%s) has only %d usable exercises",
			errorvalues.ErrInsufficientCatalog, dayNumber, focus, len(selected))
	}
	selected = selected[:min(len(selected), perDay)]

	exercises := make([]entity.RoutineExercise, len(selected))
	for i, ex := range selected {
		exercises[i] = entity.RoutineExercise{
			ExerciseID:   ex.ID,
			Sets:         randomIn(rnd, profile.Sets),
			Reps:         randomIn(rnd, profile.Reps),
			RestSeconds:  randomIn(rnd, profile.RestSeconds),
			Order:        i + 1,
			AlternateIDs: append([]string{}, ex.AlternateExerciseIDs...),
		}
	}

	day := entity.RoutineDay{
		DayNumber: dayNumber,
		Focus:     focus,
		Exercises: exercises,
	}
	cardioDay := IsCardioDay(focus)
	// The random draw only matters below alwaysCardioRatio.
	if cardioDay || profile.CardioRatio >= alwaysCardioRatio || rnd.Float64() < profile.CardioRatio {
		activity, err := selectCardio(rnd, g.catalog.Cardio(), profile)
		if err != nil {
			return entity.RoutineDay{}, err
		}
		day.Cardio = &entity.RoutineCardio{
			CardioID:    activity.ID,
			DurationMin: CardioMinutes(req.SessionDurationMin, profile, cardioDay),
		}
	}
	return day, nil
}

func selectCardio(rnd *rand.Rand, all []entity.CardioActivity, profile GoalProfile) (entity.CardioActivity, error) {
	if len(all) == 0 {
		return entity.CardioActivity{}, errorvalues.ErrEmptyCardioCatalog
	}
	pool := all
	if profile.PreferFunCardio {
		fun := filterCardio(all, func(a *entity.CardioActivity) bool { return a.FunRating >= minFunRating })
		if len(fun) > 0 {
			pool = fun
		}
	}
	preferred := filterCardio(pool, func(a *entity.CardioActivity) bool {
		return slices.Contains(profile.PreferredIntensity, a.IntensityLevel)
	})
	if len(preferred) > 0 {
		pool = preferred
	}
	return pool[rnd.IntN(len(pool))], nil
}

// ExercisesPerDay is the strength exercise budget of one session, within [3, 8].
func ExercisesPerDay(sessionMin int, profile GoalProfile) int {
	strengthMinutes := int(math.Round(float64(sessionMin) * profile.StrengthRatio))
	return min(max(strengthMinutes/minutesPerExercise, minExercisesPerDay), maxExercisesPerDay)
}

// CardioMinutes is the cardio block length, within [10, 45].
func CardioMinutes(sessionMin int, profile GoalProfile, cardioDay bool) int {
	var minutes float64
	if cardioDay {
		minutes = math.Round(float64(sessionMin) * cardioDayShare)
	} else {
		minutes = math.Round(float64(sessionMin) * profile.CardioRatio * mixedCardioShare)
	}
	return min(max(int(minutes), minCardioMinutes), maxCardioMinutes)
}

// GoalTitle turns "muscle-building" into "Muscle Building".
func GoalTitle(goal string) string {
	words := strings.Split(goal, "-")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
