package generator_test

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/gymverse/internal/catalog"
	errorvalues "github.com/limbo/gymverse/internal/error_values"
	"github.com/limbo/gymverse/internal/generator"
	"github.com/limbo/gymverse/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allMuscles = []string{
	entity.MuscleChest, entity.MuscleBack, entity.MuscleShoulders, entity.MuscleLegs,
	entity.MuscleArms, entity.MuscleCore, entity.MuscleGlutes, entity.MuscleFullBody,
}

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return c
}

func seeded(seed uint64) generator.Option {
	return generator.WithRandSource(func() rand.Source {
		return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	})
}

// checkRoutine asserts the structural invariants every generated routine must hold.
func checkRoutine(t *testing.T, c *catalog.Catalog, req *entity.GenerateRoutineRequest, r *entity.Routine) {
	t.Helper()
	profile, err := generator.ProfileFor(req.Goal)
	require.NoError(t, err)
	perDay := generator.ExercisesPerDay(req.SessionDurationMin, profile)
	require.GreaterOrEqual(t, perDay, 3)
	require.LessOrEqual(t, perDay, 8)

	require.Len(t, r.Weeks, 1)
	assert.Equal(t, 1, r.Weeks[0].WeekNumber)
	days := r.Weeks[0].Days
	require.Len(t, days, generator.ClampDays(req.DaysPerWeek))
	assert.Equal(t, len(days), r.DaysPerWeek)

	for i, day := range days {
		assert.Equal(t, i+1, day.DayNumber)
		assert.GreaterOrEqual(t, len(day.Exercises), 3, day.Focus)
		assert.LessOrEqual(t, len(day.Exercises), perDay, day.Focus)
		seen := make(map[string]bool, len(day.Exercises))
		for j, ex := range day.Exercises {
			assert.Equal(t, j+1, ex.Order)
			assert.False(t, seen[ex.ExerciseID], "duplicate exercise %s", ex.ExerciseID)
			seen[ex.ExerciseID] = true
			catalogEx, err := c.Exercise(ex.ExerciseID)
			require.NoError(t, err)
			assert.ElementsMatch(t, catalogEx.AlternateExerciseIDs, ex.AlternateIDs)
			assert.True(t, profile.Sets.Contains(ex.Sets), "sets %d", ex.Sets)
			assert.True(t, profile.Reps.Contains(ex.Reps), "reps %d", ex.Reps)
			assert.True(t, profile.RestSeconds.Contains(ex.RestSeconds), "rest %d", ex.RestSeconds)
		}
		if generator.IsCardioDay(day.Focus) || profile.CardioRatio >= 0.3 {
			assert.NotNil(t, day.Cardio, day.Focus)
		}
		if day.Cardio != nil {
			_, err := c.CardioActivity(day.Cardio.CardioID)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, day.Cardio.DurationMin, 10)
			assert.LessOrEqual(t, day.Cardio.DurationMin, 45)
		}
	}
}

func TestGenerateInvariants(t *testing.T) {
	c := loadCatalog(t)
	g := generator.New(c)
	equipmentSets := [][]string{
		nil,
		{entity.EquipmentBodyweight},
		{entity.EquipmentBarbell, entity.EquipmentDumbbell, entity.EquipmentBodyweight},
		{entity.EquipmentKettlebell},
	}
	levels := []string{entity.LevelBeginner, entity.LevelIntermediate, entity.LevelAdvanced}
	for _, goal := range generator.Goals() {
		for days := 1; days <= 10; days++ {
			for _, level := range levels {
				for _, equipment := range equipmentSets {
					for _, duration := range []int{15, 45, 60, 120} {
						req := &entity.GenerateRoutineRequest{
							Goal:               goal,
							DaysPerWeek:        days,
							SessionDurationMin: duration,
							FitnessLevel:       level,
							AvailableEquipment: equipment,
						}
						name := fmt.Sprintf("%s/%dd/%s/%v/%dmin", goal, days, level, equipment, duration)
						t.Run(name, func(t *testing.T) {
							r, err := g.Generate(req, uuid.New())
							require.NoError(t, err)
							checkRoutine(t, c, req, r)
						})
					}
				}
			}
		}
	}
}

func TestGenerateExampleMuscleBuilding(t *testing.T) {
	c := loadCatalog(t)
	g := generator.New(c)
	req := &entity.GenerateRoutineRequest{
		Goal:               generator.GoalMuscleBuilding,
		DaysPerWeek:        4,
		SessionDurationMin: 60,
		FitnessLevel:       entity.LevelIntermediate,
		AvailableEquipment: []string{entity.EquipmentBarbell, entity.EquipmentDumbbell, entity.EquipmentBodyweight},
	}
	owner := uuid.New()
	r, err := g.Generate(req, owner)
	require.NoError(t, err)
	checkRoutine(t, c, req, r)

	assert.Equal(t, "Muscle Building - 4 Day Plan", r.Name)
	assert.Equal(t, owner, r.UserID)
	assert.Equal(t, req.AvailableEquipment, r.AvailableEquipment)
	require.Len(t, r.Weeks[0].Days, 4)
	for _, day := range r.Weeks[0].Days {
		var others int
		for _, ex := range day.Exercises {
			assert.GreaterOrEqual(t, ex.Sets, 3)
			assert.LessOrEqual(t, ex.Sets, 5)
			assert.GreaterOrEqual(t, ex.Reps, 6)
			assert.LessOrEqual(t, ex.Reps, 12)
			assert.GreaterOrEqual(t, ex.RestSeconds, 60)
			assert.LessOrEqual(t, ex.RestSeconds, 120)
			e, err := c.Exercise(ex.ExerciseID)
			require.NoError(t, err)
			if !e.HasTag(entity.TagCompound) {
				others++
			}
		}
		// 8 slots: 5 reserved for compounds, the other 3 for the rest.
		assert.LessOrEqual(t, others, 3, day.Focus)
	}
}

func TestCompoundShare(t *testing.T) {
	exercises := make([]entity.Exercise, 0, 20)
	for i := range 10 {
		exercises = append(exercises,
			entity.Exercise{ID: fmt.Sprintf("compound-%d", i), MuscleGroup: entity.MuscleFullBody, SecondaryMuscles: allMuscles,
				Equipment: entity.EquipmentBodyweight, Difficulty: entity.LevelBeginner, Tags: []string{entity.TagCompound}},
			entity.Exercise{ID: fmt.Sprintf("isolation-%d", i), MuscleGroup: entity.MuscleFullBody, SecondaryMuscles: allMuscles,
				Equipment: entity.EquipmentBodyweight, Difficulty: entity.LevelBeginner},
		)
	}
	cardio := []entity.CardioActivity{{ID: "walk", FunRating: 3, IntensityLevel: entity.IntensityLow}}
	g := generator.New(catalog.New(exercises, cardio))
	r, err := g.Generate(&entity.GenerateRoutineRequest{
		Goal:               generator.GoalMuscleBuilding,
		DaysPerWeek:        5,
		SessionDurationMin: 60,
		FitnessLevel:       entity.LevelAdvanced,
	}, uuid.New())
	require.NoError(t, err)
	for _, day := range r.Weeks[0].Days {
		require.Len(t, day.Exercises, 8)
		var compounds int
		for i, ex := range day.Exercises {
			if i < 5 {
				assert.Contains(t, ex.ExerciseID, "compound-")
				compounds++
			} else {
				assert.Contains(t, ex.ExerciseID, "isolation-")
			}
		}
		assert.Equal(t, 5, compounds)
	}
}

func TestDaysClamped(t *testing.T) {
	c := loadCatalog(t)
	g := generator.New(c)
	tests := []struct {
		days int
		want int
	}{
		{-2, 3}, {0, 3}, {3, 3}, {4, 4}, {5, 5}, {6, 6}, {7, 6}, {10, 6},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.days), func(t *testing.T) {
			r, err := g.Preview(&entity.GenerateRoutineRequest{
				Goal:               generator.GoalGeneralFitness,
				DaysPerWeek:        tt.days,
				SessionDurationMin: 45,
				FitnessLevel:       entity.LevelIntermediate,
			})
			require.NoError(t, err)
			assert.Len(t, r.Weeks[0].Days, tt.want)
			assert.Equal(t, tt.want, r.DaysPerWeek)
			assert.Equal(t, fmt.Sprintf("General Fitness - %d Day Plan", tt.want), r.Name)
		})
	}
}

func TestEquipmentFilter(t *testing.T) {
	c := loadCatalog(t)
	g := generator.New(c)
	for _, goal := range generator.Goals() {
		for days := 3; days <= 6; days++ {
			r, err := g.Generate(&entity.GenerateRoutineRequest{
				Goal:               goal,
				DaysPerWeek:        days,
				SessionDurationMin: 60,
				FitnessLevel:       entity.LevelAdvanced,
				AvailableEquipment: []string{entity.EquipmentBodyweight},
			}, uuid.New())
			require.NoError(t, err)
			for _, day := range r.Weeks[0].Days {
				for _, ex := range day.Exercises {
					e, err := c.Exercise(ex.ExerciseID)
					require.NoError(t, err)
					assert.Contains(t, []string{entity.EquipmentBodyweight, entity.EquipmentNone}, e.Equipment, e.ID)
				}
			}
		}
	}
}

func TestDifficultyFilter(t *testing.T) {
	c := loadCatalog(t)
	g := generator.New(c)
	for _, goal := range generator.Goals() {
		for days := 3; days <= 6; days++ {
			r, err := g.Generate(&entity.GenerateRoutineRequest{
				Goal:               goal,
				DaysPerWeek:        days,
				SessionDurationMin: 90,
				FitnessLevel:       entity.LevelBeginner,
			}, uuid.New())
			require.NoError(t, err)
			for _, day := range r.Weeks[0].Days {
				for _, ex := range day.Exercises {
					e, err := c.Exercise(ex.ExerciseID)
					require.NoError(t, err)
					assert.NotEqual(t, entity.LevelAdvanced, e.Difficulty, e.ID)
				}
			}
		}
	}
}

func TestCardioFunDay(t *testing.T) {
	c := loadCatalog(t)
	g := generator.New(c)
	tests := []struct {
		duration int
		want     int
	}{
		{10, 10},
		{40, 28},
		{60, 42},
		{90, 45},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.duration), func(t *testing.T) {
			// Muscle building has a low cardio ratio, so only the focus label forces cardio.
			r, err := g.Generate(&entity.GenerateRoutineRequest{
				Goal:               generator.GoalMuscleBuilding,
				DaysPerWeek:        5,
				SessionDurationMin: tt.duration,
				FitnessLevel:       entity.LevelIntermediate,
			}, uuid.New())
			require.NoError(t, err)
			last := r.Weeks[0].Days[4]
			assert.Equal(t, "Cardio Fun Day", last.Focus)
			require.NotNil(t, last.Cardio)
			assert.Equal(t, tt.want, last.Cardio.DurationMin)
		})
	}
}

func TestPreview(t *testing.T) {
	c := loadCatalog(t)
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("x", 3600))
	g := generator.New(c, generator.WithClock(func() time.Time { return fixed }))
	req := &entity.GenerateRoutineRequest{
		Goal:               generator.GoalStressRelief,
		DaysPerWeek:        3,
		SessionDurationMin: 30,
		FitnessLevel:       entity.LevelBeginner,
	}
	first, err := g.Preview(req)
	require.NoError(t, err)
	second, err := g.Preview(req)
	require.NoError(t, err)
	for _, r := range []*entity.Routine{first, second} {
		checkRoutine(t, c, req, r)
		assert.Equal(t, generator.PreviewOwnerID, r.UserID)
		assert.Equal(t, fixed.UTC(), r.CreatedAt)
		assert.Equal(t, r.CreatedAt, r.UpdatedAt)
		assert.NotNil(t, r.AvailableEquipment)
	}
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSeededGenerationIsReproducible(t *testing.T) {
	c := loadCatalog(t)
	req := &entity.GenerateRoutineRequest{
		Goal:               generator.GoalAthleticPerformance,
		DaysPerWeek:        6,
		SessionDurationMin: 75,
		FitnessLevel:       entity.LevelAdvanced,
	}
	first, err := generator.New(c, seeded(42)).Preview(req)
	require.NoError(t, err)
	second, err := generator.New(c, seeded(42)).Preview(req)
	require.NoError(t, err)
	assert.Equal(t, first.Weeks, second.Weeks)
}

func TestUnknownGoal(t *testing.T) {
	g := generator.New(loadCatalog(t))
	_, err := g.Generate(&entity.GenerateRoutineRequest{
		Goal:               "get-swole",
		DaysPerWeek:        3,
		SessionDurationMin: 45,
		FitnessLevel:       entity.LevelBeginner,
	}, uuid.New())
	assert.ErrorIs(t, err, errorvalues.ErrUnknownGoal)
}

func TestFallbackPadding(t *testing.T) {
	exercises := []entity.Exercise{
		{ID: "only-target", MuscleGroup: entity.MuscleChest, Equipment: entity.EquipmentBodyweight, Difficulty: entity.LevelBeginner},
		{ID: "full-1", MuscleGroup: entity.MuscleFullBody, Equipment: entity.EquipmentBarbell, Difficulty: entity.LevelAdvanced},
		{ID: "full-2", MuscleGroup: entity.MuscleFullBody, Equipment: entity.EquipmentKettlebell, Difficulty: entity.LevelAdvanced},
		{ID: "compound-legs", MuscleGroup: entity.MuscleLegs, Equipment: entity.EquipmentMachine, Difficulty: entity.LevelBeginner,
			Tags: []string{entity.TagCompound}},
		{ID: "isolation-legs", MuscleGroup: entity.MuscleLegs, Equipment: entity.EquipmentMachine, Difficulty: entity.LevelBeginner},
	}
	cardio := []entity.CardioActivity{{ID: "walk", FunRating: 3, IntensityLevel: entity.IntensityLow}}
	c := catalog.New(exercises, cardio)
	g := generator.New(c)
	for range 20 {
		r, err := g.Generate(&entity.GenerateRoutineRequest{
			Goal:               generator.GoalEndurance,
			DaysPerWeek:        5,
			SessionDurationMin: 60,
			FitnessLevel:       entity.LevelBeginner,
			AvailableEquipment: []string{entity.EquipmentBodyweight},
		}, uuid.New())
		require.NoError(t, err)
		chestDay := r.Weeks[0].Days[0]
		assert.Equal(t, "Chest & Triceps", chestDay.Focus)
		require.Len(t, chestDay.Exercises, 3)
		assert.Equal(t, "only-target", chestDay.Exercises[0].ExerciseID)
		for _, ex := range chestDay.Exercises[1:] {
			assert.Contains(t, []string{"full-1", "full-2", "compound-legs"}, ex.ExerciseID)
		}
		assert.NotEqual(t, chestDay.Exercises[1].ExerciseID, chestDay.Exercises[2].ExerciseID)
	}
}

func TestInsufficientCatalog(t *testing.T) {
	exercises := []entity.Exercise{
		{ID: "curl", MuscleGroup: entity.MuscleArms, Equipment: entity.EquipmentDumbbell, Difficulty: entity.LevelBeginner},
		{ID: "squat", MuscleGroup: entity.MuscleLegs, Equipment: entity.EquipmentBodyweight, Difficulty: entity.LevelBeginner,
			Tags: []string{entity.TagCompound}},
	}
	cardio := []entity.CardioActivity{{ID: "walk", FunRating: 3, IntensityLevel: entity.IntensityLow}}
	g := generator.New(catalog.New(exercises, cardio))
	_, err := g.Generate(&entity.GenerateRoutineRequest{
		Goal:               generator.GoalGeneralFitness,
		DaysPerWeek:        4,
		SessionDurationMin: 45,
		FitnessLevel:       entity.LevelIntermediate,
	}, uuid.New())
	assert.ErrorIs(t, err, errorvalues.ErrInsufficientCatalog)
}

func TestEmptyCardioCatalog(t *testing.T) {
	c := loadCatalog(t)
	g := generator.New(catalog.New(c.Exercises(), nil))
	_, err := g.Generate(&entity.GenerateRoutineRequest{
		Goal:               generator.GoalWeightLoss,
		DaysPerWeek:        3,
		SessionDurationMin: 45,
		FitnessLevel:       entity.LevelIntermediate,
	}, uuid.New())
	assert.ErrorIs(t, err, errorvalues.ErrEmptyCardioCatalog)
}

func TestCardioSelection(t *testing.T) {
	c := loadCatalog(t)
	tests := []struct {
		name   string
		goal   string
		cardio []entity.CardioActivity
		want   string
	}{
		{
			name: "fun and preferred intensity",
			goal: generator.GoalWeightLoss,
			cardio: []entity.CardioActivity{
				{ID: "fun-low", FunRating: 5, IntensityLevel: entity.IntensityLow},
				{ID: "dull-hiit", FunRating: 2, IntensityLevel: entity.IntensityHIIT},
				{ID: "fun-hiit", FunRating: 4, IntensityLevel: entity.IntensityHIIT},
			},
			want: "fun-hiit",
		},
		{
			name: "intensity falls back to the fun pool",
			goal: generator.GoalWeightLoss,
			cardio: []entity.CardioActivity{
				{ID: "fun-low", FunRating: 5, IntensityLevel: entity.IntensityLow},
				{ID: "dull-hiit", FunRating: 2, IntensityLevel: entity.IntensityHIIT},
			},
			want: "fun-low",
		},
		{
			name: "no fun activity falls back to the whole catalog",
			goal: generator.GoalWeightLoss,
			cardio: []entity.CardioActivity{
				{ID: "dull-hiit", FunRating: 2, IntensityLevel: entity.IntensityHIIT},
				{ID: "dull-low", FunRating: 1, IntensityLevel: entity.IntensityLow},
			},
			want: "dull-hiit",
		},
		{
			name: "fun rating outranks intensity",
			goal: generator.GoalFlexibility,
			cardio: []entity.CardioActivity{
				{ID: "fun-hiit", FunRating: 5, IntensityLevel: entity.IntensityHIIT},
				{ID: "dull-low", FunRating: 1, IntensityLevel: entity.IntensityLow},
			},
			want: "fun-hiit",
		},
		{
			name: "no fun preference",
			goal: generator.GoalAthleticPerformance,
			cardio: []entity.CardioActivity{
				{ID: "fun-low", FunRating: 5, IntensityLevel: entity.IntensityLow},
				{ID: "dull-high", FunRating: 1, IntensityLevel: entity.IntensityHigh},
			},
			want: "dull-high",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := generator.New(catalog.New(c.Exercises(), tt.cardio))
			r, err := g.Preview(&entity.GenerateRoutineRequest{
				Goal:               tt.goal,
				DaysPerWeek:        4,
				SessionDurationMin: 60,
				FitnessLevel:       entity.LevelIntermediate,
			})
			require.NoError(t, err)
			for _, day := range r.Weeks[0].Days {
				require.NotNil(t, day.Cardio)
				assert.Equal(t, tt.want, day.Cardio.CardioID)
			}
		})
	}
}

func TestConcurrentPreview(t *testing.T) {
	c := loadCatalog(t)
	g := generator.New(c)
	req := &entity.GenerateRoutineRequest{
		Goal:               generator.GoalWeightLoss,
		DaysPerWeek:        5,
		SessionDurationMin: 50,
		FitnessLevel:       entity.LevelBeginner,
		AvailableEquipment: []string{entity.EquipmentDumbbell},
	}
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := g.Preview(req); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestMuscleGroupsForFocus(t *testing.T) {
	tests := []struct {
		focus string
		want  []string
	}{
		{"Push Day (Chest & Shoulders)", []string{"chest", "shoulders"}},
		{"Pull Day (Back & Arms)", []string{"back", "arms"}},
		{"Legs & Core", []string{"legs", "core"}},
		{"Upper Body", []string{"chest", "back", "shoulders", "arms"}},
		{"Lower Body & Core", []string{"core", "legs", "glutes"}},
		{"Full Body + Cardio", []string{"chest", "back", "shoulders", "arms"}},
		{"Legs & Glutes", []string{"legs", "glutes"}},
		{"Core & Cardio Fun Day", []string{"core"}},
		{"Chest & Triceps", []string{"chest", "arms"}},
		{"Back & Biceps", []string{"back", "arms"}},
		{"Shoulders & Core", []string{"shoulders", "core"}},
		{"Cardio Fun Day", []string{"full-body"}},
		{"Push (Shoulders & Triceps)", []string{"shoulders", "arms", "chest"}},
		{"Pull (Back & Core)", []string{"back", "core", "arms"}},
		{"Legs & Cardio Fun", []string{"legs"}},
		{"full-body blast", []string{"chest", "back", "shoulders", "arms"}},
		{"Rest", []string{"full-body"}},
	}
	for _, tt := range tests {
		t.Run(tt.focus, func(t *testing.T) {
			assert.Equal(t, tt.want, generator.MuscleGroupsForFocus(tt.focus))
		})
	}
}

func TestTemplatesCoverEveryDayCount(t *testing.T) {
	for days := generator.MinDaysPerWeek; days <= generator.MaxDaysPerWeek; days++ {
		templates := generator.TemplatesFor(days)
		require.NotEmpty(t, templates)
		for _, tpl := range templates {
			assert.Len(t, tpl, days)
		}
	}
	assert.Len(t, generator.TemplatesFor(3), 2)
	assert.Equal(t, generator.TemplatesFor(6), generator.TemplatesFor(11))
}

func TestExercisesPerDay(t *testing.T) {
	tests := []struct {
		goal     string
		duration int
		want     int
	}{
		{generator.GoalMuscleBuilding, 60, 8},
		{generator.GoalMuscleBuilding, 45, 7},
		{generator.GoalWeightLoss, 20, 3},
		{generator.GoalGeneralFitness, 45, 4},
		{generator.GoalAthleticPerformance, 30, 3},
		{generator.GoalEndurance, 100, 7},
		{generator.GoalFlexibility, 5, 3},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.goal, tt.duration), func(t *testing.T) {
			p, err := generator.ProfileFor(tt.goal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, generator.ExercisesPerDay(tt.duration, p))
		})
	}
}

func TestCardioMinutes(t *testing.T) {
	weightLoss, _ := generator.ProfileFor(generator.GoalWeightLoss)
	muscle, _ := generator.ProfileFor(generator.GoalMuscleBuilding)
	athletic, _ := generator.ProfileFor(generator.GoalAthleticPerformance)
	assert.Equal(t, 42, generator.CardioMinutes(60, muscle, true))
	assert.Equal(t, 45, generator.CardioMinutes(90, muscle, true))
	assert.Equal(t, 10, generator.CardioMinutes(10, muscle, true))
	assert.Equal(t, 18, generator.CardioMinutes(60, weightLoss, false))
	assert.Equal(t, 10, generator.CardioMinutes(60, muscle, false))
	assert.Equal(t, 20, generator.CardioMinutes(100, athletic, false))
	assert.Equal(t, 45, generator.CardioMinutes(300, weightLoss, false))
}

func TestProfiles(t *testing.T) {
	assert.Len(t, generator.Goals(), 7)
	for _, goal := range generator.Goals() {
		assert.True(t, generator.IsGoal(goal))
		p, err := generator.ProfileFor(goal)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, p.StrengthRatio+p.CardioRatio, 1e-9, goal)
		assert.LessOrEqual(t, p.Sets.Min, p.Sets.Max)
		assert.LessOrEqual(t, p.Reps.Min, p.Reps.Max)
		assert.LessOrEqual(t, p.RestSeconds.Min, p.RestSeconds.Max)
		assert.NotEmpty(t, p.PreferredIntensity)
	}
	assert.False(t, generator.IsGoal("couch-potato"))

	goals := generator.Goals()
	goals[0] = "mutated"
	assert.Equal(t, generator.GoalWeightLoss, generator.Goals()[0])
}

func TestGoalTitle(t *testing.T) {
	assert.Equal(t, "Muscle Building", generator.GoalTitle("muscle-building"))
	assert.Equal(t, "Athletic Performance", generator.GoalTitle("athletic-performance"))
	assert.Equal(t, "Endurance", generator.GoalTitle("endurance"))
}
