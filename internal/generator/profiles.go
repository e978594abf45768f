package generator

import (
	"fmt"

	errorvalues "github.com/limbo/gymverse/internal/error_values"
	"github.com/limbo/gymverse/pkg/entity"
)

const (
	GoalWeightLoss          = "weight-loss"
	GoalMuscleBuilding      = "muscle-building"
	GoalEndurance           = "endurance"
	GoalFlexibility         = "flexibility"
	GoalGeneralFitness      = "general-fitness"
	GoalAthleticPerformance = "athletic-performance"
	GoalStressRelief        = "stress-relief"
)

// Range is an inclusive integer interval.
type Range struct {
	Min int
	Max int
}

func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// GoalProfile configures how a fitness goal shapes a routine.
type GoalProfile struct {
	StrengthRatio      float64
	CardioRatio        float64
	PreferredIntensity []string
	PreferFunCardio    bool
	CompoundPriority   bool
	Sets               Range
	Reps               Range
	RestSeconds        Range
}

var goalOrder = []string{
	GoalWeightLoss,
	GoalMuscleBuilding,
	GoalEndurance,
	GoalFlexibility,
	GoalGeneralFitness,
	GoalAthleticPerformance,
	GoalStressRelief,
}

var goalProfiles = map[string]GoalProfile{
	GoalWeightLoss: {
		StrengthRatio:      0.4,
		CardioRatio:        0.6,
		PreferredIntensity: []string{entity.IntensityHIIT, entity.IntensityHigh},
		PreferFunCardio:    true,
		CompoundPriority:   true,
		Sets:               Range{3, 4},
		Reps:               Range{12, 15},
		RestSeconds:        Range{30, 60},
	},
	GoalMuscleBuilding: {
		StrengthRatio:      0.85,
		CardioRatio:        0.15,
		PreferredIntensity: []string{entity.IntensityLow, entity.IntensityModerate},
		PreferFunCardio:    false,
		CompoundPriority:   true,
		Sets:               Range{3, 5},
		Reps:               Range{6, 12},
		RestSeconds:        Range{60, 120},
	},
	GoalEndurance: {
		StrengthRatio:      0.35,
		CardioRatio:        0.65,
		PreferredIntensity: []string{entity.IntensityModerate, entity.IntensityHigh},
		PreferFunCardio:    true,
		CompoundPriority:   false,
		Sets:               Range{2, 3},
		Reps:               Range{15, 20},
		RestSeconds:        Range{30, 45},
	},
	GoalFlexibility: {
		StrengthRatio:      0.3,
		CardioRatio:        0.7,
		PreferredIntensity: []string{entity.IntensityLow, entity.IntensityModerate},
		PreferFunCardio:    true,
		CompoundPriority:   false,
		Sets:               Range{2, 3},
		Reps:               Range{10, 15},
		RestSeconds:        Range{30, 60},
	},
	GoalGeneralFitness: {
		StrengthRatio:      0.5,
		CardioRatio:        0.5,
		PreferredIntensity: []string{entity.IntensityModerate, entity.IntensityHigh},
		PreferFunCardio:    true,
		CompoundPriority:   true,
		Sets:               Range{3, 4},
		Reps:               Range{10, 12},
		RestSeconds:        Range{45, 90},
	},
	GoalAthleticPerformance: {
		StrengthRatio:      0.6,
		CardioRatio:        0.4,
		PreferredIntensity: []string{entity.IntensityHigh, entity.IntensityHIIT},
		PreferFunCardio:    false,
		CompoundPriority:   true,
		Sets:               Range{3, 5},
		Reps:               Range{5, 10},
		RestSeconds:        Range{60, 120},
	},
	GoalStressRelief: {
		StrengthRatio:      0.4,
		CardioRatio:        0.6,
		PreferredIntensity: []string{entity.IntensityLow, entity.IntensityModerate},
		PreferFunCardio:    true,
		CompoundPriority:   false,
		Sets:               Range{2, 3},
		Reps:               Range{10, 15},
		RestSeconds:        Range{60, 90},
	},
}

const (
	MinDaysPerWeek = 3
	MaxDaysPerWeek = 6
)

// Candidate focus sequences per supported day count.
var dayTemplates = map[int][][]string{
	3: {
		{"Push Day (Chest & Shoulders)", "Pull Day (Back & Arms)", "Legs & Core"},
		{"Upper Body", "Lower Body & Core", "Full Body + Cardio"},
	},
	4: {
		{"Push Day (Chest & Shoulders)", "Pull Day (Back & Arms)", "Legs & Glutes", "Core & Cardio Fun Day"},
	},
	5: {
		{"Chest & Triceps", "Back & Biceps", "Legs & Glutes", "Shoulders & Core", "Cardio Fun Day"},
	},
	6: {
		{
			"Push (Chest & Shoulders)",
			"Pull (Back & Biceps)",
			"Legs",
			"Push (Shoulders & Triceps)",
			"Pull (Back & Core)",
			"Legs & Cardio Fun",
		},
	},
}

// Goals lists the supported fitness goals in a stable order.
func Goals() []string {
	out := make([]string, len(goalOrder))
	copy(out, goalOrder)
	return out
}

func IsGoal(goal string) bool {
	_, ok := goalProfiles[goal]
	return ok
}

func ProfileFor(goal string) (GoalProfile, error) {
	p, ok := goalProfiles[goal]
	if !ok {
		return GoalProfile{}, fmt.Errorf("%w: %q", errorvalues.ErrUnknownGoal, goal)
	}
	return p, nil
}

// TemplatesFor returns the candidate focus sequences for a day count after clamping.
func TemplatesFor(days int) [][]string {
	return dayTemplates[ClampDays(days)]
}

func ClampDays(days int) int {
	return min(max(days, MinDaysPerWeek), MaxDaysPerWeek)
}
