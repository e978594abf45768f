package generator

import (
	"slices"
	"strings"

	"github.com/limbo/gymverse/pkg/entity"
)

// MuscleGroupsForFocus infers the target muscle groups from a day focus label
// by substring matching. The keyword list and its order determine the
// generated distributions, so keep both stable.
func MuscleGroupsForFocus(focus string) []string {
	lower := strings.ToLower(focus)
	groups := make([]string, 0, 6)

	if strings.Contains(lower, "chest") {
		groups = append(groups, entity.MuscleChest)
	}
	if strings.Contains(lower, "back") {
		groups = append(groups, entity.MuscleBack)
	}
	if strings.Contains(lower, "shoulder") {
		groups = append(groups, entity.MuscleShoulders)
	}
	if strings.Contains(lower, "leg") {
		groups = append(groups, entity.MuscleLegs)
	}
	if strings.Contains(lower, "arm") || strings.Contains(lower, "bicep") || strings.Contains(lower, "tricep") {
		groups = append(groups, entity.MuscleArms)
	}
	if strings.Contains(lower, "core") {
		groups = append(groups, entity.MuscleCore)
	}
	if strings.Contains(lower, "glute") {
		groups = append(groups, entity.MuscleGlutes)
	}
	if strings.Contains(lower, "full body") || strings.Contains(lower, "full-body") || strings.Contains(lower, "upper body") {
		groups = append(groups, entity.MuscleChest, entity.MuscleBack, entity.MuscleShoulders, entity.MuscleArms)
	}
	if strings.Contains(lower, "lower body") {
		groups = append(groups, entity.MuscleLegs, entity.MuscleGlutes)
	}
	if strings.Contains(lower, "push") {
		groups = appendMissing(groups, entity.MuscleChest, entity.MuscleShoulders)
	}
	if strings.Contains(lower, "pull") {
		groups = appendMissing(groups, entity.MuscleBack, entity.MuscleArms)
	}

	if len(groups) == 0 {
		return []string{entity.MuscleFullBody}
	}
	return groups
}

// IsCardioDay reports whether the focus label makes cardio the centre of the day.
func IsCardioDay(focus string) bool {
	return strings.Contains(strings.ToLower(focus), "cardio")
}

func appendMissing(groups []string, want ...string) []string {
	for _, g := range want {
		if !slices.Contains(groups, g) {
			groups = append(groups, g)
		}
	}
	return groups
}
