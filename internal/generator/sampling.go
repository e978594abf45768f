package generator

import (
	"math/rand/v2"
	"slices"

	"github.com/limbo/gymverse/pkg/entity"
)

// pickRandom returns up to count distinct elements of pool in random order.
// The pool itself is left untouched.
func pickRandom[T any](rnd *rand.Rand, pool []T, count int) []T {
	if count <= 0 || len(pool) == 0 {
		return nil
	}
	shuffled := slices.Clone(pool)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:min(count, len(shuffled))]
}

// randomIn draws uniformly from the inclusive range.
func randomIn(rnd *rand.Rand, r Range) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rnd.IntN(r.Max-r.Min+1)
}

func targetPool(exercises []entity.Exercise, targets []string) []entity.Exercise {
	pool := make([]entity.Exercise, 0, len(exercises))
	for _, e := range exercises {
		if slices.Contains(targets, e.MuscleGroup) || slices.ContainsFunc(e.SecondaryMuscles, func(m string) bool {
			return slices.Contains(targets, m)
		}) {
			pool = append(pool, e)
		}
	}
	return pool
}

// filterByEquipment keeps exercises doable with the available equipment.
// Bodyweight and equipment-free exercises always pass; an empty list disables the filter.
func filterByEquipment(pool []entity.Exercise, available []string) []entity.Exercise {
	if len(available) == 0 {
		return pool
	}
	out := make([]entity.Exercise, 0, len(pool))
	for _, e := range pool {
		if slices.Contains(available, e.Equipment) || e.Equipment == entity.EquipmentBodyweight || e.Equipment == entity.EquipmentNone {
			out = append(out, e)
		}
	}
	return out
}

// filterByDifficulty hides advanced exercises from beginners.
func filterByDifficulty(pool []entity.Exercise, level string) []entity.Exercise {
	if level != entity.LevelBeginner {
		return pool
	}
	out := make([]entity.Exercise, 0, len(pool))
	for _, e := range pool {
		if e.Difficulty == entity.LevelBeginner || e.Difficulty == entity.LevelIntermediate {
			out = append(out, e)
		}
	}
	return out
}

func splitCompound(pool []entity.Exercise) (compounds, others []entity.Exercise) {
	for _, e := range pool {
		if e.HasTag(entity.TagCompound) {
			compounds = append(compounds, e)
		} else {
			others = append(others, e)
		}
	}
	return compounds, others
}

// fallbackPool returns catalog-wide full-body or compound exercises not yet selected.
func fallbackPool(exercises, selected []entity.Exercise) []entity.Exercise {
	out := make([]entity.Exercise, 0)
	for _, e := range exercises {
		if e.MuscleGroup != entity.MuscleFullBody && !e.HasTag(entity.TagCompound) {
			continue
		}
		if slices.ContainsFunc(selected, func(s entity.Exercise) bool { return s.ID == e.ID }) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func filterCardio(pool []entity.CardioActivity, keep func(*entity.CardioActivity) bool) []entity.CardioActivity {
	out := make([]entity.CardioActivity, 0, len(pool))
	for i := range pool {
		if keep(&pool[i]) {
			out = append(out, pool[i])
		}
	}
	return out
}
