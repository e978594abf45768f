package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	PasswordHash       string    `json:"-"`
	FitnessLevel       string    `json:"fitnessLevel"`
	PreferredEquipment []string  `json:"preferredEquipment"`
	CreatedAt          time.Time `json:"createdAt"`
}

type RoutineExercise struct {
	ExerciseID   string   `json:"exerciseId"`
	Sets         int      `json:"sets"`
	Reps         int      `json:"reps"`
	RestSeconds  int      `json:"restSeconds"`
	Order        int      `json:"order"`
	AlternateIDs []string `json:"alternateIds"`
}

type RoutineCardio struct {
	CardioID    string `json:"cardioId"`
	DurationMin int    `json:"durationMin"`
}

type RoutineDay struct {
	DayNumber int               `json:"dayNumber"`
	Focus     string            `json:"focus"`
	Exercises []RoutineExercise `json:"exercises"`
	Cardio    *RoutineCardio    `json:"cardio,omitempty"`
}

type RoutineWeek struct {
	WeekNumber int          `json:"weekNumber"`
	Days       []RoutineDay `json:"days"`
}

type Routine struct {
	ID                 uuid.UUID     `json:"id"`
	UserID             uuid.UUID     `json:"userId"`
	Name               string        `json:"name"`
	Goal               string        `json:"goal"`
	DaysPerWeek        int           `json:"daysPerWeek"`
	SessionDurationMin int           `json:"sessionDurationMin"`
	FitnessLevel       string        `json:"fitnessLevel"`
	AvailableEquipment []string      `json:"availableEquipment"`
	Weeks              []RoutineWeek `json:"weeks"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

// GenerateRoutineRequest describes the goal and constraints a routine is built for.
type GenerateRoutineRequest struct {
	Goal               string   `json:"goal" validate:"required,fitness_goal"`
	DaysPerWeek        int      `json:"daysPerWeek" validate:"required"`
	SessionDurationMin int      `json:"sessionDurationMin" validate:"required,gt=0,lte=300"`
	FitnessLevel       string   `json:"fitnessLevel" validate:"required,oneof=beginner intermediate advanced"`
	AvailableEquipment []string `json:"availableEquipment"`
}

// Clone returns a deep copy, so stored routines never share slices with callers.
func (r *Routine) Clone() *Routine {
	if r == nil {
		return nil
	}
	c := *r
	c.AvailableEquipment = cloneStrings(r.AvailableEquipment)
	if r.Weeks == nil {
		return &c
	}
	c.Weeks = make([]RoutineWeek, len(r.Weeks))
	for i, w := range r.Weeks {
		c.Weeks[i] = RoutineWeek{WeekNumber: w.WeekNumber}
		if w.Days == nil {
			continue
		}
		c.Weeks[i].Days = make([]RoutineDay, len(w.Days))
		for j, d := range w.Days {
			if d.Exercises != nil {
				exercises := make([]RoutineExercise, len(d.Exercises))
				for k, e := range d.Exercises {
					e.AlternateIDs = cloneStrings(e.AlternateIDs)
					exercises[k] = e
				}
				d.Exercises = exercises
			}
			if d.Cardio != nil {
				cardio := *d.Cardio
				d.Cardio = &cardio
			}
			c.Weeks[i].Days[j] = d
		}
	}
	return &c
}

func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.PreferredEquipment = cloneStrings(u.PreferredEquipment)
	return &c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
