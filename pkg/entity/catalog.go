package entity

const (
	MuscleChest     = "chest"
	MuscleBack      = "back"
	MuscleShoulders = "shoulders"
	MuscleLegs      = "legs"
	MuscleArms      = "arms"
	MuscleCore      = "core"
	MuscleGlutes    = "glutes"
	MuscleFullBody  = "full-body"
)

const (
	EquipmentBarbell        = "barbell"
	EquipmentDumbbell       = "dumbbell"
	EquipmentCable          = "cable"
	EquipmentMachine        = "machine"
	EquipmentBodyweight     = "bodyweight"
	EquipmentKettlebell     = "kettlebell"
	EquipmentResistanceBand = "resistance-band"
	EquipmentNone           = "none"
)

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

const (
	IntensityLow      = "low"
	IntensityModerate = "moderate"
	IntensityHigh     = "high"
	IntensityHIIT     = "hiit"
)

const TagCompound = "compound"

// Exercise is a strength exercise from the static catalog.
type Exercise struct {
	ID                   string   `json:"id" yaml:"id"`
	Name                 string   `json:"name" yaml:"name"`
	MuscleGroup          string   `json:"muscleGroup" yaml:"muscle_group"`
	SecondaryMuscles     []string `json:"secondaryMuscles" yaml:"secondary_muscles"`
	Equipment            string   `json:"equipment" yaml:"equipment"`
	Difficulty           string   `json:"difficulty" yaml:"difficulty"`
	Instructions         []string `json:"instructions" yaml:"instructions"`
	Tips                 []string `json:"tips" yaml:"tips"`
	ImageURL             string   `json:"imageUrl" yaml:"image_url"`
	Tags                 []string `json:"tags" yaml:"tags"`
	AlternateExerciseIDs []string `json:"alternateExerciseIds" yaml:"alternate_exercise_ids"`
}

func (e *Exercise) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// CardioActivity is a cardio option from the static catalog.
type CardioActivity struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Category        string   `json:"category" yaml:"category"`
	FunRating       int      `json:"funRating" yaml:"fun_rating"`
	IntensityLevel  string   `json:"intensityLevel" yaml:"intensity_level"`
	CaloriesPerHour int      `json:"caloriesPerHour" yaml:"calories_per_hour"`
	DurationMin     int      `json:"durationMin" yaml:"duration_min"`
	Description     string   `json:"description" yaml:"description"`
	HowToStart      string   `json:"howToStart" yaml:"how_to_start"`
	ImageURL        string   `json:"imageUrl" yaml:"image_url"`
	Tags            []string `json:"tags" yaml:"tags"`
}
