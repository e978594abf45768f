package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/gymverse/internal/catalog"
	"github.com/limbo/gymverse/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// CatalogI is the read-only exercise and cardio reference data.
type CatalogI interface {
	FilterExercises(f catalog.ExerciseFilter) []entity.Exercise
	MuscleGroups() []string
	Exercise(id string) (*entity.Exercise, error)
	Alternates(id string) ([]entity.Exercise, error)
	FilterCardio(f catalog.CardioFilter) []entity.CardioActivity
	RandomCardio(f catalog.CardioFilter) (*entity.CardioActivity, error)
	Categories() []string
	CardioActivity(id string) (*entity.CardioActivity, error)
}
