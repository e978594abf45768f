package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/gymverse/pkg/entity"
)

type RegisterRequest struct {
	Email        string `validate:"required,email,max=254"`
	Name         string `validate:"required,min=1,max=100"`
	Password     string `validate:"required,min=6,max=72"`
	FitnessLevel string `validate:"omitempty,oneof=beginner intermediate advanced"`
}

// UpdateRoutineRequest carries the routine fields to replace. Nil fields are kept.
type UpdateRoutineRequest struct {
	Name               *string              `json:"name" validate:"omitempty,min=1,max=200"`
	Goal               *string              `json:"goal" validate:"omitempty,fitness_goal"`
	DaysPerWeek        *int                 `json:"daysPerWeek" validate:"omitempty,gte=1,lte=7"`
	SessionDurationMin *int                 `json:"sessionDurationMin" validate:"omitempty,gt=0,lte=300"`
	FitnessLevel       *string              `json:"fitnessLevel" validate:"omitempty,oneof=beginner intermediate advanced"`
	AvailableEquipment []string             `json:"availableEquipment"`
	Weeks              []entity.RoutineWeek `json:"weeks"`
}

type UserServiceI interface {
	// Validates user's data, creates new user. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data with ID
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type RoutineServiceI interface {
	// Validates request, generates routine for uid and stores it
	Generate(ctx context.Context, uid uuid.UUID, req *entity.GenerateRoutineRequest) (*entity.Routine, error)
	// Same as Generate without storing. Owner is generator.PreviewOwnerID
	Preview(ctx context.Context, req *entity.GenerateRoutineRequest) (*entity.Routine, error)
	List(ctx context.Context, uid uuid.UUID) ([]*entity.Routine, error)
	// Routines of other users are reported as ErrRoutineNotFound
	Get(ctx context.Context, id, uid uuid.UUID) (*entity.Routine, error)
	Update(ctx context.Context, id, uid uuid.UUID, req *UpdateRoutineRequest) (*entity.Routine, error)
	Delete(ctx context.Context, id, uid uuid.UUID) error
}
