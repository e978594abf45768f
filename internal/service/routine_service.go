package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/gymverse/internal/error_values"
	"github.com/limbo/gymverse/internal/repository"
	"github.com/limbo/gymverse/pkg/entity"
)

type RoutineGenerator interface {
	Generate(req *entity.GenerateRoutineRequest, ownerID uuid.UUID) (*entity.Routine, error)
	Preview(req *entity.GenerateRoutineRequest) (*entity.Routine, error)
}

type RoutineService struct {
	repo      repository.RoutinesRepositoryI
	generator RoutineGenerator
	now       func() time.Time
}

func NewRoutineService(routinesRepo repository.RoutinesRepositoryI, gen RoutineGenerator) *RoutineService {
	if routinesRepo == nil {
		log.Fatal("provided nil routinesRepo")
	}
	if gen == nil {
		log.Fatal("provided nil routine generator")
	}
	return &RoutineService{
		repo:      routinesRepo,
		generator: gen,
		now:       time.Now,
	}
}

func (rs *RoutineService) Generate(ctx context.Context, uid uuid.UUID, req *entity.GenerateRoutineRequest) (*entity.Routine, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	routine, err := rs.generator.Generate(req, uid)
	if err != nil {
		return nil, err
	}
	err = rs.repo.Create(ctx, routine)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("routines repository error: " + err.Error())
	}
	return routine, nil
}

func (rs *RoutineService) Preview(ctx context.Context, req *entity.GenerateRoutineRequest) (*entity.Routine, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return rs.generator.Preview(req)
}

func (rs *RoutineService) List(ctx context.Context, uid uuid.UUID) ([]*entity.Routine, error) {
	routines, err := rs.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("routines repository error: " + err.Error())
	}
	return routines, nil
}

func (rs *RoutineService) Get(ctx context.Context, id, uid uuid.UUID) (*entity.Routine, error) {
	routine, err := rs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRoutineNotFound) {
			return nil, err
		}
		return nil, errors.New("routines repository error: " + err.Error())
	}
	if routine.UserID != uid {
		return nil, fmt.Errorf("%w: %w", errorvalues.ErrRoutineNotFound, errorvalues.ErrWrongOwner)
	}
	return routine, nil
}

// Update merges the non-nil request fields into the stored routine.
// ID, owner and creation time never change.
func (rs *RoutineService) Update(ctx context.Context, id, uid uuid.UUID, req *UpdateRoutineRequest) (*entity.Routine, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	routine, err := rs.Get(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		routine.Name = *req.Name
	}
	if req.Goal != nil {
		routine.Goal = *req.Goal
	}
	if req.DaysPerWeek != nil {
		routine.DaysPerWeek = *req.DaysPerWeek
	}
	if req.SessionDurationMin != nil {
		routine.SessionDurationMin = *req.SessionDurationMin
	}
	if req.FitnessLevel != nil {
		routine.FitnessLevel = *req.FitnessLevel
	}
	if req.AvailableEquipment != nil {
		routine.AvailableEquipment = append([]string{}, req.AvailableEquipment...)
	}
	if req.Weeks != nil {
		routine.Weeks = (&entity.Routine{Weeks: req.Weeks}).Clone().Weeks
	}
	routine.UpdatedAt = rs.now().UTC()
	err = rs.repo.Update(ctx, routine)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRoutineNotFound) {
			return nil, err
		}
		return nil, errors.New("routines repository error: " + err.Error())
	}
	return routine, nil
}

func (rs *RoutineService) Delete(ctx context.Context, id, uid uuid.UUID) error {
	if _, err := rs.Get(ctx, id, uid); err != nil {
		return err
	}
	err := rs.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRoutineNotFound) {
			return err
		}
		return errors.New("routines repository error: " + err.Error())
	}
	return nil
}
