package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/gymverse/internal/error_values"
	"github.com/limbo/gymverse/internal/repository"
	"github.com/limbo/gymverse/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	if usersRepo == nil {
		log.Fatal("provided nil usersRepo")
	}
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	normalized := *req
	normalized.Email = normalizeEmail(req.Email)
	normalized.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(normalized); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(normalized.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	level := normalized.FitnessLevel
	if level == "" {
		level = entity.LevelBeginner
	}
	user := &entity.User{
		Email:              normalized.Email,
		Name:               normalized.Name,
		PasswordHash:       passwordHash,
		FitnessLevel:       level,
		PreferredEquipment: []string{},
	}
	err = us.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	return user, nil
}

// Login reports an unknown email as ErrUserNotFound and a bad password as ErrWrongCredentials.
func (us *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := us.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("login failed: %w", errorvalues.ErrWrongCredentials)
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
