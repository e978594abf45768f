package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidRequest   = errors.New("invalid request")
)

var (
	ErrRoutineNotFound = errors.New("routine doesn't exist")
	ErrWrongOwner      = errors.New("routine belongs to another user")
	ErrOwnerNotFound   = errors.New("routine owner doesn't exist")
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrCardioNotFound   = errors.New("cardio activity not found")
)

// Generation failures
var (
	ErrUnknownGoal         = errors.New("unrecognized fitness goal")
	ErrInsufficientCatalog = errors.New("insufficient catalog data")
	ErrEmptyCardioCatalog  = errors.New("cardio catalog is empty")
)
