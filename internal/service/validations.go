package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/gymverse/internal/error_values"
	"github.com/limbo/gymverse/internal/generator"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("fitness_goal", func(fl validator.FieldLevel) bool {
			return generator.IsGoal(fl.Field().String())
		})
	})
}

// validateStruct reports every failed field joined under ErrInvalidRequest.
func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		joined := errorvalues.ErrInvalidRequest
		for _, fieldErr := range validationErrors {
			joined = errors.Join(joined, fmt.Errorf("field %s failed on %q", fieldErr.Field(), fieldErr.Tag()))
		}
		return joined
	}
	return fmt.Errorf("%w: %s", errorvalues.ErrInvalidRequest, err.Error())
}
