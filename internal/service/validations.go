package service

import (
	"errors"
	"slices"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// GroupCategories lists the categories a group may be filed under.
var GroupCategories = []string{"fitness", "productivity", "mindfulness", "learning", "health", "lifestyle"}

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("display_name", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a space
				if i == 0 && unicode.IsSpace(char) {
					return false
				}
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && !slices.Contains([]rune{' ', '_', '-', '.'}, char) {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("group_category", func(fl validator.FieldLevel) bool {
			return slices.Contains(GroupCategories, fl.Field().String())
		})
	})
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errors.New("validation error: ")
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return &ValidationError{err: err}
	}
	return errors.New("validation unexpected error: " + err.Error())
}

// ValidationError marks request data rejected by the validator.
type ValidationError struct {
	err error
}

func (e *ValidationError) Error() string {
	return e.err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{err: errors.New("validation error: " + msg)}
}
