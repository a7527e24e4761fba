// Package workouts defines manually logged gym work: one record per set
// of an exercise, entered through the assistant or the REST API.
package workouts

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Set is a single logged set of an exercise
type Set struct {
	ID          string  `json:"id" validate:"omitempty,uuid4"`
	WorkoutDate string  `json:"workout_date" validate:"required,datetime=2006-01-02"`
	Exercise    string  `json:"exercise_name" validate:"required,min=1,max=100"`
	WeightKg    float64 `json:"weight_kg" validate:"required,gt=0"`
	Repetitions int     `json:"repetitions" validate:"required,gt=0"`
	SetNumber   int     `json:"sets" validate:"required,gt=0"`
}

// Validate for validating Set struct
func (s *Set) Validate() error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// SetQuery filters logged sets by an inclusive workout date range
type SetQuery struct {
	StartDate string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `validate:"omitempty,datetime=2006-01-02"`
	Exercise  string `validate:"omitempty,min=1,max=100"`
	Limit     int    `validate:"min=0"`
}

// Validate for validating SetQuery struct
func (q *SetQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for SetQuery: %w", err)
	}
	return nil
}
