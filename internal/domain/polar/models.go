package polar

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateFormat is the date layout used by the AccessLink daily activity summaries
const DateFormat = "2006-01-02"

// Exercise is a training session summary from the Polar AccessLink API.
// Duration keeps the ISO-8601 form the API reports (e.g. "PT1H23M4S").
type Exercise struct {
	PolarUserID     int64    `json:"polar_user_id" validate:"required"`
	PolarExerciseID int64    `json:"polar_exercise_id" validate:"required"`
	StartTime       string   `json:"start_time" validate:"required"`
	Duration        string   `json:"duration"`
	Sport           string   `json:"sport"`
	Distance        *float64 `json:"distance"`
	Calories        *int     `json:"calories"`
	AverageHR       *int     `json:"average_hr"`
	MaxHR           *int     `json:"max_hr"`
}

// Validate for validating Exercise struct
func (e *Exercise) Validate() error {
	return validateStruct(e)
}

// DailyActivity is a daily activity summary from the Polar AccessLink API
type DailyActivity struct {
	PolarUserID        int64  `json:"polar_user_id" validate:"required"`
	PolarTransactionID int64  `json:"polar_transaction_id"`
	Date               string `json:"date" validate:"required,datetime=2006-01-02"`
	Calories           int    `json:"calories" validate:"min=0"`
	ActiveCalories     int    `json:"active_calories" validate:"min=0"`
	Duration           string `json:"duration"`
	ActiveSteps        int    `json:"active_steps" validate:"min=0"`
}

// Validate for validating DailyActivity struct
func (a *DailyActivity) Validate() error {
	return validateStruct(a)
}

// UserInfo is the registered AccessLink user profile
type UserInfo struct {
	PolarUserID      int64     `json:"polar-user-id"`
	MemberID         string    `json:"member-id"`
	RegistrationDate time.Time `json:"registration-date"`
	FirstName        string    `json:"first-name"`
	LastName         string    `json:"last-name"`
	Birthdate        string    `json:"birthdate"`
	Gender           string    `json:"gender"`
	Weight           float64   `json:"weight"`
	Height           float64   `json:"height"`
}

// ExerciseQuery filters stored exercises by an inclusive start-time range
type ExerciseQuery struct {
	StartDate string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `validate:"omitempty,datetime=2006-01-02"`
	Limit     int    `validate:"min=0"`
}

// Validate for validating ExerciseQuery struct
func (q *ExerciseQuery) Validate() error {
	return validateStruct(q)
}

func validateStruct(v interface{}) error {
	validate := validator.New()

	err := validate.Struct(v)
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
