package v1

import (
	"errors"
	"fmt"

	"github.com/CharlotteLevula/my-health-project/internal/domain/oura"
	"github.com/CharlotteLevula/my-health-project/internal/domain/workouts"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the generic error payload
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse is the generic informational payload
type InfoResponse struct {
	Message string `json:"message"`
}

// ChatRequest is the assistant query payload
type ChatRequest struct {
	Query string `json:"query" validate:"required,min=1,max=2000"`
}

// Validate for validating ChatRequest struct
func (r *ChatRequest) Validate() error {
	return validateDTO(r)
}

// ChatResponse carries the assistant answer
type ChatResponse struct {
	Answer string `json:"answer"`
}

// LogWorkoutRequest is the manual gym set payload
type LogWorkoutRequest struct {
	WorkoutDate string  `json:"workout_date" validate:"required,datetime=2006-01-02"`
	Exercise    string  `json:"exercise_name" validate:"required,min=1,max=100"`
	WeightKg    float64 `json:"weight_kg" validate:"required,gt=0"`
	Repetitions int     `json:"repetitions" validate:"required,gt=0"`
	Sets        int     `json:"sets" validate:"required,gt=0"`
}

// Validate for validating LogWorkoutRequest struct
func (r *LogWorkoutRequest) Validate() error {
	return validateDTO(r)
}

// ToDomain converts the request to a domain set
func (r *LogWorkoutRequest) ToDomain() *workouts.Set {
	return &workouts.Set{
		WorkoutDate: r.WorkoutDate,
		Exercise:    r.Exercise,
		WeightKg:    r.WeightKg,
		Repetitions: r.Repetitions,
		SetNumber:   r.Sets,
	}
}

// WorkoutSetResponse is a stored gym set
type WorkoutSetResponse struct {
	ID          string  `json:"id"`
	WorkoutDate string  `json:"workout_date"`
	Exercise    string  `json:"exercise_name"`
	WeightKg    float64 `json:"weight_kg"`
	Repetitions int     `json:"repetitions"`
	Sets        int     `json:"sets"`
}

// NewWorkoutSetResponse converts a domain set to its response form
func NewWorkoutSetResponse(set *workouts.Set) WorkoutSetResponse {
	return WorkoutSetResponse{
		ID:          set.ID,
		WorkoutDate: set.WorkoutDate,
		Exercise:    set.Exercise,
		WeightKg:    set.WeightKg,
		Repetitions: set.Repetitions,
		Sets:        set.SetNumber,
	}
}

// SleepRecordResponse is a stored daily sleep summary
type SleepRecordResponse struct {
	Day                string   `json:"day"`
	TotalSleepDuration int      `json:"total_sleep_duration"`
	DeepSleepDuration  int      `json:"deep_sleep_duration"`
	LightSleepDuration int      `json:"light_sleep_duration"`
	RemSleepDuration   int      `json:"rem_sleep_duration"`
	AwakeTime          int      `json:"awake_time"`
	Efficiency         int      `json:"efficiency"`
	AverageHRV         *float64 `json:"average_hrv,omitempty"`
	LowestHeartRate    *float64 `json:"lowest_heart_rate,omitempty"`
	Score              *int     `json:"score,omitempty"`
}

// NewSleepRecordResponse converts a domain sleep record to its response form
func NewSleepRecordResponse(record *oura.SleepRecord) SleepRecordResponse {
	return SleepRecordResponse{
		Day:                record.Day,
		TotalSleepDuration: record.TotalSleepDuration,
		DeepSleepDuration:  record.DeepSleepDuration,
		LightSleepDuration: record.LightSleepDuration,
		RemSleepDuration:   record.RemSleepDuration,
		AwakeTime:          record.AwakeTime,
		Efficiency:         record.Efficiency,
		AverageHRV:         record.AverageHRV,
		LowestHeartRate:    record.LowestHeartRate,
		Score:              record.Score,
	}
}

// ActivityRecordResponse is a stored daily activity summary
type ActivityRecordResponse struct {
	Day            string `json:"day"`
	Steps          int    `json:"steps"`
	ActiveCalories int    `json:"active_calories"`
	TotalCalories  int    `json:"total_calories"`
	Score          *int   `json:"score,omitempty"`
}

// NewActivityRecordResponse converts a domain activity record to its response form
func NewActivityRecordResponse(record *oura.ActivityRecord) ActivityRecordResponse {
	return ActivityRecordResponse{
		Day:            record.Day,
		Steps:          record.Steps,
		ActiveCalories: record.ActiveCalories,
		TotalCalories:  record.TotalCalories,
		Score:          record.Score,
	}
}

// ReadinessReportResponse carries the rendered readiness report
type ReadinessReportResponse struct {
	Report string `json:"report"`
}

// SyncRequest bounds an Oura sync run
type SyncRequest struct {
	StartDay   string `json:"start_day" validate:"omitempty,datetime=2006-01-02"`
	EndDay     string `json:"end_day" validate:"omitempty,datetime=2006-01-02"`
	BackupPath string `json:"backup_path" validate:"omitempty,max=255"`
}

// Validate for validating SyncRequest struct
func (r *SyncRequest) Validate() error {
	return validateDTO(r)
}

// HealthResponse is the service health payload
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

func validateDTO(v interface{}) error {
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
