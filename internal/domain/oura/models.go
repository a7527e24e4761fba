package oura

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DayFormat is the date layout used by the Oura API for daily summaries
const DayFormat = "2006-01-02"

// SleepRecord is a daily sleep summary as reported by the Oura API.
// Durations are in seconds.
type SleepRecord struct {
	ID                 string    `json:"id" validate:"required"`
	Day                string    `json:"day" validate:"required,datetime=2006-01-02"`
	BedtimeStart       time.Time `json:"bedtime_start"`
	BedtimeEnd         time.Time `json:"bedtime_end"`
	TotalSleepDuration int       `json:"total_sleep_duration" validate:"min=0"`
	DeepSleepDuration  int       `json:"deep_sleep_duration" validate:"min=0"`
	LightSleepDuration int       `json:"light_sleep_duration" validate:"min=0"`
	RemSleepDuration   int       `json:"rem_sleep_duration" validate:"min=0"`
	AwakeTime          int       `json:"awake_time" validate:"min=0"`
	Efficiency         int       `json:"efficiency" validate:"min=0,max=100"`
	Latency            int       `json:"latency" validate:"min=0"`
	AverageHRV         *float64  `json:"average_hrv"`
	AverageHeartRate   *float64  `json:"average_heart_rate"`
	LowestHeartRate    *float64  `json:"lowest_heart_rate"`
	Score              *int      `json:"score" validate:"omitempty,min=0,max=100"`
}

// Validate for validating SleepRecord struct
func (r *SleepRecord) Validate() error {
	return validateStruct(r)
}

// ActivityRecord is a daily activity summary as reported by the Oura API
type ActivityRecord struct {
	ID                        string   `json:"id" validate:"required"`
	Day                       string   `json:"day" validate:"required,datetime=2006-01-02"`
	Score                     *int     `json:"score" validate:"omitempty,min=0,max=100"`
	ActiveCalories            int      `json:"active_calories" validate:"min=0"`
	TotalCalories             int      `json:"total_calories" validate:"min=0"`
	Steps                     int      `json:"steps" validate:"min=0"`
	EquivalentWalkingDistance int      `json:"equivalent_walking_distance" validate:"min=0"`
	HighActivityTime          int      `json:"high_activity_time" validate:"min=0"`
	MediumActivityTime        int      `json:"medium_activity_time" validate:"min=0"`
	LowActivityTime           int      `json:"low_activity_time" validate:"min=0"`
	SedentaryTime             int      `json:"sedentary_time" validate:"min=0"`
	AverageMet                *float64 `json:"average_met"`
}

// Validate for validating ActivityRecord struct
func (r *ActivityRecord) Validate() error {
	return validateStruct(r)
}

// ReadinessRecord is a daily readiness summary as reported by the Oura API
type ReadinessRecord struct {
	ID                        string   `json:"id" validate:"required"`
	Day                       string   `json:"day" validate:"required,datetime=2006-01-02"`
	Score                     *int     `json:"score" validate:"omitempty,min=0,max=100"`
	TemperatureDeviation      *float64 `json:"temperature_deviation"`
	TemperatureTrendDeviation *float64 `json:"temperature_trend_deviation"`
}

// Validate for validating ReadinessRecord struct
func (r *ReadinessRecord) Validate() error {
	return validateStruct(r)
}

// HeartRateSample is a single heart rate measurement.
// Samples are keyed by timestamp; re-synced samples overwrite rather than duplicate.
type HeartRateSample struct {
	Timestamp time.Time `json:"timestamp" validate:"required"`
	BPM       int       `json:"bpm" validate:"required,min=1"`
	Source    string    `json:"source"`
}

// Validate for validating HeartRateSample struct
func (s *HeartRateSample) Validate() error {
	return validateStruct(s)
}

// PersonalInfo is the Oura account profile, used to verify a personal access token
type PersonalInfo struct {
	ID            string   `json:"id"`
	Age           *int     `json:"age"`
	Weight        *float64 `json:"weight"`
	Height        *float64 `json:"height"`
	BiologicalSex string   `json:"biological_sex"`
	Email         string   `json:"email"`
}

// RecordQuery filters daily records by an inclusive day range
type RecordQuery struct {
	StartDay  string `validate:"omitempty,datetime=2006-01-02"`
	EndDay    string `validate:"omitempty,datetime=2006-01-02"`
	Limit     int    `validate:"min=0"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewRecordQuery creates a RecordQuery with default values
func NewRecordQuery() *RecordQuery {
	return &RecordQuery{
		SortOrder: "asc",
	}
}

// Validate for validating RecordQuery struct
func (q *RecordQuery) Validate() error {
	if err := validateStruct(q); err != nil {
		return err
	}
	if q.StartDay != "" && q.EndDay != "" && q.StartDay > q.EndDay {
		return fmt.Errorf("validation failed: start day %s is after end day %s", q.StartDay, q.EndDay)
	}
	return nil
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
