package models

import (
	"github.com/CharlotteLevula/my-health-project/internal/domain/polar"
)

// ExerciseModel is the GORM database model for AccessLink exercises (infrastructure concern)
type ExerciseModel struct {
	ID              uint     `gorm:"primaryKey;autoIncrement"`
	PolarUserID     int64    `gorm:"not null;index"`
	PolarExerciseID int64    `gorm:"not null;uniqueIndex"`
	StartTime       string   `gorm:"not null;index;type:varchar(35)"`
	Duration        string   `gorm:"type:varchar(30)"`
	Sport           string   `gorm:"type:varchar(50)"`
	Distance        *float64 `gorm:""`
	Calories        *int     `gorm:""`
	AverageHR       *int     `gorm:""`
	MaxHR           *int     `gorm:""`
}

// TableName specifies the table name for GORM
func (ExerciseModel) TableName() string {
	return "polar_exercises"
}

// ToDomain converts GORM model to domain entity
func (m *ExerciseModel) ToDomain() *polar.Exercise {
	return &polar.Exercise{
		PolarUserID:     m.PolarUserID,
		PolarExerciseID: m.PolarExerciseID,
		StartTime:       m.StartTime,
		Duration:        m.Duration,
		Sport:           m.Sport,
		Distance:        m.Distance,
		Calories:        m.Calories,
		AverageHR:       m.AverageHR,
		MaxHR:           m.MaxHR,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ExerciseModel) FromDomain(e *polar.Exercise) {
	m.PolarUserID = e.PolarUserID
	m.PolarExerciseID = e.PolarExerciseID
	m.StartTime = e.StartTime
	m.Duration = e.Duration
	m.Sport = e.Sport
	m.Distance = e.Distance
	m.Calories = e.Calories
	m.AverageHR = e.AverageHR
	m.MaxHR = e.MaxHR
}

// DailyActivityModel is the GORM database model for AccessLink daily activity (infrastructure concern)
type DailyActivityModel struct {
	ID                 uint   `gorm:"primaryKey;autoIncrement"`
	PolarUserID        int64  `gorm:"not null;index"`
	PolarTransactionID int64  `gorm:"not null"`
	Date               string `gorm:"not null;uniqueIndex;type:varchar(10)"`
	Calories           int    `gorm:"not null"`
	ActiveCalories     int    `gorm:"not null"`
	Duration           string `gorm:"type:varchar(30)"`
	ActiveSteps        int    `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (DailyActivityModel) TableName() string {
	return "polar_daily_activity"
}

// ToDomain converts GORM model to domain entity
func (m *DailyActivityModel) ToDomain() *polar.DailyActivity {
	return &polar.DailyActivity{
		PolarUserID:        m.PolarUserID,
		PolarTransactionID: m.PolarTransactionID,
		Date:               m.Date,
		Calories:           m.Calories,
		ActiveCalories:     m.ActiveCalories,
		Duration:           m.Duration,
		ActiveSteps:        m.ActiveSteps,
	}
}

// FromDomain converts domain entity to GORM model
func (m *DailyActivityModel) FromDomain(a *polar.DailyActivity) {
	m.PolarUserID = a.PolarUserID
	m.PolarTransactionID = a.PolarTransactionID
	m.Date = a.Date
	m.Calories = a.Calories
	m.ActiveCalories = a.ActiveCalories
	m.Duration = a.Duration
	m.ActiveSteps = a.ActiveSteps
}
