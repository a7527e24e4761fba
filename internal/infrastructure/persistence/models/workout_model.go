package models

import (
	"github.com/CharlotteLevula/my-health-project/internal/domain/workouts"
)

// WorkoutSetModel is the GORM database model for logged gym sets (infrastructure concern)
type WorkoutSetModel struct {
	ID          string  `gorm:"primaryKey;type:uuid"`
	WorkoutDate string  `gorm:"not null;index;type:varchar(10)"`
	Exercise    string  `gorm:"not null;index;type:varchar(100)"`
	WeightKg    float64 `gorm:"not null"`
	Repetitions int     `gorm:"not null"`
	SetNumber   int     `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (WorkoutSetModel) TableName() string {
	return "manual_workouts"
}

// ToDomain converts GORM model to domain entity
func (m *WorkoutSetModel) ToDomain() *workouts.Set {
	return &workouts.Set{
		ID:          m.ID,
		WorkoutDate: m.WorkoutDate,
		Exercise:    m.Exercise,
		WeightKg:    m.WeightKg,
		Repetitions: m.Repetitions,
		SetNumber:   m.SetNumber,
	}
}

// FromDomain converts domain entity to GORM model
func (m *WorkoutSetModel) FromDomain(s *workouts.Set) {
	m.ID = s.ID
	m.WorkoutDate = s.WorkoutDate
	m.Exercise = s.Exercise
	m.WeightKg = s.WeightKg
	m.Repetitions = s.Repetitions
	m.SetNumber = s.SetNumber
}
