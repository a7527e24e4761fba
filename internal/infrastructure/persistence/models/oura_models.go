package models

import (
	"time"

	"github.com/CharlotteLevula/my-health-project/internal/domain/oura"
)

// SleepModel is the GORM database model for daily sleep summaries (infrastructure concern)
type SleepModel struct {
	ID                 string    `gorm:"primaryKey;type:varchar(64)"`
	Day                string    `gorm:"not null;index;type:varchar(10)"`
	BedtimeStart       time.Time `gorm:""`
	BedtimeEnd         time.Time `gorm:""`
	TotalSleepDuration int       `gorm:"not null"`
	DeepSleepDuration  int       `gorm:"not null"`
	LightSleepDuration int       `gorm:"not null"`
	RemSleepDuration   int       `gorm:"not null"`
	AwakeTime          int       `gorm:"not null"`
	Efficiency         int       `gorm:"not null"`
	Latency            int       `gorm:"not null"`
	AverageHRV         *float64  `gorm:""`
	AverageHeartRate   *float64  `gorm:""`
	LowestHeartRate    *float64  `gorm:""`
	Score              *int      `gorm:""`
}

// TableName specifies the table name for GORM
func (SleepModel) TableName() string {
	return "oura_sleep"
}

// ToDomain converts GORM model to domain entity
func (m *SleepModel) ToDomain() *oura.SleepRecord {
	return &oura.SleepRecord{
		ID:                 m.ID,
		Day:                m.Day,
		BedtimeStart:       m.BedtimeStart,
		BedtimeEnd:         m.BedtimeEnd,
		TotalSleepDuration: m.TotalSleepDuration,
		DeepSleepDuration:  m.DeepSleepDuration,
		LightSleepDuration: m.LightSleepDuration,
		RemSleepDuration:   m.RemSleepDuration,
		AwakeTime:          m.AwakeTime,
		Efficiency:         m.Efficiency,
		Latency:            m.Latency,
		AverageHRV:         m.AverageHRV,
		AverageHeartRate:   m.AverageHeartRate,
		LowestHeartRate:    m.LowestHeartRate,
		Score:              m.Score,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SleepModel) FromDomain(r *oura.SleepRecord) {
	m.ID = r.ID
	m.Day = r.Day
	m.BedtimeStart = r.BedtimeStart
	m.BedtimeEnd = r.BedtimeEnd
	m.TotalSleepDuration = r.TotalSleepDuration
	m.DeepSleepDuration = r.DeepSleepDuration
	m.LightSleepDuration = r.LightSleepDuration
	m.RemSleepDuration = r.RemSleepDuration
	m.AwakeTime = r.AwakeTime
	m.Efficiency = r.Efficiency
	m.Latency = r.Latency
	m.AverageHRV = r.AverageHRV
	m.AverageHeartRate = r.AverageHeartRate
	m.LowestHeartRate = r.LowestHeartRate
	m.Score = r.Score
}

// ActivityModel is the GORM database model for daily activity summaries (infrastructure concern)
type ActivityModel struct {
	ID                        string   `gorm:"primaryKey;type:varchar(64)"`
	Day                       string   `gorm:"not null;index;type:varchar(10)"`
	Score                     *int     `gorm:""`
	ActiveCalories            int      `gorm:"not null"`
	TotalCalories             int      `gorm:"not null"`
	Steps                     int      `gorm:"not null"`
	EquivalentWalkingDistance int      `gorm:"not null"`
	HighActivityTime          int      `gorm:"not null"`
	MediumActivityTime        int      `gorm:"not null"`
	LowActivityTime           int      `gorm:"not null"`
	SedentaryTime             int      `gorm:"not null"`
	AverageMet                *float64 `gorm:""`
}

// TableName specifies the table name for GORM
func (ActivityModel) TableName() string {
	return "oura_activity"
}

// ToDomain converts GORM model to domain entity
func (m *ActivityModel) ToDomain() *oura.ActivityRecord {
	return &oura.ActivityRecord{
		ID:                        m.ID,
		Day:                       m.Day,
		Score:                     m.Score,
		ActiveCalories:            m.ActiveCalories,
		TotalCalories:             m.TotalCalories,
		Steps:                     m.Steps,
		EquivalentWalkingDistance: m.EquivalentWalkingDistance,
		HighActivityTime:          m.HighActivityTime,
		MediumActivityTime:        m.MediumActivityTime,
		LowActivityTime:           m.LowActivityTime,
		SedentaryTime:             m.SedentaryTime,
		AverageMet:                m.AverageMet,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ActivityModel) FromDomain(r *oura.ActivityRecord) {
	m.ID = r.ID
	m.Day = r.Day
	m.Score = r.Score
	m.ActiveCalories = r.ActiveCalories
	m.TotalCalories = r.TotalCalories
	m.Steps = r.Steps
	m.EquivalentWalkingDistance = r.EquivalentWalkingDistance
	m.HighActivityTime = r.HighActivityTime
	m.MediumActivityTime = r.MediumActivityTime
	m.LowActivityTime = r.LowActivityTime
	m.SedentaryTime = r.SedentaryTime
	m.AverageMet = r.AverageMet
}

// ReadinessModel is the GORM database model for daily readiness summaries (infrastructure concern)
type ReadinessModel struct {
	ID                        string   `gorm:"primaryKey;type:varchar(64)"`
	Day                       string   `gorm:"not null;index;type:varchar(10)"`
	Score                     *int     `gorm:""`
	TemperatureDeviation      *float64 `gorm:""`
	TemperatureTrendDeviation *float64 `gorm:""`
}

// TableName specifies the table name for GORM
func (ReadinessModel) TableName() string {
	return "oura_readiness"
}

// ToDomain converts GORM model to domain entity
func (m *ReadinessModel) ToDomain() *oura.ReadinessRecord {
	return &oura.ReadinessRecord{
		ID:                        m.ID,
		Day:                       m.Day,
		Score:                     m.Score,
		TemperatureDeviation:      m.TemperatureDeviation,
		TemperatureTrendDeviation: m.TemperatureTrendDeviation,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ReadinessModel) FromDomain(r *oura.ReadinessRecord) {
	m.ID = r.ID
	m.Day = r.Day
	m.Score = r.Score
	m.TemperatureDeviation = r.TemperatureDeviation
	m.TemperatureTrendDeviation = r.TemperatureTrendDeviation
}

// HeartRateModel is the GORM database model for heart rate samples (infrastructure concern)
type HeartRateModel struct {
	Timestamp time.Time `gorm:"primaryKey"`
	BPM       int       `gorm:"not null"`
	Source    string    `gorm:"type:varchar(50)"`
}

// TableName specifies the table name for GORM
func (HeartRateModel) TableName() string {
	return "oura_heart_rate"
}

// ToDomain converts GORM model to domain entity
func (m *HeartRateModel) ToDomain() *oura.HeartRateSample {
	return &oura.HeartRateSample{
		Timestamp: m.Timestamp,
		BPM:       m.BPM,
		Source:    m.Source,
	}
}

// FromDomain converts domain entity to GORM model
func (m *HeartRateModel) FromDomain(s *oura.HeartRateSample) {
	m.Timestamp = s.Timestamp
	m.BPM = s.BPM
	m.Source = s.Source
}
