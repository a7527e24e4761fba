//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"

	"github.com/CharlotteLevula/my-health-project/internal/domain/oura"
	"github.com/CharlotteLevula/my-health-project/internal/domain/polar"
	"github.com/CharlotteLevula/my-health-project/internal/domain/workouts"
	"github.com/CharlotteLevula/my-health-project/internal/infrastructure/persistence/models"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/config"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB                *gorm.DB
	SleepRepo         oura.SleepRepository
	ActivityRepo      oura.ActivityRepository
	ReadinessRepo     oura.ReadinessRepository
	HeartRateRepo     oura.HeartRateRepository
	ExerciseRepo      polar.ExerciseRepository
	DailyActivityRepo polar.DailyActivityRepository
	WorkoutSetRepo    workouts.SetRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = db.AutoMigrate(
		&models.SleepModel{},
		&models.ActivityModel{},
		&models.ReadinessModel{},
		&models.HeartRateModel{},
		&models.ExerciseModel{},
		&models.DailyActivityModel{},
		&models.WorkoutSetModel{},
	)
	require.NoError(t, err, "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	sleepRepo, err := NewGormSleepRepository(db, logger)
	require.NoError(t, err, "Failed to create sleep repository")

	activityRepo, err := NewGormActivityRepository(db, logger)
	require.NoError(t, err, "Failed to create activity repository")

	readinessRepo, err := NewGormReadinessRepository(db, logger)
	require.NoError(t, err, "Failed to create readiness repository")

	heartRateRepo, err := NewGormHeartRateRepository(db, logger)
	require.NoError(t, err, "Failed to create heart rate repository")

	exerciseRepo, err := NewGormExerciseRepository(db, logger)
	require.NoError(t, err, "Failed to create exercise repository")

	dailyActivityRepo, err := NewGormDailyActivityRepository(db, logger)
	require.NoError(t, err, "Failed to create daily activity repository")

	workoutSetRepo, err := NewGormWorkoutSetRepository(db, logger)
	require.NoError(t, err, "Failed to create workout set repository")

	return &TestContext{
		DB:                db,
		SleepRepo:         sleepRepo,
		ActivityRepo:      activityRepo,
		ReadinessRepo:     readinessRepo,
		HeartRateRepo:     heartRateRepo,
		ExerciseRepo:      exerciseRepo,
		DailyActivityRepo: dailyActivityRepo,
		WorkoutSetRepo:    workoutSetRepo,
	}
}

// CreateTestSleepRecord creates a sleep record with sensible defaults
func CreateTestSleepRecord(t *testing.T, day string) *oura.SleepRecord {
	t.Helper()

	score := 82
	return &oura.SleepRecord{
		ID:                 uuid.NewString(),
		Day:                day,
		TotalSleepDuration: 7 * 3600,
		DeepSleepDuration:  3600,
		LightSleepDuration: 4 * 3600,
		RemSleepDuration:   2 * 3600,
		AwakeTime:          1800,
		Efficiency:         92,
		Latency:            600,
		Score:              &score,
	}
}

// CreateTestActivityRecord creates an activity record with sensible defaults
func CreateTestActivityRecord(t *testing.T, day string) *oura.ActivityRecord {
	t.Helper()

	score := 75
	return &oura.ActivityRecord{
		ID:             uuid.NewString(),
		Day:            day,
		Score:          &score,
		ActiveCalories: 450,
		TotalCalories:  2100,
		Steps:          9800,
	}
}

// CreateTestExercise creates an AccessLink exercise with sensible defaults
func CreateTestExercise(t *testing.T, exerciseID int64, startTime string) *polar.Exercise {
	t.Helper()

	calories := 320
	return &polar.Exercise{
		PolarUserID:     4242,
		PolarExerciseID: exerciseID,
		StartTime:       startTime,
		Duration:        "PT45M",
		Sport:           "RUNNING",
		Calories:        &calories,
	}
}
