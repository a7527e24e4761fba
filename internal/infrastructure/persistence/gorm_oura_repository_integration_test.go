//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/CharlotteLevula/my-health-project/internal/domain/oura"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormSleepRepository_UpsertOverwritesExistingDay(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	record := CreateTestSleepRecord(t, "2025-10-24")
	require.NoError(t, tc.SleepRepo.Upsert(ctx, record))

	// Re-sync the same day with a corrected score
	updatedScore := 91
	record.Score = &updatedScore
	record.TotalSleepDuration = 8 * 3600
	require.NoError(t, tc.SleepRepo.Upsert(ctx, record))

	stored, err := tc.SleepRepo.GetByDay(ctx, "2025-10-24")
	require.NoError(t, err)
	require.NotNil(t, stored.Score)
	assert.Equal(t, 91, *stored.Score)
	assert.Equal(t, 8*3600, stored.TotalSleepDuration)

	list, err := tc.SleepRepo.List(ctx, oura.NewRecordQuery())
	require.NoError(t, err)
	assert.Len(t, list, 1, "upsert must not duplicate the day")
}

func TestGormSleepRepository_ListRange(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	for _, day := range []string{"2025-10-20", "2025-10-21", "2025-10-22", "2025-10-23"} {
		require.NoError(t, tc.SleepRepo.Upsert(ctx, CreateTestSleepRecord(t, day)))
	}

	query := oura.NewRecordQuery()
	query.StartDay = "2025-10-21"
	query.EndDay = "2025-10-22"

	list, err := tc.SleepRepo.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2025-10-21", list[0].Day)
	assert.Equal(t, "2025-10-22", list[1].Day)
}

func TestGormSleepRepository_ListRecent(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	for _, day := range []string{"2025-10-20", "2025-10-21", "2025-10-22"} {
		require.NoError(t, tc.SleepRepo.Upsert(ctx, CreateTestSleepRecord(t, day)))
	}

	list, err := tc.SleepRepo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2025-10-22", list[0].Day, "newest day first")
	assert.Equal(t, "2025-10-21", list[1].Day)
}

func TestGormSleepRepository_GetByDay_NotFound(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	_, err := tc.SleepRepo.GetByDay(context.Background(), "2025-01-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGormActivityRepository_UpsertAndGetByDay(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	record := CreateTestActivityRecord(t, "2025-10-24")
	require.NoError(t, tc.ActivityRepo.Upsert(ctx, record))

	record.Steps = 12400
	require.NoError(t, tc.ActivityRepo.Upsert(ctx, record))

	stored, err := tc.ActivityRepo.GetByDay(ctx, "2025-10-24")
	require.NoError(t, err)
	assert.Equal(t, 12400, stored.Steps)
}

func TestGormReadinessRepository_UpsertAndList(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	score := 68
	record := &oura.ReadinessRecord{
		ID:    "readiness-1",
		Day:   "2025-10-24",
		Score: &score,
	}
	require.NoError(t, tc.ReadinessRepo.Upsert(ctx, record))

	list, err := tc.ReadinessRepo.List(ctx, oura.NewRecordQuery())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Score)
	assert.Equal(t, 68, *list[0].Score)
}

func TestGormHeartRateRepository_UpsertAndListRange(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	base := time.Date(2025, 10, 24, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		sample := &oura.HeartRateSample{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			BPM:       60 + i,
			Source:    "awake",
		}
		require.NoError(t, tc.HeartRateRepo.Upsert(ctx, sample))
	}

	// Re-synced sample for an existing timestamp replaces the row
	require.NoError(t, tc.HeartRateRepo.Upsert(ctx, &oura.HeartRateSample{
		Timestamp: base,
		BPM:       72,
		Source:    "workout",
	}))

	list, err := tc.HeartRateRepo.ListRange(ctx, base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 72, list[0].BPM)
	assert.Equal(t, "workout", list[0].Source)
}

func TestGormSleepRepository_Upsert_InvalidRecord(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	record := CreateTestSleepRecord(t, "not-a-date")
	err := tc.SleepRepo.Upsert(context.Background(), record)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}
