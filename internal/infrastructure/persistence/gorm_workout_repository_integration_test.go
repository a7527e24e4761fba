//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/CharlotteLevula/my-health-project/internal/domain/workouts"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormWorkoutSetRepository_CreateAssignsID(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	set := &workouts.Set{
		WorkoutDate: "2025-10-24",
		Exercise:    "Bench Press",
		WeightKg:    40,
		Repetitions: 8,
		SetNumber:   3,
	}
	require.NoError(t, tc.WorkoutSetRepo.Create(context.Background(), set))

	require.NotEmpty(t, set.ID)
	_, err := uuid.Parse(set.ID)
	assert.NoError(t, err)
}

func TestGormWorkoutSetRepository_ListByExercise(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	sets := []*workouts.Set{
		{WorkoutDate: "2025-10-20", Exercise: "Squat", WeightKg: 60, Repetitions: 5, SetNumber: 3},
		{WorkoutDate: "2025-10-22", Exercise: "Squat", WeightKg: 62.5, Repetitions: 5, SetNumber: 3},
		{WorkoutDate: "2025-10-22", Exercise: "Deadlift", WeightKg: 80, Repetitions: 3, SetNumber: 2},
	}
	for _, set := range sets {
		require.NoError(t, tc.WorkoutSetRepo.Create(ctx, set))
	}

	list, err := tc.WorkoutSetRepo.List(ctx, &workouts.SetQuery{Exercise: "Squat"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2025-10-22", list[0].WorkoutDate, "newest workout first")
	assert.Equal(t, 62.5, list[0].WeightKg)
}

func TestGormWorkoutSetRepository_ListDateRange(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	for _, date := range []string{"2025-10-18", "2025-10-20", "2025-10-24"} {
		set := &workouts.Set{WorkoutDate: date, Exercise: "Row", WeightKg: 35, Repetitions: 10, SetNumber: 3}
		require.NoError(t, tc.WorkoutSetRepo.Create(ctx, set))
	}

	list, err := tc.WorkoutSetRepo.List(ctx, &workouts.SetQuery{
		StartDate: "2025-10-19",
		EndDate:   "2025-10-21",
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2025-10-20", list[0].WorkoutDate)
}

func TestGormWorkoutSetRepository_Create_InvalidSet(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	set := &workouts.Set{
		WorkoutDate: "2025-10-24",
		Exercise:    "Bench Press",
		WeightKg:    -10,
		Repetitions: 8,
		SetNumber:   3,
	}
	err := tc.WorkoutSetRepo.Create(context.Background(), set)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}
