package app

import (
	"context"
	"fmt"

	"github.com/CharlotteLevula/my-health-project/internal/domain/polar"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/logger"
)

type polarSyncService struct {
	client            polar.AccessClient
	exerciseRepo      polar.ExerciseRepository
	dailyActivityRepo polar.DailyActivityRepository
	logger            logger.Logger
}

// NewPolarSyncService creates a new instance of polar.SyncService
func NewPolarSyncService(
	client polar.AccessClient,
	exerciseRepo polar.ExerciseRepository,
	dailyActivityRepo polar.DailyActivityRepository,
	logger logger.Logger,
) (polar.SyncService, error) {
	return &polarSyncService{
		client:            client,
		exerciseRepo:      exerciseRepo,
		dailyActivityRepo: dailyActivityRepo,
		logger:            logger,
	}, nil
}

// Sync pulls new exercises and daily activity from AccessLink. Each
// transaction is committed only after its contents were stored, so a
// failed run is re-delivered on the next one.
func (s *polarSyncService) Sync(ctx context.Context) (*polar.SyncReport, error) {
	report := &polar.SyncReport{}

	if err := s.syncExercises(ctx, report); err != nil {
		return nil, err
	}
	if err := s.syncDailyActivity(ctx, report); err != nil {
		return nil, err
	}

	s.logger.Info("Polar sync completed: ",
		report.ExercisesSynced, " exercises, ",
		report.ActivitiesSynced, " daily activities, ",
		report.Skipped, " skipped")

	return report, nil
}

func (s *polarSyncService) syncExercises(ctx context.Context, report *polar.SyncReport) error {
	batch, err := s.client.CreateExerciseTransaction(ctx)
	if err != nil {
		return fmt.Errorf("failed to open exercise transaction: %w", err)
	}
	// A zero transaction id means AccessLink answered 204, nothing to pull
	if batch == nil || batch.TransactionID == 0 {
		s.logger.Info("No new exercises available")
		return nil
	}

	links := batch.Links
	if len(links) == 0 {
		links, err = s.client.ListExercises(ctx, batch.TransactionID)
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}
	}

	var exercises []*polar.Exercise
	for _, link := range links {
		exercise, err := s.client.GetExerciseSummary(ctx, link)
		if err != nil {
			s.logger.Warn("Skipping exercise ", link, ": ", err)
			report.Skipped++
			continue
		}
		if err := exercise.Validate(); err != nil {
			s.logger.Warn("Skipping invalid exercise ", link, ": ", err)
			report.Skipped++
			continue
		}
		exercises = append(exercises, exercise)
	}

	if err := s.exerciseRepo.UpsertBatch(ctx, exercises); err != nil {
		return fmt.Errorf("failed to store exercises: %w", err)
	}
	report.ExercisesSynced = len(exercises)

	if err := s.client.CommitExerciseTransaction(ctx, batch.TransactionID); err != nil {
		return fmt.Errorf("failed to commit exercise transaction %d: %w", batch.TransactionID, err)
	}
	return nil
}

func (s *polarSyncService) syncDailyActivity(ctx context.Context, report *polar.SyncReport) error {
	batch, err := s.client.CreateActivityTransaction(ctx)
	if err != nil {
		return fmt.Errorf("failed to open activity transaction: %w", err)
	}
	if batch == nil || batch.TransactionID == 0 {
		s.logger.Info("No new daily activity available")
		return nil
	}

	links := batch.Links
	if len(links) == 0 {
		links, err = s.client.ListActivities(ctx, batch.TransactionID)
		if err != nil {
			return fmt.Errorf("failed to list activities: %w", err)
		}
	}

	var activities []*polar.DailyActivity
	for _, link := range links {
		activity, err := s.client.GetActivitySummary(ctx, link)
		if err != nil {
			s.logger.Warn("Skipping daily activity ", link, ": ", err)
			report.Skipped++
			continue
		}
		if err := activity.Validate(); err != nil {
			s.logger.Warn("Skipping invalid daily activity ", link, ": ", err)
			report.Skipped++
			continue
		}
		// The summary payload does not carry the transaction it arrived in
		activity.PolarTransactionID = batch.TransactionID
		activities = append(activities, activity)
	}

	if err := s.dailyActivityRepo.UpsertBatch(ctx, activities); err != nil {
		return fmt.Errorf("failed to store daily activities: %w", err)
	}
	report.ActivitiesSynced = len(activities)

	if err := s.client.CommitActivityTransaction(ctx, batch.TransactionID); err != nil {
		return fmt.Errorf("failed to commit activity transaction %d: %w", batch.TransactionID, err)
	}
	return nil
}
