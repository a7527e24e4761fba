// Package app wires domain contracts together into the application
// services behind the REST API and the CLI.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/CharlotteLevula/my-health-project/internal/domain/oura"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/logger"
)

// defaultSyncDays is the trailing window synced when no range is given
const defaultSyncDays = 30

type ouraSyncService struct {
	client        oura.Client
	sleepRepo     oura.SleepRepository
	activityRepo  oura.ActivityRepository
	readinessRepo oura.ReadinessRepository
	heartRateRepo oura.HeartRateRepository
	logger        logger.Logger
}

// NewOuraSyncService creates a new instance of oura.SyncService
func NewOuraSyncService(
	client oura.Client,
	sleepRepo oura.SleepRepository,
	activityRepo oura.ActivityRepository,
	readinessRepo oura.ReadinessRepository,
	heartRateRepo oura.HeartRateRepository,
	logger logger.Logger,
) (oura.SyncService, error) {
	return &ouraSyncService{
		client:        client,
		sleepRepo:     sleepRepo,
		activityRepo:  activityRepo,
		readinessRepo: readinessRepo,
		heartRateRepo: heartRateRepo,
		logger:        logger,
	}, nil
}

// ouraBackup is the raw record dump written when a backup path is requested
type ouraBackup struct {
	FetchedAt time.Time               `json:"fetched_at"`
	StartDay  string                  `json:"start_day"`
	EndDay    string                  `json:"end_day"`
	Sleep     []*oura.SleepRecord     `json:"sleep"`
	Activity  []*oura.ActivityRecord  `json:"activity"`
	Readiness []*oura.ReadinessRecord `json:"readiness"`
	HeartRate []*oura.HeartRateSample `json:"heart_rate"`
}

// Sync fetches all collections for the requested range and upserts them.
// A record that fails to persist is counted in the report and skipped.
func (s *ouraSyncService) Sync(ctx context.Context, opts oura.SyncOptions) (*oura.SyncReport, error) {
	if opts.End.IsZero() {
		opts.End = time.Now()
	}
	if opts.Start.IsZero() {
		opts.Start = opts.End.AddDate(0, 0, -(defaultSyncDays - 1))
	}
	if opts.Start.After(opts.End) {
		return nil, fmt.Errorf("invalid sync range: start %s is after end %s",
			opts.Start.Format(oura.DayFormat), opts.End.Format(oura.DayFormat))
	}

	report := &oura.SyncReport{}

	sleep, err := s.client.FetchSleep(ctx, opts.Start, opts.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sleep records: %w", err)
	}
	for _, record := range sleep {
		if err := s.sleepRepo.Upsert(ctx, record); err != nil {
			s.logger.Warn("Skipping sleep record for day ", record.Day, ": ", err)
			report.Failed++
			continue
		}
		report.SleepSynced++
	}

	activity, err := s.client.FetchActivity(ctx, opts.Start, opts.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity records: %w", err)
	}
	for _, record := range activity {
		if err := s.activityRepo.Upsert(ctx, record); err != nil {
			s.logger.Warn("Skipping activity record for day ", record.Day, ": ", err)
			report.Failed++
			continue
		}
		report.ActivitySynced++
	}

	readiness, err := s.client.FetchReadiness(ctx, opts.Start, opts.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch readiness records: %w", err)
	}
	for _, record := range readiness {
		if err := s.readinessRepo.Upsert(ctx, record); err != nil {
			s.logger.Warn("Skipping readiness record for day ", record.Day, ": ", err)
			report.Failed++
			continue
		}
		report.ReadinessSynced++
	}

	heartRate, err := s.client.FetchHeartRate(ctx, opts.Start, opts.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch heart rate samples: %w", err)
	}
	for _, sample := range heartRate {
		if err := s.heartRateRepo.Upsert(ctx, sample); err != nil {
			s.logger.Warn("Skipping heart rate sample at ", sample.Timestamp, ": ", err)
			report.Failed++
			continue
		}
		report.HeartRateSynced++
	}

	if opts.BackupPath != "" {
		backup := &ouraBackup{
			FetchedAt: time.Now(),
			StartDay:  opts.Start.Format(oura.DayFormat),
			EndDay:    opts.End.Format(oura.DayFormat),
			Sleep:     sleep,
			Activity:  activity,
			Readiness: readiness,
			HeartRate: heartRate,
		}
		if err := writeOuraBackup(opts.BackupPath, backup); err != nil {
			return nil, fmt.Errorf("failed to write backup: %w", err)
		}
		s.logger.Info("Wrote raw record backup to ", opts.BackupPath)
	}

	s.logger.Info("Oura sync completed: ",
		report.SleepSynced, " sleep, ",
		report.ActivitySynced, " activity, ",
		report.ReadinessSynced, " readiness, ",
		report.HeartRateSynced, " heart rate, ",
		report.Failed, " failed")

	return report, nil
}

func writeOuraBackup(path string, backup *ouraBackup) error {
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}
