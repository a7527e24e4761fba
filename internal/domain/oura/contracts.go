package oura

import (
	"context"
	"time"
)

// Client is an interface for fetching collections from the Oura API.
// All fetch methods follow pagination transparently and return the
// concatenated records for the requested day range (inclusive).
type Client interface {
	// FetchSleep retrieves daily sleep summaries for the given range.
	FetchSleep(ctx context.Context, start, end time.Time) ([]*SleepRecord, error)

	// FetchActivity retrieves daily activity summaries for the given range.
	FetchActivity(ctx context.Context, start, end time.Time) ([]*ActivityRecord, error)

	// FetchReadiness retrieves daily readiness summaries for the given range.
	FetchReadiness(ctx context.Context, start, end time.Time) ([]*ReadinessRecord, error)

	// FetchHeartRate retrieves heart rate samples for the given range.
	FetchHeartRate(ctx context.Context, start, end time.Time) ([]*HeartRateSample, error)

	// VerifyToken checks the configured personal access token against the
	// personal_info endpoint and returns the account profile.
	VerifyToken(ctx context.Context) (*PersonalInfo, error)
}

// SyncReport summarizes a single sync run per collection
type SyncReport struct {
	SleepSynced     int `json:"sleep_synced"`
	ActivitySynced  int `json:"activity_synced"`
	ReadinessSynced int `json:"readiness_synced"`
	HeartRateSynced int `json:"heart_rate_synced"`
	Failed          int `json:"failed"`
}

// SyncOptions control a single sync run
type SyncOptions struct {
	// Start and End bound the fetched day range (inclusive)
	Start time.Time
	End   time.Time
	// BackupPath, when set, writes the raw fetched records as JSON
	BackupPath string
}

// SyncService fetches collections from the Oura API and persists them.
// Records that fail validation or persistence are counted and skipped,
// they never abort the run.
type SyncService interface {
	Sync(ctx context.Context, opts SyncOptions) (*SyncReport, error)
}

// SleepRepository defines the interface for sleep record persistence
type SleepRepository interface {
	// Upsert inserts a sleep record or updates it when the id already exists
	Upsert(ctx context.Context, record *SleepRecord) error
	// List lists sleep records matching the query
	List(ctx context.Context, query *RecordQuery) ([]*SleepRecord, error)
	// ListRecent retrieves the most recent records, newest first
	ListRecent(ctx context.Context, limit int) ([]*SleepRecord, error)
	// GetByDay retrieves the sleep record for a specific day
	GetByDay(ctx context.Context, day string) (*SleepRecord, error)
}

// ActivityRepository defines the interface for activity record persistence
type ActivityRepository interface {
	Upsert(ctx context.Context, record *ActivityRecord) error
	List(ctx context.Context, query *RecordQuery) ([]*ActivityRecord, error)
	GetByDay(ctx context.Context, day string) (*ActivityRecord, error)
}

// ReadinessRepository defines the interface for readiness record persistence
type ReadinessRepository interface {
	Upsert(ctx context.Context, record *ReadinessRecord) error
	List(ctx context.Context, query *RecordQuery) ([]*ReadinessRecord, error)
}

// HeartRateRepository defines the interface for heart rate sample persistence
type HeartRateRepository interface {
	Upsert(ctx context.Context, sample *HeartRateSample) error
	ListRange(ctx context.Context, start, end time.Time) ([]*HeartRateSample, error)
}
