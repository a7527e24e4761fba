package polar

import (
	"context"
)

// ExerciseBatch is the result of opening an exercise transaction.
// A zero TransactionID means AccessLink reported no new data.
type ExerciseBatch struct {
	TransactionID int64
	Links         []string
}

// ActivityBatch is the result of opening an activity transaction
type ActivityBatch struct {
	TransactionID int64
	Links         []string
}

// AccessClient is an interface for the transactional parts of the Polar
// AccessLink API. New data is pulled by opening a transaction, fetching
// each linked resource and committing the transaction afterwards;
// uncommitted transactions are re-delivered by AccessLink.
type AccessClient interface {
	// RegisterUser registers the authenticated user with AccessLink.
	// An already registered user is not an error.
	RegisterUser(ctx context.Context, memberID string) error

	// GetUserInfo retrieves the registered user profile.
	GetUserInfo(ctx context.Context) (*UserInfo, error)

	// CreateExerciseTransaction opens a transaction over new exercises.
	CreateExerciseTransaction(ctx context.Context) (*ExerciseBatch, error)

	// ListExercises lists the exercise links within an open transaction.
	ListExercises(ctx context.Context, transactionID int64) ([]string, error)

	// GetExerciseSummary fetches a single exercise summary by its link URL.
	GetExerciseSummary(ctx context.Context, link string) (*Exercise, error)

	// GetExerciseGPX fetches the GPX route of an exercise.
	GetExerciseGPX(ctx context.Context, exerciseID int64) (string, error)

	// CommitExerciseTransaction marks an exercise transaction as handled.
	CommitExerciseTransaction(ctx context.Context, transactionID int64) error

	// CreateActivityTransaction opens a transaction over new daily activities.
	CreateActivityTransaction(ctx context.Context) (*ActivityBatch, error)

	// ListActivities lists the activity links within an open transaction.
	ListActivities(ctx context.Context, transactionID int64) ([]string, error)

	// GetActivitySummary fetches a single daily activity summary by its link URL.
	GetActivitySummary(ctx context.Context, link string) (*DailyActivity, error)

	// CommitActivityTransaction marks an activity transaction as handled.
	CommitActivityTransaction(ctx context.Context, transactionID int64) error
}

// SyncReport summarizes a single AccessLink sync run
type SyncReport struct {
	ExercisesSynced  int `json:"exercises_synced"`
	ActivitiesSynced int `json:"activities_synced"`
	Skipped          int `json:"skipped"`
}

// SyncService pulls new data from AccessLink and persists it.
// Transactions are committed only after their contents were processed.
type SyncService interface {
	Sync(ctx context.Context) (*SyncReport, error)
}

// TokenStore defines the interface for persisting the AccessLink OAuth2 token
type TokenStore interface {
	// Load reads the stored token. Returns ErrTokenNotFound when no token
	// has been stored yet and ErrTokenCorrupted when it cannot be decoded.
	Load() (*Token, error)
	// Save persists the token.
	Save(token *Token) error
}

// ExerciseRepository defines the interface for exercise persistence
type ExerciseRepository interface {
	// UpsertBatch inserts exercises, updating rows whose polar exercise id already exists
	UpsertBatch(ctx context.Context, exercises []*Exercise) error
	// List lists stored exercises matching the query, newest first
	List(ctx context.Context, query *ExerciseQuery) ([]*Exercise, error)
}

// DailyActivityRepository defines the interface for daily activity persistence
type DailyActivityRepository interface {
	// UpsertBatch inserts daily activities, updating rows whose date already exists
	UpsertBatch(ctx context.Context, activities []*DailyActivity) error
	// List lists stored daily activities matching the query, newest first
	List(ctx context.Context, query *ExerciseQuery) ([]*DailyActivity, error)
}
