//go:build unit
// +build unit

package app

import (
	"context"
	"time"

	"github.com/CharlotteLevula/my-health-project/internal/domain/assistant"
	"github.com/CharlotteLevula/my-health-project/internal/domain/oura"
	"github.com/CharlotteLevula/my-health-project/internal/domain/polar"
	"github.com/CharlotteLevula/my-health-project/internal/domain/workouts"

	"github.com/stretchr/testify/mock"
)

// MockOuraClient is a mock implementation of oura.Client
type MockOuraClient struct {
	mock.Mock
}

func (m *MockOuraClient) FetchSleep(ctx context.Context, start, end time.Time) ([]*oura.SleepRecord, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*oura.SleepRecord), args.Error(1)
}

func (m *MockOuraClient) FetchActivity(ctx context.Context, start, end time.Time) ([]*oura.ActivityRecord, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*oura.ActivityRecord), args.Error(1)
}

func (m *MockOuraClient) FetchReadiness(ctx context.Context, start, end time.Time) ([]*oura.ReadinessRecord, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*oura.ReadinessRecord), args.Error(1)
}

func (m *MockOuraClient) FetchHeartRate(ctx context.Context, start, end time.Time) ([]*oura.HeartRateSample, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*oura.HeartRateSample), args.Error(1)
}

func (m *MockOuraClient) VerifyToken(ctx context.Context) (*oura.PersonalInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oura.PersonalInfo), args.Error(1)
}

// MockSleepRepository is a mock implementation of oura.SleepRepository
type MockSleepRepository struct {
	mock.Mock
}

func (m *MockSleepRepository) Upsert(ctx context.Context, record *oura.SleepRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockSleepRepository) List(ctx context.Context, query *oura.RecordQuery) ([]*oura.SleepRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*oura.SleepRecord), args.Error(1)
}

func (m *MockSleepRepository) ListRecent(ctx context.Context, limit int) ([]*oura.SleepRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*oura.SleepRecord), args.Error(1)
}

func (m *MockSleepRepository) GetByDay(ctx context.Context, day string) (*oura.SleepRecord, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oura.SleepRecord), args.Error(1)
}

// MockActivityRepository is a mock implementation of oura.ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Upsert(ctx context.Context, record *oura.ActivityRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockActivityRepository) List(ctx context.Context, query *oura.RecordQuery) ([]*oura.ActivityRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*oura.ActivityRecord), args.Error(1)
}

func (m *MockActivityRepository) GetByDay(ctx context.Context, day string) (*oura.ActivityRecord, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oura.ActivityRecord), args.Error(1)
}

// MockReadinessRepository is a mock implementation of oura.ReadinessRepository
type MockReadinessRepository struct {
	mock.Mock
}

func (m *MockReadinessRepository) Upsert(ctx context.Context, record *oura.ReadinessRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockReadinessRepository) List(ctx context.Context, query *oura.RecordQuery) ([]*oura.ReadinessRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*oura.ReadinessRecord), args.Error(1)
}

// MockHeartRateRepository is a mock implementation of oura.HeartRateRepository
type MockHeartRateRepository struct {
	mock.Mock
}

func (m *MockHeartRateRepository) Upsert(ctx context.Context, sample *oura.HeartRateSample) error {
	args := m.Called(ctx, sample)
	return args.Error(0)
}

func (m *MockHeartRateRepository) ListRange(ctx context.Context, start, end time.Time) ([]*oura.HeartRateSample, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*oura.HeartRateSample), args.Error(1)
}

// MockAccessClient is a mock implementation of polar.AccessClient
type MockAccessClient struct {
	mock.Mock
}

func (m *MockAccessClient) RegisterUser(ctx context.Context, memberID string) error {
	args := m.Called(ctx, memberID)
	return args.Error(0)
}

func (m *MockAccessClient) GetUserInfo(ctx context.Context) (*polar.UserInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*polar.UserInfo), args.Error(1)
}

func (m *MockAccessClient) CreateExerciseTransaction(ctx context.Context) (*polar.ExerciseBatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*polar.ExerciseBatch), args.Error(1)
}

func (m *MockAccessClient) ListExercises(ctx context.Context, transactionID int64) ([]string, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAccessClient) GetExerciseSummary(ctx context.Context, link string) (*polar.Exercise, error) {
	args := m.Called(ctx, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*polar.Exercise), args.Error(1)
}

func (m *MockAccessClient) GetExerciseGPX(ctx context.Context, exerciseID int64) (string, error) {
	args := m.Called(ctx, exerciseID)
	return args.String(0), args.Error(1)
}

func (m *MockAccessClient) CommitExerciseTransaction(ctx context.Context, transactionID int64) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockAccessClient) CreateActivityTransaction(ctx context.Context) (*polar.ActivityBatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*polar.ActivityBatch), args.Error(1)
}

func (m *MockAccessClient) ListActivities(ctx context.Context, transactionID int64) ([]string, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAccessClient) GetActivitySummary(ctx context.Context, link string) (*polar.DailyActivity, error) {
	args := m.Called(ctx, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*polar.DailyActivity), args.Error(1)
}

func (m *MockAccessClient) CommitActivityTransaction(ctx context.Context, transactionID int64) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// MockExerciseRepository is a mock implementation of polar.ExerciseRepository
type MockExerciseRepository struct {
	mock.Mock
}

func (m *MockExerciseRepository) UpsertBatch(ctx context.Context, exercises []*polar.Exercise) error {
	args := m.Called(ctx, exercises)
	return args.Error(0)
}

func (m *MockExerciseRepository) List(ctx context.Context, query *polar.ExerciseQuery) ([]*polar.Exercise, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*polar.Exercise), args.Error(1)
}

// MockDailyActivityRepository is a mock implementation of polar.DailyActivityRepository
type MockDailyActivityRepository struct {
	mock.Mock
}

func (m *MockDailyActivityRepository) UpsertBatch(ctx context.Context, activities []*polar.DailyActivity) error {
	args := m.Called(ctx, activities)
	return args.Error(0)
}

func (m *MockDailyActivityRepository) List(ctx context.Context, query *polar.ExerciseQuery) ([]*polar.DailyActivity, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*polar.DailyActivity), args.Error(1)
}

// MockSetRepository is a mock implementation of workouts.SetRepository
type MockSetRepository struct {
	mock.Mock
}

func (m *MockSetRepository) Create(ctx context.Context, set *workouts.Set) error {
	args := m.Called(ctx, set)
	return args.Error(0)
}

func (m *MockSetRepository) List(ctx context.Context, query *workouts.SetQuery) ([]*workouts.Set, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workouts.Set), args.Error(1)
}

// MockModelClient is a mock implementation of assistant.ModelClient
type MockModelClient struct {
	mock.Mock
}

func (m *MockModelClient) Generate(ctx context.Context, prompt string, opts *assistant.GenerateOptions) (string, error) {
	args := m.Called(ctx, prompt, opts)
	return args.String(0), args.Error(1)
}

func (m *MockModelClient) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of polar.TokenStore
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Load() (*polar.Token, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*polar.Token), args.Error(1)
}

func (m *MockTokenStore) Save(token *polar.Token) error {
	args := m.Called(token)
	return args.Error(0)
}
