//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/CharlotteLevula/my-health-project/internal/domain/oura"
	"github.com/CharlotteLevula/my-health-project/internal/domain/polar"
	"github.com/CharlotteLevula/my-health-project/internal/domain/workouts"

	"github.com/stretchr/testify/mock"
)

// MockAssistantService is a mock implementation of assistant.Service
type MockAssistantService struct {
	mock.Mock
}

func (m *MockAssistantService) ProcessQuery(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
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

// MockOuraSyncService is a mock implementation of oura.SyncService
type MockOuraSyncService struct {
	mock.Mock
}

func (m *MockOuraSyncService) Sync(ctx context.Context, opts oura.SyncOptions) (*oura.SyncReport, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oura.SyncReport), args.Error(1)
}

// MockComponentPinger is a mock implementation of ComponentPinger
type MockComponentPinger struct {
	mock.Mock
}

func (m *MockComponentPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockPolarSyncService is a mock implementation of polar.SyncService
type MockPolarSyncService struct {
	mock.Mock
}

func (m *MockPolarSyncService) Sync(ctx context.Context) (*polar.SyncReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*polar.SyncReport), args.Error(1)
}
