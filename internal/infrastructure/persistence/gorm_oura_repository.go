package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CharlotteLevula/my-health-project/internal/domain/oura"
	"github.com/CharlotteLevula/my-health-project/internal/infrastructure/persistence/models"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormSleepRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSleepRepository creates a new GORM-based SleepRepository implementation
func NewGormSleepRepository(db *gorm.DB, logger logger.Logger) (oura.SleepRepository, error) {
	return &gormSleepRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSleepRepository) Upsert(ctx context.Context, record *oura.SleepRecord) error {
	// Validate domain entity (business rules)
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SleepModel{}
	model.FromDomain(record)

	// Re-synced days overwrite the stored row instead of duplicating it
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert sleep record: %w", err)
	}

	r.logger.Info("Upserted sleep record for day ", record.Day)
	return nil
}

func (r *gormSleepRepository) List(ctx context.Context, query *oura.RecordQuery) ([]*oura.SleepRecord, error) {
	if err := validateRecordQuery(query); err != nil {
		return nil, err
	}

	var modelList []*models.SleepModel
	if err := applyRecordQuery(r.db.WithContext(ctx).Model(&models.SleepModel{}), query).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch sleep records: %w", err)
	}

	domainList := make([]*oura.SleepRecord, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormSleepRepository) ListRecent(ctx context.Context, limit int) ([]*oura.SleepRecord, error) {
	var modelList []*models.SleepModel
	err := r.db.WithContext(ctx).
		Model(&models.SleepModel{}).
		Order("day desc").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent sleep records: %w", err)
	}

	domainList := make([]*oura.SleepRecord, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormSleepRepository) GetByDay(ctx context.Context, day string) (*oura.SleepRecord, error) {
	var model models.SleepModel
	if err := r.db.WithContext(ctx).Where("day = ?", day).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("sleep record for day %s not found", day)
		}
		return nil, fmt.Errorf("failed to fetch sleep record: %w", err)
	}
	return model.ToDomain(), nil
}

type gormActivityRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormActivityRepository creates a new GORM-based ActivityRepository implementation
func NewGormActivityRepository(db *gorm.DB, logger logger.Logger) (oura.ActivityRepository, error) {
	return &gormActivityRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormActivityRepository) Upsert(ctx context.Context, record *oura.ActivityRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ActivityModel{}
	model.FromDomain(record)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert activity record: %w", err)
	}

	r.logger.Info("Upserted activity record for day ", record.Day)
	return nil
}

func (r *gormActivityRepository) List(ctx context.Context, query *oura.RecordQuery) ([]*oura.ActivityRecord, error) {
	if err := validateRecordQuery(query); err != nil {
		return nil, err
	}

	var modelList []*models.ActivityModel
	if err := applyRecordQuery(r.db.WithContext(ctx).Model(&models.ActivityModel{}), query).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch activity records: %w", err)
	}

	domainList := make([]*oura.ActivityRecord, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormActivityRepository) GetByDay(ctx context.Context, day string) (*oura.ActivityRecord, error) {
	var model models.ActivityModel
	if err := r.db.WithContext(ctx).Where("day = ?", day).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("activity record for day %s not found", day)
		}
		return nil, fmt.Errorf("failed to fetch activity record: %w", err)
	}
	return model.ToDomain(), nil
}

type gormReadinessRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormReadinessRepository creates a new GORM-based ReadinessRepository implementation
func NewGormReadinessRepository(db *gorm.DB, logger logger.Logger) (oura.ReadinessRepository, error) {
	return &gormReadinessRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormReadinessRepository) Upsert(ctx context.Context, record *oura.ReadinessRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ReadinessModel{}
	model.FromDomain(record)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert readiness record: %w", err)
	}

	r.logger.Info("Upserted readiness record for day ", record.Day)
	return nil
}

func (r *gormReadinessRepository) List(ctx context.Context, query *oura.RecordQuery) ([]*oura.ReadinessRecord, error) {
	if err := validateRecordQuery(query); err != nil {
		return nil, err
	}

	var modelList []*models.ReadinessModel
	if err := applyRecordQuery(r.db.WithContext(ctx).Model(&models.ReadinessModel{}), query).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch readiness records: %w", err)
	}

	domainList := make([]*oura.ReadinessRecord, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

type gormHeartRateRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormHeartRateRepository creates a new GORM-based HeartRateRepository implementation
func NewGormHeartRateRepository(db *gorm.DB, logger logger.Logger) (oura.HeartRateRepository, error) {
	return &gormHeartRateRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormHeartRateRepository) Upsert(ctx context.Context, sample *oura.HeartRateSample) error {
	if err := sample.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.HeartRateModel{}
	model.FromDomain(sample)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "timestamp"}},
		UpdateAll: true,
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert heart rate sample: %w", err)
	}
	return nil
}

func (r *gormHeartRateRepository) ListRange(ctx context.Context, start, end time.Time) ([]*oura.HeartRateSample, error) {
	var modelList []*models.HeartRateModel
	err := r.db.WithContext(ctx).
		Model(&models.HeartRateModel{}).
		Where("timestamp >= ? AND timestamp <= ?", start, end).
		Order("timestamp asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch heart rate samples: %w", err)
	}

	domainList := make([]*oura.HeartRateSample, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func validateRecordQuery(query *oura.RecordQuery) error {
	if query == nil {
		return nil
	}
	if err := query.Validate(); err != nil {
		return fmt.Errorf("invalid query parameters: %w", err)
	}
	return nil
}

// applyRecordQuery translates a RecordQuery into GORM filter, ordering and
// pagination clauses shared by the daily Oura tables
func applyRecordQuery(dbQuery *gorm.DB, query *oura.RecordQuery) *gorm.DB {
	if query == nil {
		return dbQuery.Order("day asc")
	}

	if query.StartDay != "" {
		dbQuery = dbQuery.Where("day >= ?", query.StartDay)
	}
	if query.EndDay != "" {
		dbQuery = dbQuery.Where("day <= ?", query.EndDay)
	}

	order := query.SortOrder
	if order == "" {
		order = "asc"
	}
	dbQuery = dbQuery.Order(fmt.Sprintf("day %s", order))

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	return dbQuery
}
