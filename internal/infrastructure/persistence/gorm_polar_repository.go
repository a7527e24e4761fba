package persistence

import (
	"context"
	"fmt"

	"github.com/CharlotteLevula/my-health-project/internal/domain/polar"
	"github.com/CharlotteLevula/my-health-project/internal/infrastructure/persistence/models"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormExerciseRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormExerciseRepository creates a new GORM-based ExerciseRepository implementation
func NewGormExerciseRepository(db *gorm.DB, logger logger.Logger) (polar.ExerciseRepository, error) {
	return &gormExerciseRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormExerciseRepository) UpsertBatch(ctx context.Context, exercises []*polar.Exercise) error {
	if len(exercises) == 0 {
		return nil
	}

	modelList := make([]*models.ExerciseModel, 0, len(exercises))
	for _, exercise := range exercises {
		if err := exercise.Validate(); err != nil {
			return fmt.Errorf("validation error: %w", err)
		}
		model := &models.ExerciseModel{}
		model.FromDomain(exercise)
		modelList = append(modelList, model)
	}

	// AccessLink re-delivers uncommitted transactions, so the same exercise
	// can arrive twice; the polar exercise id keeps the rows deduplicated
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "polar_exercise_id"}},
		UpdateAll: true,
	}).Create(&modelList).Error
	if err != nil {
		return fmt.Errorf("failed to upsert exercises: %w", err)
	}

	r.logger.Info("Upserted exercises, count ", len(modelList))
	return nil
}

func (r *gormExerciseRepository) List(ctx context.Context, query *polar.ExerciseQuery) ([]*polar.Exercise, error) {
	if err := validateExerciseQuery(query); err != nil {
		return nil, err
	}

	var modelList []*models.ExerciseModel
	if err := applyExerciseQuery(r.db.WithContext(ctx).Model(&models.ExerciseModel{}), query, "start_time").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch exercises: %w", err)
	}

	domainList := make([]*polar.Exercise, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

type gormDailyActivityRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormDailyActivityRepository creates a new GORM-based DailyActivityRepository implementation
func NewGormDailyActivityRepository(db *gorm.DB, logger logger.Logger) (polar.DailyActivityRepository, error) {
	return &gormDailyActivityRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormDailyActivityRepository) UpsertBatch(ctx context.Context, activities []*polar.DailyActivity) error {
	if len(activities) == 0 {
		return nil
	}

	modelList := make([]*models.DailyActivityModel, 0, len(activities))
	for _, activity := range activities {
		if err := activity.Validate(); err != nil {
			return fmt.Errorf("validation error: %w", err)
		}
		model := &models.DailyActivityModel{}
		model.FromDomain(activity)
		modelList = append(modelList, model)
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		UpdateAll: true,
	}).Create(&modelList).Error
	if err != nil {
		return fmt.Errorf("failed to upsert daily activities: %w", err)
	}

	r.logger.Info("Upserted daily activities, count ", len(modelList))
	return nil
}

func (r *gormDailyActivityRepository) List(ctx context.Context, query *polar.ExerciseQuery) ([]*polar.DailyActivity, error) {
	if err := validateExerciseQuery(query); err != nil {
		return nil, err
	}

	var modelList []*models.DailyActivityModel
	if err := applyExerciseQuery(r.db.WithContext(ctx).Model(&models.DailyActivityModel{}), query, "date").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch daily activities: %w", err)
	}

	domainList := make([]*polar.DailyActivity, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func validateExerciseQuery(query *polar.ExerciseQuery) error {
	if query == nil {
		return nil
	}
	if err := query.Validate(); err != nil {
		return fmt.Errorf("invalid query parameters: %w", err)
	}
	return nil
}

// applyExerciseQuery translates an ExerciseQuery into GORM clauses over the
// given date column, newest rows first
func applyExerciseQuery(dbQuery *gorm.DB, query *polar.ExerciseQuery, column string) *gorm.DB {
	if query == nil {
		return dbQuery.Order(column + " desc")
	}

	if query.StartDate != "" {
		dbQuery = dbQuery.Where(column+" >= ?", query.StartDate)
	}
	if query.EndDate != "" {
		// Inclusive end: start_time carries a time component, so compare
		// against the end of the day
		dbQuery = dbQuery.Where(column+" <= ?", query.EndDate+"T23:59:59.999")
	}

	dbQuery = dbQuery.Order(column + " desc")
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	return dbQuery
}
