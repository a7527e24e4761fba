package persistence

import (
	"context"
	"fmt"

	"github.com/CharlotteLevula/my-health-project/internal/domain/workouts"
	"github.com/CharlotteLevula/my-health-project/internal/infrastructure/persistence/models"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormWorkoutSetRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormWorkoutSetRepository creates a new GORM-based SetRepository implementation
func NewGormWorkoutSetRepository(db *gorm.DB, logger logger.Logger) (workouts.SetRepository, error) {
	return &gormWorkoutSetRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormWorkoutSetRepository) Create(ctx context.Context, set *workouts.Set) error {
	if set.ID == "" {
		set.ID = uuid.New().String()
	}

	if err := set.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.WorkoutSetModel{}
	model.FromDomain(set)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create workout set: %w", err)
	}

	r.logger.Info("Logged workout set with id ", set.ID)
	return nil
}

func (r *gormWorkoutSetRepository) List(ctx context.Context, query *workouts.SetQuery) ([]*workouts.Set, error) {
	if query != nil {
		if err := query.Validate(); err != nil {
			return nil, fmt.Errorf("invalid query parameters: %w", err)
		}
	}

	var modelList []*models.WorkoutSetModel
	dbQuery := r.db.WithContext(ctx).Model(&models.WorkoutSetModel{})

	if query != nil {
		if query.StartDate != "" {
			dbQuery = dbQuery.Where("workout_date >= ?", query.StartDate)
		}
		if query.EndDate != "" {
			dbQuery = dbQuery.Where("workout_date <= ?", query.EndDate)
		}
		if query.Exercise != "" {
			dbQuery = dbQuery.Where("exercise LIKE ?", "%"+query.Exercise+"%")
		}
		if query.Limit > 0 {
			dbQuery = dbQuery.Limit(query.Limit)
		}
	}

	if err := dbQuery.Order("workout_date desc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch workout sets: %w", err)
	}

	domainList := make([]*workouts.Set, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
