package commands

import (
	"fmt"
	"os"

	"github.com/CharlotteLevula/my-health-project/internal/infrastructure/persistence"
	"github.com/CharlotteLevula/my-health-project/internal/infrastructure/persistence/models"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/config"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/logger"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// In commands/common.go
func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadRestConfig loads the shared application configuration. A .env file in
// the working directory supplies HEALTH_ environment overrides; CONFIG_PATH
// points at an optional YAML file.
func loadRestConfig() (*config.RestConfig, error) {
	// Missing .env is fine, environment variables may be set directly
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	return restConfig, nil
}

// openDatabase connects to the configured database and runs migrations
func openDatabase(cfg *config.RestConfig) (*gorm.DB, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := db.AutoMigrate(
		&models.SleepModel{},
		&models.ActivityModel{},
		&models.ReadinessModel{},
		&models.HeartRateModel{},
		&models.ExerciseModel{},
		&models.DailyActivityModel{},
		&models.WorkoutSetModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
