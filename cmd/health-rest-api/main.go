// cmd/health-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/CharlotteLevula/my-health-project/internal/api/rest/v1"
	"github.com/CharlotteLevula/my-health-project/internal/app"
	"github.com/CharlotteLevula/my-health-project/internal/domain/assistant"
	"github.com/CharlotteLevula/my-health-project/internal/domain/oura"
	"github.com/CharlotteLevula/my-health-project/internal/domain/polar"
	"github.com/CharlotteLevula/my-health-project/internal/domain/workouts"
	"github.com/CharlotteLevula/my-health-project/internal/infrastructure/connector"
	"github.com/CharlotteLevula/my-health-project/internal/infrastructure/llm"
	"github.com/CharlotteLevula/my-health-project/internal/infrastructure/persistence"
	"github.com/CharlotteLevula/my-health-project/internal/infrastructure/persistence/models"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/config"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/logger"
	"github.com/gin-contrib/cors"
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db           *gorm.DB
	repositories *appRepositories
	services     *appServices
}

type appRepositories struct {
	sleep         oura.SleepRepository
	activity      oura.ActivityRepository
	readiness     oura.ReadinessRepository
	heartRate     oura.HeartRateRepository
	exercise      polar.ExerciseRepository
	dailyActivity polar.DailyActivityRepository
	sets          workouts.SetRepository
}

type appServices struct {
	assistant   assistant.Service
	ouraSync    oura.SyncService
	polarSync   polar.SyncService
	modelClient assistant.ModelClient
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
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
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	repositories, err := initializeRepositories(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	// Initialize connectors
	ouraClient, err := connector.NewOuraClient(&cfg.Oura, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create Oura client: %w", err)
	}

	tokenStore := connector.NewFileTokenStore(cfg.Polar.TokenFile)

	// Initialize services
	services, err := initializeApplicationServices(cfg, ouraClient, tokenStore, repositories, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:           db,
		repositories: repositories,
		services:     services,
	}, nil
}

// initializeRepositories sets up the persistence layer
func initializeRepositories(db *gorm.DB, log logger.Logger) (*appRepositories, error) {
	sleepRepo, err := persistence.NewGormSleepRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create sleep repository: %w", err)
	}

	activityRepo, err := persistence.NewGormActivityRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity repository: %w", err)
	}

	readinessRepo, err := persistence.NewGormReadinessRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create readiness repository: %w", err)
	}

	heartRateRepo, err := persistence.NewGormHeartRateRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create heart rate repository: %w", err)
	}

	exerciseRepo, err := persistence.NewGormExerciseRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create exercise repository: %w", err)
	}

	dailyActivityRepo, err := persistence.NewGormDailyActivityRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create daily activity repository: %w", err)
	}

	setRepo, err := persistence.NewGormWorkoutSetRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create workout set repository: %w", err)
	}

	return &appRepositories{
		sleep:         sleepRepo,
		activity:      activityRepo,
		readiness:     readinessRepo,
		heartRate:     heartRateRepo,
		exercise:      exerciseRepo,
		dailyActivity: dailyActivityRepo,
		sets:          setRepo,
	}, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	ouraClient oura.Client,
	tokenStore polar.TokenStore,
	repos *appRepositories,
	log logger.Logger,
) (*appServices, error) {
	ouraSyncService, err := app.NewOuraSyncService(
		ouraClient,
		repos.sleep, repos.activity, repos.readiness, repos.heartRate,
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Oura sync service: %w", err)
	}

	polarSyncService, err := initializePolarSync(cfg, tokenStore, repos, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create Polar sync service: %w", err)
	}

	modelClient, err := llm.NewOllamaClient(&cfg.Ollama, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama client: %w", err)
	}

	tools := []assistant.Tool{
		app.NewSleepSummaryTool(repos.sleep),
		app.NewActivityStepsTool(repos.activity),
		app.NewLogGymSetTool(repos.sets, log),
		app.NewReadinessReportTool(repos.readiness, repos.sleep, repos.activity, repos.sets),
	}

	assistantService, err := app.NewAssistantService(modelClient, tools, tokenStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create assistant service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		assistant:   assistantService,
		ouraSync:    ouraSyncService,
		polarSync:   polarSyncService,
		modelClient: modelClient,
	}, nil
}

// initializePolarSync wires the AccessLink sync service when a token has
// been stored. Without one the API still starts; the sync endpoint reports
// that the authorization flow has to run first.
func initializePolarSync(
	cfg *config.RestConfig,
	tokenStore polar.TokenStore,
	repos *appRepositories,
	log logger.Logger,
) (polar.SyncService, error) {
	token, err := tokenStore.Load()
	if errors.Is(err, polar.ErrTokenNotFound) {
		log.Warn("No Polar token stored at ", cfg.Polar.TokenFile, ", AccessLink sync is disabled until 'health-cli auth polar' has run")
		return &polarSyncUnavailable{reason: err}, nil
	}
	if err != nil {
		return nil, err
	}

	accessClient, err := connector.NewPolarAccessClient(&cfg.Polar, token, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AccessLink client: %w", err)
	}

	return app.NewPolarSyncService(accessClient, repos.exercise, repos.dailyActivity, log)
}

// polarSyncUnavailable stands in for the AccessLink sync until a token exists
type polarSyncUnavailable struct {
	reason error
}

func (s *polarSyncUnavailable) Sync(_ context.Context) (*polar.SyncReport, error) {
	return nil, fmt.Errorf("polar sync is not configured: %w", s.reason)
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	allowedOrigins := cfg.Server.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.assistant,
		deps.repositories.sleep,
		deps.repositories.activity,
		deps.repositories.readiness,
		deps.repositories.sets,
		deps.services.ouraSync,
		deps.services.polarSync,
		persistence.NewDBPinger(deps.db),
		deps.services.modelClient,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on ", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 15 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if err := persistence.CloseDB(deps.db); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
