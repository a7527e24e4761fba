package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/CharlotteLevula/my-health-project/internal/app"
	"github.com/CharlotteLevula/my-health-project/internal/domain/oura"
	"github.com/CharlotteLevula/my-health-project/internal/infrastructure/connector"
	"github.com/CharlotteLevula/my-health-project/internal/infrastructure/persistence"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/config"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// syncTimeout bounds a full CLI sync run against either API
const syncTimeout = 5 * time.Minute

// SyncCommandHandler encapsulates logic for pulling wearable data into the
// local database via CLI.
type SyncCommandHandler struct {
	config *config.RestConfig
	logger logger.Logger
}

// NewSyncCommandHandler initializes and returns a SyncCommandHandler instance with
// configured logger and application configuration.
func NewSyncCommandHandler() (*SyncCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	restConfig, err := loadRestConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &SyncCommandHandler{
		config: restConfig,
		logger: loggerInstance,
	}, nil
}

// SyncOuraCmd fetches Oura collections for the requested day range and
// upserts them into the local database.
func (commandHandler *SyncCommandHandler) SyncOuraCmd(cmd *cobra.Command, _ []string) {
	opts, err := commandHandler.parseSyncOptions(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	db, err := openDatabase(commandHandler.config)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	sleepRepo, err := persistence.NewGormSleepRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	activityRepo, err := persistence.NewGormActivityRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	readinessRepo, err := persistence.NewGormReadinessRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	heartRateRepo, err := persistence.NewGormHeartRateRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ouraClient, err := connector.NewOuraClient(&commandHandler.config.Oura, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	syncService, err := app.NewOuraSyncService(ouraClient, sleepRepo, activityRepo, readinessRepo, heartRateRepo, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	report, err := syncService.Sync(ctx, opts)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Oura sync completed: ",
		report.SleepSynced, " sleep, ",
		report.ActivitySynced, " activity, ",
		report.ReadinessSynced, " readiness, ",
		report.HeartRateSynced, " heart rate records, ",
		report.Failed, " failed")
}

// parseSyncOptions turns the day range flags into SyncOptions. An explicit
// start/end pair wins over the rolling day window.
func (commandHandler *SyncCommandHandler) parseSyncOptions(cmd *cobra.Command) (oura.SyncOptions, error) {
	var opts oura.SyncOptions

	startDay, err := cmd.Flags().GetString("start")
	if err != nil {
		return opts, fmt.Errorf("invalid start flag: %w", err)
	}
	endDay, err := cmd.Flags().GetString("end")
	if err != nil {
		return opts, fmt.Errorf("invalid end flag: %w", err)
	}
	days, err := cmd.Flags().GetInt("days")
	if err != nil {
		return opts, fmt.Errorf("invalid days flag: %w", err)
	}
	backupPath, err := cmd.Flags().GetString("backup")
	if err != nil {
		return opts, fmt.Errorf("invalid backup flag: %w", err)
	}
	opts.BackupPath = backupPath

	if startDay != "" || endDay != "" {
		if startDay == "" || endDay == "" {
			return opts, fmt.Errorf("start and end have to be given together")
		}
		opts.Start, err = time.Parse(oura.DayFormat, startDay)
		if err != nil {
			return opts, fmt.Errorf("invalid start day %s: %w", startDay, err)
		}
		opts.End, err = time.Parse(oura.DayFormat, endDay)
		if err != nil {
			return opts, fmt.Errorf("invalid end day %s: %w", endDay, err)
		}
		return opts, nil
	}

	if days > 0 {
		opts.End = time.Now()
		opts.Start = opts.End.AddDate(0, 0, -(days - 1))
	}
	return opts, nil
}

// SyncPolarCmd pulls new exercises and daily activity from Polar AccessLink
// into the local database.
func (commandHandler *SyncCommandHandler) SyncPolarCmd(_ *cobra.Command, _ []string) {
	tokenStore := connector.NewFileTokenStore(commandHandler.config.Polar.TokenFile)
	token, err := tokenStore.Load()
	if err != nil {
		commandHandler.logger.Error("No usable Polar token, run auth-polar first: ", err)
		return
	}

	db, err := openDatabase(commandHandler.config)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	exerciseRepo, err := persistence.NewGormExerciseRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	dailyActivityRepo, err := persistence.NewGormDailyActivityRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	accessClient, err := connector.NewPolarAccessClient(&commandHandler.config.Polar, token, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	syncService, err := app.NewPolarSyncService(accessClient, exerciseRepo, dailyActivityRepo, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	report, err := syncService.Sync(ctx)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Polar sync completed: ",
		report.ExercisesSynced, " exercises, ",
		report.ActivitiesSynced, " daily activities, ",
		report.Skipped, " skipped")
}

// InitSyncCommands registers sync-related commands
func InitSyncCommands(rootCmd *cobra.Command) error {
	handler, err := NewSyncCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create sync command handler %w", err)
	}

	var syncOuraCmd = &cobra.Command{
		Use:   "sync-oura",
		Short: "Fetch Oura sleep, activity, readiness and heart rate data",
		Run:   handler.SyncOuraCmd,
	}
	syncOuraCmd.Flags().IntP("days", "", 30, "Number of trailing days to fetch")
	syncOuraCmd.Flags().StringP("start", "", "", "Start day (YYYY-MM-DD), overrides --days together with --end")
	syncOuraCmd.Flags().StringP("end", "", "", "End day (YYYY-MM-DD), overrides --days together with --start")
	syncOuraCmd.Flags().StringP("backup", "", "", "Path to write the raw fetched records as JSON")
	rootCmd.AddCommand(syncOuraCmd)

	var syncPolarCmd = &cobra.Command{
		Use:   "sync-polar",
		Short: "Pull new exercises and daily activity from Polar AccessLink",
		Run:   handler.SyncPolarCmd,
	}
	rootCmd.AddCommand(syncPolarCmd)

	return nil
}
