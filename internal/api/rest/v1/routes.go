package v1

import (
	"github.com/CharlotteLevula/my-health-project/internal/domain/assistant"
	"github.com/CharlotteLevula/my-health-project/internal/domain/oura"
	"github.com/CharlotteLevula/my-health-project/internal/domain/polar"
	"github.com/CharlotteLevula/my-health-project/internal/domain/workouts"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	assistantService assistant.Service,
	sleepRepo oura.SleepRepository,
	activityRepo oura.ActivityRepository,
	readinessRepo oura.ReadinessRepository,
	setRepo workouts.SetRepository,
	ouraSync oura.SyncService,
	polarSync polar.SyncService,
	dbPinger, llmPinger ComponentPinger) {

	v1 := r.Group(BasePath) // lookup in version file

	// Assistant Routes
	assistantHandler := NewAssistantHandler(assistantService, readinessRepo, sleepRepo, activityRepo, setRepo)
	v1.POST("/chat", assistantHandler.Chat)
	v1.GET("/readiness-report", assistantHandler.GetReadinessReport)

	// Record Routes
	recordsHandler := NewRecordsHandler(sleepRepo, activityRepo)
	v1.GET("/sleep", recordsHandler.ListSleep)
	v1.GET("/activity", recordsHandler.GetActivity)

	// Workout Routes
	workoutHandler := NewWorkoutHandler(setRepo)
	v1.POST("/workouts", workoutHandler.LogWorkout)
	v1.GET("/workouts", workoutHandler.ListWorkouts)

	// Sync and Health Routes
	syncHandler := NewSyncHandler(ouraSync, polarSync, dbPinger, llmPinger)
	v1.POST("/sync/oura", syncHandler.SyncOura)
	v1.POST("/sync/polar", syncHandler.SyncPolar)
	v1.GET("/health", syncHandler.Health)
}
