package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/CharlotteLevula/my-health-project/internal/domain/oura"
	"github.com/CharlotteLevula/my-health-project/internal/domain/polar"

	"github.com/gin-gonic/gin"
)

// SyncHandler defines the interface for triggering sync runs
type SyncHandler interface {
	SyncOura(ctx *gin.Context)
	SyncPolar(ctx *gin.Context)
	Health(ctx *gin.Context)
}

// ComponentPinger reports whether a backing component is reachable
type ComponentPinger interface {
	Ping(ctx context.Context) error
}

type syncHandler struct {
	ouraSync  oura.SyncService
	polarSync polar.SyncService
	dbPinger  ComponentPinger
	llmPinger ComponentPinger
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(ouraSync oura.SyncService, polarSync polar.SyncService,
	dbPinger, llmPinger ComponentPinger) SyncHandler {
	return &syncHandler{
		ouraSync:  ouraSync,
		polarSync: polarSync,
		dbPinger:  dbPinger,
		llmPinger: llmPinger,
	}
}

// SyncOura handles the POST request to sync Oura collections
// @Summary Sync Oura data
// @Description Fetch sleep, activity, readiness and heart rate for a day range and store it.
// @Tags Sync
// @Accept json
// @Produce json
// @Param requestBody body SyncRequest false "Sync Range"
// @Success 200 {object} oura.SyncReport
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /sync/oura [post]
func (handler *syncHandler) SyncOura(ctx *gin.Context) {
	var request SyncRequest

	// An empty body means the default range
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("invalid sync request: %v", err.Error())
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	opts := oura.SyncOptions{BackupPath: request.BackupPath}
	if request.StartDay != "" {
		opts.Start, _ = time.Parse(oura.DayFormat, request.StartDay)
	}
	if request.EndDay != "" {
		opts.End, _ = time.Parse(oura.DayFormat, request.EndDay)
	}

	report, err := handler.ouraSync.Sync(ctx, opts)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("oura sync failed: %v", err.Error())
		ctx.JSON(http.StatusBadGateway, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// SyncPolar handles the POST request to pull new AccessLink data
// @Summary Sync Polar data
// @Description Pull new exercises and daily activity from Polar AccessLink and store them.
// @Tags Sync
// @Produce json
// @Success 200 {object} polar.SyncReport
// @Failure 502 {object} ErrorResponse
// @Router /sync/polar [post]
func (handler *syncHandler) SyncPolar(ctx *gin.Context) {
	report, err := handler.polarSync.Sync(ctx)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("polar sync failed: %v", err.Error())
		ctx.JSON(http.StatusBadGateway, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// Health handles the GET request for service and component health
// @Summary Service health
// @Description Report service health including database and model server reachability.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (handler *syncHandler) Health(ctx *gin.Context) {
	response := HealthResponse{
		Status:     "ok",
		Components: map[string]string{},
	}

	components := map[string]ComponentPinger{
		"database":     handler.dbPinger,
		"model_server": handler.llmPinger,
	}
	status := http.StatusOK
	for name, pinger := range components {
		if err := pinger.Ping(ctx); err != nil {
			response.Components[name] = fmt.Sprintf("unreachable: %v", err.Error())
			response.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		response.Components[name] = "ok"
	}

	ctx.JSON(status, response)
}
