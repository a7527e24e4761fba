package v1

import (
	"fmt"
	"net/http"

	"github.com/CharlotteLevula/my-health-project/internal/app"
	"github.com/CharlotteLevula/my-health-project/internal/domain/assistant"
	"github.com/CharlotteLevula/my-health-project/internal/domain/oura"
	"github.com/CharlotteLevula/my-health-project/internal/domain/workouts"

	"github.com/gin-gonic/gin"
)

// AssistantHandler defines the interface for handling assistant operations
type AssistantHandler interface {
	Chat(ctx *gin.Context)
	GetReadinessReport(ctx *gin.Context)
}

type assistantHandler struct {
	assistantService assistant.Service
	readinessRepo    oura.ReadinessRepository
	sleepRepo        oura.SleepRepository
	activityRepo     oura.ActivityRepository
	setRepo          workouts.SetRepository
}

// NewAssistantHandler creates a new AssistantHandler
func NewAssistantHandler(
	assistantService assistant.Service,
	readinessRepo oura.ReadinessRepository,
	sleepRepo oura.SleepRepository,
	activityRepo oura.ActivityRepository,
	setRepo workouts.SetRepository,
) AssistantHandler {
	return &assistantHandler{
		assistantService: assistantService,
		readinessRepo:    readinessRepo,
		sleepRepo:        sleepRepo,
		activityRepo:     activityRepo,
		setRepo:          setRepo,
	}
}

// Chat handles the POST request to answer a natural language question
// @Summary Ask the health assistant a question
// @Description Answer a natural language question about the user's synced health data.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param requestBody body ChatRequest true "Assistant Query"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /chat [post]
func (handler *assistantHandler) Chat(ctx *gin.Context) {
	var request ChatRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid chat request: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	answer, err := handler.assistantService.ProcessQuery(ctx, request.Query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("assistant failed to answer: %v", err.Error())
		ctx.JSON(http.StatusServiceUnavailable, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, ChatResponse{Answer: answer})
}

// GetReadinessReport handles the GET request for the combined recovery report
// @Summary Retrieve the readiness report
// @Description Combine readiness, sleep, activity and the heaviest lifts for a day range into one report.
// @Tags Assistant
// @Produce json
// @Param start_date query string false "Start day (YYYY-MM-DD), defaults to three days before the end"
// @Param end_date query string false "End day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} ReadinessReportResponse
// @Failure 500 {object} ErrorResponse
// @Router /readiness-report [get]
func (handler *assistantHandler) GetReadinessReport(ctx *gin.Context) {
	report, err := app.BuildReadinessReport(ctx,
		handler.readinessRepo, handler.sleepRepo, handler.activityRepo, handler.setRepo,
		ctx.Query("start_date"), ctx.Query("end_date"))
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("failed to build readiness report: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, ReadinessReportResponse{Report: report})
}
