package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/CharlotteLevula/my-health-project/internal/domain/oura"

	"github.com/gin-gonic/gin"
)

// Bounds for the sleep day range query
const (
	defaultSleepDays = 7
	maxSleepDays     = 31
)

// RecordsHandler defines the interface for handling synced record queries
type RecordsHandler interface {
	ListSleep(ctx *gin.Context)
	GetActivity(ctx *gin.Context)
}

type recordsHandler struct {
	sleepRepo    oura.SleepRepository
	activityRepo oura.ActivityRepository
}

// NewRecordsHandler creates a new RecordsHandler
func NewRecordsHandler(sleepRepo oura.SleepRepository, activityRepo oura.ActivityRepository) RecordsHandler {
	return &recordsHandler{
		sleepRepo:    sleepRepo,
		activityRepo: activityRepo,
	}
}

// ListSleep handles the GET request to list recent sleep summaries
// @Summary List recent sleep summaries
// @Description Fetch sleep summaries for the last N days, newest first.
// @Tags Records
// @Produce json
// @Param days query int false "Number of days (1-31, default 7)"
// @Success 200 {array} SleepRecordResponse
// @Failure 400 {object} ErrorResponse
// @Router /sleep [get]
func (handler *recordsHandler) ListSleep(ctx *gin.Context) {
	days := defaultSleepDays
	if raw := ctx.Query("days"); len(raw) > 0 {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxSleepDays {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("days must be an integer between 1 and %d", maxSleepDays)
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		days = parsed
	}

	records, err := handler.sleepRepo.ListRecent(ctx, days)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("failed to list sleep records: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	var listResponse = []SleepRecordResponse{}
	for _, record := range records {
		listResponse = append(listResponse, NewSleepRecordResponse(record))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetActivity handles the GET request for one day's activity summary
// @Summary Retrieve an activity summary by day
// @Description Fetch the activity summary for a day (YYYY-MM-DD). Without a day parameter today is used.
// @Tags Records
// @Produce json
// @Param day query string false "Day (YYYY-MM-DD)"
// @Success 200 {object} ActivityRecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /activity [get]
func (handler *recordsHandler) GetActivity(ctx *gin.Context) {
	day := time.Now().Format(oura.DayFormat)
	if raw := ctx.Query("day"); len(raw) > 0 {
		if _, err := time.Parse(oura.DayFormat, raw); err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("invalid day %q, expected YYYY-MM-DD", raw)
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		day = raw
	}

	record, err := handler.activityRepo.GetByDay(ctx, day)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("activity record for day %s not found", day)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, NewActivityRecordResponse(record))
}
