package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/CharlotteLevula/my-health-project/internal/domain/workouts"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler defines the interface for handling manual workout logging
type WorkoutHandler interface {
	LogWorkout(ctx *gin.Context)
	ListWorkouts(ctx *gin.Context)
}

type workoutHandler struct {
	setRepo workouts.SetRepository
}

// NewWorkoutHandler creates a new WorkoutHandler
func NewWorkoutHandler(setRepo workouts.SetRepository) WorkoutHandler {
	return &workoutHandler{setRepo: setRepo}
}

// LogWorkout handles the POST request to log a gym set
// @Summary Log a gym set
// @Description Store one manually logged set of an exercise.
// @Tags Workouts
// @Accept json
// @Produce json
// @Param requestBody body LogWorkoutRequest true "Gym Set"
// @Success 201 {object} WorkoutSetResponse
// @Failure 400 {object} ErrorResponse
// @Router /workouts [post]
func (handler *workoutHandler) LogWorkout(ctx *gin.Context) {
	var request LogWorkoutRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid workout data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	set := request.ToDomain()
	if err := handler.setRepo.Create(ctx, set); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error logging workout: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, NewWorkoutSetResponse(set))
}

// ListWorkouts handles the GET request to list logged gym sets
// @Summary List logged gym sets
// @Description Fetch logged sets filtered by date range and exercise name, newest first.
// @Tags Workouts
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param exercise query string false "Exercise name filter"
// @Param limit query int false "Limit the number of results"
// @Success 200 {array} WorkoutSetResponse
// @Failure 400 {object} ErrorResponse
// @Router /workouts [get]
func (handler *workoutHandler) ListWorkouts(ctx *gin.Context) {
	query := &workouts.SetQuery{}

	if startDate := ctx.Query("startDate"); len(startDate) > 0 {
		query.StartDate = startDate
	}
	if endDate := ctx.Query("endDate"); len(endDate) > 0 {
		query.EndDate = endDate
	}
	if exercise := ctx.Query("exercise"); len(exercise) > 0 {
		query.Exercise = exercise
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		parsed, err := strconv.Atoi(limit)
		if err == nil && parsed > 0 {
			query.Limit = parsed
		}
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	sets, err := handler.setRepo.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	var listResponse = []WorkoutSetResponse{}
	for _, set := range sets {
		listResponse = append(listResponse, NewWorkoutSetResponse(set))
	}

	ctx.JSON(http.StatusOK, listResponse)
}
