//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CharlotteLevula/my-health-project/internal/domain/workouts"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWorkoutHandler_LogWorkout_Success(t *testing.T) {
	mockSetRepo := new(MockSetRepository)
	handler := NewWorkoutHandler(mockSetRepo)

	mockSetRepo.On("Create", mock.Anything, mock.MatchedBy(func(set *workouts.Set) bool {
		return set.Exercise == "Bench Press" && set.WeightKg == 42.5
	})).Return(nil)

	requestBody := `{"workout_date": "2025-10-24", "exercise_name": "Bench Press", "weight_kg": 42.5, "repetitions": 8, "sets": 3}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/workouts", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.LogWorkout(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Bench Press")
	mockSetRepo.AssertExpectations(t)
}

func TestWorkoutHandler_LogWorkout_ValidationError(t *testing.T) {
	handler := NewWorkoutHandler(new(MockSetRepository))

	tests := []struct {
		name string
		body string
	}{
		{"negative weight", `{"workout_date": "2025-10-24", "exercise_name": "Bench Press", "weight_kg": -5, "repetitions": 8, "sets": 3}`},
		{"bad date", `{"workout_date": "24.10.2025", "exercise_name": "Bench Press", "weight_kg": 42.5, "repetitions": 8, "sets": 3}`},
		{"missing exercise", `{"workout_date": "2025-10-24", "weight_kg": 42.5, "repetitions": 8, "sets": 3}`},
		{"not json", `weight=42.5`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/workouts", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.LogWorkout(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestWorkoutHandler_ListWorkouts_Success(t *testing.T) {
	mockSetRepo := new(MockSetRepository)
	handler := NewWorkoutHandler(mockSetRepo)

	mockSetRepo.On("List", mock.Anything, mock.MatchedBy(func(query *workouts.SetQuery) bool {
		return query.Exercise == "Squat" && query.StartDate == "2025-10-01"
	})).Return([]*workouts.Set{
		{ID: "11111111-1111-4111-8111-111111111111", WorkoutDate: "2025-10-22", Exercise: "Squat", WeightKg: 62.5, Repetitions: 5, SetNumber: 3},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/workouts?exercise=Squat&startDate=2025-10-01", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListWorkouts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Squat")
	mockSetRepo.AssertExpectations(t)
}

func TestWorkoutHandler_ListWorkouts_ValidationError(t *testing.T) {
	handler := NewWorkoutHandler(new(MockSetRepository))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/workouts?startDate=invalid", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListWorkouts(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
