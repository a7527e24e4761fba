//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CharlotteLevula/my-health-project/internal/domain/oura"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecordsHandler_ListSleep_DefaultDays(t *testing.T) {
	mockSleepRepo := new(MockSleepRepository)
	mockActivityRepo := new(MockActivityRepository)
	handler := NewRecordsHandler(mockSleepRepo, mockActivityRepo)

	mockSleepRepo.On("ListRecent", mock.Anything, 7).
		Return([]*oura.SleepRecord{{ID: "s1", Day: "2025-10-25", TotalSleepDuration: 7 * 3600}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/sleep", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListSleep(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2025-10-25")
	mockSleepRepo.AssertExpectations(t)
}

func TestRecordsHandler_ListSleep_CustomDays(t *testing.T) {
	mockSleepRepo := new(MockSleepRepository)
	handler := NewRecordsHandler(mockSleepRepo, new(MockActivityRepository))

	mockSleepRepo.On("ListRecent", mock.Anything, 14).
		Return([]*oura.SleepRecord{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/sleep?days=14", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListSleep(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
	mockSleepRepo.AssertExpectations(t)
}

func TestRecordsHandler_ListSleep_DaysOutOfRange(t *testing.T) {
	handler := NewRecordsHandler(new(MockSleepRepository), new(MockActivityRepository))

	for _, query := range []string{"days=0", "days=32", "days=abc"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/sleep?"+query, nil)

		c, _ := gin.CreateTestContext(w)
		c.Request = req

		handler.ListSleep(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestRecordsHandler_GetActivity_SpecificDay(t *testing.T) {
	mockActivityRepo := new(MockActivityRepository)
	handler := NewRecordsHandler(new(MockSleepRepository), mockActivityRepo)

	mockActivityRepo.On("GetByDay", mock.Anything, "2025-10-24").
		Return(&oura.ActivityRecord{ID: "a1", Day: "2025-10-24", Steps: 10230}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/activity?day=2025-10-24", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GetActivity(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "10230")
	mockActivityRepo.AssertExpectations(t)
}

func TestRecordsHandler_GetActivity_InvalidDay(t *testing.T) {
	handler := NewRecordsHandler(new(MockSleepRepository), new(MockActivityRepository))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/activity?day=24-10-2025", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GetActivity(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordsHandler_GetActivity_NotFound(t *testing.T) {
	mockActivityRepo := new(MockActivityRepository)
	handler := NewRecordsHandler(new(MockSleepRepository), mockActivityRepo)

	mockActivityRepo.On("GetByDay", mock.Anything, "2025-10-24").
		Return(nil, errors.New("activity record for day 2025-10-24 not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/activity?day=2025-10-24", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GetActivity(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
