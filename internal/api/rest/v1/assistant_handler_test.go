//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CharlotteLevula/my-health-project/internal/domain/oura"
	"github.com/CharlotteLevula/my-health-project/internal/domain/workouts"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type assistantHandlerMocks struct {
	assistant     *MockAssistantService
	readinessRepo *MockReadinessRepository
	sleepRepo     *MockSleepRepository
	activityRepo  *MockActivityRepository
	setRepo       *MockSetRepository
	handler       AssistantHandler
}

func newAssistantHandlerMocks() *assistantHandlerMocks {
	m := &assistantHandlerMocks{
		assistant:     new(MockAssistantService),
		readinessRepo: new(MockReadinessRepository),
		sleepRepo:     new(MockSleepRepository),
		activityRepo:  new(MockActivityRepository),
		setRepo:       new(MockSetRepository),
	}
	m.handler = NewAssistantHandler(m.assistant, m.readinessRepo, m.sleepRepo, m.activityRepo, m.setRepo)
	return m
}

func TestAssistantHandler_Chat_Success(t *testing.T) {
	m := newAssistantHandlerMocks()

	m.assistant.
		On("ProcessQuery", mock.Anything, "How did I sleep last night?").
		Return("You slept 7 hours and 12 minutes.", nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/chat", bytes.NewBufferString(`{"query": "How did I sleep last night?"}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.handler.Chat(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "7 hours and 12 minutes")
	m.assistant.AssertExpectations(t)
}

func TestAssistantHandler_Chat_EmptyQuery(t *testing.T) {
	m := newAssistantHandlerMocks()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/chat", bytes.NewBufferString(`{"query": ""}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.handler.Chat(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssistantHandler_Chat_AssistantUnavailable(t *testing.T) {
	m := newAssistantHandlerMocks()

	m.assistant.
		On("ProcessQuery", mock.Anything, mock.Anything).
		Return("", errors.New("ollama is not available"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/chat", bytes.NewBufferString(`{"query": "Should I train?"}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.handler.Chat(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "assistant failed to answer")
}

func TestAssistantHandler_GetReadinessReport_Success(t *testing.T) {
	m := newAssistantHandlerMocks()

	score := 82
	m.readinessRepo.On("List", mock.Anything, mock.Anything).
		Return([]*oura.ReadinessRecord{{ID: "r1", Day: "2025-10-25", Score: &score}}, nil)
	m.sleepRepo.On("List", mock.Anything, mock.Anything).
		Return([]*oura.SleepRecord{{ID: "s1", Day: "2025-10-25", TotalSleepDuration: 8 * 3600, Efficiency: 93}}, nil)
	m.activityRepo.On("List", mock.Anything, mock.Anything).
		Return([]*oura.ActivityRecord{{ID: "a1", Day: "2025-10-25", Steps: 11000, ActiveCalories: 520}}, nil)
	m.setRepo.On("List", mock.Anything, mock.Anything).
		Return([]*workouts.Set{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/readiness-report", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.handler.GetReadinessReport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "score 82")
	assert.Contains(t, w.Body.String(), "11000 steps")
}

func TestAssistantHandler_GetReadinessReport_QueryParamsBoundTheWindow(t *testing.T) {
	m := newAssistantHandlerMocks()

	windowed := func(query *oura.RecordQuery) bool {
		return query.StartDay == "2025-10-20" && query.EndDay == "2025-10-22"
	}
	m.readinessRepo.On("List", mock.Anything, mock.MatchedBy(windowed)).Return([]*oura.ReadinessRecord{}, nil)
	m.sleepRepo.On("List", mock.Anything, mock.MatchedBy(windowed)).Return([]*oura.SleepRecord{}, nil)
	m.activityRepo.On("List", mock.Anything, mock.MatchedBy(windowed)).Return([]*oura.ActivityRecord{}, nil)
	m.setRepo.On("List", mock.Anything, mock.Anything).Return([]*workouts.Set{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/readiness-report?start_date=2025-10-20&end_date=2025-10-22", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.handler.GetReadinessReport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2025-10-20 to 2025-10-22")
	m.readinessRepo.AssertExpectations(t)
	m.sleepRepo.AssertExpectations(t)
	m.activityRepo.AssertExpectations(t)
}

func TestAssistantHandler_GetReadinessReport_Error(t *testing.T) {
	m := newAssistantHandlerMocks()

	m.readinessRepo.On("List", mock.Anything, mock.Anything).
		Return(nil, errors.New("database is locked"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/readiness-report", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.handler.GetReadinessReport(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
