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
	"github.com/CharlotteLevula/my-health-project/internal/domain/polar"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type syncHandlerMocks struct {
	ouraSync  *MockOuraSyncService
	polarSync *MockPolarSyncService
	dbPinger  *MockComponentPinger
	llmPinger *MockComponentPinger
	handler   SyncHandler
}

func newSyncHandlerMocks() *syncHandlerMocks {
	m := &syncHandlerMocks{
		ouraSync:  new(MockOuraSyncService),
		polarSync: new(MockPolarSyncService),
		dbPinger:  new(MockComponentPinger),
		llmPinger: new(MockComponentPinger),
	}
	m.handler = NewSyncHandler(m.ouraSync, m.polarSync, m.dbPinger, m.llmPinger)
	return m
}

func TestSyncHandler_SyncOura_DefaultRange(t *testing.T) {
	m := newSyncHandlerMocks()

	m.ouraSync.On("Sync", mock.Anything, oura.SyncOptions{}).
		Return(&oura.SyncReport{SleepSynced: 7, ActivitySynced: 7}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sync/oura", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.handler.SyncOura(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sleep_synced":7`)
	m.ouraSync.AssertExpectations(t)
}

func TestSyncHandler_SyncOura_ExplicitRange(t *testing.T) {
	m := newSyncHandlerMocks()

	m.ouraSync.On("Sync", mock.Anything, mock.MatchedBy(func(opts oura.SyncOptions) bool {
		return opts.Start.Format(oura.DayFormat) == "2025-10-01" &&
			opts.End.Format(oura.DayFormat) == "2025-10-07"
	})).Return(&oura.SyncReport{SleepSynced: 7}, nil)

	requestBody := `{"start_day": "2025-10-01", "end_day": "2025-10-07"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sync/oura", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.handler.SyncOura(c)

	assert.Equal(t, http.StatusOK, w.Code)
	m.ouraSync.AssertExpectations(t)
}

func TestSyncHandler_SyncOura_InvalidDay(t *testing.T) {
	m := newSyncHandlerMocks()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sync/oura", bytes.NewBufferString(`{"start_day": "01.10.2025"}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.handler.SyncOura(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSyncHandler_SyncOura_UpstreamError(t *testing.T) {
	m := newSyncHandlerMocks()

	m.ouraSync.On("Sync", mock.Anything, mock.Anything).
		Return(nil, errors.New("oura returned status 401"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sync/oura", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.handler.SyncOura(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestSyncHandler_SyncPolar_Success(t *testing.T) {
	m := newSyncHandlerMocks()

	m.polarSync.On("Sync", mock.Anything).
		Return(&polar.SyncReport{ExercisesSynced: 2}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sync/polar", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.handler.SyncPolar(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"exercises_synced":2`)
	m.polarSync.AssertExpectations(t)
}

func TestSyncHandler_SyncPolar_UpstreamError(t *testing.T) {
	m := newSyncHandlerMocks()

	m.polarSync.On("Sync", mock.Anything).
		Return(nil, errors.New("polar returned status 503"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sync/polar", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.handler.SyncPolar(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestSyncHandler_Health_AllComponentsUp(t *testing.T) {
	m := newSyncHandlerMocks()
	m.dbPinger.On("Ping", mock.Anything).Return(nil)
	m.llmPinger.On("Ping", mock.Anything).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.handler.Health(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), `"database":"ok"`)
	assert.Contains(t, w.Body.String(), `"model_server":"ok"`)
}

func TestSyncHandler_Health_ModelServerDown(t *testing.T) {
	m := newSyncHandlerMocks()
	m.dbPinger.On("Ping", mock.Anything).Return(nil)
	m.llmPinger.On("Ping", mock.Anything).Return(errors.New("connection refused"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.handler.Health(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
	assert.Contains(t, w.Body.String(), `"database":"ok"`)
	assert.Contains(t, w.Body.String(), "connection refused")
}
