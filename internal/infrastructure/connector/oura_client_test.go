//go:build unit
// +build unit

package connector

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/CharlotteLevula/my-health-project/internal/pkg/testutil"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOuraBaseURL = "https://api.ouraring.test/v2/usercollection"

func newTestOuraClient(t *testing.T) *ouraClient {
	t.Helper()

	client := resty.New().SetBaseURL(testOuraBaseURL)
	httpmock.ActivateNonDefault(client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)

	return newOuraClientWithResty(client, testutil.SetupTestLogger(t)).(*ouraClient)
}

func TestOuraClient_FetchSleep_Paginated(t *testing.T) {
	client := newTestOuraClient(t)

	nextToken := "page-2-token"
	httpmock.RegisterResponder("GET", testOuraBaseURL+"/daily_sleep",
		func(req *http.Request) (*http.Response, error) {
			query := req.URL.Query()

			if token := query.Get("next_token"); token != "" {
				assert.Equal(t, nextToken, token)
				assert.Empty(t, query.Get("start_date"))
				return httpmock.NewJsonResponse(200, map[string]interface{}{
					"data": []map[string]interface{}{
						{"id": "sleep-2", "day": "2025-10-26", "score": 71},
					},
					"next_token": nil,
				})
			}

			assert.Equal(t, "2025-10-25", query.Get("start_date"))
			assert.Equal(t, "2025-10-26", query.Get("end_date"))
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"data": []map[string]interface{}{
					{"id": "sleep-1", "day": "2025-10-25", "score": 85, "total_sleep_duration": 27000},
				},
				"next_token": nextToken,
			})
		})

	start := time.Date(2025, 10, 25, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 26, 0, 0, 0, 0, time.UTC)

	records, err := client.FetchSleep(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "sleep-1", records[0].ID)
	assert.Equal(t, 27000, records[0].TotalSleepDuration)
	require.NotNil(t, records[0].Score)
	assert.Equal(t, 85, *records[0].Score)
	assert.Equal(t, "sleep-2", records[1].ID)
	assert.Equal(t, 2, httpmock.GetTotalCallCount())
}

func TestOuraClient_FetchActivity_APIError(t *testing.T) {
	client := newTestOuraClient(t)

	httpmock.RegisterResponder("GET", testOuraBaseURL+"/daily_activity",
		httpmock.NewStringResponder(401, `{"detail": "invalid token"}`))

	start := time.Date(2025, 10, 25, 0, 0, 0, 0, time.UTC)

	_, err := client.FetchActivity(context.Background(), start, start)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid token")
}

func TestOuraClient_VerifyToken(t *testing.T) {
	client := newTestOuraClient(t)

	httpmock.RegisterResponder("GET", testOuraBaseURL+"/personal_info",
		httpmock.NewStringResponder(200, `{"id": "user-1", "age": 35, "email": "athlete@example.com", "biological_sex": "female"}`))

	info, err := client.VerifyToken(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "user-1", info.ID)
	assert.Equal(t, "athlete@example.com", info.Email)
	require.NotNil(t, info.Age)
	assert.Equal(t, 35, *info.Age)
}

func TestOuraClient_VerifyToken_Unauthorized(t *testing.T) {
	client := newTestOuraClient(t)

	httpmock.RegisterResponder("GET", testOuraBaseURL+"/personal_info",
		httpmock.NewStringResponder(401, `{"detail": "invalid token"}`))

	_, err := client.VerifyToken(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
