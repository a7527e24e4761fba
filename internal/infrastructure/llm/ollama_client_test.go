//go:build unit
// +build unit

package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/CharlotteLevula/my-health-project/internal/domain/assistant"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/testutil"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOllamaBaseURL = "http://ollama.test:11434"

func newTestOllamaClient(t *testing.T) assistant.ModelClient {
	t.Helper()

	client := resty.New().SetBaseURL(testOllamaBaseURL)
	httpmock.ActivateNonDefault(client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)

	return newOllamaClientWithResty(client, "llama3:8b", testutil.SetupTestLogger(t))
}

func TestOllamaClient_Generate(t *testing.T) {
	client := newTestOllamaClient(t)

	httpmock.RegisterResponder("POST", testOllamaBaseURL+"/api/generate",
		func(req *http.Request) (*http.Response, error) {
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))

			assert.Equal(t, "llama3:8b", body["model"])
			assert.Equal(t, false, body["stream"])
			assert.Contains(t, body["prompt"], "How did I sleep")

			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"response": "ACTION: TOOL_CALL | get_sleep_summary | 2025-10-25",
				"done":     true,
			})
		})

	output, err := client.Generate(context.Background(), "How did I sleep last night?", nil)
	require.NoError(t, err)
	assert.Equal(t, "ACTION: TOOL_CALL | get_sleep_summary | 2025-10-25", output)
}

func TestOllamaClient_Generate_StopSequences(t *testing.T) {
	client := newTestOllamaClient(t)

	httpmock.RegisterResponder("POST", testOllamaBaseURL+"/api/generate",
		func(req *http.Request) (*http.Response, error) {
			var body struct {
				Options struct {
					Stop []string `json:"stop"`
				} `json:"options"`
			}
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, []string{"\n"}, body.Options.Stop)

			return httpmock.NewJsonResponse(200, map[string]interface{}{"response": "ok", "done": true})
		})

	_, err := client.Generate(context.Background(), "decide", &assistant.GenerateOptions{Stop: []string{"\n"}})
	require.NoError(t, err)
}

func TestOllamaClient_Generate_ServerError(t *testing.T) {
	client := newTestOllamaClient(t)

	httpmock.RegisterResponder("POST", testOllamaBaseURL+"/api/generate",
		httpmock.NewStringResponder(500, `{"error": "model not loaded"}`))

	_, err := client.Generate(context.Background(), "hello", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestOllamaClient_Ping(t *testing.T) {
	client := newTestOllamaClient(t)

	httpmock.RegisterResponder("POST", testOllamaBaseURL+"/api/generate",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{"response": "OK", "done": true}))

	assert.NoError(t, client.Ping(context.Background()))
}
