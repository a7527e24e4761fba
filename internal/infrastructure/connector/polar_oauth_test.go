//go:build unit
// +build unit

package connector

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/CharlotteLevula/my-health-project/internal/pkg/config"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/testutil"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOAuthFlow(t *testing.T, redirectURI string) *PolarOAuthFlow {
	t.Helper()

	settings := &config.PolarSettings{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		RedirectURI:  redirectURI,
		TokenFile:    "polar_token.json",
		BaseURL:      config.DefaultPolarBaseURL,
		AuthURL:      config.DefaultPolarAuthURL,
		TokenURL:     "https://polarremote.test/v2/oauth2/token",
	}

	flow, err := NewPolarOAuthFlow(settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return flow
}

func TestPolarOAuthFlow_AuthorizationURL(t *testing.T) {
	flow := newTestOAuthFlow(t, "http://localhost:8080")

	authURL, err := url.Parse(flow.AuthorizationURL())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(authURL.String(), config.DefaultPolarAuthURL))

	query := authURL.Query()
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "test-client", query.Get("client_id"))
	assert.Equal(t, "http://localhost:8080", query.Get("redirect_uri"))
	assert.NotEmpty(t, query.Get("state"))
}

func TestPolarOAuthFlow_Exchange(t *testing.T) {
	flow := newTestOAuthFlow(t, "http://localhost:8080")

	httpmock.ActivateNonDefault(flow.client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", "https://polarremote.test/v2/oauth2/token",
		func(req *http.Request) (*http.Response, error) {
			user, pass, ok := req.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "test-client", user)
			assert.Equal(t, "test-secret", pass)

			require.NoError(t, req.ParseForm())
			assert.Equal(t, "authorization_code", req.PostForm.Get("grant_type"))
			assert.Equal(t, "auth-code-1", req.PostForm.Get("code"))
			assert.Equal(t, "http://localhost:8080", req.PostForm.Get("redirect_uri"))

			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"access_token": "token-abc",
				"token_type":   "bearer",
				"expires_in":   473040000,
				"x_user_id":    4242,
			})
		})

	token, err := flow.Exchange(context.Background(), "auth-code-1")
	require.NoError(t, err)

	assert.Equal(t, "token-abc", token.AccessToken)
	assert.Equal(t, int64(4242), token.XUserID)
}

func TestPolarOAuthFlow_Exchange_Rejected(t *testing.T) {
	flow := newTestOAuthFlow(t, "http://localhost:8080")

	httpmock.ActivateNonDefault(flow.client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", "https://polarremote.test/v2/oauth2/token",
		httpmock.NewStringResponder(400, `{"error": "invalid_grant"}`))

	_, err := flow.Exchange(context.Background(), "expired-code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestPolarOAuthFlow_WaitForCallback(t *testing.T) {
	redirectURI := "http://127.0.0.1:18473"
	flow := newTestOAuthFlow(t, redirectURI)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	type result struct {
		code string
		err  error
	}
	resultCh := make(chan result, 1)
	go func() {
		code, err := flow.WaitForCallback(ctx)
		resultCh <- result{code, err}
	}()

	// Simulate the browser redirect once the server is up
	var resp *http.Response
	var err error
	require.Eventually(t, func() bool {
		resp, err = http.Get(fmt.Sprintf("%s/?code=auth-code-1&state=%s", redirectURI, flow.state))
		return err == nil
	}, 2*time.Second, 50*time.Millisecond)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	res := <-resultCh
	require.NoError(t, res.err)
	assert.Equal(t, "auth-code-1", res.code)
}

func TestPolarOAuthFlow_WaitForCallback_SurvivesStrayBrowserRequests(t *testing.T) {
	redirectURI := "http://127.0.0.1:18475"
	flow := newTestOAuthFlow(t, redirectURI)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	type result struct {
		code string
		err  error
	}
	resultCh := make(chan result, 1)
	go func() {
		code, err := flow.WaitForCallback(ctx)
		resultCh <- result{code, err}
	}()

	// Browsers request favicon.ico alongside the redirect; it must not
	// abort the flow
	var resp *http.Response
	var err error
	require.Eventually(t, func() bool {
		resp, err = http.Get(redirectURI + "/favicon.ico")
		return err == nil
	}, 2*time.Second, 50*time.Millisecond)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	// A request without a code answers 400 but keeps the server waiting
	resp, err = http.Get(redirectURI + "/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = http.Get(fmt.Sprintf("%s/?code=auth-code-2&state=%s", redirectURI, flow.state))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	res := <-resultCh
	require.NoError(t, res.err)
	assert.Equal(t, "auth-code-2", res.code)
}

func TestPolarOAuthFlow_WaitForCallback_Timeout(t *testing.T) {
	flow := newTestOAuthFlow(t, "http://127.0.0.1:18474")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := flow.WaitForCallback(ctx)
	assert.ErrorIs(t, err, ErrAuthorizationTimeout)
}
