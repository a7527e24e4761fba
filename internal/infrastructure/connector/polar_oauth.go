package connector

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/CharlotteLevula/my-health-project/internal/domain/polar"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/config"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/logger"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// DefaultAuthorizationTimeout bounds how long the callback server waits
// for the user to approve access in the browser.
const DefaultAuthorizationTimeout = 2 * time.Minute

// ErrAuthorizationTimeout indicates the user never completed the browser authorization
var ErrAuthorizationTimeout = errors.New("timed out waiting for authorization callback")

// PolarOAuthFlow drives the AccessLink authorization code flow: it serves
// the loopback redirect endpoint, exchanges the code for a token and
// registers the user with AccessLink.
type PolarOAuthFlow struct {
	settings *config.PolarSettings
	client   *resty.Client
	state    string
	logger   logger.Logger
}

// NewPolarOAuthFlow creates an OAuth flow for the configured Polar client
func NewPolarOAuthFlow(settings *config.PolarSettings, logger logger.Logger) (*PolarOAuthFlow, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid polar settings: %w", err)
	}

	return &PolarOAuthFlow{
		settings: settings,
		client:   resty.New().SetTimeout(30 * time.Second),
		state:    uuid.NewString(),
		logger:   logger,
	}, nil
}

// AuthorizationURL returns the URL the user has to open in a browser
func (f *PolarOAuthFlow) AuthorizationURL() string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", f.settings.ClientID)
	params.Set("redirect_uri", f.settings.RedirectURI)
	params.Set("state", f.state)

	return f.settings.AuthURL + "?" + params.Encode()
}

// WaitForCallback serves the redirect URI until the authorization code
// arrives or the context expires. It handles exactly one authorization.
func (f *PolarOAuthFlow) WaitForCallback(ctx context.Context) (string, error) {
	redirect, err := url.Parse(f.settings.RedirectURI)
	if err != nil {
		return "", fmt.Errorf("invalid redirect URI %s: %w", f.settings.RedirectURI, err)
	}

	addr := redirect.Host
	if redirect.Port() == "" {
		addr = net.JoinHostPort(redirect.Hostname(), "80")
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	callbackPath := redirect.Path
	if callbackPath == "" {
		callbackPath = "/"
	}

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	// The channels are buffered and sends never block: browsers fire extra
	// requests (favicon.ico and the like) at the loopback server
	reportErr := func(err error) {
		select {
		case errCh <- err:
		default:
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		// Only the redirect path carries the authorization response
		if r.URL.Path != callbackPath {
			http.NotFound(w, r)
			return
		}

		query := r.URL.Query()
		code := query.Get("code")

		// A code-less request is answered but the server keeps waiting;
		// the real redirect may still be on its way
		if code == "" {
			http.Error(w, "missing authorization code", http.StatusBadRequest)
			return
		}
		if state := query.Get("state"); state != "" && state != f.state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			reportErr(fmt.Errorf("callback state does not match the authorization request"))
			return
		}

		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<h1>Authorization successful!</h1><p>You can close this window and return to the terminal.</p>"))
		select {
		case codeCh <- code:
		default:
		}
	})

	server := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			reportErr(err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	select {
	case code := <-codeCh:
		return code, nil
	case err := <-errCh:
		return "", err
	case <-ctx.Done():
		return "", ErrAuthorizationTimeout
	}
}

// Exchange trades the authorization code for an access token. The token
// endpoint authenticates the client with HTTP basic auth.
func (f *PolarOAuthFlow) Exchange(ctx context.Context, code string) (*polar.Token, error) {
	var token polar.Token

	resp, err := f.client.R().
		SetContext(ctx).
		SetBasicAuth(f.settings.ClientID, f.settings.ClientSecret).
		SetFormData(map[string]string{
			"grant_type":   "authorization_code",
			"code":         code,
			"redirect_uri": f.settings.RedirectURI,
		}).
		SetResult(&token).
		Post(f.settings.TokenURL)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("token endpoint returned status %d: %s", resp.StatusCode(), resp.String())
	}
	if !token.Valid() {
		return nil, fmt.Errorf("token response is missing access_token or x_user_id")
	}

	f.logger.Info("Obtained AccessLink token for user ", token.XUserID)
	return &token, nil
}
