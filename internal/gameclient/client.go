// Package gameclient is a Go client for the blackjack game service's HTTP
// API.
//
// Game rules and authoritative state live entirely in the service; the
// client only translates the five game operations into HTTP requests and
// parses the JSON responses into typed snapshots. Every operation failure is
// wrapped in a *RequestError carrying the action name.
//
// # Usage
//
//	client := gameclient.NewClient(gameclient.Config{
//	    BaseURL: "http://localhost:8000",
//	})
//
//	resp, err := client.NewGame(ctx)
package gameclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Config holds configuration for the game service client.
type Config struct {
	// BaseURL is the root of the game service API.
	// Defaults to "http://localhost:8000" if empty.
	BaseURL string

	// HTTPClient allows injecting a custom HTTP client (useful for testing).
	// Defaults to a client with 30s timeout.
	HTTPClient *http.Client

	// UserAgent overrides the User-Agent header. Optional.
	UserAgent string
}

// Client is a blackjack game service client.
type Client struct {
	config Config
	http   *http.Client
}

// NewClient creates a new game service client with the given configuration.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		config: cfg,
		http:   httpClient,
	}
}

// BaseURL returns the configured service root.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// --- Operations ---

// NewGame starts a new game and returns the session id with the opening deal.
func (c *Client) NewGame(ctx context.Context) (*NewGameResponse, error) {
	const action = "start new game"

	body, err := c.do(ctx, http.MethodPost, "game/new")
	if err != nil {
		return nil, &RequestError{Action: action, Err: err}
	}

	var resp NewGameResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &RequestError{Action: action, Err: fmt.Errorf("parse response: %w", err)}
	}
	if resp.SessionID == "" {
		return nil, &RequestError{Action: action, Err: fmt.Errorf("response missing session_id")}
	}
	if err := validateState(&resp.GameState); err != nil {
		return nil, &RequestError{Action: action, Err: err}
	}

	return &resp, nil
}

// FetchState returns the current snapshot for an existing session.
func (c *Client) FetchState(ctx context.Context, sessionID string) (*GameState, error) {
	return c.stateRequest(ctx, "fetch game state", http.MethodGet, sessionID, "")
}

// Hit requests another card for the player.
func (c *Client) Hit(ctx context.Context, sessionID string) (*GameState, error) {
	return c.stateRequest(ctx, "hit", http.MethodPost, sessionID, "hit")
}

// Stand ends the player's turn and lets the dealer play out.
func (c *Client) Stand(ctx context.Context, sessionID string) (*GameState, error) {
	return c.stateRequest(ctx, "stand", http.MethodPost, sessionID, "stand")
}

// DoubleDown takes exactly one more card and stands.
func (c *Client) DoubleDown(ctx context.Context, sessionID string) (*GameState, error) {
	return c.stateRequest(ctx, "double-down", http.MethodPost, sessionID, "double-down")
}

// EndGame deletes the session on the service. The snapshot held by the
// caller stays valid for rendering; only further actions become invalid.
func (c *Client) EndGame(ctx context.Context, sessionID string) error {
	const action = "end game"

	if sessionID == "" {
		return &RequestError{Action: action, Err: fmt.Errorf("session id is empty")}
	}
	if _, err := c.do(ctx, http.MethodDelete, "game/"+sessionID); err != nil {
		return &RequestError{Action: action, Err: err}
	}
	return nil
}

// stateRequest performs one per-session operation and decodes the replacement
// game snapshot.
func (c *Client) stateRequest(ctx context.Context, action, method, sessionID, verb string) (*GameState, error) {
	if sessionID == "" {
		return nil, &RequestError{Action: action, Err: fmt.Errorf("session id is empty")}
	}

	path := "game/" + sessionID
	if verb != "" {
		path += "/" + verb
	}

	body, err := c.do(ctx, method, path)
	if err != nil {
		return nil, &RequestError{Action: action, Err: err}
	}

	var state GameState
	if err := json.Unmarshal(body, &state); err != nil {
		return nil, &RequestError{Action: action, Err: fmt.Errorf("parse response: %w", err)}
	}
	if err := validateState(&state); err != nil {
		return nil, &RequestError{Action: action, Err: err}
	}

	return &state, nil
}

// do sends one request and returns the raw body of a 2xx response. Non-2xx
// responses become *APIError when the body carries a {"detail": ...} object,
// *HTTPError otherwise.
func (c *Client) do(ctx context.Context, method, path string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s", strings.TrimRight(c.config.BaseURL, "/"), path)

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	// Correlation id so service logs can be matched to one UI action.
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var detail struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
			return nil, &APIError{StatusCode: resp.StatusCode, Detail: detail.Detail}
		}
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return body, nil
}

// knownStates are the lifecycle tags the UI knows how to render.
var knownStates = map[string]bool{
	StateDealing:    true,
	StatePlayerTurn: true,
	StateDealerTurn: true,
	StateGameOver:   true,
}

// validateState rejects structurally broken snapshots so a malformed payload
// surfaces as an error instead of a garbled view.
func validateState(gs *GameState) error {
	if !knownStates[gs.State] {
		return fmt.Errorf("unrecognized game state %q", gs.State)
	}
	if len(gs.PlayerHand.Cards) == 0 {
		return fmt.Errorf("response missing player hand")
	}
	if len(gs.DealerHand.Cards) == 0 {
		return fmt.Errorf("response missing dealer hand")
	}
	return nil
}
