package nhl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// BaseURL is the NHL api-web base URL.
	BaseURL = "https://api-web.nhle.com/v1"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// Client is the NHL api-web client. The API is unauthenticated.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new NHL API client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL: BaseURL,
	}
}

// SetHTTPClient allows overriding the default HTTP client (useful for testing).
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// SetBaseURL points the client at a different server (useful for testing).
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// get performs a GET request and decodes the JSON response.
func (c *Client) get(path string, result interface{}) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// ScoresNow fetches the current scoreboard.
func (c *Client) ScoresNow() (*Scoreboard, error) {
	var sb Scoreboard
	if err := c.get("/score/now", &sb); err != nil {
		return nil, err
	}
	return &sb, nil
}

// Scores fetches the scoreboard for a specific date (YYYY-MM-DD).
func (c *Client) Scores(date string) (*Scoreboard, error) {
	var sb Scoreboard
	if err := c.get("/score/"+date, &sb); err != nil {
		return nil, err
	}
	return &sb, nil
}

// StandingsNow fetches the current league standings.
func (c *Client) StandingsNow() ([]Standing, error) {
	var resp StandingsResponse
	if err := c.get("/standings/now", &resp); err != nil {
		return nil, err
	}
	return resp.Standings, nil
}

// Boxscore fetches the boxscore for a game.
func (c *Client) Boxscore(gameID int64) (*Boxscore, error) {
	var box Boxscore
	if err := c.get(fmt.Sprintf("/gamecenter/%d/boxscore", gameID), &box); err != nil {
		return nil, err
	}
	return &box, nil
}

// ClubStatsNow fetches current-season roster stats for a team.
func (c *Client) ClubStatsNow(abbrev string) (*ClubStats, error) {
	var stats ClubStats
	if err := c.get(fmt.Sprintf("/club-stats/%s/now", abbrev), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// PlayerLanding fetches a player's landing page (bio + season stats).
func (c *Client) PlayerLanding(playerID int64) (*PlayerLanding, error) {
	var landing PlayerLanding
	if err := c.get(fmt.Sprintf("/player/%d/landing", playerID), &landing); err != nil {
		return nil, err
	}
	return &landing, nil
}
