// internal/leaderboard/client.go
//
// HTTP client for the remote leaderboard service. Consumed fire-and-forget:
// a submission failure is logged and dropped, never surfaced into game
// state. The short timeout keeps a dead leaderboard from tying up the
// completion path even when a caller forgets to wrap Submit in a goroutine.

package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Entry is one ranked leaderboard row.
type Entry struct {
	Username string `json:"username"`
	Guesses  int    `json:"guesses"`
}

// Client talks to a remote leaderboard over HTTP.
type Client struct {
	base string
	hc   *http.Client
}

// NewClient constructs a Client for the service at base (no trailing slash).
func NewClient(base string) *Client {
	return &Client{
		base: base,
		hc:   &http.Client{Timeout: 3 * time.Second},
	}
}

// Submit posts a completed score. Errors are returned for logging but
// callers are expected to ignore them; game state never depends on this.
func (c *Client) Submit(ctx context.Context, username string, guesses int) error {
	body, _ := json.Marshal(map[string]any{"username": username, "guesses": guesses})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/submit-score", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return fmt.Errorf("submit-score: status %d", res.StatusCode)
	}
	return nil
}

// SubmitAsync fires Submit on its own goroutine and logs failures at debug.
// This is the form the round-completed subscriber uses.
func (c *Client) SubmitAsync(username string, guesses int) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := c.Submit(ctx, username, guesses); err != nil {
			log.Debug().Err(err).Str("username", username).Msg("leaderboard submit failed")
		}
	}()
}

// Top fetches the ranked list for display. An empty slice and an error on
// failure; callers render "offline" and move on.
func (c *Client) Top(ctx context.Context) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/leaderboard", nil)
	if err != nil {
		return nil, err
	}
	res, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("leaderboard: status %d", res.StatusCode)
	}
	var out []Entry
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
