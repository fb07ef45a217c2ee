package statsclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sgoral/voe/internal/vote"
)

// retryDelay is the pause before the single retry attempt
const retryDelay = 500 * time.Millisecond

// Client fetches the vote statistics endpoints
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a stats client for the given server base URL
func New(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Editors fetches /editors.json
func (c *Client) Editors(ctx context.Context) (vote.Directory, error) {
	var dir vote.Directory
	if err := c.getJSON(ctx, "/editors.json", nil, &dir); err != nil {
		return vote.Directory{}, err
	}
	return dir, nil
}

// Stats fetches /stats.json
func (c *Client) Stats(ctx context.Context) (vote.Stats, error) {
	var stats vote.Stats
	if err := c.getJSON(ctx, "/stats.json", nil, &stats); err != nil {
		return vote.Stats{}, err
	}
	return stats, nil
}

// Votes fetches /votes.json starting at the given sequence id
func (c *Client) Votes(ctx context.Context, from int) (vote.RecordList, error) {
	var records vote.RecordList
	query := url.Values{"from": []string{strconv.Itoa(from)}}
	if err := c.getJSON(ctx, "/votes.json", query, &records); err != nil {
		return vote.RecordList{}, err
	}
	return records, nil
}

// getJSON performs a GET with one bounded retry. A request that fails
// at the transport level or returns a 5xx is retried once after a
// short delay; anything else is returned as-is.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target interface{}) error {
	err := c.fetchOnce(ctx, path, query, target)
	if err == nil || !retryable(ctx, err) {
		return err
	}

	select {
	case <-time.After(retryDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	return c.fetchOnce(ctx, path, query, target)
}

// serverError marks responses worth one retry
type serverError struct {
	status int
	body   string
}

func (e *serverError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.status, e.body)
}

// retryable reports whether an error deserves the one retry. The
// caller's context being done rules it out; a per-request timeout
// also surfaces as context.DeadlineExceeded, so that check must go
// through ctx rather than the error chain.
func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var se *serverError
	if errors.As(err, &se) {
		return true
	}
	// Transport-level failures (connection refused, timeout) get one retry
	var ue *url.Error
	return errors.As(err, &ue)
}

func (c *Client) fetchOnce(ctx context.Context, path string, query url.Values, target interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "voestats")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &serverError{status: resp.StatusCode, body: string(body)}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
