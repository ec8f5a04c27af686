package controld

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/rs/zerolog"
)

const defaultBaseURL = "https://api.controld.com"

// Client represents a Control D API client
type Client struct {
	baseURL       string
	token         string
	httpClient    *http.Client
	logger        zerolog.Logger
	retryAttempts uint
	retryDelay    time.Duration
}

// NewClient creates a new Control D client
func NewClient(token string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: API token is required", ErrInvalidConfig)
	}

	client := &Client{
		baseURL: defaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:        logger,
		retryAttempts: 3,
		retryDelay:    time.Second,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// doRequest performs an authenticated HTTP request with retries.
// PUT bodies are form-encoded, matching what the Control D API expects.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, form url.Values) ([]byte, error) {
	requestURL := c.baseURL + endpoint

	var body []byte
	err := c.withRetry(ctx, method+" "+endpoint, func() error {
		var reqBody io.Reader
		if form != nil {
			reqBody = strings.NewReader(form.Encode())
		}

		req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
		if err != nil {
			return retry.Unrecoverable(fmt.Errorf("failed to create request: %w", err))
		}

		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Accept", "application/json")
		if form != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &APIError{
				StatusCode: resp.StatusCode,
				Message:    http.StatusText(resp.StatusCode),
				Body:       string(data),
			}
		}

		body = data
		return nil
	})
	if err != nil {
		return nil, err
	}

	return body, nil
}

// withRetry runs fn with bounded exponential backoff. The retry policy lives
// here so both the GET and PUT call sites share it.
func (c *Client) withRetry(ctx context.Context, operation string, fn func() error) error {
	err := retry.Do(
		fn,
		retry.Context(ctx),
		retry.Attempts(c.retryAttempts),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn().
				Err(err).
				Str("operation", operation).
				Uint("attempt", n+1).
				Uint("max_attempts", c.retryAttempts).
				Msg("Request failed, retrying")
		}),
	)
	if err != nil {
		// Surface the response body when one was captured, it usually
		// carries the actual API error message.
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Body != "" {
			c.logger.Error().
				Str("operation", operation).
				Int("status", apiErr.StatusCode).
				Str("body", apiErr.Body).
				Msg("Request failed after retries")
		}
		return err
	}
	return nil
}

// ListGroups retrieves all groups (folders) for a profile
func (c *Client) ListGroups(ctx context.Context, profileID string) ([]Group, error) {
	endpoint := fmt.Sprintf("/profiles/%s/groups", url.PathEscape(profileID))

	body, err := c.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	var response GroupsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse groups response: %w", err)
	}

	c.logger.Debug().
		Str("profile", profileID).
		Int("count", len(response.Body.Groups)).
		Msg("Retrieved groups from Control D")

	return response.Body.Groups, nil
}

// RenameGroup changes the display name of a group within a profile
func (c *Client) RenameGroup(ctx context.Context, profileID, groupID, newName string) error {
	endpoint := fmt.Sprintf("/profiles/%s/groups/%s", url.PathEscape(profileID), url.PathEscape(groupID))

	form := url.Values{}
	form.Set("name", newName)

	if _, err := c.doRequest(ctx, http.MethodPut, endpoint, form); err != nil {
		return fmt.Errorf("failed to rename group: %w", err)
	}

	return nil
}

// TestConnection verifies the token by listing groups for the given profile
func (c *Client) TestConnection(ctx context.Context, profileID string) error {
	if _, err := c.ListGroups(ctx, profileID); err != nil {
		return fmt.Errorf("%w: %s", ErrNoConnection, err)
	}
	return nil
}
