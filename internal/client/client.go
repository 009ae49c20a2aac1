// Package client talks to the todo API on behalf of the task CLI.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/yukikurage/todo-api/internal/constants"
)

// DefaultHost is used when neither the flags nor the credentials file name one.
const DefaultHost = "http://localhost:3000"

// TaskAPIClient lists tasks for the key it was built with.
type TaskAPIClient interface {
	List(ctx context.Context, page int) (*PagedResult[Task], error)
}

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote API at %s returned status %d: %s", e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("remote API at %s returned status %d", e.URL, e.StatusCode)
}

// HTTPClient implements TaskAPIClient over HTTP.
type HTTPClient struct {
	host   string
	apiKey string
	http   *http.Client
	log    *slog.Logger
}

// NewHTTPClient returns a client for the API at host. A nil httpClient
// selects http.DefaultClient.
func NewHTTPClient(host, apiKey string, httpClient *http.Client, log *slog.Logger) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if host == "" {
		host = DefaultHost
	}
	return &HTTPClient{
		host:   strings.TrimRight(host, "/"),
		apiKey: apiKey,
		http:   httpClient,
		log:    log,
	}
}

// List fetches one page of tasks.
func (c *HTTPClient) List(ctx context.Context, page int) (*PagedResult[Task], error) {
	endpoint := c.host + "/v1/todos?" + url.Values{"page": {strconv.Itoa(page)}}.Encode()
	c.log.Debug("sending request", slog.String("method", http.MethodGet), slog.String("url", endpoint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(constants.HeaderAPIKey, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{URL: endpoint, StatusCode: resp.StatusCode}
		var body struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if data, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); readErr == nil {
			if json.Unmarshal(data, &body) == nil {
				statusErr.Code = body.Code
				statusErr.Message = body.Message
			}
		}
		return nil, statusErr
	}

	var result PagedResult[Task]
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.log.Debug("received page",
		slog.Int("page_index", result.PageIndex),
		slog.Int("items", len(result.Items)),
		slog.Int64("total_count", result.TotalCount),
	)
	return &result, nil
}
