package usgs

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

	"go.uber.org/zap"
)

// DefaultBaseURL is the FDSN event query endpoint of the USGS earthquake catalog.
const DefaultBaseURL = "https://earthquake.usgs.gov/fdsnws/event/1/query"

// ErrUnexpectedStatus is returned when the feed answers with anything but 200.
var ErrUnexpectedStatus = errors.New("usgs: unexpected status")

// Query is the bounded window requested from the feed. Dates are YYYY-MM-DD.
type Query struct {
	StartTime    string
	EndTime      string
	MinMagnitude float64
	Limit        int
}

// Client fetches event collections from the USGS FDSN service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a feed client. An empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchEvents issues a single GET for the window in q. There is no retry and no paging:
// whatever the one bounded response holds is what the caller gets.
func (c *Client) FetchEvents(ctx context.Context, q Query) (*FeatureCollection, error) {
	params := url.Values{
		"format":       {"geojson"},
		"starttime":    {q.StartTime},
		"endtime":      {q.EndTime},
		"minmagnitude": {strconv.FormatFloat(q.MinMagnitude, 'f', -1, 64)},
		"orderby":      {"time"},
		"limit":        {strconv.Itoa(q.Limit)},
	}
	fullURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("usgs feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, body)
	}

	var fc FeatureCollection
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.logger.Debug("Fetched USGS events",
		zap.String("starttime", q.StartTime),
		zap.String("endtime", q.EndTime),
		zap.Int("features", len(fc.Features)),
		zap.Duration("took", time.Since(start)),
	)

	return &fc, nil
}
