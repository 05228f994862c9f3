// Package trades retrieves a wallet's fill history from the Polymarket data
// API, one market at a time.
package trades

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/mselser95/polymarket-pnl/pkg/types"
)

// Client is an HTTP client for the data API trades endpoint.
type Client struct {
	baseURL    string
	pageSize   int
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new trades client. pageSize is the per-request limit;
// a page shorter than pageSize terminates pagination.
func NewClient(baseURL string, pageSize int, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		pageSize: pageSize,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchFills returns the wallet's complete fill history for one market.
// Pagination is sequential: page N+1 is only requested after page N came back
// full. On a mid-pagination failure the fills retrieved so far are returned
// alongside the error; the caller keeps them (availability over consistency).
func (c *Client) FetchFills(ctx context.Context, user, conditionID string) ([]types.Fill, error) {
	var fills []types.Fill
	offset := 0

	for {
		batch, err := c.fetchPage(ctx, user, conditionID, offset)
		if err != nil {
			FetchErrorsTotal.Inc()
			return fills, fmt.Errorf("fetch page at offset %d: %w", offset, err)
		}

		PagesFetchedTotal.Inc()
		FillsFetchedTotal.Add(float64(len(batch)))
		fills = append(fills, batch...)

		if len(batch) < c.pageSize {
			break
		}
		offset += c.pageSize
	}

	c.logger.Debug("fills-fetched",
		zap.String("condition-id", conditionID),
		zap.Int("fills", len(fills)))

	return fills, nil
}

func (c *Client) fetchPage(ctx context.Context, user, conditionID string, offset int) ([]types.Fill, error) {
	params := url.Values{}
	params.Add("user", user)
	params.Add("market", conditionID)
	params.Add("limit", strconv.Itoa(c.pageSize))
	params.Add("offset", strconv.Itoa(offset))

	requestURL := fmt.Sprintf("%s/trades?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "polymarket-pnl/1.0")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	FetchDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var fills []types.Fill
	err = json.Unmarshal(body, &fills)
	if err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return fills, nil
}
