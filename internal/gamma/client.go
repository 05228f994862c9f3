// Package gamma resolves market slugs to on-chain condition IDs via the
// Polymarket Gamma API.
package gamma

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/mselser95/polymarket-pnl/pkg/cache"
	"github.com/mselser95/polymarket-pnl/pkg/types"
)

// ErrMarketNotFound indicates the Gamma API has no market for a slug. Most
// generated slugs were simply never listed; callers treat this as a skip, not
// a failure.
var ErrMarketNotFound = errors.New("market not found")

// Client is an HTTP client for the Gamma API markets endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	conditions *cache.ConditionCache
	logger     *zap.Logger
}

// NewClient creates a new Gamma API client. conditions may be nil to disable
// caching.
func NewClient(baseURL string, timeout time.Duration, conditions *cache.ConditionCache, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		conditions: conditions,
		logger:     logger,
	}
}

// ResolveCondition maps a market slug to its durable conditionId, consulting
// the condition cache first. Returns ErrMarketNotFound when the slug is not
// listed or carries no conditionId.
func (c *Client) ResolveCondition(ctx context.Context, slug string) (string, error) {
	if c.conditions != nil {
		if conditionID, ok := c.conditions.Get(slug); ok {
			return conditionID, nil
		}
	}

	market, err := c.fetchMarketBySlug(ctx, slug)
	if err != nil {
		return "", err
	}

	if market.ConditionID == "" {
		return "", fmt.Errorf("%w: %s has no conditionId", ErrMarketNotFound, slug)
	}

	if c.conditions != nil {
		c.conditions.Set(slug, market.ConditionID)
	}

	return market.ConditionID, nil
}

// fetchMarketBySlug queries GET /markets?slug=. The endpoint returns a JSON
// array; the first entry wins.
func (c *Client) fetchMarketBySlug(ctx context.Context, slug string) (*types.Market, error) {
	params := url.Values{}
	params.Add("slug", slug)

	requestURL := fmt.Sprintf("%s/markets?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "polymarket-pnl/1.0")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	LookupDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		LookupErrorsTotal.Inc()
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		LookupErrorsTotal.Inc()
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		LookupErrorsTotal.Inc()
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var markets []types.Market
	err = json.Unmarshal(body, &markets)
	if err != nil {
		LookupErrorsTotal.Inc()
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	LookupsTotal.Inc()

	if len(markets) == 0 {
		c.logger.Debug("market-not-listed", zap.String("slug", slug))
		return nil, fmt.Errorf("%w: %s", ErrMarketNotFound, slug)
	}

	c.logger.Debug("market-resolved",
		zap.String("slug", slug),
		zap.String("condition-id", markets[0].ConditionID))

	return &markets[0], nil
}
