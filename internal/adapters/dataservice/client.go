package dataservice

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/ports"
)

// Client implements the MarketDataAPI interface against the exchange data
// service HTTP surface. Transient failures (network errors, 429, 5xx) are
// retried with resty's backoff; 4xx responses are not.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
	}
}

// WithRetry configures retry behavior
func WithRetry(maxRetries int, backoff time.Duration) ClientOption {
	return func(c *Client) {
		c.http.SetRetryCount(maxRetries)
		c.http.SetRetryWaitTime(backoff)
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger.With("component", "dataservice_client")
	}
}

// NewClient creates a new data service client. baseURL includes the service's
// path prefix; token is the shared anonymous bearer token.
func NewClient(baseURL, token string, opts ...ClientOption) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetTimeout(10 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(100 * time.Millisecond).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return resp.StatusCode() == http.StatusTooManyRequests ||
				resp.StatusCode() >= http.StatusInternalServerError
		})

	c := &Client{
		http:   httpClient,
		logger: slog.Default().With("component", "dataservice_client"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Initialize asks the service to seed its demonstration data.
func (c *Client) Initialize(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Post("/init")
	if err != nil {
		return fmt.Errorf("init request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		c.logger.Error("unexpected init response", "status", resp.StatusCode())
		return domain.ErrInternal
	}

	return nil
}

// quoteEnvelope wraps a price quote response body
type quoteEnvelope struct {
	Data *domain.PriceQuote `json:"data"`
}

// GetPrice fetches the current quote for (exchange, pair).
func (c *Client) GetPrice(ctx context.Context, exchange, pair string) (*domain.PriceQuote, error) {
	var envelope quoteEnvelope

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&envelope).
		Get(pricePath(exchange, pair))
	if err != nil {
		return nil, fmt.Errorf("price request failed: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, domain.ErrPriceNotFound
	case resp.StatusCode() != http.StatusOK:
		c.logger.Error("unexpected price response", "status", resp.StatusCode())
		return nil, domain.ErrInternal
	case envelope.Data == nil:
		return nil, fmt.Errorf("price response missing data")
	}

	return envelope.Data, nil
}

// infoEnvelope wraps an exchange profile response body
type infoEnvelope struct {
	Data *domain.ExchangeProfile `json:"data"`
}

// GetInfo fetches an exchange profile by name.
func (c *Client) GetInfo(ctx context.Context, name string) (*domain.ExchangeProfile, error) {
	var envelope infoEnvelope

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&envelope).
		Get("/exchange/info/" + url.PathEscape(name))
	if err != nil {
		return nil, fmt.Errorf("info request failed: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, domain.ErrExchangeNotFound
	case resp.StatusCode() != http.StatusOK:
		c.logger.Error("unexpected info response", "status", resp.StatusCode())
		return nil, domain.ErrInternal
	case envelope.Data == nil:
		return nil, fmt.Errorf("info response missing data")
	}

	return envelope.Data, nil
}

// historyEnvelope wraps a history response body
type historyEnvelope struct {
	Data []domain.HistoryPoint `json:"data"`
}

// GetHistory fetches today's history bucket for (exchange, pair).
func (c *Client) GetHistory(ctx context.Context, exchange, pair string) ([]domain.HistoryPoint, error) {
	var envelope historyEnvelope

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&envelope).
		Get(historyPath(exchange, pair))
	if err != nil {
		return nil, fmt.Errorf("history request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		c.logger.Error("unexpected history response", "status", resp.StatusCode())
		return nil, domain.ErrInternal
	}

	return envelope.Data, nil
}

// pricePath builds the quote path. The pair's slash is a real path separator
// on the wire (BTC/THB spans two segments), matching the service's routes.
func pricePath(exchange, pair string) string {
	return "/exchange/prices/" + url.PathEscape(exchange) + "/" + pair
}

func historyPath(exchange, pair string) string {
	return "/exchange/history/" + url.PathEscape(exchange) + "/" + pair
}

// Ensure Client implements MarketDataAPI
var _ ports.MarketDataAPI = (*Client)(nil)
