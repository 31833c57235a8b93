// Package sota is a client for the SOTA live-score feed, the upstream
// provider of in-play game states.
package sota

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"

	"github.com/qazleague/cup-service/internal/platform/logging"
	"github.com/qazleague/cup-service/internal/platform/resilience"
	"github.com/qazleague/cup-service/internal/usecase"
)

const (
	defaultBaseURL = "https://api.sota.kz/v1"
	defaultTimeout = 10 * time.Second
	maxBodySize    = 2 << 20
)

var errSotaTransient = crerr.New("sota transient failure")

type ClientConfig struct {
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client implements usecase.LiveFeed on top of the SOTA HTTP API.
type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	token          string
	timeout        time.Duration
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient: &fasthttp.Client{
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxBodySize,
		},
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		timeout:        timeout,
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type liveGamePayload struct {
	GameID    int64  `json:"game_id"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
	Status    string `json:"status"`
	IsLive    bool   `json:"is_live"`
}

type liveGamesEnvelope struct {
	Data []liveGamePayload `json:"data"`
}

// FetchLiveGames returns the feed's view of the season's games currently
// in play or recently updated.
func (c *Client) FetchLiveGames(ctx context.Context, seasonID int64) ([]usecase.ExternalLiveGame, error) {
	if seasonID <= 0 {
		return nil, fmt.Errorf("season id must be greater than zero")
	}

	path := fmt.Sprintf("/seasons/%d/live-games", seasonID)
	var envelope liveGamesEnvelope
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("fetch live games season_id=%d: %w", seasonID, err)
	}

	out := make([]usecase.ExternalLiveGame, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		if item.GameID <= 0 {
			continue
		}
		out = append(out, usecase.ExternalLiveGame{
			GameID:    item.GameID,
			HomeScore: item.HomeScore,
			AwayScore: item.AwayScore,
			Status:    item.Status,
			IsLive:    item.IsLive,
		})
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "sota circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: live feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path
	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errSotaTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode feed payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := c.doOnce(fullURL)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !stderrors.Is(err, errSotaTransient) {
			return nil, err
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return nil, lastErr
}

func (c *Client) doOnce(fullURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("X-Auth-Token", c.token)
	}

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, fmt.Errorf("%w: send request: %v", errSotaTransient, err)
	}

	status := resp.StatusCode()
	body := resp.Body()
	raw := make([]byte, len(body))
	copy(raw, body)

	switch {
	case status >= 200 && status < 300:
		return raw, nil
	case isRetryableStatus(status):
		return nil, fmt.Errorf("%w: feed status=%d body=%s", errSotaTransient, status, abbreviateBody(raw))
	default:
		return nil, fmt.Errorf("feed status=%d body=%s", status, abbreviateBody(raw))
	}
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusTooManyRequests || status >= 500
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	if len(raw) <= limit {
		return string(raw)
	}
	return string(raw[:limit]) + "..."
}

// IsTransient reports whether err came from a retryable feed failure.
func IsTransient(err error) bool {
	return stderrors.Is(err, errSotaTransient)
}
