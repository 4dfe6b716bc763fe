package moz

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"marketing-server/internal/observability"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL   = "https://lsapi.seomoz.com/v2"
	defaultBaseDelay = 500 * time.Millisecond
	providerName     = "moz"
)

var (
	ErrNotConfigured = errors.New("moz credentials not configured")
	ErrNoResults     = errors.New("moz returned no results")
)

// Metrics holds the link metrics Moz reports for a URL.
type Metrics struct {
	DomainAuthority int
	PageAuthority   int
	SpamScore       int
	LinkingDomains  int
	TotalLinks      int
	TopKeywords     []string
}

type Config struct {
	AccessID          string
	SecretKey         string
	BaseURL           string
	Timeout           time.Duration
	MaxAttempts       int
	RequestsPerSecond float64
	BaseDelay         time.Duration
}

// Client calls the Moz Links API with a per-attempt timeout, a shared rate
// limiter and bounded exponential backoff.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *observability.Logger
}

func NewClient(cfg Config, logger *observability.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = defaultBaseDelay
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
}

// NormalizeURL prepends https:// to URLs without a scheme.
func NormalizeURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return u
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "https://" + u
	}
	return u
}

type urlMetricsRequest struct {
	Targets []string `json:"targets"`
}

type urlMetricsResult struct {
	Page                      string  `json:"page"`
	DomainAuthority           float64 `json:"domain_authority"`
	PageAuthority             float64 `json:"page_authority"`
	SpamScore                 float64 `json:"spam_score"`
	RootDomainsToRootDomain   float64 `json:"root_domains_to_root_domain"`
	ExternalPagesToRootDomain float64 `json:"external_pages_to_root_domain"`
}

type urlMetricsResponse struct {
	Results []urlMetricsResult `json:"results"`
}

// statusError is a non-2xx response from Moz.
type statusError struct {
	StatusCode int
	Body       string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("moz responded with status %d: %s", e.StatusCode, e.Body)
}

func (e *statusError) retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// Analyze fetches link metrics for rawURL.
func (c *Client) Analyze(ctx context.Context, rawURL string) (Metrics, error) {
	if c.cfg.AccessID == "" || c.cfg.SecretKey == "" {
		return Metrics{}, ErrNotConfigured
	}

	target := NormalizeURL(rawURL)
	ctx = observability.WithFields(ctx, observability.Field{Key: "moz_target", Value: target})

	started := time.Now()
	var lastErr error
	for attempt := 0; attempt < c.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			backoff := c.cfg.BaseDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-ctx.Done():
				observability.ObserveExternalCall(providerName, "url_metrics", observability.OutcomeFailure, started)
				return Metrics{}, ctx.Err()
			case <-time.After(backoff):
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			observability.ObserveExternalCall(providerName, "url_metrics", observability.OutcomeFailure, started)
			return Metrics{}, fmt.Errorf("moz rate limiter: %w", err)
		}

		metrics, err := c.fetch(ctx, target)
		if err == nil {
			observability.ObserveExternalCall(providerName, "url_metrics", observability.OutcomeSuccess, started)
			return metrics, nil
		}
		lastErr = err

		var se *statusError
		if errors.As(err, &se) && !se.retryable() {
			break
		}
		if errors.Is(err, ErrNoResults) || ctx.Err() != nil {
			break
		}
		c.logger.InfoWithError(ctx, fmt.Sprintf("moz attempt %d/%d failed", attempt+1, c.cfg.MaxAttempts), err)
	}

	observability.ObserveExternalCall(providerName, "url_metrics", observability.OutcomeFailure, started)
	return Metrics{}, lastErr
}

func (c *Client) fetch(ctx context.Context, target string) (Metrics, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	body, err := json.Marshal(urlMetricsRequest{Targets: []string{target}})
	if err != nil {
		return Metrics{}, fmt.Errorf("failed to marshal moz request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/url_metrics", bytes.NewReader(body))
	if err != nil {
		return Metrics{}, fmt.Errorf("failed to create moz request: %w", err)
	}
	req.SetBasicAuth(c.cfg.AccessID, c.cfg.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Metrics{}, fmt.Errorf("moz request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Metrics{}, &statusError{StatusCode: resp.StatusCode, Body: string(msg)}
	}

	var decoded urlMetricsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Metrics{}, fmt.Errorf("failed to decode moz response: %w", err)
	}
	if len(decoded.Results) == 0 {
		return Metrics{}, ErrNoResults
	}

	r := decoded.Results[0]
	return Metrics{
		DomainAuthority: int(r.DomainAuthority),
		PageAuthority:   int(r.PageAuthority),
		SpamScore:       int(r.SpamScore),
		LinkingDomains:  int(r.RootDomainsToRootDomain),
		TotalLinks:      int(r.ExternalPagesToRootDomain),
		TopKeywords:     []string{},
	}, nil
}
