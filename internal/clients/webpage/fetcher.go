package webpage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"syscall"
	"time"

	"marketing-server/internal/observability"

	"github.com/go-shiori/go-readability"
)

const (
	providerName = "webpage"
	// MaxSnapshotChars bounds the text handed to prompts.
	MaxSnapshotChars = 4000
	// maxBodyBytes bounds how much of a page is read before extraction.
	maxBodyBytes = 2 << 20
)

var ErrBlockedAddress = errors.New("page address is not publicly routable")

// Fetcher extracts the readable text of a web page.
type Fetcher struct {
	httpClient *http.Client
	timeout    time.Duration
	logger     *observability.Logger
}

// NewFetcher returns a Fetcher that only dials public addresses. The check runs
// at dial time so it also applies to redirects and re-resolved hostnames.
func NewFetcher(timeout time.Duration, logger *observability.Logger) *Fetcher {
	return newFetcher(timeout, logger, guardPublicAddress)
}

func newFetcher(timeout time.Duration, logger *observability.Logger, control func(network, address string, c syscall.RawConn) error) *Fetcher {
	dialer := &net.Dialer{
		Timeout: 10 * time.Second,
		Control: control,
	}
	transport := &http.Transport{
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
	}
	return &Fetcher{
		httpClient: &http.Client{Transport: transport},
		timeout:    timeout,
		logger:     logger,
	}
}

// guardPublicAddress refuses loopback, private, link-local and unspecified
// destinations.
func guardPublicAddress(network, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, address)
	}
	ip, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, address)
	}
	ip = ip.Unmap()
	if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() ||
		ip.IsInterfaceLocalMulticast() || ip.IsMulticast() || ip.IsUnspecified() {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, ip)
	}
	return nil
}

// Snapshot returns at most MaxSnapshotChars of readable text from rawURL.
func (f *Fetcher) Snapshot(ctx context.Context, rawURL string) (string, error) {
	started := time.Now()
	text, err := f.fetch(ctx, rawURL)
	if err != nil {
		observability.ObserveExternalCall(providerName, "snapshot", observability.OutcomeFailure, started)
		return "", err
	}
	observability.ObserveExternalCall(providerName, "snapshot", observability.OutcomeSuccess, started)
	return truncate(text, MaxSnapshotChars), nil
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) (string, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid page url: %w", err)
	}
	if pageURL.Scheme != "http" && pageURL.Scheme != "https" {
		return "", fmt.Errorf("unsupported page url scheme %q", pageURL.Scheme)
	}
	if pageURL.Hostname() == "" {
		return "", errors.New("page url has no host")
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build page request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; marketing-server/1.0)")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	article, err := readability.FromReader(io.LimitReader(resp.Body, maxBodyBytes), pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract page text: %w", err)
	}
	return strings.Join(strings.Fields(article.TextContent), " "), nil
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
