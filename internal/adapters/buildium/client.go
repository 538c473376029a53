// Package buildium talks to the Buildium property-management API, the system of record
// for lease balances.
package buildium

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/property_finance/internal/apperrors"
	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/SscSPs/property_finance/internal/core/ports"
	"github.com/SscSPs/property_finance/internal/utils/mapping"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/spf13/cast"
)

const (
	defaultRetryDelay = 500 * time.Millisecond
	cacheSize         = 512
)

// Options configures a Client. Zero values select the defaults.
type Options struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
	// RetryAttempts is the number of retries after the first attempt.
	RetryAttempts int
	RetryDelay    time.Duration
	// CacheTTL keeps successful balance lookups; zero disables caching.
	CacheTTL   time.Duration
	HTTPClient *http.Client
}

// Client fetches lease balances over HTTP.
type Client struct {
	baseURL       string
	clientID      string
	clientSecret  string
	retryAttempts int
	retryDelay    time.Duration
	http          *http.Client
	cache         *expirable.LRU[string, domain.RemoteLeaseBalances]
}

var _ ports.LeaseBalanceClient = (*Client)(nil)

// NewClient creates a Buildium client.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	retryDelay := opts.RetryDelay
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}

	c := &Client{
		baseURL:       strings.TrimRight(opts.BaseURL, "/"),
		clientID:      opts.ClientID,
		clientSecret:  opts.ClientSecret,
		retryAttempts: max(opts.RetryAttempts, 0),
		retryDelay:    retryDelay,
		http:          httpClient,
	}
	if opts.CacheTTL > 0 {
		c.cache = expirable.NewLRU[string, domain.RemoteLeaseBalances](cacheSize, nil, opts.CacheTTL)
	}
	return c
}

// apiError is the error body Buildium returns on non-2xx responses.
type apiError struct {
	Errors []struct {
		Key   string `json:"Key"`
		Value string `json:"Value"`
	} `json:"Errors"`
	UserMessage string `json:"UserMessage"`
}

func (e apiError) String() string {
	parts := make([]string, 0, len(e.Errors)+1)
	if e.UserMessage != "" {
		parts = append(parts, e.UserMessage)
	}
	for _, fe := range e.Errors {
		parts = append(parts, fe.Key+": "+fe.Value)
	}
	return strings.Join(parts, "; ")
}

type statusError struct {
	status int
	detail string
}

func (e *statusError) Error() string {
	if e.detail == "" {
		return fmt.Sprintf("buildium responded %d", e.status)
	}
	return fmt.Sprintf("buildium responded %d: %s", e.status, e.detail)
}

var errBuildRequest = errors.New("building request")

// retryable reports whether another attempt could succeed. Once the caller's context
// is done nothing can.
func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, errBuildRequest) {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.status == http.StatusTooManyRequests || se.status >= 500
	}
	return !errors.Is(err, context.Canceled)
}

// FetchLeaseBalances returns the outstanding balances Buildium holds for a lease.
// Missing or non-numeric fields come back as zero.
func (c *Client) FetchLeaseBalances(ctx context.Context, buildiumLeaseID string) (domain.RemoteLeaseBalances, error) {
	if buildiumLeaseID == "" {
		return domain.RemoteLeaseBalances{}, fmt.Errorf("%w: empty buildium lease id", apperrors.ErrValidation)
	}
	if c.cache != nil {
		if cached, ok := c.cache.Get(buildiumLeaseID); ok {
			return cached, nil
		}
	}

	endpoint := c.baseURL + "/leases/outstandingbalances?leaseids=" + url.QueryEscape(buildiumLeaseID)

	var body []byte
	var err error
	for attempt := 0; attempt <= c.retryAttempts; attempt++ {
		if attempt > 0 {
			slog.WarnContext(ctx, "Retrying Buildium request", "attempt", attempt, "leaseID", buildiumLeaseID, "error", err)
			select {
			case <-ctx.Done():
				return domain.RemoteLeaseBalances{}, fmt.Errorf("%w: %w", apperrors.ErrUpstream, ctx.Err())
			case <-time.After(c.retryDelay * time.Duration(attempt)):
			}
		}
		body, err = c.get(ctx, endpoint)
		if err == nil || !retryable(ctx, err) {
			break
		}
	}
	if err != nil {
		return domain.RemoteLeaseBalances{}, fmt.Errorf("%w: fetching balances for lease %s: %w", apperrors.ErrUpstream, buildiumLeaseID, err)
	}

	balances, err := decodeBalances(body, buildiumLeaseID)
	if err != nil {
		return domain.RemoteLeaseBalances{}, fmt.Errorf("%w: decoding balances for lease %s: %w", apperrors.ErrUpstream, buildiumLeaseID, err)
	}
	if c.cache != nil {
		c.cache.Add(buildiumLeaseID, balances)
	}
	return balances, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBuildRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-buildium-client-id", c.clientID)
	req.Header.Set("x-buildium-client-secret", c.clientSecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ae apiError
		_ = json.Unmarshal(body, &ae)
		return nil, &statusError{status: resp.StatusCode, detail: ae.String()}
	}
	return body, nil
}

// decodeBalances accepts a bare object, an object wrapped in "data", or the list the
// outstanding-balances endpoint returns. From a list only the entry for leaseID is
// used; a single entry without a LeaseId is taken as is. No match gives zero balances.
func decodeBalances(body []byte, leaseID string) (domain.RemoteLeaseBalances, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return domain.RemoteLeaseBalances{}, err
	}

	switch v := raw.(type) {
	case []any:
		for _, item := range v {
			rec, ok := item.(map[string]any)
			if !ok {
				continue
			}
			id, hasID := rec["LeaseId"]
			if !hasID && len(v) == 1 {
				return mapping.ToRemoteLeaseBalances(rec), nil
			}
			if hasID && cast.ToString(id) == leaseID {
				return mapping.ToRemoteLeaseBalances(rec), nil
			}
		}
		return domain.RemoteLeaseBalances{}, nil
	case map[string]any:
		if data, ok := v["data"].(map[string]any); ok {
			return mapping.ToRemoteLeaseBalances(data), nil
		}
		return mapping.ToRemoteLeaseBalances(v), nil
	case nil:
		return domain.RemoteLeaseBalances{}, nil
	default:
		return domain.RemoteLeaseBalances{}, fmt.Errorf("unexpected response of type %T", raw)
	}
}
