package webqq

import (
	"bytes"
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

	"github.com/bnema/qqbot-cli/internal/adapters/metrics"
	"github.com/bnema/qqbot-cli/internal/domain"
	"github.com/bnema/qqbot-cli/internal/ports"
)

const (
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.9; rv:27.0) Gecko/20100101 Firefox/27.0"

	// DefaultDeniedRetryLimit is how many denied responses a request
	// tolerates before giving up.
	DefaultDeniedRetryLimit = 2

	defaultMaxNetworkErrors = 6
	defaultRetryDelay       = 3 * time.Second
	defaultRawGetDelay      = 200 * time.Millisecond
	defaultRequestTimeout   = 2 * time.Minute
	probeTimeout            = 5 * time.Second
	maxResponseBytes        = 8 << 20
)

var successCodes = map[int64]bool{0: true, 1202: true, 100003: true}

// Request describes one smart request. A nil Form sends a GET, otherwise
// the form is POSTed url-encoded.
type Request struct {
	URL     string
	Form    url.Values
	Referer string
	Origin  string
	// DeniedRetryLimit is the number of denied responses tolerated before
	// the request fails. Zero fails on the first denial.
	DeniedRetryLimit int
}

type Options struct {
	Endpoints        Endpoints
	HTTPClient       *http.Client
	Clock            ports.Clock
	Logger           *slog.Logger
	Metrics          *metrics.Recorder
	RetryDelay       time.Duration
	RawGetDelay      time.Duration
	MaxNetworkErrors int
}

// Client is the cookie-carrying HTTP session shared by every remote call of
// one bot. It is safe for concurrent use by the poller and the dispatcher.
type Client struct {
	endpoints        Endpoints
	http             *http.Client
	jar              *sessionJar
	clock            ports.Clock
	logger           *slog.Logger
	metrics          *metrics.Recorder
	retryDelay       time.Duration
	rawGetDelay      time.Duration
	maxNetworkErrors int
}

func NewClient(opts Options) (*Client, error) {
	jar, err := newSessionJar()
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: defaultRequestTimeout}
	if opts.HTTPClient != nil {
		copied := *opts.HTTPClient
		httpClient = &copied
	}
	httpClient.Jar = jar

	endpoints := opts.Endpoints
	if endpoints == (Endpoints{}) {
		endpoints = DefaultEndpoints()
	}

	clock := opts.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	retryDelay := opts.RetryDelay
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}
	rawGetDelay := opts.RawGetDelay
	if rawGetDelay <= 0 {
		rawGetDelay = defaultRawGetDelay
	}
	maxNetworkErrors := opts.MaxNetworkErrors
	if maxNetworkErrors <= 0 {
		maxNetworkErrors = defaultMaxNetworkErrors
	}

	return &Client{
		endpoints:        endpoints,
		http:             httpClient,
		jar:              jar,
		clock:            clock,
		logger:           logger,
		metrics:          opts.Metrics,
		retryDelay:       retryDelay,
		rawGetDelay:      rawGetDelay,
		maxNetworkErrors: maxNetworkErrors,
	}, nil
}

// SmartRequest performs req with the retry discipline of the web client and
// returns the envelope's result member, or the whole envelope when it has
// none. Transport failures, non JSON bodies and 502 responses count as
// network errors; well formed envelopes with a failure status count as
// denials. Once either budget is exceeded it returns a *domain.RequestError.
func (c *Client) SmartRequest(ctx context.Context, req Request) (json.RawMessage, error) {
	endpoint := endpointLabel(req.URL)

	var networkErrors, deniedErrors int
	for attempt := 1; ; attempt++ {
		started := c.clock.Now()
		result, cause := c.attempt(ctx, req)
		elapsed := c.clock.Now().Sub(started)
		if cause == nil {
			c.metrics.ObserveRequest(endpoint, metrics.OutcomeSuccess, elapsed)
			return result, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if errors.Is(cause, domain.ErrDenied) {
			deniedErrors++
			c.metrics.ObserveRequest(endpoint, metrics.OutcomeDenied, elapsed)
		} else {
			networkErrors++
			c.metrics.ObserveRequest(endpoint, metrics.OutcomeNetwork, elapsed)
		}

		if networkErrors > c.maxNetworkErrors || deniedErrors > req.DeniedRetryLimit {
			c.metrics.ObserveRequest(endpoint, metrics.OutcomeGaveUp, 0)
			c.logger.Warn("request failed, giving up",
				"endpoint", endpoint,
				"attempt", attempt,
				"network_errors", networkErrors,
				"denied_errors", deniedErrors,
				"error", cause,
			)
			return nil, &domain.RequestError{
				URL:           redactURL(req.URL),
				NetworkErrors: networkErrors,
				DeniedErrors:  deniedErrors,
				Err:           cause,
			}
		}

		c.logger.Debug("request failed, retrying",
			"endpoint", endpoint,
			"attempt", attempt,
			"delay", c.retryDelay,
			"error", cause,
		)
		if err := c.clock.Sleep(ctx, c.retryDelay); err != nil {
			return nil, err
		}
	}
}

func (c *Client) attempt(ctx context.Context, req Request) (json.RawMessage, error) {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusBadGateway {
		go c.probe()
		return nil, fmt.Errorf("%w: status %d", domain.ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", domain.ErrNetwork, err)
	}

	return decodeEnvelope(body)
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	method := http.MethodGet
	var body io.Reader
	if req.Form != nil {
		method = http.MethodPost
		body = strings.NewReader(req.Form.Encode())
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("create request for %s: %w", endpointLabel(req.URL), err)
	}
	httpReq.Header.Set("User-Agent", userAgent)
	if req.Form != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	}
	if req.Referer != "" {
		httpReq.Header.Set("Referer", req.Referer)
	}
	if req.Origin != "" {
		httpReq.Header.Set("Origin", req.Origin)
	}

	return httpReq, nil
}

// decodeEnvelope classifies a response body. The status lives under
// retcode or errCode; a missing status counts as a failure.
func decodeEnvelope(body []byte) (json.RawMessage, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w: %s", domain.ErrNetwork, domain.ErrMalformedEnvelope, abbreviate(body))
	}

	status := statusCode(envelope)
	if !successCodes[status] {
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrDenied, status, abbreviate(body))
	}

	if result, ok := envelope["result"]; ok {
		return result, nil
	}
	return json.RawMessage(bytes.Clone(body)), nil
}

func statusCode(envelope map[string]json.RawMessage) int64 {
	raw, ok := envelope["retcode"]
	if !ok {
		raw, ok = envelope["errCode"]
	}
	if !ok {
		return -1
	}

	var status int64
	if err := json.Unmarshal(raw, &status); err != nil {
		return -1
	}
	return status
}

// probe reports a gateway failure the way the web client does. Its outcome
// is ignored.
func (c *Client) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoints.pingHot(), nil)
	if err != nil {
		return
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("gateway probe failed", "error", err)
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
	_ = resp.Body.Close()
}

// Get fetches a non JSON resource such as the landing page, the QR image or
// the QR status line.
func (c *Client) Get(ctx context.Context, rawURL string, referer string) ([]byte, error) {
	if err := c.clock.Sleep(ctx, c.rawGetDelay); err != nil {
		return nil, err
	}

	httpReq, err := c.newRequest(ctx, Request{URL: rawURL, Referer: referer})
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w: %w", endpointLabel(rawURL), domain.ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("get %s: %w: read body: %w", endpointLabel(rawURL), domain.ErrNetwork, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("get %s: %w: status %d", endpointLabel(rawURL), domain.ErrNetwork, resp.StatusCode)
	}

	return body, nil
}

// endpointLabel strips the query string, which carries session tokens, from
// a URL before it is logged or used as a metric label.
func endpointLabel(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "invalid-url"
	}
	return parsed.Path
}

func redactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "invalid-url"
	}
	parsed.RawQuery = ""
	return parsed.String()
}

func abbreviate(body []byte) string {
	const limit = 200
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}
