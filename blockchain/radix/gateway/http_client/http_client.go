package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/openweb3-io/radixutils/blockchain/radix/gateway"
	"github.com/openweb3-io/radixutils/types"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Implement the Babylon gateway client over the public JSON api.
// Every endpoint is a POST with a JSON body, non-2xx statuses carry an ErrorResponse.

const (
	HeaderAppName    = "RDX-App-Name"
	HeaderAppVersion = "RDX-App-Version"
)

type Client struct {
	baseUrl    *url.URL
	client     *http.Client
	limiter    *rate.Limiter
	appName    string
	appVersion string
	registerer prometheus.Registerer
	metrics    *clientMetrics
}

var _ gateway.Gateway = &Client{}

type Option func(*Client)

// WithHTTPClient replaces the default http client, e.g. to set a transport or timeout
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

// WithRateLimiter makes every request wait for the limiter. The limiter is shared by all
// in-flight calls of the client.
func WithRateLimiter(limiter *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

// WithRegisterer registers request metrics on reg. Without it metrics are kept unregistered.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.registerer = reg
	}
}

// WithApplication identifies the caller to the gateway operator
func WithApplication(name, version string) Option {
	return func(c *Client) {
		c.appName = name
		c.appVersion = version
	}
}

func NewHttpClient(baseUrl string, opts ...Option) (*Client, error) {
	baseUrl = strings.TrimSuffix(strings.TrimSpace(baseUrl), "/")
	if baseUrl == "" {
		return nil, errors.New("gateway url is empty")
	}
	u, err := url.Parse(baseUrl)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid gateway url %q", baseUrl)
	}

	c := &Client{
		baseUrl: u,
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.metrics = newClientMetrics(c.registerer)
	return c, nil
}

type clientMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func newClientMetrics(reg prometheus.Registerer) *clientMetrics {
	m := &clientMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "radix_gateway_requests_total",
			Help: "Number of gateway requests by endpoint and status",
		}, []string{"endpoint", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "radix_gateway_request_duration_seconds",
			Help:    "Latency of gateway requests by endpoint",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
	if reg == nil {
		return m
	}
	// clients sharing a registerer share its collectors
	m.requests = register(reg, m.requests)
	m.latency = register(reg, m.latency)
	return m
}

func register[C prometheus.Collector](reg prometheus.Registerer, collector C) C {
	err := reg.Register(collector)
	if err == nil {
		return collector
	}
	var exists prometheus.AlreadyRegisteredError
	if errors.As(err, &exists) {
		if existing, ok := exists.ExistingCollector.(C); ok {
			return existing
		}
	}
	panic(err)
}

func (m *clientMetrics) observe(endpoint string, status string, cost time.Duration) {
	m.requests.WithLabelValues(endpoint, status).Inc()
	m.latency.WithLabelValues(endpoint).Observe(cost.Seconds())
}

func parseResponse[T any](res *http.Response, dest T) (T, error) {
	bz, err := io.ReadAll(res.Body)
	if err != nil {
		return dest, err
	}
	err = json.Unmarshal(bz, dest)
	return dest, err
}

// checkError turns a non-2xx response into a types.ErrGateway carrying the decoded body
func checkError(path string, res *http.Response) error {
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}

	details := map[string]any{
		"path":   path,
		"status": res.StatusCode,
	}
	parsed, err := parseResponse(res, &gateway.ErrorResponse{})
	if err == nil {
		if parsed.Message != "" {
			details["message"] = parsed.Message
		}
		if parsed.TraceID != "" {
			details["trace_id"] = parsed.TraceID
		}
	}

	gwErr := types.WithDetails(types.ErrGateway, details)
	gwErr.Retriable = res.StatusCode >= http.StatusInternalServerError || res.StatusCode == http.StatusTooManyRequests
	return gwErr
}

func postRequest(ctx context.Context, url string, body any) (*http.Request, error) {
	bz, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(bz))
	if err != nil {
		return req, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) Url(path string) string {
	return c.baseUrl.JoinPath(path).String()
}

func post[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "waiting for gateway rate limiter")
		}
	}

	req, err := postRequest(ctx, c.Url(path), body)
	if err != nil {
		return nil, errors.Wrapf(err, "building request for %s", path)
	}
	if c.appName != "" {
		req.Header.Set(HeaderAppName, c.appName)
	}
	if c.appVersion != "" {
		req.Header.Set(HeaderAppVersion, c.appVersion)
	}

	st := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.metrics.observe(path, "error", time.Since(st))
		return nil, errors.Wrapf(err, "calling %s", path)
	}
	defer func(body io.ReadCloser) {
		if body != nil {
			_ = body.Close()
		}
	}(resp.Body)

	cost := time.Since(st)
	c.metrics.observe(path, strconv.Itoa(resp.StatusCode), cost)
	zap.S().Debugw("gateway request", "path", path, "status", resp.StatusCode, "cost", cost)

	if err := checkError(path, resp); err != nil {
		return nil, err
	}

	parsed, err := parseResponse(resp, new(T))
	if err != nil {
		return nil, errors.Wrapf(err, "decoding response of %s", path)
	}
	return parsed, nil
}

func (c *Client) EntityDetails(ctx context.Context, req *gateway.EntityDetailsRequest) (*gateway.EntityDetailsResponse, error) {
	return post[gateway.EntityDetailsResponse](ctx, c, gateway.PathEntityDetails, req)
}

func (c *Client) EntityFungiblesPage(ctx context.Context, req *gateway.EntityFungiblesPageRequest) (*gateway.EntityFungiblesPageResponse, error) {
	return post[gateway.EntityFungiblesPageResponse](ctx, c, gateway.PathEntityFungiblesPage, req)
}

func (c *Client) EntityNonFungiblesPage(ctx context.Context, req *gateway.EntityNonFungiblesPageRequest) (*gateway.EntityNonFungiblesPageResponse, error) {
	return post[gateway.EntityNonFungiblesPageResponse](ctx, c, gateway.PathEntityNonFungiblesPage, req)
}

func (c *Client) EntityFungibleResourceVaultPage(ctx context.Context, req *gateway.EntityFungibleResourceVaultsPageRequest) (*gateway.EntityFungibleResourceVaultsPageResponse, error) {
	return post[gateway.EntityFungibleResourceVaultsPageResponse](ctx, c, gateway.PathEntityFungibleVaultsPage, req)
}

func (c *Client) NonFungibleData(ctx context.Context, req *gateway.NonFungibleDataRequest) (*gateway.NonFungibleDataResponse, error) {
	return post[gateway.NonFungibleDataResponse](ctx, c, gateway.PathNonFungibleData, req)
}

func (c *Client) TransactionCommittedDetails(ctx context.Context, req *gateway.TransactionCommittedDetailsRequest) (*gateway.TransactionCommittedDetailsResponse, error) {
	return post[gateway.TransactionCommittedDetailsResponse](ctx, c, gateway.PathTransactionCommittedDetails, req)
}
