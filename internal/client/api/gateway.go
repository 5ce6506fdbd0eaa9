package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/hrmportal/internal/common"
	"github.com/dmitrijs2005/hrmportal/internal/logging"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

// Session is the part of the session store the gateway depends on.
type Session interface {
	Token() string
	// ExpireToken tears the session down after the backend rejected token,
	// unless a newer login already replaced it.
	ExpireToken(ctx context.Context, token string) bool
}

// Options describe a single call. Everything is optional.
type Options struct {
	// Method overrides the endpoint's method.
	Method string
	// Path overrides the endpoint path. Absolute URLs are used as is;
	// anything else is appended to the base URL.
	Path string
	// Params fill the {name} placeholders of the endpoint path.
	Params map[string]string
	// Query is appended to the URL, encoded.
	Query url.Values
	// RawQuery is appended to the URL verbatim.
	RawQuery string
	// JSON is marshalled into the request body. Mutually exclusive with Form.
	JSON any
	// Form is sent as multipart/form-data.
	Form    *Form
	Headers http.Header
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	// RateLimit is the maximum number of calls per second; zero disables
	// throttling.
	RateLimit float64
}

type Gateway struct {
	baseURL   string
	endpoints *Endpoints
	session   Session
	http      *http.Client
	limiter   *rate.Limiter
	metrics   *Metrics
	log       logging.Logger
}

type Option func(*Gateway)

func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.http = c }
}

func WithEndpoints(e *Endpoints) Option {
	return func(g *Gateway) { g.endpoints = e }
}

func WithMetrics(m *Metrics) Option {
	return func(g *Gateway) { g.metrics = m }
}

func NewGateway(cfg Config, session Session, log logging.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		endpoints: DefaultEndpoints(),
		session:   session,
		http:      &http.Client{Timeout: cfg.Timeout},
		log:       log,
	}

	if cfg.RateLimit > 0 {
		burst := int(cfg.RateLimit)
		if burst < 1 {
			burst = 1
		}
		g.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	for _, o := range opts {
		o(g)
	}
	return g
}

// Call performs one request and never fails with a Go error: every outcome,
// including a panic while building the request, is reported in the Result.
func (g *Gateway) Call(ctx context.Context, key Key, opts Options) (res *Result) {

	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			res = failure(ErrConfig, 0, fmt.Sprintf("request %s: %v", key, p), nil)
		}
		g.metrics.observe(g.metricLabel(key), outcome(res.Err), time.Since(start))
	}()

	ep, target, err := g.resolve(key, opts)
	if err != nil {
		g.log.Warn(ctx, "cannot resolve endpoint", "endpoint", key, "error", err)
		return failure(ErrConfig, 0, err.Error(), err)
	}

	body, contentType, err := encodeBody(opts)
	if err != nil {
		return failure(ErrConfig, 0, err.Error(), err)
	}

	method := opts.Method
	if method == "" {
		method = ep.Method
	}
	if method == "" {
		method = http.MethodGet
		if body != nil {
			method = http.MethodPost
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return failure(ErrConfig, 0, err.Error(), err)
	}

	for k, vs := range opts.Headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if contentType != "" {
		req.Header.Set(common.ContentTypeHeaderName, contentType)
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	req.Header.Del(common.AuthorizationHeaderName)
	var sent string
	if !ep.Anonymous && g.session != nil {
		if sent = g.session.Token(); sent != "" {
			req.Header.Set(common.AuthorizationHeaderName, "Bearer "+sent)
		}
	}

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return failure(ErrNetwork, 0, err.Error(), err)
		}
	}

	log := g.log.With("endpoint", key, "method", method, "request_id", req.Header.Get(common.RequestIDHeaderName))
	log.Debug(ctx, "sending request", "url", target)

	resp, err := g.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return failure(ErrNetwork, 0, err.Error(), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, "reading response failed", "status", resp.StatusCode, "error", err)
		return failure(ErrNetwork, resp.StatusCode, err.Error(), err)
	}

	res = g.handleResponse(ctx, ep, sent, resp.StatusCode, data)
	if res.Err != nil {
		log.Info(ctx, "request unsuccessful", "status", resp.StatusCode, "error", res.Err.Error())
	} else {
		log.Debug(ctx, "request done", "status", resp.StatusCode)
	}
	return res
}

// handleResponse maps a response to a Result. sent is the token the request
// carried; only that token is expired on a 401.
func (g *Gateway) handleResponse(ctx context.Context, ep Endpoint, sent string, status int, data []byte) *Result {

	if status >= 200 && status < 300 {
		if status == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
			return &Result{Status: status}
		}
		if !json.Valid(data) {
			return failure(ErrServer, status, "invalid response body", nil)
		}
		return &Result{Status: status, Data: json.RawMessage(data)}
	}

	if ep.Anonymous {
		return failure(ErrAuth, status, serverMessage(data), nil)
	}

	if status == http.StatusUnauthorized {
		if g.session != nil && !g.session.ExpireToken(ctx, sent) {
			g.log.Info(ctx, "401 for a token that is no longer current", "endpoint", ep.Key)
		}
		return failure(ErrSessionExpired, status, sessionExpiredMessage, nil)
	}

	return failure(ErrServer, status, serverMessage(data), nil)
}

func (g *Gateway) metricLabel(key Key) string {
	if _, ok := g.endpoints.Lookup(key); ok {
		return string(key)
	}
	return overrideLabel
}

// resolve picks the endpoint descriptor and builds the absolute URL.
func (g *Gateway) resolve(key Key, opts Options) (Endpoint, string, error) {

	ep, known := g.endpoints.Lookup(key)
	if !known {
		// Calls by override keep the key for logging and metrics.
		ep = Endpoint{Key: key, Anonymous: key == KeyLogin}
	}

	var target string
	switch {
	case isAbsolute(opts.Path):
		target = opts.Path
	case opts.Path != "":
		if g.baseURL == "" {
			return ep, "", fmt.Errorf("no base URL for %q", opts.Path)
		}
		target = g.baseURL + "/" + strings.TrimLeft(opts.Path, "/")
	case known:
		if g.baseURL == "" {
			return ep, "", fmt.Errorf("no base URL for endpoint %q", key)
		}
		path, err := expand(ep.Path, opts.Params)
		if err != nil {
			return ep, "", fmt.Errorf("endpoint %q: %w", key, err)
		}
		target = g.baseURL + path
	default:
		return ep, "", fmt.Errorf("unknown endpoint %q", key)
	}

	var extra []string
	if len(opts.Query) > 0 {
		extra = append(extra, opts.Query.Encode())
	}
	if opts.RawQuery != "" {
		extra = append(extra, opts.RawQuery)
	}
	if len(extra) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + strings.Join(extra, "&")
	}

	if _, err := url.Parse(target); err != nil {
		return ep, "", err
	}
	return ep, target, nil
}

func isAbsolute(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

func encodeBody(opts Options) (io.Reader, string, error) {
	switch {
	case opts.JSON != nil && opts.Form != nil:
		return nil, "", fmt.Errorf("both JSON and form body given")
	case opts.Form != nil:
		b, ct, err := opts.Form.encode()
		if err != nil {
			return nil, "", fmt.Errorf("encode form: %w", err)
		}
		return bytes.NewReader(b), ct, nil
	case opts.JSON != nil:
		b, err := json.Marshal(opts.JSON)
		if err != nil {
			return nil, "", fmt.Errorf("encode body: %w", err)
		}
		return bytes.NewReader(b), "application/json", nil
	}
	return nil, "", nil
}

// serverMessage picks the human-readable reason out of an error body.
func serverMessage(data []byte) string {
	if !gjson.ValidBytes(data) {
		return requestFailedMessage
	}
	for _, path := range []string{"message", "detail", "detail.0.msg", "error"} {
		if r := gjson.GetBytes(data, path); r.Type == gjson.String && r.Str != "" {
			return r.Str
		}
	}
	return requestFailedMessage
}
