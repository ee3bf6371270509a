// Package itemclient is a thin HTTP client for the item service.
//
// Every call returns the HTTP status and decoded body; 4xx and 5xx responses
// are results, not errors. An error means the request did not complete.
package itemclient

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

	"github.com/kelseyhightower/envconfig"
)

const (
	DefaultBaseURL = "http://localhost:8000"
	apiPrefix      = "/api/1"
	defaultTimeout = 10 * time.Second
)

// Env is read when New gets an empty base URL. An empty BaseURL means
// SERVICE_BASE_URL is unset and no live service was named.
type Env struct {
	BaseURL string `envconfig:"SERVICE_BASE_URL"`
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	var env Env
	err := envconfig.Process("", &env)
	return env, err
}

// Result is one HTTP exchange.
type Result struct {
	Status int
	// Body is the decoded JSON object. Non-JSON bodies are {"raw": "<body>"}
	// and empty bodies are {}.
	Body map[string]any
	Raw  []byte
}

// Decode unmarshals the raw body into v.
func (r *Result) Decode(v any) error {
	if err := json.Unmarshal(r.Raw, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Client talks to one service instance.
type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client. A nil client is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout. The client passed to
// WithHTTPClient is copied, not modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := http.Client{}
		if c.http != nil {
			hc = *c.http
		}
		hc.Timeout = d
		c.http = &hc
	}
}

// New returns a Client for baseURL. An empty baseURL falls back to
// SERVICE_BASE_URL and then to DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		if env, err := LoadEnv(); err == nil {
			baseURL = env.BaseURL
		}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service address the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// CreateItem posts payload as JSON. payload may be any value, including
// invalid ones, so that validation can be exercised; a []byte or
// json.RawMessage is sent verbatim.
func (c *Client) CreateItem(ctx context.Context, payload any) (*Result, error) {
	var body []byte
	switch p := payload.(type) {
	case []byte:
		body = p
	case json.RawMessage:
		body = p
	case string:
		body = []byte(p)
	default:
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
	}
	return c.do(ctx, http.MethodPost, apiPrefix+"/item", bytes.NewReader(body))
}

// GetItem fetches one item by id.
func (c *Client) GetItem(ctx context.Context, id string) (*Result, error) {
	return c.do(ctx, http.MethodGet, apiPrefix+"/item/"+url.PathEscape(id), nil)
}

// ListItems lists a seller's items. sellerID is sent as given.
func (c *Client) ListItems(ctx context.Context, sellerID string) (*Result, error) {
	q := url.Values{"sellerId": []string{sellerID}}
	return c.do(ctx, http.MethodGet, apiPrefix+"/items?"+q.Encode(), nil)
}

// GetStatistics fetches the statistics of one item.
func (c *Client) GetStatistics(ctx context.Context, id string) (*Result, error) {
	return c.do(ctx, http.MethodGet, apiPrefix+"/statistics/"+url.PathEscape(id), nil)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, path, err)
	}
	return &Result{Status: resp.StatusCode, Body: decodeBody(raw), Raw: raw}, nil
}

func decodeBody(raw []byte) map[string]any {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return map[string]any{"raw": string(raw)}
	}
	return m
}
