// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

package broker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skillmesh/skillmesh-core/httperr"
	"github.com/skillmesh/skillmesh-core/manifest"
	httpvalidation "github.com/skillmesh/skillmesh-core/validation/http"
)

// maxResponseSize caps broker response bodies (4MB). A misbehaving broker
// must not be able to exhaust memory on the client.
const maxResponseSize int64 = 4 * 1024 * 1024

// defaultRequestTimeout bounds each broker HTTP call when the caller does
// not supply a custom client.
const defaultRequestTimeout = 30 * time.Second

// Compile-time interface check.
var _ Gateway = (*Client)(nil)

// Client is the HTTP implementation of Gateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
	headers    map[string]string

	// newIdempotencyKey generates the Idempotency-Key header value for
	// publish requests. Override in tests for deterministic requests.
	newIdempotencyKey func() string
}

// ClientOption configures a Client.
type ClientOption func(*Client) error

// WithHTTPClient replaces the default HTTP client, e.g. to adjust timeouts
// or inject a transport.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) error {
		c.httpClient = hc
		return nil
	}
}

// WithHeader adds a header to every broker request, typically an API key.
// The name and value are validated against RFC 7230 to keep configuration
// mistakes from turning into header injection.
func WithHeader(name, value string) ClientOption {
	return func(c *Client) error {
		if err := httpvalidation.ValidateHeaderName(name); err != nil {
			return fmt.Errorf("broker header %q: %w", name, err)
		}
		if err := httpvalidation.ValidateHeaderValue(value); err != nil {
			return fmt.Errorf("broker header %q: %w", name, err)
		}
		c.headers[name] = value
		return nil
	}
}

// NewClient creates a broker client for the given base URL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	if err := httpvalidation.ValidateBaseURL(baseURL); err != nil {
		return nil, fmt.Errorf("broker base URL: %w", err)
	}

	c := &Client{
		baseURL:           strings.TrimRight(baseURL, "/"),
		headers:           make(map[string]string),
		newIdempotencyKey: uuid.NewString,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}

	return c, nil
}

// ListSkills implements Gateway.
func (c *Client) ListSkills(ctx context.Context, filter ListFilter) (*ListResult, error) {
	q := url.Values{}
	if filter.Query != "" {
		q.Set("query", filter.Query)
	}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.Tag != "" {
		q.Set("tag", filter.Tag)
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Featured {
		q.Set("featured", "true")
	}

	endpoint := c.baseURL + "/skills"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var out ListResult
	if err := c.do(ctx, http.MethodGet, endpoint, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QuotePublish implements Gateway.
func (c *Client) QuotePublish(ctx context.Context, m *manifest.SkillManifest) (*Quote, error) {
	var out Quote
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/skills/quote", m, nil, &out); err != nil {
		return nil, err
	}
	if out.QuoteID == "" {
		return nil, fmt.Errorf("broker quote response missing quoteId")
	}
	return &out, nil
}

// Publish implements Gateway.
func (c *Client) Publish(ctx context.Context, m *manifest.SkillManifest, quoteID string) (*PublishReceipt, error) {
	body := struct {
		Manifest *manifest.SkillManifest `json:"manifest"`
		QuoteID  string                  `json:"quoteId"`
	}{Manifest: m, QuoteID: quoteID}

	// Publishing costs money; the idempotency key keeps a retried request
	// from being billed twice.
	extra := map[string]string{"Idempotency-Key": c.newIdempotencyKey()}

	var out PublishReceipt
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/skills/publish", &body, extra, &out); err != nil {
		return nil, err
	}
	if out.JobID == "" {
		return nil, fmt.Errorf("broker publish response missing jobId")
	}
	return &out, nil
}

// GetJob implements Gateway.
func (c *Client) GetJob(ctx context.Context, jobID string) (*JobStatus, error) {
	if jobID == "" {
		return nil, fmt.Errorf("job id cannot be empty")
	}

	var out JobStatus
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/jobs/"+url.PathEscape(jobID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one broker request, encoding body as JSON when non-nil and
// decoding the response into out. Non-2xx responses come back as
// httperr-coded errors so callers can distinguish client mistakes from
// broker outages if they care; the registry treats both as unavailable.
func (c *Client) do(ctx context.Context, method, endpoint string, body any, extraHeaders map[string]string, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding broker request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("building broker request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for name, value := range c.headers {
		req.Header.Set(name, value)
	}
	for name, value := range extraHeaders {
		req.Header.Set(name, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("broker request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("reading broker response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return httperr.New(
			fmt.Sprintf("broker returned %s: %s", resp.Status, summarizeBody(data)),
			resp.StatusCode,
		)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding broker response: %w", err)
	}
	return nil
}

// summarizeBody renders a short, single-line view of an error body.
func summarizeBody(data []byte) string {
	const maxLen = 256
	s := strings.Join(strings.Fields(string(data)), " ")
	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	if s == "" {
		s = "(empty body)"
	}
	return s
}
