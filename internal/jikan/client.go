// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

/*
client.go - Jikan REST API Client

Typed HTTP client for the Jikan v4 API (https://api.jikan.moe/v4). Every
request waits a fixed, configurable delay before being issued so the service
stays under the upstream's rate limits without coordinating across requests.

All responses arrive as {"data": ...} envelopes, optionally with a sibling
"pagination" block for list endpoints. The generic helpers getData and
getList unwrap those envelopes into typed values.
*/

package jikan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tsukihub/tsukihub/internal/config"
	"github.com/tsukihub/tsukihub/internal/metrics"
)

// ErrNotFound indicates the requested resource does not exist upstream.
// Callers decide whether a missing resource is fatal for the page being
// rendered or merely leaves a section empty.
var ErrNotFound = errors.New("jikan: resource not found")

// maxErrorBodySize limits how much of an error response body is read
// for inclusion in error messages (64KB).
const maxErrorBodySize = 64 * 1024

// Client is a Jikan v4 API client. It is safe for concurrent use; the
// per-request delay applies to each request independently, so concurrent
// fetches wait in parallel rather than queueing behind one another.
type Client struct {
	baseURL    string
	httpClient *http.Client
	delay      time.Duration
}

// New creates a Jikan client from configuration. The transport, when
// non-nil, is installed on the underlying http.Client so a caching
// round-tripper can be layered in.
func New(cfg config.JikanConfig, transport http.RoundTripper) *Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	if transport != nil {
		httpClient.Transport = transport
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		delay:      cfg.RequestDelay,
	}
}

// get waits the configured delay, issues a GET request against the API and
// decodes the response body into out. A 404 maps to ErrNotFound; any other
// non-2xx status becomes an error carrying the status and a bounded excerpt
// of the body.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.waitDelay(ctx); err != nil {
		return err
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(path, "error", time.Since(start))
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.RecordUpstreamRequest(path, strconv.Itoa(resp.StatusCode), time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		body := readBodyForError(resp.Body)
		return fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, path, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}

// waitDelay sleeps for the fixed pre-request delay, returning early with the
// context's error if it is canceled first.
func (c *Client) waitDelay(ctx context.Context) error {
	if c.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(c.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// readBodyForError reads up to maxErrorBodySize bytes of a response body for
// inclusion in an error message.
func readBodyForError(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return fmt.Sprintf("<failed to read body: %v>", err)
	}
	if len(body) == 0 {
		return "<empty body>"
	}
	return string(body)
}

// dataEnvelope is the {"data": ...} wrapper around single-entity responses.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// listEnvelope is the {"data": [...], "pagination": {...}} wrapper around
// list responses.
type listEnvelope[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// getData fetches a single-entity endpoint and unwraps its data envelope.
func getData[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var envelope dataEnvelope[T]
	if err := c.get(ctx, path, query, &envelope); err != nil {
		var zero T
		return zero, err
	}
	return envelope.Data, nil
}

// getList fetches a list endpoint and unwraps its data and pagination.
func getList[T any](ctx context.Context, c *Client, path string, query url.Values) (List[T], error) {
	var envelope listEnvelope[T]
	if err := c.get(ctx, path, query, &envelope); err != nil {
		return List[T]{}, err
	}
	return List[T]{Items: envelope.Data, Pagination: envelope.Pagination}, nil
}

// pageQuery builds a query carrying the page parameter when page > 0.
func pageQuery(page int) url.Values {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	return query
}
