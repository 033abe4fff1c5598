// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package cache

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/tsukihub/tsukihub/internal/metrics"
)

// maxCachedBodySize limits the response bodies stored in the cache (2MB).
// Larger bodies pass through uncached.
const maxCachedBodySize = 2 * 1024 * 1024

// Transport is an http.RoundTripper that caches successful GET responses by
// URL. Only status 200 responses are stored, so upstream errors and 404s are
// retried on the next request.
type Transport struct {
	cache *LRUCache
	next  http.RoundTripper
}

// NewTransport wraps next with response caching. A nil next falls back to
// http.DefaultTransport.
func NewTransport(cache *LRUCache, next http.RoundTripper) *Transport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Transport{cache: cache, next: next}
}

// RoundTrip serves cached responses for GET requests and stores fresh
// 200 responses on the way back.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return t.next.RoundTrip(req)
	}

	key := req.URL.String()

	if body, ok := t.cache.Get(key); ok {
		metrics.RecordCacheHit()
		return cachedResponse(req, body), nil
	}
	metrics.RecordCacheMiss()

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCachedBodySize+1))
	closeErr := resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream body for caching: %w", err)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close upstream body: %w", closeErr)
	}

	if len(body) <= maxCachedBodySize {
		t.cache.Add(key, body)
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))
	resp.ContentLength = int64(len(body))
	return resp, nil
}

// cachedResponse builds a synthetic 200 response around a cached body.
func cachedResponse(req *http.Request, body []byte) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	header.Set("X-Cache", "HIT")

	return &http.Response{
		Status:        "200 OK",
		StatusCode:    http.StatusOK,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}
