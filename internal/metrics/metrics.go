// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

// Package metrics defines the Prometheus instrumentation for Tsukihub.
//
// All collectors are registered on the default registry via promauto and
// exposed on /metrics by the HTTP server.
package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PageRequestsTotal counts rendered page requests by route pattern and status.
	PageRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tsukihub_page_requests_total",
			Help: "Total number of page requests by route and status code",
		},
		[]string{"route", "status"},
	)

	// PageRequestDuration observes page render latency by route pattern.
	PageRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tsukihub_page_request_duration_seconds",
			Help:    "Page request duration in seconds by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// ActiveRequests tracks in-flight page requests.
	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tsukihub_active_requests",
			Help: "Number of page requests currently being served",
		},
	)

	// UpstreamRequestsTotal counts Jikan API requests by endpoint and status.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tsukihub_upstream_requests_total",
			Help: "Total number of Jikan API requests by endpoint and status code",
		},
		[]string{"endpoint", "status"},
	)

	// UpstreamRequestDuration observes Jikan API latency by endpoint. The
	// pre-request delay is included, since that is the latency pages see.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tsukihub_upstream_request_duration_seconds",
			Help:    "Jikan API request duration in seconds by endpoint",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	// CacheHitsTotal counts upstream responses served from the cache.
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tsukihub_cache_hits_total",
			Help: "Total number of upstream responses served from cache",
		},
	)

	// CacheMissesTotal counts upstream requests that bypassed the cache.
	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tsukihub_cache_misses_total",
			Help: "Total number of upstream requests not served from cache",
		},
	)
)

// RecordPageRequest records one served page request.
func RecordPageRequest(route, status string, duration time.Duration) {
	PageRequestsTotal.WithLabelValues(route, status).Inc()
	PageRequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordUpstreamRequest records one Jikan API request. Numeric path segments
// are collapsed so MAL IDs do not explode label cardinality.
func RecordUpstreamRequest(path, status string, duration time.Duration) {
	endpoint := normalizeEndpoint(path)
	UpstreamRequestsTotal.WithLabelValues(endpoint, status).Inc()
	UpstreamRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordCacheHit records one cached upstream response.
func RecordCacheHit() {
	CacheHitsTotal.Inc()
}

// RecordCacheMiss records one upstream request that missed the cache.
func RecordCacheMiss() {
	CacheMissesTotal.Inc()
}

// normalizeEndpoint replaces numeric path segments with ":id".
func normalizeEndpoint(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if segment != "" && isDigits(segment) {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
