// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package services

import (
	"context"
	"time"

	"github.com/tsukihub/tsukihub/internal/cache"
	"github.com/tsukihub/tsukihub/internal/logging"
)

// CacheJanitor periodically sweeps expired entries out of the response
// cache. The cache expires lazily on access, so without the janitor entries
// for pages nobody revisits would sit in memory until evicted by capacity.
type CacheJanitor struct {
	cache    *cache.LRUCache
	interval time.Duration
}

// NewCacheJanitor creates a janitor sweeping the given cache every interval.
func NewCacheJanitor(c *cache.LRUCache, interval time.Duration) *CacheJanitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheJanitor{cache: c, interval: interval}
}

// Serve implements suture.Service. It runs until the context is canceled.
func (j *CacheJanitor) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := j.cache.CleanupExpired(); removed > 0 {
				logging.Debug().
					Int("removed", removed).
					Int("remaining", j.cache.Len()).
					Msg("Swept expired cache entries")
			}
		}
	}
}

// String implements fmt.Stringer for logging.
func (j *CacheJanitor) String() string {
	return "cache-janitor"
}
