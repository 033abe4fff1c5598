// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

// Package config holds the application configuration and its Koanf-based loader.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config is the root configuration for the Tsukihub server.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Jikan     JikanConfig     `koanf:"jikan"`
	Cache     CacheConfig     `koanf:"cache"`
	Recommend RecommendConfig `koanf:"recommend"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// JikanConfig configures the upstream metadata API client.
type JikanConfig struct {
	// BaseURL is the root of the Jikan REST API, without a trailing slash.
	BaseURL string `koanf:"base_url"`

	// RequestDelay is a fixed pause applied before every upstream request.
	// It is a blunt self-throttle to respect Jikan's public rate limit:
	// each calling request pauses independently, so the aggregate request
	// rate is not bounded under concurrent load.
	RequestDelay time.Duration `koanf:"request_delay"`

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `koanf:"timeout"`
}

// CacheConfig configures the in-memory upstream response cache.
// The cache sits at the transport layer; fetchers stay cache-unaware.
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	TTL        time.Duration `koanf:"ttl"`
	MaxEntries int           `koanf:"max_entries"`
}

// RecommendConfig configures the external text-completion collaborator
// behind the recommendations form. When disabled the form routes return 404.
type RecommendConfig struct {
	Enabled bool          `koanf:"enabled"`
	URL     string        `koanf:"url"`
	Model   string        `koanf:"model"`
	Timeout time.Duration `koanf:"timeout"`
}

// RateLimitConfig configures inbound per-IP rate limiting on page routes.
type RateLimitConfig struct {
	Requests int           `koanf:"requests"`
	Window   time.Duration `koanf:"window"`
	Disabled bool          `koanf:"disabled"`
}

// LoggingConfig configures the zerolog-backed logging package.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Validate checks the configuration for values that would prevent the
// server from operating. It is called by LoadWithKoanf after all layers
// have been applied.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Jikan.BaseURL == "" {
		return fmt.Errorf("jikan.base_url must not be empty")
	}
	if _, err := url.Parse(c.Jikan.BaseURL); err != nil {
		return fmt.Errorf("jikan.base_url is not a valid URL: %w", err)
	}
	if c.Jikan.RequestDelay < 0 {
		return fmt.Errorf("jikan.request_delay must not be negative")
	}
	if c.Jikan.Timeout <= 0 {
		return fmt.Errorf("jikan.timeout must be positive")
	}

	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive when the cache is enabled")
		}
		if c.Cache.MaxEntries <= 0 {
			return fmt.Errorf("cache.max_entries must be positive when the cache is enabled")
		}
	}

	if c.Recommend.Enabled {
		if c.Recommend.URL == "" {
			return fmt.Errorf("recommend.url must be set when recommend.enabled is true")
		}
		if _, err := url.Parse(c.Recommend.URL); err != nil {
			return fmt.Errorf("recommend.url is not a valid URL: %w", err)
		}
	}

	if !c.RateLimit.Disabled {
		if c.RateLimit.Requests <= 0 {
			return fmt.Errorf("rate_limit.requests must be positive")
		}
		if c.RateLimit.Window <= 0 {
			return fmt.Errorf("rate_limit.window must be positive")
		}
	}

	return nil
}
