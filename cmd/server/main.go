// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

/*
Tsukihub server entry point.

Startup order:
 1. Load configuration (defaults, optional YAML file, environment)
 2. Initialize logging
 3. Build the Jikan client, optionally behind the response cache
 4. Build the web server and wrap it in the supervision tree
 5. Serve until SIGINT/SIGTERM, then shut down gracefully
*/
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tsukihub/tsukihub/internal/cache"
	"github.com/tsukihub/tsukihub/internal/config"
	"github.com/tsukihub/tsukihub/internal/jikan"
	"github.com/tsukihub/tsukihub/internal/logging"
	"github.com/tsukihub/tsukihub/internal/recommend"
	"github.com/tsukihub/tsukihub/internal/supervisor"
	"github.com/tsukihub/tsukihub/internal/supervisor/services"
	"github.com/tsukihub/tsukihub/internal/web"
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("jikan_base_url", cfg.Jikan.BaseURL).
		Bool("cache", cfg.Cache.Enabled).
		Bool("recommend", cfg.Recommend.Enabled).
		Msg("Starting Tsukihub")

	var transport http.RoundTripper
	var responseCache *cache.LRUCache
	if cfg.Cache.Enabled {
		responseCache = cache.NewLRUCache(cfg.Cache.MaxEntries, cfg.Cache.TTL)
		transport = cache.NewTransport(responseCache, nil)
	}

	client := jikan.New(cfg.Jikan, transport)
	completer := recommend.New(cfg.Recommend)

	server, err := web.NewServer(cfg, client, completer)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build web server")
	}

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      server.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	slogger := slog.New(logging.NewSlogHandler())
	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout

	tree := supervisor.NewTree(slogger, treeConfig)
	tree.AddWebService(services.NewHTTPServerService(httpServer, cfg.Server.ShutdownTimeout))
	if responseCache != nil {
		tree.AddMaintenanceService(services.NewCacheJanitor(responseCache, cfg.Cache.TTL))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = tree.Serve(ctx)
	if err != nil && ctx.Err() == nil {
		logging.Error().Err(err).Msg("Supervisor tree stopped unexpectedly")
		os.Exit(1)
	}

	if report, reportErr := tree.UnstoppedServiceReport(); reportErr == nil && len(report) > 0 {
		for _, svc := range report {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop within the shutdown timeout")
		}
	}

	logging.Info().Msg("Shutdown complete")
}
