// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

/*
server.go - HTTP Server and Routing

Server wires the Jikan client, the recommendation collaborator and the
template sets behind a chi router. Every page route runs through request ID
assignment, Prometheus instrumentation and per-IP rate limiting.
*/

package web

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/tsukihub/tsukihub/internal/config"
	"github.com/tsukihub/tsukihub/internal/jikan"
	"github.com/tsukihub/tsukihub/internal/logging"
	"github.com/tsukihub/tsukihub/internal/middleware"
	"github.com/tsukihub/tsukihub/internal/recommend"
)

// Server holds the dependencies of the page handlers.
type Server struct {
	cfg       *config.Config
	jikan     *jikan.Client
	completer recommend.Completer
	templates map[string]*template.Template
	validate  *validator.Validate
	logger    zerolog.Logger
}

// NewServer creates a Server with parsed templates and a validator instance.
func NewServer(cfg *config.Config, client *jikan.Client, completer recommend.Completer) (*Server, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Server{
		cfg:       cfg,
		jikan:     client,
		completer: completer,
		templates: templates,
		validate:  validator.New(),
		logger:    logging.With().Str("component", "web").Logger(),
	}, nil
}

// Routes builds the chi router with the full route table.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)

	// Operational endpoints bypass rate limiting.
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if !s.cfg.RateLimit.Disabled {
			r.Use(httprate.LimitByIP(s.cfg.RateLimit.Requests, s.cfg.RateLimit.Window))
		}

		r.Get("/", s.handleHome)

		r.Route("/anime/{id}", func(r chi.Router) {
			r.Get("/", s.handleAnime)
			r.Get("/characters", s.handleAnimeCharacters)
			r.Get("/staff", s.handleAnimeStaff)
			r.Get("/episodes", s.handleAnimeEpisodes)
			r.Get("/episodes/{episode}", s.handleAnimeEpisode)
			r.Get("/news", s.handleAnimeNews)
			r.Get("/forum", s.handleAnimeForum)
			r.Get("/videos", s.handleAnimeVideos)
			r.Get("/pictures", s.handleAnimePictures)
			r.Get("/statistics", s.handleAnimeStatistics)
			r.Get("/recommendations", s.handleAnimeRecommendations)
			r.Get("/reviews", s.handleAnimeReviews)
		})

		r.Route("/manga/{id}", func(r chi.Router) {
			r.Get("/", s.handleManga)
			r.Get("/characters", s.handleMangaCharacters)
			r.Get("/news", s.handleMangaNews)
			r.Get("/forum", s.handleMangaForum)
			r.Get("/pictures", s.handleMangaPictures)
			r.Get("/statistics", s.handleMangaStatistics)
			r.Get("/recommendations", s.handleMangaRecommendations)
			r.Get("/reviews", s.handleMangaReviews)
		})

		r.Route("/characters/{id}", func(r chi.Router) {
			r.Get("/", s.handleCharacter)
			r.Get("/anime", s.handleCharacterAnime)
			r.Get("/manga", s.handleCharacterManga)
			r.Get("/voices", s.handleCharacterVoices)
			r.Get("/pictures", s.handleCharacterPictures)
		})

		r.Route("/people/{id}", func(r chi.Router) {
			r.Get("/", s.handlePerson)
			r.Get("/anime", s.handlePersonAnime)
			r.Get("/manga", s.handlePersonManga)
			r.Get("/voices", s.handlePersonVoices)
			r.Get("/pictures", s.handlePersonPictures)
		})

		r.Route("/clubs/{id}", func(r chi.Router) {
			r.Get("/", s.handleClub)
			r.Get("/members", s.handleClubMembers)
		})

		r.Get("/genres", s.handleGenres)
		r.Get("/genres/anime/{id}", s.handleGenreAnime)
		r.Get("/genres/manga/{id}", s.handleGenreManga)

		r.Get("/seasons", s.handleSeasonIndex)
		r.Get("/seasons/now", s.handleSeasonNow)
		r.Get("/seasons/upcoming", s.handleSeasonUpcoming)
		r.Get("/seasons/{year}/{season}", s.handleSeason)

		r.Get("/top/{kind}", s.handleTop)

		r.Get("/search", s.handleSearch)

		r.Get("/recommendations", s.handleRecommendForm)
		r.Post("/recommendations", s.handleRecommendSubmit)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		s.renderNotFound(w, req, "Page")
	})

	return r
}

// handleHealth is the liveness endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
