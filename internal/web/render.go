// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/tsukihub/tsukihub/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageNames lists every page template. Each is parsed together with the
// layout and partials into its own template set so pages can define blocks
// with the same name.
var pageNames = []string{
	"home",
	"listing",
	"anime",
	"manga",
	"character",
	"person",
	"club",
	"members",
	"roles",
	"staff",
	"subcards",
	"episodes",
	"episode",
	"reviews",
	"news",
	"forum",
	"pictures",
	"statistics",
	"videos",
	"genres",
	"seasons",
	"recommend",
	"notfound",
	"error",
}

// parseTemplates builds one template set per page.
func parseTemplates() (map[string]*template.Template, error) {
	funcs := template.FuncMap{
		"inc": func(i int) int { return i + 1 },
		"dec": func(i int) int { return i - 1 },
	}

	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(
			templateFS,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}

	return templates, nil
}

// render executes a page template into a buffer and writes it out with the
// given status. Buffering first means a template error can still become a
// clean 500 instead of a half-written page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data Page) {
	tmpl, ok := s.templates[page]
	if !ok {
		logging.Ctx(r.Context()).Error().Str("page", page).Msg("Unknown page template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("page", page).Msg("Template execution failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// renderNotFound renders the shared not-found page for a missing resource.
func (s *Server) renderNotFound(w http.ResponseWriter, r *http.Request, resource string) {
	s.render(w, r, http.StatusNotFound, "notfound", Page{
		Meta: notFoundMeta(resource),
		Data: resource,
	})
}

// renderError renders the shared upstream-failure page.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	logging.Ctx(r.Context()).Error().Err(err).Msg("Primary fetch failed")
	s.render(w, r, http.StatusBadGateway, "error", Page{
		Meta: staticMeta("Something Went Wrong", "The upstream metadata service is unavailable."),
	})
}
