// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// parseID reads a positive integer URL parameter. ok is false for anything
// that is not a positive integer, which callers turn into a not-found page.
func parseID(r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// urlParam reads a string URL parameter.
func urlParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}
