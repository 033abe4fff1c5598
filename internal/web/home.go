// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package web

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/tsukihub/tsukihub/internal/jikan"
)

// homeSectionSize caps how many tiles each home section shows.
const homeSectionSize = 10

// HomeData is the body data of the home page.
type HomeData struct {
	Trending []Card
	Popular  []Card
	Upcoming []Card
}

// handleHome renders the landing page: currently airing, all-time popular
// and upcoming anime, fetched in parallel. A title appearing in more than
// one list is shown only in the highest-priority section, trending first.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var airing, popular, upcoming jikan.List[jikan.Anime]

	g, gctx := errgroup.WithContext(ctx)
	g.Go(secondaryInto(gctx, "trending", &airing, func() (jikan.List[jikan.Anime], error) {
		return s.jikan.TopAnime(gctx, "airing", 1)
	}))
	g.Go(secondaryInto(gctx, "popular", &popular, func() (jikan.List[jikan.Anime], error) {
		return s.jikan.TopAnime(gctx, "bypopularity", 1)
	}))
	g.Go(secondaryInto(gctx, "upcoming", &upcoming, func() (jikan.List[jikan.Anime], error) {
		return s.jikan.TopAnime(gctx, "upcoming", 1)
	}))
	_ = g.Wait()

	seen := make(map[int]bool)
	data := HomeData{
		Trending: dedupAnimeCards(airing.Items, seen),
		Popular:  dedupAnimeCards(popular.Items, seen),
		Upcoming: dedupAnimeCards(upcoming.Items, seen),
	}

	s.render(w, r, http.StatusOK, "home", Page{
		Meta:    staticMeta("Anime & Manga Browser", "Browse anime, manga, characters and more."),
		Section: "home",
		Data:    data,
	})
}

// dedupAnimeCards collapses anime into cards, skipping IDs already claimed
// by an earlier section and capping the section size.
func dedupAnimeCards(items []jikan.Anime, seen map[int]bool) []Card {
	cards := make([]Card, 0, homeSectionSize)
	for _, a := range items {
		if seen[a.MalID] {
			continue
		}
		seen[a.MalID] = true
		cards = append(cards, animeCard(a))
		if len(cards) == homeSectionSize {
			break
		}
	}
	return cards
}
