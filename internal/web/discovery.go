// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tsukihub/tsukihub/internal/jikan"
)

// ListingData is the body data of the generic card-grid listing page.
type ListingData struct {
	Heading string
	Cards   []Card
	Pager   Pager
}

// GenresData is the body data of the genre index page.
type GenresData struct {
	AnimeGenres []jikan.Genre
	MangaGenres []jikan.Genre
}

// handleGenres renders both genre taxonomies side by side.
func (s *Server) handleGenres(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var data GenresData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(secondaryInto(gctx, "anime genres", &data.AnimeGenres, func() ([]jikan.Genre, error) {
		return s.jikan.AnimeGenres(gctx)
	}))
	g.Go(secondaryInto(gctx, "manga genres", &data.MangaGenres, func() ([]jikan.Genre, error) {
		return s.jikan.MangaGenres(gctx)
	}))
	_ = g.Wait()

	s.render(w, r, http.StatusOK, "genres", Page{
		Meta:    staticMeta("Genres", "Browse anime and manga by genre."),
		Section: "genres",
		Data:    data,
	})
}

// handleGenreAnime renders one page of anime in a genre.
func (s *Server) handleGenreAnime(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		s.renderNotFound(w, r, "Genre")
		return
	}
	page := parsePage(r)

	listing := secondary(r.Context(), "genre anime", func() (jikan.List[jikan.Anime], error) {
		return s.jikan.AnimeByGenre(r.Context(), id, page)
	})

	s.render(w, r, http.StatusOK, "listing", Page{
		Meta:    staticMeta("Anime by Genre", "Anime in the selected genre."),
		Section: "genres",
		Data: ListingData{
			Heading: "Anime by Genre",
			Cards:   mapCards(listing.Items, animeCard),
			Pager:   cappedPager(listing.Pagination, fmt.Sprintf("/genres/anime/%d?", id)),
		},
	})
}

// handleGenreManga renders one page of manga in a genre.
func (s *Server) handleGenreManga(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		s.renderNotFound(w, r, "Genre")
		return
	}
	page := parsePage(r)

	listing := secondary(r.Context(), "genre manga", func() (jikan.List[jikan.Manga], error) {
		return s.jikan.MangaByGenre(r.Context(), id, page)
	})

	s.render(w, r, http.StatusOK, "listing", Page{
		Meta:    staticMeta("Manga by Genre", "Manga in the selected genre."),
		Section: "genres",
		Data: ListingData{
			Heading: "Manga by Genre",
			Cards:   mapCards(listing.Items, mangaCard),
			Pager:   cappedPager(listing.Pagination, fmt.Sprintf("/genres/manga/%d?", id)),
		},
	})
}

// SeasonIndexData is the body data of the season archive page.
type SeasonIndexData struct {
	Years []jikan.SeasonYear
}

// handleSeasonIndex renders the archive of years and their seasons.
func (s *Server) handleSeasonIndex(w http.ResponseWriter, r *http.Request) {
	years := secondary(r.Context(), "season index", func() ([]jikan.SeasonYear, error) {
		return s.jikan.SeasonIndex(r.Context())
	})

	s.render(w, r, http.StatusOK, "seasons", Page{
		Meta:    staticMeta("Seasons", "Browse anime by broadcast season."),
		Section: "seasons",
		Data:    SeasonIndexData{Years: years},
	})
}

// handleSeasonNow renders the currently airing season.
func (s *Server) handleSeasonNow(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r)

	listing := secondary(r.Context(), "season now", func() (jikan.List[jikan.Anime], error) {
		return s.jikan.SeasonNow(r.Context(), page)
	})

	s.render(w, r, http.StatusOK, "listing", Page{
		Meta:    staticMeta("This Season", "Anime airing this season."),
		Section: "seasons",
		Data: ListingData{
			Heading: "This Season",
			Cards:   mapCards(listing.Items, animeCard),
			Pager:   cappedPager(listing.Pagination, "/seasons/now?"),
		},
	})
}

// handleSeasonUpcoming renders next season's announced anime.
func (s *Server) handleSeasonUpcoming(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r)

	listing := secondary(r.Context(), "season upcoming", func() (jikan.List[jikan.Anime], error) {
		return s.jikan.SeasonUpcoming(r.Context(), page)
	})

	s.render(w, r, http.StatusOK, "listing", Page{
		Meta:    staticMeta("Upcoming", "Announced upcoming anime."),
		Section: "seasons",
		Data: ListingData{
			Heading: "Upcoming",
			Cards:   mapCards(listing.Items, animeCard),
			Pager:   cappedPager(listing.Pagination, "/seasons/upcoming?"),
		},
	})
}

// validSeasons are the season names the upstream API understands.
var validSeasons = map[string]bool{
	"winter": true,
	"spring": true,
	"summer": true,
	"fall":   true,
}

// handleSeason renders a specific year and season.
func (s *Server) handleSeason(w http.ResponseWriter, r *http.Request) {
	year, ok := parseID(r, "year")
	if !ok {
		s.renderNotFound(w, r, "Season")
		return
	}
	season := strings.ToLower(urlParam(r, "season"))
	if !validSeasons[season] {
		s.renderNotFound(w, r, "Season")
		return
	}
	page := parsePage(r)

	listing := secondary(r.Context(), "season", func() (jikan.List[jikan.Anime], error) {
		return s.jikan.Season(r.Context(), year, season, page)
	})

	heading := fmt.Sprintf("%s %d", strings.ToUpper(season[:1])+season[1:], year)
	s.render(w, r, http.StatusOK, "listing", Page{
		Meta:    staticMeta(heading, fmt.Sprintf("Anime of the %s %d season.", season, year)),
		Section: "seasons",
		Data: ListingData{
			Heading: heading,
			Cards:   mapCards(listing.Items, animeCard),
			Pager:   cappedPager(listing.Pagination, fmt.Sprintf("/seasons/%d/%s?", year, season)),
		},
	})
}

// handleTop renders the ranked listing for a resource kind. The anime and
// manga rankings accept the upstream filter query param ("airing",
// "bypopularity", ...), which is carried through the pager links.
func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	kind := urlParam(r, "kind")
	filter := r.URL.Query().Get("filter")
	page := parsePage(r)
	ctx := r.Context()

	var (
		heading string
		cards   []Card
		pg      jikan.Pagination
	)

	switch kind {
	case "anime":
		heading = "Top Anime"
		listing := secondary(ctx, "top anime", func() (jikan.List[jikan.Anime], error) {
			return s.jikan.TopAnime(ctx, filter, page)
		})
		cards = mapCards(listing.Items, animeCard)
		pg = listing.Pagination
	case "manga":
		heading = "Top Manga"
		listing := secondary(ctx, "top manga", func() (jikan.List[jikan.Manga], error) {
			return s.jikan.TopManga(ctx, filter, page)
		})
		cards = mapCards(listing.Items, mangaCard)
		pg = listing.Pagination
	case "characters":
		heading = "Top Characters"
		listing := secondary(ctx, "top characters", func() (jikan.List[jikan.Character], error) {
			return s.jikan.TopCharacters(ctx, page)
		})
		cards = mapCards(listing.Items, characterCard)
		pg = listing.Pagination
	case "people":
		heading = "Top People"
		listing := secondary(ctx, "top people", func() (jikan.List[jikan.Person], error) {
			return s.jikan.TopPeople(ctx, page)
		})
		cards = mapCards(listing.Items, personCard)
		pg = listing.Pagination
	case "clubs":
		heading = "Top Clubs"
		listing := secondary(ctx, "top clubs", func() (jikan.List[jikan.Club], error) {
			return s.jikan.TopClubs(ctx, page)
		})
		cards = mapCards(listing.Items, clubCard)
		pg = listing.Pagination
	default:
		s.renderNotFound(w, r, "Page")
		return
	}

	baseURL := "/top/" + kind + "?"
	if filter != "" && (kind == "anime" || kind == "manga") {
		baseURL += "filter=" + url.QueryEscape(filter) + "&"
	}

	s.render(w, r, http.StatusOK, "listing", Page{
		Meta:    staticMeta(heading, heading+" ranked by MyAnimeList users."),
		Section: "top",
		Data: ListingData{
			Heading: heading,
			Cards:   cards,
			Pager:   cappedPager(pg, baseURL),
		},
	})
}

// searchTypes maps the search type parameter to a human heading.
var searchTypes = map[string]string{
	"anime":      "Anime",
	"manga":      "Manga",
	"characters": "Characters",
	"people":     "People",
	"clubs":      "Clubs",
}

// SearchData is the body data of the search results page.
type SearchData struct {
	Query   string
	Type    string
	Heading string
	Cards   []Card
	Pager   Pager
}

// handleSearch renders search results. The type parameter selects which
// resource to search; anything unrecognized falls back to anime. An empty
// query renders the empty search form.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	kind := r.URL.Query().Get("type")
	if _, ok := searchTypes[kind]; !ok {
		kind = "anime"
	}
	page := parsePage(r)
	ctx := r.Context()

	data := SearchData{
		Query:   q,
		Type:    kind,
		Heading: "Search " + searchTypes[kind],
	}

	if q != "" {
		baseURL := "/search?q=" + url.QueryEscape(q) + "&type=" + kind + "&"
		switch kind {
		case "anime":
			listing := secondary(ctx, "search anime", func() (jikan.List[jikan.Anime], error) {
				return s.jikan.SearchAnime(ctx, q, page)
			})
			data.Cards = mapCards(listing.Items, animeCard)
			data.Pager = cappedPager(listing.Pagination, baseURL)
		case "manga":
			listing := secondary(ctx, "search manga", func() (jikan.List[jikan.Manga], error) {
				return s.jikan.SearchManga(ctx, q, page)
			})
			data.Cards = mapCards(listing.Items, mangaCard)
			data.Pager = cappedPager(listing.Pagination, baseURL)
		case "characters":
			listing := secondary(ctx, "search characters", func() (jikan.List[jikan.Character], error) {
				return s.jikan.SearchCharacters(ctx, q, page)
			})
			data.Cards = mapCards(listing.Items, characterCard)
			data.Pager = cappedPager(listing.Pagination, baseURL)
		case "people":
			listing := secondary(ctx, "search people", func() (jikan.List[jikan.Person], error) {
				return s.jikan.SearchPeople(ctx, q, page)
			})
			data.Cards = mapCards(listing.Items, personCard)
			data.Pager = cappedPager(listing.Pagination, baseURL)
		case "clubs":
			listing := secondary(ctx, "search clubs", func() (jikan.List[jikan.Club], error) {
				return s.jikan.SearchClubs(ctx, q, page)
			})
			data.Cards = mapCards(listing.Items, clubCard)
			data.Pager = cappedPager(listing.Pagination, baseURL)
		}
	}

	meta := staticMeta("Search", "Search anime, manga, characters, people and clubs.")
	if q != "" {
		meta = staticMeta("Search: "+q, "Search results for "+q)
	}
	s.render(w, r, http.StatusOK, "listing", Page{
		Meta:    meta,
		Section: "search",
		Data: ListingData{
			Heading: data.Heading + searchSuffix(q),
			Cards:   data.Cards,
			Pager:   data.Pager,
		},
	})
}

// searchSuffix appends the query to the listing heading when present.
func searchSuffix(q string) string {
	if q == "" {
		return ""
	}
	return ": " + q
}
