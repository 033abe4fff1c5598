// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package web

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/tsukihub/tsukihub/internal/jikan"
)

// MangaData is the body data of the manga detail page.
type MangaData struct {
	Manga           jikan.Manga
	MainCharacters  []Card
	News            []jikan.News
	Recommendations []Card
	Relations       []Card
}

// mangaPrimary resolves the {id} parameter and fetches the manga record.
// On failure the response is already written and ok is false.
func (s *Server) mangaPrimary(w http.ResponseWriter, r *http.Request) (jikan.Manga, bool) {
	id, ok := parseID(r, "id")
	if !ok {
		s.renderNotFound(w, r, "Manga")
		return jikan.Manga{}, false
	}

	manga, err := s.jikan.MangaByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, jikan.ErrNotFound) {
			s.renderNotFound(w, r, "Manga")
		} else {
			s.renderError(w, r, err)
		}
		return jikan.Manga{}, false
	}
	return manga, true
}

// handleManga renders the manga detail page, mirroring the anime detail
// layout for printed media.
func (s *Server) handleManga(w http.ResponseWriter, r *http.Request) {
	manga, ok := s.mangaPrimary(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	var (
		roles []jikan.CharacterRole
		news  jikan.List[jikan.News]
		recs  []jikan.Recommendation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(secondaryInto(gctx, "characters", &roles, func() ([]jikan.CharacterRole, error) {
		return s.jikan.MangaCharacters(gctx, manga.MalID)
	}))
	g.Go(secondaryInto(gctx, "news", &news, func() (jikan.List[jikan.News], error) {
		return s.jikan.MangaNews(gctx, manga.MalID, 1)
	}))
	g.Go(secondaryInto(gctx, "recommendations", &recs, func() ([]jikan.Recommendation, error) {
		return s.jikan.MangaRecommendations(gctx, manga.MalID)
	}))
	_ = g.Wait()

	data := MangaData{
		Manga:           manga,
		MainCharacters:  mainCharacterCards(roles),
		News:            capNews(news.Items, detailNewsLimit),
		Recommendations: recommendationCards(recs, "/manga"),
		Relations:       relationCards(manga.Relations),
	}

	s.render(w, r, http.StatusOK, "manga", Page{Meta: mangaMeta(&manga), Section: "manga", Data: data})
}

// handleMangaCharacters renders the full character listing of a manga.
func (s *Server) handleMangaCharacters(w http.ResponseWriter, r *http.Request) {
	manga, ok := s.mangaPrimary(w, r)
	if !ok {
		return
	}

	roles := secondary(r.Context(), "characters", func() ([]jikan.CharacterRole, error) {
		return s.jikan.MangaCharacters(r.Context(), manga.MalID)
	})

	title := displayTitle(manga.TitleEnglish, manga.Title)
	s.render(w, r, http.StatusOK, "roles", Page{
		Meta:    staticMeta(title+" Characters", "Characters appearing in "+title),
		Section: "manga",
		Data: SubPageData{
			ParentTitle: title,
			ParentHref:  fmt.Sprintf("/manga/%d", manga.MalID),
			Body:        roles,
		},
	})
}

// handleMangaRecommendations renders the full recommendation listing of a
// manga, beyond the capped strip on the detail page.
func (s *Server) handleMangaRecommendations(w http.ResponseWriter, r *http.Request) {
	manga, ok := s.mangaPrimary(w, r)
	if !ok {
		return
	}

	recs := secondary(r.Context(), "recommendations", func() ([]jikan.Recommendation, error) {
		return s.jikan.MangaRecommendations(r.Context(), manga.MalID)
	})

	title := displayTitle(manga.TitleEnglish, manga.Title)
	s.render(w, r, http.StatusOK, "subcards", Page{
		Meta:    staticMeta(title+" Recommendations", "Manga recommended to fans of "+title),
		Section: "manga",
		Data: SubPageData{
			ParentTitle: title,
			ParentHref:  fmt.Sprintf("/manga/%d", manga.MalID),
			Heading:     "Users Also Liked",
			Body:        recommendationCards(recs, "/manga"),
		},
	})
}

// handleMangaNews renders one page of news articles about a manga.
func (s *Server) handleMangaNews(w http.ResponseWriter, r *http.Request) {
	manga, ok := s.mangaPrimary(w, r)
	if !ok {
		return
	}
	page := parsePage(r)

	news := secondary(r.Context(), "news", func() (jikan.List[jikan.News], error) {
		return s.jikan.MangaNews(r.Context(), manga.MalID, page)
	})

	title := displayTitle(manga.TitleEnglish, manga.Title)
	pager := cappedPager(news.Pagination, fmt.Sprintf("/manga/%d/news?", manga.MalID))
	s.render(w, r, http.StatusOK, "news", Page{
		Meta:    staticMeta(title+" News", "News about "+title),
		Section: "manga",
		Data: SubPageData{
			ParentTitle: title,
			ParentHref:  fmt.Sprintf("/manga/%d", manga.MalID),
			Body:        news.Items,
			Pager:       &pager,
		},
	})
}

// handleMangaForum renders the forum topics of a manga.
func (s *Server) handleMangaForum(w http.ResponseWriter, r *http.Request) {
	manga, ok := s.mangaPrimary(w, r)
	if !ok {
		return
	}

	topics := secondary(r.Context(), "forum", func() ([]jikan.ForumTopic, error) {
		return s.jikan.MangaTopics(r.Context(), manga.MalID)
	})

	title := displayTitle(manga.TitleEnglish, manga.Title)
	s.render(w, r, http.StatusOK, "forum", Page{
		Meta:    staticMeta(title+" Forum", "Forum discussions about "+title),
		Section: "manga",
		Data: SubPageData{
			ParentTitle: title,
			ParentHref:  fmt.Sprintf("/manga/%d", manga.MalID),
			Body:        topics,
		},
	})
}

// handleMangaPictures renders the picture gallery of a manga.
func (s *Server) handleMangaPictures(w http.ResponseWriter, r *http.Request) {
	manga, ok := s.mangaPrimary(w, r)
	if !ok {
		return
	}

	pictures := secondary(r.Context(), "pictures", func() ([]jikan.Picture, error) {
		return s.jikan.MangaPictures(r.Context(), manga.MalID)
	})

	title := displayTitle(manga.TitleEnglish, manga.Title)
	s.render(w, r, http.StatusOK, "pictures", Page{
		Meta:    staticMeta(title+" Pictures", "Picture gallery of "+title),
		Section: "manga",
		Data: SubPageData{
			ParentTitle: title,
			ParentHref:  fmt.Sprintf("/manga/%d", manga.MalID),
			Body:        pictures,
		},
	})
}

// handleMangaStatistics renders the read statistics of a manga.
func (s *Server) handleMangaStatistics(w http.ResponseWriter, r *http.Request) {
	manga, ok := s.mangaPrimary(w, r)
	if !ok {
		return
	}

	stats := secondary(r.Context(), "statistics", func() (jikan.Statistics, error) {
		return s.jikan.MangaStatistics(r.Context(), manga.MalID)
	})

	title := displayTitle(manga.TitleEnglish, manga.Title)
	s.render(w, r, http.StatusOK, "statistics", Page{
		Meta:    staticMeta(title+" Statistics", "Read statistics of "+title),
		Section: "manga",
		Data: SubPageData{
			ParentTitle: title,
			ParentHref:  fmt.Sprintf("/manga/%d", manga.MalID),
			Body:        stats,
		},
	})
}

// handleMangaReviews renders one page of user reviews of a manga.
func (s *Server) handleMangaReviews(w http.ResponseWriter, r *http.Request) {
	manga, ok := s.mangaPrimary(w, r)
	if !ok {
		return
	}
	page := parsePage(r)

	reviews := secondary(r.Context(), "reviews", func() (jikan.List[jikan.Review], error) {
		return s.jikan.MangaReviews(r.Context(), manga.MalID, page)
	})

	title := displayTitle(manga.TitleEnglish, manga.Title)
	pager := cappedPager(reviews.Pagination, fmt.Sprintf("/manga/%d/reviews?", manga.MalID))
	s.render(w, r, http.StatusOK, "reviews", Page{
		Meta:    staticMeta(title+" Reviews", "User reviews of "+title),
		Section: "manga",
		Data: SubPageData{
			ParentTitle: title,
			ParentHref:  fmt.Sprintf("/manga/%d", manga.MalID),
			Body:        reviews.Items,
			Pager:       &pager,
		},
	})
}
