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

// mainCharacterLimit caps the main character strip on the detail page.
const mainCharacterLimit = 12

// detailNewsLimit caps the news section on the detail page.
const detailNewsLimit = 6

// AnimeData is the body data of the anime detail page.
type AnimeData struct {
	Anime           jikan.Anime
	MainCharacters  []Card
	News            []jikan.News
	Recommendations []Card
	Relations       []Card
}

// SubPageData is the body data shared by the per-resource sub-list pages.
// Heading is only used by templates that don't hardcode their own.
type SubPageData struct {
	ParentTitle string
	ParentHref  string
	Heading     string
	Body        any
	Pager       *Pager
}

// animePrimary resolves the {id} parameter and fetches the anime record.
// On failure the response is already written and ok is false. The primary
// is always fetched first; a missing anime must not trigger any secondary
// upstream calls.
func (s *Server) animePrimary(w http.ResponseWriter, r *http.Request) (jikan.Anime, bool) {
	id, ok := parseID(r, "id")
	if !ok {
		s.renderNotFound(w, r, "Anime")
		return jikan.Anime{}, false
	}

	anime, err := s.jikan.AnimeByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, jikan.ErrNotFound) {
			s.renderNotFound(w, r, "Anime")
		} else {
			s.renderError(w, r, err)
		}
		return jikan.Anime{}, false
	}
	return anime, true
}

// handleAnime renders the anime detail page. The secondary sections are
// fetched in parallel once the primary record is in hand; any of them may
// fail without breaking the page.
func (s *Server) handleAnime(w http.ResponseWriter, r *http.Request) {
	anime, ok := s.animePrimary(w, r)
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
		return s.jikan.AnimeCharacters(gctx, anime.MalID)
	}))
	g.Go(secondaryInto(gctx, "news", &news, func() (jikan.List[jikan.News], error) {
		return s.jikan.AnimeNews(gctx, anime.MalID, 1)
	}))
	g.Go(secondaryInto(gctx, "recommendations", &recs, func() ([]jikan.Recommendation, error) {
		return s.jikan.AnimeRecommendations(gctx, anime.MalID)
	}))
	_ = g.Wait()

	data := AnimeData{
		Anime:           anime,
		MainCharacters:  mainCharacterCards(roles),
		News:            capNews(news.Items, detailNewsLimit),
		Recommendations: recommendationCards(recs, "/anime"),
		Relations:       relationCards(anime.Relations),
	}

	meta := animeMeta(&anime)
	s.render(w, r, http.StatusOK, "anime", Page{Meta: meta, Section: "anime", Data: data})
}

// mainCharacterCards keeps only characters credited with the Main role,
// capped for the detail page strip.
func mainCharacterCards(roles []jikan.CharacterRole) []Card {
	cards := make([]Card, 0, mainCharacterLimit)
	for _, role := range roles {
		if role.Role != "Main" {
			continue
		}
		cards = append(cards, entryCard(role.Character, "/characters", role.Role))
		if len(cards) == mainCharacterLimit {
			break
		}
	}
	return cards
}

// capNews truncates a news list for the detail page.
func capNews(items []jikan.News, limit int) []jikan.News {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

// recommendationCards collapses recommendation entries into cards.
func recommendationCards(recs []jikan.Recommendation, prefix string) []Card {
	cards := make([]Card, 0, len(recs))
	for _, rec := range recs {
		cards = append(cards, entryCard(rec.Entry, prefix, fmt.Sprintf("%d votes", rec.Votes)))
	}
	return cards
}

// handleAnimeCharacters renders the full character listing of an anime.
func (s *Server) handleAnimeCharacters(w http.ResponseWriter, r *http.Request) {
	anime, ok := s.animePrimary(w, r)
	if !ok {
		return
	}

	roles := secondary(r.Context(), "characters", func() ([]jikan.CharacterRole, error) {
		return s.jikan.AnimeCharacters(r.Context(), anime.MalID)
	})

	title := displayTitle(anime.TitleEnglish, anime.Title)
	s.render(w, r, http.StatusOK, "roles", Page{
		Meta:    staticMeta(title+" Characters", "Characters appearing in "+title),
		Section: "anime",
		Data: SubPageData{
			ParentTitle: title,
			ParentHref:  fmt.Sprintf("/anime/%d", anime.MalID),
			Body:        roles,
		},
	})
}

// handleAnimeStaff renders the staff listing of an anime.
func (s *Server) handleAnimeStaff(w http.ResponseWriter, r *http.Request) {
	anime, ok := s.animePrimary(w, r)
	if !ok {
		return
	}

	staff := secondary(r.Context(), "staff", func() ([]jikan.StaffMember, error) {
		return s.jikan.AnimeStaff(r.Context(), anime.MalID)
	})

	title := displayTitle(anime.TitleEnglish, anime.Title)
	s.render(w, r, http.StatusOK, "staff", Page{
		Meta:    staticMeta(title+" Staff", "Production staff of "+title),
		Section: "anime",
		Data: SubPageData{
			ParentTitle: title,
			ParentHref:  fmt.Sprintf("/anime/%d", anime.MalID),
			Body:        staff,
		},
	})
}

// handleAnimeEpisodes renders one page of the episode listing.
func (s *Server) handleAnimeEpisodes(w http.ResponseWriter, r *http.Request) {
	anime, ok := s.animePrimary(w, r)
	if !ok {
		return
	}
	page := parsePage(r)

	episodes := secondary(r.Context(), "episodes", func() (jikan.List[jikan.Episode], error) {
		return s.jikan.AnimeEpisodes(r.Context(), anime.MalID, page)
	})

	title := displayTitle(anime.TitleEnglish, anime.Title)
	pager := cappedPager(episodes.Pagination, fmt.Sprintf("/anime/%d/episodes?", anime.MalID))
	s.render(w, r, http.StatusOK, "episodes", Page{
		Meta:    staticMeta(title+" Episodes", "Episode listing of "+title),
		Section: "anime",
		Data: SubPageData{
			ParentTitle: title,
			ParentHref:  fmt.Sprintf("/anime/%d", anime.MalID),
			Body:        episodes.Items,
			Pager:       &pager,
		},
	})
}

// handleAnimeEpisode renders a single episode with its synopsis.
func (s *Server) handleAnimeEpisode(w http.ResponseWriter, r *http.Request) {
	anime, ok := s.animePrimary(w, r)
	if !ok {
		return
	}
	episodeNum, ok := parseID(r, "episode")
	if !ok {
		s.renderNotFound(w, r, "Episode")
		return
	}

	episode, err := s.jikan.AnimeEpisode(r.Context(), anime.MalID, episodeNum)
	if err != nil {
		if errors.Is(err, jikan.ErrNotFound) {
			s.renderNotFound(w, r, "Episode")
		} else {
			s.renderError(w, r, err)
		}
		return
	}

	title := displayTitle(anime.TitleEnglish, anime.Title)
	s.render(w, r, http.StatusOK, "episode", Page{
		Meta:    staticMeta(fmt.Sprintf("%s Episode %d", title, episodeNum), episode.Title),
		Section: "anime",
		Data: SubPageData{
			ParentTitle: title,
			ParentHref:  fmt.Sprintf("/anime/%d", anime.MalID),
			Body:        episode,
		},
	})
}

// handleAnimeNews renders one page of news articles about an anime.
func (s *Server) handleAnimeNews(w http.ResponseWriter, r *http.Request) {
	anime, ok := s.animePrimary(w, r)
	if !ok {
		return
	}
	page := parsePage(r)

	news := secondary(r.Context(), "news", func() (jikan.List[jikan.News], error) {
		return s.jikan.AnimeNews(r.Context(), anime.MalID, page)
	})

	title := displayTitle(anime.TitleEnglish, anime.Title)
	pager := cappedPager(news.Pagination, fmt.Sprintf("/anime/%d/news?", anime.MalID))
	s.render(w, r, http.StatusOK, "news", Page{
		Meta:    staticMeta(title+" News", "News about "+title),
		Section: "anime",
		Data: SubPageData{
			ParentTitle: title,
			ParentHref:  fmt.Sprintf("/anime/%d", anime.MalID),
			Body:        news.Items,
			Pager:       &pager,
		},
	})
}

// handleAnimeForum renders the forum topics of an anime.
func (s *Server) handleAnimeForum(w http.ResponseWriter, r *http.Request) {
	anime, ok := s.animePrimary(w, r)
	if !ok {
		return
	}

	topics := secondary(r.Context(), "forum", func() ([]jikan.ForumTopic, error) {
		return s.jikan.AnimeForum(r.Context(), anime.MalID)
	})

	title := displayTitle(anime.TitleEnglish, anime.Title)
	s.render(w, r, http.StatusOK, "forum", Page{
		Meta:    staticMeta(title+" Forum", "Forum discussions about "+title),
		Section: "anime",
		Data: SubPageData{
			ParentTitle: title,
			ParentHref:  fmt.Sprintf("/anime/%d", anime.MalID),
			Body:        topics,
		},
	})
}

// handleAnimeVideos renders the video galleries of an anime.
func (s *Server) handleAnimeVideos(w http.ResponseWriter, r *http.Request) {
	anime, ok := s.animePrimary(w, r)
	if !ok {
		return
	}

	videos := secondary(r.Context(), "videos", func() (jikan.Videos, error) {
		return s.jikan.AnimeVideos(r.Context(), anime.MalID)
	})

	title := displayTitle(anime.TitleEnglish, anime.Title)
	s.render(w, r, http.StatusOK, "videos", Page{
		Meta:    staticMeta(title+" Videos", "Trailers and videos of "+title),
		Section: "anime",
		Data: SubPageData{
			ParentTitle: title,
			ParentHref:  fmt.Sprintf("/anime/%d", anime.MalID),
			Body:        videos,
		},
	})
}

// handleAnimePictures renders the picture gallery of an anime.
func (s *Server) handleAnimePictures(w http.ResponseWriter, r *http.Request) {
	anime, ok := s.animePrimary(w, r)
	if !ok {
		return
	}

	pictures := secondary(r.Context(), "pictures", func() ([]jikan.Picture, error) {
		return s.jikan.AnimePictures(r.Context(), anime.MalID)
	})

	title := displayTitle(anime.TitleEnglish, anime.Title)
	s.render(w, r, http.StatusOK, "pictures", Page{
		Meta:    staticMeta(title+" Pictures", "Picture gallery of "+title),
		Section: "anime",
		Data: SubPageData{
			ParentTitle: title,
			ParentHref:  fmt.Sprintf("/anime/%d", anime.MalID),
			Body:        pictures,
		},
	})
}

// handleAnimeStatistics renders the watch statistics of an anime.
func (s *Server) handleAnimeStatistics(w http.ResponseWriter, r *http.Request) {
	anime, ok := s.animePrimary(w, r)
	if !ok {
		return
	}

	stats := secondary(r.Context(), "statistics", func() (jikan.Statistics, error) {
		return s.jikan.AnimeStatistics(r.Context(), anime.MalID)
	})

	title := displayTitle(anime.TitleEnglish, anime.Title)
	s.render(w, r, http.StatusOK, "statistics", Page{
		Meta:    staticMeta(title+" Statistics", "Watch statistics of "+title),
		Section: "anime",
		Data: SubPageData{
			ParentTitle: title,
			ParentHref:  fmt.Sprintf("/anime/%d", anime.MalID),
			Body:        stats,
		},
	})
}

// handleAnimeRecommendations renders the full recommendation listing of an
// anime, beyond the capped strip on the detail page.
func (s *Server) handleAnimeRecommendations(w http.ResponseWriter, r *http.Request) {
	anime, ok := s.animePrimary(w, r)
	if !ok {
		return
	}

	recs := secondary(r.Context(), "recommendations", func() ([]jikan.Recommendation, error) {
		return s.jikan.AnimeRecommendations(r.Context(), anime.MalID)
	})

	title := displayTitle(anime.TitleEnglish, anime.Title)
	s.render(w, r, http.StatusOK, "subcards", Page{
		Meta:    staticMeta(title+" Recommendations", "Anime recommended to fans of "+title),
		Section: "anime",
		Data: SubPageData{
			ParentTitle: title,
			ParentHref:  fmt.Sprintf("/anime/%d", anime.MalID),
			Heading:     "Users Also Liked",
			Body:        recommendationCards(recs, "/anime"),
		},
	})
}

// handleAnimeReviews renders one page of user reviews of an anime.
func (s *Server) handleAnimeReviews(w http.ResponseWriter, r *http.Request) {
	anime, ok := s.animePrimary(w, r)
	if !ok {
		return
	}
	page := parsePage(r)

	reviews := secondary(r.Context(), "reviews", func() (jikan.List[jikan.Review], error) {
		return s.jikan.AnimeReviews(r.Context(), anime.MalID, page)
	})

	title := displayTitle(anime.TitleEnglish, anime.Title)
	pager := cappedPager(reviews.Pagination, fmt.Sprintf("/anime/%d/reviews?", anime.MalID))
	s.render(w, r, http.StatusOK, "reviews", Page{
		Meta:    staticMeta(title+" Reviews", "User reviews of "+title),
		Section: "anime",
		Data: SubPageData{
			ParentTitle: title,
			ParentHref:  fmt.Sprintf("/anime/%d", anime.MalID),
			Body:        reviews.Items,
			Pager:       &pager,
		},
	})
}
