// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package jikan

import (
	"context"
	"fmt"
	"net/url"
)

// AnimeByID fetches the full anime record, including relations, theme songs
// and external links.
func (c *Client) AnimeByID(ctx context.Context, id int) (Anime, error) {
	return getData[Anime](ctx, c, fmt.Sprintf("/anime/%d/full", id), nil)
}

// AnimeCharacters fetches the character listing of an anime.
func (c *Client) AnimeCharacters(ctx context.Context, id int) ([]CharacterRole, error) {
	return getData[[]CharacterRole](ctx, c, fmt.Sprintf("/anime/%d/characters", id), nil)
}

// AnimeStaff fetches the staff listing of an anime.
func (c *Client) AnimeStaff(ctx context.Context, id int) ([]StaffMember, error) {
	return getData[[]StaffMember](ctx, c, fmt.Sprintf("/anime/%d/staff", id), nil)
}

// AnimeEpisodes fetches one page of an anime's episode listing.
func (c *Client) AnimeEpisodes(ctx context.Context, id, page int) (List[Episode], error) {
	return getList[Episode](ctx, c, fmt.Sprintf("/anime/%d/episodes", id), pageQuery(page))
}

// AnimeEpisode fetches a single episode with its synopsis.
func (c *Client) AnimeEpisode(ctx context.Context, id, episode int) (EpisodeDetail, error) {
	return getData[EpisodeDetail](ctx, c, fmt.Sprintf("/anime/%d/episodes/%d", id, episode), nil)
}

// AnimeNews fetches one page of news articles about an anime.
func (c *Client) AnimeNews(ctx context.Context, id, page int) (List[News], error) {
	return getList[News](ctx, c, fmt.Sprintf("/anime/%d/news", id), pageQuery(page))
}

// AnimeForum fetches the forum topics of an anime.
func (c *Client) AnimeForum(ctx context.Context, id int) ([]ForumTopic, error) {
	return getData[[]ForumTopic](ctx, c, fmt.Sprintf("/anime/%d/forum", id), nil)
}

// AnimeVideos fetches the promo, episode and music videos of an anime.
func (c *Client) AnimeVideos(ctx context.Context, id int) (Videos, error) {
	return getData[Videos](ctx, c, fmt.Sprintf("/anime/%d/videos", id), nil)
}

// AnimePictures fetches the picture gallery of an anime.
func (c *Client) AnimePictures(ctx context.Context, id int) ([]Picture, error) {
	return getData[[]Picture](ctx, c, fmt.Sprintf("/anime/%d/pictures", id), nil)
}

// AnimeStatistics fetches the watch statistics of an anime.
func (c *Client) AnimeStatistics(ctx context.Context, id int) (Statistics, error) {
	return getData[Statistics](ctx, c, fmt.Sprintf("/anime/%d/statistics", id), nil)
}

// AnimeRecommendations fetches the "users also liked" entries of an anime.
func (c *Client) AnimeRecommendations(ctx context.Context, id int) ([]Recommendation, error) {
	return getData[[]Recommendation](ctx, c, fmt.Sprintf("/anime/%d/recommendations", id), nil)
}

// AnimeReviews fetches one page of user reviews of an anime.
func (c *Client) AnimeReviews(ctx context.Context, id, page int) (List[Review], error) {
	return getList[Review](ctx, c, fmt.Sprintf("/anime/%d/reviews", id), pageQuery(page))
}

// SearchAnime searches anime by free-text query.
func (c *Client) SearchAnime(ctx context.Context, q string, page int) (List[Anime], error) {
	query := pageQuery(page)
	query.Set("q", q)
	return getList[Anime](ctx, c, "/anime", query)
}

// AnimeByGenre fetches one page of anime tagged with the given genre.
func (c *Client) AnimeByGenre(ctx context.Context, genreID, page int) (List[Anime], error) {
	query := pageQuery(page)
	query.Set("genres", fmt.Sprintf("%d", genreID))
	query.Set("order_by", "members")
	query.Set("sort", "desc")
	return getList[Anime](ctx, c, "/anime", query)
}

// TopAnime fetches one page of the overall top anime ranking. filter may be
// empty or one of the upstream filters such as "airing", "upcoming",
// "bypopularity" or "favorite".
func (c *Client) TopAnime(ctx context.Context, filter string, page int) (List[Anime], error) {
	query := pageQuery(page)
	if filter != "" {
		query.Set("filter", filter)
	}
	return getList[Anime](ctx, c, "/top/anime", query)
}

// SeasonNow fetches one page of the currently airing season.
func (c *Client) SeasonNow(ctx context.Context, page int) (List[Anime], error) {
	return getList[Anime](ctx, c, "/seasons/now", pageQuery(page))
}

// SeasonUpcoming fetches one page of upcoming seasonal anime.
func (c *Client) SeasonUpcoming(ctx context.Context, page int) (List[Anime], error) {
	return getList[Anime](ctx, c, "/seasons/upcoming", pageQuery(page))
}

// Season fetches one page of a specific year and season ("winter", "spring",
// "summer", "fall").
func (c *Client) Season(ctx context.Context, year int, season string, page int) (List[Anime], error) {
	path := fmt.Sprintf("/seasons/%d/%s", year, url.PathEscape(season))
	return getList[Anime](ctx, c, path, pageQuery(page))
}

// SeasonIndex fetches the archive of available years and their seasons.
func (c *Client) SeasonIndex(ctx context.Context) ([]SeasonYear, error) {
	return getData[[]SeasonYear](ctx, c, "/seasons", nil)
}

// AnimeGenres fetches the anime genre taxonomy.
func (c *Client) AnimeGenres(ctx context.Context) ([]Genre, error) {
	return getData[[]Genre](ctx, c, "/genres/anime", nil)
}
