// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package jikan

import (
	"context"
	"fmt"
)

// MangaByID fetches the full manga record, including relations and external
// links.
func (c *Client) MangaByID(ctx context.Context, id int) (Manga, error) {
	return getData[Manga](ctx, c, fmt.Sprintf("/manga/%d/full", id), nil)
}

// MangaCharacters fetches the character listing of a manga.
func (c *Client) MangaCharacters(ctx context.Context, id int) ([]CharacterRole, error) {
	return getData[[]CharacterRole](ctx, c, fmt.Sprintf("/manga/%d/characters", id), nil)
}

// MangaNews fetches one page of news articles about a manga.
func (c *Client) MangaNews(ctx context.Context, id, page int) (List[News], error) {
	return getList[News](ctx, c, fmt.Sprintf("/manga/%d/news", id), pageQuery(page))
}

// MangaTopics fetches the forum topics of a manga.
func (c *Client) MangaTopics(ctx context.Context, id int) ([]ForumTopic, error) {
	return getData[[]ForumTopic](ctx, c, fmt.Sprintf("/manga/%d/forum", id), nil)
}

// MangaPictures fetches the picture gallery of a manga.
func (c *Client) MangaPictures(ctx context.Context, id int) ([]Picture, error) {
	return getData[[]Picture](ctx, c, fmt.Sprintf("/manga/%d/pictures", id), nil)
}

// MangaStatistics fetches the read statistics of a manga.
func (c *Client) MangaStatistics(ctx context.Context, id int) (Statistics, error) {
	return getData[Statistics](ctx, c, fmt.Sprintf("/manga/%d/statistics", id), nil)
}

// MangaRecommendations fetches the "users also liked" entries of a manga.
func (c *Client) MangaRecommendations(ctx context.Context, id int) ([]Recommendation, error) {
	return getData[[]Recommendation](ctx, c, fmt.Sprintf("/manga/%d/recommendations", id), nil)
}

// MangaReviews fetches one page of user reviews of a manga.
func (c *Client) MangaReviews(ctx context.Context, id, page int) (List[Review], error) {
	return getList[Review](ctx, c, fmt.Sprintf("/manga/%d/reviews", id), pageQuery(page))
}

// SearchManga searches manga by free-text query.
func (c *Client) SearchManga(ctx context.Context, q string, page int) (List[Manga], error) {
	query := pageQuery(page)
	query.Set("q", q)
	return getList[Manga](ctx, c, "/manga", query)
}

// MangaByGenre fetches one page of manga tagged with the given genre.
func (c *Client) MangaByGenre(ctx context.Context, genreID, page int) (List[Manga], error) {
	query := pageQuery(page)
	query.Set("genres", fmt.Sprintf("%d", genreID))
	query.Set("order_by", "members")
	query.Set("sort", "desc")
	return getList[Manga](ctx, c, "/manga", query)
}

// TopManga fetches one page of the overall top manga ranking.
func (c *Client) TopManga(ctx context.Context, filter string, page int) (List[Manga], error) {
	query := pageQuery(page)
	if filter != "" {
		query.Set("filter", filter)
	}
	return getList[Manga](ctx, c, "/top/manga", query)
}

// MangaGenres fetches the manga genre taxonomy.
func (c *Client) MangaGenres(ctx context.Context) ([]Genre, error) {
	return getData[[]Genre](ctx, c, "/genres/manga", nil)
}
