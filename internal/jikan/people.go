// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package jikan

import (
	"context"
	"fmt"
)

// PersonByID fetches the full person record.
func (c *Client) PersonByID(ctx context.Context, id int) (Person, error) {
	return getData[Person](ctx, c, fmt.Sprintf("/people/%d", id), nil)
}

// PersonAnime fetches the anime production credits of a person.
func (c *Client) PersonAnime(ctx context.Context, id int) ([]PersonAnimeCredit, error) {
	return getData[[]PersonAnimeCredit](ctx, c, fmt.Sprintf("/people/%d/anime", id), nil)
}

// PersonManga fetches the manga authorship credits of a person.
func (c *Client) PersonManga(ctx context.Context, id int) ([]PersonMangaCredit, error) {
	return getData[[]PersonMangaCredit](ctx, c, fmt.Sprintf("/people/%d/manga", id), nil)
}

// PersonVoices fetches the voice-acting credits of a person.
func (c *Client) PersonVoices(ctx context.Context, id int) ([]PersonVoiceCredit, error) {
	return getData[[]PersonVoiceCredit](ctx, c, fmt.Sprintf("/people/%d/voices", id), nil)
}

// PersonPictures fetches the picture gallery of a person.
func (c *Client) PersonPictures(ctx context.Context, id int) ([]Picture, error) {
	return getData[[]Picture](ctx, c, fmt.Sprintf("/people/%d/pictures", id), nil)
}

// SearchPeople searches people by free-text query.
func (c *Client) SearchPeople(ctx context.Context, q string, page int) (List[Person], error) {
	query := pageQuery(page)
	query.Set("q", q)
	return getList[Person](ctx, c, "/people", query)
}

// TopPeople fetches one page of the most favorited people.
func (c *Client) TopPeople(ctx context.Context, page int) (List[Person], error) {
	return getList[Person](ctx, c, "/top/people", pageQuery(page))
}
