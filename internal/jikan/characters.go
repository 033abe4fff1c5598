// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package jikan

import (
	"context"
	"fmt"
)

// CharacterByID fetches the full character record.
func (c *Client) CharacterByID(ctx context.Context, id int) (Character, error) {
	return getData[Character](ctx, c, fmt.Sprintf("/characters/%d", id), nil)
}

// CharacterAnime fetches the anime a character appears in.
func (c *Client) CharacterAnime(ctx context.Context, id int) ([]AnimeAppearance, error) {
	return getData[[]AnimeAppearance](ctx, c, fmt.Sprintf("/characters/%d/anime", id), nil)
}

// CharacterManga fetches the manga a character appears in.
func (c *Client) CharacterManga(ctx context.Context, id int) ([]MangaAppearance, error) {
	return getData[[]MangaAppearance](ctx, c, fmt.Sprintf("/characters/%d/manga", id), nil)
}

// CharacterVoices fetches the voice actors portraying a character.
func (c *Client) CharacterVoices(ctx context.Context, id int) ([]VoiceActor, error) {
	return getData[[]VoiceActor](ctx, c, fmt.Sprintf("/characters/%d/voices", id), nil)
}

// CharacterPictures fetches the picture gallery of a character.
func (c *Client) CharacterPictures(ctx context.Context, id int) ([]Picture, error) {
	return getData[[]Picture](ctx, c, fmt.Sprintf("/characters/%d/pictures", id), nil)
}

// SearchCharacters searches characters by free-text query.
func (c *Client) SearchCharacters(ctx context.Context, q string, page int) (List[Character], error) {
	query := pageQuery(page)
	query.Set("q", q)
	return getList[Character](ctx, c, "/characters", query)
}

// TopCharacters fetches one page of the most favorited characters.
func (c *Client) TopCharacters(ctx context.Context, page int) (List[Character], error) {
	return getList[Character](ctx, c, "/top/characters", pageQuery(page))
}
