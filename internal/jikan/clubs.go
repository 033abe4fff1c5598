// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package jikan

import (
	"context"
	"fmt"
)

// ClubByID fetches the full club record.
func (c *Client) ClubByID(ctx context.Context, id int) (Club, error) {
	return getData[Club](ctx, c, fmt.Sprintf("/clubs/%d", id), nil)
}

// ClubMembers fetches one page of a club's member listing.
func (c *Client) ClubMembers(ctx context.Context, id, page int) (List[ClubMember], error) {
	return getList[ClubMember](ctx, c, fmt.Sprintf("/clubs/%d/members", id), pageQuery(page))
}

// ClubRelations fetches the anime, manga and characters a club is about.
func (c *Client) ClubRelations(ctx context.Context, id int) (ClubRelations, error) {
	return getData[ClubRelations](ctx, c, fmt.Sprintf("/clubs/%d/relations", id), nil)
}

// TopClubs fetches one page of the most popular clubs.
func (c *Client) TopClubs(ctx context.Context, page int) (List[Club], error) {
	return getList[Club](ctx, c, "/top/clubs", pageQuery(page))
}

// SearchClubs searches clubs by free-text query.
func (c *Client) SearchClubs(ctx context.Context, q string, page int) (List[Club], error) {
	query := pageQuery(page)
	query.Set("q", q)
	return getList[Club](ctx, c, "/clubs", query)
}

// ClubRelations groups the entities a club relates to.
type ClubRelations struct {
	Anime      []MalItem `json:"anime"`
	Manga      []MalItem `json:"manga"`
	Characters []MalItem `json:"characters"`
}
