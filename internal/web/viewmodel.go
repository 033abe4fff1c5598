// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package web

import (
	"fmt"

	"github.com/tsukihub/tsukihub/internal/jikan"
)

// Meta carries the page metadata rendered into the HTML head.
type Meta struct {
	Title       string
	Description string
}

// Card is the uniform grid tile used across listing and detail pages. Every
// entity type collapses into it so templates stay entity-agnostic.
type Card struct {
	Title    string
	Subtitle string
	ImageURL string
	Href     string
}

// Page is the envelope handed to every template: head metadata, the active
// nav section and the page-specific body data.
type Page struct {
	Meta    Meta
	Section string
	Data    any
}

// animeCard collapses an anime record into a grid tile.
func animeCard(a jikan.Anime) Card {
	subtitle := a.Type
	if a.Score != nil {
		subtitle = fmt.Sprintf("%s · %.2f", a.Type, *a.Score)
	}
	return Card{
		Title:    displayTitle(a.TitleEnglish, a.Title),
		Subtitle: subtitle,
		ImageURL: a.Images.JPG.ImageURL,
		Href:     fmt.Sprintf("/anime/%d", a.MalID),
	}
}

// mangaCard collapses a manga record into a grid tile.
func mangaCard(m jikan.Manga) Card {
	subtitle := m.Type
	if m.Score != nil {
		subtitle = fmt.Sprintf("%s · %.2f", m.Type, *m.Score)
	}
	return Card{
		Title:    displayTitle(m.TitleEnglish, m.Title),
		Subtitle: subtitle,
		ImageURL: m.Images.JPG.ImageURL,
		Href:     fmt.Sprintf("/manga/%d", m.MalID),
	}
}

// characterCard collapses a character record into a grid tile.
func characterCard(c jikan.Character) Card {
	return Card{
		Title:    c.Name,
		Subtitle: c.NameKanji,
		ImageURL: c.Images.JPG.ImageURL,
		Href:     fmt.Sprintf("/characters/%d", c.MalID),
	}
}

// personCard collapses a person record into a grid tile.
func personCard(p jikan.Person) Card {
	return Card{
		Title:    p.Name,
		ImageURL: p.Images.JPG.ImageURL,
		Href:     fmt.Sprintf("/people/%d", p.MalID),
	}
}

// clubCard collapses a club record into a grid tile.
func clubCard(c jikan.Club) Card {
	return Card{
		Title:    c.Name,
		Subtitle: fmt.Sprintf("%s · %d members", c.Category, c.Members),
		ImageURL: c.Images.JPG.ImageURL,
		Href:     fmt.Sprintf("/clubs/%d", c.MalID),
	}
}

// entryCard collapses a lightweight cross-link entry into a grid tile,
// pointing at the given resource prefix ("/anime", "/manga", ...).
func entryCard(e jikan.Entry, prefix, subtitle string) Card {
	return Card{
		Title:    e.DisplayTitle(),
		Subtitle: subtitle,
		ImageURL: e.Images.JPG.ImageURL,
		Href:     fmt.Sprintf("%s/%d", prefix, e.MalID),
	}
}

// relationCards flattens the named relation groups of a media record into a
// single card list, each tile subtitled with its relation name. Relations
// reference anime and manga only; character entries never appear here.
func relationCards(relations []jikan.Relation) []Card {
	var cards []Card
	for _, rel := range relations {
		for _, entry := range rel.Entry {
			prefix := "/anime"
			if entry.Type == "manga" {
				prefix = "/manga"
			}
			cards = append(cards, Card{
				Title:    entry.Name,
				Subtitle: rel.Relation,
				Href:     fmt.Sprintf("%s/%d", prefix, entry.MalID),
			})
		}
	}
	return cards
}

// displayTitle prefers the English title, falling back to the default title.
func displayTitle(english, fallback string) string {
	if english != "" {
		return english
	}
	return fallback
}

// mapCards converts a slice of entities into cards with the given collapse.
func mapCards[T any](items []T, collapse func(T) Card) []Card {
	cards := make([]Card, 0, len(items))
	for _, item := range items {
		cards = append(cards, collapse(item))
	}
	return cards
}
