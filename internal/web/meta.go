// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package web

import "github.com/tsukihub/tsukihub/internal/jikan"

// siteName is appended to every page title.
const siteName = "Tsukihub"

// maxDescriptionRunes is the hard cut applied to head descriptions.
const maxDescriptionRunes = 150

// animeMeta derives head metadata from an already-fetched anime record.
func animeMeta(a *jikan.Anime) Meta {
	if a == nil {
		return notFoundMeta("Anime")
	}
	return Meta{
		Title:       displayTitle(a.TitleEnglish, a.Title) + " | " + siteName,
		Description: truncate(a.Synopsis, maxDescriptionRunes),
	}
}

// mangaMeta derives head metadata from an already-fetched manga record.
func mangaMeta(m *jikan.Manga) Meta {
	if m == nil {
		return notFoundMeta("Manga")
	}
	return Meta{
		Title:       displayTitle(m.TitleEnglish, m.Title) + " | " + siteName,
		Description: truncate(m.Synopsis, maxDescriptionRunes),
	}
}

// characterMeta derives head metadata from a character record.
func characterMeta(c *jikan.Character) Meta {
	if c == nil {
		return notFoundMeta("Character")
	}
	return Meta{
		Title:       c.Name + " | " + siteName,
		Description: truncate(c.About, maxDescriptionRunes),
	}
}

// personMeta derives head metadata from a person record.
func personMeta(p *jikan.Person) Meta {
	if p == nil {
		return notFoundMeta("Person")
	}
	return Meta{
		Title:       p.Name + " | " + siteName,
		Description: truncate(p.About, maxDescriptionRunes),
	}
}

// clubMeta derives head metadata from a club record.
func clubMeta(c *jikan.Club) Meta {
	if c == nil {
		return notFoundMeta("Club")
	}
	return Meta{
		Title:       c.Name + " | " + siteName,
		Description: truncate(c.Name+" on "+siteName, maxDescriptionRunes),
	}
}

// staticMeta builds metadata for pages not backed by a single entity.
func staticMeta(title, description string) Meta {
	return Meta{
		Title:       title + " | " + siteName,
		Description: truncate(description, maxDescriptionRunes),
	}
}

// notFoundMeta is the metadata for a missing primary resource.
func notFoundMeta(resource string) Meta {
	return Meta{
		Title:       resource + " Not Found | " + siteName,
		Description: "The requested " + resource + " does not exist.",
	}
}

// truncate hard-cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
