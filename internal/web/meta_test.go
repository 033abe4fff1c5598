// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package web

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/tsukihub/tsukihub/internal/jikan"
)

func TestAnimeMetaPrefersEnglishTitle(t *testing.T) {
	meta := animeMeta(&jikan.Anime{Title: "Shingeki no Kyojin", TitleEnglish: "Attack on Titan"})
	if meta.Title != "Attack on Titan | Tsukihub" {
		t.Errorf("unexpected title %q", meta.Title)
	}
}

func TestAnimeMetaFallsBackToDefaultTitle(t *testing.T) {
	meta := animeMeta(&jikan.Anime{Title: "Shingeki no Kyojin"})
	if meta.Title != "Shingeki no Kyojin | Tsukihub" {
		t.Errorf("unexpected title %q", meta.Title)
	}
}

func TestAnimeMetaTruncatesSynopsis(t *testing.T) {
	long := strings.Repeat("あ", 300)
	meta := animeMeta(&jikan.Anime{Title: "X", Synopsis: long})

	if got := utf8.RuneCountInString(meta.Description); got != maxDescriptionRunes {
		t.Errorf("expected description cut to %d runes, got %d", maxDescriptionRunes, got)
	}
	if !utf8.ValidString(meta.Description) {
		t.Error("truncation produced invalid UTF-8")
	}
}

func TestAnimeMetaNilRecord(t *testing.T) {
	meta := animeMeta(nil)
	if meta.Title != "Anime Not Found | Tsukihub" {
		t.Errorf("unexpected title %q", meta.Title)
	}
}

func TestCharacterMetaNilRecord(t *testing.T) {
	meta := characterMeta(nil)
	if meta.Title != "Character Not Found | Tsukihub" {
		t.Errorf("unexpected title %q", meta.Title)
	}
}

func TestTruncateShortStringUnchanged(t *testing.T) {
	if got := truncate("hello", 150); got != "hello" {
		t.Errorf("short string should pass through, got %q", got)
	}
}
