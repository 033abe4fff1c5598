// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package web

import (
	"net/http/httptest"
	"testing"

	"github.com/tsukihub/tsukihub/internal/jikan"
)

func TestCappedPagerShortListing(t *testing.T) {
	pager := cappedPager(jikan.Pagination{CurrentPage: 2, LastVisiblePage: 4, HasNextPage: true}, "/x?")

	if len(pager.Pages) != 4 {
		t.Fatalf("expected 4 page links, got %d", len(pager.Pages))
	}
	if pager.Pages[0] != 1 || pager.Pages[3] != 4 {
		t.Errorf("expected pages 1..4, got %v", pager.Pages)
	}
	if !pager.HasNext {
		t.Error("expected HasNext passed through from upstream")
	}
}

func TestCappedPagerCapsAtTen(t *testing.T) {
	pager := cappedPager(jikan.Pagination{CurrentPage: 1, LastVisiblePage: 500}, "/x?")

	if len(pager.Pages) != 10 {
		t.Fatalf("expected 10 page links, got %d", len(pager.Pages))
	}
	if pager.Pages[9] != 10 {
		t.Errorf("expected last link to be 10, got %d", pager.Pages[9])
	}
	if pager.Last != 500 {
		t.Errorf("upstream last page should be preserved, got %d", pager.Last)
	}
}

func TestSlidingPagerWindow(t *testing.T) {
	pager := slidingPager(jikan.Pagination{CurrentPage: 50, LastVisiblePage: 140, HasNextPage: true}, "/x?")

	if len(pager.Pages) != 10 {
		t.Fatalf("expected 10 page links, got %d", len(pager.Pages))
	}
	if pager.Pages[0] != 45 || pager.Pages[9] != 54 {
		t.Errorf("expected window 45..54, got %v", pager.Pages)
	}
}

func TestSlidingPagerClipsAtStart(t *testing.T) {
	pager := slidingPager(jikan.Pagination{CurrentPage: 2, LastVisiblePage: 140}, "/x?")

	if pager.Pages[0] != 1 {
		t.Errorf("expected window clipped to start at 1, got %v", pager.Pages)
	}
	if pager.Pages[len(pager.Pages)-1] != 6 {
		t.Errorf("expected window to end at 6, got %v", pager.Pages)
	}
}

func TestSlidingPagerClipsAtEnd(t *testing.T) {
	pager := slidingPager(jikan.Pagination{CurrentPage: 139, LastVisiblePage: 140}, "/x?")

	if pager.Pages[len(pager.Pages)-1] != 140 {
		t.Errorf("expected window clipped to end at 140, got %v", pager.Pages)
	}
	if pager.Pages[0] != 134 {
		t.Errorf("expected window to start at 134, got %v", pager.Pages)
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 1},
		{"page=3", 3},
		{"page=0", 1},
		{"page=-2", 1},
		{"page=banana", 1},
	}

	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/x?"+tt.query, nil)
		if got := parsePage(r); got != tt.want {
			t.Errorf("parsePage(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}
