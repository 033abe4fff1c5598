// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package web

import (
	"net/http"
	"strconv"

	"github.com/tsukihub/tsukihub/internal/jikan"
)

// maxPagerPages caps how many page links a standard pager renders.
const maxPagerPages = 10

// slidingPagerSpan is how many links a sliding pager shows around the
// current page.
const slidingPagerSpan = 10

// Pager is the pagination strip rendered under listing pages.
type Pager struct {
	Current int
	Last    int
	Pages   []int
	HasNext bool

	// BaseURL is the page path plus any fixed query params, ready for the
	// template to append "page=N". It ends in '?' or '&'.
	BaseURL string
}

// cappedPager builds a pager showing pages 1 through min(last, 10). Deep
// listings keep their upstream page count but only the first ten pages get
// direct links.
func cappedPager(p jikan.Pagination, baseURL string) Pager {
	last := p.LastVisiblePage
	shown := last
	if shown > maxPagerPages {
		shown = maxPagerPages
	}

	pages := make([]int, 0, shown)
	for i := 1; i <= shown; i++ {
		pages = append(pages, i)
	}

	return Pager{
		Current: p.CurrentPage,
		Last:    last,
		Pages:   pages,
		HasNext: p.HasNextPage,
		BaseURL: baseURL,
	}
}

// slidingPager builds a pager windowed around the current page: five pages
// back and four forward, clipped to [1, last]. Club member listings run to
// hundreds of pages, so a fixed leading window is useless there.
func slidingPager(p jikan.Pagination, baseURL string) Pager {
	current := p.CurrentPage
	last := p.LastVisiblePage

	start := current - 5
	if start < 1 {
		start = 1
	}
	end := current + 4
	if end > last {
		end = last
	}

	pages := make([]int, 0, slidingPagerSpan)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}

	return Pager{
		Current: current,
		Last:    last,
		Pages:   pages,
		HasNext: p.HasNextPage,
		BaseURL: baseURL,
	}
}

// parsePage reads the "page" query parameter, defaulting to 1 for absent,
// malformed or non-positive values.
func parsePage(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
