// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package web

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tsukihub/tsukihub/internal/config"
	"github.com/tsukihub/tsukihub/internal/jikan"
)

// upstreamStub is a fake Jikan API that records every path it serves.
type upstreamStub struct {
	mu        sync.Mutex
	requests  []string
	responses map[string]stubResponse
}

type stubResponse struct {
	status int
	body   string
}

func newUpstreamStub() *upstreamStub {
	return &upstreamStub{responses: make(map[string]stubResponse)}
}

func (u *upstreamStub) respond(path string, status int, body string) {
	u.responses[path] = stubResponse{status: status, body: body}
}

func (u *upstreamStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.requests = append(u.requests, r.URL.Path)
	u.mu.Unlock()

	resp, ok := u.responses[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status": 404, "message": "Resource does not exist"}`))
		return
	}
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}

func (u *upstreamStub) requestCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.requests)
}

func (u *upstreamStub) requested(path string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, p := range u.requests {
		if p == path {
			return true
		}
	}
	return false
}

// stubCompleter is a canned recommendation collaborator.
type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}

// newTestServer builds a Server wired to the given upstream stub, with no
// request delay and rate limiting off.
func newTestServer(t *testing.T, upstream *upstreamStub, completer *stubCompleter) (*Server, *httptest.Server) {
	t.Helper()

	upstreamServer := httptest.NewServer(upstream)
	t.Cleanup(upstreamServer.Close)

	cfg := &config.Config{
		Jikan: config.JikanConfig{
			BaseURL:      upstreamServer.URL,
			RequestDelay: 0,
			Timeout:      5 * time.Second,
		},
		Recommend: config.RecommendConfig{Enabled: completer != nil},
		RateLimit: config.RateLimitConfig{Disabled: true},
	}

	client := jikan.New(cfg.Jikan, nil)

	var c = completer
	if c == nil {
		c = &stubCompleter{}
	}

	server, err := NewServer(cfg, client, c)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server, upstreamServer
}

// get performs a request against the router and returns the recorder.
func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

const animeFullBody = `{
	"data": {
		"mal_id": 20,
		"title": "Naruto",
		"title_english": "Naruto",
		"synopsis": "A young ninja seeks recognition.",
		"type": "TV",
		"status": "Finished Airing",
		"relations": [{"relation": "Sequel", "entry": [{"mal_id": 1735, "type": "anime", "name": "Naruto: Shippuuden", "url": ""}]}]
	}
}`

func TestAnimeDetailRendersSections(t *testing.T) {
	upstream := newUpstreamStub()
	upstream.respond("/anime/20/full", 200, animeFullBody)
	upstream.respond("/anime/20/characters", 200, `{
		"data": [
			{"character": {"mal_id": 17, "name": "Uzumaki, Naruto"}, "role": "Main", "voice_actors": []},
			{"character": {"mal_id": 85, "name": "Hatake, Kakashi"}, "role": "Supporting", "voice_actors": []}
		]
	}`)
	upstream.respond("/anime/20/news", 200, `{
		"data": [{"mal_id": 1, "title": "Naruto stage play announced", "url": "https://example.org/n/1", "date": "2024-01-01"}],
		"pagination": {"current_page": 1, "last_visible_page": 3, "has_next_page": true}
	}`)
	upstream.respond("/anime/20/recommendations", 200, `{
		"data": [{"entry": {"mal_id": 21, "title": "One Piece"}, "votes": 120}]
	}`)

	server, _ := newTestServer(t, upstream, nil)
	rec := get(t, server, "/anime/20")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"Naruto",
		"Uzumaki, Naruto",
		"Naruto stage play announced",
		"One Piece",
		"Naruto: Shippuuden",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	// Supporting characters stay off the detail page.
	if strings.Contains(body, "Hatake, Kakashi") {
		t.Error("supporting character should not appear in main character strip")
	}
	if !strings.Contains(body, "<title>Naruto | Tsukihub</title>") {
		t.Error("page title not derived from the fetched record")
	}
}

func TestAnimeNotFoundSkipsSecondaryFetches(t *testing.T) {
	upstream := newUpstreamStub()
	// No responses registered: every path 404s.

	server, _ := newTestServer(t, upstream, nil)
	rec := get(t, server, "/anime/999999")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Anime Not Found") {
		t.Error("expected not-found page body")
	}
	if got := upstream.requestCount(); got != 1 {
		t.Errorf("expected exactly 1 upstream request for missing primary, got %d", got)
	}
	if upstream.requested("/anime/999999/characters") {
		t.Error("secondary characters fetch must not happen when the primary is missing")
	}
}

func TestAnimeDetailSecondaryFailureCollapses(t *testing.T) {
	upstream := newUpstreamStub()
	upstream.respond("/anime/20/full", 200, animeFullBody)
	upstream.respond("/anime/20/characters", 500, `{"status": 500}`)
	upstream.respond("/anime/20/news", 200, `{"data": [], "pagination": {}}`)
	upstream.respond("/anime/20/recommendations", 200, `{"data": []}`)

	server, _ := newTestServer(t, upstream, nil)
	rec := get(t, server, "/anime/20")

	if rec.Code != http.StatusOK {
		t.Fatalf("secondary failure must not fail the page, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Naruto") {
		t.Error("primary content missing")
	}
	if strings.Contains(rec.Body.String(), "Main Characters") {
		t.Error("failed characters section should render empty")
	}
}

func TestAnimeRecommendationsSubPage(t *testing.T) {
	upstream := newUpstreamStub()
	upstream.respond("/anime/20/full", 200, animeFullBody)
	upstream.respond("/anime/20/recommendations", 200, `{
		"data": [
			{"entry": {"mal_id": 21, "title": "One Piece"}, "votes": 120},
			{"entry": {"mal_id": 269, "title": "Bleach"}, "votes": 80}
		]
	}`)

	server, _ := newTestServer(t, upstream, nil)
	rec := get(t, server, "/anime/20/recommendations")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "One Piece") || !strings.Contains(body, "Bleach") {
		t.Error("expected recommended entries in listing")
	}
	if !strings.Contains(body, `href="/anime/21"`) {
		t.Error("expected recommendation link to anime detail")
	}
	if !strings.Contains(body, "120 votes") {
		t.Error("expected vote count subtitle")
	}
}

func TestCharacterVoicesSubPage(t *testing.T) {
	upstream := newUpstreamStub()
	upstream.respond("/characters/17", 200, `{"data": {"mal_id": 17, "name": "Uzumaki, Naruto"}}`)
	upstream.respond("/characters/17/voices", 200, `{
		"data": [
			{"person": {"mal_id": 14, "name": "Takeuchi, Junko"}, "language": "Japanese"},
			{"person": {"mal_id": 95, "name": "Flanagan, Maile"}, "language": "English"}
		]
	}`)

	server, _ := newTestServer(t, upstream, nil)
	rec := get(t, server, "/characters/17/voices")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Takeuchi, Junko") || !strings.Contains(body, "Japanese") {
		t.Error("expected voice actor with language subtitle")
	}
	if !strings.Contains(body, `href="/people/14"`) {
		t.Error("expected link to person detail")
	}
}

func TestPersonAnimeCreditsSubPage(t *testing.T) {
	upstream := newUpstreamStub()
	upstream.respond("/people/1879", 200, `{"data": {"mal_id": 1879, "name": "Kishimoto, Masashi"}}`)
	upstream.respond("/people/1879/anime", 200, `{
		"data": [{"position": "Original Creator", "anime": {"mal_id": 20, "title": "Naruto"}}]
	}`)

	server, _ := newTestServer(t, upstream, nil)
	rec := get(t, server, "/people/1879/anime")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Original Creator") {
		t.Error("expected credit position subtitle")
	}
	if !strings.Contains(body, `href="/anime/20"`) {
		t.Error("expected link to credited anime")
	}
}

func TestAnimeUpstreamErrorRendersErrorPage(t *testing.T) {
	upstream := newUpstreamStub()
	upstream.respond("/anime/20/full", 500, `{"status": 500}`)

	server, _ := newTestServer(t, upstream, nil)
	rec := get(t, server, "/anime/20")

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 for failed primary, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Something Went Wrong") {
		t.Error("expected error page body")
	}
}

func TestAnimeInvalidIDIsNotFoundWithoutUpstreamCall(t *testing.T) {
	upstream := newUpstreamStub()
	server, _ := newTestServer(t, upstream, nil)

	rec := get(t, server, "/anime/banana")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for non-numeric ID, got %d", rec.Code)
	}
	if got := upstream.requestCount(); got != 0 {
		t.Errorf("expected no upstream requests for invalid ID, got %d", got)
	}
}

func TestHomeDeduplicatesSections(t *testing.T) {
	upstream := newUpstreamStub()
	upstream.respond("/top/anime", 200, `{
		"data": [
			{"mal_id": 1, "title": "Shared Title"},
			{"mal_id": 2, "title": "Unique Title"}
		],
		"pagination": {}
	}`)

	server, _ := newTestServer(t, upstream, nil)
	rec := get(t, server, "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	// All three sections hit /top/anime with different filters, so both IDs
	// would repeat three times without deduplication.
	if got := strings.Count(rec.Body.String(), "Shared Title"); got != 1 {
		t.Errorf("expected a shared anime to appear once across sections, got %d occurrences", got)
	}
}

func TestClubMembersUsesSlidingPager(t *testing.T) {
	upstream := newUpstreamStub()
	upstream.respond("/clubs/5", 200, `{"data": {"mal_id": 5, "name": "Mystery Club", "members": 5000, "category": "anime", "access": "public"}}`)
	upstream.respond("/clubs/5/members", 200, `{
		"data": [{"username": "alice", "url": "https://example.org/alice"}],
		"pagination": {"current_page": 50, "last_visible_page": 140, "has_next_page": true}
	}`)

	server, _ := newTestServer(t, upstream, nil)
	rec := get(t, server, "/clubs/5/members?page=50")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	// Window runs from 45 to 54 around page 50.
	for _, want := range []string{"page=45", "page=54"} {
		if !strings.Contains(body, want) {
			t.Errorf("sliding pager missing link %q", want)
		}
	}
	if strings.Contains(body, "page=44") || strings.Contains(body, "page=55") {
		t.Error("sliding pager leaked links outside its window")
	}
}

func TestSearchFallsBackToAnime(t *testing.T) {
	upstream := newUpstreamStub()
	upstream.respond("/anime", 200, `{
		"data": [{"mal_id": 20, "title": "Naruto"}],
		"pagination": {"current_page": 1, "last_visible_page": 1}
	}`)

	server, _ := newTestServer(t, upstream, nil)
	rec := get(t, server, "/search?q=naruto&type=nonsense")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Naruto") {
		t.Error("expected anime search results for unknown type")
	}
}

func TestSearchEmptyQuerySkipsUpstream(t *testing.T) {
	upstream := newUpstreamStub()
	server, _ := newTestServer(t, upstream, nil)

	rec := get(t, server, "/search")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := upstream.requestCount(); got != 0 {
		t.Errorf("empty query should not hit upstream, got %d requests", got)
	}
}

func TestTopClubsListing(t *testing.T) {
	upstream := newUpstreamStub()
	upstream.respond("/top/clubs", 200, `{
		"data": [{"mal_id": 72940, "name": "Anime Cafe", "members": 1200, "category": "anime"}],
		"pagination": {"current_page": 1, "last_visible_page": 1}
	}`)

	server, _ := newTestServer(t, upstream, nil)
	rec := get(t, server, "/top/clubs")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Top Clubs") {
		t.Error("expected Top Clubs heading")
	}
	if !strings.Contains(body, "Anime Cafe") || !strings.Contains(body, `href="/clubs/72940"`) {
		t.Error("expected club card linking to club detail")
	}
}

func TestTopAnimeFilterCarriedThroughPager(t *testing.T) {
	upstream := newUpstreamStub()
	upstream.respond("/top/anime", 200, `{
		"data": [{"mal_id": 20, "title": "Naruto"}],
		"pagination": {"current_page": 1, "last_visible_page": 3, "has_next_page": true}
	}`)

	server, _ := newTestServer(t, upstream, nil)
	rec := get(t, server, "/top/anime?filter=bypopularity")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/top/anime?filter=bypopularity&amp;page=2") {
		t.Error("expected pager links to preserve the filter param")
	}
}

func TestAnimeEpisodesPageTwoRendersWindow(t *testing.T) {
	upstream := newUpstreamStub()
	upstream.respond("/anime/1/full", 200, `{"data": {"mal_id": 1, "title": "Cowboy Bebop"}}`)
	upstream.respond("/anime/1/episodes", 200, `{
		"data": [
			{"mal_id": 101, "title": "Stray Dog Strut"},
			{"mal_id": 102, "title": "Honky Tonk Women"},
			{"mal_id": 103, "title": "Gateway Shuffle"}
		],
		"pagination": {"current_page": 2, "last_visible_page": 5, "has_next_page": true}
	}`)

	server, _ := newTestServer(t, upstream, nil)
	rec := get(t, server, "/anime/1/episodes?page=2")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()

	for _, title := range []string{"Stray Dog Strut", "Honky Tonk Women", "Gateway Shuffle"} {
		if !strings.Contains(body, title) {
			t.Errorf("expected episode %q in listing", title)
		}
	}
	if got := strings.Count(body, `href="/anime/1/episodes/`); got != 3 {
		t.Errorf("expected exactly 3 episode links, got %d", got)
	}
	if !strings.Contains(body, `href="/anime/1/episodes?page=1">Previous</a>`) {
		t.Error("expected previous link to page 1")
	}
	if !strings.Contains(body, `href="/anime/1/episodes?page=3">Next</a>`) {
		t.Error("expected next link to page 3")
	}
	for page := 1; page <= 5; page++ {
		if page == 2 {
			continue
		}
		want := fmt.Sprintf(`href="/anime/1/episodes?page=%d">%d</a>`, page, page)
		if !strings.Contains(body, want) {
			t.Errorf("expected page link %d", page)
		}
	}
	if strings.Contains(body, `href="/anime/1/episodes?page=2">2</a>`) {
		t.Error("current page must not be a link")
	}
}

func TestTopUnknownKindIsNotFound(t *testing.T) {
	upstream := newUpstreamStub()
	server, _ := newTestServer(t, upstream, nil)

	rec := get(t, server, "/top/studios")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown top kind, got %d", rec.Code)
	}
}

func TestSeasonRejectsUnknownSeasonName(t *testing.T) {
	upstream := newUpstreamStub()
	server, _ := newTestServer(t, upstream, nil)

	rec := get(t, server, "/seasons/2024/monsoon")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown season name, got %d", rec.Code)
	}
	if got := upstream.requestCount(); got != 0 {
		t.Errorf("invalid season should not hit upstream, got %d requests", got)
	}
}

func TestHealthz(t *testing.T) {
	server, _ := newTestServer(t, newUpstreamStub(), nil)

	rec := get(t, server, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected health body %q", rec.Body.String())
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	server, _ := newTestServer(t, newUpstreamStub(), nil)

	rec := get(t, server, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Error("expected Prometheus default collectors in output")
	}
}

func TestRecommendFormValidation(t *testing.T) {
	completer := &stubCompleter{reply: "Try Monster."}
	server, _ := newTestServer(t, newUpstreamStub(), completer)

	form := url.Values{}
	form.Set("favorites", "short")
	form.Set("preferences", "also short")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	server.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for invalid form, got %d", rec.Code)
	}
	if completer.calls != 0 {
		t.Error("collaborator must not be called for invalid input")
	}
	// Visitor input is preserved in the re-rendered form.
	if !strings.Contains(rec.Body.String(), "short") {
		t.Error("form input not preserved on validation failure")
	}
}

func TestRecommendFormSuccess(t *testing.T) {
	completer := &stubCompleter{reply: "Try Monster."}
	server, _ := newTestServer(t, newUpstreamStub(), completer)

	form := url.Values{}
	form.Set("favorites", "Death Note, Psycho-Pass and Monster")
	form.Set("preferences", "dark psychological thrillers with smart leads")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	server.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if completer.calls != 1 {
		t.Errorf("expected 1 collaborator call, got %d", completer.calls)
	}
	if !strings.Contains(rec.Body.String(), "Try Monster.") {
		t.Error("collaborator reply not rendered")
	}
}

func TestRecommendDisabledIsNotFound(t *testing.T) {
	server, _ := newTestServer(t, newUpstreamStub(), nil)

	rec := get(t, server, "/recommendations")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 when recommendations are disabled, got %d", rec.Code)
	}
}

func TestUnknownRouteRendersNotFoundPage(t *testing.T) {
	server, _ := newTestServer(t, newUpstreamStub(), nil)

	rec := get(t, server, "/no/such/page")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Not Found") {
		t.Error("expected rendered not-found page")
	}
}

func TestRequestIDHeaderOnPages(t *testing.T) {
	upstream := newUpstreamStub()
	server, _ := newTestServer(t, upstream, nil)

	rec := get(t, server, "/healthz")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header on responses")
	}
}
