// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package cache

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestTransportCachesSuccessfulGET(t *testing.T) {
	var upstream atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		upstream.Add(1)
		_, _ = w.Write([]byte(`{"data": {"mal_id": 1}}`))
	}))
	defer server.Close()

	client := &http.Client{Transport: NewTransport(NewLRUCache(10, time.Minute), nil)}

	for i := 0; i < 3; i++ {
		resp, err := client.Get(server.URL + "/anime/1/full")
		if err != nil {
			t.Fatalf("request %d failed: %v", i, err)
		}
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if string(body) != `{"data": {"mal_id": 1}}` {
			t.Errorf("request %d: unexpected body %q", i, body)
		}
	}

	if got := upstream.Load(); got != 1 {
		t.Errorf("expected 1 upstream request, got %d", got)
	}
}

func TestCachedResponseShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": {}}`))
	}))
	defer server.Close()

	client := &http.Client{Transport: NewTransport(NewLRUCache(10, time.Minute), nil)}

	resp, err := client.Get(server.URL + "/anime/1/full")
	if err != nil {
		t.Fatalf("warmup request failed: %v", err)
	}
	_ = resp.Body.Close()

	resp, err = client.Get(server.URL + "/anime/1/full")
	if err != nil {
		t.Fatalf("cached request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.Status != "200 OK" {
		t.Errorf("expected status line %q, got %q", "200 OK", resp.Status)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Cache") != "HIT" {
		t.Error("expected X-Cache HIT header on cached response")
	}
}

func TestTransportDoesNotCacheErrors(t *testing.T) {
	var upstream atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		upstream.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := &http.Client{Transport: NewTransport(NewLRUCache(10, time.Minute), nil)}

	for i := 0; i < 2; i++ {
		resp, err := client.Get(server.URL + "/anime/999/full")
		if err != nil {
			t.Fatalf("request %d failed: %v", i, err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("request %d: expected 404, got %d", i, resp.StatusCode)
		}
	}

	if got := upstream.Load(); got != 2 {
		t.Errorf("expected 2 upstream requests for uncached 404, got %d", got)
	}
}

func TestTransportKeysByFullURL(t *testing.T) {
	var upstream atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstream.Add(1)
		_, _ = w.Write([]byte(r.URL.String()))
	}))
	defer server.Close()

	client := &http.Client{Transport: NewTransport(NewLRUCache(10, time.Minute), nil)}

	urls := []string{
		server.URL + "/anime?page=1",
		server.URL + "/anime?page=2",
		server.URL + "/anime?page=1",
	}
	for _, u := range urls {
		resp, err := client.Get(u)
		if err != nil {
			t.Fatalf("get %s failed: %v", u, err)
		}
		_ = resp.Body.Close()
	}

	if got := upstream.Load(); got != 2 {
		t.Errorf("expected 2 upstream requests for 2 distinct URLs, got %d", got)
	}
}

func TestTransportBypassesNonGET(t *testing.T) {
	var upstream atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		upstream.Add(1)
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := &http.Client{Transport: NewTransport(NewLRUCache(10, time.Minute), nil)}

	for i := 0; i < 2; i++ {
		resp, err := client.Post(server.URL, "text/plain", nil)
		if err != nil {
			t.Fatalf("post %d failed: %v", i, err)
		}
		_ = resp.Body.Close()
	}

	if got := upstream.Load(); got != 2 {
		t.Errorf("expected POSTs to bypass cache, got %d upstream requests", got)
	}
}
