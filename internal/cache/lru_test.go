// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package cache

import (
	"testing"
	"time"
)

func TestLRUCacheGetAdd(t *testing.T) {
	c := NewLRUCache(10, time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss for absent key")
	}

	c.Add("a", []byte("value-a"))
	got, ok := c.Get("a")
	if !ok {
		t.Fatal("expected hit for key a")
	}
	if string(got) != "value-a" {
		t.Errorf("expected value-a, got %q", got)
	}

	c.Add("a", []byte("value-a2"))
	got, _ = c.Get("a")
	if string(got) != "value-a2" {
		t.Errorf("expected updated value, got %q", got)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry after update, got %d", c.Len())
	}
}

func TestLRUCacheEviction(t *testing.T) {
	c := NewLRUCache(3, time.Minute)

	c.Add("a", []byte("1"))
	c.Add("b", []byte("2"))
	c.Add("c", []byte("3"))

	// Touch "a" so it becomes most recently used.
	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected hit for a")
	}

	c.Add("d", []byte("4"))

	if c.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", c.Len())
	}
	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted as least recently used")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("expected a to survive eviction")
	}
	if _, ok := c.Get("d"); !ok {
		t.Error("expected d to be present")
	}
}

func TestLRUCacheTTLExpiry(t *testing.T) {
	c := NewLRUCache(10, 20*time.Millisecond)

	c.Add("a", []byte("1"))
	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected hit before expiry")
	}

	time.Sleep(30 * time.Millisecond)

	if _, ok := c.Get("a"); ok {
		t.Error("expected miss after TTL expiry")
	}
	if c.Len() != 0 {
		t.Errorf("expected expired entry removed, got %d entries", c.Len())
	}
}

func TestLRUCacheCleanupExpired(t *testing.T) {
	c := NewLRUCache(10, 20*time.Millisecond)

	c.Add("a", []byte("1"))
	c.Add("b", []byte("2"))

	time.Sleep(30 * time.Millisecond)
	c.Add("c", []byte("3"))

	removed := c.CleanupExpired()
	if removed != 2 {
		t.Errorf("expected 2 removed, got %d", removed)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 remaining entry, got %d", c.Len())
	}
}

func TestLRUCacheStats(t *testing.T) {
	c := NewLRUCache(10, time.Minute)

	c.Add("a", []byte("1"))
	c.Get("a")
	c.Get("a")
	c.Get("missing")

	hits, misses, size := c.Stats()
	if hits != 2 {
		t.Errorf("expected 2 hits, got %d", hits)
	}
	if misses != 1 {
		t.Errorf("expected 1 miss, got %d", misses)
	}
	if size != 1 {
		t.Errorf("expected size 1, got %d", size)
	}
}

func TestLRUCacheRemoveAndClear(t *testing.T) {
	c := NewLRUCache(10, time.Minute)

	c.Add("a", []byte("1"))
	c.Add("b", []byte("2"))

	if !c.Remove("a") {
		t.Error("expected Remove to report true for present key")
	}
	if c.Remove("a") {
		t.Error("expected Remove to report false for absent key")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected empty cache after Clear, got %d", c.Len())
	}
}
