package cache

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/law-makers/contactscan/pkg/models"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(1024 * 1024)
	defer c.Close()

	page := &models.PageData{URL: "https://example.com", Title: "Example"}
	if err := c.Set("https://example.com", page, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok := c.Get("https://example.com")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.Title != "Example" {
		t.Errorf("title = %q", got.Title)
	}

	if _, ok := c.Get("https://other.com"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache(1024 * 1024)
	defer c.Close()

	page := &models.PageData{URL: "https://example.com"}
	c.Set("k", page, 10*time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestMemoryCache_LRUEviction(t *testing.T) {
	// Small budget: a few large pages force eviction of the oldest
	c := NewMemoryCache(4096)
	defer c.Close()

	bigText := strings.Repeat("x", 1500)
	for i := 0; i < 4; i++ {
		key := fmt.Sprintf("page-%d", i)
		c.Set(key, &models.PageData{URL: key, Text: bigText}, time.Minute)
	}

	if _, ok := c.Get("page-0"); ok {
		t.Error("expected oldest entry to be evicted")
	}
	if _, ok := c.Get("page-3"); !ok {
		t.Error("expected newest entry to survive")
	}
}
