// Package cache provides in-memory caching of fetched pages so repeated
// scans of the same URL within one run (common in batch mode when URL lists
// contain duplicates) skip the network round trip. Nothing is persisted
// across runs.
package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/law-makers/contactscan/pkg/models"
	"github.com/rs/zerolog/log"
)

// Cache defines the interface for page caching implementations
type Cache interface {
	// Get retrieves a cached page by key.
	Get(key string) (*models.PageData, bool)

	// Set stores a page in cache with the specified TTL.
	Set(key string, data *models.PageData, ttl time.Duration) error

	// Delete removes a cached page by key.
	Delete(key string) error

	// Clear removes all cached pages.
	Clear() error

	// Close stops background maintenance.
	Close()
}

type cacheEntry struct {
	key       string
	data      *models.PageData
	size      int64
	expiresAt time.Time
}

// MemoryCache implements in-memory page caching with LRU eviction bounded
// by an approximate byte size.
type MemoryCache struct {
	store   map[string]*list.Element
	lruList *list.List
	mu      sync.Mutex
	maxSize int64
	size    int64
	done    chan struct{}
	once    sync.Once
}

// NewMemoryCache creates a new in-memory cache with LRU eviction
func NewMemoryCache(maxSizeBytes int64) *MemoryCache {
	if maxSizeBytes <= 0 {
		maxSizeBytes = 100 * 1024 * 1024
	}

	c := &MemoryCache{
		store:   make(map[string]*list.Element),
		lruList: list.New(),
		maxSize: maxSizeBytes,
		done:    make(chan struct{}),
	}

	go c.janitor()
	return c
}

// Get retrieves a cached page, refreshing its LRU position
func (c *MemoryCache) Get(key string) (*models.PageData, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.store[key]
	if !ok {
		return nil, false
	}

	entry := elem.Value.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.removeElement(elem)
		return nil, false
	}

	c.lruList.MoveToFront(elem)
	return entry.data, true
}

// Set stores a page, evicting least-recently-used entries if over budget
func (c *MemoryCache) Set(key string, data *models.PageData, ttl time.Duration) error {
	if data == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.store[key]; ok {
		c.removeElement(elem)
	}

	entry := &cacheEntry{
		key:       key,
		data:      data,
		size:      approximateSize(data),
		expiresAt: time.Now().Add(ttl),
	}

	elem := c.lruList.PushFront(entry)
	c.store[key] = elem
	c.size += entry.size

	for c.size > c.maxSize && c.lruList.Len() > 1 {
		oldest := c.lruList.Back()
		if oldest == nil {
			break
		}
		log.Debug().Str("key", oldest.Value.(*cacheEntry).key).Msg("Evicting LRU cache entry")
		c.removeElement(oldest)
	}

	return nil
}

// Delete removes a cached page by key
func (c *MemoryCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.store[key]; ok {
		c.removeElement(elem)
	}
	return nil
}

// Clear removes all cached pages
func (c *MemoryCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*list.Element)
	c.lruList.Init()
	c.size = 0
	return nil
}

// Close stops the background expiry sweep
func (c *MemoryCache) Close() {
	c.once.Do(func() { close(c.done) })
}

func (c *MemoryCache) removeElement(elem *list.Element) {
	entry := elem.Value.(*cacheEntry)
	c.lruList.Remove(elem)
	delete(c.store, entry.key)
	c.size -= entry.size
}

// janitor periodically drops expired entries so long-lived batch runs do
// not accumulate dead pages.
func (c *MemoryCache) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for elem := c.lruList.Back(); elem != nil; {
				prev := elem.Prev()
				if now.After(elem.Value.(*cacheEntry).expiresAt) {
					c.removeElement(elem)
				}
				elem = prev
			}
			c.mu.Unlock()
		}
	}
}

// approximateSize estimates memory used by a cached page; exact accounting
// is not worth the bookkeeping.
func approximateSize(data *models.PageData) int64 {
	size := int64(len(data.URL) + len(data.Title) + len(data.Text) + len(data.HTML))
	for _, l := range data.Links {
		size += int64(len(l))
	}
	for k, v := range data.Metadata {
		size += int64(len(k) + len(v))
	}
	for k, v := range data.Headers {
		size += int64(len(k) + len(v))
	}
	return size + 256
}
