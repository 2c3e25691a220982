package image

import (
	"container/list"
	"context"
	"errors"
	"sync"
)

// ErrCacheMiss indicates a cache miss.
var ErrCacheMiss = errors.New("cache miss")

// Image is a fetched image body with its content type.
type Image struct {
	Data        []byte
	ContentType string
}

// Cache stores fetched images by URL.
type Cache interface {
	// Get returns ErrCacheMiss when url is not cached.
	Get(ctx context.Context, url string) (*Image, error)
	Set(ctx context.Context, url string, img *Image) error
	Close() error
}

// MemoryCache is an in-process LRU cache bounded by entry count.
type MemoryCache struct {
	capacity int
	entries  map[string]*list.Element
	lru      *list.List
	mu       sync.Mutex
}

type cacheEntry struct {
	url string
	img *Image
}

// NewMemoryCache creates a cache holding at most capacity images.
func NewMemoryCache(capacity int) *MemoryCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &MemoryCache{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		lru:      list.New(),
	}
}

func (c *MemoryCache) Get(_ context.Context, url string) (*Image, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[url]
	if !ok {
		return nil, ErrCacheMiss
	}
	c.lru.MoveToFront(elem)
	return elem.Value.(*cacheEntry).img, nil
}

// Set stores img for url, evicting the least recently used entry if at capacity.
func (c *MemoryCache) Set(_ context.Context, url string, img *Image) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[url]; ok {
		c.lru.MoveToFront(elem)
		elem.Value.(*cacheEntry).img = img
		return nil
	}

	c.entries[url] = c.lru.PushFront(&cacheEntry{url: url, img: img})
	if c.lru.Len() > c.capacity {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).url)
	}
	return nil
}

// Len returns the number of cached images.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *MemoryCache) Close() error { return nil }
