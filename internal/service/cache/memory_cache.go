package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/logstream/pipeline/internal/logger"
	"github.com/logstream/pipeline/internal/model"
)

// MemoryCache is the teacher's original container/list FIFO cache
// (internal/service/cache/cache.go), generalized from *model.Order values
// to *model.SearchResult and given TTL-based expiry. Used as the test
// double and as a documented fallback for local/dev deployments without
// Redis.
type MemoryCache struct {
	mu    sync.RWMutex
	data  map[string]*list.Element
	order *list.List
	limit int
	log   logger.InterfaceLogger
}

type entry struct {
	key       string
	value     *model.SearchResult
	expiresAt time.Time
}

var _ InterfaceCache = (*MemoryCache)(nil)

// NewMemoryCache builds a bounded FIFO cache; limit <= 0 means unbounded.
func NewMemoryCache(limit int, log logger.InterfaceLogger) *MemoryCache {
	return &MemoryCache{
		data:  make(map[string]*list.Element),
		order: list.New(),
		limit: limit,
		log:   log,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (*model.SearchResult, error) {
	c.mu.RLock()
	elem, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		return nil, model.ErrCacheMiss
	}

	ent := elem.Value.(*entry)
	if !ent.expiresAt.IsZero() && time.Now().After(ent.expiresAt) {
		c.mu.Lock()
		c.removeLocked(elem)
		c.mu.Unlock()
		return nil, model.ErrCacheMiss
	}
	return ent.value, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value *model.SearchResult, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	if elem, ok := c.data[key]; ok {
		elem.Value.(*entry).value = value
		elem.Value.(*entry).expiresAt = expiresAt
		return nil
	}

	if c.limit > 0 && c.order.Len() >= c.limit {
		oldest := c.order.Front()
		if oldest != nil {
			c.removeLocked(oldest)
		}
	}

	ent := &entry{key: key, value: value, expiresAt: expiresAt}
	elem := c.order.PushBack(ent)
	c.data[key] = elem
	return nil
}

func (c *MemoryCache) removeLocked(elem *list.Element) {
	ent := elem.Value.(*entry)
	delete(c.data, ent.key)
	c.order.Remove(elem)
}
