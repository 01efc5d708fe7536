// ABOUTME: O(1) LRU cache for cluster widths, shared by the measurement backends
// ABOUTME: container/list for eviction order; RWMutex so one measurer can serve goroutines

package measure

import (
	"container/list"
	"sync"
)

type lruEntry[V any] struct {
	key   string
	value V
}

type lru[V any] struct {
	mu    sync.RWMutex
	items map[string]*list.Element
	order *list.List
	size  int
}

func newLRU[V any](size int) *lru[V] {
	return &lru[V]{
		items: make(map[string]*list.Element, size),
		order: list.New(),
		size:  size,
	}
}

func (c *lru[V]) get(key string) (V, bool) {
	c.mu.RLock()
	elem, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		var zero V
		return zero, false
	}
	c.mu.Lock()
	c.order.MoveToFront(elem)
	c.mu.Unlock()
	return elem.Value.(lruEntry[V]).value, true
}

func (c *lru[V]) put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; ok {
		return
	}
	if c.order.Len() >= c.size {
		if back := c.order.Back(); back != nil {
			c.order.Remove(back)
			delete(c.items, back.Value.(lruEntry[V]).key)
		}
	}
	c.items[key] = c.order.PushFront(lruEntry[V]{key: key, value: value})
}

func (c *lru[V]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.order.Len()
}
