// Package memory provides an in-process cache of readable articles.
package memory

import (
	"container/list"
	"sync"

	"github.com/fwojciec/readview"
)

// Ensure Cache implements readview.ArticleCache at compile time.
var _ readview.ArticleCache = (*Cache)(nil)

// Cache holds the most recently touched articles, keyed by URL.
// Both Get and Set count as a touch. Articles are copied on the way in
// and on the way out so callers never share block slices with the cache.
type Cache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front is most recent
	entries  map[string]*list.Element
}

type entry struct {
	url     string
	article *readview.Article
}

// NewCache returns a cache holding at most capacity articles.
// A non-positive capacity uses readview.MemoryCacheSize.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = readview.MemoryCacheSize
	}
	return &Cache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element, capacity),
	}
}

// Get returns the article for rawURL and marks it most recently used.
func (c *Cache) Get(rawURL string) (*readview.Article, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[rawURL]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*entry).article.Clone(), true
}

// Set stores article under rawURL, evicting the least recently used
// entry when the cache is full.
func (c *Cache) Set(rawURL string, article *readview.Article) {
	if article == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[rawURL]; ok {
		el.Value.(*entry).article = article.Clone()
		c.order.MoveToFront(el)
		return
	}

	c.entries[rawURL] = c.order.PushFront(&entry{url: rawURL, article: article.Clone()})

	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*entry).url)
	}
}

// Len returns the number of cached articles.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
