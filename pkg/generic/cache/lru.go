package cache

import "sync"

// DefaultCapacity is used when a cache is created with a capacity below one.
const DefaultCapacity = 16

type entry[K comparable, V any] struct {
	key        K
	value      V
	prev, next *entry[K, V]
}

// LRU holds at most cap entries and evicts the least recently used one
// when a new key is added to a full cache.
type LRU[K comparable, V any] struct {
	mu      sync.Mutex
	cap     int
	entries map[K]*entry[K, V]
	root    entry[K, V] // sentinel, root.next is the most recently used
}

func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	l := &LRU[K, V]{
		cap:     capacity,
		entries: make(map[K]*entry[K, V], capacity),
	}
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

func (l *LRU[K, V]) unlink(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

func (l *LRU[K, V]) pushFront(e *entry[K, V]) {
	e.prev = &l.root
	e.next = l.root.next
	l.root.next.prev = e
	l.root.next = e
}

// Put inserts or replaces the value for key and marks it most recently used.
// It reports the key that was evicted to make room, if any.
func (l *LRU[K, V]) Put(key K, value V) (evicted K, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if e, found := l.entries[key]; found {
		e.value = value
		l.unlink(e)
		l.pushFront(e)
		return evicted, false
	}
	if len(l.entries) == l.cap {
		oldest := l.root.prev
		l.unlink(oldest)
		delete(l.entries, oldest.key)
		evicted, ok = oldest.key, true
	}
	e := &entry[K, V]{key: key, value: value}
	l.pushFront(e)
	l.entries[key] = e
	return evicted, ok
}

// Get returns the value for key and marks it most recently used.
func (l *LRU[K, V]) Get(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, found := l.entries[key]
	if !found {
		return *new(V), false
	}
	l.unlink(e)
	l.pushFront(e)
	return e.value, true
}

// Del removes key and returns its value, if present.
func (l *LRU[K, V]) Del(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, found := l.entries[key]
	if !found {
		return *new(V), false
	}
	l.unlink(e)
	delete(l.entries, key)
	return e.value, true
}

func (l *LRU[K, V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Keys returns the cached keys from most to least recently used.
func (l *LRU[K, V]) Keys() []K {
	l.mu.Lock()
	defer l.mu.Unlock()
	keys := make([]K, 0, len(l.entries))
	for e := l.root.next; e != &l.root; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}
