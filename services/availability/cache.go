// File: services/availability/cache.go
package availability

import (
	"sort"
	"sync"
)

// Cache is the in-memory availability view: occupied slots keyed by date.
// It is written both by direct user actions and by the realtime sync
// listener; the mutex serializes those where the original single-threaded
// event loop used to. It is an explicitly owned object, injected rather than
// ambient, so the service can be tested without any backing store.
type Cache struct {
	mu   sync.RWMutex
	book map[string][]string
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{book: make(map[string][]string)}
}

// Contains reports whether the slot is recorded as occupied on the date.
func (c *Cache) Contains(date, slot string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.book[date] {
		if s == slot {
			return true
		}
	}
	return false
}

// Get returns a copy of the date's occupied slots.
func (c *Cache) Get(date string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	slots := c.book[date]
	out := make([]string, len(slots))
	copy(out, slots)
	return out
}

// Append records the slot as occupied, preserving insertion order and
// ignoring duplicates.
func (c *Cache) Append(date, slot string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range c.book[date] {
		if s == slot {
			return
		}
	}
	c.book[date] = append(c.book[date], slot)
}

// Remove frees the slot; an emptied date entry is deleted outright.
func (c *Cache) Remove(date, slot string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	slots, ok := c.book[date]
	if !ok {
		return
	}
	kept := slots[:0]
	for _, s := range slots {
		if s != slot {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		delete(c.book, date)
	} else {
		c.book[date] = kept
	}
}

// SetDay replaces the date's slot list wholesale (last-writer-wins at
// document granularity). An empty list deletes the entry.
func (c *Cache) SetDay(date string, slots []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(slots) == 0 {
		delete(c.book, date)
		return
	}
	copied := make([]string, len(slots))
	copy(copied, slots)
	c.book[date] = copied
}

// Delete drops the date's entry.
func (c *Cache) Delete(date string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.book, date)
}

// Replace swaps the whole book, as on a cold load.
func (c *Cache) Replace(book map[string][]string) {
	copied := make(map[string][]string, len(book))
	for date, slots := range book {
		s := make([]string, len(slots))
		copy(s, slots)
		copied[date] = s
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.book = copied
}

// Clear empties the book.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.book = make(map[string][]string)
}

// PurgeBefore drops every entry dated strictly before reference.
func (c *Cache) PurgeBefore(reference string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for date := range c.book {
		if date < reference {
			delete(c.book, date)
		}
	}
}

// Dates returns the booked dates in ISO (= chronological) order.
func (c *Cache) Dates() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	dates := make([]string, 0, len(c.book))
	for date := range c.book {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}
