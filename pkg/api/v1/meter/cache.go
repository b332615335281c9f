package meter

import "sync"

// Cache holds the most recent meter reading between polls.
type Cache struct {
	reading *Reading
	sync.RWMutex
}

func (c *Cache) Get() *Reading {
	c.RLock()
	defer c.RUnlock()
	return c.reading
}

func (c *Cache) Set(r *Reading) {
	c.Lock()
	c.reading = r
	c.Unlock()
}
