package cache

import (
	"fmt"
	"time"
)

// LayeredCache reads through its layers in order, fastest first. A hit in a
// slower layer is copied into every faster one with that layer's default TTL.
type LayeredCache struct {
	layers []Cache
}

// NewLayeredCache builds the memory-over-disk cache used by the pipeline
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return NewLayered(NewMemoryCache(memoryTTL, 10*time.Minute), NewDiskCache(diskDir, diskTTL))
}

// NewLayered stacks arbitrary caches, fastest first
func NewLayered(layers ...Cache) *LayeredCache {
	return &LayeredCache{layers: layers}
}

func (c *LayeredCache) Get(key string) ([]byte, bool) {
	for i, layer := range c.layers {
		val, found := layer.Get(key)
		if !found {
			continue
		}
		for _, faster := range c.layers[:i] {
			_ = faster.Set(key, val, 0)
		}
		return val, true
	}
	return nil, false
}

// Set writes through every layer and reports the first failure
func (c *LayeredCache) Set(key string, value []byte, ttl time.Duration) error {
	var firstErr error
	for i, layer := range c.layers {
		if err := layer.Set(key, value, ttl); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("cache layer %d: %w", i, err)
		}
	}
	return firstErr
}

func (c *LayeredCache) Delete(key string) error {
	return c.each(func(layer Cache) error { return layer.Delete(key) })
}

func (c *LayeredCache) Clear() error {
	return c.each(Cache.Clear)
}

func (c *LayeredCache) each(fn func(Cache) error) error {
	var firstErr error
	for _, layer := range c.layers {
		if err := fn(layer); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
