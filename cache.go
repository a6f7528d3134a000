// cache.go: fixed-capacity square root cache with random replacement
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package sqrtcache

// Slot is one cache entry. A fresh cache holds {0, 0} in every slot, which
// is also the correct entry for key 0, so no separate empty marker is kept.
type Slot struct {
	Key   uint8
	Value uint8
}

// Cache answers truncated square roots for 8-bit keys from CacheSize
// fixed slots. Lookup is a linear scan. A miss computes the key and both
// numeric neighbours and writes each to a uniformly random slot,
// overwriting whatever was there.
//
// A Cache is not safe for concurrent use; it is owned by a single caller.
type Cache struct {
	// Fixed array rather than a slice: the slot count cannot change.
	slots [CacheSize]Slot

	rng          RandomSource
	logger       Logger
	timeProvider TimeProvider
	metrics      MetricsCollector
}

// NewCache creates a cache with every slot set to the {0, 0} sentinel.
func NewCache(config Config) *Cache {
	config.ApplyDefaults()

	return &Cache{
		rng:          config.Random,
		logger:       config.Logger,
		timeProvider: config.TimeProvider,
		metrics:      config.MetricsCollector,
	}
}

// QueryOrInsert returns the truncated square root of key.
//
// On a hit the stored value is returned without mutation and without
// consuming randomness. On a miss the candidates key-1, key and key+1 are
// visited in order; each draws one slot index (three draws per miss, always)
// and, if it lies in [0, 255], overwrites that slot with its root. A
// candidate outside the domain is skipped after its draw. A later candidate
// may overwrite the slot just written for key itself; the returned value is
// unaffected.
func (c *Cache) QueryOrInsert(key uint8) uint8 {
	start := c.timeProvider.Now()

	if value, ok := c.lookup(key); ok {
		c.metrics.RecordQuery(c.timeProvider.Now()-start, true)
		return value
	}

	var root uint8
	for candidate := int(key) - 1; candidate <= int(key)+1; candidate++ {
		idx := c.rng.IntN(CacheSize)

		value, ok := Sqrt(candidate)
		if !ok {
			c.metrics.RecordSkip()
			c.logger.Debug("skipped out-of-domain candidate", "key", key, "candidate", candidate)
			continue
		}

		c.store(idx, uint8(candidate), value) // #nosec G115 - Sqrt bounds candidate to [0, 255]
		if candidate == int(key) {
			root = value
		}
	}

	c.metrics.RecordQuery(c.timeProvider.Now()-start, false)
	return root
}

// Contains reports whether some slot holds key. It never inserts.
func (c *Cache) Contains(key uint8) bool {
	_, ok := c.lookup(key)
	return ok
}

// Slots returns a copy of the storage in slot order.
func (c *Cache) Slots() [CacheSize]Slot {
	return c.slots
}

// Capacity returns the number of slots, which is always CacheSize.
func (c *Cache) Capacity() int {
	return len(c.slots)
}

// Reset restores every slot to the {0, 0} sentinel.
func (c *Cache) Reset() {
	c.slots = [CacheSize]Slot{}
	c.logger.Debug("cache reset", "capacity", CacheSize)
}

// lookup scans slots in order and returns the first match.
func (c *Cache) lookup(key uint8) (uint8, bool) {
	for i := range c.slots {
		if c.slots[i].Key == key {
			return c.slots[i].Value, true
		}
	}
	return 0, false
}

// store overwrites slot idx unconditionally.
func (c *Cache) store(idx int, key uint8, value uint8) {
	old := c.slots[idx]
	c.slots[idx] = Slot{Key: key, Value: value}

	c.metrics.RecordInsert()
	if old.Key != key {
		c.metrics.RecordEviction()
		c.logger.Debug("evicted slot", "slot", idx, "evicted_key", old.Key, "key", key)
	}
}
