// SPDX-License-Identifier: MIT
// Package: resample/cache
//
// Package cache memoizes the partitions of seeded strategies.
//
// A Strategy's String is canonical, and a strategy split without RNG
// options is a pure function of (String, n). The Partitioner keys an LRU
// by the xxh3 hash of that pair, so repeated evaluations of the same
// recipe (e.g. comparing several models on identical folds) shuffle only
// once. Cached partitions are never handed out: every call returns copies.
//
// A Partitioner is safe for concurrent use.
package cache

import (
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"
	"github.com/katalvlaran/resample/split"
	"github.com/zeebo/xxh3"
)

// ErrInvalidSize is returned by New for a non-positive capacity.
var ErrInvalidSize = errors.New("cache: size must be positive")

// Partitioner is an LRU-backed front for Strategy.Split.
type Partitioner struct {
	lru    *lru.Cache
	hits   atomic.Uint64
	misses atomic.Uint64
}

// Stats is a snapshot of cache effectiveness.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// entry keeps the full key next to the partitions so that a hash
// collision is detected and treated as a miss.
type entry struct {
	key   string
	parts []split.Partition
}

// New creates a Partitioner holding at most size results.
func New(size int) (*Partitioner, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}

	return &Partitioner{lru: c}, nil
}

// Split returns s.Split(n), served from the cache when possible.
// Validation errors are returned as-is and never cached.
func (p *Partitioner) Split(s split.Strategy, n int) ([]split.Partition, error) {
	if s == nil {
		return nil, errors.New("cache: nil strategy")
	}
	key := cacheKey(s, n)
	h := xxh3.HashString(key)

	if v, ok := p.lru.Get(h); ok {
		if e := v.(entry); e.key == key {
			p.hits.Add(1)

			return clone(e.parts), nil
		}
	}
	p.misses.Add(1)

	parts, err := s.Split(n)
	if err != nil {
		return nil, err
	}
	p.lru.Add(h, entry{key: key, parts: clone(parts)})

	return parts, nil
}

// Len returns the number of cached results.
func (p *Partitioner) Len() int { return p.lru.Len() }

// Purge drops every cached result. Counters are kept.
func (p *Partitioner) Purge() { p.lru.Purge() }

// Stats returns the current counters.
func (p *Partitioner) Stats() Stats {
	return Stats{Hits: p.hits.Load(), Misses: p.misses.Load(), Entries: p.lru.Len()}
}

func cacheKey(s split.Strategy, n int) string {
	return s.String() + "|n=" + strconv.Itoa(n)
}

func clone(parts []split.Partition) []split.Partition {
	out := make([]split.Partition, len(parts))
	for i, p := range parts {
		out[i] = p.Clone()
	}

	return out
}
