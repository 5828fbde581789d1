// Copyright 2016 Google Inc. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cache memoizes non-default interior node hashes of a sparse
// Merkle tree, keyed by node height and base prefix.
package cache

import (
	"bytes"

	"github.com/TymurKhr/smt/monitoring"
)

// Cache stores interior node hashes between tree operations. A Cache is
// authoritative only when Exists reports true; on a miss the caller must
// recompute. Implementations must be indistinguishable from an empty cache
// as far as computed root hashes are concerned.
type Cache interface {
	// Exists reports whether a hash is stored for the node (height, base).
	Exists(height int, base []byte) bool
	// Get returns the stored hash for (height, base). It must only be
	// called after Exists has reported true for the same node.
	Get(height int, base []byte) []byte
	// HashCache observes a freshly computed interior hash for the node
	// (height, base) with child hashes left and right, and decides whether
	// to retain it. split is the base of the right child; defaultHashes
	// are the empty-subtree hashes indexed by height.
	HashCache(left, right []byte, height int, base, split, interiorHash []byte, defaultHashes [][]byte)
	// Entries returns the number of stored hashes.
	Entries() int
}

// NoCache stores nothing and never reports a hit.
type NoCache struct{}

// Exists always reports false.
func (NoCache) Exists(_ int, _ []byte) bool { return false }

// Get is never reached behind a false Exists; it returns nil.
func (NoCache) Get(_ int, _ []byte) []byte { return nil }

// HashCache discards the offered hash.
func (NoCache) HashCache(_, _ []byte, _ int, _, _, _ []byte, _ [][]byte) {}

// Entries always returns zero.
func (NoCache) Entries() int { return 0 }

// BranchCache retains interior hashes of nodes whose children both carry
// real data. A node with at least one empty subtree is cheap to recompute
// from the non-empty side and a default hash, so storing it would grow the
// cache with the audit-path-sized fringe of every key.
type BranchCache struct {
	hashes map[string][]byte
}

// NewBranch returns an empty BranchCache.
func NewBranch() *BranchCache {
	return &BranchCache{hashes: make(map[string][]byte)}
}

// nodeKey folds a node's height and base prefix into a map key.
func nodeKey(height int, base []byte) string {
	k := make([]byte, 0, 2+len(base))
	k = append(k, byte(height>>8), byte(height))
	k = append(k, base...)
	return string(k)
}

// Exists reports whether a hash is stored for (height, base).
func (b *BranchCache) Exists(height int, base []byte) bool {
	_, ok := b.hashes[nodeKey(height, base)]
	return ok
}

// Get returns the stored hash for (height, base).
func (b *BranchCache) Get(height int, base []byte) []byte {
	return b.hashes[nodeKey(height, base)]
}

// HashCache stores interiorHash if neither child is the empty-subtree hash
// for its level, and otherwise drops any stale entry for the node.
func (b *BranchCache) HashCache(left, right []byte, height int, base, _, interiorHash []byte, defaultHashes [][]byte) {
	k := nodeKey(height, base)
	def := defaultHashes[height-1]
	if !bytes.Equal(left, def) && !bytes.Equal(right, def) {
		b.hashes[k] = append(make([]byte, 0, len(interiorHash)), interiorHash...)
		return
	}
	delete(b.hashes, k)
}

// Entries returns the number of stored hashes.
func (b *BranchCache) Entries() int {
	return len(b.hashes)
}

// CountingCache wraps another Cache and exports hit/miss/store/evict
// counters for it.
type CountingCache struct {
	next Cache

	hits   monitoring.Counter
	misses monitoring.Counter
	stores monitoring.Counter
	evicts monitoring.Counter
}

// NewCounting wraps next with counters created through mf.
func NewCounting(next Cache, mf monitoring.MetricFactory) *CountingCache {
	if mf == nil {
		mf = monitoring.InertMetricFactory{}
	}
	return &CountingCache{
		next:   next,
		hits:   mf.NewCounter("smt_cache_hits", "Number of interior hash lookups served from the cache"),
		misses: mf.NewCounter("smt_cache_misses", "Number of interior hash lookups that required recomputation"),
		stores: mf.NewCounter("smt_cache_stores", "Number of interior hashes retained by the cache"),
		evicts: mf.NewCounter("smt_cache_evictions", "Number of interior hashes dropped from the cache"),
	}
}

// Exists reports whether the wrapped cache holds (height, base), counting
// the outcome as a hit or a miss.
func (c *CountingCache) Exists(height int, base []byte) bool {
	ok := c.next.Exists(height, base)
	if ok {
		c.hits.Inc()
	} else {
		c.misses.Inc()
	}
	return ok
}

// Get returns the stored hash from the wrapped cache.
func (c *CountingCache) Get(height int, base []byte) []byte {
	return c.next.Get(height, base)
}

// HashCache forwards to the wrapped cache and counts the resulting store
// or eviction.
func (c *CountingCache) HashCache(left, right []byte, height int, base, split, interiorHash []byte, defaultHashes [][]byte) {
	before := c.next.Entries()
	c.next.HashCache(left, right, height, base, split, interiorHash, defaultHashes)
	switch after := c.next.Entries(); {
	case after > before:
		c.stores.Inc()
	case after < before:
		c.evicts.Inc()
	}
}

// Entries returns the number of hashes in the wrapped cache.
func (c *CountingCache) Entries() int {
	return c.next.Entries()
}

// Hits returns the number of lookups served from the cache so far.
func (c *CountingCache) Hits() float64 { return c.hits.Value() }

// Misses returns the number of lookups that missed so far.
func (c *CountingCache) Misses() float64 { return c.misses.Value() }
