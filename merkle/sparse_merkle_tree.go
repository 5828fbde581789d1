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

// Package merkle implements a sparse Merkle tree over the full key space of
// a cryptographic hash function. Membership and non-membership of any key
// are provable against a single root digest by an audit path whose length
// equals the hash width in bits.
package merkle

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/TymurKhr/smt/merkle/hashers"
	"github.com/TymurKhr/smt/storage/cache"
)

// Leaf markers distinguishing an occupied leaf from an unoccupied one.
// Only equality with Empty matters to the hash scheme; Set is the
// canonical occupied value.
var (
	Empty = []byte{0x00}
	Set   = []byte{0x01}
)

var (
	// ErrKeySize is returned when a key does not match the tree's hash
	// width.
	ErrKeySize = errors.New("key width does not match hash width")
	// ErrPathLen is returned when an audit path does not contain exactly
	// one sibling hash per tree level.
	ErrPathLen = errors.New("audit path length does not match tree depth")
	// ErrLeafValue is returned when a leaf value is not a one-byte marker.
	ErrLeafValue = errors.New("leaf value must be a one-byte marker")
	// ErrEmptyPrefix is returned by New when the tree-wide constant is
	// empty.
	ErrEmptyPrefix = errors.New("tree-wide constant must not be empty")
)

// parallelSpread is the number of tree levels RootHashParallel fans out
// over before falling back to the serial recursion.
const parallelSpread = 3

// SMT is a sparse Merkle tree engine. It holds only immutable state: the
// tree-wide constant used for leaf-hash domain separation, the hash
// function, and the precomputed hashes of all-empty subtrees at every
// height. The key set and the interior-hash cache are owned by the caller
// and passed into each operation.
type SMT struct {
	c      []byte
	hasher hashers.MapHasher

	// n is the tree depth in bits, size the key width in bytes.
	n    int
	size int

	// base is the all-zero prefix identifying the root subtree.
	base []byte

	// defaultHashes[h] is the root hash of an empty subtree at height h.
	defaultHashes [][]byte
}

// New creates a sparse Merkle tree engine over the given hasher, using c
// as the domain-separation prefix for leaf hashes. The tree depth is the
// hasher's digest width in bits.
func New(c []byte, hasher hashers.MapHasher) (*SMT, error) {
	if len(c) == 0 {
		return nil, ErrEmptyPrefix
	}
	if hasher == nil {
		return nil, errors.New("hasher must not be nil")
	}
	n := hasher.BitLen()
	s := &SMT{
		c:      append(make([]byte, 0, len(c)), c...),
		hasher: hasher,
		n:      n,
		size:   n / 8,
		base:   make([]byte, n/8),
	}

	// The hash of an empty subtree at height h is the doubled hash of the
	// level below; height 0 is an empty leaf.
	s.defaultHashes = make([][]byte, n+1)
	s.defaultHashes[0] = s.leafHash(Empty, nil)
	for i := 1; i <= n; i++ {
		prev := s.defaultHashes[i-1]
		s.defaultHashes[i] = hasher.Digest(cat(prev, prev))
	}
	return s, nil
}

// BitLen returns the tree depth in bits.
func (s *SMT) BitLen() int {
	return s.n
}

// Size returns the key width in bytes.
func (s *SMT) Size() int {
	return s.size
}

// DefaultHash returns the root hash of an empty subtree at the given
// height. Height 0 is an empty leaf; height BitLen() an empty tree.
func (s *SMT) DefaultHash(height int) []byte {
	return s.defaultHashes[height]
}

// RootHash computes the root hash of the tree holding exactly the keys in
// d. The cache is consulted before any recursion and never written to.
func (s *SMT) RootHash(d *KeySet, c cache.Cache) ([]byte, error) {
	if err := s.checkKeys(d); err != nil {
		return nil, err
	}
	return s.rootHashInternal(d, s.n, s.base, c), nil
}

// RootHashParallel computes the same root hash as RootHash, fanning the
// recursion out over goroutines for the top levels of the tree. The cache
// must be safe for concurrent readers; BranchCache is, as long as no
// Update runs at the same time.
func (s *SMT) RootHashParallel(ctx context.Context, d *KeySet, c cache.Cache) ([]byte, error) {
	if err := s.checkKeys(d); err != nil {
		return nil, err
	}
	return s.rootHashFanout(ctx, d, s.n, s.base, parallelSpread, c)
}

func (s *SMT) rootHashFanout(ctx context.Context, d *KeySet, height int, base []byte, spread int, c cache.Cache) ([]byte, error) {
	if spread == 0 || height == 0 || d.Len() < 2 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		return s.rootHashInternal(d, height, base, c), nil
	}
	if c.Exists(height, base) {
		return c.Get(height, base), nil
	}

	split := bitSplit(base, s.n-height)
	l, r := d.Split(split)

	var left, right []byte
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		left, err = s.rootHashFanout(ctx, l, height-1, base, spread-1, c)
		return err
	})
	g.Go(func() error {
		var err error
		right, err = s.rootHashFanout(ctx, r, height-1, split, spread-1, c)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return s.interiorHash(left, right, height, base), nil
}

func (s *SMT) rootHashInternal(d *KeySet, height int, base []byte, c cache.Cache) []byte {
	if c.Exists(height, base) {
		glog.V(2).Infof("cache hit at height %d base %x", height, base)
		return c.Get(height, base)
	}
	if d.Len() == 0 {
		return s.defaultHashes[height]
	}
	if height == 0 {
		if d.Len() > 1 {
			panic(fmt.Sprintf("%d keys collide at leaf %x; keys must be sorted and unique", d.Len(), base))
		}
		return s.leafHash(Set, base)
	}

	split := bitSplit(base, s.n-height)
	l, r := d.Split(split)

	return s.interiorHash(
		s.rootHashInternal(l, height-1, base, c),
		s.rootHashInternal(r, height-1, split, c),
		height, base)
}

// Update computes the root hash of the tree holding d with every key in
// keys set to value (Set to mark the keys present, Empty to mark them
// absent). Every interior hash computed along the way is offered to the
// cache. d itself is not modified; callers who want the new root to be
// recomputable from d must merge keys into d themselves (see
// KeySet.Merge) and keep using the same cache.
func (s *SMT) Update(d, keys *KeySet, value []byte, c cache.Cache) ([]byte, error) {
	if err := s.checkKeys(d); err != nil {
		return nil, err
	}
	if err := s.checkKeys(keys); err != nil {
		return nil, err
	}
	if len(value) != 1 {
		return nil, ErrLeafValue
	}
	if keys.Len() == 0 {
		return s.rootHashInternal(d, s.n, s.base, c), nil
	}
	return s.updateInternal(d, keys, s.n, s.base, value, c), nil
}

func (s *SMT) updateInternal(d, keys *KeySet, height int, base, value []byte, c cache.Cache) []byte {
	if height == 0 {
		return s.leafHash(value, base)
	}

	split := bitSplit(base, s.n-height)
	ld, rd := d.Split(split)
	lk, rk := keys.Split(split)

	var left, right []byte
	switch {
	case lk.Len() == 0:
		left = s.rootHashInternal(ld, height-1, base, c)
		right = s.updateInternal(rd, keys, height-1, split, value, c)
	case rk.Len() == 0:
		left = s.updateInternal(ld, keys, height-1, base, value, c)
		right = s.rootHashInternal(rd, height-1, split, c)
	default:
		left = s.updateInternal(ld, lk, height-1, base, value, c)
		right = s.updateInternal(rd, rk, height-1, split, value, c)
	}

	ih := s.interiorHash(left, right, height, base)
	c.HashCache(left, right, height, base, split, ih, s.defaultHashes)
	return ih
}

// AuditPath returns the audit path for key in the tree holding exactly the
// keys in d: one sibling hash per tree level, ordered from the leaf's
// sibling up to the root's. The path proves membership when key is in d
// and non-membership when it is not.
func (s *SMT) AuditPath(d *KeySet, key []byte, c cache.Cache) ([][]byte, error) {
	if err := s.checkKeys(d); err != nil {
		return nil, err
	}
	if len(key) != s.size {
		return nil, ErrKeySize
	}
	return s.auditPathInternal(d, s.n, s.base, key, c), nil
}

func (s *SMT) auditPathInternal(d *KeySet, height int, base, key []byte, c cache.Cache) [][]byte {
	if height == 0 {
		return nil
	}

	split := bitSplit(base, s.n-height)
	l, r := d.Split(split)

	if !bitIsSet(key, s.n-height) {
		t := s.auditPathInternal(l, height-1, base, key, c)
		return append(t, s.rootHashInternal(r, height-1, split, c))
	}
	t := s.auditPathInternal(r, height-1, split, key, c)
	return append(t, s.rootHashInternal(l, height-1, base, c))
}

// VerifyAuditPath reports whether ap proves that key holds value (Set for
// membership, Empty for non-membership) in the tree with the given root.
func (s *SMT) VerifyAuditPath(ap [][]byte, key, value, root []byte) (bool, error) {
	if len(ap) != s.n {
		return false, ErrPathLen
	}
	for _, sibling := range ap {
		if len(sibling) != s.size {
			return false, ErrPathLen
		}
	}
	if len(key) != s.size {
		return false, ErrKeySize
	}
	if len(value) != 1 {
		return false, ErrLeafValue
	}
	return bytes.Equal(root, s.auditPathCalc(ap, s.n, s.base, key, value)), nil
}

func (s *SMT) auditPathCalc(ap [][]byte, height int, base, key, value []byte) []byte {
	if height == 0 {
		return s.leafHash(value, base)
	}

	split := bitSplit(base, s.n-height)
	if !bitIsSet(key, s.n-height) {
		return s.interiorHash(s.auditPathCalc(ap, height-1, base, key, value), ap[height-1], height, base)
	}
	return s.interiorHash(ap[height-1], s.auditPathCalc(ap, height-1, split, key, value), height, base)
}

// leafHash hashes a leaf: an unoccupied leaf hashes the tree-wide constant
// alone, an occupied one the constant followed by the leaf's path.
func (s *SMT) leafHash(a, base []byte) []byte {
	if bytes.Equal(a, Empty) {
		return s.hasher.Digest(s.c)
	}
	return s.hasher.Digest(cat(s.c, base))
}

// interiorHash hashes an interior node. Two equal children collapse to the
// hash of their concatenation, which makes the empty-subtree recurrence
// converge; otherwise the node's base and height are appended so equal
// child pairs at different positions hash differently.
func (s *SMT) interiorHash(left, right []byte, height int, base []byte) []byte {
	if bytes.Equal(left, right) {
		return s.hasher.Digest(cat(left, right))
	}

	buf := make([]byte, 0, len(left)+len(right)+len(base)+8)
	buf = append(buf, left...)
	buf = append(buf, right...)
	buf = append(buf, base...)
	var heightSerialized [8]byte
	binary.BigEndian.PutUint64(heightSerialized[:], uint64(height))
	buf = append(buf, heightSerialized[:]...)
	return s.hasher.Digest(buf)
}

// checkKeys rejects keys that do not match the tree's key width.
func (s *SMT) checkKeys(d *KeySet) error {
	for i := 0; i < d.Len(); i++ {
		if len(d.At(i)) != s.size {
			return ErrKeySize
		}
	}
	return nil
}

func cat(a, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
