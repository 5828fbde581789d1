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

package merkle

import (
	"bytes"
	"sort"
)

// KeySet is a lexicographically sorted set of equal-length byte-string keys.
// It serves both as the set of keys currently present in a sparse Merkle
// tree and as a batch of keys to be applied by Update.
type KeySet struct {
	keys [][]byte
}

// NewKeySet returns a KeySet over a copy of keys, sorted into
// non-decreasing lexicographic order. The individual key slices are shared
// with the caller and must not be mutated afterwards.
func NewKeySet(keys [][]byte) *KeySet {
	cp := append(make([][]byte, 0, len(keys)), keys...)
	sort.Slice(cp, func(i, j int) bool {
		return bytes.Compare(cp[i], cp[j]) < 0
	})
	return &KeySet{keys: cp}
}

// newKeySetSorted trusts the caller to supply keys already in sorted order.
func newKeySetSorted(keys [][]byte) *KeySet {
	return &KeySet{keys: keys}
}

// Len returns the number of keys in the set.
func (s *KeySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// At returns the i-th key in sorted order.
func (s *KeySet) At(i int) []byte {
	return s.keys[i]
}

// Keys returns the backing slice in sorted order. The slice is shared;
// callers must treat it as read-only.
func (s *KeySet) Keys() [][]byte {
	if s == nil {
		return nil
	}
	return s.keys
}

// Split partitions the set around b: the first returned set holds the keys
// strictly less than b, the second the keys greater than or equal to b (an
// exact match goes right). Both halves alias the receiver's backing array.
func (s *KeySet) Split(b []byte) (*KeySet, *KeySet) {
	if s == nil {
		return newKeySetSorted(nil), newKeySetSorted(nil)
	}
	i := sort.Search(len(s.keys), func(i int) bool {
		return bytes.Compare(s.keys[i], b) >= 0
	})
	return newKeySetSorted(s.keys[:i]), newKeySetSorted(s.keys[i:])
}

// Merge returns a new KeySet holding the sorted union of s and other.
// A key present in both inputs appears once in the result.
func (s *KeySet) Merge(other *KeySet) *KeySet {
	out := make([][]byte, 0, s.Len()+other.Len())
	i, j := 0, 0
	for i < s.Len() && j < other.Len() {
		switch c := bytes.Compare(s.keys[i], other.keys[j]); {
		case c < 0:
			out = append(out, s.keys[i])
			i++
		case c > 0:
			out = append(out, other.keys[j])
			j++
		default:
			out = append(out, s.keys[i])
			i++
			j++
		}
	}
	if s != nil {
		out = append(out, s.keys[i:]...)
	}
	if other != nil {
		out = append(out, other.keys[j:]...)
	}
	return newKeySetSorted(out)
}
