// Copyright 2017 Google Inc. All Rights Reserved.
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

// Package hashers provides constant-width digest functions for sparse
// Merkle trees, and a registry so drivers can select one by name.
package hashers

import (
	"crypto"
	_ "crypto/sha256" // registers crypto.SHA256
	"errors"
	"fmt"
	"sync"

	_ "golang.org/x/crypto/blake2b" // registers crypto.BLAKE2b_256
	_ "golang.org/x/crypto/sha3"    // registers crypto.SHA3_256
)

// MapHasher computes a fixed-width digest over a byte string. The digest
// width determines the depth of any sparse Merkle tree built on top of it.
type MapHasher interface {
	// Digest returns the hash of data. The returned slice is owned by the
	// caller.
	Digest(data []byte) []byte
	// Size returns the digest width in bytes.
	Size() int
	// BitLen returns the digest width in bits.
	BitLen() int
}

// ErrNoSuchHasher is returned by NewByName for names that have not been
// registered.
var ErrNoSuchHasher = errors.New("no hasher registered for this name")

type cryptoHasher struct {
	crypto.Hash
}

// New returns a MapHasher backed by h. The hash must be linked into the
// binary (see crypto.Hash.Available).
func New(h crypto.Hash) MapHasher {
	if !h.Available() {
		panic(fmt.Sprintf("hash function %v is not linked into the binary", h))
	}
	return cryptoHasher{h}
}

func (h cryptoHasher) Digest(data []byte) []byte {
	hh := h.Hash.New()
	hh.Write(data)
	return hh.Sum(nil)
}

func (h cryptoHasher) BitLen() int {
	return h.Size() * 8
}

func (h cryptoHasher) String() string {
	return fmt.Sprintf("MapHasher{%v}", h.Hash)
}

type funcHasher struct {
	fn   func([]byte) []byte
	size int
}

// NewFromFunc wraps a raw digest function, measuring its output width on a
// sample input. The function must return the same width for every input,
// and the width must be a whole number of bytes greater than zero.
func NewFromFunc(fn func([]byte) []byte) (MapHasher, error) {
	size := len(fn([]byte("abc")))
	if size == 0 {
		return nil, errors.New("digest function returned an empty digest")
	}
	return funcHasher{fn: fn, size: size}, nil
}

func (h funcHasher) Digest(data []byte) []byte {
	return h.fn(data)
}

func (h funcHasher) Size() int {
	return h.size
}

func (h funcHasher) BitLen() int {
	return h.size * 8
}

var (
	hashersMu sync.RWMutex
	hashers   = make(map[string]MapHasher)
)

// Register makes a hasher available to NewByName under the given name.
// Registering a name twice overwrites the earlier entry.
func Register(name string, h MapHasher) {
	hashersMu.Lock()
	defer hashersMu.Unlock()
	hashers[name] = h
}

// NewByName returns the hasher registered under name, or ErrNoSuchHasher.
func NewByName(name string) (MapHasher, error) {
	hashersMu.RLock()
	defer hashersMu.RUnlock()
	h, ok := hashers[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNoSuchHasher)
	}
	return h, nil
}

func init() {
	Register("SHA256", New(crypto.SHA256))
	Register("SHA3-256", New(crypto.SHA3_256))
	Register("BLAKE2B-256", New(crypto.BLAKE2b_256))
}
