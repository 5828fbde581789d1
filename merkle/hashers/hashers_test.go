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

package hashers

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"testing"
)

func TestRegisteredHashers(t *testing.T) {
	for _, name := range []string{"SHA256", "SHA3-256", "BLAKE2B-256"} {
		h, err := NewByName(name)
		if err != nil {
			t.Errorf("NewByName(%q): %v", name, err)
			continue
		}
		if got, want := h.Size(), 32; got != want {
			t.Errorf("%s: Size()=%d, want %d", name, got, want)
		}
		if got, want := h.BitLen(), 256; got != want {
			t.Errorf("%s: BitLen()=%d, want %d", name, got, want)
		}
		if got := h.Digest([]byte("abc")); len(got) != h.Size() {
			t.Errorf("%s: len(Digest)=%d, want %d", name, len(got), h.Size())
		}
	}
}

func TestNewByNameUnknown(t *testing.T) {
	if _, err := NewByName("NO-SUCH-HASH"); !errors.Is(err, ErrNoSuchHasher) {
		t.Errorf("NewByName(unknown): err=%v, want %v", err, ErrNoSuchHasher)
	}
}

func TestDigestMatchesUnderlyingHash(t *testing.T) {
	h, err := NewByName("SHA256")
	if err != nil {
		t.Fatalf("NewByName(SHA256): %v", err)
	}
	want := sha256.Sum256([]byte("abc"))
	if got := h.Digest([]byte("abc")); !bytes.Equal(got, want[:]) {
		t.Errorf("Digest(abc)=%x, want %x", got, want)
	}
}

func TestNewFromFunc(t *testing.T) {
	fn := func(data []byte) []byte {
		d := sha256.Sum256(data)
		return d[:16]
	}
	h, err := NewFromFunc(fn)
	if err != nil {
		t.Fatalf("NewFromFunc: %v", err)
	}
	if got, want := h.Size(), 16; got != want {
		t.Errorf("Size()=%d, want %d", got, want)
	}
	if got, want := h.BitLen(), 128; got != want {
		t.Errorf("BitLen()=%d, want %d", got, want)
	}
	if got, want := h.Digest([]byte("x")), fn([]byte("x")); !bytes.Equal(got, want) {
		t.Errorf("Digest=%x, want %x", got, want)
	}
}

func TestNewFromFuncRejectsEmptyDigest(t *testing.T) {
	if _, err := NewFromFunc(func([]byte) []byte { return nil }); err == nil {
		t.Error("NewFromFunc(empty digest fn): no error")
	}
}

func TestRegisterOverrides(t *testing.T) {
	earlier, err := NewByName("SHA256")
	if err != nil {
		t.Fatalf("NewByName(SHA256): %v", err)
	}
	Register("TEST-ONLY", earlier)
	h, err := NewFromFunc(func(data []byte) []byte {
		d := sha256.Sum256(data)
		return d[:8]
	})
	if err != nil {
		t.Fatalf("NewFromFunc: %v", err)
	}
	Register("TEST-ONLY", h)
	got, err := NewByName("TEST-ONLY")
	if err != nil {
		t.Fatalf("NewByName(TEST-ONLY): %v", err)
	}
	if got.Size() != 8 {
		t.Errorf("Size()=%d, want 8", got.Size())
	}
}
