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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewKeySetSorts(t *testing.T) {
	s := NewKeySet([][]byte{{0x03}, {0x01}, {0x02}})
	want := [][]byte{{0x01}, {0x02}, {0x03}}
	if diff := cmp.Diff(want, s.Keys()); diff != "" {
		t.Errorf("keys diff (-want +got):\n%v", diff)
	}
}

func TestSplit(t *testing.T) {
	s := NewKeySet([][]byte{{0x01}, {0x03}, {0x05}})
	for _, tc := range []struct {
		desc        string
		pivot       []byte
		left, right [][]byte
	}{
		{desc: "between", pivot: []byte{0x02}, left: [][]byte{{0x01}}, right: [][]byte{{0x03}, {0x05}}},
		{desc: "match goes right", pivot: []byte{0x03}, left: [][]byte{{0x01}}, right: [][]byte{{0x03}, {0x05}}},
		{desc: "below all", pivot: []byte{0x00}, left: nil, right: [][]byte{{0x01}, {0x03}, {0x05}}},
		{desc: "above all", pivot: []byte{0x09}, left: [][]byte{{0x01}, {0x03}, {0x05}}, right: nil},
	} {
		l, r := s.Split(tc.pivot)
		if diff := cmp.Diff(tc.left, l.Keys(), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%s: left diff (-want +got):\n%v", tc.desc, diff)
		}
		if diff := cmp.Diff(tc.right, r.Keys(), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%s: right diff (-want +got):\n%v", tc.desc, diff)
		}
	}
}

func TestSplitPreservesOrder(t *testing.T) {
	s := NewKeySet([][]byte{{0x04}, {0x02}, {0x08}, {0x06}})
	l, r := s.Split([]byte{0x05})
	if got, want := l.Len()+r.Len(), s.Len(); got != want {
		t.Fatalf("split lost keys: %d, want %d", got, want)
	}
	for _, half := range []*KeySet{l, r} {
		for i := 1; i < half.Len(); i++ {
			if string(half.At(i-1)) > string(half.At(i)) {
				t.Errorf("half out of order at %d: %x > %x", i, half.At(i-1), half.At(i))
			}
		}
	}
}

func TestMerge(t *testing.T) {
	a := NewKeySet([][]byte{{0x01}, {0x03}})
	b := NewKeySet([][]byte{{0x02}, {0x03}, {0x04}})
	got := a.Merge(b)
	want := [][]byte{{0x01}, {0x02}, {0x03}, {0x04}}
	if diff := cmp.Diff(want, got.Keys()); diff != "" {
		t.Errorf("merged keys diff (-want +got):\n%v", diff)
	}
}

func TestMergeEmpty(t *testing.T) {
	a := NewKeySet([][]byte{{0x01}})
	if got := a.Merge(NewKeySet(nil)); got.Len() != 1 {
		t.Errorf("Merge(empty).Len()=%d, want 1", got.Len())
	}
	if got := NewKeySet(nil).Merge(a); got.Len() != 1 {
		t.Errorf("empty.Merge(a).Len()=%d, want 1", got.Len())
	}
}
