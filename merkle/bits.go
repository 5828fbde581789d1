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

// Bit positions in a byte string are numbered from zero starting at the
// most significant bit of byte zero.

func bitIsSet(bits []byte, i int) bool {
	return bits[i/8]&(1<<uint(7-i%8)) != 0
}

func bitSet(bits []byte, i int) {
	bits[i/8] |= 1 << uint(7-i%8)
}

// bitSplit returns a copy of bits with bit i set. Bits below i are left
// untouched; callers must pass a prefix whose bits at and below position i
// are zero.
func bitSplit(bits []byte, i int) []byte {
	split := append(make([]byte, 0, len(bits)), bits...)
	bitSet(split, i)
	return split
}
