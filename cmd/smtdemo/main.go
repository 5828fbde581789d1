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

// smtdemo builds a small sparse Merkle tree, proves membership and
// non-membership of a few keys against its root, and shows the effect of
// the branch cache on repeated root computations.
package main

import (
	"bytes"
	"flag"

	"github.com/golang/glog"

	"github.com/TymurKhr/smt/merkle"
	"github.com/TymurKhr/smt/merkle/hashers"
	"github.com/TymurKhr/smt/monitoring/prometheus"
	"github.com/TymurKhr/smt/storage/cache"
)

var hasherName = flag.String("hasher", "SHA256", "name of the registered hasher to build the tree with")

func main() {
	flag.Parse()

	hasher, err := hashers.NewByName(*hasherName)
	if err != nil {
		glog.Exitf("Failed to look up hasher: %v", err)
	}
	smt, err := merkle.New([]byte{0x42}, hasher)
	if err != nil {
		glog.Exitf("Failed to create tree: %v", err)
	}

	raw := [][]byte{
		hasher.Digest([]byte("abc")),
		hasher.Digest([]byte("bcde")),
	}
	d := merkle.NewKeySet(raw)
	keys := merkle.NewKeySet(raw)

	noCache := cache.NoCache{}
	updateRoot, err := smt.Update(merkle.NewKeySet(nil), keys, merkle.Set, noCache)
	if err != nil {
		glog.Exitf("Update: %v", err)
	}
	root, err := smt.RootHash(d, noCache)
	if err != nil {
		glog.Exitf("RootHash: %v", err)
	}
	if !bytes.Equal(updateRoot, root) {
		glog.Exitf("update root %x != root hash %x", updateRoot, root)
	}
	glog.Infof("root of %d-key tree: %x", d.Len(), root)

	prove := func(key []byte, want []byte) {
		ap, err := smt.AuditPath(d, key, noCache)
		if err != nil {
			glog.Exitf("AuditPath: %v", err)
		}
		ok, err := smt.VerifyAuditPath(ap, key, want, root)
		if err != nil {
			glog.Exitf("VerifyAuditPath: %v", err)
		}
		if !ok {
			glog.Exitf("audit path for %x did not verify", key)
		}
		glog.Infof("proved key %x with %d-level audit path", key, len(ap))
	}
	prove(hasher.Digest([]byte("abc")), merkle.Set)
	prove(hasher.Digest([]byte("not_member")), merkle.Empty)

	// Rebuild through a counting branch cache to show its occupancy and
	// the hits it serves on a second root computation.
	counted := cache.NewCounting(cache.NewBranch(), prometheus.MetricFactory{Prefix: "smtdemo_"})
	cachedRoot, err := smt.Update(merkle.NewKeySet(nil), keys, merkle.Set, counted)
	if err != nil {
		glog.Exitf("Update: %v", err)
	}
	if !bytes.Equal(cachedRoot, root) {
		glog.Exitf("cached update root %x != root hash %x", cachedRoot, root)
	}
	if _, err := smt.RootHash(d, counted); err != nil {
		glog.Exitf("RootHash: %v", err)
	}
	glog.Infof("branch cache holds %d entries; %v hits / %v misses",
		counted.Entries(), counted.Hits(), counted.Misses())
}
