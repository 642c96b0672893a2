// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Typesquash Authors

package infer

import "fmt"

// CacheEntry is one minted shared declaration: a generated name and the
// representative node its body is rendered from. All nodes sharing a
// fingerprint are structurally interchangeable, so the first one seen
// suffices.
type CacheEntry struct {
	Name string
	Node *TypeNode
}

// Cache holds the shared declarations produced by squashing, keyed by
// fingerprint. Entries live for one run and are consulted by the emitter.
type Cache struct {
	order   []Fingerprint
	entries map[Fingerprint]*CacheEntry
}

// BuildCache mints one entry per fingerprint with multiplicity >= 2, in
// registry (first-seen) order, named <rootName>_0, <rootName>_1, and so
// on. Only object-shaped nodes are eligible: naming every repeated bare
// primitive would bury the output in aliases. The root's own fingerprint
// is never minted; the root is always emitted under the bare root name.
func BuildCache(reg *Registry, rootName string, rootFP Fingerprint) *Cache {
	c := &Cache{entries: make(map[Fingerprint]*CacheEntry)}
	next := 0
	for _, fp := range reg.Fingerprints() {
		if fp == rootFP {
			continue
		}
		nodes := reg.Nodes(fp)
		if reg.Count(fp) < 2 || nodes[0].Kind != KindObject {
			continue
		}
		c.order = append(c.order, fp)
		c.entries[fp] = &CacheEntry{
			Name: fmt.Sprintf("%s_%d", rootName, next),
			Node: nodes[0],
		}
		next++
	}
	return c
}

// Lookup returns the entry minted for fp, if any. A nil Cache (squashing
// disabled) never matches.
func (c *Cache) Lookup(fp Fingerprint) (*CacheEntry, bool) {
	if c == nil {
		return nil, false
	}
	e, ok := c.entries[fp]
	return e, ok
}

// Len returns the number of minted entries.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}
