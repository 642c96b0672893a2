// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Typesquash Authors

package infer

// Registry maps each fingerprint to the nodes that produced it. It is built
// in a single pass over every non-root node after hashing and is not
// mutated afterward: the batch design has no invalidation or decrement
// semantics. Both the fingerprint order and the node order within a
// fingerprint are first-seen, which keeps generated names stable across
// runs on the same input.
type Registry struct {
	order   []Fingerprint
	entries map[Fingerprint]*registryEntry
	nodes   int
}

type registryEntry struct {
	nodes []*TypeNode
	count int
}

// BuildRegistry records every non-root node in pre-order. Placeholder
// (any) nodes carry no structure worth sharing and are skipped. A node's
// fingerprint is counted once per occurrence it stands for, so a shape
// merged out of several array elements still registers as recurring.
func BuildRegistry(root *TypeNode) *Registry {
	r := &Registry{entries: make(map[Fingerprint]*registryEntry)}
	walkChildren(root, r.add)
	return r
}

func (r *Registry) add(n *TypeNode) {
	if n.Kind == KindAny {
		return
	}
	r.nodes++
	e, ok := r.entries[n.Fingerprint]
	if !ok {
		e = &registryEntry{}
		r.entries[n.Fingerprint] = e
		r.order = append(r.order, n.Fingerprint)
	}
	e.nodes = append(e.nodes, n)
	occ := n.Occurrences
	if occ < 1 {
		occ = 1
	}
	e.count += occ
}

// Fingerprints returns all registered fingerprints in first-seen order.
func (r *Registry) Fingerprints() []Fingerprint {
	return r.order
}

// Nodes returns the nodes registered under fp in first-seen order.
func (r *Registry) Nodes(fp Fingerprint) []*TypeNode {
	if e, ok := r.entries[fp]; ok {
		return e.nodes
	}
	return nil
}

// Count returns how many value occurrences produced fp.
func (r *Registry) Count(fp Fingerprint) int {
	if e, ok := r.entries[fp]; ok {
		return e.count
	}
	return 0
}

// Len returns the number of distinct registered fingerprints.
func (r *Registry) Len() int {
	return len(r.order)
}

// Total returns the number of registered nodes.
func (r *Registry) Total() int {
	return r.nodes
}

// walkChildren visits every node below root in pre-order. The root itself
// is excluded: its type is always emitted under the fixed root name and
// never shared.
func walkChildren(root *TypeNode, visit func(*TypeNode)) {
	var walk func(n *TypeNode)
	walk = func(n *TypeNode) {
		visit(n)
		switch n.Kind {
		case KindObject:
			for _, f := range n.Fields {
				walk(f.Node)
			}
		case KindArray:
			walk(n.Elem)
		case KindUnion:
			for _, v := range n.Variants {
				walk(v)
			}
		}
	}
	switch root.Kind {
	case KindObject:
		for _, f := range root.Fields {
			walk(f.Node)
		}
	case KindArray:
		walk(root.Elem)
	case KindUnion:
		for _, v := range root.Variants {
			walk(v)
		}
	}
}
