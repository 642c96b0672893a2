// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Typesquash Authors

package infer

import (
	"slices"

	"github.com/typesquash/cli/internal/jsonvalue"
)

// Build converts a decoded JSON value into a TypeNode tree. It never fails:
// every well-formed value tree maps to exactly one typed tree. Array
// elements are merged into a single representative element node, widening
// inconsistent kinds and marking fields that are absent from some elements
// as optional.
func Build(v jsonvalue.Value) *TypeNode {
	return buildValue(v, "")
}

func buildValue(v jsonvalue.Value, name string) *TypeNode {
	switch t := v.(type) {
	case jsonvalue.String:
		return &TypeNode{Kind: KindString, Name: name, Occurrences: 1}
	case jsonvalue.Number:
		return &TypeNode{Kind: KindNumber, Name: name, Occurrences: 1}
	case jsonvalue.Bool:
		return &TypeNode{Kind: KindBool, Name: name, Occurrences: 1}
	case jsonvalue.Null:
		return &TypeNode{Kind: KindNull, Name: name, Occurrences: 1}
	case jsonvalue.Array:
		return &TypeNode{Kind: KindArray, Name: name, Occurrences: 1, Elem: mergeElements(t)}
	case jsonvalue.Object:
		node := &TypeNode{Kind: KindObject, Name: name, Occurrences: 1}
		node.Fields = make([]Field, 0, len(t.Members))
		for _, m := range t.Members {
			node.Fields = append(node.Fields, Field{
				Name: m.Key,
				Node: buildValue(m.Value, m.Key),
			})
		}
		return node
	default:
		// jsonvalue.Value is a closed set; nothing else can reach here.
		return &TypeNode{Kind: KindAny, Name: name, Occurrences: 1}
	}
}

// mergeElements builds every element independently and folds them into one
// representative node. An empty array gets the unconstrained placeholder.
// The representative's occurrence count is the sum over the merged
// elements, so a shape that recurred across elements is still seen as
// recurring by the signature registry.
func mergeElements(arr jsonvalue.Array) *TypeNode {
	if len(arr) == 0 {
		return &TypeNode{Kind: KindAny, Occurrences: 1}
	}
	merged := buildValue(arr[0], "")
	for _, v := range arr[1:] {
		merged = mergeNodes(merged, buildValue(v, ""))
	}
	return merged
}

// mergeNodes folds b into a. Optionality is sticky: once a field has been
// absent from any occurrence it stays optional through later merges.
func mergeNodes(a, b *TypeNode) *TypeNode {
	occ := a.Occurrences + b.Occurrences

	// The placeholder carries no information; the other side wins.
	if a.Kind == KindAny {
		b.Optional = a.Optional || b.Optional
		b.Occurrences = occ
		return b
	}
	if b.Kind == KindAny {
		a.Optional = a.Optional || b.Optional
		a.Occurrences = occ
		return a
	}

	switch {
	case a.Kind == KindObject && b.Kind == KindObject:
		return mergeObjects(a, b)
	case a.Kind == KindArray && b.Kind == KindArray:
		a.Elem = mergeNodes(a.Elem, b.Elem)
		a.Optional = a.Optional || b.Optional
		a.Occurrences = occ
		return a
	case a.Kind == b.Kind && a.Kind != KindUnion:
		a.Optional = a.Optional || b.Optional
		a.Occurrences = occ
		return a
	}

	return widen(a, b, occ)
}

// widen folds two nodes of different kinds into one union node. Existing
// union members are flattened, primitive variants are deduplicated by kind,
// and structural variants merge pairwise: a union holds at most one object
// variant and at most one array variant. Variants are kept in Kind order,
// which puts primitives before objects before arrays and makes the member
// sequence canonical regardless of observation order.
func widen(a, b *TypeNode, occ int) *TypeNode {
	u := &TypeNode{
		Kind:        KindUnion,
		Name:        a.Name,
		Optional:    a.Optional || b.Optional,
		Occurrences: occ,
	}
	for _, n := range []*TypeNode{a, b} {
		if n.Kind == KindUnion {
			for _, v := range n.Variants {
				u.Variants = addVariant(u.Variants, v)
			}
			continue
		}
		u.Variants = addVariant(u.Variants, n)
	}
	slices.SortStableFunc(u.Variants, func(x, y *TypeNode) int {
		return int(x.Kind) - int(y.Kind)
	})
	return u
}

func addVariant(variants []*TypeNode, v *TypeNode) []*TypeNode {
	for i, existing := range variants {
		switch {
		case existing.Kind == v.Kind && existing.Kind.isPrimitive():
			existing.Occurrences += v.Occurrences
			return variants
		case existing.Kind == KindObject && v.Kind == KindObject:
			variants[i] = mergeObjects(existing, v)
			return variants
		case existing.Kind == KindArray && v.Kind == KindArray:
			variants[i] = mergeNodes(existing, v)
			return variants
		}
	}
	return append(variants, v)
}

// mergeObjects takes the union of both field sets. Fields present on only
// one side become optional; fields on both sides merge recursively.
func mergeObjects(a, b *TypeNode) *TypeNode {
	inB := make(map[string]bool, len(b.Fields))
	for _, f := range b.Fields {
		inB[f.Name] = true
	}

	for i := range a.Fields {
		if !inB[a.Fields[i].Name] {
			a.Fields[i].Node.Optional = true
		}
	}
	for _, bf := range b.Fields {
		if i := a.fieldIndex(bf.Name); i >= 0 {
			a.Fields[i].Node = mergeNodes(a.Fields[i].Node, bf.Node)
		} else {
			bf.Node.Optional = true
			a.Fields = append(a.Fields, bf)
		}
	}

	a.Optional = a.Optional || b.Optional
	a.Occurrences += b.Occurrences
	return a
}

