// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Typesquash Authors

// Package infer turns a decoded JSON document into a minimal set of named
// type declarations. It builds a typed tree from the document, fingerprints
// every node's structure, and squashes repeated structures into shared
// declarations.
package infer

// Kind classifies a TypeNode.
type Kind uint8

// Node kinds. KindAny is the unconstrained placeholder used for the element
// type of an empty array; it never participates in squashing. KindUnion is
// the widened form of a position observed with more than one kind: its
// variants may be primitives, one merged object, and one merged array.
const (
	KindInvalid Kind = iota
	KindString
	KindNumber
	KindBool
	KindNull
	KindAny
	KindUnion
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	case KindAny:
		return "any"
	case KindUnion:
		return "union"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// isPrimitive reports whether k can be a member of a union.
func (k Kind) isPrimitive() bool {
	switch k {
	case KindString, KindNumber, KindBool, KindNull:
		return true
	}
	return false
}

// Fingerprint is a 128-bit structural digest. It is a pure function of a
// node's kind and its children's fingerprints, never of the field name the
// node appears under. Two nodes with equal fingerprints are treated as
// type-equal; a collision between genuinely different shapes is an accepted
// risk at this width, not something the engine detects.
type Fingerprint [16]byte

// IsZero reports whether the fingerprint has not been computed yet.
func (f Fingerprint) IsZero() bool {
	return f == Fingerprint{}
}

// Field is a named child of an object node, in first-observed key order.
type Field struct {
	Name string
	Node *TypeNode
}

// TypeNode is one structural position in the document: an object, an array,
// or a primitive. Exactly one of Fields, Elem, or Variants is populated,
// according to Kind.
type TypeNode struct {
	Kind     Kind
	Name     string // key this node appears under; empty for root and array elements
	Optional bool   // absent from at least one merged sibling occurrence

	// Occurrences is how many document values this node stands for. It is
	// 1 for a node built from a single value and grows when array elements
	// are merged into one representative, so the registry can still see
	// that the shape recurred. It never feeds the fingerprint.
	Occurrences int

	Variants []*TypeNode // KindUnion: deduplicated alternatives in kind order
	Fields   []Field     // KindObject
	Elem     *TypeNode   // KindArray: merged representative element

	Fingerprint Fingerprint // set by ComputeFingerprints
}

// fieldIndex returns the position of name in n.Fields, or -1.
func (n *TypeNode) fieldIndex(name string) int {
	for i, f := range n.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}
