// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Typesquash Authors

package infer

import (
	"encoding/binary"
	"slices"

	"github.com/zeebo/xxh3"
)

// Tag bytes keep the different node shapes in disjoint hash domains.
const (
	tagString byte = iota + 1
	tagNumber
	tagBool
	tagNull
	tagAny
	tagUnion
	tagObject
	tagArray
)

func kindTag(k Kind) byte {
	switch k {
	case KindString:
		return tagString
	case KindNumber:
		return tagNumber
	case KindBool:
		return tagBool
	case KindNull:
		return tagNull
	case KindAny:
		return tagAny
	case KindUnion:
		return tagUnion
	case KindObject:
		return tagObject
	case KindArray:
		return tagArray
	default:
		return 0
	}
}

// ComputeFingerprints runs the batch hashing pass: one post-order traversal
// after the tree is fully built, so each node is hashed exactly once from
// its children's already-final fingerprints. Object fields are hashed in
// sorted key order, which makes the fingerprint independent of the key
// order in the source document. The node's own Name is deliberately left
// out so that identical shapes under different keys collapse.
func ComputeFingerprints(root *TypeNode) {
	hashNode(root)
}

func hashNode(n *TypeNode) Fingerprint {
	h := xxh3.New()
	h.Write([]byte{kindTag(n.Kind)})

	switch n.Kind {
	case KindUnion:
		// Variants are already in canonical kind order, so hashing them in
		// sequence stays independent of observation order.
		for _, v := range n.Variants {
			fp := hashNode(v)
			h.Write(fp[:])
		}
	case KindArray:
		fp := hashNode(n.Elem)
		h.Write(fp[:])
	case KindObject:
		sorted := slices.Clone(n.Fields)
		slices.SortFunc(sorted, func(a, b Field) int {
			if a.Name < b.Name {
				return -1
			}
			if a.Name > b.Name {
				return 1
			}
			return 0
		})
		var lenBuf [8]byte
		for _, f := range sorted {
			fp := hashNode(f.Node)
			binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(f.Name)))
			h.Write(lenBuf[:])
			h.Write([]byte(f.Name))
			if f.Node.Optional {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
			h.Write(fp[:])
		}
	}

	n.Fingerprint = Fingerprint(h.Sum128().Bytes())
	return n.Fingerprint
}
