// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Typesquash Authors

package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fingerprintOf(t *testing.T, src string) Fingerprint {
	t.Helper()
	root := Build(mustDecode(t, src))
	ComputeFingerprints(root)
	require.False(t, root.Fingerprint.IsZero())
	return root.Fingerprint
}

func TestComputeFingerprints_Deterministic(t *testing.T) {
	src := `{"a":[1,2],"b":{"c":"x"}}`
	assert.Equal(t, fingerprintOf(t, src), fingerprintOf(t, src))
}

func TestComputeFingerprints_KeyOrderIndependent(t *testing.T) {
	a := fingerprintOf(t, `{"first":1,"second":"x","third":true}`)
	b := fingerprintOf(t, `{"third":true,"first":1,"second":"x"}`)
	assert.Equal(t, a, b)
}

func TestComputeFingerprints_FieldNameIsLoadBearing(t *testing.T) {
	a := fingerprintOf(t, `{"amount":1}`)
	b := fingerprintOf(t, `{"total":1}`)
	assert.NotEqual(t, a, b)
}

func TestComputeFingerprints_NodeNameIsNot(t *testing.T) {
	// The same shape under two different keys must produce one fingerprint.
	root := Build(mustDecode(t, `{"left":{"v":1},"right":{"v":2}}`))
	ComputeFingerprints(root)

	left := root.Fields[0].Node
	right := root.Fields[1].Node
	assert.NotEqual(t, left.Name, right.Name)
	assert.Equal(t, left.Fingerprint, right.Fingerprint)
}

func TestComputeFingerprints_KindsAreDisjoint(t *testing.T) {
	prints := []Fingerprint{
		fingerprintOf(t, `"x"`),
		fingerprintOf(t, `1`),
		fingerprintOf(t, `true`),
		fingerprintOf(t, `null`),
		fingerprintOf(t, `{}`),
		fingerprintOf(t, `[]`),
	}
	seen := make(map[Fingerprint]bool)
	for _, fp := range prints {
		assert.False(t, seen[fp])
		seen[fp] = true
	}
}

func TestComputeFingerprints_ArrayDependsOnElement(t *testing.T) {
	a := fingerprintOf(t, `[1]`)
	b := fingerprintOf(t, `["x"]`)
	assert.NotEqual(t, a, b)
}

func TestComputeFingerprints_OptionalChangesObjectFingerprint(t *testing.T) {
	// Same field set, but "b" is optional in the merged element of the
	// second document.
	required := Build(mustDecode(t, `[{"a":1,"b":2},{"a":1,"b":2}]`))
	optional := Build(mustDecode(t, `[{"a":1,"b":2},{"a":1}]`))
	ComputeFingerprints(required)
	ComputeFingerprints(optional)

	assert.NotEqual(t, required.Elem.Fingerprint, optional.Elem.Fingerprint)
}

func TestComputeFingerprints_UnionStableUnderObservationOrder(t *testing.T) {
	a := fingerprintOf(t, `[1,"x"]`)
	b := fingerprintOf(t, `["x",1]`)
	assert.Equal(t, a, b)
}

func TestComputeFingerprints_SetsEveryNode(t *testing.T) {
	root := Build(mustDecode(t, `{"a":{"b":[{"c":1}]}}`))
	ComputeFingerprints(root)

	var walk func(n *TypeNode)
	walk = func(n *TypeNode) {
		assert.False(t, n.Fingerprint.IsZero(), "kind %s", n.Kind)
		for _, f := range n.Fields {
			walk(f.Node)
		}
		if n.Elem != nil {
			walk(n.Elem)
		}
	}
	walk(root)
}
