// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Typesquash Authors

package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inferSrc(t *testing.T, src string, opts Options) Result {
	t.Helper()
	return Infer(mustDecode(t, src), opts)
}

func declNames(decls []Declaration) []string {
	names := make([]string, 0, len(decls))
	for _, d := range decls {
		names = append(names, d.Name)
	}
	return names
}

func TestInfer_PrimitiveDocument(t *testing.T) {
	result := inferSrc(t, `"hello"`, DefaultOptions())

	require.Len(t, result.Declarations, 1)
	assert.Equal(t, "DefaultType", result.Declarations[0].Name)
	assert.Equal(t, PrimExpr{Kind: KindString}, result.Declarations[0].Type)
}

func TestInfer_RepeatedObjectsShareOneDeclaration(t *testing.T) {
	result := inferSrc(t, `{
		"paymentOne": {"amount": 1337, "status": "paid"},
		"paymentTwo": {"amount": 420, "status": "unpaid"}
	}`, DefaultOptions())

	require.Equal(t, []string{"DefaultType_0", "DefaultType"}, declNames(result.Declarations))

	shared, ok := result.Declarations[0].Type.(ObjectExpr)
	require.True(t, ok)
	require.Len(t, shared.Fields, 2)
	assert.Equal(t, "amount", shared.Fields[0].Name)
	assert.Equal(t, PrimExpr{Kind: KindNumber}, shared.Fields[0].Type)
	assert.Equal(t, "status", shared.Fields[1].Name)
	assert.Equal(t, PrimExpr{Kind: KindString}, shared.Fields[1].Type)

	root, ok := result.Declarations[1].Type.(ObjectExpr)
	require.True(t, ok)
	assert.Equal(t, RefExpr{Name: "DefaultType_0"}, root.Fields[0].Type)
	assert.Equal(t, RefExpr{Name: "DefaultType_0"}, root.Fields[1].Type)
}

func TestInfer_ArrayElementsShareOneDeclaration(t *testing.T) {
	result := inferSrc(t, `{"payments":[
		{"amount": 1337, "currency": "USD"},
		{"amount": 420, "currency": "GBP"}
	]}`, DefaultOptions())

	require.Equal(t, []string{"DefaultType_0", "DefaultType"}, declNames(result.Declarations))

	root, ok := result.Declarations[1].Type.(ObjectExpr)
	require.True(t, ok)
	require.Len(t, root.Fields, 1)
	arr, ok := root.Fields[0].Type.(ArrayExpr)
	require.True(t, ok)
	assert.Equal(t, RefExpr{Name: "DefaultType_0"}, arr.Elem)

	shared, ok := result.Declarations[0].Type.(ObjectExpr)
	require.True(t, ok)
	assert.False(t, shared.Fields[0].Optional)
	assert.False(t, shared.Fields[1].Optional)
}

func TestInfer_SquashDisabledInlinesEverything(t *testing.T) {
	result := inferSrc(t, `{
		"paymentOne": {"amount": 1337, "status": "paid"},
		"paymentTwo": {"amount": 420, "status": "unpaid"}
	}`, Options{Squash: false})

	require.Len(t, result.Declarations, 1)
	root, ok := result.Declarations[0].Type.(ObjectExpr)
	require.True(t, ok)
	_, inline := root.Fields[0].Type.(ObjectExpr)
	assert.True(t, inline)
	assert.Equal(t, 0, result.Stats.Squashed)
}

func TestInfer_SingleOccurrenceStaysInline(t *testing.T) {
	result := inferSrc(t, `{"only":{"a":1}}`, DefaultOptions())

	require.Len(t, result.Declarations, 1)
	root := result.Declarations[0].Type.(ObjectExpr)
	_, inline := root.Fields[0].Type.(ObjectExpr)
	assert.True(t, inline)
}

func TestInfer_SharedDeclarationEmittedOnce(t *testing.T) {
	result := inferSrc(t, `{
		"a": {"v": 1}, "b": {"v": 2}, "c": {"v": 3}
	}`, DefaultOptions())

	assert.Equal(t, []string{"DefaultType_0", "DefaultType"}, declNames(result.Declarations))
	assert.Equal(t, 1, result.Stats.Squashed)
}

func TestInfer_DependencyOrdering(t *testing.T) {
	// The inner pair repeats inside the outer repeated shape; its shared
	// declaration must appear before the declaration that references it.
	result := inferSrc(t, `{
		"first":  {"inner": {"x": 1}, "other": {"x": 2}},
		"second": {"inner": {"x": 3}, "other": {"x": 4}}
	}`, DefaultOptions())

	names := declNames(result.Declarations)
	require.Equal(t, "DefaultType", names[len(names)-1])

	declared := make(map[string]bool)
	for _, d := range result.Declarations {
		assertRefsDeclared(t, d.Type, declared)
		declared[d.Name] = true
	}
}

func assertRefsDeclared(t *testing.T, e Expr, declared map[string]bool) {
	t.Helper()
	switch expr := e.(type) {
	case RefExpr:
		assert.True(t, declared[expr.Name], "reference to %s before its declaration", expr.Name)
	case ArrayExpr:
		assertRefsDeclared(t, expr.Elem, declared)
	case ObjectExpr:
		for _, f := range expr.Fields {
			assertRefsDeclared(t, f.Type, declared)
		}
	}
}

func TestInfer_NestedSharedTypesBothSquashed(t *testing.T) {
	result := inferSrc(t, `{
		"first":  {"inner": {"x": 1}, "other": {"x": 2}},
		"second": {"inner": {"x": 3}, "other": {"x": 4}}
	}`, DefaultOptions())

	// {"x": number} occurs four times, the wrapper twice.
	require.Len(t, result.Declarations, 3)
	assert.Equal(t, 2, result.Stats.Squashed)
}

func TestInfer_NamesAssignedInRegistryOrder(t *testing.T) {
	// The wrapper objects are seen before their inner pairs in pre-order,
	// so the wrapper takes suffix 0.
	result := inferSrc(t, `{
		"first":  {"inner": {"x": 1}, "other": {"x": 2}},
		"second": {"inner": {"x": 3}, "other": {"x": 4}}
	}`, DefaultOptions())

	wrapper := findDecl(result.Declarations, "DefaultType_0")
	require.NotNil(t, wrapper)
	obj, ok := wrapper.Type.(ObjectExpr)
	require.True(t, ok)
	require.Len(t, obj.Fields, 2)
	assert.Equal(t, RefExpr{Name: "DefaultType_1"}, obj.Fields[0].Type)
}

func findDecl(decls []Declaration, name string) *Declaration {
	for i := range decls {
		if decls[i].Name == name {
			return &decls[i]
		}
	}
	return nil
}

func TestInfer_RootNeverSquashed(t *testing.T) {
	// A single-document root cannot recur, but even the root's shape
	// appearing below it must not steal the root's bare name.
	result := inferSrc(t, `{"self":{"self":null}}`, DefaultOptions())

	names := declNames(result.Declarations)
	assert.Equal(t, "DefaultType", names[len(names)-1])
	assert.Equal(t, 1, countOf(names, "DefaultType"))
}

func countOf(ss []string, s string) int {
	n := 0
	for _, v := range ss {
		if v == s {
			n++
		}
	}
	return n
}

func TestInfer_CustomRootName(t *testing.T) {
	result := inferSrc(t, `{"a":{"v":1},"b":{"v":2}}`, Options{RootName: "Payload", Squash: true})

	assert.Equal(t, []string{"Payload_0", "Payload"}, declNames(result.Declarations))
}

func TestInfer_Deterministic(t *testing.T) {
	src := `{"a":[{"x":1},{"x":2}],"b":{"x":3},"c":[1,"s"]}`
	first := inferSrc(t, src, DefaultOptions())
	second := inferSrc(t, src, DefaultOptions())

	assert.Equal(t, first, second)
}

func TestInfer_KeyOrderDoesNotChangeShape(t *testing.T) {
	a := inferSrc(t, `{"one":{"x":1,"y":2},"two":{"y":3,"x":4}}`, DefaultOptions())

	// Both members squash to one shared type despite differing key order.
	assert.Equal(t, 1, a.Stats.Squashed)
	require.Len(t, a.Declarations, 2)
}

func TestInfer_Stats(t *testing.T) {
	result := inferSrc(t, `{"a":{"v":1},"b":{"v":2}}`, DefaultOptions())

	// Nodes: a, b, and two v primitives. Distinct: object shape + number.
	assert.Equal(t, 4, result.Stats.Nodes)
	assert.Equal(t, 2, result.Stats.Distinct)
	assert.Equal(t, 1, result.Stats.Squashed)
}

func TestInfer_EmptyArrayNeverSquashes(t *testing.T) {
	result := inferSrc(t, `{"a":[],"b":[]}`, DefaultOptions())

	// The two empty arrays share a fingerprint but are not object-shaped,
	// so no shared declaration is minted.
	require.Len(t, result.Declarations, 1)
	root := result.Declarations[0].Type.(ObjectExpr)
	arr, ok := root.Fields[0].Type.(ArrayExpr)
	require.True(t, ok)
	assert.Equal(t, AnyExpr{}, arr.Elem)
}
