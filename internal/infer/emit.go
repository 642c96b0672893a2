// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Typesquash Authors

package infer

// Expr is a structural type expression ready for textual rendering. It is
// one of PrimExpr, UnionExpr, AnyExpr, RefExpr, ArrayExpr, or ObjectExpr.
type Expr interface {
	isExpr()
}

// PrimExpr is a single primitive type.
type PrimExpr struct {
	Kind Kind
}

// UnionExpr is a widened union of alternatives in canonical member order:
// primitives first, then an object alternative, then an array alternative.
type UnionExpr struct {
	Members []Expr
}

// AnyExpr is the unconstrained type.
type AnyExpr struct{}

// RefExpr is a reference to a previously declared shared type.
type RefExpr struct {
	Name string
}

// ArrayExpr is an array of Elem.
type ArrayExpr struct {
	Elem Expr
}

// FieldExpr is a single object field.
type FieldExpr struct {
	Name     string
	Optional bool
	Type     Expr
}

// ObjectExpr is an inline object type.
type ObjectExpr struct {
	Fields []FieldExpr
}

func (PrimExpr) isExpr()   {}
func (UnionExpr) isExpr()  {}
func (AnyExpr) isExpr()    {}
func (RefExpr) isExpr()    {}
func (ArrayExpr) isExpr()  {}
func (ObjectExpr) isExpr() {}

// Declaration is one named type declaration in the output sequence.
type Declaration struct {
	Name string
	Type Expr
}

// EmitDeclarations walks the tree once more and produces the final ordered
// declaration sequence. At any non-root node whose fingerprint has a cache
// entry, a reference to the entry's name is printed instead of the node's
// own structure; the entry's body is declared exactly once, before the
// first declaration that references it. The root is always last, as a
// standalone declaration under rootName.
func EmitDeclarations(root *TypeNode, cache *Cache, rootName string) []Declaration {
	e := &emitter{cache: cache, declared: make(map[Fingerprint]bool)}
	rootExpr := e.inlineExpr(root)
	e.decls = append(e.decls, Declaration{Name: rootName, Type: rootExpr})
	return e.decls
}

type emitter struct {
	cache    *Cache
	declared map[Fingerprint]bool
	decls    []Declaration
}

// exprAt decides what to print at a use site: a cache reference when the
// node's fingerprint was squashed, the inline structure otherwise.
func (e *emitter) exprAt(n *TypeNode) Expr {
	entry, ok := e.cache.Lookup(n.Fingerprint)
	if !ok {
		return e.inlineExpr(n)
	}
	if !e.declared[n.Fingerprint] {
		e.declared[n.Fingerprint] = true
		body := e.inlineExpr(entry.Node)
		e.decls = append(e.decls, Declaration{Name: entry.Name, Type: body})
	}
	return RefExpr{Name: entry.Name}
}

// inlineExpr renders the node's own structure, applying the use-site rule
// to each child.
func (e *emitter) inlineExpr(n *TypeNode) Expr {
	switch n.Kind {
	case KindObject:
		obj := ObjectExpr{Fields: make([]FieldExpr, 0, len(n.Fields))}
		for _, f := range n.Fields {
			obj.Fields = append(obj.Fields, FieldExpr{
				Name:     f.Name,
				Optional: f.Node.Optional,
				Type:     e.exprAt(f.Node),
			})
		}
		return obj
	case KindArray:
		return ArrayExpr{Elem: e.exprAt(n.Elem)}
	case KindUnion:
		u := UnionExpr{Members: make([]Expr, 0, len(n.Variants))}
		for _, v := range n.Variants {
			u.Members = append(u.Members, e.exprAt(v))
		}
		return u
	case KindAny:
		return AnyExpr{}
	default:
		return PrimExpr{Kind: n.Kind}
	}
}
