// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Typesquash Authors

// Package typescript renders an inferred declaration plan as TypeScript
// type alias source text.
package typescript

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/typesquash/cli/internal/infer"
)

// Renderer formats declarations as TypeScript source.
type Renderer struct {
	Indent     string // indentation unit for object members
	Semicolons bool   // terminate members and declarations with ";"
}

// New returns a Renderer with the conventional defaults: two-space
// indentation and semicolons on.
func New() *Renderer {
	return &Renderer{Indent: "  ", Semicolons: true}
}

// FileExtension returns the file extension for TypeScript source files.
func (r *Renderer) FileExtension() string {
	return ".ts"
}

// Render formats the declaration sequence in order, one blank line between
// declarations, trailing newline at the end.
func (r *Renderer) Render(decls []infer.Declaration) []byte {
	var buf bytes.Buffer
	for i, d := range decls {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "type %s = %s%s\n", d.Name, r.expr(d.Type, 0), r.terminator())
	}
	return buf.Bytes()
}

func (r *Renderer) terminator() string {
	if r.Semicolons {
		return ";"
	}
	return ""
}

func (r *Renderer) expr(e infer.Expr, depth int) string {
	switch t := e.(type) {
	case infer.PrimExpr:
		return t.Kind.String()
	case infer.AnyExpr:
		return "any"
	case infer.UnionExpr:
		return r.union(t)
	case infer.RefExpr:
		return t.Name
	case infer.ArrayExpr:
		elem := r.expr(t.Elem, depth)
		if _, union := t.Elem.(infer.UnionExpr); union {
			elem = "(" + elem + ")"
		}
		return elem + "[]"
	case infer.ObjectExpr:
		return r.object(t, depth)
	default:
		return "any"
	}
}

func (r *Renderer) object(o infer.ObjectExpr, depth int) string {
	if len(o.Fields) == 0 {
		return "{}"
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	inner := strings.Repeat(r.Indent, depth+1)
	for _, f := range o.Fields {
		sb.WriteString(inner)
		sb.WriteString(fieldName(f.Name))
		if f.Optional {
			sb.WriteString("?")
		}
		sb.WriteString(": ")
		sb.WriteString(r.expr(f.Type, depth+1))
		sb.WriteString(r.terminator())
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat(r.Indent, depth))
	sb.WriteString("}")
	return sb.String()
}

// union joins the member alternatives with " | ". Structural members are
// rendered in compact single-line form so the union stays on one line.
func (r *Renderer) union(u infer.UnionExpr) string {
	parts := make([]string, 0, len(u.Members))
	for _, m := range u.Members {
		parts = append(parts, r.compactExpr(m))
	}
	return strings.Join(parts, " | ")
}

// compactExpr renders e without line breaks: object types collapse to
// `{ name: type; }` on one line.
func (r *Renderer) compactExpr(e infer.Expr) string {
	switch t := e.(type) {
	case infer.ObjectExpr:
		if len(t.Fields) == 0 {
			return "{}"
		}
		var sb strings.Builder
		sb.WriteString("{")
		for _, f := range t.Fields {
			sb.WriteString(" ")
			sb.WriteString(fieldName(f.Name))
			if f.Optional {
				sb.WriteString("?")
			}
			sb.WriteString(": ")
			sb.WriteString(r.compactExpr(f.Type))
			sb.WriteString(r.terminator())
		}
		sb.WriteString(" }")
		return sb.String()
	case infer.ArrayExpr:
		elem := r.compactExpr(t.Elem)
		if _, union := t.Elem.(infer.UnionExpr); union {
			elem = "(" + elem + ")"
		}
		return elem + "[]"
	case infer.UnionExpr:
		return r.union(t)
	default:
		return r.expr(e, 0)
	}
}

// fieldName quotes keys that are not valid TypeScript identifiers.
func fieldName(name string) string {
	if isIdentifier(name) {
		return name
	}
	return fmt.Sprintf("%q", name)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || r == '$' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
