// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Typesquash Authors

// Package jsonvalue decodes JSON text into a generic value tree that
// preserves the order in which object keys first appear in the source.
package jsonvalue

// Value is one of String, Number, Bool, Null, Array, or Object.
type Value interface {
	isValue()
}

// String is a JSON string value.
type String string

// Number is a JSON number, kept as its source text so no precision is lost.
type Number string

// Bool is a JSON boolean value.
type Bool bool

// Null is the JSON null value.
type Null struct{}

// Array is an ordered sequence of values.
type Array []Value

// Member is a single key/value pair within an Object.
type Member struct {
	Key   string
	Value Value
}

// Object holds members in the order their keys were first observed.
type Object struct {
	Members []Member
}

func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (Null) isValue()   {}
func (Array) isValue()  {}
func (Object) isValue() {}

// Get returns the value stored under key, or nil if absent.
func (o Object) Get(key string) Value {
	for _, m := range o.Members {
		if m.Key == key {
			return m.Value
		}
	}
	return nil
}
