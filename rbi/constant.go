// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rbi

import "fmt"

// Constant is a constant assignment such as "VERSION = T.let(T.unsafe(nil), String)".
type Constant struct {
	Base
	value         string
	classConstant bool
}

// NewConstant creates a constant with the given value expression. Class
// constants are rendered inside "class << self".
func NewConstant(g *Generator, name, value string, classConstant bool) *Constant {
	return &Constant{Base: NewBase(g, name), value: value, classConstant: classConstant}
}

// Value returns the value expression.
func (c *Constant) Value() string { return c.value }

// IsClassConstant reports whether the constant is defined on the singleton.
func (c *Constant) IsClassConstant() bool { return c.classConstant }

// GenerateDeclarationLines renders comments and "Name = value".
func (c *Constant) GenerateDeclarationLines(indent int, f Formatter) []string {
	return append(c.GenerateCommentLines(indent, f), f.Indented(indent, c.Name()+" = "+c.value))
}

// IsMergeableWith reports whether others are constants with the same value.
func (c *Constant) IsMergeableWith(others []Entity) bool {
	for _, o := range others {
		oc, ok := o.(*Constant)
		if !ok || oc.Name() != c.Name() || oc.value != c.value || oc.classConstant != c.classConstant {
			return false
		}
	}
	return true
}

// MergeIntoSelf unions the comments of others into c.
func (c *Constant) MergeIntoSelf(others []Entity) error {
	if !c.IsMergeableWith(others) {
		return newIncompatibleMergeError(c, others)
	}
	c.unionComments(others)
	return nil
}

// Describe returns e.g. "Constant (VERSION = 1)".
func (c *Constant) Describe() string {
	return fmt.Sprintf("Constant (%s = %s)", c.Name(), c.value)
}
