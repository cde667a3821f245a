// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rbi

import "fmt"

// TypeAlias is "Name = T.type_alias { Type }".
type TypeAlias struct {
	Base
	typ string
}

// NewTypeAlias creates a type alias for typ.
func NewTypeAlias(g *Generator, name, typ string) *TypeAlias {
	return &TypeAlias{Base: NewBase(g, name), typ: typ}
}

// Type returns the aliased type.
func (t *TypeAlias) Type() string { return t.typ }

// GenerateDeclarationLines renders comments and the alias assignment.
func (t *TypeAlias) GenerateDeclarationLines(indent int, f Formatter) []string {
	line := fmt.Sprintf("%s = T.type_alias { %s }", t.Name(), t.typ)
	return append(t.GenerateCommentLines(indent, f), f.Indented(indent, line))
}

// IsMergeableWith reports whether others alias the same type.
func (t *TypeAlias) IsMergeableWith(others []Entity) bool {
	for _, o := range others {
		ot, ok := o.(*TypeAlias)
		if !ok || ot.Name() != t.Name() || ot.typ != t.typ {
			return false
		}
	}
	return true
}

// MergeIntoSelf unions the comments of others into t.
func (t *TypeAlias) MergeIntoSelf(others []Entity) error {
	if !t.IsMergeableWith(others) {
		return newIncompatibleMergeError(t, others)
	}
	t.unionComments(others)
	return nil
}

// Describe returns e.g. "Type alias (Id = Integer)".
func (t *TypeAlias) Describe() string {
	return fmt.Sprintf("Type alias (%s = %s)", t.Name(), t.typ)
}
