// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rbi

// Include is an "include Module" line. Its name is the included module.
type Include struct{ Base }

// NewInclude creates an include of module.
func NewInclude(g *Generator, module string) *Include {
	return &Include{Base: NewBase(g, module)}
}

// GenerateDeclarationLines renders comments and "include Name".
func (i *Include) GenerateDeclarationLines(indent int, f Formatter) []string {
	return append(i.GenerateCommentLines(indent, f), f.Indented(indent, "include "+i.Name()))
}

// IsMergeableWith reports whether others include the same module.
func (i *Include) IsMergeableWith(others []Entity) bool {
	return allNamed[*Include](i.Name(), others)
}

// MergeIntoSelf unions the comments of others into i.
func (i *Include) MergeIntoSelf(others []Entity) error {
	if !i.IsMergeableWith(others) {
		return newIncompatibleMergeError(i, others)
	}
	i.unionComments(others)
	return nil
}

// Describe returns e.g. "Include (Comparable)".
func (i *Include) Describe() string { return "Include (" + i.Name() + ")" }

// Extend is an "extend Module" line. Its name is the extended module.
type Extend struct{ Base }

// NewExtend creates an extend of module.
func NewExtend(g *Generator, module string) *Extend {
	return &Extend{Base: NewBase(g, module)}
}

// GenerateDeclarationLines renders comments and "extend Name".
func (e *Extend) GenerateDeclarationLines(indent int, f Formatter) []string {
	return append(e.GenerateCommentLines(indent, f), f.Indented(indent, "extend "+e.Name()))
}

// IsMergeableWith reports whether others extend the same module.
func (e *Extend) IsMergeableWith(others []Entity) bool {
	return allNamed[*Extend](e.Name(), others)
}

// MergeIntoSelf unions the comments of others into e.
func (e *Extend) MergeIntoSelf(others []Entity) error {
	if !e.IsMergeableWith(others) {
		return newIncompatibleMergeError(e, others)
	}
	e.unionComments(others)
	return nil
}

// Describe returns e.g. "Extend (T::Sig)".
func (e *Extend) Describe() string { return "Extend (" + e.Name() + ")" }

// allNamed reports whether every entity in others is a T named name.
func allNamed[T Entity](name string, others []Entity) bool {
	for _, o := range others {
		if _, ok := o.(T); !ok || o.Name() != name {
			return false
		}
	}
	return true
}
