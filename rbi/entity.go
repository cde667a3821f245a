// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package rbi models the declarations that make up an RBI file and the
// protocol used to merge declarations contributed by different plugins.
//
// Every declaration kind implements [Entity]. Kinds embed [Base], which holds
// the name, comments and provenance shared by all of them.
package rbi

import "slices"

// Entity is a single generatable declaration.
//
// Implementations must be deterministic: rendering and the mergeability
// predicate depend only on the receiver and their arguments.
type Entity interface {
	// Name returns the identity of the entity within its namespace.
	Name() string

	// Comments returns a copy of the entity's comments in insertion order.
	Comments() []string

	// AddComment appends a comment.
	AddComment(text string)

	// Owner returns the generator the entity was created for, or nil.
	Owner() *Generator

	// ProducedBy returns the plugin active when the entity was created,
	// or "" when it was created outside any plugin.
	ProducedBy() string

	// GenerateCommentLines renders the comments as "# " lines.
	GenerateCommentLines(indent int, f Formatter) []string

	// GenerateDeclarationLines renders the complete declaration, including
	// its comments, at the given indent level.
	GenerateDeclarationLines(indent int, f Formatter) []string

	// IsMergeableWith reports whether every entity in others can be folded
	// into the receiver. It is true for an empty slice.
	IsMergeableWith(others []Entity) bool

	// MergeIntoSelf folds others into the receiver. It returns an
	// [*IncompatibleMergeError] and leaves the receiver unchanged when
	// IsMergeableWith(others) is false. Callers drop others afterwards.
	MergeIntoSelf(others []Entity) error

	// Describe returns a short label such as "Method foo - 1 parameters,
	// returns String" for showing the entity in a conflict.
	Describe() string
}

// Base holds the state shared by all entity kinds.
type Base struct {
	owner      *Generator
	producedBy string
	name       string
	comments   []string
}

// NewBase returns a Base for an entity named name, recording the plugin that
// is currently running on g (if any) as its provenance.
//
// NewBase panics if name is empty.
func NewBase(g *Generator, name string) Base {
	if name == "" {
		panic("rbi: entity name must not be empty")
	}
	b := Base{owner: g, name: name}
	if g != nil {
		b.producedBy = g.CurrentPlugin()
	}
	return b
}

// Name returns the entity's name.
func (b *Base) Name() string { return b.name }

// Owner returns the generator the entity belongs to. It may be nil.
func (b *Base) Owner() *Generator { return b.owner }

// ProducedBy returns the provenance label.
func (b *Base) ProducedBy() string { return b.producedBy }

// Comments returns a copy of the comments.
func (b *Base) Comments() []string { return slices.Clone(b.comments) }

// AddComment appends text to the comments.
func (b *Base) AddComment(text string) {
	b.comments = append(b.comments, text)
}

// AddComments appends each of texts in order.
func (b *Base) AddComments(texts ...string) {
	b.comments = append(b.comments, texts...)
}

// GenerateCommentLines returns one indented "# " line per comment.
// It returns an empty slice when there are no comments.
func (b *Base) GenerateCommentLines(indent int, f Formatter) []string {
	lines := make([]string, 0, len(b.comments))
	for _, c := range b.comments {
		lines = append(lines, f.Indented(indent, "# "+c))
	}
	return lines
}

// unionComments appends comments of others that are not already present.
func (b *Base) unionComments(others []Entity) {
	for _, o := range others {
		for _, c := range o.Comments() {
			if !slices.Contains(b.comments, c) {
				b.comments = append(b.comments, c)
			}
		}
	}
}
