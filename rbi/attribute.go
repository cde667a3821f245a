// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rbi

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// AttributeKind selects attr_reader, attr_writer or attr_accessor.
type AttributeKind int

const (
	AttrReader AttributeKind = iota
	AttrWriter
	AttrAccessor
)

// String returns "reader", "writer" or "accessor".
func (k AttributeKind) String() string {
	switch k {
	case AttrReader:
		return "reader"
	case AttrWriter:
		return "writer"
	case AttrAccessor:
		return "accessor"
	default:
		return "unknown"
	}
}

// ParseAttributeKind parses "reader", "writer" or "accessor".
func ParseAttributeKind(s string) (AttributeKind, error) {
	switch s {
	case "reader":
		return AttrReader, nil
	case "writer":
		return AttrWriter, nil
	case "accessor":
		return AttrAccessor, nil
	}
	return 0, errors.Newf("unknown attribute kind %q", s)
}

// Attribute is an attr_reader, attr_writer or attr_accessor with its sig.
type Attribute struct {
	Base
	kind           AttributeKind
	typ            string
	classAttribute bool
}

// NewAttribute creates an attribute. Class attributes are rendered inside
// "class << self" by their namespace.
func NewAttribute(g *Generator, name string, kind AttributeKind, typ string, classAttribute bool) *Attribute {
	if typ == "" {
		typ = untyped
	}
	return &Attribute{
		Base:           NewBase(g, name),
		kind:           kind,
		typ:            typ,
		classAttribute: classAttribute,
	}
}

// Kind returns the attribute kind.
func (a *Attribute) Kind() AttributeKind { return a.kind }

// Type returns the attribute's type.
func (a *Attribute) Type() string { return a.typ }

// IsClassAttribute reports whether the attribute is defined on the singleton.
func (a *Attribute) IsClassAttribute() bool { return a.classAttribute }

// GenerateDeclarationLines renders comments, the sig and the attr_ line.
func (a *Attribute) GenerateDeclarationLines(indent int, f Formatter) []string {
	sig := signature{returnType: a.typ}
	if a.kind == AttrWriter {
		sig.params = []*Parameter{NewParameter(nil, a.Name(), WithType(a.typ))}
	}
	lines := a.GenerateCommentLines(indent, f)
	lines = append(lines, sig.lines(indent, f)...)
	return append(lines, f.Indented(indent, fmt.Sprintf("attr_%s :%s", a.kind, a.Name())))
}

// IsMergeableWith reports whether others are identical attributes.
func (a *Attribute) IsMergeableWith(others []Entity) bool {
	for _, o := range others {
		oa, ok := o.(*Attribute)
		if !ok || oa.Name() != a.Name() || oa.kind != a.kind || oa.typ != a.typ ||
			oa.classAttribute != a.classAttribute {
			return false
		}
	}
	return true
}

// MergeIntoSelf unions the comments of others into a.
func (a *Attribute) MergeIntoSelf(others []Entity) error {
	if !a.IsMergeableWith(others) {
		return newIncompatibleMergeError(a, others)
	}
	a.unionComments(others)
	return nil
}

// Describe returns e.g. "Attribute reader name (String)".
func (a *Attribute) Describe() string {
	return fmt.Sprintf("Attribute %s %s (%s)", a.kind, a.Name(), a.typ)
}
