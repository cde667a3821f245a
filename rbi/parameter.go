// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rbi

import (
	"fmt"
	"strings"
)

// ParameterKind classifies a method parameter by its Ruby prefix or suffix.
type ParameterKind int

const (
	ParamPositional  ParameterKind = iota // a
	ParamKeyword                          // a:
	ParamSplat                            // *a
	ParamDoubleSplat                      // **a
	ParamBlock                            // &a
)

// String returns a lowercase name for the kind.
func (k ParameterKind) String() string {
	switch k {
	case ParamPositional:
		return "positional"
	case ParamKeyword:
		return "keyword"
	case ParamSplat:
		return "splat"
	case ParamDoubleSplat:
		return "double-splat"
	case ParamBlock:
		return "block"
	default:
		return "unknown"
	}
}

// untyped is the type used for parameters declared without one.
const untyped = "T.untyped"

// Parameter is a method parameter. Its name carries the Ruby prefix or
// suffix ("*args", "**opts", "&blk", "key:").
type Parameter struct {
	Base

	kind    ParameterKind
	typ     string
	dflt    string
	hasDflt bool
}

// ParameterOption configures a Parameter.
type ParameterOption func(*Parameter)

// WithType sets the parameter's Sorbet type.
func WithType(t string) ParameterOption {
	return func(p *Parameter) {
		if t != "" {
			p.typ = t
		}
	}
}

// WithDefault sets the parameter's default value expression.
func WithDefault(expr string) ParameterOption {
	return func(p *Parameter) {
		p.dflt = expr
		p.hasDflt = true
	}
}

// NewParameter creates a parameter. Without [WithType] it is T.untyped.
func NewParameter(g *Generator, name string, opts ...ParameterOption) *Parameter {
	p := &Parameter{
		Base: NewBase(g, name),
		kind: parameterKind(name),
		typ:  untyped,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func parameterKind(name string) ParameterKind {
	switch {
	case strings.HasPrefix(name, "**"):
		return ParamDoubleSplat
	case strings.HasPrefix(name, "*"):
		return ParamSplat
	case strings.HasPrefix(name, "&"):
		return ParamBlock
	case strings.HasSuffix(name, ":"):
		return ParamKeyword
	default:
		return ParamPositional
	}
}

// Kind returns the parameter kind.
func (p *Parameter) Kind() ParameterKind { return p.kind }

// Type returns the Sorbet type.
func (p *Parameter) Type() string { return p.typ }

// Default returns the default expression and whether one is set.
func (p *Parameter) Default() (string, bool) { return p.dflt, p.hasDflt }

// BareName returns the name without its prefix or keyword suffix.
func (p *Parameter) BareName() string {
	switch p.kind {
	case ParamKeyword:
		return strings.TrimSuffix(p.Name(), ":")
	case ParamDoubleSplat:
		return strings.TrimPrefix(p.Name(), "**")
	case ParamSplat:
		return strings.TrimPrefix(p.Name(), "*")
	case ParamBlock:
		return strings.TrimPrefix(p.Name(), "&")
	}
	return p.Name()
}

// DefParam renders the parameter as it appears in a def line.
func (p *Parameter) DefParam() string {
	switch {
	case !p.hasDflt:
		return p.Name()
	case p.kind == ParamKeyword:
		return p.Name() + " " + p.dflt
	default:
		return p.Name() + " = " + p.dflt
	}
}

// SigParam renders the parameter as it appears in params(...).
func (p *Parameter) SigParam() string {
	return p.BareName() + ": " + p.typ
}

// GenerateDeclarationLines renders the comments and the sig form.
func (p *Parameter) GenerateDeclarationLines(indent int, f Formatter) []string {
	return append(p.GenerateCommentLines(indent, f), f.Indented(indent, p.SigParam()))
}

// IsMergeableWith reports whether others are parameters identical to p.
func (p *Parameter) IsMergeableWith(others []Entity) bool {
	for _, o := range others {
		op, ok := o.(*Parameter)
		if !ok || !p.sameAs(op) {
			return false
		}
	}
	return true
}

// MergeIntoSelf unions the comments of others into p.
func (p *Parameter) MergeIntoSelf(others []Entity) error {
	if !p.IsMergeableWith(others) {
		return newIncompatibleMergeError(p, others)
	}
	p.unionComments(others)
	return nil
}

// Describe returns e.g. "Parameter count (Integer)".
func (p *Parameter) Describe() string {
	if p.hasDflt {
		return fmt.Sprintf("Parameter %s (%s) = %s", p.Name(), p.typ, p.dflt)
	}
	return fmt.Sprintf("Parameter %s (%s)", p.Name(), p.typ)
}

func (p *Parameter) sameAs(o *Parameter) bool {
	return p.Name() == o.Name() &&
		p.typ == o.typ &&
		p.hasDflt == o.hasDflt &&
		p.dflt == o.dflt
}
