// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rbi

import (
	"fmt"
	"slices"
	"strings"
)

// MethodOptions configures a Method.
type MethodOptions struct {
	// Parameters in declaration order.
	Parameters []*Parameter

	// ReturnType is the Sorbet return type. Empty means void.
	ReturnType string

	Abstract    bool
	Override    bool
	Overridable bool
	Final       bool

	// ClassMethod renders the method as "def self.name".
	ClassMethod bool

	// TypeParameters are the generic type parameter names, without colons.
	TypeParameters []string
}

// Method is a method definition together with its Sorbet signature.
type Method struct {
	Base
	opts MethodOptions
}

// NewMethod creates a method.
func NewMethod(g *Generator, name string, opts MethodOptions) *Method {
	opts.Parameters = slices.Clone(opts.Parameters)
	opts.TypeParameters = slices.Clone(opts.TypeParameters)
	return &Method{Base: NewBase(g, name), opts: opts}
}

// Parameters returns the method's parameters.
func (m *Method) Parameters() []*Parameter { return slices.Clone(m.opts.Parameters) }

// ReturnType returns the return type, or "" for void.
func (m *Method) ReturnType() string { return m.opts.ReturnType }

// IsClassMethod reports whether the method is defined on self.
func (m *Method) IsClassMethod() bool { return m.opts.ClassMethod }

// IsAbstract reports whether the method is abstract.
func (m *Method) IsAbstract() bool { return m.opts.Abstract }

// GenerateDeclarationLines renders comments, the sig and the def line.
func (m *Method) GenerateDeclarationLines(indent int, f Formatter) []string {
	lines := m.GenerateCommentLines(indent, f)
	lines = append(lines, m.signature().lines(indent, f)...)

	params := make([]string, 0, len(m.opts.Parameters))
	for _, p := range m.opts.Parameters {
		params = append(params, p.DefParam())
	}
	def := "def "
	if m.opts.ClassMethod {
		def += "self."
	}
	def += m.Name()
	if len(params) > 0 {
		def += "(" + strings.Join(params, ", ") + ")"
	}
	return append(lines, f.Indented(indent, def+"; end"))
}

// IsMergeableWith reports whether others are methods with an identical
// signature.
func (m *Method) IsMergeableWith(others []Entity) bool {
	for _, o := range others {
		om, ok := o.(*Method)
		if !ok || !m.sameSignature(om) {
			return false
		}
	}
	return true
}

// MergeIntoSelf unions the comments of others into m. Mergeable methods are
// identical, so nothing else changes.
func (m *Method) MergeIntoSelf(others []Entity) error {
	if !m.IsMergeableWith(others) {
		return newIncompatibleMergeError(m, others)
	}
	m.unionComments(others)
	return nil
}

// Describe returns e.g. "Method foo - 2 parameters, returns String".
func (m *Method) Describe() string {
	name := m.Name()
	if m.opts.ClassMethod {
		name = "self." + name
	}
	ret := m.opts.ReturnType
	if ret == "" {
		ret = "void"
	}
	return fmt.Sprintf("Method %s - %d parameters, returns %s", name, len(m.opts.Parameters), ret)
}

func (m *Method) sameSignature(o *Method) bool {
	a, b := m.opts, o.opts
	if m.Name() != o.Name() ||
		a.ReturnType != b.ReturnType ||
		a.Abstract != b.Abstract ||
		a.Override != b.Override ||
		a.Overridable != b.Overridable ||
		a.Final != b.Final ||
		a.ClassMethod != b.ClassMethod ||
		!slices.Equal(a.TypeParameters, b.TypeParameters) {
		return false
	}
	return slices.EqualFunc(a.Parameters, b.Parameters, (*Parameter).sameAs)
}

func (m *Method) signature() signature {
	var q []string
	if m.opts.Abstract {
		q = append(q, "abstract")
	}
	if m.opts.Override {
		q = append(q, "override")
	}
	if m.opts.Overridable {
		q = append(q, "overridable")
	}
	if len(m.opts.TypeParameters) > 0 {
		syms := make([]string, len(m.opts.TypeParameters))
		for i, t := range m.opts.TypeParameters {
			syms[i] = ":" + t
		}
		q = append(q, "type_parameters("+strings.Join(syms, ", ")+")")
	}
	return signature{
		final:      m.opts.Final,
		qualifiers: q,
		params:     m.opts.Parameters,
		returnType: m.opts.ReturnType,
	}
}

// signature renders a Sorbet sig block.
type signature struct {
	final      bool
	qualifiers []string
	params     []*Parameter
	returnType string
}

func (s signature) returnCall() string {
	if s.returnType == "" {
		return "void"
	}
	return "returns(" + s.returnType + ")"
}

func (s signature) lines(indent int, f Formatter) []string {
	sig := "sig"
	if s.final {
		sig += "(:final)"
	}
	prefix := ""
	if len(s.qualifiers) > 0 {
		prefix = strings.Join(s.qualifiers, ".") + "."
	}

	if len(s.params) > 0 && len(s.params) >= breakParams(f) {
		lines := []string{
			f.Indented(indent, sig+" do"),
			f.Indented(indent+1, prefix+"params("),
		}
		for i, p := range s.params {
			line := p.SigParam()
			if i < len(s.params)-1 {
				line += ","
			}
			lines = append(lines, f.Indented(indent+2, line))
		}
		return append(lines,
			f.Indented(indent+1, ")."+s.returnCall()),
			f.Indented(indent, "end"))
	}

	body := prefix
	if len(s.params) > 0 {
		sigParams := make([]string, len(s.params))
		for i, p := range s.params {
			sigParams[i] = p.SigParam()
		}
		body += "params(" + strings.Join(sigParams, ", ") + ")."
	}
	body += s.returnCall()
	return []string{f.Indented(indent, sig+" { "+body+" }")}
}
