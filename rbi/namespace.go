// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rbi

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// NamespaceKind distinguishes modules from classes.
type NamespaceKind int

const (
	ModuleKind NamespaceKind = iota
	ClassKind
)

// String returns "module" or "class".
func (k NamespaceKind) String() string {
	if k == ClassKind {
		return "class"
	}
	return "module"
}

// NamespaceOptions configures a module or class.
type NamespaceOptions struct {
	// Superclass is the parent class. Ignored for modules.
	Superclass string

	Final  bool
	Sealed bool

	// Abstract renders "abstract!" (classes).
	Abstract bool

	// Interface renders "interface!" (modules).
	Interface bool
}

// Namespace is a module or class containing other entities. The root
// namespace of a [Generator] is unnamed, renders only its body and never
// takes part in merging.
type Namespace struct {
	Base
	kind     NamespaceKind
	opts     NamespaceOptions
	parent   *Namespace
	children []Entity
	root     bool
}

// NewNamespace creates a detached module or class. Most callers use the
// Create* helpers on a parent namespace instead.
func NewNamespace(g *Generator, name string, kind NamespaceKind, opts NamespaceOptions) *Namespace {
	if kind == ModuleKind {
		opts.Superclass = ""
	}
	return &Namespace{Base: NewBase(g, name), kind: kind, opts: opts}
}

func newRoot(g *Generator) *Namespace {
	return &Namespace{Base: Base{owner: g}, root: true}
}

// Kind returns whether n is a module or a class.
func (n *Namespace) Kind() NamespaceKind { return n.kind }

// Superclass returns the superclass of a class, or "".
func (n *Namespace) Superclass() string { return n.opts.Superclass }

// IsRoot reports whether n is a generator's root namespace.
func (n *Namespace) IsRoot() bool { return n.root }

// Parent returns the enclosing namespace, or nil for the root and for
// detached namespaces.
func (n *Namespace) Parent() *Namespace { return n.parent }

// Path returns the fully qualified name, e.g. "Foo::Bar". The root's path is
// empty.
func (n *Namespace) Path() string {
	var parts []string
	for ns := n; ns != nil && !ns.root; ns = ns.parent {
		parts = append(parts, ns.Name())
	}
	slices.Reverse(parts)
	return strings.Join(parts, "::")
}

// Children returns the members of n in insertion order.
func (n *Namespace) Children() []Entity { return slices.Clone(n.children) }

// AddChild appends e to n.
func (n *Namespace) AddChild(e Entity) {
	if ns, ok := e.(*Namespace); ok {
		ns.parent = n
	}
	n.children = append(n.children, e)
}

// SetChildren replaces the members of n.
func (n *Namespace) SetChildren(children []Entity) {
	n.children = n.children[:0:0]
	for _, c := range children {
		n.AddChild(c)
	}
}

// RemoveChildren removes every member for which drop returns true and
// returns how many were removed.
func (n *Namespace) RemoveChildren(drop func(Entity) bool) int {
	before := len(n.children)
	n.children = slices.DeleteFunc(n.children, drop)
	return before - len(n.children)
}

// CreateModule adds a module to n.
func (n *Namespace) CreateModule(name string, opts NamespaceOptions) *Namespace {
	ns := NewNamespace(n.owner, name, ModuleKind, opts)
	n.AddChild(ns)
	return ns
}

// CreateClass adds a class to n.
func (n *Namespace) CreateClass(name string, opts NamespaceOptions) *Namespace {
	ns := NewNamespace(n.owner, name, ClassKind, opts)
	n.AddChild(ns)
	return ns
}

// CreateMethod adds a method to n.
func (n *Namespace) CreateMethod(name string, opts MethodOptions) *Method {
	m := NewMethod(n.owner, name, opts)
	n.AddChild(m)
	return m
}

// CreateParameter returns a parameter owned by n's generator. Parameters are
// attached to methods, not namespaces.
func (n *Namespace) CreateParameter(name string, opts ...ParameterOption) *Parameter {
	return NewParameter(n.owner, name, opts...)
}

// CreateAttribute adds an attribute to n.
func (n *Namespace) CreateAttribute(name string, kind AttributeKind, typ string, classAttribute bool) *Attribute {
	a := NewAttribute(n.owner, name, kind, typ, classAttribute)
	n.AddChild(a)
	return a
}

// CreateAttrReader adds an instance attr_reader to n.
func (n *Namespace) CreateAttrReader(name, typ string) *Attribute {
	return n.CreateAttribute(name, AttrReader, typ, false)
}

// CreateAttrWriter adds an instance attr_writer to n.
func (n *Namespace) CreateAttrWriter(name, typ string) *Attribute {
	return n.CreateAttribute(name, AttrWriter, typ, false)
}

// CreateAttrAccessor adds an instance attr_accessor to n.
func (n *Namespace) CreateAttrAccessor(name, typ string) *Attribute {
	return n.CreateAttribute(name, AttrAccessor, typ, false)
}

// CreateConstant adds a constant to n.
func (n *Namespace) CreateConstant(name, value string, classConstant bool) *Constant {
	c := NewConstant(n.owner, name, value, classConstant)
	n.AddChild(c)
	return c
}

// CreateInclude adds "include module" to n.
func (n *Namespace) CreateInclude(module string) *Include {
	i := NewInclude(n.owner, module)
	n.AddChild(i)
	return i
}

// CreateExtend adds "extend module" to n.
func (n *Namespace) CreateExtend(module string) *Extend {
	e := NewExtend(n.owner, module)
	n.AddChild(e)
	return e
}

// CreateTypeAlias adds a type alias to n.
func (n *Namespace) CreateTypeAlias(name, typ string) *TypeAlias {
	t := NewTypeAlias(n.owner, name, typ)
	n.AddChild(t)
	return t
}

// CreateArbitrary adds verbatim code to n.
func (n *Namespace) CreateArbitrary(code string) *Arbitrary {
	a := NewArbitrary(n.owner, code)
	n.AddChild(a)
	return a
}

// GenerateDeclarationLines renders the comments, the module or class header,
// the body and "end". The root renders only its body.
func (n *Namespace) GenerateDeclarationLines(indent int, f Formatter) []string {
	if n.root {
		return n.generateBody(indent, f)
	}
	header := n.kind.String() + " " + n.Name()
	if n.kind == ClassKind && n.opts.Superclass != "" {
		header += " < " + n.opts.Superclass
	}
	lines := n.GenerateCommentLines(indent, f)
	lines = append(lines, f.Indented(indent, header))
	lines = append(lines, n.generateBody(indent+1, f)...)
	return append(lines, f.Indented(indent, "end"))
}

// generateBody renders markers, then includes, extends, constants and type
// aliases, then the singleton block, then everything else. Sections are
// separated by a blank line.
func (n *Namespace) generateBody(indent int, f Formatter) []string {
	children := n.children
	if sortNamespaces(f) {
		children = slices.Clone(children)
		slices.SortStableFunc(children, func(a, b Entity) int {
			return cmp.Compare(a.Name(), b.Name())
		})
	}

	var (
		markers   []string
		singleton []string
		sections  [][]string
	)
	if n.opts.Final {
		markers = append(markers, f.Indented(indent, "final!"))
	}
	if n.opts.Sealed {
		markers = append(markers, f.Indented(indent, "sealed!"))
	}
	if n.opts.Abstract {
		markers = append(markers, f.Indented(indent, "abstract!"))
	}
	if n.opts.Interface {
		markers = append(markers, f.Indented(indent, "interface!"))
	}

	var includes, extends, constants []string
	for _, c := range children {
		switch c := c.(type) {
		case *Include:
			includes = append(includes, c.GenerateDeclarationLines(indent, f)...)
		case *Extend:
			extends = append(extends, c.GenerateDeclarationLines(indent, f)...)
		case *Constant:
			if c.classConstant {
				singleton = append(singleton, c.GenerateDeclarationLines(indent+1, f)...)
				continue
			}
			constants = append(constants, c.GenerateDeclarationLines(indent, f)...)
		case *TypeAlias:
			constants = append(constants, c.GenerateDeclarationLines(indent, f)...)
		case *Attribute:
			if c.classAttribute {
				singleton = append(singleton, c.GenerateDeclarationLines(indent+1, f)...)
				continue
			}
			sections = append(sections, c.GenerateDeclarationLines(indent, f))
		default:
			sections = append(sections, c.GenerateDeclarationLines(indent, f))
		}
	}
	header := slices.Concat(includes, extends, constants)

	var blocks [][]string
	if len(markers) > 0 {
		blocks = append(blocks, markers)
	}
	if len(header) > 0 {
		blocks = append(blocks, header)
	}
	if len(singleton) > 0 {
		block := []string{f.Indented(indent, "class << self")}
		block = append(block, singleton...)
		blocks = append(blocks, append(block, f.Indented(indent, "end")))
	}
	blocks = append(blocks, sections...)

	var lines []string
	for i, b := range blocks {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, b...)
	}
	return lines
}

// IsMergeableWith reports whether others are namespaces of the same kind and
// name and, for classes, agree on at most one superclass.
func (n *Namespace) IsMergeableWith(others []Entity) bool {
	if n.root {
		return len(others) == 0
	}
	superclass := n.opts.Superclass
	for _, o := range others {
		on, ok := o.(*Namespace)
		if !ok || on.root || on.kind != n.kind || on.Name() != n.Name() {
			return false
		}
		if on.opts.Superclass == "" {
			continue
		}
		if superclass != "" && superclass != on.opts.Superclass {
			return false
		}
		superclass = on.opts.Superclass
	}
	return true
}

// MergeIntoSelf appends the children of others to n, unions comments, adopts
// a superclass if n has none and ORs the flags. Duplicate children brought
// together this way are left for the conflict resolver.
func (n *Namespace) MergeIntoSelf(others []Entity) error {
	if !n.IsMergeableWith(others) {
		return newIncompatibleMergeError(n, others)
	}
	n.unionComments(others)
	for _, o := range others {
		on := o.(*Namespace)
		if n.opts.Superclass == "" {
			n.opts.Superclass = on.opts.Superclass
		}
		n.opts.Final = n.opts.Final || on.opts.Final
		n.opts.Sealed = n.opts.Sealed || on.opts.Sealed
		n.opts.Abstract = n.opts.Abstract || on.opts.Abstract
		n.opts.Interface = n.opts.Interface || on.opts.Interface
		for _, c := range on.children {
			n.AddChild(c)
		}
	}
	return nil
}

// Describe returns e.g. "Class Foo < Bar - 3 children".
func (n *Namespace) Describe() string {
	if n.root {
		return "Root namespace"
	}
	kind := "Module"
	if n.kind == ClassKind {
		kind = "Class"
	}
	label := kind + " " + n.Path()
	if n.opts.Superclass != "" {
		label += " < " + n.opts.Superclass
	}
	return fmt.Sprintf("%s - %d children", label, len(n.children))
}
