// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rbi

import "strings"

// Generator is the context shared by all entities of one RBI file: the root
// namespace, the rendering options and the plugin currently contributing.
type Generator struct {
	options       Options
	root          *Namespace
	currentPlugin string
}

// NewGenerator creates a Generator with an empty root namespace.
func NewGenerator(opts Options) *Generator {
	g := &Generator{options: opts}
	g.root = newRoot(g)
	return g
}

// Options returns the rendering options.
func (g *Generator) Options() Options { return g.options }

// Root returns the root namespace.
func (g *Generator) Root() *Namespace { return g.root }

// CurrentPlugin returns the label of the running plugin, or "".
func (g *Generator) CurrentPlugin() string { return g.currentPlugin }

// SetCurrentPlugin sets the provenance stamped on entities created from now
// on. Pass "" once the plugin has finished.
func (g *Generator) SetCurrentPlugin(label string) { g.currentPlugin = label }

// Generate renders the whole file with a "# typed:" sigil.
func (g *Generator) Generate(strictness Strictness) string {
	var b strings.Builder
	b.WriteString("# typed: ")
	b.WriteString(strictness.String())
	b.WriteString("\n")

	lines := g.root.GenerateDeclarationLines(0, g.options)
	if len(lines) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}
