// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rbi

import "strings"

// Formatter applies indentation to a rendered line.
type Formatter interface {
	Indented(level int, line string) string
}

// Options controls how declarations are rendered.
type Options struct {
	// TabSize is the number of spaces per indent level.
	TabSize int

	// BreakParams is the parameter count at which method signatures are
	// split over multiple lines.
	BreakParams int

	// SortNamespaces renders namespace members in name order instead of
	// insertion order.
	SortNamespaces bool
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		TabSize:        2,
		BreakParams:    4,
		SortNamespaces: false,
	}
}

// Indented prefixes line with level*TabSize spaces.
func (o Options) Indented(level int, line string) string {
	if level < 0 {
		level = 0
	}
	return strings.Repeat(" ", level*o.TabSize) + line
}

// breakParams returns the BreakParams of f, or the default when f is not an
// Options value.
func breakParams(f Formatter) int {
	if o, ok := f.(Options); ok && o.BreakParams > 0 {
		return o.BreakParams
	}
	if o, ok := f.(*Options); ok && o.BreakParams > 0 {
		return o.BreakParams
	}
	return DefaultOptions().BreakParams
}

// sortNamespaces reports whether f asks for sorted namespace members.
func sortNamespaces(f Formatter) bool {
	switch o := f.(type) {
	case Options:
		return o.SortNamespaces
	case *Options:
		return o.SortNamespaces
	}
	return false
}
