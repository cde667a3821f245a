// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rbi

import "strings"

// Arbitrary is verbatim code emitted as-is. Its name is the code itself.
type Arbitrary struct{ Base }

// NewArbitrary creates an arbitrary code block. Multi-line code is indented
// line by line.
func NewArbitrary(g *Generator, code string) *Arbitrary {
	return &Arbitrary{Base: NewBase(g, code)}
}

// Code returns the verbatim code.
func (a *Arbitrary) Code() string { return a.Name() }

// GenerateDeclarationLines renders comments and each line of code. Trailing
// newlines are dropped.
func (a *Arbitrary) GenerateDeclarationLines(indent int, f Formatter) []string {
	lines := a.GenerateCommentLines(indent, f)
	for _, l := range strings.Split(strings.TrimRight(a.Name(), "\n"), "\n") {
		if l == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, f.Indented(indent, l))
	}
	return lines
}

// IsMergeableWith reports whether others hold the same code.
func (a *Arbitrary) IsMergeableWith(others []Entity) bool {
	return allNamed[*Arbitrary](a.Name(), others)
}

// MergeIntoSelf unions the comments of others into a.
func (a *Arbitrary) MergeIntoSelf(others []Entity) error {
	if !a.IsMergeableWith(others) {
		return newIncompatibleMergeError(a, others)
	}
	a.unionComments(others)
	return nil
}

// Describe returns the first line of the code.
func (a *Arbitrary) Describe() string {
	first, _, _ := strings.Cut(a.Name(), "\n")
	return "Arbitrary code (" + first + ")"
}
