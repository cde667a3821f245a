// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package prompt asks an operator to settle conflicts and prints resolution
// summaries.
package prompt

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"

	"github.com/albertocavalcante/rbigen/conflict"
	"github.com/albertocavalcante/rbigen/rbi"
)

// noneOption is the last choice offered for every conflict.
const noneOption = "Don't include any of these"

// SelectFunc shows options under title and returns the one picked.
type SelectFunc func(title string, options []string) (string, error)

// Chooser is a [conflict.Chooser] that asks on the terminal.
type Chooser struct {
	out      io.Writer
	selectFn SelectFunc
}

// Option configures a Chooser.
type Option func(*Chooser)

// WithOutput sets where the conflict details are printed.
func WithOutput(w io.Writer) Option {
	return func(c *Chooser) { c.out = w }
}

// WithSelect replaces the interactive select.
func WithSelect(fn SelectFunc) Option {
	return func(c *Chooser) { c.selectFn = fn }
}

// NewChooser creates an interactive chooser writing to stderr.
func NewChooser(opts ...Option) *Chooser {
	c := &Chooser{out: os.Stderr, selectFn: interactiveSelect}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Choose prints the conflict and asks which candidate to keep.
func (c *Chooser) Choose(ctx context.Context, cf conflict.Conflict) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	fmt.Fprintln(c.out, pterm.Warning.Sprintf("Conflict! %s", cf.Reason.Message()))
	fmt.Fprintf(c.out, "  %s\n", cf.QualifiedName())

	options := make([]string, 0, len(cf.Candidates)+1)
	for i, cand := range cf.Candidates {
		options = append(options, fmt.Sprintf("%d. %s", i+1, describe(cand)))
	}
	options = append(options, noneOption)

	picked, err := c.selectFn("Which declaration should be kept?", options)
	if err != nil {
		return 0, errors.Wrap(err, "read choice")
	}
	for i, opt := range options {
		if opt != picked {
			continue
		}
		if i == len(cf.Candidates) {
			return conflict.KeepNone, nil
		}
		return i, nil
	}
	return 0, errors.Newf("unexpected choice %q", picked)
}

func interactiveSelect(title string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText(title).
		Show()
}

func describe(e rbi.Entity) string {
	if p := e.ProducedBy(); p != "" {
		return e.Describe() + " (from " + p + ")"
	}
	return e.Describe()
}
