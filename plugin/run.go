// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package plugin

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/albertocavalcante/rbigen/rbi"
)

// Invocation is one configured use of a plugin.
type Invocation struct {
	Plugin Plugin
	Config Config
}

// Provenance returns the label recorded on entities created by this
// invocation: the configured label, or the plugin name.
func (inv Invocation) Provenance() string {
	if inv.Config.Label != "" {
		return inv.Config.Label
	}
	return inv.Plugin.Metadata().Name
}

// RunOptions controls Run.
type RunOptions struct {
	// AllowFailure logs failing plugins and carries on with the next one
	// instead of stopping the run.
	AllowFailure bool

	// Logger receives progress and failures. Nil disables logging.
	Logger *zap.SugaredLogger
}

// Summary describes a completed run.
type Summary struct {
	// Strictness is the weakest level requested by any plugin, or
	// rbi.StrictnessStrong when none asked.
	Strictness rbi.Strictness

	// Succeeded lists the provenance of plugins that finished, in order.
	Succeeded []string

	// Failed lists the provenance of plugins that returned an error and were
	// skipped because of AllowFailure. Members they added to the tree before
	// failing have been removed.
	Failed []string
}

// Run invokes each plugin in order against g's root namespace. Plugins run
// one at a time; while one runs, g's current plugin is its provenance.
func Run(ctx context.Context, g *rbi.Generator, invocations []Invocation, opts RunOptions) (*Summary, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	var (
		summary Summary
		levels  []rbi.Strictness
	)
	for _, inv := range invocations {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "plugin run interrupted")
		}

		label := inv.Provenance()
		log.Debugw("running plugin", "plugin", inv.Plugin.Metadata().Name, "label", label)

		var snap snapshot
		if opts.AllowFailure {
			snap = takeSnapshot(g.Root())
		}
		res, err := invoke(ctx, g, inv, label)
		if err != nil {
			err = errors.Wrapf(err, "plugin %q", label)
			if !opts.AllowFailure {
				return nil, err
			}
			dropped := snap.restore(g.Root())
			log.Warnw("plugin failed, continuing", "plugin", label, "dropped", dropped, "error", err)
			summary.Failed = append(summary.Failed, label)
			continue
		}

		summary.Succeeded = append(summary.Succeeded, label)
		if res != nil && res.Strictness != nil {
			levels = append(levels, *res.Strictness)
		}
	}

	summary.Strictness = rbi.Weakest(levels...)
	log.Debugw("plugins finished",
		"succeeded", len(summary.Succeeded),
		"failed", len(summary.Failed),
		"strictness", summary.Strictness.String())
	return &summary, nil
}

// invoke runs a single plugin with g's current plugin set to label. A panic
// inside the plugin is returned as an error.
func invoke(ctx context.Context, g *rbi.Generator, inv Invocation, label string) (res *Result, err error) {
	g.SetCurrentPlugin(label)
	defer g.SetCurrentPlugin("")
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("panic: %v", r)
		}
	}()
	return inv.Plugin.Generate(ctx, g.Root(), inv.Config)
}

// snapshot holds the members of every namespace in a tree.
type snapshot map[*rbi.Namespace][]rbi.Entity

func takeSnapshot(root *rbi.Namespace) snapshot {
	s := make(snapshot)
	var walk func(ns *rbi.Namespace)
	walk = func(ns *rbi.Namespace) {
		children := ns.Children()
		s[ns] = children
		for _, c := range children {
			if child, ok := c.(*rbi.Namespace); ok {
				walk(child)
			}
		}
	}
	walk(root)
	return s
}

// restore gives every recorded namespace under root its recorded members
// back and returns how many members added since the snapshot were dropped.
// Namespaces created after the snapshot become unreachable. Comments added
// to existing entities are not undone.
func (s snapshot) restore(root *rbi.Namespace) int {
	dropped := 0
	var walk func(ns *rbi.Namespace)
	walk = func(ns *rbi.Namespace) {
		saved, ok := s[ns]
		if !ok {
			return
		}
		dropped += len(ns.Children()) - len(saved)
		ns.SetChildren(saved)
		for _, c := range saved {
			if child, ok := c.(*rbi.Namespace); ok {
				walk(child)
			}
		}
	}
	walk(root)
	return dropped
}
