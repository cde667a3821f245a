// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package conflict

import (
	"context"
	"reflect"
	"strconv"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/albertocavalcante/rbigen/rbi"
)

// Resolver merges or arbitrates duplicate declarations in a namespace tree.
type Resolver struct {
	chooser Chooser
	log     *zap.SugaredLogger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used to record each decision.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// NewResolver creates a Resolver that hands conflicts to chooser.
func NewResolver(chooser Chooser, opts ...Option) *Resolver {
	r := &Resolver{chooser: chooser, log: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve reconciles every namespace under root, root included. It stops at
// the first Chooser error.
func (r *Resolver) Resolve(ctx context.Context, root *rbi.Namespace) (*Report, error) {
	report := NewReport()
	if err := r.resolveNamespace(ctx, root, report); err != nil {
		return report, err
	}
	r.log.Debugw("conflict resolution finished",
		"merged", report.Merged,
		"chosen", report.Chosen,
		"dropped", report.Dropped)
	return report, nil
}

func (r *Resolver) resolveNamespace(ctx context.Context, ns *rbi.Namespace, report *Report) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "conflict resolution interrupted")
	}

	children := ns.Children()
	groups := groupMembers(children)

	// Each group's survivor takes the position of the group's first member.
	survivors := make(map[rbi.Entity]rbi.Entity, len(groups))
	for _, members := range groups {
		if len(members) == 1 {
			survivors[members[0]] = members[0]
			continue
		}
		kept, err := r.resolveGroup(ctx, ns, members, report)
		if err != nil {
			return err
		}
		survivors[members[0]] = kept
	}

	resolved := make([]rbi.Entity, 0, len(survivors))
	for _, c := range children {
		if kept, ok := survivors[c]; ok && kept != nil {
			resolved = append(resolved, kept)
		}
	}
	ns.SetChildren(resolved)

	for _, c := range resolved {
		if child, ok := c.(*rbi.Namespace); ok {
			if err := r.resolveNamespace(ctx, child, report); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveGroup returns the entity that replaces members, or nil when all of
// them are dropped.
func (r *Resolver) resolveGroup(ctx context.Context, ns *rbi.Namespace, members []rbi.Entity, report *Report) (rbi.Entity, error) {
	event := Event{
		Path:       ns.Path(),
		Name:       members[0].Name(),
		Candidates: candidates(members),
	}

	first, rest := members[0], members[1:]
	reason := ReasonNotMergeable
	if !sameKind(members) {
		reason = ReasonDifferentKinds
	} else if first.IsMergeableWith(rest) {
		if err := first.MergeIntoSelf(rest); err != nil {
			return nil, errors.Wrapf(err, "merge %s", first.Describe())
		}
		event.Resolution = ResolutionMerged
		event.Kept = first.Describe()
		report.AddEvent(event)
		r.log.Debugw("merged duplicate declarations",
			"path", event.Path, "name", event.Name, "count", len(members))
		return first, nil
	}

	event.Reason = reason
	c := Conflict{Path: event.Path, Name: event.Name, Reason: reason, Candidates: members}
	idx, err := r.chooser.Choose(ctx, c)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", c.QualifiedName())
	}
	if idx < KeepNone || idx >= len(members) {
		return nil, errors.Newf("chooser returned index %d for %d candidates of %s",
			idx, len(members), c.QualifiedName())
	}

	if idx == KeepNone {
		event.Resolution = ResolutionDropped
		report.AddEvent(event)
		r.log.Infow("dropped conflicting declarations",
			"name", c.QualifiedName(), "reason", reason.String(), "count", len(members))
		return nil, nil
	}

	kept := members[idx]
	event.Resolution = ResolutionChosen
	event.Kept = kept.Describe()
	report.AddEvent(event)
	r.log.Infow("kept one of conflicting declarations",
		"name", c.QualifiedName(), "reason", reason.String(),
		"kept", event.Kept, "from", kept.ProducedBy())
	return kept, nil
}

// groupMembers splits children into groups that share an identity key, in
// order of first occurrence. An accessor owns both the reader and the writer
// key, so it joins readers, writers and "name=" methods into one group.
func groupMembers(children []rbi.Entity) [][]rbi.Entity {
	// parent links each child to an earlier member of its group; a group's
	// root is its first member.
	parent := make([]int, len(children))
	for i := range parent {
		parent[i] = i
	}
	find := func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}

	firstWithKey := make(map[string]int)
	for i, c := range children {
		for _, key := range identityKeys(c) {
			j, ok := firstWithKey[key]
			if !ok {
				firstWithKey[key] = i
				continue
			}
			if a, b := find(i), find(j); a != b {
				parent[max(a, b)] = min(a, b)
			}
		}
	}

	groups := newOrderedMap[[]rbi.Entity]()
	for i, c := range children {
		key := strconv.Itoa(find(i))
		groups.set(key, append(groups.get(key), c))
	}
	out := make([][]rbi.Entity, 0, len(groups.keys()))
	for _, key := range groups.keys() {
		out = append(out, groups.get(key))
	}
	return out
}

// identityKeys returns the keys under which e declares something. Singleton
// members, mixins, writers and verbatim code live in their own key spaces.
func identityKeys(e rbi.Entity) []string {
	switch e := e.(type) {
	case *rbi.Include:
		return []string{"include " + e.Name()}
	case *rbi.Extend:
		return []string{"extend " + e.Name()}
	case *rbi.Arbitrary:
		return []string{"arbitrary " + e.Name()}
	case *rbi.Method:
		if e.IsClassMethod() {
			return []string{"self." + e.Name()}
		}
	case *rbi.Attribute:
		prefix := ""
		if e.IsClassAttribute() {
			prefix = "self."
		}
		switch e.Kind() {
		case rbi.AttrReader:
			return []string{prefix + e.Name()}
		case rbi.AttrWriter:
			return []string{prefix + e.Name() + "="}
		default:
			return []string{prefix + e.Name(), prefix + e.Name() + "="}
		}
	case *rbi.Constant:
		if e.IsClassConstant() {
			return []string{"self." + e.Name()}
		}
	}
	return []string{e.Name()}
}

func sameKind(members []rbi.Entity) bool {
	kind := kindOf(members[0])
	for _, m := range members[1:] {
		if kindOf(m) != kind {
			return false
		}
	}
	return true
}

// kindOf names the declaration kind of e. Modules and classes share a Go
// type but are different kinds.
func kindOf(e rbi.Entity) string {
	if ns, ok := e.(*rbi.Namespace); ok {
		return ns.Kind().String()
	}
	return reflect.TypeOf(e).String()
}

func candidates(members []rbi.Entity) []Candidate {
	out := make([]Candidate, len(members))
	for i, m := range members {
		out[i] = Candidate{Description: m.Describe(), ProducedBy: m.ProducedBy()}
	}
	return out
}
