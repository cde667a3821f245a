// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package conflict

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/rbigen/rbi"
)

// Reason explains why a group of declarations could not be merged.
type Reason int

const (
	// ReasonNone is used for groups that merged.
	ReasonNone Reason = iota
	// ReasonDifferentKinds means the group mixes declaration kinds, e.g. a
	// method and a constant.
	ReasonDifferentKinds
	// ReasonNotMergeable means the first member rejected the others.
	ReasonNotMergeable
)

// String returns a human-readable name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonDifferentKinds:
		return "different-kinds"
	case ReasonNotMergeable:
		return "not-mergeable"
	default:
		return "unknown"
	}
}

// Message returns the sentence shown to an operator.
func (r Reason) Message() string {
	switch r {
	case ReasonDifferentKinds:
		return "Different kinds of definition for the same name"
	case ReasonNotMergeable:
		return "Non-mergeable definitions with the same name"
	default:
		return ""
	}
}

// Conflict is a group of same-identity declarations that could not be
// merged.
type Conflict struct {
	// Path is the enclosing namespace ("" for the top level).
	Path string
	// Name is the shared name.
	Name string
	// Reason explains why the group did not merge.
	Reason Reason
	// Candidates are the declarations in contribution order.
	Candidates []rbi.Entity
}

// QualifiedName returns Path::Name, or Name at the top level.
func (c Conflict) QualifiedName() string {
	if c.Path == "" {
		return c.Name
	}
	return c.Path + "::" + c.Name
}

// KeepNone is returned by a Chooser to drop every candidate.
const KeepNone = -1

// Chooser decides which candidate of a conflict survives.
type Chooser interface {
	// Choose returns the index of the candidate to keep, or KeepNone.
	Choose(ctx context.Context, c Conflict) (int, error)
}

// ChooserFunc adapts a function to a Chooser.
type ChooserFunc func(ctx context.Context, c Conflict) (int, error)

// Choose calls f.
func (f ChooserFunc) Choose(ctx context.Context, c Conflict) (int, error) {
	return f(ctx, c)
}

var (
	// KeepFirst keeps the first contributed candidate.
	KeepFirst Chooser = ChooserFunc(func(context.Context, Conflict) (int, error) {
		return 0, nil
	})

	// DropAll removes every candidate.
	DropAll Chooser = ChooserFunc(func(context.Context, Conflict) (int, error) {
		return KeepNone, nil
	})

	// Fail aborts resolution with an [*UnresolvedConflictError].
	Fail Chooser = ChooserFunc(func(_ context.Context, c Conflict) (int, error) {
		return 0, NewUnresolvedConflictError(c)
	})
)

// ErrUnresolvedConflict matches any [UnresolvedConflictError] via errors.Is.
var ErrUnresolvedConflict = errors.New("unresolved conflict")

// UnresolvedConflictError reports a conflict no candidate was chosen for.
type UnresolvedConflictError struct {
	// QualifiedName is the conflicting declaration's full name.
	QualifiedName string
	// Reason explains why the group did not merge.
	Reason Reason
	// Candidates describes each candidate and its provenance.
	Candidates []string
}

// NewUnresolvedConflictError builds an error describing c.
func NewUnresolvedConflictError(c Conflict) error {
	e := &UnresolvedConflictError{QualifiedName: c.QualifiedName(), Reason: c.Reason}
	for _, cand := range c.Candidates {
		e.Candidates = append(e.Candidates, describeWithProvenance(cand))
	}
	return errors.WithStack(e)
}

// Error returns a human-readable error message.
func (e *UnresolvedConflictError) Error() string {
	msg := fmt.Sprintf("unresolved conflict for %s (%s)", e.QualifiedName, e.Reason)
	if len(e.Candidates) > 0 {
		msg += ": " + strings.Join(e.Candidates, "; ")
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UnresolvedConflictError) Is(target error) bool {
	return target == ErrUnresolvedConflict
}

// describeWithProvenance returns the entity's label followed by the plugin
// that produced it, if any.
func describeWithProvenance(e rbi.Entity) string {
	if p := e.ProducedBy(); p != "" {
		return e.Describe() + " (from " + p + ")"
	}
	return e.Describe()
}
