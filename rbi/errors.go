// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rbi

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrIncompatibleMerge matches any [IncompatibleMergeError] via errors.Is.
var ErrIncompatibleMerge = errors.New("incompatible merge")

// IncompatibleMergeError is returned by MergeIntoSelf when the entities
// passed in are not mergeable with the receiver.
type IncompatibleMergeError struct {
	// Target describes the receiver of the merge.
	Target string
	// Others describes the rejected entities.
	Others []string
}

// Error returns a human-readable error message.
func (e *IncompatibleMergeError) Error() string {
	msg := "incompatible merge into " + e.Target
	if len(e.Others) > 0 {
		msg += fmt.Sprintf(": [%s]", strings.Join(e.Others, "; "))
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *IncompatibleMergeError) Is(target error) bool {
	return target == ErrIncompatibleMerge
}

func newIncompatibleMergeError(target Entity, others []Entity) error {
	e := &IncompatibleMergeError{Target: target.Describe()}
	for _, o := range others {
		e.Others = append(e.Others, o.Describe())
	}
	return errors.WithStack(e)
}
