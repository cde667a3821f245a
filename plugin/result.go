// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package plugin

import "github.com/albertocavalcante/rbigen/rbi"

// Result is what a plugin reports besides the entities it created.
type Result struct {
	// Strictness is the "# typed:" level the plugin's declarations need.
	// Nil means no preference.
	Strictness *rbi.Strictness
}

// Done returns a Result with no strictness preference.
func Done() *Result {
	return &Result{}
}

// Requiring returns a Result asking for strictness s.
func Requiring(s rbi.Strictness) *Result {
	return &Result{Strictness: &s}
}
