// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rbi

import "github.com/cockroachdb/errors"

// Strictness is a Sorbet "# typed:" level. Levels are ordered from weakest to
// strongest.
type Strictness int

const (
	StrictnessIgnore Strictness = iota
	StrictnessFalse
	StrictnessTrue
	StrictnessStrict
	StrictnessStrong
)

var strictnessNames = [...]string{
	StrictnessIgnore: "ignore",
	StrictnessFalse:  "false",
	StrictnessTrue:   "true",
	StrictnessStrict: "strict",
	StrictnessStrong: "strong",
}

// String returns the sigil value.
func (s Strictness) String() string {
	if s < 0 || int(s) >= len(strictnessNames) {
		return "unknown"
	}
	return strictnessNames[s]
}

// ParseStrictness parses a sigil value such as "strict".
func ParseStrictness(s string) (Strictness, error) {
	for i, name := range strictnessNames {
		if name == s {
			return Strictness(i), nil
		}
	}
	return 0, errors.WithHint(
		errors.Newf("unknown strictness %q", s),
		"valid levels are ignore, false, true, strict, strong")
}

// Weakest returns the weakest of levels, or StrictnessStrong when levels is
// empty.
func Weakest(levels ...Strictness) Strictness {
	w := StrictnessStrong
	for _, l := range levels {
		if l < w {
			w = l
		}
	}
	return w
}
