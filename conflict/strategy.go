// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package conflict

import "github.com/cockroachdb/errors"

// Strategy names how conflicts are settled when no Chooser is supplied
// programmatically.
type Strategy string

const (
	// StrategyAsk prompts an operator.
	StrategyAsk Strategy = "ask"
	// StrategyFirst keeps the first contributed candidate.
	StrategyFirst Strategy = "first"
	// StrategyDrop removes every candidate.
	StrategyDrop Strategy = "drop"
	// StrategyFail aborts generation.
	StrategyFail Strategy = "fail"
)

// ParseStrategy parses a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(s); st {
	case StrategyAsk, StrategyFirst, StrategyDrop, StrategyFail:
		return st, nil
	}
	return "", errors.WithHint(
		errors.Newf("unknown conflict strategy %q", s),
		"valid strategies are ask, first, drop, fail")
}

// Chooser returns the built-in Chooser for s. StrategyAsk has none: the
// caller supplies an interactive one.
func (s Strategy) Chooser() (Chooser, bool) {
	switch s {
	case StrategyFirst:
		return KeepFirst, true
	case StrategyDrop:
		return DropAll, true
	case StrategyFail:
		return Fail, true
	}
	return nil, false
}
