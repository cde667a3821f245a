// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package plugin

import "strings"

// Config contains the configuration of one plugin invocation.
type Config struct {
	// Label distinguishes several invocations of the same plugin. It is
	// recorded as the provenance of every entity the invocation creates.
	Label string

	// Dir is the directory relative paths in Options are resolved against.
	Dir string

	// Options contains plugin-specific options.
	Options map[string]string
}

// Option returns a plugin-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionList returns a comma-separated option as a list with empty entries
// removed.
func (c Config) OptionList(key string) []string {
	var list []string
	for _, v := range strings.Split(c.Options[key], ",") {
		if v = strings.TrimSpace(v); v != "" {
			list = append(list, v)
		}
	}
	return list
}
