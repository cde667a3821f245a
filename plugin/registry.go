// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package plugin

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

// ErrUnknownPlugin is returned by Lookup for names nothing registered.
var ErrUnknownPlugin = errors.New("unknown plugin")

var (
	mu       sync.RWMutex
	registry = make(map[string]Plugin)
)

// Register adds a plugin to the registry. It panics when the name is
// already taken or is not a valid plugin name (lowercase letters, digits,
// '-' and '_', starting with a letter), since both are programming errors
// in an init function.
func Register(p Plugin) {
	name := p.Metadata().Name
	if !validName(name) {
		panic(fmt.Sprintf("invalid plugin name %q", name))
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("plugin %q already registered", name))
	}
	registry[name] = p
}

// Get returns a plugin by name.
func Get(name string) (Plugin, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[name]
	return p, ok
}

// Lookup is Get with an error naming the registered plugins.
func Lookup(name string) (Plugin, error) {
	if p, ok := Get(name); ok {
		return p, nil
	}
	known := "none"
	if names := List(); len(names) > 0 {
		known = strings.Join(names, ", ")
	}
	return nil, errors.WithHintf(
		errors.Wrapf(ErrUnknownPlugin, "%q", name),
		"registered plugins: %s", known,
	)
}

// List returns all registered plugin names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(registry))
}

// All returns all registered plugins, sorted by name.
func All() []Plugin {
	mu.RLock()
	defer mu.RUnlock()
	plugins := make([]Plugin, 0, len(registry))
	for _, name := range slices.Sorted(maps.Keys(registry)) {
		plugins = append(plugins, registry[name])
	}
	return plugins
}

// Reset clears the registry. For testing only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Plugin)
}

func validName(name string) bool {
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
