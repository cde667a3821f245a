// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package plugin defines the interface for RBI contributors and runs them
// against a generator.
package plugin

import (
	"context"

	"github.com/albertocavalcante/rbigen/rbi"
)

// Plugin is the interface that all declaration contributors must implement.
type Plugin interface {
	// Metadata returns information about this plugin.
	Metadata() Metadata

	// Generate adds declarations under root.
	Generate(ctx context.Context, root *rbi.Namespace, cfg Config) (*Result, error)
}

// Metadata describes a plugin.
type Metadata struct {
	// Name is the short identifier (e.g., "declfile").
	Name string

	// Version is the plugin version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// URL is the homepage/documentation URL (optional).
	URL string
}
