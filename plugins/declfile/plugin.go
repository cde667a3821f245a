// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package declfile provides a plugin that builds declarations from YAML or
// JSON declaration files.
package declfile

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/rbigen/internal/model"
	"github.com/albertocavalcante/rbigen/plugin"
	"github.com/albertocavalcante/rbigen/rbi"
)

// Name is the registry name of the plugin.
const Name = "declfile"

// Plugin implements [plugin.Plugin] for declaration files.
type Plugin struct{}

// New creates a new declaration file plugin.
func New() *Plugin {
	return &Plugin{}
}

// Metadata returns information about this plugin.
func (p *Plugin) Metadata() plugin.Metadata {
	return plugin.Metadata{
		Name:        Name,
		Version:     "1.0.0",
		Description: "Build declarations from YAML or JSON declaration files",
		URL:         "https://github.com/albertocavalcante/rbigen",
	}
}

// Generate reads every file in the "path" option, in order, and adds its
// declarations under root. The "strictness" option overrides the level the
// files ask for.
func (p *Plugin) Generate(ctx context.Context, root *rbi.Namespace, cfg plugin.Config) (*plugin.Result, error) {
	paths := cfg.OptionList("path")
	if len(paths) == 0 {
		return nil, errors.WithHint(
			errors.New("no declaration files configured"),
			`set options = { path = "declarations.yaml" } on the plugin`)
	}

	var levels []rbi.Strictness
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		file, err := load(resolvePath(cfg.Dir, path))
		if err != nil {
			return nil, err
		}
		if file.Strictness != "" {
			s, err := rbi.ParseStrictness(file.Strictness)
			if err != nil {
				return nil, errors.Wrapf(err, "%s", path)
			}
			levels = append(levels, s)
		}
		if err := Build(root, file.Declarations); err != nil {
			return nil, errors.Wrapf(err, "%s", path)
		}
	}

	if v := cfg.Option("strictness", ""); v != "" {
		s, err := rbi.ParseStrictness(v)
		if err != nil {
			return nil, err
		}
		return plugin.Requiring(s), nil
	}
	if len(levels) > 0 {
		return plugin.Requiring(rbi.Weakest(levels...)), nil
	}
	return plugin.Done(), nil
}

func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}

func load(path string) (*model.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read declaration file")
	}
	return model.Parse(path, data)
}
