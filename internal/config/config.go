// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package config loads the .rbigen.toml project file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/rbigen/conflict"
	"github.com/albertocavalcante/rbigen/plugin"
	"github.com/albertocavalcante/rbigen/rbi"
)

// FileName is the project file searched for by [Discover].
const FileName = ".rbigen.toml"

// Config is a decoded project file.
type Config struct {
	// OutputFile is where the RBI is written, relative to the project file.
	// Empty means stdout.
	OutputFile string `toml:"output_file"`

	// Strictness caps the sigil level; plugins may only lower it.
	Strictness string `toml:"strictness"`

	TabSize        int  `toml:"tab_size"`
	BreakParams    int  `toml:"break_params"`
	SortNamespaces bool `toml:"sort_namespaces"`

	AllowPluginFailure bool `toml:"allow_plugin_failure"`

	// OnConflict is a conflict strategy name: ask, first, drop or fail.
	OnConflict string `toml:"on_conflict"`

	Plugins []PluginConfig `toml:"plugins"`

	// Path is the file the config was loaded from; empty for [Default].
	Path string `toml:"-"`
}

// PluginConfig is one [[plugins]] table.
type PluginConfig struct {
	Name  string `toml:"name"`
	Label string `toml:"label"`

	// Options are passed to the plugin as strings. Arrays are joined with
	// commas.
	Options map[string]any `toml:"options"`
}

// Default returns the configuration used when no project file exists.
func Default() *Config {
	opts := rbi.DefaultOptions()
	return &Config{
		TabSize:     opts.TabSize,
		BreakParams: opts.BreakParams,
		OnConflict:  string(conflict.StrategyAsk),
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, errors.Wrap(err, "resolve start directory")
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, errors.Wrapf(err, "stat %q", candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads the project file above startDir. It reports false
// with a nil Config when there is none.
func Discover(startDir string) (*Config, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

// Load decodes and validates the project file at path. Unset values take
// their defaults; unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: parse TOML", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Newf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return cfg, nil
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	if c.TabSize < 1 {
		return errors.Newf("tab_size must be positive, got %d", c.TabSize)
	}
	if c.BreakParams < 1 {
		return errors.Newf("break_params must be positive, got %d", c.BreakParams)
	}
	if c.Strictness != "" {
		if _, err := rbi.ParseStrictness(c.Strictness); err != nil {
			return err
		}
	}
	if _, err := conflict.ParseStrategy(c.OnConflict); err != nil {
		return err
	}

	seen := make(map[string]bool, len(c.Plugins))
	for i, p := range c.Plugins {
		if p.Name == "" {
			return errors.Newf("plugins[%d]: missing name", i)
		}
		label := p.provenance()
		if seen[label] {
			return errors.WithHint(
				errors.Newf("plugins[%d]: duplicate label %q", i, label),
				"give each use of the same plugin a distinct label")
		}
		seen[label] = true
	}
	return nil
}

// Dir returns the directory holding the project file, or "" for [Default].
func (c *Config) Dir() string {
	if c.Path == "" {
		return ""
	}
	return filepath.Dir(c.Path)
}

// RenderOptions returns the formatting options.
func (c *Config) RenderOptions() rbi.Options {
	return rbi.Options{
		TabSize:        c.TabSize,
		BreakParams:    c.BreakParams,
		SortNamespaces: c.SortNamespaces,
	}
}

// OutputPath returns OutputFile resolved against Dir, or "" for stdout.
func (c *Config) OutputPath() string {
	if c.OutputFile == "" || filepath.IsAbs(c.OutputFile) {
		return c.OutputFile
	}
	return filepath.Join(c.Dir(), c.OutputFile)
}

// Invocations resolves every [[plugins]] entry through lookup, in order.
func (c *Config) Invocations(lookup func(name string) (plugin.Plugin, bool)) ([]plugin.Invocation, error) {
	invs := make([]plugin.Invocation, 0, len(c.Plugins))
	for _, p := range c.Plugins {
		impl, ok := lookup(p.Name)
		if !ok {
			return nil, errors.WithHint(
				errors.Newf("unknown plugin %q", p.Name),
				"run `rbigen plugins` to list available plugins")
		}
		invs = append(invs, plugin.Invocation{
			Plugin: impl,
			Config: plugin.Config{
				Label:   p.Label,
				Dir:     c.Dir(),
				Options: p.stringOptions(),
			},
		})
	}
	return invs, nil
}

func (p PluginConfig) provenance() string {
	if p.Label != "" {
		return p.Label
	}
	return p.Name
}

func (p PluginConfig) stringOptions() map[string]string {
	out := make(map[string]string, len(p.Options))
	for k, v := range p.Options {
		switch v := v.(type) {
		case []any:
			parts := make([]string, len(v))
			for i, item := range v {
				parts[i] = fmt.Sprint(item)
			}
			out[k] = strings.Join(parts, ",")
		default:
			out[k] = fmt.Sprint(v)
		}
	}
	return out
}
