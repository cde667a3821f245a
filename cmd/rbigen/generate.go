// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/albertocavalcante/rbigen/conflict"
	"github.com/albertocavalcante/rbigen/internal/config"
	"github.com/albertocavalcante/rbigen/internal/prompt"
	"github.com/albertocavalcante/rbigen/plugin"
	"github.com/albertocavalcante/rbigen/plugins/declfile"
	"github.com/albertocavalcante/rbigen/rbi"
)

type generateFlags struct {
	configPath string
	decls      []string
	output     string
	onConflict string
	dryRun     bool
}

func newGenerateCmd(a *app) *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run plugins and write the RBI file",
		Long: `Run every plugin configured in .rbigen.toml (and any --decl files), merge
duplicate declarations, settle conflicts and write the RBI file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.generate(cmd.Context(), f)
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "path to "+config.FileName+" (default: searched upward)")
	cmd.Flags().StringSliceVarP(&f.decls, "decl", "d", nil, "declaration file to load with the declfile plugin (repeatable)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default: output_file from config, or stdout)")
	cmd.Flags().StringVar(&f.onConflict, "on-conflict", "", "conflict strategy (ask|first|drop|fail)")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "print to stdout without writing files")
	return cmd
}

func (a *app) generate(ctx context.Context, f generateFlags) error {
	cfg, err := a.loadConfig(f.configPath)
	if err != nil {
		return err
	}
	if f.onConflict != "" {
		cfg.OnConflict = f.onConflict
	}
	strategy, err := conflict.ParseStrategy(cfg.OnConflict)
	if err != nil {
		return err
	}

	invs, err := cfg.Invocations(plugin.Get)
	if err != nil {
		return err
	}
	if len(f.decls) > 0 {
		decl, err := plugin.Lookup(declfile.Name)
		if err != nil {
			return err
		}
		invs = append(invs, plugin.Invocation{
			Plugin: decl,
			Config: plugin.Config{
				Label:   "cli",
				Options: map[string]string{"path": strings.Join(f.decls, ",")},
			},
		})
	}
	if len(invs) == 0 {
		a.log.Warnw("no plugins configured", "config", cfg.Path)
	}

	g := rbi.NewGenerator(cfg.RenderOptions())
	summary, err := plugin.Run(ctx, g, invs, plugin.RunOptions{
		AllowFailure: cfg.AllowPluginFailure,
		Logger:       a.log,
	})
	if err != nil {
		return err
	}

	resolver := conflict.NewResolver(a.chooser(strategy), conflict.WithLogger(a.log))
	report, err := resolver.Resolve(ctx, g.Root())
	if err != nil {
		return err
	}
	if report.Conflicts() > 0 {
		prompt.PrintReport(a.stderr, report)
	}

	strictness := summary.Strictness
	if cfg.Strictness != "" {
		capped, err := rbi.ParseStrictness(cfg.Strictness)
		if err != nil {
			return err
		}
		strictness = rbi.Weakest(strictness, capped)
	}
	out := g.Generate(strictness)

	path := f.output
	if path == "" {
		path = cfg.OutputPath()
	}
	if f.dryRun || path == "" {
		_, err := fmt.Fprint(a.stdout, out)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return errors.Wrap(err, "write output")
	}
	a.log.Infow("wrote RBI", "path", path, "strictness", strictness.String())
	return nil
}

// loadConfig reads the explicit config path, or searches upward from the
// working directory, falling back to defaults.
func (a *app) loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg, ok, err := config.Discover(".")
	if err != nil {
		return nil, err
	}
	if !ok {
		a.log.Debugw("no project file found, using defaults", "file", config.FileName)
		return config.Default(), nil
	}
	a.log.Debugw("loaded project file", "path", cfg.Path)
	return cfg, nil
}

// chooser returns the Chooser for s. Asking needs a terminal on stdin;
// without one conflicts fail.
func (a *app) chooser(s conflict.Strategy) conflict.Chooser {
	if c, ok := s.Chooser(); ok {
		return c
	}
	if !isTerminal(a.stdin) {
		a.log.Debugw("stdin is not a terminal, failing on conflicts")
		return conflict.Fail
	}
	return prompt.NewChooser(prompt.WithOutput(a.stderr))
}
