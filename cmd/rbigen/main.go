// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command rbigen generates Sorbet RBI files from plugin-contributed
// declarations.
//
// Usage:
//
//	rbigen generate [flags]
//	rbigen plugins
//	rbigen version
//
// Generate flags:
//
//	-c, --config       Path to .rbigen.toml (default: searched upward)
//	-d, --decl         Declaration file to load with the declfile plugin
//	-o, --output       Output file (default: output_file from config, or stdout)
//	--on-conflict      ask, first, drop or fail
//	--dry-run          Print to stdout without writing files
//	--log-level        debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// app carries the process environment shared by all commands.
type app struct {
	stdin  *os.File
	stdout io.Writer
	stderr io.Writer
	log    *zap.SugaredLogger

	logLevel string
}

func main() {
	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr, log: zap.NewNop().Sugar()}
	if err := newRootCmd(a).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "rbigen",
		Short:         "Sorbet RBI generator",
		Long:          "rbigen runs declaration plugins, reconciles duplicate definitions and writes a Sorbet RBI file.",
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := setupLogger(a.logLevel)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug|info|warn|error)")

	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newPluginsCmd(a))
	root.AddCommand(newVersionCmd(a))
	return root
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(a.stdout, "rbigen %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
