// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/albertocavalcante/rbigen/plugin"
	"github.com/albertocavalcante/rbigen/plugins/declfile"
)

func init() {
	plugin.Register(declfile.New())
}

func newPluginsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List available plugins",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			data := pterm.TableData{{"NAME", "VERSION", "DESCRIPTION"}}
			for _, p := range plugin.All() {
				md := p.Metadata()
				data = append(data, []string{md.Name, md.Version, md.Description})
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, table)
			return nil
		},
	}
}
