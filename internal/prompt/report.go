// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package prompt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/albertocavalcante/rbigen/conflict"
)

var (
	mergedColor  = color.New(color.FgGreen)
	chosenColor  = color.New(color.FgYellow, color.Bold)
	droppedColor = color.New(color.FgRed, color.Bold)
)

// PrintReport writes one line per conflict in r followed by a totals line.
// Plain merges are only counted.
func PrintReport(w io.Writer, r *conflict.Report) {
	for _, ev := range r.Events {
		name := ev.Name
		if ev.Path != "" {
			name = ev.Path + "::" + ev.Name
		}
		switch ev.Resolution {
		case conflict.ResolutionChosen:
			fmt.Fprintf(w, "%s %s: kept %s (%s)\n",
				chosenColor.Sprint("chose"), name, ev.Kept, ev.Reason)
		case conflict.ResolutionDropped:
			fmt.Fprintf(w, "%s %s: %d candidates (%s)\n",
				droppedColor.Sprint("dropped"), name, len(ev.Candidates), ev.Reason)
		}
	}
	fmt.Fprintf(w, "%s %d, %s %d, %s %d\n",
		mergedColor.Sprint("merged"), r.Merged,
		chosenColor.Sprint("chosen"), r.Chosen,
		droppedColor.Sprint("dropped"), r.Dropped)
}
