// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package conflict

// Resolution is the outcome recorded for a group of duplicates.
type Resolution string

const (
	// ResolutionMerged means the group was folded into its first member.
	ResolutionMerged Resolution = "merged"
	// ResolutionChosen means a Chooser kept one candidate.
	ResolutionChosen Resolution = "chosen"
	// ResolutionDropped means a Chooser dropped every candidate.
	ResolutionDropped Resolution = "dropped"
)

// Candidate is one member of a duplicate group as it was before resolution.
type Candidate struct {
	Description string
	ProducedBy  string
}

// Event records how one duplicate group was resolved.
type Event struct {
	Path       string
	Name       string
	Reason     Reason
	Resolution Resolution
	// Kept describes the surviving declaration, "" when dropped.
	Kept       string
	Candidates []Candidate
}

// Report summarizes a resolution pass.
type Report struct {
	Merged  int
	Chosen  int
	Dropped int
	Events  []Event
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{Events: make([]Event, 0)}
}

// AddEvent adds an event and updates counters.
func (r *Report) AddEvent(event Event) {
	r.Events = append(r.Events, event)

	switch event.Resolution {
	case ResolutionMerged:
		r.Merged++
	case ResolutionChosen:
		r.Chosen++
	case ResolutionDropped:
		r.Dropped++
	}
}

// Conflicts returns the number of groups that needed a Chooser.
func (r *Report) Conflicts() int {
	return r.Chosen + r.Dropped
}

// ByResolution returns events with a specific resolution.
func (r *Report) ByResolution(resolution Resolution) []Event {
	var filtered []Event
	for _, event := range r.Events {
		if event.Resolution == resolution {
			filtered = append(filtered, event)
		}
	}
	return filtered
}
