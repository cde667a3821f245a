// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rubyname

import "testing"

func TestIsConstant(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{input: "Foo", expected: true},
		{input: "FOO_BAR", expected: true},
		{input: "V2", expected: true},
		{input: "foo", expected: false},
		{input: "", expected: false},
		{input: "Foo::Bar", expected: false},
		{input: "Foo-Bar", expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := IsConstant(tc.input); got != tc.expected {
				t.Errorf("IsConstant(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestIsConstantPath(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{input: "Foo", expected: true},
		{input: "Foo::Bar", expected: true},
		{input: "::Foo::Bar", expected: true},
		{input: "T::Sig", expected: true},
		{input: "Foo::", expected: false},
		{input: "::", expected: false},
		{input: "Foo::bar", expected: false},
		{input: "", expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := IsConstantPath(tc.input); got != tc.expected {
				t.Errorf("IsConstantPath(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestIsMethod(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "simple", input: "foo", expected: true},
		{name: "predicate", input: "empty?", expected: true},
		{name: "bang", input: "save!", expected: true},
		{name: "setter", input: "name=", expected: true},
		{name: "underscore", input: "_private", expected: true},
		{name: "capitalized", input: "Integer", expected: true},
		{name: "spaceship", input: "<=>", expected: true},
		{name: "index set", input: "[]=", expected: true},
		{name: "empty", input: "", expected: false},
		{name: "only suffix", input: "?", expected: false},
		{name: "space", input: "foo bar", expected: false},
		{name: "leading digit", input: "1foo", expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsMethod(tc.input); got != tc.expected {
				t.Errorf("IsMethod(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{input: "count", expected: true},
		{input: "_", expected: true},
		{input: "a1", expected: true},
		{input: "Count", expected: false},
		{input: "", expected: false},
		{input: "a-b", expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := IsIdentifier(tc.input); got != tc.expected {
				t.Errorf("IsIdentifier(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestIsParameter(t *testing.T) {
	tests := []struct {
		input    string
		bare     string
		expected bool
		dflt     bool
	}{
		{input: "x", bare: "x", expected: true, dflt: true},
		{input: "key:", bare: "key", expected: true, dflt: true},
		{input: "*rest", bare: "rest", expected: true},
		{input: "**opts", bare: "opts", expected: true},
		{input: "&blk", bare: "blk", expected: true},
		{input: "*", bare: "", expected: false},
		{input: "**", bare: "", expected: false},
		{input: "&", bare: "", expected: false},
		{input: "foo bar", bare: "foo bar", expected: false, dflt: true},
		{input: "*rest:", bare: "rest:", expected: false},
		{input: "Name", bare: "Name", expected: false, dflt: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := IsParameter(tc.input); got != tc.expected {
				t.Errorf("IsParameter(%q) = %v, want %v", tc.input, got, tc.expected)
			}
			if got := ParameterName(tc.input); got != tc.bare {
				t.Errorf("ParameterName(%q) = %q, want %q", tc.input, got, tc.bare)
			}
			if got := TakesDefault(tc.input); got != tc.dflt {
				t.Errorf("TakesDefault(%q) = %v, want %v", tc.input, got, tc.dflt)
			}
		})
	}
}
