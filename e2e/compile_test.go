// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build e2e

// Package e2e provides end-to-end syntax verification tests.
// These tests verify that generated RBI files are valid Ruby.
//
// Run with: go test -tags e2e ./e2e/... -v
package e2e

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/tools/txtar"
)

// Tool installation instructions
var installInstructions = map[string]string{
	"ruby": "Ruby is required. Install from https://www.ruby-lang.org/en/downloads/",
}

// requireTool fails the test if the tool is not available.
func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		instruction := installInstructions[name]
		if instruction == "" {
			instruction = fmt.Sprintf("Install %s and ensure it's in PATH", name)
		}
		t.Fatalf("%s not found in PATH.\n%s", name, instruction)
	}
}

// TestRBIOutputIsValidRuby runs `ruby -c` over every expected RBI output in
// testdata.
func TestRBIOutputIsValidRuby(t *testing.T) {
	requireTool(t, "ruby")

	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}

	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %s: %v", file, err)
		}
		for _, f := range ar.Files {
			if !strings.HasPrefix(f.Name, "want/") {
				continue
			}
			name := strings.TrimSuffix(filepath.Base(file), ".txtar") + "/" + f.Name
			t.Run(name, func(t *testing.T) {
				checkRubySyntax(t, f.Data)
			})
		}
	}
}

func checkRubySyntax(t *testing.T, src []byte) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.rbi")
	if err := os.WriteFile(path, src, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ruby", "-c", path)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("ruby -c failed: %v\n%s\nsource:\n%s", err, out.String(), src)
	}
}
