// SPDX-License-Identifier: MIT

// Package testutil holds the txtar golden-file helpers shared by the
// declfile golden tests and the end-to-end suite.
//
// A golden archive looks like:
//
//	Two modules are merged.
//	Flags: sort_namespaces, break_params=2
//
//	-- input.yaml --
//	declarations: ...
//	-- want/out.rbi --
//	# typed: strong
package testutil

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"github.com/albertocavalcante/rbigen/rbi"
)

const (
	inputFile  = "input.yaml"
	wantPrefix = "want/"
)

// Case is one golden archive.
type Case struct {
	Name string

	// Path is the archive file the case was loaded from, if any.
	Path string

	Description string

	// Flags holds the "Flags:" line of the description. Bare flags map to "".
	Flags map[string]string

	// Input is the declaration file fed to the generator.
	Input []byte

	// Want maps output names (e.g. "out.rbi") to expected content.
	Want map[string][]byte

	archive *txtar.Archive
}

// ParseCase parses ar into a Case. The archive must hold input.yaml and at
// least one want/ file; anything else is rejected.
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Flags:       parseFlags(string(ar.Comment)),
		Want:        make(map[string][]byte),
		archive:     ar,
	}

	for _, f := range ar.Files {
		if rel, ok := strings.CutPrefix(f.Name, wantPrefix); ok {
			c.Want[rel] = f.Data
			continue
		}
		if f.Name != inputFile {
			return nil, errors.Newf("unexpected file %q (want %s or %s*)", f.Name, inputFile, wantPrefix)
		}
		c.Input = f.Data
	}

	if c.Input == nil {
		return nil, errors.Newf("missing %s", inputFile)
	}
	if len(c.Want) == 0 {
		return nil, errors.Newf("missing %s* files", wantPrefix)
	}
	return c, nil
}

// parseFlags reads the first "Flags: a, b=1" line of desc.
func parseFlags(desc string) map[string]string {
	flags := make(map[string]string)
	for _, line := range strings.Split(desc, "\n") {
		list, ok := strings.CutPrefix(strings.TrimSpace(line), "Flags:")
		if !ok {
			continue
		}
		for _, item := range strings.Split(list, ",") {
			key, value, _ := strings.Cut(item, "=")
			if key = strings.TrimSpace(key); key != "" {
				flags[key] = strings.TrimSpace(value)
			}
		}
		break
	}
	return flags
}

// Flag returns the value of a flag and whether it was set.
func (c *Case) Flag(name string) (string, bool) {
	v, ok := c.Flags[name]
	return v, ok
}

// Options returns the default render options adjusted by the case flags:
// sort_namespaces, break_params=N and tab_size=N.
func (c *Case) Options() (rbi.Options, error) {
	opts := rbi.DefaultOptions()
	for key, value := range c.Flags {
		switch key {
		case "sort_namespaces":
			opts.SortNamespaces = true
		case "break_params", "tab_size":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return opts, errors.Newf("flag %s: want a positive integer, got %q", key, value)
			}
			if key == "break_params" {
				opts.BreakParams = n
			} else {
				opts.TabSize = n
			}
		default:
			return opts, errors.Newf("unknown flag %q", key)
		}
	}
	return opts, nil
}

// Check compares got against the case's want files.
func (c *Case) Check(t *testing.T, got map[string][]byte) {
	t.Helper()
	CompareFiles(t, c.Want, got)
}

// Update rewrites the case's archive on disk with got as the want files.
func (c *Case) Update(got map[string][]byte) error {
	if c.Path == "" {
		return errors.Newf("case %s was not loaded from a file", c.Name)
	}
	return WriteArchive(c.Path, c.archive, got)
}

// CompareFiles reports every missing, unexpected or differing file. Content
// is compared after Normalize.
func CompareFiles(t *testing.T, want, got map[string][]byte) {
	t.Helper()

	for _, name := range sortedKeys(want) {
		g, ok := got[name]
		if !ok {
			t.Errorf("missing output: %q", name)
			continue
		}
		if diff := cmp.Diff(Normalize(want[name]), Normalize(g)); diff != "" {
			t.Errorf("%q mismatch (-want +got):\n%s", name, diff)
		}
	}
	for _, name := range sortedKeys(got) {
		if _, ok := want[name]; !ok {
			t.Errorf("unexpected output: %q", name)
		}
	}
}

// Normalize drops trailing blanks (and carriage returns) from every line and
// trailing newlines from the whole.
func Normalize(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// UpdateArchive returns a copy of ar whose want/ files are replaced by got.
// Other files keep their order; want files follow, sorted by name.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	out := &txtar.Archive{Comment: ar.Comment}
	for _, f := range ar.Files {
		if !strings.HasPrefix(f.Name, wantPrefix) {
			out.Files = append(out.Files, f)
		}
	}
	for _, name := range sortedKeys(got) {
		data := got[name]
		if len(data) > 0 && data[len(data)-1] != '\n' {
			data = append(slices.Clip(data), '\n')
		}
		out.Files = append(out.Files, txtar.File{Name: wantPrefix + name, Data: data})
	}
	return out
}

// WriteArchive writes ar to path with its want/ files replaced by got.
func WriteArchive(path string, ar *txtar.Archive, got map[string][]byte) error {
	if err := os.WriteFile(path, txtar.Format(UpdateArchive(ar, got)), 0o644); err != nil {
		return errors.Wrapf(err, "update %s", path)
	}
	return nil
}

// LoadCases parses every *.txtar in dir, sorted by name.
func LoadCases(t *testing.T, dir string) []*Case {
	t.Helper()

	files, err := filepath.Glob(filepath.Join(dir, "*.txtar"))
	if err != nil {
		t.Fatalf("glob %s: %v", dir, err)
	}
	if len(files) == 0 {
		t.Fatalf("no txtar files in %s", dir)
	}
	slices.Sort(files)

	cases := make([]*Case, 0, len(files))
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %s: %v", file, err)
		}
		c, err := ParseCase(strings.TrimSuffix(filepath.Base(file), ".txtar"), ar)
		if err != nil {
			t.Fatalf("%s: %v", file, err)
		}
		c.Path = file
		cases = append(cases, c)
	}
	return cases
}

func sortedKeys(m map[string][]byte) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
