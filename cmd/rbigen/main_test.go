// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/albertocavalcante/rbigen/conflict"
)

func init() {
	color.NoColor = true
}

const modelsYAML = `strictness: strict
declarations:
  - kind: module
    name: Shop
    children:
      - kind: constant
        name: LIMIT
        value: "10"
`

const extrasYAML = `strictness: "true"
declarations:
  - kind: module
    name: Shop
    children:
      - kind: constant
        name: LIMIT
        value: "20"
      - kind: method
        name: open?
        returns: T::Boolean
`

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	a := &app{stdout: &out, stderr: &errOut, log: zap.NewNop().Sugar()}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func projectDir(t *testing.T, onConflict string) string {
	t.Helper()
	dir := t.TempDir()
	project := `output_file = "sorbet/rbi/shop.rbi"
on_conflict = "` + onConflict + `"

[[plugins]]
name = "declfile"
label = "models"
options = { path = "decls/models.yaml" }

[[plugins]]
name = "declfile"
label = "extras"
options = { path = ["decls/extras.yaml"] }
`
	writeFiles(t, dir, map[string]string{
		"decls/models.yaml": modelsYAML,
		"decls/extras.yaml": extrasYAML,
		".rbigen.toml":      project,
	})
	return dir
}

const wantShop = `# typed: true

module Shop
  LIMIT = 10

  sig { returns(T::Boolean) }
  def open?; end
end
`

func TestGenerate_WritesOutputFile(t *testing.T) {
	dir := projectDir(t, "first")

	_, stderr, err := execute(t, "generate", "--config", filepath.Join(dir, ".rbigen.toml"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "sorbet/rbi/shop.rbi"))
	require.NoError(t, err)
	assert.Equal(t, wantShop, string(data))

	assert.Contains(t, stderr, "Shop::LIMIT: kept Constant (LIMIT = 10)")
	assert.Contains(t, stderr, "merged 1, chosen 1, dropped 0")
}

func TestGenerate_DryRun(t *testing.T) {
	dir := projectDir(t, "first")

	stdout, _, err := execute(t, "generate", "--config", filepath.Join(dir, ".rbigen.toml"), "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, wantShop, stdout)

	_, err = os.Stat(filepath.Join(dir, "sorbet/rbi/shop.rbi"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "dry run wrote the output file")
}

func TestGenerate_ConflictStrategies(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		flag       string
		check      func(t *testing.T, stdout string, err error)
	}{
		{
			name:       "drop from flag",
			configured: "fail",
			flag:       "drop",
			check: func(t *testing.T, stdout string, err error) {
				require.NoError(t, err)
				assert.NotContains(t, stdout, "LIMIT")
			},
		},
		{
			name:       "fail",
			configured: "first",
			flag:       "fail",
			check: func(t *testing.T, _ string, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, conflict.ErrUnresolvedConflict))
				assert.Contains(t, err.Error(), "from models")
				assert.Contains(t, err.Error(), "from extras")
			},
		},
		{
			name:       "ask without a terminal fails",
			configured: "ask",
			check: func(t *testing.T, _ string, err error) {
				assert.True(t, errors.Is(err, conflict.ErrUnresolvedConflict))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := projectDir(t, tt.configured)
			args := []string{"generate", "--config", filepath.Join(dir, ".rbigen.toml"), "--dry-run"}
			if tt.flag != "" {
				args = append(args, "--on-conflict", tt.flag)
			}
			stdout, _, err := execute(t, args...)
			tt.check(t, stdout, err)
		})
	}
}

func TestGenerate_DeclFlag(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"models.yaml": modelsYAML})
	t.Chdir(dir)

	stdout, _, err := execute(t, "generate", "-d", "models.yaml")
	require.NoError(t, err)
	assert.Equal(t, "# typed: strict\n\nmodule Shop\n  LIMIT = 10\nend\n", stdout)
}

func TestGenerate_ConfigStrictnessCaps(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"models.yaml":  modelsYAML,
		".rbigen.toml": "strictness = \"false\"\n",
	})

	stdout, _, err := execute(t, "generate", "-c", filepath.Join(dir, ".rbigen.toml"), "-d", filepath.Join(dir, "models.yaml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "# typed: false\n"), "got %q", stdout)
}

func TestGenerate_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"unknown.toml":  "[[plugins]]\nname = \"nope\"\n",
		"strategy.toml": "",
	})

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing config", []string{"generate", "-c", filepath.Join(dir, "missing.toml")}, "parse TOML"},
		{"unknown plugin", []string{"generate", "-c", filepath.Join(dir, "unknown.toml")}, `unknown plugin "nope"`},
		{"bad strategy", []string{"generate", "-c", filepath.Join(dir, "strategy.toml"), "--on-conflict", "coin"}, "unknown conflict strategy"},
		{"missing decl", []string{"generate", "-c", filepath.Join(dir, "strategy.toml"), "-d", filepath.Join(dir, "none.yaml")}, "read declaration file"},
		{"bad log level", []string{"version", "--log-level", "loud"}, "unknown log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPluginsCommand(t *testing.T) {
	stdout, _, err := execute(t, "plugins")
	require.NoError(t, err)
	assert.Contains(t, stdout, "declfile")
	assert.Contains(t, stdout, "declaration files")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "rbigen dev (commit: unknown, built: unknown)\n", stdout)
}

func TestSetupLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", ""} {
		log, err := setupLogger(level)
		require.NoError(t, err, level)
		assert.NotNil(t, log)
	}
}
