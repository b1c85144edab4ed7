// Package cli tests the root command and global flags for noter.
// Related: internal/cli/root.go
// Tags: cli, root, commands, global-flags

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	clierrors "github.com/noterhq/noter/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes a fresh command tree with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// writeProject creates a project dir with noter.toml and the given fragments.
func writeProject(t *testing.T, fragments map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	cfg := `directory = "release_notes"
filename = "CHANGELOG.md"
title_format = "v{version}"
issue_format = "#{issue}"

[[variant]]
extension = "feature"
name = "Features"
show_content = true

[[variant]]
extension = "misc"
name = "Misc"
show_content = false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "noter.toml"), []byte(cfg), 0o644))

	notes := filepath.Join(dir, "release_notes")
	require.NoError(t, os.MkdirAll(notes, 0o755))
	for name, content := range fragments {
		require.NoError(t, os.WriteFile(filepath.Join(notes, name), []byte(content), 0o644))
	}
	return dir
}

func TestRootCmd_Structure(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "noter", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.NotEmpty(t, rootCmd.Example)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestRootCmd_Flags(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		flagName   string
		shorthand  string
		persistent bool
	}{
		"draft":   {flagName: "draft", shorthand: "d"},
		"version": {flagName: "version", shorthand: "v"},
		"clean":   {flagName: "clean"},
		"config":  {flagName: "config", shorthand: "c", persistent: true},
		"plain":   {flagName: "plain", persistent: true},
		"debug":   {flagName: "debug", persistent: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			flags := rootCmd.Flags()
			if tt.persistent {
				flags = rootCmd.PersistentFlags()
			}
			flag := flags.Lookup(tt.flagName)
			require.NotNil(t, flag, "Flag %s should exist", tt.flagName)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
		})
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	t.Parallel()

	groupIDs := make(map[string]bool)
	for _, g := range rootCmd.Groups() {
		groupIDs[g.ID] = true
	}
	assert.True(t, groupIDs[GroupRelease])
	assert.True(t, groupIDs[GroupSetup])

	names := make(map[string]string)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = cmd.GroupID
	}
	assert.Equal(t, GroupSetup, names["init"])
	assert.Equal(t, GroupRelease, names["create"])
	assert.Equal(t, GroupSetup, names["config"])
	assert.Equal(t, GroupSetup, names["version"])
}

func TestRootCmd_ArgumentErrors(t *testing.T) {
	tests := map[string]struct {
		args []string
	}{
		"unknown command": {args: []string{"publish"}},
		"unknown flag":    {args: []string{"--bogus"}},
		"create no args":  {args: []string{"create"}},
		"init extra arg":  {args: []string{"init", "x"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, clierrors.ExitArgument, clierrors.ExitCode(err))
		})
	}
}

func TestRootCmd_Help(t *testing.T) {
	out, err := runCLI(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Release Notes:")
	assert.Contains(t, out, "create")
}
