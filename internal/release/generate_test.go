package release

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/noterhq/noter/internal/changelog"
	"github.com/noterhq/noter/internal/fragments"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time { return releaseDate }

// setupProject creates a base dir with fragments and returns it.
func setupProject(t *testing.T, files map[string]string) string {
	t.Helper()

	base := t.TempDir()
	notesDir := filepath.Join(base, "release_notes")
	require.NoError(t, os.MkdirAll(notesDir, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(notesDir, name), []byte(content), 0o644))
	}
	return base
}

func TestGenerate_WritesChangelog(t *testing.T) {
	t.Parallel()

	base := setupProject(t, map[string]string{
		"PROJ-1.feature": "Add a feature\n",
	})
	cfg := testConfig("CHANGELOG.md")
	cfg.IssueFormat = "#{issue}"

	changelogPath := filepath.Join(base, "CHANGELOG.md")
	require.NoError(t, os.WriteFile(changelogPath, []byte("# v0.1.0 - 2024-01-01\n"), 0o644))

	result, err := Generate(cfg, Options{BaseDir: base, Version: "0.2.0", Now: fixedNow})
	require.NoError(t, err)

	assert.True(t, result.Written)
	assert.Equal(t, "0.2.0", result.Version)
	assert.Equal(t, 1, result.Fragments)
	assert.Equal(t, changelogPath, result.Path)

	data, err := os.ReadFile(changelogPath)
	require.NoError(t, err)
	want := "# v0.2.0 - 2024-03-09\n\n## Features\n\n- PROJ-1: Add a feature #PROJ-1\n" +
		"\n# v0.1.0 - 2024-01-01\n"
	assert.Equal(t, want, string(data))

	// fragments are kept without Clean
	_, err = os.Stat(filepath.Join(base, "release_notes", "PROJ-1.feature"))
	assert.NoError(t, err)
}

func TestGenerate_Draft(t *testing.T) {
	t.Parallel()

	base := setupProject(t, map[string]string{"A.misc": "hidden"})
	cfg := testConfig("NOTES.rst")

	result, err := Generate(cfg, Options{
		BaseDir:        base,
		Version:        "1.0",
		Draft:          true,
		DraftFormatter: changelog.NewTerminal(true),
		Now:            fixedNow,
	})
	require.NoError(t, err)

	assert.False(t, result.Written)
	assert.Contains(t, result.Notes, "v1.0 - 2024-03-09\n=================\nMisc\n----\n- A: ")

	_, err = os.Stat(filepath.Join(base, "NOTES.rst"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "draft must not write")
}

func TestGenerate_Clean(t *testing.T) {
	t.Parallel()

	base := setupProject(t, map[string]string{
		"A.feature": "a",
		"B.misc":    "b",
		"keep.txt":  "c",
	})

	result, err := Generate(testConfig("CHANGELOG.md"), Options{BaseDir: base, Version: "1", Clean: true, Now: fixedNow})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Removed)

	entries, err := os.ReadDir(filepath.Join(base, "release_notes"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "keep.txt", entries[0].Name())
}

func TestGenerate_CleanupFailure(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	t.Parallel()

	base := setupProject(t, map[string]string{"A.feature": "a"})
	notesDir := filepath.Join(base, "release_notes")
	require.NoError(t, os.Chmod(notesDir, 0o555))
	t.Cleanup(func() { os.Chmod(notesDir, 0o755) })

	result, err := Generate(testConfig("CHANGELOG.md"), Options{BaseDir: base, Version: "1", Clean: true, Now: fixedNow})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCleanup))

	require.NotNil(t, result, "the result of the completed write is returned")
	assert.True(t, result.Written)
	assert.Zero(t, result.Removed)

	data, err := os.ReadFile(filepath.Join(base, "CHANGELOG.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "- A: a")
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		files    map[string]string
		link     string
		noDir    bool
		filename string
		version  string
		wantErr  error
	}{
		"no fragments": {
			files:    map[string]string{"README": "x"},
			filename: "CHANGELOG.md",
			version:  "1",
			wantErr:  ErrNoReleaseNotes,
		},
		"missing notes dir": {
			noDir:    true,
			filename: "CHANGELOG.md",
			version:  "1",
			wantErr:  fragments.ErrNotesDirNotFound,
		},
		"unsupported changelog": {
			files:    map[string]string{"A.feature": "a"},
			filename: "CHANGELOG.txt",
			version:  "1",
			wantErr:  ErrUnsupportedFilename,
		},
		"no version": {
			files:    map[string]string{"A.feature": "a"},
			filename: "CHANGELOG.md",
			wantErr:  ErrVersionUnknown,
		},
		"unreadable fragment": {
			files:    map[string]string{"B.misc": "b"},
			link:     "A.feature",
			filename: "CHANGELOG.md",
			version:  "1",
			wantErr:  fragments.ErrUnreadable,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			base := t.TempDir()
			if !tt.noDir {
				base = setupProject(t, tt.files)
			}
			if tt.link != "" {
				notes := filepath.Join(base, "release_notes")
				require.NoError(t, os.Symlink(filepath.Join(notes, "missing"), filepath.Join(notes, tt.link)))
			}

			_, err := Generate(testConfig(tt.filename), Options{BaseDir: base, Version: tt.version, Now: fixedNow})
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestGenerate_TemplateErrorWritesNothing(t *testing.T) {
	t.Parallel()

	base := setupProject(t, map[string]string{"A.feature": "a"})
	cfg := testConfig("CHANGELOG.md")
	cfg.TitleFormat = "{unknown}"

	_, err := Generate(cfg, Options{BaseDir: base, Version: "1", Now: fixedNow})
	require.Error(t, err)

	_, err = os.Stat(filepath.Join(base, "CHANGELOG.md"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
