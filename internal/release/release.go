// Package release turns grouped fragments into a release notes document and
// writes it to the top of the changelog.
package release

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/noterhq/noter/internal/changelog"
	"github.com/noterhq/noter/internal/config"
	"github.com/noterhq/noter/internal/fragments"
	"github.com/noterhq/noter/internal/git"
	"github.com/noterhq/noter/internal/placeholder"
)

// DateLayout formats {project_date}.
const DateLayout = "2006-01-02"

// VersionFile is read from the base directory when no version is given.
const VersionFile = "VERSION"

var (
	// ErrNoReleaseNotes is returned when no fragment matched any variant.
	ErrNoReleaseNotes = errors.New("no release notes found")

	// ErrUnsupportedFilename is returned when the changelog is neither .md nor .rst.
	ErrUnsupportedFilename = errors.New("expected `filename` ending with .md or .rst")

	// ErrVersionUnknown is returned when no version source produced a version.
	ErrVersionUnknown = errors.New("failed to determine version number")

	// ErrWrite is returned by Prepend when the changelog cannot be replaced.
	ErrWrite = errors.New("failed to write release notes")

	// ErrCleanup is returned by Generate when the changelog was written but
	// removing the fragments failed.
	ErrCleanup = errors.New("release notes written, but cleanup failed")
)

// dialects maps changelog file extensions to output dialects.
var dialects = map[string]changelog.Dialect{
	".md":  changelog.DialectMarkdown,
	".rst": changelog.DialectText,
}

// FormatterFor selects the formatter for the changelog file name.
func FormatterFor(filename string) (changelog.Formatter, error) {
	if d, ok := dialects[filepath.Ext(filename)]; ok {
		if f, ok := changelog.NewFormatter(d); ok {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w, found %s", ErrUnsupportedFilename, filename)
}

// Compile drives w through one document: the title, then one section per
// configured variant that has entries, in configuration order.
func Compile(w *changelog.Writer, cfg *config.Configuration, version string, date time.Time, groups fragments.Groups) (string, error) {
	title, err := placeholder.Format(cfg.TitleFormat, map[string]string{
		"version":      version,
		"project_date": date.Format(DateLayout),
	})
	if err != nil {
		return "", fmt.Errorf("invalid `title_format` given: %w", err)
	}

	w.Begin(title)

	for _, v := range cfg.Variant {
		entries, ok := groups[v]
		if !ok {
			continue
		}

		w.OpenSection(v)
		for _, e := range entries {
			issue, err := placeholder.Format(cfg.IssueFormat, map[string]string{"issue": e.BaseFileName})
			if err != nil {
				return "", fmt.Errorf("invalid `issue_format` given: %w", err)
			}
			if err := w.AddNote(e.BaseFileName, e.Content, issue); err != nil {
				return "", fmt.Errorf("writing note %s: %w", e.BaseFileName, err)
			}
		}
		w.CloseSection()
	}

	return w.Serialize(), nil
}

// DiscoverVersion resolves the release version: override, then the VERSION
// file in baseDir, then a git tag at HEAD of the repository holding baseDir.
func DiscoverVersion(override, baseDir string) (string, error) {
	if override != "" {
		return override, nil
	}

	data, err := os.ReadFile(filepath.Join(baseDir, VersionFile))
	if err == nil {
		if version := strings.TrimSpace(string(data)); version != "" {
			return version, nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("reading %s: %w", VersionFile, err)
	}

	if !git.IsGitRepository(baseDir) {
		return "", fmt.Errorf("%w: no %s file and %s is not in a git repository", ErrVersionUnknown, VersionFile, baseDir)
	}

	version, err := git.VersionAtHead(baseDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrVersionUnknown, err)
	}
	return version, nil
}

// Prepend writes notes above the existing content of path, separated by one
// newline. A missing file is created. The file is replaced atomically.
func Prepend(path, notes string) error {
	content := notes

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		content = notes + "\n" + string(existing)
	case errors.Is(err, os.ErrNotExist):
	default:
		return fmt.Errorf("failed to read release notes from %s: %w", path, err)
	}

	if err := writeFileAtomic(path, []byte(content)); err != nil {
		return fmt.Errorf("%w to %s: %v", ErrWrite, path, err)
	}
	return nil
}

// writeFileAtomic writes data to a temp file next to path and renames it over path.
func writeFileAtomic(path string, data []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
