// Package fragments reads release note fragment files.
//
// A fragment is a file named <base>.<extension> in the notes directory, where
// extension selects a config.NoteVariant and base is the ticket identifier.
package fragments

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/noterhq/noter/internal/config"
)

// ErrNotesDirNotFound is returned when the notes directory is missing or not a directory.
var ErrNotesDirNotFound = errors.New("release notes directory does not exist")

// ErrUnreadable is returned by Scan when a matching fragment cannot be read.
var ErrUnreadable = errors.New("cannot read fragment")

// ErrFragmentExists is returned by Create when the fragment file already exists.
var ErrFragmentExists = errors.New("fragment already exists")

// debugLogger logs debug messages when debug mode is enabled.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for fragment operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Entry is one fragment file.
type Entry struct {
	// BaseFileName is the file name without the variant extension; used as the ticket.
	BaseFileName string
	// Content is the file body with surrounding whitespace trimmed, so a
	// trailing newline does not end up inside the rendered note line. The raw
	// body is not kept.
	Content string
	// Path is the file location, used when cleaning up.
	Path string
}

// Groups maps each variant to its entries, ordered by file name.
type Groups map[config.NoteVariant][]Entry

// Count returns the total number of entries.
func (g Groups) Count() int {
	n := 0
	for _, entries := range g {
		n += len(entries)
	}
	return n
}

// Match returns the first variant whose extension is the suffix of fileName,
// and the base name with that suffix removed.
func Match(variants []config.NoteVariant, fileName string) (config.NoteVariant, string, bool) {
	for _, v := range variants {
		suffix := "." + v.Extension
		if !strings.HasSuffix(fileName, suffix) {
			continue
		}
		base := strings.TrimSuffix(fileName, suffix)
		if base == "" {
			continue
		}
		return v, base, true
	}
	return config.NoteVariant{}, "", false
}

// Scan reads every fragment in dir and groups it by variant.
// Hidden files, directories and files matching no variant are skipped.
// Symlinks are followed; a matching link that cannot be read is an error.
func Scan(dir string, variants []config.NoteVariant) (Groups, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotesDirNotFound, dir)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading release notes directory %s: %w", dir, err)
	}

	groups := make(Groups)
	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, ".") || de.IsDir() {
			continue
		}

		v, base, ok := Match(variants, name)
		if !ok {
			logDebug("[fragments] skipping %s: no matching variant", name)
			continue
		}

		path := filepath.Join(dir, name)
		fi, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrUnreadable, path, err)
		}
		if !fi.Mode().IsRegular() {
			logDebug("[fragments] skipping %s: not a regular file", name)
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrUnreadable, path, err)
		}

		logDebug("[fragments] %s -> %s (%s)", name, v.Name, base)
		groups[v] = append(groups[v], Entry{
			BaseFileName: base,
			Content:      strings.TrimSpace(string(content)),
			Path:         path,
		})
	}

	for _, entries := range groups {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].BaseFileName < entries[j].BaseFileName
		})
	}

	return groups, nil
}

// Create writes a new fragment <base>.<extension> in dir, creating dir if needed.
func Create(dir, base string, v config.NoteVariant, content string) (string, error) {
	if base == "" || strings.ContainsAny(base, `/\`) {
		return "", fmt.Errorf("invalid fragment name %q", base)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating release notes directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, base+"."+v.Extension)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrFragmentExists, path)
		}
		return "", fmt.Errorf("creating fragment %s: %w", path, err)
	}
	defer f.Close()

	body := strings.TrimSpace(content) + "\n"
	if _, err := f.WriteString(body); err != nil {
		return "", fmt.Errorf("writing fragment %s: %w", path, err)
	}

	logDebug("[fragments] created %s", path)
	return path, nil
}

// Remove deletes the fragment files of groups. It returns the number removed.
func Remove(groups Groups) (int, error) {
	removed := 0
	for _, entries := range groups {
		for _, e := range entries {
			if err := os.Remove(e.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return removed, fmt.Errorf("removing fragment %s: %w", e.Path, err)
			}
			logDebug("[fragments] removed %s", e.Path)
			removed++
		}
	}
	return removed, nil
}
