package release

import (
	"fmt"
	"time"

	"github.com/noterhq/noter/internal/changelog"
	"github.com/noterhq/noter/internal/config"
	"github.com/noterhq/noter/internal/fragments"
)

// Options configures one generation run.
type Options struct {
	// BaseDir is the directory holding the config file; paths in the config are relative to it.
	BaseDir string
	// Version overrides version discovery.
	Version string
	// Draft renders without writing.
	Draft bool
	// DraftFormatter replaces the changelog dialect for drafts. Nil keeps it.
	DraftFormatter changelog.Formatter
	// Clean removes consumed fragments after the changelog is written.
	Clean bool
	// Now returns the release date. Defaults to time.Now.
	Now func() time.Time
}

// Result describes a generation run.
type Result struct {
	Notes     string
	Version   string
	Path      string
	Fragments int
	Written   bool
	Removed   int
}

// Generate reads all fragments, renders them once and, unless drafting,
// prepends the notes to the changelog. When only the cleanup fails, the
// returned Result is still filled in and the error wraps ErrCleanup.
func Generate(cfg *config.Configuration, opts Options) (*Result, error) {
	groups, err := fragments.Scan(cfg.NotesDir(opts.BaseDir), cfg.Variant)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, ErrNoReleaseNotes
	}

	version, err := DiscoverVersion(opts.Version, opts.BaseDir)
	if err != nil {
		return nil, err
	}

	formatter, err := FormatterFor(cfg.Filename)
	if err != nil {
		return nil, err
	}
	if opts.Draft && opts.DraftFormatter != nil {
		formatter = opts.DraftFormatter
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	notes, err := Compile(changelog.NewWriter(formatter), cfg, version, now(), groups)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Notes:     notes,
		Version:   version,
		Path:      cfg.NotesFile(opts.BaseDir),
		Fragments: groups.Count(),
	}
	if opts.Draft {
		return result, nil
	}

	if err := Prepend(result.Path, notes); err != nil {
		return nil, err
	}
	result.Written = true

	if opts.Clean {
		removed, err := fragments.Remove(groups)
		result.Removed = removed
		if err != nil {
			return result, fmt.Errorf("%w: %v", ErrCleanup, err)
		}
	}

	return result, nil
}
