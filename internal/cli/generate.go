package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/noterhq/noter/internal/changelog"
	"github.com/noterhq/noter/internal/config"
	clierrors "github.com/noterhq/noter/internal/errors"
	"github.com/noterhq/noter/internal/fragments"
	"github.com/noterhq/noter/internal/output"
	"github.com/noterhq/noter/internal/placeholder"
	"github.com/noterhq/noter/internal/release"
	"github.com/spf13/cobra"
)

func runGenerate(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(opts.configDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	genOpts := release.Options{
		BaseDir: opts.configDir,
		Version: opts.version,
		Draft:   opts.draft,
		Clean:   opts.clean,
	}
	if opts.draft && !opts.plain && output.IsTerminal(out) {
		genOpts.DraftFormatter, _ = changelog.NewFormatter(changelog.DialectTerminal)
	}

	result, err := release.Generate(cfg, genOpts)
	return reportGenerate(out, cfg, genOpts, result, err)
}

// reportGenerate prints the outcome of a generation run and maps its error.
func reportGenerate(out io.Writer, cfg *config.Configuration, opts release.Options, result *release.Result, err error) error {
	if errors.Is(err, release.ErrCleanup) && result != nil && result.Written {
		printWritten(out, result)
		return clierrors.CleanupFailed(err, cfg.NotesDir(opts.BaseDir))
	}
	if err != nil {
		return classifyGenerateError(err, cfg, opts.BaseDir)
	}

	if result.Written {
		printWritten(out, result)
		if opts.Clean {
			output.PrintInfo(out, fmt.Sprintf("Removed %d fragments", result.Removed))
		}
		return nil
	}

	if opts.DraftFormatter != nil {
		output.PrintDraftBanner(out, cfg.Filename)
	}
	fmt.Fprint(out, result.Notes)
	return nil
}

func printWritten(out io.Writer, result *release.Result) {
	output.PrintSuccess(out, fmt.Sprintf("Wrote release notes for %s to %s (%d fragments)",
		result.Version, output.Path(result.Path), result.Fragments))
}

// loadConfig finds and loads the configuration in dir.
func loadConfig(dir string) (*config.Configuration, error) {
	path, err := config.Find(dir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, clierrors.ConfigFileNotFound(dir)
		}
		return nil, clierrors.Wrap(err, clierrors.Runtime)
	}

	cfg, err := config.LoadWithOptions(config.LoadOptions{Path: path})
	if err != nil {
		return nil, clierrors.ConfigParseError(err, path)
	}
	return cfg, nil
}

// classifyGenerateError maps release errors to CLI errors with remediation.
func classifyGenerateError(err error, cfg *config.Configuration, baseDir string) error {
	notesDir := cfg.NotesDir(baseDir)

	switch {
	case errors.Is(err, release.ErrNoReleaseNotes):
		return clierrors.NoReleaseNotes(notesDir)
	case errors.Is(err, fragments.ErrNotesDirNotFound):
		return clierrors.NotesDirNotFound(err, notesDir)
	case errors.Is(err, fragments.ErrUnreadable):
		return clierrors.FragmentsUnreadable(err, notesDir)
	case errors.Is(err, release.ErrUnsupportedFilename):
		return clierrors.UnsupportedFilename(err)
	case errors.Is(err, release.ErrVersionUnknown):
		return clierrors.VersionUndetermined(err)
	case placeholder.IsTemplateError(err):
		return clierrors.TemplateInvalid(err)
	case errors.Is(err, release.ErrWrite):
		return clierrors.FileNotWritable(err, cfg.NotesFile(baseDir))
	default:
		return clierrors.Wrap(err, clierrors.Runtime)
	}
}
