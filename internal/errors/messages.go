package errors

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Common error messages for the noter CLI.

// ConfigFileNotFound creates an error for a directory without noter.toml.
func ConfigFileNotFound(dir string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("failed to find config in %s", dir),
		"Run 'noter init' to create a default noter.toml",
		"Or point at the directory holding it: noter --config <dir>",
	)
}

// ConfigParseError creates an error for an unreadable or invalid config file.
func ConfigParseError(err error, path string) *CLIError {
	name := filepath.Base(path)
	return WrapWithMessage(err, Configuration,
		"unable to parse config "+name,
		fmt.Sprintf("Check %s for %s syntax errors", name, configFormat(path)),
		"Every variant needs a unique extension and a name",
	)
}

// configFormat names the syntax of a config file from its extension.
func configFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "YAML"
	case ".json":
		return "JSON"
	default:
		return "TOML"
	}
}

// TemplateInvalid creates an error for a title_format or issue_format that cannot be rendered.
func TemplateInvalid(err error) *CLIError {
	return Wrap(err, Configuration,
		"title_format accepts {version} and {project_date}",
		"issue_format accepts {issue}",
		"Write literal braces as {{ and }}",
	)
}

// NotesDirNotFound creates an error for a missing fragment directory.
func NotesDirNotFound(err error, dir string) *CLIError {
	return WrapWithMessage(err, Prerequisite,
		"cannot read fragments",
		"Create the directory with: mkdir -p "+dir,
		"Or set 'directory' in noter.toml",
	)
}

// NoReleaseNotes creates an error when no fragment matched a variant.
func NoReleaseNotes(dir string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("no release notes found in %s", dir),
		"Add a fragment with: noter create <ticket> <extension> \"<description>\"",
		"Fragment files are named <ticket>.<extension>, e.g. "+filepath.Join(dir, "PROJ-1.feature"),
	)
}

// FragmentsUnreadable creates an error for a fragment file that cannot be read.
func FragmentsUnreadable(err error, dir string) *CLIError {
	return WrapWithMessage(err, Runtime,
		"cannot read fragments",
		"Check the fragment files in "+dir+" (broken symlinks, permissions)",
	)
}

// CleanupFailed creates an error for a run that wrote the changelog but
// could not remove every fragment.
func CleanupFailed(err error, dir string) *CLIError {
	return Wrap(err, Runtime,
		"The changelog already contains these notes; do not run noter again",
		"Delete the remaining fragments in "+dir+" by hand",
	)
}

// UnsupportedFilename creates an error for a changelog that is neither .md nor .rst.
func UnsupportedFilename(err error) *CLIError {
	return Wrap(err, Configuration,
		"Set 'filename' in noter.toml to a .md or .rst file",
	)
}

// VersionUndetermined creates an error when no release version could be found.
func VersionUndetermined(err error) *CLIError {
	return Wrap(err, Prerequisite,
		"Pass the version explicitly: noter --version 1.2.3",
		"Or write it to a VERSION file next to noter.toml",
		"Or tag HEAD: git tag v1.2.3",
	)
}

// UnknownVariant creates an error for an extension not declared in the config.
func UnknownVariant(ext string, known []string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("unknown variant extension: %s", ext),
		"noter create <ticket> <extension> [description]",
		fmt.Sprintf("Known extensions: %v", known),
	)
}

// FileNotWritable creates an error when the changelog cannot be written.
func FileNotWritable(err error, path string) *CLIError {
	return WrapWithMessage(err, Runtime,
		"cannot write release notes",
		"Check file permissions: ls -la "+path,
	)
}
