package config

// GetDefaultConfigTemplate returns a commented noter.toml written by 'noter init'
func GetDefaultConfigTemplate() string {
	return `# noter configuration
# Fragment files live in 'directory' and are named <ticket>.<extension>,
# e.g. release_notes/PROJ-123.feature

# Directory holding fragment files (relative to this file)
directory = "release_notes"

# Release notes file; .md renders Markdown, .rst renders reStructuredText
filename = "CHANGELOG.md"

# Title line; placeholders: {version} {project_date}
title_format = "{version} ({project_date})"

# Text after each note; placeholder: {issue} (the fragment file name without extension)
issue_format = "{issue}"

# Sections, rendered in this order
[[variant]]
extension = "breaking"
name = "Incompatible Changes"
show_content = true

[[variant]]
extension = "feature"
name = "Features"
show_content = true

[[variant]]
extension = "bugfix"
name = "Bugfixes"
show_content = true

[[variant]]
extension = "doc"
name = "Improved Documentation"
show_content = true
`
}

// GetDefaults returns the default configuration values.
// Variants have no default; the config file must declare them.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"directory":    "release_notes",
		"filename":     "CHANGELOG.md",
		"title_format": "{version} ({project_date})",
		"issue_format": "{issue}",
	}
}
