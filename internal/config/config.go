// Package config loads the noter configuration file.
// Configuration is layered with koanf: defaults < noter.toml (or noter.yaml /
// noter.json) < NOTER_* environment variables. The variant list only comes
// from the file, and its declaration order is the section order of the
// generated release notes.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables overriding config values.
const EnvPrefix = "NOTER_"

// ErrConfigNotFound is returned when no config file exists in the searched directory.
var ErrConfigNotFound = errors.New("failed to find config")

// NoteVariant is one category of release note, identified by the file-name
// suffix of its fragment files. It is comparable and used as a map key.
type NoteVariant struct {
	// Extension (e.g. "breaking") identifies fragment files of this variant.
	Extension string `koanf:"extension" toml:"extension" validate:"required,excludesall=/"`

	// Name is the section heading rendered for this variant.
	Name string `koanf:"name" toml:"name" validate:"required"`

	// ShowContent controls whether the fragment body is included in each note line.
	ShowContent bool `koanf:"show_content" toml:"show_content"`
}

// NewVariant builds a NoteVariant.
func NewVariant(extension, name string, showContent bool) NoteVariant {
	return NoteVariant{Extension: extension, Name: name, ShowContent: showContent}
}

// Configuration is the content of noter.toml.
type Configuration struct {
	// Directory holds the fragment files, relative to the config file.
	Directory string `koanf:"directory" toml:"directory" validate:"required"`

	// Filename is the release notes file, relative to the config file.
	// Its extension (.md or .rst) selects the output dialect.
	Filename string `koanf:"filename" toml:"filename" validate:"required"`

	// TitleFormat renders the title line; placeholders: {version}, {project_date}.
	TitleFormat string `koanf:"title_format" toml:"title_format" validate:"required"`

	// IssueFormat renders the text after each note; placeholder: {issue}.
	IssueFormat string `koanf:"issue_format" toml:"issue_format" validate:"required"`

	// Variant lists the release note categories in output order.
	Variant []NoteVariant `koanf:"variant" toml:"variant" validate:"required,min=1,unique=Extension,dive"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// Path is the config file to load. Its extension selects the parser.
	Path string
	// SkipEnv disables NOTER_* environment overrides.
	SkipEnv bool
}

// Load finds the config file in dir and loads it.
func Load(dir string) (*Configuration, error) {
	path, err := Find(dir)
	if err != nil {
		return nil, err
	}
	return LoadWithOptions(LoadOptions{Path: path})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadFileConfig(k, opts.Path); err != nil {
		return nil, err
	}

	if !opts.SkipEnv {
		if err := loadEnvironmentConfig(k); err != nil {
			return nil, err
		}
	}

	return finalizeConfig(k, opts.Path)
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadFileConfig loads the config file with the parser matching its extension
func loadFileConfig(k *koanf.Koanf, path string) error {
	parser, err := parserFor(path)
	if err != nil {
		return err
	}

	if _, ok := parser.(*yaml.YAML); ok {
		if err := ValidateYAMLSyntax(path); err != nil {
			return err
		}
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("unable to load config %s: %w", path, err)
	}
	return nil
}

// parserFor selects a koanf parser from the config file extension
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOMLParser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", path)
	}
}

// loadEnvironmentConfig loads environment variable overrides for scalar keys
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// envTransform maps NOTER_TITLE_FORMAT to title_format.
// Unknown keys map to "" and are skipped by the provider.
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if _, ok := GetDefaults()[key]; !ok {
		return ""
	}
	return key
}

// finalizeConfig unmarshals and validates the merged configuration
func finalizeConfig(k *koanf.Koanf, path string) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, path); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Find returns the path of the config file in dir. noter.toml wins over the
// alternative formats.
func Find(dir string) (string, error) {
	for _, name := range FileNames() {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w in %s", ErrConfigNotFound, dir)
}

// NotesDir returns the fragment directory resolved against baseDir.
func (c *Configuration) NotesDir(baseDir string) string {
	return filepath.Join(baseDir, c.Directory)
}

// NotesFile returns the release notes file resolved against baseDir.
func (c *Configuration) NotesFile(baseDir string) string {
	return filepath.Join(baseDir, c.Filename)
}

// VariantByExtension returns the variant registered for ext.
func (c *Configuration) VariantByExtension(ext string) (NoteVariant, bool) {
	ext = strings.TrimPrefix(ext, ".")
	for _, v := range c.Variant {
		if v.Extension == ext {
			return v, true
		}
	}
	return NoteVariant{}, false
}
