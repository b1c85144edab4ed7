package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/noterhq/noter/internal/config"
	clierrors "github.com/noterhq/noter/internal/errors"
	"github.com/noterhq/noter/internal/output"
	"github.com/spf13/cobra"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default noter.toml and notes directory",
		Long: `Create a default noter.toml in the config directory and the release notes
directory it names.

If a config file already exists it is left unchanged (use --force to overwrite).`,
		Example: `  # Initialize in the current directory
  noter init

  # Initialize another project
  noter init --config path/to/project

  # Overwrite an existing noter.toml with defaults
  noter init --force`,
		Args: argsWithUsage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts.configDir, force)
		},
	}
	cmd.GroupID = GroupSetup
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config with defaults")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	out := cmd.OutOrStdout()

	existing, err := config.Find(dir)
	switch {
	case err == nil && !force:
		output.PrintInfo(out, fmt.Sprintf("Config already exists at %s (use --force to overwrite)", existing))
		return nil
	case err != nil && !errors.Is(err, config.ErrConfigNotFound):
		return clierrors.Wrap(err, clierrors.Runtime)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "creating config directory")
	}

	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return clierrors.FileNotWritable(err, path)
	}
	output.PrintSuccess(out, "Created "+output.Path(path))

	cfg, err := config.LoadWithOptions(config.LoadOptions{Path: path, SkipEnv: true})
	if err != nil {
		return clierrors.ConfigParseError(err, path)
	}

	notesDir := cfg.NotesDir(dir)
	if err := os.MkdirAll(notesDir, 0o755); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "creating release notes directory")
	}
	output.PrintSuccess(out, "Created "+output.Path(notesDir))

	return nil
}
