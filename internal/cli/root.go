// Package cli implements the noter command line.
package cli

import (
	"log"
	"os"

	clierrors "github.com/noterhq/noter/internal/errors"
	"github.com/noterhq/noter/internal/fragments"
	"github.com/noterhq/noter/internal/git"
	"github.com/spf13/cobra"
)

// Command groups for help output.
const (
	GroupRelease = "release"
	GroupSetup   = "setup"
)

// rootOptions holds the flags shared by the root command and its subcommands.
type rootOptions struct {
	configDir string
	version   string
	draft     bool
	clean     bool
	plain     bool
	debug     bool
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "noter",
		Short: "Compile release note fragments into the changelog",
		Long: `noter collects release note fragments and prepends them to the changelog.

Each fragment is a file named <ticket>.<extension> in the notes directory.
The extension selects the section it is listed under; the configured
variants in noter.toml define the sections and their order.

The changelog format follows the configured filename:
  .md   Markdown headings
  .rst  underlined reStructuredText headings

The release version is taken from --version, then a VERSION file next to
noter.toml, then a git tag pointing at HEAD.`,
		Example: `  # Preview the release notes without writing
  noter --draft

  # Write the notes for an explicit version and delete the fragments
  noter --version 1.4.0 --clean

  # Use the config in another directory
  noter --config path/to/project`,
		Args:          argsWithUsage(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd, opts.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.AddGroup(
		&cobra.Group{ID: GroupRelease, Title: "Release Notes:"},
		&cobra.Group{ID: GroupSetup, Title: "Setup:"},
	)

	cmd.Flags().BoolVarP(&opts.draft, "draft", "d", false, "Print the release notes instead of writing them")
	cmd.Flags().StringVarP(&opts.version, "version", "v", "", "Release version (default: VERSION file or git tag at HEAD)")
	cmd.Flags().BoolVar(&opts.clean, "clean", false, "Delete the fragments after writing the changelog")
	cmd.PersistentFlags().StringVarP(&opts.configDir, "config", "c", ".", "Directory containing noter.toml")
	cmd.PersistentFlags().BoolVar(&opts.plain, "plain", false, "Plain output without colors")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Print debug logging to stderr")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), c.UseLine())
	})

	cmd.AddCommand(newInitCmd(opts), newCreateCmd(opts), newConfigCmd(opts), newVersionCmd(opts))

	return cmd
}

// argsWithUsage turns positional argument errors into argument errors with usage.
func argsWithUsage(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return clierrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine())
		}
		return nil
	}
}

// setupLogging routes the packages' debug logs to stderr when enabled.
func setupLogging(cmd *cobra.Command, debug bool) {
	if !debug {
		git.SetDebugLogger(nil)
		fragments.SetDebugLogger(nil)
		return
	}
	logger := log.New(cmd.ErrOrStderr(), "[debug] ", log.Ltime)
	git.SetDebugLogger(logger.Printf)
	fragments.SetDebugLogger(logger.Printf)
}

// Execute runs the root command and prints any error to stderr.
// The returned error carries the exit code, see errors.ExitCode.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		plain, _ := rootCmd.PersistentFlags().GetBool("plain")
		clierrors.Fprint(os.Stderr, err, plain)
	}
	return err
}
