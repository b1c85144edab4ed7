package cli

import (
	"fmt"

	"github.com/noterhq/noter/internal/config"
	clierrors "github.com/noterhq/noter/internal/errors"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration as TOML",
		Long: `Show the configuration noter will use, after defaults and NOTER_*
environment overrides are applied, rendered as noter.toml.`,
		Example: `  # Show the effective configuration
  noter config

  # Convert a noter.yaml into noter.toml
  noter config > noter.toml`,
		Args: argsWithUsage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configDir)
			if err != nil {
				return err
			}

			b, err := config.Encode(cfg)
			if err != nil {
				return clierrors.Wrap(err, clierrors.Runtime)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.GroupID = GroupSetup

	return cmd
}
