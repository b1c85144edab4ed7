package cli

import (
	"errors"
	"strings"

	clierrors "github.com/noterhq/noter/internal/errors"
	"github.com/noterhq/noter/internal/fragments"
	"github.com/noterhq/noter/internal/output"
	"github.com/spf13/cobra"
)

func newCreateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <ticket> <extension> [message]",
		Short: "Create a release note fragment",
		Long: `Create the fragment <ticket>.<extension> in the release notes directory.

The extension must be one of the variants declared in noter.toml. The
message becomes the note text; it may be omitted for variants that do
not show content. Existing fragments are never overwritten.`,
		Example: `  # Add a feature note
  noter create PROJ-123 feature "Support Markdown changelogs"

  # Add a note whose content is not shown
  noter create PROJ-124 misc`,
		Args: argsWithUsage(cobra.RangeArgs(2, 3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, opts, args)
		},
	}
	cmd.GroupID = GroupRelease

	return cmd
}

func runCreate(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg, err := loadConfig(opts.configDir)
	if err != nil {
		return err
	}

	ticket, ext := args[0], args[1]
	message := ""
	if len(args) == 3 {
		message = args[2]
	}

	variant, ok := cfg.VariantByExtension(ext)
	if !ok {
		known := make([]string, 0, len(cfg.Variant))
		for _, v := range cfg.Variant {
			known = append(known, v.Extension)
		}
		return clierrors.UnknownVariant(ext, known)
	}

	if strings.TrimSpace(message) == "" && variant.ShowContent {
		return clierrors.NewArgumentErrorWithUsage(
			"a message is required for "+variant.Name,
			cmd.UseLine(),
			"Pass the note text as the third argument",
		)
	}

	path, err := fragments.Create(cfg.NotesDir(opts.configDir), ticket, variant, message)
	if err != nil {
		if errors.Is(err, fragments.ErrFragmentExists) {
			return clierrors.NewArgumentError(err.Error(), "Edit the existing fragment or pick another ticket")
		}
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "cannot create fragment")
	}

	output.PrintSuccess(cmd.OutOrStdout(), "Created "+output.Path(path))
	return nil
}
