package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/systmms/keyhold/internal/config"
	kherrors "github.com/systmms/keyhold/internal/errors"
	"github.com/systmms/keyhold/internal/index"
)

func NewListCommand(cfg *config.Config) *cobra.Command {
	var (
		tag      string
		untagged bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered keys",
		Long: `List the identifiers registered in the local index. The credential store
is never contacted; this is the local catalog only.

Examples:
  keyhold list
  keyhold list --tag prod
  keyhold list --untagged`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tag != "" && untagged {
				return kherrors.UserError{
					Message:    "--tag and --untagged are mutually exclusive",
					Suggestion: "Pick one: filter by a specific tag, or show only untagged entries",
				}
			}

			v, err := newVault(cfg)
			if err != nil {
				return err
			}

			entries, err := v.List(index.ListFilter{Tag: tag, Untagged: untagged})
			if err != nil {
				return err
			}

			if cfg.Quiet {
				return nil
			}
			for _, e := range entries {
				fmt.Printf("* %s\n", e.Identifier())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Only entries with exactly this tag")
	cmd.Flags().BoolVar(&untagged, "untagged", false, "Only entries without a tag")

	return cmd
}
