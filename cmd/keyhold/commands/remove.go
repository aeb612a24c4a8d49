package commands

import (
	"github.com/spf13/cobra"

	"github.com/systmms/keyhold/internal/config"
)

func NewRemoveCommand(cfg *config.Config) *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:     "rm <key>",
		Aliases: []string{"remove"},
		Short:   "Delete a password and unregister its key",
		Long: `Delete a password from the platform credential store and drop the key
from the local index.

The index entry is only dropped after the store confirms the deletion, so a
failed delete never loses the pointer to a secret that is still there.

Examples:
  keyhold rm github
  keyhold rm db --tag prod`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			v, err := newVault(cfg)
			if err != nil {
				return err
			}

			result, err := v.Remove(key, tag)
			if err != nil {
				return err
			}

			switch {
			case result.Ambiguous():
				printAmbiguity(cfg, key, result.Candidates)
			case result.NotFound:
				say(cfg, "No entry found for %q.", key)
			default:
				say(cfg, "%q removed successfully.", result.Entry.Identifier())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Disambiguating tag for the key")

	return cmd
}
