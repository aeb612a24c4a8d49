package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/systmms/keyhold/cmd/keyhold/commands"
	"github.com/systmms/keyhold/internal/config"
	"github.com/systmms/keyhold/internal/logging"
	"github.com/systmms/keyhold/internal/secure"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	secure.HandleInterrupts()
	defer secure.Purge()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		secure.Purge()
		os.Exit(1)
	}
}

func run() error {
	// Global flags
	var (
		configFile string
		noColor    bool
		debug      bool
		quiet      bool
	)

	// Flags for the bare get form
	var (
		tag      string
		copyFlag bool
	)

	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:   "keyhold [key]",
		Short: "Store and retrieve passwords in your platform keychain",
		Long: `keyhold keeps named passwords in the platform credential store (macOS
Keychain, Windows Credential Manager, or a Linux Secret Service) and tracks
which names exist in a small local index.

Retrieve a password by naming it directly:

  keyhold github
  keyhold db --tag prod --copy

When several entries share a key, keyhold lists them and asks for a tag
instead of guessing.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg.Path = configFile
			cfg.Logger = logging.New(debug, noColor)
			cfg.Quiet = quiet
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return commands.RunGet(cfg, args[0], tag, copyFlag)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "keyhold.yaml", "Config file path")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress human-readable output")

	rootCmd.Flags().StringVarP(&tag, "tag", "t", "", "Disambiguating tag for the key")
	rootCmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "Copy the password to the clipboard")

	rootCmd.AddCommand(
		commands.NewSetCommand(cfg),
		commands.NewRemoveCommand(cfg),
		commands.NewListCommand(cfg),
		commands.NewDoctorCommand(cfg),
		commands.NewCompletionCommand(cfg),
	)

	return rootCmd.Execute()
}
