package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/systmms/keyhold/internal/config"
	kherrors "github.com/systmms/keyhold/internal/errors"
	"github.com/systmms/keyhold/internal/secure"
)

func NewSetCommand(cfg *config.Config) *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "set <key> [password]",
		Short: "Store a password under a key",
		Long: `Store a password in the platform credential store and register the key
in the local index.

When the password argument is omitted, keyhold prompts for it without echo,
or reads it from stdin when piped.

Examples:
  keyhold set github hunter2
  keyhold set db --tag prod
  openssl rand -base64 24 | keyhold set db --tag staging`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if key == "" {
				return kherrors.UserError{
					Message:    "Key name must not be empty",
					Suggestion: "Pass a key name, e.g. 'keyhold set github'",
				}
			}

			var secret *secure.Value
			if len(args) == 2 {
				secret = secure.SealString(args[1])
			} else {
				var err error
				secret, err = readSecret(cfg, key)
				if err != nil {
					return err
				}
			}

			v, err := newVault(cfg)
			if err != nil {
				return err
			}

			entry, err := v.Set(key, tag, secret)
			if err != nil {
				return err
			}

			say(cfg, "Password for %q set successfully.", entry.Identifier())
			return nil
		},
	}

	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Tag distinguishing this entry from others with the same key")

	return cmd
}

// readSecret obtains the password when it was not passed as an argument:
// a no-echo prompt on a terminal, the first line of stdin otherwise.
func readSecret(cfg *config.Config, key string) (*secure.Value, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		if !cfg.Quiet {
			fmt.Fprintf(os.Stderr, "Password for %q: ", key)
		}
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		if !cfg.Quiet {
			fmt.Fprintln(os.Stderr)
		}
		if err != nil {
			return nil, kherrors.UserError{
				Message: "Failed to read password from terminal",
				Err:     err,
			}
		}
		if len(raw) == 0 {
			return nil, kherrors.UserError{
				Message:    "Empty password",
				Suggestion: "Provide a non-empty password, or pass it as an argument",
			}
		}
		return secure.Seal(raw), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return nil, kherrors.UserError{
			Message:    "No password on stdin",
			Suggestion: "Pipe a password in, or pass it as an argument",
			Err:        err,
		}
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return nil, kherrors.UserError{
			Message:    "Empty password",
			Suggestion: "Provide a non-empty password, or pass it as an argument",
		}
	}
	return secure.SealString(line), nil
}
