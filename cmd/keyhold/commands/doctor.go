package commands

import (
	"github.com/spf13/cobra"

	"github.com/systmms/keyhold/internal/config"
	kherrors "github.com/systmms/keyhold/internal/errors"
	"github.com/systmms/keyhold/internal/index"
)

// doctorProbe is the throwaway identifier used to exercise the credential
// store. It is always deleted again, and never registered in the index.
const doctorProbe = "keyhold-doctor-probe"

func NewDoctorCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check index and credential store health",
		Long: `Verify that keyhold can do its job on this machine.

This command checks:
- Configuration file validity
- Index file readability and structure
- Platform credential store availability (via a throwaway probe entry)
- Clipboard availability`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			problems := 0

			if err := cfg.Load(); err != nil {
				cfg.Logger.Error("configuration: %v", err)
				return err
			}
			cfg.Logger.Info("configuration loaded (service %q, account %q)", cfg.Service, cfg.Account)

			idxStore := index.NewFileStore(cfg.IndexPath)
			idx, err := idxStore.Load()
			if err != nil {
				cfg.Logger.Error("index: %v", err)
				problems++
			} else {
				cfg.Logger.Info("index %s readable (%d entries)", cfg.IndexPath, idx.Len())
			}

			store := cfg.KeyringStore()
			if err := store.Set(doctorProbe, "ok"); err != nil {
				cfg.Logger.Error("credential store: %v", err)
				problems++
			} else if err := store.Delete(doctorProbe); err != nil {
				cfg.Logger.Error("credential store cleanup: %v", err)
				problems++
			} else {
				cfg.Logger.Info("credential store reachable")
			}

			type availabler interface {
				Available() bool
			}
			if clip, ok := cfg.ClipboardWriter().(availabler); ok && !clip.Available() {
				cfg.Logger.Warn("clipboard unavailable; 'keyhold <key> --copy' will fail")
			} else {
				cfg.Logger.Info("clipboard available")
			}

			if problems > 0 {
				return kherrors.UserError{
					Message:    "Doctor found problems",
					Suggestion: "Fix the checks marked ✗ above and run 'keyhold doctor' again",
				}
			}
			return nil
		},
	}

	return cmd
}
