package commands

import (
	"fmt"

	"github.com/systmms/keyhold/internal/config"
	"github.com/systmms/keyhold/internal/index"
	"github.com/systmms/keyhold/internal/vault"
)

// newVault loads the configuration and assembles a vault over the
// configured index file and credential store.
func newVault(cfg *config.Config) (*vault.Vault, error) {
	if err := cfg.Load(); err != nil {
		return nil, err
	}
	return vault.New(index.NewFileStore(cfg.IndexPath), cfg.KeyringStore(), cfg.Logger), nil
}

// printAmbiguity lists the candidate identifiers of an ambiguous query and
// asks for a tag. Ambiguity is an informational outcome: the command still
// exits zero, and nothing was touched.
func printAmbiguity(cfg *config.Config, key string, candidates []string) {
	if cfg.Quiet {
		return
	}
	fmt.Printf("Multiple entries match %q:\n", key)
	for _, id := range candidates {
		fmt.Printf("  * %s\n", id)
	}
	fmt.Println("Pass --tag to pick one.")
}

// say prints a human-readable status line unless quiet mode is on.
func say(cfg *config.Config, format string, args ...interface{}) {
	if cfg.Quiet {
		return
	}
	fmt.Printf(format+"\n", args...)
}
