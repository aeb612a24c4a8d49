package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/systmms/keyhold/internal/clipboard"
	"github.com/systmms/keyhold/internal/config"
	"github.com/systmms/keyhold/internal/keyring"
	"github.com/systmms/keyhold/internal/logging"
)

// testConfig builds a config backed by a temp index file and in-memory
// keyring/clipboard fakes, so no test touches the real platform keychain.
func testConfig(t *testing.T) (*config.Config, *keyring.Memory, *clipboard.Memory) {
	t.Helper()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "keyhold.yaml")
	indexPath := filepath.Join(dir, "keys.json")
	require.NoError(t, os.WriteFile(configPath, []byte("index: "+indexPath+"\n"), 0o600))

	secrets := keyring.NewMemory()
	clip := clipboard.NewMemory()

	cfg := &config.Config{
		Path:      configPath,
		Logger:    logging.New(false, true),
		Account:   "tester",
		Keyring:   secrets,
		Clipboard: clip,
	}
	return cfg, secrets, clip
}

// captureStdout runs fn while capturing everything written to stdout.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String(), runErr
}

// runCommand executes a command with args and returns its stdout.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		args = []string{} // nil would make cobra fall back to os.Args
	}
	return captureStdout(t, func() error {
		cmd.SetArgs(args)
		return cmd.Execute()
	})
}
