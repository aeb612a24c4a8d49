package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/keyhold/internal/clipboard"
	"github.com/systmms/keyhold/internal/keyring"
	"github.com/systmms/keyhold/internal/logging"
)

func TestConfig_DefaultsWhenFileMissing(t *testing.T) {
	cfg := &Config{
		Path:   filepath.Join(t.TempDir(), "keyhold.yaml"),
		Logger: logging.New(false, true),
	}

	require.NoError(t, cfg.Load())
	assert.Equal(t, DefaultIndexPath, cfg.IndexPath)
	assert.Equal(t, DefaultService, cfg.Service)
	assert.NotEmpty(t, cfg.Account)
}

func TestConfig_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keyhold.yaml")
	data := "index: /var/lib/keyhold/keys.json\nservice: keyhold-work\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg := &Config{Path: path, Logger: logging.New(false, true)}
	require.NoError(t, cfg.Load())

	assert.Equal(t, "/var/lib/keyhold/keys.json", cfg.IndexPath)
	assert.Equal(t, "keyhold-work", cfg.Service)
}

func TestConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keyhold.yaml")
	require.NoError(t, os.WriteFile(path, []byte("service: custom\n"), 0o600))

	cfg := &Config{Path: path, Logger: logging.New(false, true)}
	require.NoError(t, cfg.Load())

	assert.Equal(t, DefaultIndexPath, cfg.IndexPath)
	assert.Equal(t, "custom", cfg.Service)
}

func TestConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keyhold.yaml")
	require.NoError(t, os.WriteFile(path, []byte("index: [unclosed\n"), 0o600))

	cfg := &Config{Path: path, Logger: logging.New(false, true)}
	err := cfg.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid YAML")
}

func TestConfig_LoadIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keyhold.yaml")
	require.NoError(t, os.WriteFile(path, []byte("service: first\n"), 0o600))

	cfg := &Config{Path: path, Logger: logging.New(false, true)}
	require.NoError(t, cfg.Load())

	// A rewrite between loads is not picked up within one invocation.
	require.NoError(t, os.WriteFile(path, []byte("service: second\n"), 0o600))
	require.NoError(t, cfg.Load())
	assert.Equal(t, "first", cfg.Service)
}

func TestConfig_CapabilityOverrides(t *testing.T) {
	mem := keyring.NewMemory()
	clip := clipboard.NewMemory()
	cfg := &Config{Keyring: mem, Clipboard: clip}

	assert.Same(t, mem, cfg.KeyringStore())
	assert.Same(t, clip, cfg.ClipboardWriter())
}

func TestConfig_SystemCapabilitiesByDefault(t *testing.T) {
	cfg := &Config{Service: "keyhold", Account: "tester"}

	assert.IsType(t, &keyring.System{}, cfg.KeyringStore())
	assert.IsType(t, &clipboard.System{}, cfg.ClipboardWriter())
}
