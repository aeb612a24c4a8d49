// Package config holds the per-invocation runtime configuration assembled
// from global flags and the optional keyhold.yaml file.
package config

import (
	"fmt"
	"os"
	"os/user"

	"gopkg.in/yaml.v3"

	"github.com/systmms/keyhold/internal/clipboard"
	kherrors "github.com/systmms/keyhold/internal/errors"
	"github.com/systmms/keyhold/internal/keyring"
	"github.com/systmms/keyhold/internal/logging"
)

const (
	// DefaultIndexPath is where the key index lives unless keyhold.yaml
	// overrides it.
	DefaultIndexPath = "keys.json"

	// DefaultService scopes every credential written to the platform
	// store.
	DefaultService = "keyhold"
)

// Config is populated in the root command's PersistentPreRun and threaded
// through every command constructor.
type Config struct {
	Path   string // keyhold.yaml location
	Logger *logging.Logger
	Quiet  bool

	// Resolved settings, after Load.
	IndexPath string
	Service   string
	Account   string

	// Capability overrides for tests. When nil the platform
	// implementations are used.
	Keyring   keyring.Store
	Clipboard clipboard.Writer

	loaded bool
}

// fileSettings is the keyhold.yaml shape. All fields are optional.
type fileSettings struct {
	Index   string `yaml:"index"`
	Service string `yaml:"service"`
}

// Load resolves the effective settings. A missing keyhold.yaml is fine;
// an unreadable or invalid one is an error. Load is idempotent within one
// invocation.
func (c *Config) Load() error {
	if c.loaded {
		return nil
	}

	c.IndexPath = DefaultIndexPath
	c.Service = DefaultService

	if c.Account == "" {
		c.Account = accountName()
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			return kherrors.UserError{
				Message:    fmt.Sprintf("Failed to read config file %s", c.Path),
				Suggestion: "Check file permissions, or remove the file to use defaults",
				Err:        err,
			}
		}
	} else {
		var settings fileSettings
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return kherrors.UserError{
				Message:    fmt.Sprintf("Invalid YAML in config file %s", c.Path),
				Suggestion: "Check for indentation errors and missing quotes",
				Err:        err,
			}
		}
		if settings.Index != "" {
			c.IndexPath = settings.Index
		}
		if settings.Service != "" {
			c.Service = settings.Service
		}
	}

	c.loaded = true
	return nil
}

// KeyringStore returns the configured credential store capability.
func (c *Config) KeyringStore() keyring.Store {
	if c.Keyring != nil {
		return c.Keyring
	}
	return keyring.NewSystem(c.Service, c.Account)
}

// ClipboardWriter returns the configured clipboard capability.
func (c *Config) ClipboardWriter() clipboard.Writer {
	if c.Clipboard != nil {
		return c.Clipboard
	}
	return clipboard.NewSystem()
}

// accountName resolves the invoking user's account name, falling back to
// $USER when the lookup fails (static binaries without cgo user lookups).
func accountName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
