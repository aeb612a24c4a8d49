package keyring

import (
	"errors"
	"fmt"

	zkeyring "github.com/zalando/go-keyring"

	kherrors "github.com/systmms/keyhold/internal/errors"
)

// System stores credentials in the platform credential store: macOS
// Keychain, Windows Credential Manager, or a Linux Secret Service
// implementation (gnome-keyring, KWallet).
type System struct {
	service string
	account string
}

// NewSystem creates a store scoped to the given service and OS account
// name.
func NewSystem(service, account string) *System {
	return &System{service: service, account: account}
}

// user builds the per-credential lookup attribute. The platform API is
// two-dimensional (service, user), so the account scope is folded into the
// user attribute alongside the identifier.
func (s *System) user(identifier string) string {
	return s.account + "/" + identifier
}

func (s *System) Set(identifier, secret string) error {
	if err := zkeyring.Set(s.service, s.user(identifier), secret); err != nil {
		return kherrors.StoreError{Op: "set", Identifier: identifier, Err: err}
	}
	return nil
}

func (s *System) Get(identifier string) (string, error) {
	secret, err := zkeyring.Get(s.service, s.user(identifier))
	if err != nil {
		if errors.Is(err, zkeyring.ErrNotFound) {
			err = fmt.Errorf("%w: %s", ErrNotFound, identifier)
		}
		return "", kherrors.StoreError{Op: "get", Identifier: identifier, Err: err}
	}
	return secret, nil
}

func (s *System) Delete(identifier string) error {
	if err := zkeyring.Delete(s.service, s.user(identifier)); err != nil {
		if errors.Is(err, zkeyring.ErrNotFound) {
			err = fmt.Errorf("%w: %s", ErrNotFound, identifier)
		}
		return kherrors.StoreError{Op: "delete", Identifier: identifier, Err: err}
	}
	return nil
}

// Check probes the platform store with a throwaway credential. Used by
// doctor to report availability without touching real entries.
func (s *System) Check() error {
	const probe = "keyhold-doctor-probe"
	if err := zkeyring.Set(s.service, s.user(probe), "ok"); err != nil {
		return kherrors.StoreError{Op: "set", Identifier: probe, Err: err}
	}
	if err := zkeyring.Delete(s.service, s.user(probe)); err != nil {
		return kherrors.StoreError{Op: "delete", Identifier: probe, Err: err}
	}
	return nil
}

var _ Store = (*System)(nil)
