package keyring

import (
	"fmt"
	"strings"
	"sync"

	kherrors "github.com/systmms/keyhold/internal/errors"
)

// Memory is an in-memory Store for tests. Errors can be injected per
// operation to exercise failure paths.
type Memory struct {
	mu      sync.RWMutex
	secrets map[string]string

	SetErr    error
	GetErr    error
	DeleteErr error
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{secrets: make(map[string]string)}
}

func (m *Memory) Set(identifier, secret string) error {
	if m.SetErr != nil {
		return kherrors.StoreError{Op: "set", Identifier: identifier, Err: m.SetErr}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	// Copy: callers are free to wipe the secret's backing memory after
	// the call returns.
	m.secrets[identifier] = strings.Clone(secret)
	return nil
}

func (m *Memory) Get(identifier string) (string, error) {
	if m.GetErr != nil {
		return "", kherrors.StoreError{Op: "get", Identifier: identifier, Err: m.GetErr}
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	secret, ok := m.secrets[identifier]
	if !ok {
		return "", kherrors.StoreError{
			Op:         "get",
			Identifier: identifier,
			Err:        fmt.Errorf("%w: %s", ErrNotFound, identifier),
		}
	}
	return secret, nil
}

func (m *Memory) Delete(identifier string) error {
	if m.DeleteErr != nil {
		return kherrors.StoreError{Op: "delete", Identifier: identifier, Err: m.DeleteErr}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.secrets[identifier]; !ok {
		return kherrors.StoreError{
			Op:         "delete",
			Identifier: identifier,
			Err:        fmt.Errorf("%w: %s", ErrNotFound, identifier),
		}
	}
	delete(m.secrets, identifier)
	return nil
}

// Has reports whether a credential exists under the identifier.
func (m *Memory) Has(identifier string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.secrets[identifier]
	return ok
}

// Len returns the number of stored credentials.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.secrets)
}

var _ Store = (*Memory)(nil)
