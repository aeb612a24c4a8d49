// Package keyring abstracts the platform secure credential store.
//
// The store only ever sees flat string identifiers; it has no concept of
// keys versus tags. Every identifier is additionally scoped by a fixed
// service name and the invoking user's account name, both supplied once at
// process start.
package keyring

import "errors"

// ErrNotFound is returned when no credential exists under an identifier.
var ErrNotFound = errors.New("credential not found")

// Store is the secure credential store capability consumed by keyhold.
type Store interface {
	Set(identifier, secret string) error
	Get(identifier string) (string, error)
	Delete(identifier string) error
}
