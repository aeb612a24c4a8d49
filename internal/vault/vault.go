// Package vault implements the keyhold operation flows: each invocation
// loads the index fresh, resolves the query, acts against the platform
// credential store, and persists the index only when a store operation
// succeeded.
package vault

import (
	kherrors "github.com/systmms/keyhold/internal/errors"
	"github.com/systmms/keyhold/internal/index"
	"github.com/systmms/keyhold/internal/keyring"
	"github.com/systmms/keyhold/internal/logging"
	"github.com/systmms/keyhold/internal/resolve"
	"github.com/systmms/keyhold/internal/secure"
)

// Vault wires the injected capabilities together. It holds no state across
// operations; the index file is the only durable state.
type Vault struct {
	store   index.Store
	secrets keyring.Store
	logger  *logging.Logger
}

// New creates a vault over the given index store and credential store.
func New(store index.Store, secrets keyring.Store, logger *logging.Logger) *Vault {
	return &Vault{store: store, secrets: secrets, logger: logger}
}

// Set writes the secret to the credential store under the identifier
// derived from (key, tag) and registers the pair. The index is only
// touched after the store write succeeds, and only persisted when the pair
// was not already registered.
func (v *Vault) Set(key, tag string, secret *secure.Value) (index.Entry, error) {
	entry := index.Entry{Key: key, Tag: tag}

	idx, err := v.store.Load()
	if err != nil {
		return entry, err
	}

	plaintext, destroy, err := secret.Open()
	if err != nil {
		return entry, kherrors.InternalError{Message: "sealed secret could not be opened"}
	}
	err = v.secrets.Set(entry.Identifier(), plaintext)
	destroy()
	if err != nil {
		return entry, err
	}

	if idx.Add(entry) {
		v.logger.Debug("registering %s in index", entry)
		if err := v.store.Save(idx); err != nil {
			return entry, err
		}
	} else {
		v.logger.Debug("%s already registered, index unchanged", entry)
	}
	return entry, nil
}

// GetResult is the outcome of a Get. Exactly one of Secret and Candidates
// is populated: Candidates lists the matching identifiers when the query
// was ambiguous.
type GetResult struct {
	Entry      index.Entry
	Secret     *secure.Value
	Candidates []string
}

// Ambiguous reports whether the query needs a disambiguating tag.
func (r GetResult) Ambiguous() bool {
	return len(r.Candidates) > 0
}

// Get resolves (key, tag) and retrieves the secret. An ambiguous bare-key
// query is a successful informational outcome with no store call. When
// nothing is registered under the key, the store is consulted anyway: the
// index tolerates drift, so the store's answer is authoritative.
func (v *Vault) Get(key, tag string) (GetResult, error) {
	idx, err := v.store.Load()
	if err != nil {
		return GetResult{}, err
	}

	res := resolve.ForReadOrRemove(idx, key, tag)
	if res.Kind == resolve.Ambiguous {
		v.logger.Debug("%q matches %d entries", key, len(res.Candidates))
		return GetResult{Candidates: resolve.CandidateIdentifiers(res)}, nil
	}

	identifier := res.Entry.Identifier()
	v.logger.Debug("resolved %q to identifier %s", key, identifier)

	plaintext, err := v.secrets.Get(identifier)
	if err != nil {
		return GetResult{}, err
	}
	return GetResult{Entry: res.Entry, Secret: secure.SealString(plaintext)}, nil
}

// RemoveResult is the outcome of a Remove. Removed, NotFound and
// Candidates are mutually exclusive; NotFound and ambiguity are successful
// no-op outcomes, not errors.
type RemoveResult struct {
	Entry      index.Entry
	Removed    bool
	NotFound   bool
	Candidates []string
}

// Ambiguous reports whether the query needs a disambiguating tag.
func (r RemoveResult) Ambiguous() bool {
	return len(r.Candidates) > 0
}

// Remove resolves (key, tag) and deletes the credential. A bare key with
// no registered match is a no-op without contacting the store; a supplied
// tag targets the exact pair and lets the store decide existence. The
// index entry survives any store failure so the pointer to a still-present
// secret is never lost.
func (v *Vault) Remove(key, tag string) (RemoveResult, error) {
	idx, err := v.store.Load()
	if err != nil {
		return RemoveResult{}, err
	}

	res := resolve.ForReadOrRemove(idx, key, tag)
	switch res.Kind {
	case resolve.Ambiguous:
		return RemoveResult{Candidates: resolve.CandidateIdentifiers(res)}, nil
	case resolve.NotFound:
		return RemoveResult{Entry: res.Entry, NotFound: true}, nil
	}

	identifier := res.Entry.Identifier()
	if err := v.secrets.Delete(identifier); err != nil {
		return RemoveResult{}, err
	}

	if idx.Remove(res.Entry) {
		if err := v.store.Save(idx); err != nil {
			return RemoveResult{}, err
		}
	} else if tag == "" {
		// The entry resolved uniquely from this very index, so it cannot
		// be missing now.
		return RemoveResult{}, kherrors.InternalError{
			Message: "resolved entry " + identifier + " vanished from index",
		}
	} else {
		v.logger.Debug("%s was not registered locally, index unchanged", identifier)
	}

	return RemoveResult{Entry: res.Entry, Removed: true}, nil
}

// List returns the registered entries accepted by the filter. The store is
// never contacted; the catalog answers from local state alone.
func (v *Vault) List(filter index.ListFilter) ([]index.Entry, error) {
	idx, err := v.store.Load()
	if err != nil {
		return nil, err
	}
	return idx.Filter(filter), nil
}
