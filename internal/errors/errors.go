// Package errors defines the error kinds surfaced by keyhold operations.
//
// The kinds are deliberately distinct: index file problems (IndexError),
// secure store problems (StoreError), clipboard problems (ClipboardError)
// and broken internal invariants (InternalError) must stay tellable apart
// by callers, since each one implies a different recovery path. Ambiguous
// queries are not errors at all and are modeled as resolution outcomes in
// the resolve package.
package errors

import (
	"fmt"
	"strings"
)

// UserError is an error shown to the user with actionable context.
type UserError struct {
	Message    string
	Suggestion string
	Details    string
	Err        error
}

func (e UserError) Error() string {
	var parts []string

	if e.Message != "" {
		parts = append(parts, e.Message)
	} else if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	if e.Details != "" {
		parts = append(parts, "\n  Details: "+e.Details)
	}

	if e.Suggestion != "" {
		parts = append(parts, "\n  💡 Try: "+e.Suggestion)
	}

	return strings.Join(parts, "")
}

func (e UserError) Unwrap() error {
	return e.Err
}

// IndexError reports that the persisted index could not be read or written.
// The index file is the only durable state keyhold owns, so these are fatal
// for the invocation.
type IndexError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e IndexError) Error() string {
	msg := fmt.Sprintf("failed to %s key index %s", e.Op, e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e IndexError) Unwrap() error {
	return e.Err
}

// StoreError reports a failed operation against the platform credential
// store, including not-found lookups. On a failed set the index is never
// updated; on a failed delete the index entry is kept.
type StoreError struct {
	Op         string // "set", "get" or "delete"
	Identifier string
	Err        error
}

func (e StoreError) Error() string {
	msg := fmt.Sprintf("credential store %s failed for %q", e.Op, e.Identifier)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if s := storeSuggestion(e.Err); s != "" {
		msg += "\n  💡 Try: " + s
	}
	return msg
}

func (e StoreError) Unwrap() error {
	return e.Err
}

// ClipboardError reports a clipboard initialization or write failure. It
// never rolls back the get that preceded it; the secret was already
// retrieved and possibly displayed.
type ClipboardError struct {
	Err error
}

func (e ClipboardError) Error() string {
	msg := "failed to copy to clipboard"
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e ClipboardError) Unwrap() error {
	return e.Err
}

// InternalError reports a broken invariant, such as an entry that resolved
// uniquely and then vanished from the index within the same invocation.
// These indicate bugs, not recoverable conditions, but they still return
// through the normal error path instead of panicking.
type InternalError struct {
	Message string
}

func (e InternalError) Error() string {
	return "internal error: " + e.Message
}

// storeSuggestion maps common platform credential store failures to an
// actionable hint, in the spirit of CLI users who have never seen a
// Secret Service daemon.
func storeSuggestion(err error) string {
	if err == nil {
		return ""
	}
	errStr := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errStr, "not found"):
		return "Check the identifier with 'keyhold list'"
	case strings.Contains(errStr, "org.freedesktop.secrets"),
		strings.Contains(errStr, "secret service"):
		return "Start a Secret Service daemon (gnome-keyring or KWallet) and retry"
	case strings.Contains(errStr, "dbus"):
		return "Ensure a D-Bus session is running (headless sessions need dbus-run-session)"
	case strings.Contains(errStr, "unsupported platform"):
		return "keyhold needs macOS Keychain, Windows Credential Manager, or a Linux Secret Service"
	case strings.Contains(errStr, "locked"):
		return "Unlock your keychain and retry"
	}

	return ""
}
