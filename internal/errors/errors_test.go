package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError_Format(t *testing.T) {
	err := UserError{
		Message:    "Key name is required",
		Suggestion: "Pass a key name, e.g. 'keyhold set github hunter2'",
	}

	msg := err.Error()
	assert.Contains(t, msg, "Key name is required")
	assert.Contains(t, msg, "💡 Try: Pass a key name")
}

func TestUserError_FallsBackToWrapped(t *testing.T) {
	inner := stderrors.New("permission denied")
	err := UserError{Err: inner}

	assert.Contains(t, err.Error(), "permission denied")
	assert.ErrorIs(t, err, inner)
}

func TestIndexError(t *testing.T) {
	inner := stderrors.New("unexpected end of JSON input")
	err := IndexError{Op: "load", Path: "keys.json", Err: inner}

	assert.Contains(t, err.Error(), "failed to load key index keys.json")
	assert.Contains(t, err.Error(), "unexpected end of JSON input")
	assert.ErrorIs(t, err, inner)
}

func TestStoreError(t *testing.T) {
	inner := stderrors.New("secret not found in keyring")
	err := StoreError{Op: "get", Identifier: "db:prod", Err: inner}

	msg := err.Error()
	assert.Contains(t, msg, `credential store get failed for "db:prod"`)
	assert.Contains(t, msg, "💡 Try: Check the identifier with 'keyhold list'")
	assert.ErrorIs(t, err, inner)
}

func TestStoreError_PlatformSuggestions(t *testing.T) {
	tests := []struct {
		name     string
		inner    string
		expected string
	}{
		{"secret service missing", "The name org.freedesktop.secrets was not provided", "Secret Service daemon"},
		{"no dbus session", "dbus: session bus is not available", "D-Bus session"},
		{"unsupported platform", "unsupported platform", "macOS Keychain"},
		{"locked keychain", "keychain is locked", "Unlock your keychain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := StoreError{Op: "set", Identifier: "db", Err: stderrors.New(tt.inner)}
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestClipboardError(t *testing.T) {
	inner := stderrors.New("no clipboard utilities available")
	err := ClipboardError{Err: inner}

	assert.Contains(t, err.Error(), "failed to copy to clipboard")
	assert.ErrorIs(t, err, inner)
}

func TestInternalError(t *testing.T) {
	err := InternalError{Message: "resolved entry missing from index"}
	assert.Equal(t, "internal error: resolved entry missing from index", err.Error())
}
