// Package clipboard abstracts the system clipboard behind a small writer
// interface so command flows can be tested without a display server.
package clipboard

import (
	"strings"
	"sync"

	"github.com/atotto/clipboard"

	kherrors "github.com/systmms/keyhold/internal/errors"
)

// Writer places text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// System writes to the OS clipboard.
type System struct{}

// NewSystem creates a writer backed by the OS clipboard.
func NewSystem() *System {
	return &System{}
}

func (s *System) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return kherrors.ClipboardError{Err: err}
	}
	return nil
}

// Available reports whether a clipboard is usable in this session.
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// Memory records writes for tests.
type Memory struct {
	mu       sync.Mutex
	last     string
	writes   int
	WriteErr error
}

// NewMemory creates an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) WriteText(text string) error {
	if m.WriteErr != nil {
		return kherrors.ClipboardError{Err: m.WriteErr}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	// Copy: callers are free to wipe the text's backing memory after the
	// call returns.
	m.last = strings.Clone(text)
	m.writes++
	return nil
}

// Last returns the most recently written text.
func (m *Memory) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Writes returns the number of successful writes.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

var (
	_ Writer = (*System)(nil)
	_ Writer = (*Memory)(nil)
)
