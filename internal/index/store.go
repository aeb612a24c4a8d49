package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	kherrors "github.com/systmms/keyhold/internal/errors"
)

// Store loads and saves the persisted index. There is no partial-update
// API: callers load, mutate in memory, and save the full index. Two
// concurrent invocations therefore race load-mutate-save and the last save
// wins; acceptable for a single-user local tool.
type Store interface {
	// Load returns the persisted index, or an empty index when no
	// persisted state exists yet.
	Load() (*Index, error)

	// Save durably replaces the persisted state with exactly the given
	// index.
	Save(*Index) error
}

// document is the on-disk JSON shape.
type document struct {
	Entries []Entry `json:"entries"`
}

// documentSchema is the structural contract for the persisted index. A file
// that exists but does not match it is a load failure, not an empty index.
const documentSchema = `{
  "type": "object",
  "required": ["entries"],
  "additionalProperties": false,
  "properties": {
    "entries": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["key"],
        "additionalProperties": false,
        "properties": {
          "key": {"type": "string", "minLength": 1},
          "tag": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

// FileStore persists the index as a JSON document on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the persisted index. A missing file yields an empty index;
// an unreadable or structurally invalid file is an IndexError. Duplicate
// pairs in the file collapse to one entry.
func (s *FileStore) Load() (*Index, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, kherrors.IndexError{Op: "load", Path: s.path, Err: err}
	}

	if err := validateDocument(data); err != nil {
		return nil, kherrors.IndexError{Op: "load", Path: s.path, Err: err}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, kherrors.IndexError{Op: "load", Path: s.path, Err: err}
	}

	return New(doc.Entries...), nil
}

// Save replaces the persisted state with exactly the given index. The
// document is written to a temp file in the same directory and renamed
// into place, so a failed write never leaves a truncated index behind.
func (s *FileStore) Save(idx *Index) error {
	doc := document{Entries: idx.Entries()}
	if doc.Entries == nil {
		doc.Entries = []Entry{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return kherrors.IndexError{Op: "save", Path: s.path, Err: err}
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".keyhold-index-*")
	if err != nil {
		return kherrors.IndexError{Op: "save", Path: s.path, Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return kherrors.IndexError{Op: "save", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return kherrors.IndexError{Op: "save", Path: s.path, Err: err}
	}

	// The index holds no secrets, but there is no reason to share it.
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		_ = os.Remove(tmpPath)
		return kherrors.IndexError{Op: "save", Path: s.path, Err: err}
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return kherrors.IndexError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

func validateDocument(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(documentSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("index is not valid JSON: %w", err)
	}

	if !result.Valid() {
		var msgs []string
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("index has unexpected structure:\n  - %s", strings.Join(msgs, "\n  - "))
	}
	return nil
}

// MemoryStore is an in-memory Store for tests. Load returns a copy, so
// mutations are invisible until saved, matching file-backed behavior.
type MemoryStore struct {
	index   *Index
	LoadErr error
	SaveErr error
	Saves   int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{index: New()}
}

func (s *MemoryStore) Load() (*Index, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return New(s.index.Entries()...), nil
}

func (s *MemoryStore) Save(idx *Index) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.index = New(idx.Entries()...)
	s.Saves++
	return nil
}
