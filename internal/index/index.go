// Package index maintains the local catalog of registered (key, tag) pairs.
//
// The index is a convenience catalog, not a source of truth: every entry is
// expected to correspond to one credential in the platform store under the
// identifier derived from it, but drift introduced out-of-band is not
// reconciled here. Get and remove flows surface whatever the store reports.
package index

import (
	"sort"
)

// Entry is a registered (key, tag) pair. An empty tag means the entry is
// untagged; the CLI cannot express an empty-string tag distinct from an
// absent one.
type Entry struct {
	Key string `json:"key"`
	Tag string `json:"tag,omitempty"`
}

// Identifier derives the flat string used to address the platform
// credential store: "key:tag" when tagged, the bare key otherwise.
//
// Keys and tags share one namespace by construction: the identifier for
// key "a:b" with no tag collides with key "a" tagged "b". The delimiter is
// not escaped; this matches the on-store format and is a documented
// property, not something resolved silently.
func (e Entry) Identifier() string {
	if e.Tag == "" {
		return e.Key
	}
	return e.Key + ":" + e.Tag
}

func (e Entry) String() string {
	return e.Identifier()
}

// ListFilter restricts List output. The zero value matches every entry.
type ListFilter struct {
	Tag      string // only entries with exactly this tag
	Untagged bool   // only entries without a tag
}

func (f ListFilter) matches(e Entry) bool {
	switch {
	case f.Untagged:
		return e.Tag == ""
	case f.Tag != "":
		return e.Tag == f.Tag
	default:
		return true
	}
}

// Index is a duplicate-free set of entries. The zero value is usable.
type Index struct {
	entries []Entry
}

// New creates an index from the given entries, collapsing duplicates.
func New(entries ...Entry) *Index {
	idx := &Index{}
	for _, e := range entries {
		idx.Add(e)
	}
	return idx
}

// Len returns the number of registered entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Contains reports whether the exact pair is registered.
func (idx *Index) Contains(e Entry) bool {
	for _, have := range idx.entries {
		if have == e {
			return true
		}
	}
	return false
}

// Add registers the pair. It reports whether the index changed; adding an
// already-present entry is a no-op and signals that no persistence is
// needed.
func (idx *Index) Add(e Entry) bool {
	if idx.Contains(e) {
		return false
	}
	idx.entries = append(idx.entries, e)
	return true
}

// Remove unregisters the exact pair, reporting whether it was present.
func (idx *Index) Remove(e Entry) bool {
	for i, have := range idx.entries {
		if have == e {
			idx.entries = append(idx.entries[:i], idx.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Matches returns the entries whose key equals the query, additionally
// restricted to exactly tag when one is supplied. Results are ordered by
// identifier so ambiguity reports render stably.
func (idx *Index) Matches(key, tag string) []Entry {
	var out []Entry
	for _, e := range idx.entries {
		if e.Key != key {
			continue
		}
		if tag != "" && e.Tag != tag {
			continue
		}
		out = append(out, e)
	}
	sortByIdentifier(out)
	return out
}

// Filter returns the entries accepted by f, ordered by identifier.
func (idx *Index) Filter(f ListFilter) []Entry {
	var out []Entry
	for _, e := range idx.entries {
		if f.matches(e) {
			out = append(out, e)
		}
	}
	sortByIdentifier(out)
	return out
}

// Entries returns all entries ordered by identifier.
func (idx *Index) Entries() []Entry {
	return idx.Filter(ListFilter{})
}

func sortByIdentifier(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Identifier() < entries[j].Identifier()
	})
}
