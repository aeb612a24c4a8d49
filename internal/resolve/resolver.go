// Package resolve turns a user query (key plus optional tag) and the
// current index contents into exactly one storage target, or reports why
// it cannot.
//
// Resolution outcomes are values, not errors: ambiguity is a legitimate
// answer that callers must branch on, never exceptional control flow.
package resolve

import (
	"github.com/systmms/keyhold/internal/index"
)

// Identifier derives the storage identifier for a key and optional tag:
// "key:tag" when a tag is present, the bare key otherwise. This is the only
// addressing format the platform credential store ever sees.
func Identifier(key, tag string) string {
	return index.Entry{Key: key, Tag: tag}.Identifier()
}

// Kind classifies a resolution outcome.
type Kind int

const (
	// Unique means exactly one target entry was determined.
	Unique Kind = iota

	// Ambiguous means a bare-key query matched more than one entry. The
	// caller must retry with a tag; candidates are never ranked and one is
	// never picked silently.
	Ambiguous

	// NotFound means no registered entry matched. Read flows may still
	// consult the credential store for the derived identifier, since the
	// index tolerates drift; remove flows treat this as a no-op.
	NotFound
)

// Resolution is the outcome of resolving a query against the index.
type Resolution struct {
	Kind Kind

	// Entry is the resolved target for Unique outcomes. For NotFound it
	// carries the queried (key, tag) pair so callers can still derive an
	// identifier.
	Entry index.Entry

	// Candidates holds every matching entry for Ambiguous outcomes,
	// ordered by identifier.
	Candidates []index.Entry
}

// ForReadOrRemove resolves a get or remove query.
//
// A supplied tag makes resolution unambiguous by construction: the target
// is exactly (key, tag) whether or not it is currently registered, and
// existence is decided by the subsequent store call. Without a tag, every
// entry sharing the key is a candidate; two or more candidates demand
// explicit disambiguation.
func ForReadOrRemove(idx *index.Index, key, tag string) Resolution {
	if tag != "" {
		return Resolution{Kind: Unique, Entry: index.Entry{Key: key, Tag: tag}}
	}

	candidates := idx.Matches(key, "")
	switch len(candidates) {
	case 0:
		return Resolution{Kind: NotFound, Entry: index.Entry{Key: key}}
	case 1:
		return Resolution{Kind: Unique, Entry: candidates[0]}
	default:
		return Resolution{Kind: Ambiguous, Candidates: candidates}
	}
}

// CandidateIdentifiers renders the candidate list of an ambiguous
// resolution as storage identifiers.
func CandidateIdentifiers(r Resolution) []string {
	ids := make([]string, 0, len(r.Candidates))
	for _, e := range r.Candidates {
		ids = append(ids, e.Identifier())
	}
	return ids
}
