package mxml_marks

import (
	"encoding/hex"
	"fmt"
	"sort"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"
	"github.com/zeebo/blake3"

	"github.com/ewhalen/mxml_marks/marks"
)

const RESOLVE_LRU_SZ = 128

// Entry is one declaration-ordered row of a vocabulary: an external token
// and the kind of mark it constructs.
type Entry struct {
	Token string
	Kind  marks.Kind
}

// ReverseEntry is one row of the reverse dispatch table: a kind and the
// canonical token emitted for it.
type ReverseEntry struct {
	Kind  marks.Kind
	Token string
}

type OverrideAction int

const (
	// DropEntry removes a kind from the reverse table.
	DropEntry OverrideAction = iota
	// MoveToEnd repositions a kind at the end of the reverse table with a
	// forced token, inserting it when absent.
	MoveToEnd
)

// Override is one curated correction to the reverse table, applied after the
// specificity sort. Note records why the correction exists.
type Override struct {
	Action OverrideAction
	Kind   marks.Kind
	Token  string
	Note   string
}

// MarkMapper is the bidirectional dispatch table for one vocabulary. Forward
// maps tokens to kinds; the reverse table is ordered most-specific-first so
// resolution returns the most specific applicable token. Both directions are
// immutable once built and safe for concurrent readers; the cache is locked
// and the hit/miss counters are updated atomically. Read the counters with
// CacheStats when other goroutines may be resolving.
type MarkMapper struct {
	Name      string
	Forward   map[string]marks.Kind
	reverse   []ReverseEntry
	Cache     *lru.ARCCache
	LruHits   int64
	LruMisses int64
	LruSize   int
}

// NewMapper builds the dispatch table from declaration-ordered entries.
// The reverse table keeps the first token seen per kind, is stable-sorted by
// descending hierarchy depth so declaration order breaks ties, and is then
// reshaped by the overrides in their declared sequence. A duplicate token or
// an override that cannot apply is a configuration error and fails the whole
// build.
func NewMapper(
	name string,
	entries []Entry,
	overrides []Override,
) (*MarkMapper, error) {
	forward := make(map[string]marks.Kind, len(entries))
	reverse := make([]ReverseEntry, 0, len(entries))
	reversed := make(map[marks.Kind]bool, len(entries))
	for _, entry := range entries {
		if !entry.Kind.Valid() {
			return nil, fmt.Errorf(
				"vocabulary %s: token %q maps to an unknown kind",
				name, entry.Token)
		}
		if _, dup := forward[entry.Token]; dup {
			return nil, fmt.Errorf("vocabulary %s: duplicate token %q",
				name, entry.Token)
		}
		forward[entry.Token] = entry.Kind
		if !reversed[entry.Kind] {
			reversed[entry.Kind] = true
			reverse = append(reverse, ReverseEntry{entry.Kind, entry.Token})
		}
	}
	sort.SliceStable(reverse, func(i, j int) bool {
		return reverse[i].Kind.Depth() > reverse[j].Kind.Depth()
	})
	for _, override := range overrides {
		if !override.Kind.Valid() {
			return nil, fmt.Errorf("vocabulary %s: override names an unknown kind",
				name)
		}
		idx := -1
		for i := range reverse {
			if reverse[i].Kind == override.Kind {
				idx = i
				break
			}
		}
		switch override.Action {
		case DropEntry:
			if idx < 0 {
				return nil, fmt.Errorf(
					"vocabulary %s: drop override names absent kind %s",
					name, override.Kind)
			}
			reverse = append(reverse[:idx], reverse[idx+1:]...)
		case MoveToEnd:
			if override.Token == "" {
				return nil, fmt.Errorf(
					"vocabulary %s: move override for kind %s has no token",
					name, override.Kind)
			}
			if idx >= 0 {
				reverse = append(reverse[:idx], reverse[idx+1:]...)
			}
			reverse = append(reverse, ReverseEntry{override.Kind, override.Token})
		default:
			return nil, fmt.Errorf(
				"vocabulary %s: override for kind %s has unknown action %d",
				name, override.Kind, override.Action)
		}
	}

	cache, _ := lru.NewARC(RESOLVE_LRU_SZ)

	mapper := &MarkMapper{
		Name:    name,
		Forward: forward,
		reverse: reverse,
		Cache:   cache,
		LruSize: RESOLVE_LRU_SZ,
	}
	return mapper, nil
}

// KindFor looks a token up in the forward table.
func (mapper *MarkMapper) KindFor(token string) (marks.Kind, bool) {
	kind, ok := mapper.Forward[token]
	return kind, ok
}

// NewMark constructs the mark object for a token, or reports that the token
// is not in this vocabulary.
func (mapper *MarkMapper) NewMark(token string) (marks.Mark, bool) {
	kind, ok := mapper.Forward[token]
	if !ok {
		return nil, false
	}
	return marks.New(kind)
}

// TokenFor resolves the canonical token for a mark instance. The reverse
// table is walked in stored order and the first entry whose kind the mark is
// or descends from wins; a miss is an expected outcome, not an error.
func (mapper *MarkMapper) TokenFor(m marks.Mark) (string, bool) {
	if m == nil {
		return "", false
	}
	return mapper.TokenForKind(m.Kind())
}

// TokenForKind resolves the canonical token for a concrete kind.
// Resolutions, including misses, are memoized per kind.
func (mapper *MarkMapper) TokenForKind(kind marks.Kind) (string, bool) {
	if lookup, ok := mapper.Cache.Get(kind); ok {
		atomic.AddInt64(&mapper.LruHits, 1)
		token := lookup.(string)
		return token, token != ""
	}
	atomic.AddInt64(&mapper.LruMisses, 1)
	token := ""
	for _, entry := range mapper.reverse {
		if kind.Is(entry.Kind) {
			token = entry.Token
			break
		}
	}
	mapper.Cache.Add(kind, token)
	return token, token != ""
}

// CacheStats reads the resolution cache hit and miss counters atomically.
func (mapper *MarkMapper) CacheStats() (hits int64, misses int64) {
	return atomic.LoadInt64(&mapper.LruHits),
		atomic.LoadInt64(&mapper.LruMisses)
}

// ReverseEntries returns a copy of the reverse table in resolution order.
func (mapper *MarkMapper) ReverseEntries() []ReverseEntry {
	entries := make([]ReverseEntry, len(mapper.reverse))
	copy(entries, mapper.reverse)
	return entries
}

// Tokens returns every token of the vocabulary in reverse-table order
// followed by the forward-only tokens in lexical order.
func (mapper *MarkMapper) Tokens() []string {
	tokens := make([]string, 0, len(mapper.Forward))
	emitted := make(map[string]bool, len(mapper.Forward))
	for _, entry := range mapper.reverse {
		if _, forward := mapper.Forward[entry.Token]; forward &&
			!emitted[entry.Token] {
			emitted[entry.Token] = true
			tokens = append(tokens, entry.Token)
		}
	}
	rest := make([]string, 0, len(mapper.Forward)-len(tokens))
	for token := range mapper.Forward {
		if !emitted[token] {
			rest = append(rest, token)
		}
	}
	sort.Strings(rest)
	return append(tokens, rest...)
}

// Fingerprint digests the reverse-table iteration order. Two mappers built
// from the same entries and overrides always produce the same fingerprint.
func (mapper *MarkMapper) Fingerprint() string {
	data := make([]byte, 0, len(mapper.reverse)*24)
	for _, entry := range mapper.reverse {
		data = append(data, entry.Kind.String()...)
		data = append(data, 0)
		data = append(data, entry.Token...)
		data = append(data, 0)
	}
	digest := blake3.Sum256(data)
	return hex.EncodeToString(digest[:])
}
