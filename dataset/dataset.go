// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dataset implements the resolved per-language word index and its
// JSON form.
//
// A dataset maps lower cased written forms to the ordered list of word senses
// (synset entries) the form participates in. The same *SynsetEntry is filed
// under every written form of its synset so that later updates, such as a
// backfilled definition, are visible under every key.
package dataset

import (
	"iter"
	"strings"

	"github.com/ianlewis/go-wordsense/internal/ordered"
)

// Parts of speech stored in SynsetEntry.PartOfSpeech.
const (
	Noun      = "noun"
	Verb      = "verb"
	Adjective = "adjective"
	Adverb    = "adverb"
)

// SynsetEntry is one word sense.
type SynsetEntry struct {
	// SynsetID is the stable external identifier of the synset.
	SynsetID string `json:"synset_id"`

	// PartOfSpeech is one of Noun, Verb, Adjective or Adverb, or the source's
	// code when it was not recognized.
	PartOfSpeech string `json:"pos"`

	// Definition may be empty.
	Definition string `json:"definition"`

	// Examples holds at most the first three examples of the synset.
	Examples []string `json:"examples"`

	// Synonyms holds every written form of the synset in source order, with
	// its original casing. It is never empty.
	Synonyms []string `json:"synonyms"`

	// Hypernyms and Hyponyms hold one representative word per related synset.
	Hypernyms []string `json:"hypernyms"`
	Hyponyms  []string `json:"hyponyms"`

	// Fallback is true when Definition was copied from another language's
	// dataset.
	Fallback bool `json:"fallback,omitempty"`
}

// String returns a human readable representation of the entry.
func (e *SynsetEntry) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(e.Synonyms, ", "))
	if e.PartOfSpeech != "" {
		b.WriteString(" (" + e.PartOfSpeech + ")")
	}
	b.WriteString("\n")
	if e.Definition != "" {
		b.WriteString("  " + e.Definition)
		if e.Fallback {
			b.WriteString(" [fallback]")
		}
		b.WriteString("\n")
	}
	for _, ex := range e.Examples {
		b.WriteString("  \"" + ex + "\"\n")
	}
	return b.String()
}

// Index is an insertion ordered map from lower cased word to entries. The zero
// value is an empty index.
type Index struct {
	m ordered.Map[[]*SynsetEntry]
}

// NewIndex returns an index with room for n words.
func NewIndex(n int) *Index {
	return &Index{m: *ordered.New[[]*SynsetEntry](n)}
}

// Len returns the number of words in the index.
func (idx *Index) Len() int {
	return idx.m.Len()
}

// Get returns the entries filed under word. word must already be a key, no
// folding is performed.
func (idx *Index) Get(word string) ([]*SynsetEntry, bool) {
	return idx.m.Get(word)
}

// Set replaces the entries filed under word.
func (idx *Index) Set(word string, entries []*SynsetEntry) {
	idx.m.Set(word, entries)
}

// Add appends entries to the list filed under word.
func (idx *Index) Add(word string, entries ...*SynsetEntry) {
	ordered.Append(&idx.m, word, entries...)
}

// Words returns the index keys in insertion order. The returned slice must not
// be modified.
func (idx *Index) Words() []string {
	return idx.m.Keys()
}

// All iterates over words and their entries in insertion order.
func (idx *Index) All() iter.Seq2[string, []*SynsetEntry] {
	return idx.m.All()
}

// Data is one language's resolved dataset.
type Data struct {
	// Version is the free-form source version.
	Version string `json:"version"`

	// Language is the language code of the dataset.
	Language string `json:"language"`

	// Index maps lower cased written forms to entries.
	Index Index `json:"index"`
}

// New returns an empty dataset.
func New(language, version string) *Data {
	return &Data{
		Version:  version,
		Language: language,
	}
}

// Empty returns true if the dataset has no words.
func (d *Data) Empty() bool {
	return d == nil || d.Index.Len() == 0
}

// Clone returns a copy of d with its own word lists. Entries are shared with d.
func (d *Data) Clone() *Data {
	c := &Data{
		Version:  d.Version,
		Language: d.Language,
		Index:    *NewIndex(d.Index.Len()),
	}
	for w, entries := range d.Index.All() {
		c.Index.Set(w, append([]*SynsetEntry(nil), entries...))
	}
	return c
}

// Stats summarizes a dataset.
type Stats struct {
	// Words is the number of index keys.
	Words int

	// Senses is the number of (word, entry) pairs.
	Senses int

	// Synsets is the number of distinct synset identifiers.
	Synsets int

	// Fallbacks is the number of distinct synsets whose definition was
	// backfilled.
	Fallbacks int
}

// Stats computes statistics for d.
func (d *Data) Stats() Stats {
	var s Stats
	seen := map[string]bool{}
	for _, entries := range d.Index.All() {
		s.Words++
		s.Senses += len(entries)
		for _, e := range entries {
			if seen[e.SynsetID] {
				continue
			}
			seen[e.SynsetID] = true
			s.Synsets++
			if e.Fallback {
				s.Fallbacks++
			}
		}
	}
	return s
}
