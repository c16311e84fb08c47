// Copyright 2025 Ian Lewis
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

// Package index implements the in-memory lookup index for one language.
//
// An Index is built once from a dataset and is never modified afterwards. It
// holds an exact map of lower cased words and, when the language has a
// stemmer, a stem map from each stem to the words sharing it.
package index

import (
	"strings"
	"unicode/utf8"

	"github.com/ianlewis/go-wordsense/dataset"
	"github.com/ianlewis/go-wordsense/internal/folding"
	"github.com/ianlewis/go-wordsense/internal/ordered"
	"github.com/ianlewis/go-wordsense/stem"
)

// Options are options for an Index.
type Options struct {
	// Stemmer returns the stemmer for a language. ok is false when the
	// language has no stemmer.
	Stemmer func(language string) (f stem.Func, ok bool)
}

// DefaultOptions is the default options for an Index.
var DefaultOptions = &Options{
	Stemmer: stem.ForLanguage,
}

// Match is the result of a successful lookup.
type Match struct {
	// Word is the index key that matched.
	Word string

	// Entries are the entries filed under Word.
	Entries []*dataset.SynsetEntry

	// Stemmed is true when Word was found through the stem map.
	Stemmed bool
}

// Index is the lookup index of one language.
type Index struct {
	language string
	version  string

	// exact maps lower cased words to entries in dataset order.
	exact *ordered.Map[[]*dataset.SynsetEntry]

	// stemFunc is nil if the language has no stemmer.
	stemFunc stem.Func

	// stems maps a stem to the words sharing it in first-seen order.
	stems map[string][]string
}

// New builds the index for d. d must not be modified after New returns.
func New(d *dataset.Data, options *Options) *Index {
	if options == nil {
		options = DefaultOptions
	}
	stemmer := DefaultOptions.Stemmer
	if options.Stemmer != nil {
		stemmer = options.Stemmer
	}

	idx := &Index{
		language: d.Language,
		version:  d.Version,
		exact:    ordered.New[[]*dataset.SynsetEntry](d.Index.Len()),
	}

	for w, entries := range d.Index.All() {
		// Keys are normally lower cased already. Keys that fold to the same
		// value are joined in order.
		ordered.Append(idx.exact, folding.Key(w), entries...)
	}

	if f, ok := stemmer(d.Language); ok && f != nil {
		idx.stemFunc = f
		idx.stems = make(map[string][]string, idx.exact.Len())
		for _, w := range idx.exact.Keys() {
			s := f(w)
			idx.stems[s] = append(idx.stems[s], w)
		}
	}

	return idx
}

// Language returns the language of the index.
func (idx *Index) Language() string {
	return idx.language
}

// Version returns the source version of the indexed dataset.
func (idx *Index) Version() string {
	return idx.version
}

// Len returns the number of words in the index.
func (idx *Index) Len() int {
	return idx.exact.Len()
}

// HasStemmer returns true if the index has a stem map.
func (idx *Index) HasStemmer() bool {
	return idx.stemFunc != nil
}

// Get returns the entries for the exact lower cased form of word.
func (idx *Index) Get(word string) ([]*dataset.SynsetEntry, bool) {
	return idx.exact.Get(folding.Key(word))
}

// Lookup returns the entries for word. The exact map is tried first. On a miss
// the stem map is consulted and the shortest candidate word sharing the
// query's stem is used, ties going to the word seen first.
func (idx *Index) Lookup(word string) (Match, bool) {
	key := folding.Key(word)
	if key == "" {
		return Match{}, false
	}
	if entries, ok := idx.exact.Get(key); ok {
		return Match{Word: key, Entries: entries}, true
	}

	if idx.stemFunc == nil {
		return Match{}, false
	}

	var best string
	bestLen := -1
	for _, c := range idx.stems[idx.stemFunc(key)] {
		if _, ok := idx.exact.Get(c); !ok {
			continue
		}
		if n := utf8.RuneCountInString(c); bestLen < 0 || n < bestLen {
			best, bestLen = c, n
		}
	}
	if bestLen < 0 {
		return Match{}, false
	}

	entries, _ := idx.exact.Get(best)
	return Match{Word: best, Entries: entries, Stemmed: true}, true
}

// Prefix returns up to limit words starting with prefix, compared case
// insensitively, in index order. A limit of zero or less means no limit.
// Whitespace at either end of prefix is significant.
func (idx *Index) Prefix(prefix string, limit int) []string {
	p := folding.PrefixKey(prefix)
	var words []string
	for _, w := range idx.exact.Keys() {
		if limit > 0 && len(words) >= limit {
			break
		}
		if strings.HasPrefix(w, p) {
			words = append(words, w)
		}
	}
	return words
}
