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

package wordsense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/ianlewis/go-wordsense/dataset"
	"github.com/ianlewis/go-wordsense/index"
)

// ErrNotFound indicates that a store has no dataset for a language.
var ErrNotFound = errors.New("dataset not found")

// Store fetches persisted datasets.
type Store interface {
	// FetchDataset returns the dataset for language. It returns an error
	// wrapping ErrNotFound if the store has no dataset for the language.
	FetchDataset(ctx context.Context, language string) (*dataset.Data, error)
}

// Options are options for an Engine.
type Options struct {
	// Index are the options used to build each language's index.
	Index *index.Options

	// Logger is used to log loads and unloads. The query path does not log.
	Logger *slog.Logger
}

// DefaultOptions is the default options for an Engine.
var DefaultOptions = &Options{
	Index: index.DefaultOptions,
}

// Hit is the result of a lookup in one language.
type Hit struct {
	// Language is the language the word was found in.
	Language string

	// Word is the index key that matched.
	Word string

	// Entries are the word's senses.
	Entries []*dataset.SynsetEntry

	// Stemmed is true if the word was found through stem fallback.
	Stemmed bool
}

// snapshot is the immutable set of loaded indexes.
type snapshot struct {
	// languages in load order.
	languages []string
	indexes   map[string]*index.Index
}

var emptySnapshot = &snapshot{indexes: map[string]*index.Index{}}

func (s *snapshot) with(idx *index.Index) *snapshot {
	lang := normLanguage(idx.Language())
	n := &snapshot{
		languages: slices.Clone(s.languages),
		indexes:   make(map[string]*index.Index, len(s.indexes)+1),
	}
	for l, i := range s.indexes {
		n.indexes[l] = i
	}
	if _, ok := n.indexes[lang]; !ok {
		n.languages = append(n.languages, lang)
	}
	n.indexes[lang] = idx
	return n
}

func (s *snapshot) without(lang string) *snapshot {
	n := &snapshot{
		indexes: make(map[string]*index.Index, len(s.indexes)),
	}
	for _, l := range s.languages {
		if l == lang {
			continue
		}
		n.languages = append(n.languages, l)
		n.indexes[l] = s.indexes[l]
	}
	return n
}

func normLanguage(language string) string {
	return strings.ToLower(strings.TrimSpace(language))
}

// Engine serves lookups over the loaded languages.
//
// Lookups read an immutable snapshot and never block. Load and Unload build a
// new snapshot and publish it atomically so a concurrent lookup sees either
// the old or the new set of languages.
type Engine struct {
	store        Store
	indexOptions *index.Options
	logger       *slog.Logger

	// mu serializes publishing snapshots.
	mu      sync.Mutex
	current atomic.Pointer[snapshot]

	// loads deduplicates concurrent loads of one language.
	loads singleflight.Group
}

// New returns a new Engine that loads datasets from store.
func New(store Store, options *Options) *Engine {
	if options == nil {
		options = DefaultOptions
	}

	e := &Engine{
		store:        store,
		indexOptions: DefaultOptions.Index,
		logger:       options.Logger,
	}
	if options.Index != nil {
		e.indexOptions = options.Index
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	e.current.Store(emptySnapshot)
	return e
}

func (e *Engine) snapshot() *snapshot {
	return e.current.Load()
}

// Load loads the dataset for language and makes it available to lookups. It
// returns true if the language is loaded. Loading a language that is already
// loaded does nothing.
//
// If the store has no dataset for the language Load returns false and a nil
// error. Other store errors are returned.
//
// Concurrent loads of one language share a single fetch. The fetch is not
// canceled by any one caller; each caller stops waiting when its own ctx is
// done and gets ctx's error.
func (e *Engine) Load(ctx context.Context, language string) (bool, error) {
	lang := normLanguage(language)
	if lang == "" {
		return false, nil
	}
	if e.IsLoaded(lang) {
		return true, nil
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}

	fetchCtx := context.WithoutCancel(ctx)
	ch := e.loads.DoChan(lang, func() (any, error) {
		if e.IsLoaded(lang) {
			return true, nil
		}

		d, err := e.store.FetchDataset(fetchCtx, lang)
		if errors.Is(err, ErrNotFound) {
			e.logger.Debug("dataset not found", "language", lang)
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("loading %q: %w", lang, err)
		}
		if d == nil {
			return false, nil
		}

		// The index is keyed by the requested language regardless of the
		// language recorded in the dataset.
		data := *d
		data.Language = lang
		idx := index.New(&data, e.indexOptions)

		e.mu.Lock()
		e.current.Store(e.snapshot().with(idx))
		e.mu.Unlock()

		e.logger.Info("loaded language",
			"language", lang,
			"version", idx.Version(),
			"words", idx.Len(),
			"stemmer", idx.HasStemmer(),
		)
		return true, nil
	})

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return false, r.Err
		}
		return r.Val.(bool), nil
	}
}

// Unload removes language. Later lookups in the language miss.
func (e *Engine) Unload(language string) {
	lang := normLanguage(language)

	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.snapshot()
	if _, ok := s.indexes[lang]; !ok {
		return
	}
	e.current.Store(s.without(lang))
	e.logger.Info("unloaded language", "language", lang)
}

// UnloadAll removes every language.
func (e *Engine) UnloadAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.current.Store(emptySnapshot)
	e.logger.Info("unloaded all languages")
}

// IsLoaded returns true if language is loaded.
func (e *Engine) IsLoaded(language string) bool {
	_, ok := e.snapshot().indexes[normLanguage(language)]
	return ok
}

// LoadedLanguages returns the loaded languages in load order.
func (e *Engine) LoadedLanguages() []string {
	return slices.Clone(e.snapshot().languages)
}

// Index returns the index for language.
func (e *Engine) Index(language string) (*index.Index, bool) {
	idx, ok := e.snapshot().indexes[normLanguage(language)]
	return idx, ok
}

// LanguageName returns the display name of a language code. It returns the
// code itself if the name is unknown.
func (e *Engine) LanguageName(code string) string {
	return LanguageName(code)
}

// Lookup returns the senses of word in language. The exact form is tried
// first, then the stem fallback. ok is false if the word is not found or the
// language is not loaded.
func (e *Engine) Lookup(word, language string) (entries []*dataset.SynsetEntry, ok bool) {
	h, ok := e.LookupHit(word, language)
	return h.Entries, ok
}

// LookupHit is like Lookup but also reports which key matched.
func (e *Engine) LookupHit(word, language string) (Hit, bool) {
	lang := normLanguage(language)
	idx, ok := e.snapshot().indexes[lang]
	if !ok {
		return Hit{}, false
	}
	return lookup(idx, lang, word)
}

func lookup(idx *index.Index, lang, word string) (Hit, bool) {
	m, ok := idx.Lookup(word)
	if !ok {
		return Hit{}, false
	}
	return Hit{
		Language: lang,
		Word:     m.Word,
		Entries:  m.Entries,
		Stemmed:  m.Stemmed,
	}, true
}

// LookupAll looks word up in every loaded language. Only languages with a hit
// are returned, in load order.
func (e *Engine) LookupAll(word string) []Hit {
	s := e.snapshot()
	var hits []Hit
	for _, lang := range s.languages {
		if h, ok := lookup(s.indexes[lang], lang, word); ok {
			hits = append(hits, h)
		}
	}
	return hits
}

// PrefixSearch returns up to limit words in language starting with prefix.
// Words are returned in index order, not sorted.
func (e *Engine) PrefixSearch(prefix, language string, limit int) []string {
	idx, ok := e.snapshot().indexes[normLanguage(language)]
	if !ok {
		return nil
	}
	return idx.Prefix(prefix, limit)
}
