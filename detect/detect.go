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

// Package detect implements best-effort language identification over the
// loaded dictionaries of an engine.
package detect

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"

	wordsense "github.com/ianlewis/go-wordsense"
	"github.com/ianlewis/go-wordsense/internal/folding"
)

const (
	// DefaultCacheSize is the default number of cached word results.
	DefaultCacheSize = 1000

	// MinTokenLength is the minimum length, in letters, of a token used by
	// DetectText.
	MinTokenLength = 3

	// MaxSample is the maximum number of tokens used by DetectText.
	MaxSample = 10

	// Japanese and Chinese are the languages returned by DetectScript.
	Japanese = "ja"
	Chinese  = "zh"
)

// Looker looks a word up in every loaded language.
type Looker interface {
	LookupAll(word string) []wordsense.Hit
}

// Options are options for a Detector.
type Options struct {
	// CacheSize is the number of word results kept.
	CacheSize int
}

// DefaultOptions is the default options for a Detector.
var DefaultOptions = &Options{
	CacheSize: DefaultCacheSize,
}

// Detector identifies the language of words and text.
//
// Word results are cached. The cache holds a fixed number of words and drops
// the oldest inserted word first. Reads do not refresh a word's position.
type Detector struct {
	looker Looker
	cache  *lru.Cache[string, string]
}

// New returns a new Detector.
func New(looker Looker, options *Options) (*Detector, error) {
	if options == nil {
		options = DefaultOptions
	}
	size := options.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("creating detection cache: %w", err)
	}
	return &Detector{
		looker: looker,
		cache:  cache,
	}, nil
}

// DetectWord returns the language in which word has the most senses. Ties go
// to the language loaded first. It returns an empty string if the word is not
// found in any language.
func (d *Detector) DetectWord(word string) string {
	key := folding.Key(word)
	if key == "" {
		return ""
	}
	// Peek does not update recency.
	if lang, ok := d.cache.Peek(key); ok {
		return lang
	}

	var (
		best  string
		count int
	)
	for _, h := range d.looker.LookupAll(key) {
		if len(h.Entries) > count {
			best, count = h.Language, len(h.Entries)
		}
	}

	d.cache.ContainsOrAdd(key, best)
	return best
}

// DetectText returns the most common language among the first words of text.
// Tokens are split on whitespace and stripped of non-letters, and tokens
// shorter than MinTokenLength are skipped. At most MaxSample tokens are
// checked. Ties go to the language seen first. defaultLanguage is returned if
// no token is found.
func (d *Detector) DetectText(text, defaultLanguage string) string {
	var (
		order  []string
		tally  = map[string]int{}
		sample int
	)
	for _, field := range strings.Fields(text) {
		if sample == MaxSample {
			break
		}
		token := letters(field)
		if utf8.RuneCountInString(token) < MinTokenLength {
			continue
		}
		sample++

		lang := d.DetectWord(token)
		if lang == "" {
			continue
		}
		if tally[lang] == 0 {
			order = append(order, lang)
		}
		tally[lang]++
	}

	best, count := defaultLanguage, 0
	for _, lang := range order {
		if tally[lang] > count {
			best, count = lang, tally[lang]
		}
	}
	return best
}

// Detect returns the script language of text if it has one and otherwise the
// result of DetectText.
func (d *Detector) Detect(text, defaultLanguage string) string {
	if lang, ok := DetectScript(text); ok {
		return lang
	}
	return d.DetectText(text, defaultLanguage)
}

// ClearCache empties the word cache. Results depend on the loaded languages
// so the cache should be cleared when they change.
func (d *Detector) ClearCache() {
	d.cache.Purge()
}

// CacheLen returns the number of cached words.
func (d *Detector) CacheLen() int {
	return d.cache.Len()
}

func letters(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, s)
}

// DetectScript returns a language based on the script of text alone. Text
// containing Hiragana or Katakana is Japanese. Otherwise text containing Han
// ideographs is Chinese. ok is false for any other text.
//
// Script is a stronger signal than dictionary lookups for these languages so
// callers should check it first.
func DetectScript(text string) (lang string, ok bool) {
	han := false
	for _, r := range text {
		if unicode.In(r, unicode.Hiragana, unicode.Katakana) {
			return Japanese, true
		}
		if unicode.Is(unicode.Han, r) {
			han = true
		}
	}
	if han {
		return Chinese, true
	}
	return "", false
}
