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

// Package stem maps language codes to stemming functions.
//
// A language without a registered function has no stemmer. That is not an
// error, lookups for it are simply exact match only.
package stem

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/kljensen/snowball/english"
	"github.com/kljensen/snowball/french"
	"github.com/kljensen/snowball/russian"
	"github.com/kljensen/snowball/spanish"
	"github.com/kljensen/snowball/swedish"
)

// Func returns the stem of a lower cased word.
type Func func(word string) string

var (
	mu    sync.RWMutex
	funcs = map[string]Func{
		"en": snowball(english.Stem),
		"es": snowball(spanish.Stem),
		"fr": snowball(french.Stem),
		"ru": snowball(russian.Stem),
		"sv": snowball(swedish.Stem),
	}
)

// snowball adapts a snowball stemmer. Stop words are stemmed too so that every
// key gets a stem.
func snowball(f func(string, bool) string) Func {
	return func(word string) string {
		return f(word, true)
	}
}

// base returns the primary subtag of a language code, e.g. "en" for "en-GB".
func base(language string) string {
	language = strings.ToLower(language)
	if i := strings.IndexAny(language, "-_"); i >= 0 {
		return language[:i]
	}
	return language
}

// ForLanguage returns the stemmer for language. Region and script subtags are
// ignored. ok is false if the language has no stemmer.
func ForLanguage(language string) (f Func, ok bool) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok = funcs[strings.ToLower(language)]
	if !ok {
		f, ok = funcs[base(language)]
	}
	return f, ok
}

// Register sets the stemmer for language, replacing any existing one. A nil
// f removes the stemmer.
func Register(language string, f Func) {
	mu.Lock()
	defer mu.Unlock()

	language = strings.ToLower(language)
	if f == nil {
		delete(funcs, language)
		return
	}
	funcs[language] = f
}

// Languages returns the sorted codes of languages with a stemmer.
func Languages() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(funcs))
}
