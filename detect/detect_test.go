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

package detect

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	wordsense "github.com/ianlewis/go-wordsense"
	"github.com/ianlewis/go-wordsense/dataset"
	"github.com/ianlewis/go-wordsense/internal/testutil"
)

// fakeLooker returns fixed hits per word and counts calls.
type fakeLooker struct {
	hits  map[string][]wordsense.Hit
	calls map[string]int
}

func (f *fakeLooker) LookupAll(word string) []wordsense.Hit {
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[word]++
	return f.hits[word]
}

type memStore map[string]*dataset.Data

func (s memStore) FetchDataset(_ context.Context, language string) (*dataset.Data, error) {
	if d, ok := s[language]; ok {
		return d, nil
	}
	return nil, wordsense.ErrNotFound
}

func hit(lang string, n int) wordsense.Hit {
	h := wordsense.Hit{Language: lang}
	for range n {
		h.Entries = append(h.Entries, &dataset.SynsetEntry{})
	}
	return h
}

func TestDetectWord(t *testing.T) {
	t.Parallel()

	f := &fakeLooker{
		hits: map[string][]wordsense.Hit{
			"casa": {hit("it", 2), hit("es", 3), hit("pt", 3)},
			"cane": {hit("it", 1), hit("en", 1)},
			"dog":  {hit("en", 4)},
		},
	}
	d, err := New(f, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := map[string]string{
		"casa": "es",
		"CASA": "es",
		"cane": "it",
		"dog":  "en",
		"zzz":  "",
		"":     "",
	}
	for word, want := range tests {
		if diff := cmp.Diff(want, d.DetectWord(word)); diff != "" {
			t.Errorf("DetectWord(%q) (-want, +got):\n%s", word, diff)
		}
	}

	// "casa" was looked up once, then cached. Misses are cached too.
	if diff := cmp.Diff(1, f.calls["casa"]); diff != "" {
		t.Errorf("calls(casa) (-want, +got):\n%s", diff)
	}
	d.DetectWord("zzz")
	if diff := cmp.Diff(1, f.calls["zzz"]); diff != "" {
		t.Errorf("calls(zzz) (-want, +got):\n%s", diff)
	}
	if _, ok := f.calls[""]; ok {
		t.Errorf("empty word looked up")
	}
}

func TestDetectWord_eviction(t *testing.T) {
	t.Parallel()

	f := &fakeLooker{
		hits: map[string][]wordsense.Hit{
			"aaa": {hit("en", 1)},
			"bbb": {hit("en", 1)},
			"ccc": {hit("en", 1)},
		},
	}
	d, err := New(f, &Options{CacheSize: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	d.DetectWord("aaa")
	d.DetectWord("bbb")
	// Reading "aaa" does not protect it from eviction.
	d.DetectWord("aaa")
	d.DetectWord("ccc")

	if diff := cmp.Diff(2, d.CacheLen()); diff != "" {
		t.Fatalf("CacheLen (-want, +got):\n%s", diff)
	}

	d.DetectWord("bbb")
	d.DetectWord("aaa")
	want := map[string]int{"aaa": 2, "bbb": 1, "ccc": 1}
	if diff := cmp.Diff(want, f.calls); diff != "" {
		t.Errorf("calls (-want, +got):\n%s", diff)
	}
}

func TestClearCache(t *testing.T) {
	t.Parallel()

	f := &fakeLooker{hits: map[string][]wordsense.Hit{"dog": {hit("en", 1)}}}
	d, err := New(f, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	d.DetectWord("dog")
	d.ClearCache()
	if diff := cmp.Diff(0, d.CacheLen()); diff != "" {
		t.Fatalf("CacheLen (-want, +got):\n%s", diff)
	}
	d.DetectWord("dog")
	if diff := cmp.Diff(2, f.calls["dog"]); diff != "" {
		t.Errorf("calls (-want, +got):\n%s", diff)
	}
}

func TestDetectText(t *testing.T) {
	t.Parallel()

	f := &fakeLooker{
		hits: map[string][]wordsense.Hit{
			"the":   {hit("en", 1)},
			"dog":   {hit("en", 1)},
			"barks": {hit("en", 1)},
			"casa":  {hit("it", 1)},
			"cane":  {hit("it", 1)},
			"perro": {hit("es", 1)},
			"gato":  {hit("es", 1)},
			"ab":    {hit("fr", 5)},
		},
	}

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "majority",
			text:     "the dog barks at la casa",
			expected: "en",
		},
		{
			name:     "punctuation stripped",
			text:     "«casa», cane! dog.",
			expected: "it",
		},
		{
			name:     "tie goes to first seen",
			text:     "perro casa gato cane",
			expected: "es",
		},
		{
			name:     "short tokens skipped",
			text:     "ab ab ab casa",
			expected: "it",
		},
		{
			name:     "no hits",
			text:     "zzz yyy",
			expected: "de",
		},
		{
			name:     "empty",
			text:     "   ",
			expected: "de",
		},
		{
			name: "sample limit",
			// Ten unknown tokens come before the known ones.
			text:     "aaa bbb ccc ddd eee fff ggg hhh iii jjj casa cane",
			expected: "de",
		},
		{
			name:     "tokens without letters do not count",
			text:     "123 456 789 0000 11111 222 333 444 555 666 casa",
			expected: "it",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			// Each subtest gets its own looker so call counts are not shared.
			d, err := New(&fakeLooker{hits: f.hits}, nil)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if diff := cmp.Diff(test.expected, d.DetectText(test.text, "de")); diff != "" {
				t.Errorf("DetectText(%q) (-want, +got):\n%s", test.text, diff)
			}
		})
	}
}

func TestDetectScript(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		lang string
		ok   bool
	}{
		{text: "猫", lang: Chinese, ok: true},
		{text: "我爱你", lang: Chinese, ok: true},
		{text: "ねこ", lang: Japanese, ok: true},
		{text: "カタカナ", lang: Japanese, ok: true},
		// Kanji mixed with kana is Japanese.
		{text: "猫が好き", lang: Japanese, ok: true},
		{text: "cat", lang: "", ok: false},
		{text: "", lang: "", ok: false},
		{text: "кошка", lang: "", ok: false},
	}

	for _, test := range tests {
		lang, ok := DetectScript(test.text)
		if diff := cmp.Diff(test.ok, ok); diff != "" {
			t.Errorf("DetectScript(%q) ok (-want, +got):\n%s", test.text, diff)
		}
		if diff := cmp.Diff(test.lang, lang); diff != "" {
			t.Errorf("DetectScript(%q) (-want, +got):\n%s", test.text, diff)
		}
	}
}

func TestDetector_engine(t *testing.T) {
	t.Parallel()

	e := wordsense.New(memStore{
		"en": testutil.DogDataset(),
		"it": testutil.Dataset("it", testutil.Entry("S1", "a dog", "cane")),
	}, nil)
	for _, l := range []string{"en", "it"} {
		if _, err := e.Load(context.Background(), l); err != nil {
			t.Fatalf("Load(%q): %v", l, err)
		}
	}

	d, err := New(e, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if diff := cmp.Diff("en", d.DetectWord("dogs")); diff != "" {
		t.Errorf("DetectWord(dogs) (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("it", d.Detect("il cane", "en")); diff != "" {
		t.Errorf("Detect (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(Chinese, d.Detect("猫 dog", "en")); diff != "" {
		t.Errorf("Detect (-want, +got):\n%s", diff)
	}
}
