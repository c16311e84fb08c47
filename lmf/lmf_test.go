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

package lmf_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-wordsense/dataset"
	"github.com/ianlewis/go-wordsense/internal/testutil"
	"github.com/ianlewis/go-wordsense/lmf"
)

func TestPartOfSpeech(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"n": dataset.Noun,
		"v": dataset.Verb,
		"a": dataset.Adjective,
		"s": dataset.Adjective,
		"r": dataset.Adverb,
		"x": "x",
		"":  "",
	}
	for code, want := range tests {
		if diff := cmp.Diff(want, lmf.PartOfSpeech(code)); diff != "" {
			t.Errorf("PartOfSpeech(%q) (-want, +got):\n%s", code, diff)
		}
	}
}

func TestParse_graph(t *testing.T) {
	t.Parallel()

	g, err := lmf.Parse(strings.NewReader(testutil.DogLMF))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if diff := cmp.Diff("oewn", g.ID); diff != "" {
		t.Errorf("ID (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("en", g.Language); diff != "" {
		t.Errorf("Language (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("2025", g.Version); diff != "" {
		t.Errorf("Version (-want, +got):\n%s", diff)
	}

	var ids []string
	for _, s := range g.Synsets() {
		ids = append(ids, s.ID)
	}
	want := []string{
		"oewn-02084071-n",
		"oewn-02083346-n",
		"oewn-01322604-n",
		"oewn-02085374-n",
		"oewn-02087551-n",
		"oewn-10114209-n",
		"oewn-99999999-n",
	}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("Synsets (-want, +got):\n%s", diff)
	}

	dog, ok := g.Synset("oewn-02084071-n")
	if !ok {
		t.Fatalf("Synset: missing oewn-02084071-n")
	}
	wantDog := &lmf.Synset{
		ID:           "oewn-02084071-n",
		PartOfSpeech: dataset.Noun,
		Definition: "a member of the genus Canis (probably descended from the common wolf) " +
			"that has been domesticated by man since prehistoric times",
		Examples: []string{"the dog barked all night"},
		Members: []string{
			"oewn-dog__1.05.00",
			"oewn-domestic_dog__1.05.00",
			"oewn-Canis_familiaris__1.05.00",
		},
		Hypernyms: []string{"oewn-02083346-n"},
		Hyponyms:  []string{"oewn-01322604-n", "oewn-02085374-n", "oewn-02087551-n"},
	}
	if diff := cmp.Diff(wantDog, dog); diff != "" {
		t.Errorf("Synset (-want, +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"dog", "domestic dog", "Canis familiaris"}, g.Words("oewn-02084071-n")); diff != "" {
		t.Errorf("Words (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"dog", "fellow"}, g.Words("oewn-10114209-n")); diff != "" {
		t.Errorf("Words (-want, +got):\n%s", diff)
	}
	if w, ok := g.SenseWord("oewn-Canis_familiaris__1.05.00"); !ok || w != "Canis familiaris" {
		t.Errorf("SenseWord: got %q, %v", w, ok)
	}

	man, _ := g.Synset("oewn-10114209-n")
	if diff := cmp.Diff("a man; informal", man.Definition); diff != "" {
		t.Errorf("first Definition with markup (-want, +got):\n%s", diff)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	d, err := lmf.ParseDataset(strings.NewReader(testutil.DogLMF), "")
	if err != nil {
		t.Fatalf("ParseDataset: %v", err)
	}

	if diff := cmp.Diff("en", d.Language); diff != "" {
		t.Errorf("Language (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("2025", d.Version); diff != "" {
		t.Errorf("Version (-want, +got):\n%s", diff)
	}

	wantWords := []string{
		"dog",
		"domestic dog",
		"canis familiaris",
		"canine",
		"canid",
		"puppy",
		"pup",
		"hound",
		"fellow",
	}
	if diff := cmp.Diff(wantWords, d.Index.Words()); diff != "" {
		t.Fatalf("Words (-want, +got):\n%s", diff)
	}

	dog, _ := d.Index.Get("dog")
	want := []*dataset.SynsetEntry{
		{
			SynsetID:     "oewn-02084071-n",
			PartOfSpeech: dataset.Noun,
			Definition: "a member of the genus Canis (probably descended from the common wolf) " +
				"that has been domesticated by man since prehistoric times",
			Examples:  []string{"the dog barked all night"},
			Synonyms:  []string{"dog", "domestic dog", "Canis familiaris"},
			Hypernyms: []string{"canine"},
			Hyponyms:  []string{"puppy", "pup", "hound"},
		},
		{
			SynsetID:     "oewn-10114209-n",
			PartOfSpeech: dataset.Noun,
			Definition:   "a man; informal",
			Examples:     []string{"you lucky dog"},
			Synonyms:     []string{"dog", "fellow"},
			Hypernyms:    []string{},
			Hyponyms:     []string{},
		},
	}
	if diff := cmp.Diff(want, dog); diff != "" {
		t.Fatalf("dog (-want, +got):\n%s", diff)
	}

	// The same entry is filed under every word of the synset.
	cf, _ := d.Index.Get("canis familiaris")
	if len(cf) != 1 || cf[0] != dog[0] {
		t.Fatalf("canis familiaris: entry is not shared with dog")
	}
	cf[0].Fallback = true
	if !dog[0].Fallback {
		t.Fatalf("mutation not visible under every key")
	}

	canine, _ := d.Index.Get("canine")
	if diff := cmp.Diff([]string{"dog"}, canine[0].Hyponyms); diff != "" {
		t.Errorf("canine hyponyms (-want, +got):\n%s", diff)
	}

	// Every entry contains its key among its synonyms.
	for w, entries := range d.Index.All() {
		for _, e := range entries {
			found := false
			for _, s := range e.Synonyms {
				if strings.EqualFold(s, w) {
					found = true
				}
			}
			if !found {
				t.Errorf("entry %s under %q lacks the word in %v", e.SynsetID, w, e.Synonyms)
			}
		}
	}
}

func TestResolve_language(t *testing.T) {
	t.Parallel()

	g, err := lmf.Parse(strings.NewReader(testutil.DogLMF))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff("en-GB", g.Resolve("en-GB").Language); diff != "" {
		t.Fatalf("Language (-want, +got):\n%s", diff)
	}
}

func TestParse_singleElements(t *testing.T) {
	t.Parallel()

	doc := testutil.MakeLMF(testutil.Lexicon{
		ID:       "omw-it",
		Language: "it",
		Entries: []testutil.LexicalEntry{
			{
				Lemma:  testutil.Lemma{WrittenForm: "Casa", PartOfSpeech: "n"},
				Senses: []testutil.Sense{{ID: "s1", Synset: "omw-it-03544360-n"}},
			},
		},
		Synsets: []testutil.Synset{
			{
				ID:          "omw-it-03544360-n",
				Definitions: []string{"edificio"},
				Examples:    []string{"una casa grande"},
				Relations:   []testutil.SynsetRelation{{RelType: "hypernym", Target: "omw-it-dangling-n"}},
			},
		},
	})

	d, err := lmf.ParseDataset(bytes.NewReader(doc), "it")
	if err != nil {
		t.Fatalf("ParseDataset: %v", err)
	}

	if diff := cmp.Diff(lmf.DefaultVersion, d.Version); diff != "" {
		t.Errorf("Version (-want, +got):\n%s", diff)
	}

	entries, ok := d.Index.Get("casa")
	if !ok {
		t.Fatalf("missing casa")
	}
	want := []*dataset.SynsetEntry{
		{
			SynsetID: "omw-it-03544360-n",
			// Inherited from the lemma.
			PartOfSpeech: dataset.Noun,
			Definition:   "edificio",
			Examples:     []string{"una casa grande"},
			Synonyms:     []string{"Casa"},
			Hypernyms:    []string{},
			Hyponyms:     []string{},
		},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Fatalf("casa (-want, +got):\n%s", diff)
	}
}

func TestResolve_limits(t *testing.T) {
	t.Parallel()

	lex := testutil.Lexicon{
		ID:       "test",
		Language: "en",
		Version:  "3",
		Entries: []testutil.LexicalEntry{
			{
				Lemma: testutil.Lemma{WrittenForm: "animal", PartOfSpeech: "n"},
				Senses: []testutil.Sense{
					{ID: "animal-1", Synset: "S0"},
				},
			},
			{
				// Two lemmas that fold to the same key.
				Lemma: testutil.Lemma{WrittenForm: "Animal", PartOfSpeech: "n"},
				Senses: []testutil.Sense{
					{ID: "Animal-1", Synset: "S0"},
				},
			},
		},
		Synsets: []testutil.Synset{
			// Empty examples are kept and count toward the limit.
			{
				ID:           "S0",
				PartOfSpeech: "n",
				Definitions:  []string{"a living organism"},
				Examples:     []string{"one", "", "two", "three"},
			},
		},
	}
	for i, w := range []string{"cat", "dog", "bird", "fish", "snake", "horse", "cow"} {
		id := "H" + string(rune('0'+i))
		lex.Entries = append(lex.Entries, testutil.LexicalEntry{
			Lemma:  testutil.Lemma{WrittenForm: w, PartOfSpeech: "n"},
			Senses: []testutil.Sense{{ID: w + "-1", Synset: id}},
		})
		lex.Synsets[0].Relations = append(lex.Synsets[0].Relations, testutil.SynsetRelation{
			RelType: "hyponym",
			Target:  id,
		})
	}
	// A dangling target and an instance relation, plus an ignored type.
	lex.Synsets[0].Relations = append([]testutil.SynsetRelation{
		{RelType: "hyponym", Target: "missing"},
		{RelType: "instance_hyponym", Target: "H6"},
		{RelType: "similar", Target: "H5"},
	}, lex.Synsets[0].Relations...)

	d, err := lmf.ParseDataset(bytes.NewReader(testutil.MakeLMF(lex)), "")
	if err != nil {
		t.Fatalf("ParseDataset: %v", err)
	}

	entries, _ := d.Index.Get("animal")
	if diff := cmp.Diff(1, len(entries)); diff != "" {
		t.Fatalf("animal entries (-want, +got):\n%s", diff)
	}
	e := entries[0]
	if diff := cmp.Diff([]string{"one", "", "two"}, e.Examples); diff != "" {
		t.Errorf("Examples (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"cow", "cat", "dog", "bird", "fish"}, e.Hyponyms); diff != "" {
		t.Errorf("Hyponyms (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"animal", "Animal"}, e.Synonyms); diff != "" {
		t.Errorf("Synonyms (-want, +got):\n%s", diff)
	}
}

func TestParse_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		expected error
	}{
		{
			name:     "empty",
			doc:      "",
			expected: lmf.ErrMissingResource,
		},
		{
			name:     "wrong root",
			doc:      `<Lexicon id="x" language="en" version="1"></Lexicon>`,
			expected: lmf.ErrMissingResource,
		},
		{
			name:     "no lexicon",
			doc:      `<LexicalResource></LexicalResource>`,
			expected: lmf.ErrMissingLexicon,
		},
		{
			name:     "unclosed",
			doc:      `<LexicalResource><Lexicon id="x">`,
			expected: lmf.ErrMalformed,
		},
		{
			name: "bad entry",
			doc: `<LexicalResource><Lexicon id="x">
				<LexicalEntry><Lemma writtenForm="a"></LexicalEntry>
			</Lexicon></LexicalResource>`,
			expected: lmf.ErrMalformed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			g, err := lmf.Parse(strings.NewReader(test.doc))
			if !errors.Is(err, test.expected) {
				t.Fatalf("Parse: want %v, got %v", test.expected, err)
			}
			if g != nil {
				t.Fatalf("Parse: returned a partial graph")
			}
		})
	}
}
