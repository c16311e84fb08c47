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

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	wordsense "github.com/ianlewis/go-wordsense"
	"github.com/ianlewis/go-wordsense/dataset"
	"github.com/ianlewis/go-wordsense/internal/testutil"
	"github.com/ianlewis/go-wordsense/lmf"
	"github.com/ianlewis/go-wordsense/merge"
)

// memFetcher serves documents keyed by "id:version".
type memFetcher map[string][]byte

func (f memFetcher) FetchRawSource(_ context.Context, src wordsense.Source) (io.ReadCloser, error) {
	b, ok := f[src.String()]
	if !ok {
		return nil, wordsense.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

// italian returns a one entry Italian lexicon for "casa" with the given
// definition.
func italian(id, definition string) []byte {
	s := testutil.Synset{ID: "omw-it-03544360-n", PartOfSpeech: "n"}
	if definition != "" {
		s.Definitions = []string{definition}
	}
	return testutil.MakeLMF(testutil.Lexicon{
		ID:       id,
		Language: "it",
		Version:  "1.4",
		Entries: []testutil.LexicalEntry{
			{
				Lemma:  testutil.Lemma{WrittenForm: "casa", PartOfSpeech: "n"},
				Senses: []testutil.Sense{{ID: id + "-casa-1", Synset: "omw-it-03544360-n"}},
			},
		},
		Synsets: []testutil.Synset{s},
	})
}

func definitions(t *testing.T, d *dataset.Data, word string) []string {
	t.Helper()
	entries, ok := d.Index.Get(word)
	if !ok {
		t.Fatalf("missing %q", word)
	}
	var defs []string
	for _, e := range entries {
		defs = append(defs, e.Definition)
	}
	return defs
}

func TestBuild(t *testing.T) {
	t.Parallel()

	f := memFetcher{
		"oewn:2025":  []byte(testutil.DogLMF),
		"omw-it:1.4": italian("omw-it", ""),
		"extra:1.0":  italian("extra", "edificio"),
	}
	p := New(f, nil)

	t.Run("single source", func(t *testing.T) {
		t.Parallel()

		res, err := p.Build(context.Background(), "en", []wordsense.Source{{ID: "oewn", Version: "2025"}}, nil)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		if diff := cmp.Diff("2025", res.Data.Version); diff != "" {
			t.Errorf("Version (-want, +got):\n%s", diff)
		}
		if diff := cmp.Diff(9, res.Data.Index.Len()); diff != "" {
			t.Errorf("words (-want, +got):\n%s", diff)
		}
		if diff := cmp.Diff(0, res.Backfilled); diff != "" {
			t.Errorf("Backfilled (-want, +got):\n%s", diff)
		}
	})

	t.Run("merge sources", func(t *testing.T) {
		t.Parallel()

		res, err := p.Build(context.Background(), "it", []wordsense.Source{
			{ID: "omw-it", Version: "1.4"},
			{ID: "extra", Version: "1.0"},
		}, nil)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		if diff := cmp.Diff([]string{"edificio"}, definitions(t, res.Data, "casa")); diff != "" {
			t.Errorf("casa (-want, +got):\n%s", diff)
		}
		if diff := cmp.Diff("it", res.Data.Language); diff != "" {
			t.Errorf("Language (-want, +got):\n%s", diff)
		}
		if diff := cmp.Diff(2, len(res.Sources)); diff != "" {
			t.Fatalf("Sources (-want, +got):\n%s", diff)
		}
		if diff := cmp.Diff(1, res.Sources[1].Stats.Synsets); diff != "" {
			t.Errorf("Stats (-want, +got):\n%s", diff)
		}
	})

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()

		res, err := p.Build(context.Background(), "it", []wordsense.Source{
			{ID: "missing", Version: "1.0"},
			{ID: "extra", Version: "1.0"},
		}, nil)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		if !res.Sources[0].Missing || res.Sources[1].Missing {
			t.Errorf("Missing: got %v, %v", res.Sources[0].Missing, res.Sources[1].Missing)
		}
		if diff := cmp.Diff([]string{"edificio"}, definitions(t, res.Data, "casa")); diff != "" {
			t.Errorf("casa (-want, +got):\n%s", diff)
		}
	})

	t.Run("backfill", func(t *testing.T) {
		t.Parallel()

		en, err := lmf.ParseDataset(strings.NewReader(testutil.DogLMF), "en")
		if err != nil {
			t.Fatalf("ParseDataset: %v", err)
		}
		fallback := testutil.Dataset("en", testutil.Entry("oewn-03544360-n", "a dwelling", "house"))

		res, err := p.Build(context.Background(), "it", []wordsense.Source{{ID: "omw-it", Version: "1.4"}}, fallback)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		if diff := cmp.Diff(1, res.Backfilled); diff != "" {
			t.Errorf("Backfilled (-want, +got):\n%s", diff)
		}
		entries, _ := res.Data.Index.Get("casa")
		if !entries[0].Fallback || entries[0].Definition != "a dwelling" {
			t.Errorf("casa: got %+v", entries[0])
		}

		// A fallback in the same language is not used.
		res, err = p.Build(context.Background(), "en", []wordsense.Source{{ID: "oewn", Version: "2025"}}, en)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		if diff := cmp.Diff(0, res.Backfilled); diff != "" {
			t.Errorf("Backfilled (-want, +got):\n%s", diff)
		}
	})
}

func TestBuild_errors(t *testing.T) {
	t.Parallel()

	f := memFetcher{
		"oewn:2025": []byte(testutil.DogLMF),
		"bad:1.0":   []byte(`<LexicalResource><Lexicon id="bad">`),
		"empty:1.0": testutil.MakeLMF(testutil.Lexicon{ID: "empty", Language: "it"}),
	}
	p := New(f, &Options{Concurrency: 1})

	tests := []struct {
		name     string
		ctx      func() context.Context
		sources  []wordsense.Source
		expected error
	}{
		{
			name:     "malformed",
			sources:  []wordsense.Source{{ID: "oewn", Version: "2025"}, {ID: "bad", Version: "1.0"}},
			expected: lmf.ErrMalformed,
		},
		{
			name:     "no data",
			sources:  []wordsense.Source{{ID: "empty", Version: "1.0"}, {ID: "missing", Version: "1.0"}},
			expected: merge.ErrNoData,
		},
		{
			name:     "no sources",
			expected: merge.ErrNoData,
		},
		{
			name: "canceled",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			sources:  []wordsense.Source{{ID: "oewn", Version: "2025"}},
			expected: context.Canceled,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			if test.ctx != nil {
				ctx = test.ctx()
			}
			res, err := p.Build(ctx, "en", test.sources, nil)
			if !errors.Is(err, test.expected) {
				t.Fatalf("Build: want %v, got %v", test.expected, err)
			}
			if res != nil {
				t.Fatalf("Build: returned a partial result")
			}
		})
	}
}

func TestBuildLanguage(t *testing.T) {
	t.Parallel()

	p := New(memFetcher{"oewn:2025": []byte(testutil.DogLMF)}, nil)

	res, err := p.BuildLanguage(context.Background(), "en", nil)
	if err != nil {
		t.Fatalf("BuildLanguage: %v", err)
	}
	if diff := cmp.Diff(2, len(definitions(t, res.Data, "dog"))); diff != "" {
		t.Errorf("dog (-want, +got):\n%s", diff)
	}

	_, err = p.BuildLanguage(context.Background(), "xx", nil)
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("BuildLanguage: want %v, got %v", ErrUnknownLanguage, err)
	}
}
