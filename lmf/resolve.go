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

package lmf

import (
	"io"

	"github.com/ianlewis/go-wordsense/dataset"
	"github.com/ianlewis/go-wordsense/internal/folding"
)

const (
	// MaxExamples is the number of examples kept per entry.
	MaxExamples = 3

	// MaxRelated is the number of hypernym or hyponym words kept per entry.
	MaxRelated = 5
)

// Resolve projects the graph into a dataset for language. If language is
// empty the language of the first lexicon is used.
//
// One entry is created per synset, in document order, and filed under the
// lower cased form of each of its words. Synsets that no lexical entry links
// to are dropped.
func (g *Graph) Resolve(language string) *dataset.Data {
	if language == "" {
		language = g.Language
	}
	d := dataset.New(language, g.Version)

	for _, s := range g.synsets {
		words := g.synsetWords[s.ID]
		if len(words) == 0 {
			continue
		}

		pos := s.PartOfSpeech
		if pos == "" {
			pos = g.entryPOS[s.ID]
		}

		examples := s.Examples
		if len(examples) > MaxExamples {
			examples = examples[:MaxExamples]
		}

		e := &dataset.SynsetEntry{
			SynsetID:     s.ID,
			PartOfSpeech: pos,
			Definition:   s.Definition,
			Examples:     append([]string{}, examples...),
			Synonyms:     append([]string{}, words...),
			Hypernyms:    g.representatives(s.Hypernyms),
			Hyponyms:     g.representatives(s.Hyponyms),
		}

		// Words differing only in case share a key and the entry is filed
		// under it once.
		filed := make(map[string]bool, len(words))
		for _, w := range words {
			key := folding.Key(w)
			if filed[key] {
				continue
			}
			filed[key] = true
			d.Index.Add(key, e)
		}
	}

	return d
}

// representatives returns the first word of each target synset. Targets with
// no words are skipped.
func (g *Graph) representatives(targets []string) []string {
	words := []string{}
	for _, id := range targets {
		if len(words) == MaxRelated {
			break
		}
		if ws := g.synsetWords[id]; len(ws) > 0 {
			words = append(words, ws[0])
		}
	}
	return words
}

// ParseDataset parses a WN-LMF document and resolves it into a dataset for
// language.
func ParseDataset(r io.Reader, language string) (*dataset.Data, error) {
	g, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return g.Resolve(language), nil
}
