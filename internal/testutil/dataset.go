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

package testutil

import (
	"github.com/ianlewis/go-wordsense/dataset"
	"github.com/ianlewis/go-wordsense/internal/folding"
)

// DogEntry returns the English "dog" sense.
func DogEntry() *dataset.SynsetEntry {
	return &dataset.SynsetEntry{
		SynsetID:     "02084071-n",
		PartOfSpeech: dataset.Noun,
		Definition:   "a member of the genus Canis",
		Examples:     []string{"the dog barked all night"},
		Synonyms:     []string{"dog", "domestic dog", "Canis familiaris"},
		Hypernyms:    []string{"canine", "canid"},
		Hyponyms:     []string{"puppy", "pup", "hound"},
	}
}

// DogDataset returns an English dataset with the single key "dog".
func DogDataset() *dataset.Data {
	d := dataset.New("en", "2025")
	d.Index.Add("dog", DogEntry())
	return d
}

// Entry returns a minimal entry for synsetID with the given definition and
// synonyms.
func Entry(synsetID, definition string, synonyms ...string) *dataset.SynsetEntry {
	return &dataset.SynsetEntry{
		SynsetID:     synsetID,
		PartOfSpeech: dataset.Noun,
		Definition:   definition,
		Examples:     []string{},
		Synonyms:     synonyms,
		Hypernyms:    []string{},
		Hyponyms:     []string{},
	}
}

// Dataset builds a dataset for language from entries, filing each entry under
// every one of its synonyms in order.
func Dataset(language string, entries ...*dataset.SynsetEntry) *dataset.Data {
	d := dataset.New(language, "1.0")
	for _, e := range entries {
		for _, s := range e.Synonyms {
			d.Index.Add(folding.Key(s), e)
		}
	}
	return d
}
