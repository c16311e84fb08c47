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
	"github.com/ianlewis/go-wordsense/dataset"
)

// DefaultVersion is the version used when the lexicon has no version
// attribute.
const DefaultVersion = "1.0"

// Relation types that are kept from SynsetRelation elements.
const (
	RelHypernym         = "hypernym"
	RelInstanceHypernym = "instance_hypernym"
	RelHyponym          = "hyponym"
	RelInstanceHyponym  = "instance_hyponym"
)

var posCodes = map[string]string{
	"n": dataset.Noun,
	"v": dataset.Verb,
	"a": dataset.Adjective,
	"s": dataset.Adjective,
	"r": dataset.Adverb,
}

// PartOfSpeech maps a WN-LMF part of speech code to its name. Unrecognized
// codes are returned unchanged.
func PartOfSpeech(code string) string {
	if pos, ok := posCodes[code]; ok {
		return pos
	}
	return code
}

// Synset is a parsed Synset element.
type Synset struct {
	ID string

	// PartOfSpeech is the mapped part of speech.
	PartOfSpeech string

	// Definition is the text of the first Definition element.
	Definition string

	// Examples holds the text of every Example element.
	Examples []string

	// Members holds the sense identifiers of the members attribute. It is
	// informational only.
	Members []string

	// Hypernyms and Hyponyms hold target synset identifiers.
	Hypernyms []string
	Hyponyms  []string
}

// Graph is the intermediate lexical graph of one WN-LMF document.
type Graph struct {
	// ID, Language and Version are taken from the first Lexicon.
	ID       string
	Language string
	Version  string

	// synsets in document order.
	synsets    []*Synset
	synsetByID map[string]*Synset

	// senseWord maps a sense identifier to its written form.
	senseWord map[string]string

	// synsetWords maps a synset identifier to its written forms in the order
	// they were first linked to it.
	synsetWords map[string][]string
	synsetSeen  map[string]map[string]bool

	// entryPOS holds the lemma part of speech of the first entry linked to a
	// synset.
	entryPOS map[string]string
}

func newGraph() *Graph {
	return &Graph{
		synsetByID:  map[string]*Synset{},
		senseWord:   map[string]string{},
		synsetWords: map[string][]string{},
		synsetSeen:  map[string]map[string]bool{},
		entryPOS:    map[string]string{},
	}
}

// Synsets returns the synsets in document order.
func (g *Graph) Synsets() []*Synset {
	return g.synsets
}

// Synset returns the synset with the given identifier.
func (g *Graph) Synset(id string) (*Synset, bool) {
	s, ok := g.synsetByID[id]
	return s, ok
}

// Words returns the written forms linked to the synset through senses.
func (g *Graph) Words(synsetID string) []string {
	return g.synsetWords[synsetID]
}

// SenseWord returns the written form of the lexical entry owning the sense.
func (g *Graph) SenseWord(senseID string) (string, bool) {
	w, ok := g.senseWord[senseID]
	return w, ok
}

func (g *Graph) link(word, pos, senseID, synsetID string) {
	if senseID != "" {
		g.senseWord[senseID] = word
	}
	if synsetID == "" {
		return
	}
	seen := g.synsetSeen[synsetID]
	if seen == nil {
		seen = map[string]bool{}
		g.synsetSeen[synsetID] = seen
		g.entryPOS[synsetID] = pos
	}
	if seen[word] {
		return
	}
	seen[word] = true
	g.synsetWords[synsetID] = append(g.synsetWords[synsetID], word)
}

func (g *Graph) addSynset(s *Synset) {
	if _, ok := g.synsetByID[s.ID]; ok {
		// The first definition of a synset wins.
		return
	}
	g.synsetByID[s.ID] = s
	g.synsets = append(g.synsets, s)
}
