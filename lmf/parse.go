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
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ianlewis/go-wordsense/internal/folding"
)

var (
	// ErrMalformed indicates that the document is not well-formed XML.
	ErrMalformed = errors.New("malformed WN-LMF document")

	// ErrMissingResource indicates that the document root is not a
	// LexicalResource element.
	ErrMissingResource = errors.New("missing LexicalResource element")

	// ErrMissingLexicon indicates that the resource holds no Lexicon.
	ErrMissingLexicon = errors.New("missing Lexicon element")
)

const (
	elemResource  = "LexicalResource"
	elemLexicon   = "Lexicon"
	elemExtension = "LexiconExtension"
	elemEntry     = "LexicalEntry"
	elemSynset    = "Synset"
	attrID        = "id"
	attrLanguage  = "language"
	attrVersion   = "version"
)

type lexicalEntry struct {
	Lemma struct {
		WrittenForm  string `xml:"writtenForm,attr"`
		PartOfSpeech string `xml:"partOfSpeech,attr"`
	} `xml:"Lemma"`
	Senses []sense `xml:"Sense"`
}

type sense struct {
	ID     string `xml:"id,attr"`
	Synset string `xml:"synset,attr"`
}

type synsetRelation struct {
	RelType string `xml:"relType,attr"`
	Target  string `xml:"target,attr"`
}

type synsetElem struct {
	ID           string           `xml:"id,attr"`
	PartOfSpeech string           `xml:"partOfSpeech,attr"`
	Members      string           `xml:"members,attr"`
	Definitions  []textContent    `xml:"Definition"`
	Examples     []textContent    `xml:"Example"`
	Relations    []synsetRelation `xml:"SynsetRelation"`
}

// textContent is the concatenated character data of an element and all of its
// descendants.
type textContent string

// UnmarshalXML implements [xml.Unmarshaler].
func (t *textContent) UnmarshalXML(d *xml.Decoder, _ xml.StartElement) error {
	var b strings.Builder
	depth := 0
	for {
		tok, err := d.Token()
		if err != nil {
			//nolint:wrapcheck // wrapped by Parse
			return err
		}
		switch tok := tok.(type) {
		case xml.CharData:
			b.Write(tok)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				*t = textContent(folding.Text(b.String()))
				return nil
			}
			depth--
		}
	}
}

func attr(e xml.StartElement, name string) (string, bool) {
	for _, a := range e.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Parse reads a WN-LMF XML document into a Graph. LexicalEntry and Synset
// elements are decoded one at a time so memory use is bounded by the size of
// the graph rather than the document.
//
// A document whose root is not a LexicalResource, or that holds no Lexicon,
// is rejected and no graph is returned.
func Parse(r io.Reader) (*Graph, error) {
	d := xml.NewDecoder(r)
	g := newGraph()

	var rootSeen, lexiconSeen bool
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		if !rootSeen {
			if start.Name.Local != elemResource {
				return nil, fmt.Errorf("%w: root element is %q", ErrMissingResource, start.Name.Local)
			}
			rootSeen = true
			continue
		}

		switch start.Name.Local {
		case elemLexicon, elemExtension:
			if !lexiconSeen {
				g.ID, _ = attr(start, attrID)
				g.Language, _ = attr(start, attrLanguage)
				g.Version = DefaultVersion
				if v, ok := attr(start, attrVersion); ok && v != "" {
					g.Version = v
				}
			}
			lexiconSeen = true

		case elemEntry:
			var e lexicalEntry
			if err := d.DecodeElement(&e, &start); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, elemEntry, err)
			}
			g.addEntry(&e)

		case elemSynset:
			var s synsetElem
			if err := d.DecodeElement(&s, &start); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, elemSynset, err)
			}
			g.addSynset(newSynset(&s))
		}
	}

	if !rootSeen {
		return nil, ErrMissingResource
	}
	if !lexiconSeen {
		return nil, ErrMissingLexicon
	}
	return g, nil
}

func (g *Graph) addEntry(e *lexicalEntry) {
	word := folding.Text(e.Lemma.WrittenForm)
	if word == "" {
		return
	}
	pos := PartOfSpeech(e.Lemma.PartOfSpeech)
	for _, s := range e.Senses {
		g.link(word, pos, s.ID, s.Synset)
	}
}

func newSynset(e *synsetElem) *Synset {
	s := &Synset{
		ID:           e.ID,
		PartOfSpeech: PartOfSpeech(e.PartOfSpeech),
		Members:      strings.Fields(e.Members),
	}
	if len(e.Definitions) > 0 {
		s.Definition = string(e.Definitions[0])
	}
	for _, ex := range e.Examples {
		s.Examples = append(s.Examples, string(ex))
	}
	for _, rel := range e.Relations {
		switch rel.RelType {
		case RelHypernym, RelInstanceHypernym:
			s.Hypernyms = append(s.Hypernyms, rel.Target)
		case RelHyponym, RelInstanceHyponym:
			s.Hyponyms = append(s.Hyponyms, rel.Target)
		}
	}
	return s
}
