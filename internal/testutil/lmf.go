// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testutil

import (
	"encoding/xml"
	"fmt"
)

// Lexicon is a WN-LMF Lexicon element used to build test documents.
type Lexicon struct {
	XMLName  xml.Name       `xml:"Lexicon"`
	ID       string         `xml:"id,attr,omitempty"`
	Language string         `xml:"language,attr,omitempty"`
	Version  string         `xml:"version,attr,omitempty"`
	Entries  []LexicalEntry `xml:"LexicalEntry"`
	Synsets  []Synset       `xml:"Synset"`
}

// LexicalEntry is a WN-LMF LexicalEntry element.
type LexicalEntry struct {
	ID     string  `xml:"id,attr,omitempty"`
	Lemma  Lemma   `xml:"Lemma"`
	Senses []Sense `xml:"Sense"`
}

// Lemma is a WN-LMF Lemma element.
type Lemma struct {
	WrittenForm  string `xml:"writtenForm,attr"`
	PartOfSpeech string `xml:"partOfSpeech,attr,omitempty"`
}

// Sense is a WN-LMF Sense element.
type Sense struct {
	ID     string `xml:"id,attr"`
	Synset string `xml:"synset,attr"`
}

// Synset is a WN-LMF Synset element.
type Synset struct {
	ID           string           `xml:"id,attr"`
	PartOfSpeech string           `xml:"partOfSpeech,attr,omitempty"`
	Members      string           `xml:"members,attr,omitempty"`
	Definitions  []string         `xml:"Definition"`
	Examples     []string         `xml:"Example"`
	Relations    []SynsetRelation `xml:"SynsetRelation"`
}

// SynsetRelation is a WN-LMF SynsetRelation element.
type SynsetRelation struct {
	RelType string `xml:"relType,attr"`
	Target  string `xml:"target,attr"`
}

const lmfHeader = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE LexicalResource SYSTEM "http://globalwordnet.github.io/schemas/WN-LMF-1.1.dtd">
<LexicalResource xmlns:dc="https://globalwordnet.github.io/schemas/dc/">
`

// MakeLMF returns a WN-LMF XML document holding the given lexicons.
func MakeLMF(lexicons ...Lexicon) []byte {
	b := []byte(lmfHeader)
	for _, lex := range lexicons {
		lb, err := xml.MarshalIndent(lex, "  ", "  ")
		if err != nil {
			panic(fmt.Sprintf("marshaling lexicon %q: %v", lex.ID, err))
		}
		b = append(b, lb...)
		b = append(b, '\n')
	}
	b = append(b, []byte("</LexicalResource>\n")...)
	return b
}

// DogLMF is a small English lexicon around "dog".
const DogLMF = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE LexicalResource SYSTEM "http://globalwordnet.github.io/schemas/WN-LMF-1.1.dtd">
<LexicalResource xmlns:dc="https://globalwordnet.github.io/schemas/dc/">
  <Lexicon id="oewn" label="Open English WordNet" language="en" email="english-wordnet@googlegroups.com" license="https://creativecommons.org/licenses/by/4.0" version="2025">
    <LexicalEntry id="oewn-dog-n">
      <Lemma writtenForm="dog" partOfSpeech="n"/>
      <Sense id="oewn-dog__1.05.00" synset="oewn-02084071-n"/>
      <Sense id="oewn-dog__1.18.01" synset="oewn-10114209-n"/>
    </LexicalEntry>
    <LexicalEntry id="oewn-domestic_dog-n">
      <Lemma writtenForm="domestic dog" partOfSpeech="n"/>
      <Sense id="oewn-domestic_dog__1.05.00" synset="oewn-02084071-n"/>
    </LexicalEntry>
    <LexicalEntry id="oewn-Canis_familiaris-n">
      <Lemma writtenForm="Canis familiaris" partOfSpeech="n"/>
      <Sense id="oewn-Canis_familiaris__1.05.00" synset="oewn-02084071-n"/>
    </LexicalEntry>
    <LexicalEntry id="oewn-canine-n">
      <Lemma writtenForm="canine" partOfSpeech="n"/>
      <Sense id="oewn-canine__1.05.00" synset="oewn-02083346-n"/>
    </LexicalEntry>
    <LexicalEntry id="oewn-canid-n">
      <Lemma writtenForm="canid" partOfSpeech="n"/>
      <Sense id="oewn-canid__1.05.00" synset="oewn-02083346-n"/>
    </LexicalEntry>
    <LexicalEntry id="oewn-puppy-n">
      <Lemma writtenForm="puppy" partOfSpeech="n"/>
      <Sense id="oewn-puppy__1.05.00" synset="oewn-01322604-n"/>
    </LexicalEntry>
    <LexicalEntry id="oewn-pup-n">
      <Lemma writtenForm="pup" partOfSpeech="n"/>
      <Sense id="oewn-pup__1.05.00" synset="oewn-02085374-n"/>
    </LexicalEntry>
    <LexicalEntry id="oewn-hound-n">
      <Lemma writtenForm="hound" partOfSpeech="n"/>
      <Sense id="oewn-hound__1.05.00" synset="oewn-02087551-n"/>
    </LexicalEntry>
    <LexicalEntry id="oewn-fellow-n">
      <Lemma writtenForm="fellow" partOfSpeech="n"/>
      <Sense id="oewn-fellow__1.18.00" synset="oewn-10114209-n"/>
    </LexicalEntry>
    <Synset id="oewn-02084071-n" ili="i46360" members="oewn-dog__1.05.00 oewn-domestic_dog__1.05.00 oewn-Canis_familiaris__1.05.00" partOfSpeech="n" lexfile="noun.animal">
      <Definition>a member of the genus Canis (probably descended from the common wolf)
        that has been domesticated by man since prehistoric times</Definition>
      <Example>the dog barked all night</Example>
      <SynsetRelation relType="hypernym" target="oewn-02083346-n"/>
      <SynsetRelation relType="hyponym" target="oewn-01322604-n"/>
      <SynsetRelation relType="hyponym" target="oewn-02085374-n"/>
      <SynsetRelation relType="hyponym" target="oewn-02087551-n"/>
      <SynsetRelation relType="mero_member" target="oewn-02083863-n"/>
    </Synset>
    <Synset id="oewn-02083346-n" ili="i46359" members="oewn-canine__1.05.00 oewn-canid__1.05.00" partOfSpeech="n" lexfile="noun.animal">
      <Definition>any of various fissiped mammals with nonretractile claws and typically long muzzles</Definition>
      <SynsetRelation relType="hyponym" target="oewn-02084071-n"/>
    </Synset>
    <Synset id="oewn-01322604-n" members="oewn-puppy__1.05.00" partOfSpeech="n">
      <Definition>a young dog</Definition>
      <SynsetRelation relType="hypernym" target="oewn-02084071-n"/>
    </Synset>
    <Synset id="oewn-02085374-n" members="oewn-pup__1.05.00" partOfSpeech="n">
      <Definition>a young mammal</Definition>
      <SynsetRelation relType="hypernym" target="oewn-02084071-n"/>
    </Synset>
    <Synset id="oewn-02087551-n" members="oewn-hound__1.05.00" partOfSpeech="n">
      <Definition>any of several breeds of dog used for hunting</Definition>
      <SynsetRelation relType="hypernym" target="oewn-02084071-n"/>
    </Synset>
    <Synset id="oewn-10114209-n" members="oewn-dog__1.18.01 oewn-fellow__1.18.00" partOfSpeech="n">
      <Definition>a man; <i>informal</i></Definition>
      <Definition>ignored second definition</Definition>
      <Example>you lucky dog</Example>
    </Synset>
    <Synset id="oewn-99999999-n" partOfSpeech="n">
      <Definition>a synset no lemma points at</Definition>
    </Synset>
  </Lexicon>
</LexicalResource>
`
