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

// Package lmf implements reading WN-LMF (WordNet Lexical Markup Framework)
// XML documents.
//
// A WN-LMF document is a LexicalResource holding one or more Lexicon
// elements. A Lexicon holds:
//  1. LexicalEntry elements. Each has a Lemma carrying the written form and
//     part of speech, and Sense elements linking the lemma to a synset.
//  2. Synset elements. Each has an id, a part of speech, Definition and
//     Example children and typed SynsetRelation links to other synsets.
//
// Words are resolved through the Sense to Synset links of lexical entries. The
// members attribute of a Synset is kept but not relied upon.
//
// More info on the format can be found at this URL:
// https://globalwordnet.github.io/schemas/
package lmf
