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

// Package wordsense implements a word sense lookup engine over datasets built
// from WN-LMF wordnets.
//
// Data moves through the following steps:
//  1. A WN-LMF XML document is parsed into a lexical graph (package lmf).
//  2. The graph is resolved into a dataset mapping lower cased words to
//     synset entries (package dataset).
//  3. Datasets from several sources for one language are merged, and
//     definitions missing from one language are backfilled from another
//     (package merge).
//  4. The dataset is persisted as JSON and loaded on demand by an Engine,
//     which builds a lookup index with an optional stem map (package index).
//
// The Engine serves exact, stemmed, prefix and cross-language lookups. Package
// detect builds language identification on top of it.
//
// More info on the WN-LMF format can be found at this URL:
// https://globalwordnet.github.io/schemas/
package wordsense
