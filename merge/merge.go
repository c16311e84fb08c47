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

// Package merge combines datasets produced by several sources for one
// language.
//
// Merging is an ordered fold. The first non-empty source is the accumulator
// and every later source is folded into it in turn:
//   - a word new to the accumulator is inserted with its entries;
//   - an entry whose synset id is not yet filed under the word is appended;
//   - an entry whose synset id is already filed replaces the existing entry,
//     at the same position, only when the existing entry has no definition
//     and the incoming one does.
//
// Source order is significant. Earlier sources win every other tie.
package merge

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/ianlewis/go-wordsense/dataset"
)

// ErrNoData indicates that every source was empty.
var ErrNoData = errors.New("no source yielded any entries")

// Merge folds sources into one dataset. The language and version are taken
// from the first non-empty source. Empty or nil sources contribute nothing.
//
// The sources are not modified. The result owns its word lists but shares
// entries with the sources.
//
// ctx is checked before each source is folded.
func Merge(ctx context.Context, sources ...*dataset.Data) (*dataset.Data, error) {
	var acc *dataset.Data
	for i, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("merging source %d: %w", i, err)
		}
		if src.Empty() {
			continue
		}
		if acc == nil {
			acc = src.Clone()
			continue
		}
		fold(acc, src)
	}
	if acc == nil {
		return nil, ErrNoData
	}
	return acc, nil
}

func fold(acc, src *dataset.Data) {
	for w, incoming := range src.Index.All() {
		existing, ok := acc.Index.Get(w)
		if !ok {
			acc.Index.Set(w, append([]*dataset.SynsetEntry(nil), incoming...))
			continue
		}
		acc.Index.Set(w, mergeEntries(existing, incoming))
	}
}

func mergeEntries(existing, incoming []*dataset.SynsetEntry) []*dataset.SynsetEntry {
	pos := make(map[string]int, len(existing)+len(incoming))
	for i, e := range existing {
		if _, ok := pos[e.SynsetID]; !ok {
			pos[e.SynsetID] = i
		}
	}
	for _, e := range incoming {
		i, ok := pos[e.SynsetID]
		if !ok {
			pos[e.SynsetID] = len(existing)
			existing = append(existing, e)
			continue
		}
		if existing[i].Definition == "" && e.Definition != "" {
			existing[i] = e
		}
	}
	return existing
}

// synsetOffset matches the trailing offset and part of speech of a synset
// identifier, e.g. "02084071-n" in "oewn-02084071-n" or "omw-it-02084071-n".
var synsetOffset = regexp.MustCompile(`\d{8}-[nvasr]$`)

// SynsetKey returns the language independent part of a synset identifier.
// Identifiers without an offset are returned unchanged.
func SynsetKey(id string) string {
	if k := synsetOffset.FindString(id); k != "" {
		return k
	}
	return id
}

// Backfill copies definitions from fallback into entries of target that have
// none. Entries are matched by SynsetKey. Filled entries are marked as
// fallbacks. Only the definition and fallback flag are changed.
//
// Entries are updated in place so the change is visible under every word the
// entry is filed under. Backfill returns the number of entries filled.
func Backfill(target, fallback *dataset.Data) int {
	if target.Empty() || fallback.Empty() {
		return 0
	}

	defs := map[string]string{}
	for _, entries := range fallback.Index.All() {
		for _, e := range entries {
			if e.Definition == "" {
				continue
			}
			k := SynsetKey(e.SynsetID)
			if _, ok := defs[k]; !ok {
				defs[k] = e.Definition
			}
		}
	}

	n := 0
	seen := map[*dataset.SynsetEntry]bool{}
	for _, entries := range target.Index.All() {
		for _, e := range entries {
			if seen[e] {
				continue
			}
			seen[e] = true
			if e.Definition != "" {
				continue
			}
			if def, ok := defs[SynsetKey(e.SynsetID)]; ok {
				e.Definition = def
				e.Fallback = true
				n++
			}
		}
	}
	return n
}
