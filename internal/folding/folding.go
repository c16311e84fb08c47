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

// Package folding implements the text folding applied to index keys and
// lexical text content.
package folding

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Text folds whitespace in s and normalizes it to NFC. Case is preserved.
func Text(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFC, &WhitespaceFolder{}), s)
	if err != nil {
		// Transform only fails on short buffers which transform.String
		// handles internally.
		return s
	}
	return folded
}

// Key returns the lookup key for a written form or query: the NFC,
// whitespace folded, lower cased form of s. Key is idempotent.
func Key(s string) string {
	// A Caser is stateful so a new one is needed on every call.
	return cases.Lower(language.Und).String(Text(s))
}

// PrefixKey returns the key of a prefix query. It is Key(s) except that
// leading and trailing whitespace runs fold to one space instead of being
// dropped, so "ice " only matches keys where a word follows "ice".
func PrefixKey(s string) string {
	if s == "" {
		return ""
	}
	k := Key(s)
	first, _ := utf8.DecodeRuneInString(s)
	if isFoldedSpace(first) {
		k = " " + k
	}
	last, _ := utf8.DecodeLastRuneInString(s)
	if k != " " && isFoldedSpace(last) {
		k += " "
	}
	return k
}
