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

package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// WhitespaceFolder performs whitespace folding on the input. Leading and
// trailing whitespace is dropped and every internal run of whitespace or
// control characters is replaced with a single ASCII space. WN-LMF text
// content is frequently pretty-printed across several indented lines, so
// definitions and examples are passed through this folder.
type WhitespaceFolder struct {
	// started is true once the first visible rune has been emitted.
	started bool

	// pending is true when a whitespace run has been consumed but its
	// replacement space has not been emitted yet.
	pending bool
}

func isFoldedSpace(r rune) bool {
	return unicode.IsSpace(r) || (r != utf8.RuneError && unicode.IsControl(r))
}

// Transform implements [transform.Transformer.Transform].
func (w *WhitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if isFoldedSpace(r) {
			nSrc += size
			if w.started {
				w.pending = true
			}
			continue
		}

		// NOTE: the output length of r is used rather than size since an
		// invalid byte decodes to utf8.RuneError which is three bytes long.
		need := utf8.RuneLen(r)
		if w.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if w.pending {
			dst[nDst] = ' '
			nDst++
			w.pending = false
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
		w.started = true
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *WhitespaceFolder) Reset() {
	*w = WhitespaceFolder{}
}
