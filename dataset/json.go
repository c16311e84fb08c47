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

package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrDecode indicates that dataset JSON could not be decoded.
	ErrDecode = errors.New("decoding dataset")

	// ErrEncode indicates that a dataset could not be encoded.
	ErrEncode = errors.New("encoding dataset")
)

// MarshalJSON implements [json.Marshaler]. Words are written in index order.
func (idx Index) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, w := range idx.Words() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(w); err != nil {
			return nil, fmt.Errorf("%w: word %q: %w", ErrEncode, w, err)
		}
		// Encode terminates each value with a newline.
		buf.Truncate(buf.Len() - 1)
		buf.WriteByte(':')

		entries, _ := idx.Get(w)
		if err := enc.Encode(entries); err != nil {
			return nil, fmt.Errorf("%w: word %q: %w", ErrEncode, w, err)
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON implements [json.Unmarshaler]. The key order of the JSON
// object is kept as the index order.
func (idx *Index) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if tok == nil {
		// null
		*idx = Index{}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("%w: index is not an object", ErrDecode)
	}

	index := NewIndex(0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDecode, err)
		}
		w, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: unexpected token %v", ErrDecode, tok)
		}

		var entries []*SynsetEntry
		if err := dec.Decode(&entries); err != nil {
			return fmt.Errorf("%w: word %q: %w", ErrDecode, w, err)
		}
		index.Add(w, entries...)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	*idx = *index
	return nil
}

// Read decodes a dataset from its JSON form.
func Read(r io.Reader) (*Data, error) {
	var d Data
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		if errors.Is(err, ErrDecode) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &d, nil
}

// Write encodes d in its JSON form. Non-ASCII text is written as is.
func Write(w io.Writer, d *Data) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		if errors.Is(err, ErrEncode) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}
