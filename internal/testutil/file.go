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
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-wordsense/dataset"
)

// Compression is the container format of a test file.
type Compression int

const (
	// None writes the data as is.
	None Compression = iota

	// Gzip compresses the data with gzip.
	Gzip

	// DictZip compresses the data with dictzip.
	DictZip
)

// Ext returns the file extension suffix added for the compression.
func (c Compression) Ext() string {
	switch c {
	case Gzip:
		return ".gz"
	case DictZip:
		return ".dz"
	default:
		return ""
	}
}

// WriteFile writes b to dir/name plus the compression's extension and returns
// the file path.
func WriteFile(t *testing.T, dir, name string, b []byte, c Compression) string {
	t.Helper()

	path := filepath.Join(dir, name+c.Ext())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch c {
	case Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write(b); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(b); err != nil {
			t.Fatal(err)
		}
		// NOTE: the dictzip header is only complete after Close.
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.Write(b); err != nil {
			t.Fatal(err)
		}
	}

	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

// WriteDataset writes d to dir as <language>-dict.json and returns the path.
func WriteDataset(t *testing.T, dir string, d *dataset.Data, c Compression) string {
	t.Helper()

	var buf bytes.Buffer
	if err := dataset.Write(&buf, d); err != nil {
		t.Fatal(err)
	}
	return WriteFile(t, dir, d.Language+"-dict.json", buf.Bytes(), c)
}
