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

// Package store implements a directory backed dictionary store.
//
// A store directory holds:
//  1. Dataset files named <language>-dict.json. A dataset may be compressed
//     with gzip (.json.gz) or dictzip (.json.dz).
//  2. WN-LMF source files named <id>-<version>.xml, e.g. omw-it-1.4.xml.
//     Sources may be compressed with gzip (.xml.gz) or dictzip (.xml.dz).
package store

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/ianlewis/go-dictzip"

	wordsense "github.com/ianlewis/go-wordsense"
	"github.com/ianlewis/go-wordsense/dataset"
)

// DatasetSuffix is the suffix of dataset file names after the language code.
const DatasetSuffix = "-dict.json"

// Compression is the container format of a stored file.
type Compression int

const (
	// None stores the file as is.
	None Compression = iota

	// Gzip compresses the file with gzip.
	Gzip

	// DictZip compresses the file with dictzip.
	DictZip
)

// Ext returns the extension added to file names for the compression.
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

// ParseCompression parses "none", "gzip" or "dictzip".
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return None, nil
	case "gzip", "gz":
		return Gzip, nil
	case "dictzip", "dz":
		return DictZip, nil
	default:
		return None, fmt.Errorf("unknown compression %q", s)
	}
}

// compressionExts lists the probed extensions in order of preference.
var compressionExts = []string{"", ".gz", ".GZ", ".dz", ".DZ"}

func compressionOf(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return Gzip
	case ".dz":
		return DictZip
	default:
		return None
	}
}

// Dir is a store in a local directory.
type Dir struct {
	path string
}

// NewDir returns a store for the directory at path.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// Path returns the store directory.
func (d *Dir) Path() string {
	return d.path
}

// find returns the first existing file named base plus one of the compression
// extensions.
func (d *Dir) find(base string) (string, error) {
	for _, ext := range compressionExts {
		p := filepath.Join(d.path, base+ext)
		_, err := os.Stat(p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("opening %q: %w", p, err)
		}
	}
	return "", fmt.Errorf("%w: %s", wordsense.ErrNotFound, base)
}

// FetchDataset reads the dataset for language. An error wrapping
// wordsense.ErrNotFound is returned if the directory has no dataset file for
// the language.
func (d *Dir) FetchDataset(ctx context.Context, language string) (*dataset.Data, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := d.find(language + DatasetSuffix)
	if err != nil {
		return nil, err
	}

	r, err := open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := dataset.Read(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	if data.Language == "" {
		data.Language = language
	}
	return data, nil
}

// SaveDataset writes data as <language>-dict.json with the given compression
// and returns the written path. The file is replaced atomically.
func (d *Dir) SaveDataset(ctx context.Context, data *dataset.Data, c Compression) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if data.Language == "" {
		return "", errors.New("dataset has no language")
	}

	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return "", fmt.Errorf("creating %q: %w", d.path, err)
	}

	path := filepath.Join(d.path, data.Language+DatasetSuffix+c.Ext())
	f, err := os.CreateTemp(d.path, "."+data.Language+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating %q: %w", path, err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)
	defer f.Close()

	if err := writeCompressed(f, c, func(w io.Writer) error {
		return dataset.Write(w, data)
	}); err != nil {
		return "", fmt.Errorf("writing %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("writing %q: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("writing %q: %w", path, err)
	}
	return path, nil
}

func writeCompressed(f *os.File, c Compression, write func(io.Writer) error) error {
	switch c {
	case Gzip:
		z := gzip.NewWriter(f)
		if err := write(z); err != nil {
			return err
		}
		return z.Close()
	case DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			return err
		}
		if err := write(z); err != nil {
			return err
		}
		// The dictzip chunk table is written on Close.
		return z.Close()
	default:
		return write(f)
	}
}

// Datasets returns the languages with a dataset file, sorted.
func (d *Dir) Datasets() ([]string, error) {
	entries, err := os.ReadDir(d.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", d.path, err)
	}

	var langs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		for _, ext := range compressionExts {
			if lang, ok := strings.CutSuffix(name, DatasetSuffix+ext); ok && lang != "" {
				if !slices.Contains(langs, lang) {
					langs = append(langs, lang)
				}
				break
			}
		}
	}
	slices.Sort(langs)
	return langs, nil
}

// SourceName returns the base file name of a source.
func SourceName(src wordsense.Source) string {
	return src.ID + "-" + src.Version + ".xml"
}

// FetchRawSource opens the WN-LMF document of src. Uncompressed documents are
// memory mapped. The caller must close the returned reader.
func (d *Dir) FetchRawSource(ctx context.Context, src wordsense.Source) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := d.find(SourceName(src))
	if err != nil {
		return nil, err
	}
	if compressionOf(path) != None {
		return open(path)
	}
	return openMapped(path)
}

// open opens path, decompressing it based on its extension.
func open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	switch compressionOf(path) {
	case Gzip:
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		return &readCloser{Reader: z, closers: []io.Closer{z, f}}, nil
	case DictZip:
		z, err := dictzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		return &readCloser{Reader: z, closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}

// openMapped maps the file at path into memory.
func openMapped(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	// Empty files cannot be mapped.
	if fi.Size() == 0 {
		return f, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mapping %q: %w", path, err)
	}
	return &readCloser{
		Reader:  bytes.NewReader(m),
		closers: []io.Closer{unmapper(m), f},
	}, nil
}

type unmapper mmap.MMap

func (u unmapper) Close() error {
	m := mmap.MMap(u)
	return m.Unmap()
}

// readCloser closes every closer in order, returning the first error.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
