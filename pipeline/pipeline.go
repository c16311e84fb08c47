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

// Package pipeline builds a language's dataset from its WN-LMF sources.
//
// Each source is fetched, parsed and resolved into a dataset. The datasets
// are merged in source order and, when a fallback dataset in another language
// is given, missing definitions are backfilled from it.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	wordsense "github.com/ianlewis/go-wordsense"
	"github.com/ianlewis/go-wordsense/dataset"
	"github.com/ianlewis/go-wordsense/lmf"
	"github.com/ianlewis/go-wordsense/merge"
)

// ErrUnknownLanguage indicates that a language is not in the catalog.
var ErrUnknownLanguage = errors.New("unknown language")

// SourceFetcher opens raw WN-LMF documents.
type SourceFetcher interface {
	// FetchRawSource opens the document of src. It returns an error wrapping
	// wordsense.ErrNotFound if the source is not available.
	FetchRawSource(ctx context.Context, src wordsense.Source) (io.ReadCloser, error)
}

// Options are options for a Pipeline.
type Options struct {
	// Concurrency is the number of sources parsed at once.
	Concurrency int

	// Logger logs progress.
	Logger *slog.Logger
}

// DefaultOptions is the default options for a Pipeline.
var DefaultOptions = &Options{
	Concurrency: 2,
}

// Pipeline builds datasets.
type Pipeline struct {
	fetcher     SourceFetcher
	concurrency int
	logger      *slog.Logger
}

// New returns a new Pipeline reading sources from fetcher.
func New(fetcher SourceFetcher, options *Options) *Pipeline {
	if options == nil {
		options = DefaultOptions
	}
	p := &Pipeline{
		fetcher:     fetcher,
		concurrency: options.Concurrency,
		logger:      options.Logger,
	}
	if p.concurrency <= 0 {
		p.concurrency = DefaultOptions.Concurrency
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// SourceResult describes the contribution of one source.
type SourceResult struct {
	Source wordsense.Source

	// Missing is true if the fetcher did not have the source.
	Missing bool

	// Stats are the statistics of the source's own dataset.
	Stats dataset.Stats
}

// Result is the result of a build.
type Result struct {
	// Data is the merged dataset.
	Data *dataset.Data

	// Sources holds one result per source, in source order.
	Sources []SourceResult

	// Backfilled is the number of entries whose definition was copied from
	// the fallback dataset.
	Backfilled int
}

// Build builds the dataset for language from sources. Sources missing from
// the fetcher contribute nothing. Any other fetch or parse error fails the
// build. merge.ErrNoData is returned if no source yields any entries.
//
// If fallback is not nil and is in a different language, definitions missing
// from the merged dataset are backfilled from it.
//
// ctx is checked between sources.
func (p *Pipeline) Build(ctx context.Context, language string, sources []wordsense.Source, fallback *dataset.Data) (*Result, error) {
	datas := make([]*dataset.Data, len(sources))
	results := make([]SourceResult, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, src := range sources {
		results[i].Source = src
		g.Go(func() error {
			d, err := p.parse(gctx, language, src)
			if errors.Is(err, wordsense.ErrNotFound) {
				p.logger.Warn("source not found", "language", language, "source", src.String())
				results[i].Missing = true
				return nil
			}
			if err != nil {
				return err
			}
			datas[i] = d
			results[i].Stats = d.Stats()
			p.logger.Info("parsed source",
				"language", language,
				"source", src.String(),
				"words", results[i].Stats.Words,
				"synsets", results[i].Stats.Synsets,
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged, err := merge.Merge(ctx, datas...)
	if err != nil {
		return nil, fmt.Errorf("merging %q: %w", language, err)
	}
	merged.Language = language

	res := &Result{
		Data:    merged,
		Sources: results,
	}

	if fallback != nil && fallback.Language != language {
		res.Backfilled = merge.Backfill(merged, fallback)
		p.logger.Info("backfilled definitions",
			"language", language,
			"fallback", fallback.Language,
			"entries", res.Backfilled,
		)
	}

	return res, nil
}

func (p *Pipeline) parse(ctx context.Context, language string, src wordsense.Source) (*dataset.Data, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, err := p.fetcher.FetchRawSource(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", src, err)
	}
	defer r.Close()

	d, err := lmf.ParseDataset(r, language)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", src, err)
	}
	return d, nil
}

// BuildLanguage builds a language from its catalog sources.
func (p *Pipeline) BuildLanguage(ctx context.Context, language string, fallback *dataset.Data) (*Result, error) {
	l, ok := wordsense.LookupLanguage(language)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}
	return p.Build(ctx, l.Code, l.Sources, fallback)
}
