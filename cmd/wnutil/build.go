// Copyright 2025 Ian Lewis
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

package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	wordsense "github.com/ianlewis/go-wordsense"
	"github.com/ianlewis/go-wordsense/dataset"
	"github.com/ianlewis/go-wordsense/pipeline"
	"github.com/ianlewis/go-wordsense/store"
)

var buildCommand = &cli.Command{
	Name:      "build",
	Usage:     "build language datasets from WN-LMF sources",
	ArgsUsage: "[LANG...]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "source-dir",
			Usage:   "read WN-LMF sources from `DIR` (default: DATA_DIR/sources)",
			Aliases: []string{"s"},
		},
		&cli.StringSliceFlag{
			Name:  "source",
			Usage: "build from `ID:VERSION` instead of the catalog sources",
		},
		&cli.StringFlag{
			Name:  "fallback",
			Usage: "backfill missing definitions from `LANG`",
		},
		&cli.StringFlag{
			Name:  "compression",
			Usage: "write datasets with `FORMAT` (none, gzip, dictzip)",
		},
		&cli.IntFlag{
			Name:  "concurrency",
			Usage: "parse `N` sources at once",
		},
	},
	OnUsageError: usageError,
	Action:       runBuild,
}

func runBuild(c *cli.Context) error {
	s, err := setup(c)
	if err != nil {
		return err
	}

	if c.IsSet("fallback") {
		s.cfg.Build.FallbackLanguage = c.String("fallback")
	}
	if c.IsSet("compression") {
		s.cfg.Build.Compression = c.String("compression")
	}
	if c.IsSet("concurrency") {
		s.cfg.Build.Concurrency = c.Int("concurrency")
	}

	compression, err := store.ParseCompression(s.cfg.Build.Compression)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFlagParse, err)
	}

	sourceDir := c.String("source-dir")
	if sourceDir == "" {
		sourceDir = filepath.Join(s.data.Path(), "sources")
	}
	p := pipeline.New(store.NewDir(sourceDir), &pipeline.Options{
		Concurrency: s.cfg.Build.Concurrency,
		Logger:      s.logger,
	})

	languages := c.Args().Slice()
	if len(languages) == 0 {
		languages = []string{s.cfg.Build.PrimaryLanguage}
	}
	for i, lang := range languages {
		languages[i] = strings.ToLower(strings.TrimSpace(lang))
	}

	var sources []wordsense.Source
	for _, src := range c.StringSlice("source") {
		sources = append(sources, wordsense.ParseSource(src))
	}

	// The fallback language is built first so its definitions can be used by
	// the other languages.
	fallbackLang := strings.ToLower(s.cfg.Build.FallbackLanguage)
	if i := slices.Index(languages, fallbackLang); i > 0 {
		languages = slices.Insert(slices.Delete(languages, i, i+1), 0, fallbackLang)
	}

	var fallback *dataset.Data
	if fallbackLang != "" && !slices.Contains(languages, fallbackLang) {
		fallback, err = s.data.FetchDataset(c.Context, fallbackLang)
		switch {
		case errors.Is(err, wordsense.ErrNotFound):
			s.logger.Warn("fallback dataset not found", "language", fallbackLang)
		case err != nil:
			return fmt.Errorf("%w: %w", ErrWnutil, err)
		}
	}

	tbl := table.New("Language", "Words", "Synsets", "Backfilled", "Path").WithWriter(c.App.Writer)
	for _, lang := range languages {
		var res *pipeline.Result
		if len(sources) > 0 {
			res, err = p.Build(c.Context, lang, sources, fallback)
		} else {
			res, err = p.BuildLanguage(c.Context, lang, fallback)
		}
		if err != nil {
			return fmt.Errorf("%w: building %q: %w", ErrWnutil, lang, err)
		}

		path, err := s.data.SaveDataset(c.Context, res.Data, compression)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWnutil, err)
		}

		if lang == fallbackLang {
			fallback = res.Data
		}

		stats := res.Data.Stats()
		tbl.AddRow(lang, stats.Words, stats.Synsets, res.Backfilled, path)
	}
	tbl.Print()

	return nil
}
