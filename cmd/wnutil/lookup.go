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
	"fmt"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	wordsense "github.com/ianlewis/go-wordsense"
)

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "look words up in the installed datasets",
	ArgsUsage: "WORD...",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "language",
			Usage:   "only search `LANG`",
			Aliases: []string{"l"},
		},
		&cli.BoolFlag{
			Name:               "full",
			Usage:              "print examples and related words",
			Aliases:            []string{"f"},
			DisableDefaultText: true,
		},
	},
	OnUsageError: usageError,
	Action:       runLookup,
}

func runLookup(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("%w: missing WORD", ErrFlagParse)
	}

	s, err := setup(c)
	if err != nil {
		return err
	}

	languages := c.StringSlice("language")
	e, err := s.openEngine(c, languages)
	if err != nil {
		return err
	}

	var hits []wordsense.Hit
	for _, word := range c.Args().Slice() {
		var found []wordsense.Hit
		if len(languages) > 0 {
			for _, lang := range languages {
				if h, ok := e.LookupHit(word, lang); ok {
					found = append(found, h)
				}
			}
		} else {
			found = e.LookupAll(word)
		}
		if len(found) == 0 {
			fmt.Fprintf(c.App.ErrWriter, "%s: no entries\n", word)
		}
		hits = append(hits, found...)
	}
	if len(hits) == 0 {
		return nil
	}

	if c.Bool("full") {
		for _, h := range hits {
			fmt.Fprintf(c.App.Writer, "[%s] %s\n", h.Language, hitWord(h))
			for _, entry := range h.Entries {
				fmt.Fprint(c.App.Writer, entry.String())
			}
			fmt.Fprintln(c.App.Writer)
		}
		return nil
	}

	tbl := table.New("Language", "Word", "POS", "Definition").WithWriter(c.App.Writer)
	for _, h := range hits {
		for _, entry := range h.Entries {
			def := entry.Definition
			if entry.Fallback {
				def += " [fallback]"
			}
			tbl.AddRow(h.Language, hitWord(h), entry.PartOfSpeech, def)
		}
	}
	tbl.Print()

	return nil
}

func hitWord(h wordsense.Hit) string {
	if h.Stemmed {
		return h.Word + " (stem)"
	}
	return h.Word
}

var prefixCommand = &cli.Command{
	Name:      "prefix",
	Usage:     "list words starting with a prefix",
	ArgsUsage: "PREFIX",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "language",
			Usage:   "search `LANG` (default: the primary language)",
			Aliases: []string{"l"},
		},
		&cli.IntFlag{
			Name:    "limit",
			Usage:   "print at most `N` words (0 for all)",
			Aliases: []string{"n"},
			Value:   20,
		},
	},
	OnUsageError: usageError,
	Action:       runPrefix,
}

func runPrefix(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("%w: want one PREFIX, got %d arguments", ErrFlagParse, c.NArg())
	}

	s, err := setup(c)
	if err != nil {
		return err
	}

	lang := c.String("language")
	if lang == "" {
		lang = s.cfg.Build.PrimaryLanguage
	}
	e, err := s.openEngine(c, []string{lang})
	if err != nil {
		return err
	}

	words := e.PrefixSearch(c.Args().First(), lang, c.Int("limit"))
	if len(words) > 0 {
		fmt.Fprintln(c.App.Writer, strings.Join(words, "\n"))
	}
	return nil
}
