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
	"slices"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	wordsense "github.com/ianlewis/go-wordsense"
)

var listCommand = &cli.Command{
	Name:         "list",
	Usage:        "list supported languages and installed datasets",
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		s, err := setup(c)
		if err != nil {
			return err
		}

		installed, err := s.data.Datasets()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWnutil, err)
		}

		tbl := table.New("Code", "Name", "Sources", "Installed").WithWriter(c.App.Writer)
		for _, l := range wordsense.Languages {
			var sources []string
			for _, src := range l.Sources {
				sources = append(sources, src.String())
			}
			tbl.AddRow(l.Code, wordsense.LanguageName(l.Code), strings.Join(sources, ","), yesNo(slices.Contains(installed, l.Code)))
		}

		// Datasets for languages outside the catalog.
		for _, lang := range installed {
			if _, ok := wordsense.LookupLanguage(lang); !ok {
				tbl.AddRow(lang, wordsense.LanguageName(lang), "", yesNo(true))
			}
		}
		tbl.Print()

		return nil
	},
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
