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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wordsense/detect"
)

var detectCommand = &cli.Command{
	Name:      "detect",
	Usage:     "detect the language of text",
	ArgsUsage: "TEXT...",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "default",
			Usage: "print `LANG` when no language is detected",
		},
	},
	OnUsageError: usageError,
	Action:       runDetect,
}

func runDetect(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("%w: missing TEXT", ErrFlagParse)
	}

	s, err := setup(c)
	if err != nil {
		return err
	}

	e, err := s.openEngine(c, nil)
	if err != nil {
		return err
	}

	d, err := detect.New(e, &detect.Options{CacheSize: s.cfg.Detect.CacheSize})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWnutil, err)
	}

	lang := d.Detect(strings.Join(c.Args().Slice(), " "), c.String("default"))
	if lang == "" {
		fmt.Fprintln(c.App.Writer, "unknown")
		return nil
	}
	fmt.Fprintf(c.App.Writer, "%s\t%s\n", lang, e.LanguageName(lang))
	return nil
}
