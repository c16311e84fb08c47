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
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	wordsense "github.com/ianlewis/go-wordsense"
	"github.com/ianlewis/go-wordsense/internal/config"
	"github.com/ianlewis/go-wordsense/store"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrWnutil is a parent error for all command errors.
var ErrWnutil = errors.New("wnutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrWnutil)

// ErrNotLoaded indicates that a requested language could not be loaded.
var ErrNotLoaded = fmt.Errorf("%w: language not loaded", ErrWnutil)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we handle --help ourselves.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// session is the state shared by commands.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	data   *store.Dir
}

// setup loads the configuration and applies the global flags on top of it.
func setup(c *cli.Context) (*session, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWnutil, err)
	}

	if c.IsSet("data-dir") {
		cfg.Store.DataDir = c.String("data-dir")
	}
	if cfg.Store.DataDir == "" {
		cfg.Store.DataDir = dataLocation()
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}

	return &session{
		cfg:    cfg,
		logger: config.NewLogger(cfg.Log, c.App.ErrWriter),
		data:   store.NewDir(cfg.Store.DataDir),
	}, nil
}

// openEngine returns an engine with languages loaded. If languages is empty
// every dataset in the store is loaded.
func (s *session) openEngine(c *cli.Context, languages []string) (*wordsense.Engine, error) {
	e := wordsense.New(s.data, &wordsense.Options{Logger: s.logger})

	explicit := len(languages) > 0
	if !explicit {
		var err error
		languages, err = s.data.Datasets()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWnutil, err)
		}
	}

	for _, lang := range languages {
		ok, err := e.Load(c.Context, lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWnutil, err)
		}
		if !ok && explicit {
			return nil, fmt.Errorf("%w: %q in %s", ErrNotLoaded, lang, s.data.Path())
		}
	}
	return e, nil
}

func usageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

func newWnutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Build and search multilingual wordnet datasets.",
		Description: strings.Join([]string{
			"Wordnet dataset utility written in Go.",
			"http://github.com/ianlewis/go-wordsense",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "read and write datasets in `DIR`",
				Aliases: []string{"d"},
				Value:   dataLocation(),
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from YAML `FILE`",
				Aliases: []string{"c"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log at `LEVEL` (debug, info, warn, error)",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError:    usageError,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			buildCommand,
			lookupCommand,
			prefixCommand,
			detectCommand,
			listCommand,
		},
	}
}
