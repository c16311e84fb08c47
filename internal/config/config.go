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

// Package config loads wordsense tool configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// ErrInvalid indicates that a configuration value is invalid.
var ErrInvalid = errors.New("invalid configuration")

// PathEnv names the environment variable holding the optional YAML file path.
const PathEnv = "WORDSENSE_CONFIG"

// Config is the root configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Build  BuildConfig  `yaml:"build"`
	Detect DetectConfig `yaml:"detect"`
	Log    LogConfig    `yaml:"log"`
}

// StoreConfig holds dataset store settings.
type StoreConfig struct {
	// DataDir is the store directory. When empty the tool picks a per-user
	// directory.
	DataDir string `yaml:"data_dir" env:"WORDSENSE_DATA_DIR"`
}

// BuildConfig holds dataset build settings.
type BuildConfig struct {
	PrimaryLanguage  string `yaml:"primary_language"  env:"WORDSENSE_PRIMARY_LANGUAGE"  env-default:"en"`
	FallbackLanguage string `yaml:"fallback_language" env:"WORDSENSE_FALLBACK_LANGUAGE" env-default:"en"`
	Compression      string `yaml:"compression"       env:"WORDSENSE_COMPRESSION"       env-default:"gzip"`
	Concurrency      int    `yaml:"concurrency"       env:"WORDSENSE_CONCURRENCY"       env-default:"2"`
}

// DetectConfig holds language detection settings.
type DetectConfig struct {
	CacheSize int `yaml:"cache_size" env:"WORDSENSE_DETECT_CACHE_SIZE" env-default:"1000"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"WORDSENSE_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"WORDSENSE_LOG_FORMAT" env-default:"text"`
}

// Load reads the configuration. Values come from, in order of priority,
// environment variables, the YAML file at path and defaults. If path is empty
// the WORDSENSE_CONFIG environment variable is used, and if that is also
// empty only the environment and defaults are read.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv(PathEnv)
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Build.PrimaryLanguage) == "" {
		return fmt.Errorf("%w: build.primary_language is empty", ErrInvalid)
	}
	if c.Build.Concurrency <= 0 {
		return fmt.Errorf("%w: build.concurrency must be > 0 (got %d)", ErrInvalid, c.Build.Concurrency)
	}
	switch strings.ToLower(c.Build.Compression) {
	case "none", "gzip", "dictzip":
	default:
		return fmt.Errorf("%w: build.compression must be none, gzip or dictzip (got %q)", ErrInvalid, c.Build.Compression)
	}
	if c.Detect.CacheSize <= 0 {
		return fmt.Errorf("%w: detect.cache_size must be > 0 (got %d)", ErrInvalid, c.Detect.CacheSize)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("%w: log.format must be json or text (got %q)", ErrInvalid, c.Log.Format)
	}
	return nil
}
