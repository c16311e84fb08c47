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

package wordsense

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Source identifies a wordnet release that a language's dataset is built
// from.
type Source struct {
	// ID is the wordnet identifier, e.g. "oewn".
	ID string

	// Version is the wordnet release, e.g. "2025".
	Version string
}

// String returns the source as "id:version".
func (s Source) String() string {
	return s.ID + ":" + s.Version
}

// ParseSource parses an "id:version" string. A missing version is "1.0".
func ParseSource(s string) Source {
	id, version, ok := strings.Cut(s, ":")
	if !ok || version == "" {
		version = "1.0"
	}
	return Source{ID: id, Version: version}
}

// Language is a catalog entry for a supported language.
type Language struct {
	// Code is the language code.
	Code string

	// Sources are the wordnet releases merged into the language's dataset,
	// in merge order.
	Sources []Source
}

// Languages is the catalog of supported languages.
var Languages = []Language{
	{Code: "en", Sources: []Source{{ID: "oewn", Version: "2025"}}},
	{Code: "it", Sources: []Source{{ID: "omw-it", Version: "1.4"}}},
	{Code: "es", Sources: []Source{{ID: "omw-es", Version: "1.4"}}},
	{Code: "fr", Sources: []Source{{ID: "omw-fr", Version: "1.4"}}},
	{Code: "de", Sources: []Source{{ID: "omw-de", Version: "1.4"}}},
	{Code: "pt", Sources: []Source{{ID: "omw-pt", Version: "1.4"}}},
	{Code: "nl", Sources: []Source{{ID: "omw-nl", Version: "1.4"}}},
	{Code: "pl", Sources: []Source{{ID: "omw-pl", Version: "1.4"}}},
	{Code: "ja", Sources: []Source{{ID: "omw-ja", Version: "1.4"}}},
	{Code: "zh", Sources: []Source{{ID: "omw-zh", Version: "1.4"}}},
}

// LookupLanguage returns the catalog entry for code.
func LookupLanguage(code string) (Language, bool) {
	code = strings.ToLower(code)
	for _, l := range Languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// LanguageName returns the name of the language in that language, e.g.
// "italiano" for "it". The code itself is returned if it is not a valid
// language tag or has no known name.
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return code
}
