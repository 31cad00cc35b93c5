// Licensed to Elasticsearch B.V. under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. Elasticsearch B.V. licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package grok parses semi-structured text into named fields using grok
// patterns: named, composable regex fragments assembled at compile time
// into one flat regex with uniquely named capture groups.
package grok

import (
	"fmt"

	"github.com/mmastrac/grok/internal/engine"
	"github.com/mmastrac/grok/internal/grokcompile"
	"github.com/mmastrac/grok/patterns"
)

// Dictionary is a mutable mapping from pattern name to definition
// string. Mutation (AddPattern) is not safe to call concurrently with a
// Compile reading the same dictionary; callers serialize that
// themselves, exactly as the teacher's Grok type documents for its own
// AddPattern.
type Dictionary struct {
	definitions map[string]string
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{definitions: map[string]string{}}
}

// NewDictionaryWithDefaults returns a dictionary seeded with the bundled
// default pattern corpus (patterns.Default).
func NewDictionaryWithDefaults() *Dictionary {
	d := NewDictionary()
	for name, definition := range patterns.Default {
		d.AddPattern(name, definition)
	}
	return d
}

// AddPattern registers or replaces the definition for name. Last write
// wins on a duplicate name, matching Dictionary's documented lifecycle
// (spec.md §3).
func (d *Dictionary) AddPattern(name, definition string) {
	d.definitions[name] = definition
}

// Lookup implements grokcompile.Dictionary.
func (d *Dictionary) Lookup(name string) (string, bool) {
	v, ok := d.definitions[name]
	return v, ok
}

// Compile expands template against the dictionary's current definitions
// and compiles the result with the linked regex back-end. namedCapturesOnly
// suppresses output for placeholders without an explicit alias.
func (d *Dictionary) Compile(template string, namedCapturesOnly bool) (*Pattern, error) {
	result, err := grokcompile.Compile(template, d, grokcompile.Options{NamedCapturesOnly: namedCapturesOnly})
	if err != nil {
		return nil, err
	}

	re, err := engine.Compile(result.Source)
	if err != nil {
		return nil, fmt.Errorf("grok: %w: %s", ErrRegexCompilation, err)
	}

	return newPattern(result.Source, re, result.Captures)
}
