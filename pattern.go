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

package grok

import (
	"fmt"

	"github.com/mmastrac/grok/internal/engine"
	"github.com/mmastrac/grok/internal/grokcompile"
)

// Pattern is an immutable, compiled grok expression. It is safe to share
// across goroutines and to match concurrently (spec.md §5); both wired
// engine back-ends document their compiled values as safe for
// concurrent read-only matching.
type Pattern struct {
	source      string
	re          engine.Regex
	captures    []grokcompile.CaptureEntry
	nameToGroup map[string]int
	lookup      map[string]int // display_key -> index into captures
	order       []string       // display keys in capture-table order, superseded entries excluded
}

func newPattern(source string, re engine.Regex, captures []grokcompile.CaptureEntry) (*Pattern, error) {
	names := re.SubexpNames()
	nameToGroup := make(map[string]int, len(names))
	for i, n := range names {
		if n != "" {
			nameToGroup[n] = i
		}
	}

	lookup := make(map[string]int, len(captures))
	order := make([]string, 0, len(captures))
	for i, c := range captures {
		if _, ok := nameToGroup[c.InternalID]; !ok {
			return nil, fmt.Errorf("grok: capture %q (display key %q): %w", c.InternalID, c.DisplayKey, ErrInternalInvariant)
		}
		if !c.Superseded {
			lookup[c.DisplayKey] = i
			order = append(order, c.DisplayKey)
		}
	}

	return &Pattern{
		source:      source,
		re:          re,
		captures:    captures,
		nameToGroup: nameToGroup,
		lookup:      lookup,
		order:       order,
	}, nil
}

// Source returns the final, fully-expanded regex source this pattern
// compiled.
func (p *Pattern) Source() string {
	return p.source
}

// CaptureNames returns the pattern's display keys in capture-table
// (textual occurrence) order. They are pairwise distinct.
func (p *Pattern) CaptureNames() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Extract returns the opaque extract metadata recorded for the
// occurrence that owns displayKey, if any was given. The library never
// interprets this value; see SPEC_FULL.md §3.
func (p *Pattern) Extract(displayKey string) (string, bool) {
	idx, ok := p.lookup[displayKey]
	if !ok {
		return "", false
	}
	c := p.captures[idx]
	if c.Extract == "" {
		return "", false
	}
	return c.Extract, true
}

// MatchAgainst matches subject against the pattern and returns a
// Matches view, or nil if the subject does not match. This never fails:
// non-matching input is expected, not exceptional (spec.md §7).
func (p *Pattern) MatchAgainst(subject string) *Matches {
	all := p.re.FindAllStringSubmatchIndex(subject, 1)
	if len(all) == 0 {
		return nil
	}
	return &Matches{pattern: p, subject: subject, idx: all[0]}
}
