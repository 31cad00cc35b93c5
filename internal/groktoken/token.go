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

// Package groktoken tokenizes a grok template into literal and
// placeholder spans. It never calls into a regex engine: recognition is
// a byte-offset scan, ported from the reference implementation's hand
// rolled placeholder splitter.
package groktoken

import (
	"fmt"

	"github.com/mmastrac/grok/internal/grokerr"
)

// Span is either a Literal or a Placeholder.
type Span interface {
	isSpan()
}

// Literal is a run of template text copied verbatim into the assembled
// regex source.
type Literal struct {
	Text string
}

// Placeholder is a parsed %{name:alias:extract=definition} descriptor.
type Placeholder struct {
	Name          string
	Alias         string
	Extract       string
	Definition    string
	HasDefinition bool
}

func (Literal) isSpan()     {}
func (Placeholder) isSpan() {}

// SyntaxError reports where and why a template failed to tokenize.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d: %v", grokerr.ErrPatternSyntax, e.Pos, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return grokerr.ErrPatternSyntax
}

func syntaxErrorf(pos int, format string, args ...any) error {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Tokenize scans template left to right and returns its literal and
// placeholder spans in order.
func Tokenize(template string) ([]Span, error) {
	var spans []Span
	litStart := 0
	i := 0
	n := len(template)

	flushLiteral := func(end int) {
		if end > litStart {
			spans = append(spans, Literal{Text: template[litStart:end]})
		}
	}

	for i < n {
		if template[i] == '%' && i+1 < n && template[i+1] == '{' {
			flushLiteral(i)
			ph, next, err := parsePlaceholder(template, i+2)
			if err != nil {
				return nil, err
			}
			spans = append(spans, ph)
			i = next
			litStart = i
			continue
		}
		i++
	}
	flushLiteral(n)
	return spans, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isNameChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}

func isAliasChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_' || c == '-' || c == '[' || c == ']' || c == '.'
}

// parsePlaceholder parses the body of a placeholder starting right after
// "%{", at offset i, and returns the descriptor plus the offset of the
// first byte past the closing "}".
func parsePlaceholder(s string, i int) (Placeholder, int, error) {
	start := i
	name, i, term, err := scanField(s, i, isNameChar, start)
	if err != nil {
		return Placeholder{}, 0, err
	}
	if name == "" {
		return Placeholder{}, 0, syntaxErrorf(start, "empty placeholder name")
	}

	var alias, extract string
	var extractSeen bool
	if term == ':' {
		alias, i, term, err = scanField(s, i+1, isAliasChar, start)
		if err != nil {
			return Placeholder{}, 0, err
		}
		if term == ':' {
			extractSeen = true
			extract, i, term, err = scanField(s, i+1, isAliasChar, start)
			if err != nil {
				return Placeholder{}, 0, err
			}
		}
		if extractSeen && extract == "" {
			return Placeholder{}, 0, syntaxErrorf(start, "empty extract")
		}
		if alias == "" && !(extractSeen && extract != "") {
			return Placeholder{}, 0, syntaxErrorf(start, "empty alias")
		}
	}

	var definition string
	hasDefinition := false
	if term == '=' {
		def, next, err := scanDefinition(s, i+1, start)
		if err != nil {
			return Placeholder{}, 0, err
		}
		definition = def
		hasDefinition = true
		i = next - 1 // the closing '}'
		term = '}'
	}

	if term != '}' {
		return Placeholder{}, 0, syntaxErrorf(start, "missing closing brace")
	}

	return Placeholder{
		Name:          name,
		Alias:         alias,
		Extract:       extract,
		Definition:    definition,
		HasDefinition: hasDefinition,
	}, i + 1, nil
}

// scanField consumes characters matching class starting at i, stopping
// at the first of '}', ':', '=', or an illegal character. It returns the
// field text, the index of the terminator, and the terminator itself.
func scanField(s string, i int, class func(byte) bool, placeholderStart int) (string, int, byte, error) {
	start := i
	n := len(s)
	for i < n {
		c := s[i]
		if c == '}' || c == ':' || c == '=' {
			return s[start:i], i, c, nil
		}
		if !class(c) {
			return "", 0, 0, syntaxErrorf(placeholderStart, "illegal character %q", c)
		}
		i++
	}
	return "", 0, 0, syntaxErrorf(placeholderStart, "missing closing brace")
}

// scanDefinition consumes an inline definition body starting right after
// '=', up to and including the matching '}'. A '{' inside the body is a
// syntax error. Returns the definition text and the index past '}'.
func scanDefinition(s string, i int, placeholderStart int) (string, int, error) {
	start := i
	n := len(s)
	for i < n {
		switch s[i] {
		case '}':
			if i == start {
				return "", 0, syntaxErrorf(placeholderStart, "empty inline definition")
			}
			return s[start:i], i + 1, nil
		case '{':
			return "", 0, syntaxErrorf(placeholderStart, "brace inside inline definition")
		}
		i++
	}
	return "", 0, syntaxErrorf(placeholderStart, "missing closing brace")
}
