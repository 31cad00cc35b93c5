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

// Package grokcompile recursively expands a grok template against a
// pattern dictionary into a single regex source string plus a capture
// table, per spec.md §4.2/§4.3. It depends only on internal/groktoken
// and internal/grokerr: no regex engine is consulted here.
package grokcompile

import (
	"fmt"
	"strings"

	"github.com/mmastrac/grok/internal/grokerr"
	"github.com/mmastrac/grok/internal/groktoken"
)

// DefaultMaxDepth is the conservative recursion-depth default spec.md
// §9(c) asks implementers to pick; chosen independently of the
// reference implementation's MAX_RECURSION, which bounds a different
// quantity (see DESIGN.md).
const DefaultMaxDepth = 128

// Dictionary is the read side of a pattern dictionary: everything the
// compiler needs to resolve a bare placeholder name.
type Dictionary interface {
	Lookup(name string) (string, bool)
}

// CaptureEntry is one row of the capture table: one per placeholder
// occurrence that participates in output.
type CaptureEntry struct {
	InternalID string
	DisplayKey string
	Name       string
	Alias      string
	Extract    string
	Superseded bool
}

// Result is the compiler's output: the assembled regex source and the
// ordered capture table (textual occurrence order).
type Result struct {
	Source   string
	Captures []CaptureEntry
}

// Options configures a single Compile call.
type Options struct {
	// NamedCapturesOnly suppresses output for placeholders without an
	// explicit alias (they are rendered as non-capturing groups).
	NamedCapturesOnly bool
	// MaxDepth overrides DefaultMaxDepth when non-zero.
	MaxDepth int
}

// dupState tracks display-key collision bookkeeping for one origin key
// (the alias, or the name when no alias is given), per spec.md §4.3.
type dupState struct {
	count    int
	allAlias bool
	indices  []int
}

type compiler struct {
	dict     Dictionary
	opts     Options
	maxDepth int
	counter  int
	captures []CaptureEntry
	dups     map[string]*dupState
	buf      strings.Builder
}

// Compile expands template against dict and returns the assembled regex
// source plus capture table, or one of the errors in internal/grokerr.
func Compile(template string, dict Dictionary, opts Options) (*Result, error) {
	c := &compiler{
		dict:     dict,
		opts:     opts,
		maxDepth: opts.MaxDepth,
		dups:     map[string]*dupState{},
	}
	if c.maxDepth <= 0 {
		c.maxDepth = DefaultMaxDepth
	}

	if err := c.expand(template, map[string]bool{}, 0); err != nil {
		return nil, err
	}

	return &Result{Source: c.buf.String(), Captures: c.captures}, nil
}

// expand tokenizes one frame (one template string, per DESIGN.md's
// frame-scoped inline-definition resolution) and emits its spans.
// visiting is the ancestor-chain cycle guard; frameShadow holds inline
// definitions bound so far within this frame, visible to later siblings
// only.
func (c *compiler) expand(template string, visiting map[string]bool, depth int) error {
	spans, err := groktoken.Tokenize(template)
	if err != nil {
		return err
	}

	frameShadow := map[string]string{}

	for _, sp := range spans {
		switch t := sp.(type) {
		case groktoken.Literal:
			c.buf.WriteString(t.Text)
		case groktoken.Placeholder:
			if err := c.expandPlaceholder(t, frameShadow, visiting, depth); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *compiler) expandPlaceholder(p groktoken.Placeholder, frameShadow map[string]string, visiting map[string]bool, depth int) error {
	definition, err := c.resolve(p, frameShadow)
	if err != nil {
		return err
	}

	if visiting[p.Name] {
		return fmt.Errorf("grok: placeholder %q: %w", p.Name, grokerr.ErrCycle)
	}
	if depth+1 > c.maxDepth {
		return fmt.Errorf("grok: placeholder %q exceeds depth %d: %w", p.Name, c.maxDepth, grokerr.ErrRecursionLimit)
	}

	participates := p.Alias != "" || !c.opts.NamedCapturesOnly

	if participates {
		c.openCapture(p)
	} else {
		c.buf.WriteString("(?:")
	}

	// A frame-scoped binding for later siblings; not inherited by the
	// recursive expansion of this occurrence's own definition.
	if p.HasDefinition {
		frameShadow[p.Name] = p.Definition
	}

	childVisiting := make(map[string]bool, len(visiting)+1)
	for k := range visiting {
		childVisiting[k] = true
	}
	childVisiting[p.Name] = true

	if err := c.expand(definition, childVisiting, depth+1); err != nil {
		return err
	}

	c.buf.WriteString(")")
	return nil
}

func (c *compiler) resolve(p groktoken.Placeholder, frameShadow map[string]string) (string, error) {
	if p.HasDefinition {
		return p.Definition, nil
	}
	if d, ok := frameShadow[p.Name]; ok {
		return d, nil
	}
	if d, ok := c.dict.Lookup(p.Name); ok {
		return d, nil
	}
	return "", fmt.Errorf("grok: placeholder %q: %w", p.Name, grokerr.ErrDefinitionNotFound)
}

// openCapture applies the display-key duplicate policy (spec.md §4.3),
// allocates the internal capture name, records the capture-table entry,
// and opens the named group.
func (c *compiler) openCapture(p groktoken.Placeholder) {
	origKey := p.Name
	isAliasOrigin := p.Alias != ""
	if isAliasOrigin {
		origKey = p.Alias
	}

	ds := c.dups[origKey]
	if ds == nil {
		ds = &dupState{allAlias: true}
		c.dups[origKey] = ds
	}

	var displayKey string
	switch {
	case ds.count == 0:
		displayKey = origKey
	case isAliasOrigin && ds.allAlias:
		for _, idx := range ds.indices {
			c.captures[idx].Superseded = true
		}
		displayKey = origKey
	default:
		displayKey = fmt.Sprintf("%s[%d]", origKey, ds.count)
	}
	ds.allAlias = ds.allAlias && isAliasOrigin
	ds.count++

	internalID := fmt.Sprintf("_k%d", c.counter)
	c.counter++

	c.captures = append(c.captures, CaptureEntry{
		InternalID: internalID,
		DisplayKey: displayKey,
		Name:       p.Name,
		Alias:      p.Alias,
		Extract:    p.Extract,
	})
	ds.indices = append(ds.indices, len(c.captures)-1)

	c.buf.WriteString("(?P<")
	c.buf.WriteString(internalID)
	c.buf.WriteString(">")
}
