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

// Package grokerr holds the sentinel errors shared by the tokenizer,
// compiler and the public grok package. Kept in its own package so
// internal/groktoken and internal/grokcompile can return them without
// importing the root package (which imports both).
package grokerr

import "errors"

var (
	// ErrPatternSyntax is returned for malformed %{...} placeholders:
	// a missing closing brace, an empty or illegal name, an illegal
	// alias/extract character, or a brace inside an inline definition.
	ErrPatternSyntax = errors.New("grok: pattern syntax error")

	// ErrDefinitionNotFound is returned when a placeholder references a
	// name that is neither inline-defined nor present in the dictionary.
	ErrDefinitionNotFound = errors.New("grok: pattern definition not found")

	// ErrRecursionLimit is returned when expansion nests deeper than the
	// compiler's configured limit.
	ErrRecursionLimit = errors.New("grok: recursion limit exceeded")

	// ErrCycle is returned when a placeholder's own expansion would
	// require resolving itself again.
	ErrCycle = errors.New("grok: cyclic pattern definition")

	// ErrRegexCompilation is returned when the selected engine rejects
	// the assembled regex source.
	ErrRegexCompilation = errors.New("grok: regex engine rejected compiled pattern")

	// ErrInternalInvariant marks a compiler bug: an internal capture
	// name the allocator recorded never made it into the engine's
	// reported capture-name set.
	ErrInternalInvariant = errors.New("grok: internal invariant violated")
)
