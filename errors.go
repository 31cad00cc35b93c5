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

import "github.com/mmastrac/grok/internal/grokerr"

// Errors Compile can return (spec.md §4.6). These are re-exported from
// internal/grokerr so internal/groktoken and internal/grokcompile can
// return them directly without importing this package.
var (
	// ErrPatternSyntax: malformed placeholder (missing brace, illegal
	// character, empty name, brace inside an inline definition).
	ErrPatternSyntax = grokerr.ErrPatternSyntax

	// ErrDefinitionNotFound: a placeholder references a name that is
	// neither inline-defined nor present in the dictionary.
	ErrDefinitionNotFound = grokerr.ErrDefinitionNotFound

	// ErrRecursionLimit: the definition graph nests deeper than the
	// compiler's depth limit.
	ErrRecursionLimit = grokerr.ErrRecursionLimit

	// ErrCycle: a definition graph requires resolving a name that is
	// already being resolved higher up the same expansion chain.
	ErrCycle = grokerr.ErrCycle

	// ErrRegexCompilation: the linked engine back-end rejected the
	// assembled regex source.
	ErrRegexCompilation = grokerr.ErrRegexCompilation

	// ErrInternalInvariant: an internal capture name the allocator
	// recorded never made it into the engine's reported capture-name
	// set. Indicates a compiler bug, not a user error.
	ErrInternalInvariant = grokerr.ErrInternalInvariant
)
