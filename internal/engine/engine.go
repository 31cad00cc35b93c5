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

// Package engine is the regex back-end abstraction the compiler and
// match projection consume (spec.md §4.4). Exactly one implementation
// is linked in per build: engine_re2.go (default) or engine_coregex.go
// (-tags coregex). Both expose the same narrow interface, grounded on
// the teacher's regexp/compile.go Matcher interface.
package engine

// Regex is a compiled pattern, narrowed to what the compiler and match
// projection need: locating a match and mapping named groups back to
// ordinals. FindAllStringSubmatchIndex is used instead of the singular
// FindStringSubmatchIndex because it is the one both wired back-ends are
// confirmed, in this retrieval pack, to implement (the teacher's own
// Matcher interface names it explicitly).
type Regex interface {
	// FindAllStringSubmatchIndex returns up to n matches' group
	// boundaries, each as [start0, end0, start1, end1, ...]; nil if the
	// subject does not match. A negative pair marks a group that did
	// not participate in the match. Pattern.MatchAgainst only ever asks
	// for the first (n=1).
	FindAllStringSubmatchIndex(subject string, n int) [][]int

	// SubexpNames returns one entry per group ordinal (index 0 is the
	// whole match and is always ""); named groups report their name.
	SubexpNames() []string
}
