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

//go:build !coregex

package engine

import re2 "github.com/wasilibs/go-re2"

// Compile compiles source with the default back-end, the teacher's own
// wasilibs/go-re2 (a WASM-hosted RE2).
func Compile(source string) (Regex, error) {
	return re2.Compile(source)
}

// MustCompile is like Compile but panics on error; useful for the
// bundled default pattern corpus, which is never user-supplied.
func MustCompile(source string) Regex {
	return re2.MustCompile(source)
}
