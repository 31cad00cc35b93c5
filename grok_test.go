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

package grok_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmastrac/grok"
)

func TestUsername(t *testing.T) {
	d := grok.NewDictionary()
	d.AddPattern("USERNAME", "[a-zA-Z0-9._-]+")

	p, err := d.Compile("%{USERNAME}", false)
	require.NoError(t, err)

	m := p.MatchAgainst("root")
	require.NotNil(t, m)
	v, ok := m.Get("USERNAME")
	assert.True(t, ok)
	assert.Equal(t, "root", v)
}

func TestAliased(t *testing.T) {
	d := grok.NewDictionary()
	d.AddPattern("USERNAME", "[a-zA-Z0-9._-]+")

	p, err := d.Compile("%{USERNAME:user}", false)
	require.NoError(t, err)

	m := p.MatchAgainst("root")
	require.NotNil(t, m)
	v, ok := m.Get("user")
	assert.True(t, ok)
	assert.Equal(t, "root", v)

	_, ok = m.Get("USERNAME")
	assert.False(t, ok)
}

func TestDuplicateNames(t *testing.T) {
	d := grok.NewDictionary()
	d.AddPattern("WORD", "[A-Za-z]+")

	p, err := d.Compile("%{WORD} %{WORD}", false)
	require.NoError(t, err)

	m := p.MatchAgainst("hello world")
	require.NotNil(t, m)

	v, ok := m.Get("WORD")
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	v, ok = m.Get("WORD[1]")
	assert.True(t, ok)
	assert.Equal(t, "world", v)
}

func TestAliasLastWins(t *testing.T) {
	d := grok.NewDictionary()
	d.AddPattern("WORD", "[A-Za-z]+")

	p, err := d.Compile("%{WORD:x} %{WORD:x}", false)
	require.NoError(t, err)

	m := p.MatchAgainst("hello world")
	require.NotNil(t, m)

	v, ok := m.Get("x")
	assert.True(t, ok)
	assert.Equal(t, "world", v)

	pairs := m.Iter()
	count := 0
	for _, pr := range pairs {
		if pr.Key == "x" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestLogLine(t *testing.T) {
	d := grok.NewDictionaryWithDefaults()

	p, err := d.Compile(`%{TIMESTAMP_ISO8601:timestamp} \[%{IPV4:ip}:%{WORD:environment}\] %{LOGLEVEL:log_level} %{GREEDYDATA:message}`, false)
	require.NoError(t, err)

	m := p.MatchAgainst("2016-09-19T18:19:00 [8.8.8.8:prd] DEBUG this is an example log message")
	require.NotNil(t, m)

	for key, want := range map[string]string{
		"timestamp":   "2016-09-19T18:19:00",
		"ip":          "8.8.8.8",
		"environment": "prd",
		"log_level":   "DEBUG",
		"message":     "this is an example log message",
	} {
		v, ok := m.Get(key)
		assert.Truef(t, ok, "missing %s", key)
		assert.Equal(t, want, v, key)
	}
}

func TestInlineDefScope(t *testing.T) {
	d := grok.NewDictionary()

	_, err := d.Compile("%{X=foo}", false)
	require.NoError(t, err)

	_, err = d.Compile("%{X}", false)
	assert.ErrorIs(t, err, grok.ErrDefinitionNotFound)
}

func TestRecursionGuard(t *testing.T) {
	d := grok.NewDictionary()
	d.AddPattern("A", "%{B}")
	d.AddPattern("B", "%{A}")

	_, err := d.Compile("%{A}", false)
	require.Error(t, err)
}

func TestLiteralPercentImmunity(t *testing.T) {
	d := grok.NewDictionary()
	d.AddPattern("WORD", "[a-z]+")

	for _, tmpl := range []string{"(%){WORD}", "(?:%){WORD}", `\x25{WORD}`} {
		p, err := d.Compile("100"+tmpl, false)
		require.NoError(t, err)
		assert.Empty(t, p.CaptureNames())
	}
}

func TestLiteralPercentAgainstSubject(t *testing.T) {
	d := grok.NewDictionary()
	d.AddPattern("WORD", "[a-z]+")

	p, err := d.Compile("100(%){WORD}", false)
	require.NoError(t, err)

	m := p.MatchAgainst("100%abc")
	require.NotNil(t, m)
	assert.Empty(t, p.CaptureNames())
}

func TestCaptureNamesPairwiseDistinct(t *testing.T) {
	d := grok.NewDictionary()
	d.AddPattern("WORD", "[A-Za-z]+")

	p, err := d.Compile("%{WORD} %{WORD} %{WORD:x} %{WORD:x}", false)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, n := range p.CaptureNames() {
		assert.False(t, seen[n], "duplicate display key %q", n)
		seen[n] = true
	}
}

func TestNamedCapturesOnlySuppressesUnaliased(t *testing.T) {
	d := grok.NewDictionary()
	d.AddPattern("WORD", "[A-Za-z]+")

	p, err := d.Compile("%{WORD} %{WORD:w}", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"w"}, p.CaptureNames())
}

func TestExtractIsOpaque(t *testing.T) {
	d := grok.NewDictionary()
	d.AddPattern("WORD", "[A-Za-z]+")

	p, err := d.Compile("%{WORD:w:mytag}", false)
	require.NoError(t, err)

	ex, ok := p.Extract("w")
	assert.True(t, ok)
	assert.Equal(t, "mytag", ex)

	m := p.MatchAgainst("hello")
	require.NotNil(t, m)
	v, ok := m.Get("w")
	assert.True(t, ok)
	assert.Equal(t, "hello", v, "extract must not alter the captured value")
}

func TestEmptyAliasWithExtractIsAllowed(t *testing.T) {
	d := grok.NewDictionary()
	d.AddPattern("WORD", "[A-Za-z]+")

	p, err := d.Compile("%{WORD::mytag}", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"WORD"}, p.CaptureNames())
}

func TestNoMatchReturnsNil(t *testing.T) {
	d := grok.NewDictionary()
	d.AddPattern("WORD", "[a-z]+")

	p, err := d.Compile("%{WORD}", false)
	require.NoError(t, err)

	assert.Nil(t, p.MatchAgainst("123"))
}

func TestDictionaryMutationDoesNotAffectCompiledPattern(t *testing.T) {
	d := grok.NewDictionary()
	d.AddPattern("WORD", "[a-z]+")

	p, err := d.Compile("%{WORD}", false)
	require.NoError(t, err)

	d.AddPattern("WORD", "[0-9]+")

	m := p.MatchAgainst("abc")
	require.NotNil(t, m)
	v, _ := m.Get("WORD")
	assert.Equal(t, "abc", v)
}

func TestPatternSyntaxError(t *testing.T) {
	d := grok.NewDictionary()
	_, err := d.Compile("%{name=}", false)
	assert.ErrorIs(t, err, grok.ErrPatternSyntax)
}

func TestInlineDefinitionSiblingSharing(t *testing.T) {
	d := grok.NewDictionary()

	p, err := d.Compile(`%{NEW_PATTERN:first=\w+} %{NEW_PATTERN:second}`, false)
	require.NoError(t, err)

	m := p.MatchAgainst("hello world")
	require.NotNil(t, m)

	v, ok := m.Get("first")
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	v, ok = m.Get("second")
	assert.True(t, ok)
	assert.Equal(t, "world", v)
}
