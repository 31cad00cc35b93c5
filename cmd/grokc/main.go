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

// grokc compiles a grok template against the bundled default pattern
// dictionary (plus any -pattern overrides) and matches it against lines
// read from stdin, printing one "key=value ..." line per match.
//
// Usage:
//
//	echo "root" | grokc '%{USERNAME:user}'
//	cat access.log | grokc -pattern 'MYDATE=\d{4}-\d{2}-\d{2}' '%{MYDATE:date} %{GREEDYDATA:rest}'
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mmastrac/grok"
)

// overrides collects repeated -pattern name=definition flags.
type overrides []string

func (o *overrides) String() string { return strings.Join(*o, ",") }

func (o *overrides) Set(v string) error {
	*o = append(*o, v)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "grokc: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, input io.Reader, output, errOutput io.Writer) error {
	fs := flag.NewFlagSet("grokc", flag.ContinueOnError)
	fs.SetOutput(errOutput)

	var over overrides
	var namedOnly bool
	fs.Var(&over, "pattern", "additional NAME=definition pattern, may repeat")
	fs.BoolVar(&namedOnly, "named-only", false, "only emit aliased fields")

	fs.Usage = func() {
		fmt.Fprintln(errOutput, "usage: grokc [-pattern NAME=DEFINITION ...] [-named-only] TEMPLATE")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one TEMPLATE argument")
	}
	template := fs.Arg(0)

	dict := grok.NewDictionaryWithDefaults()
	for _, o := range over {
		name, def, ok := strings.Cut(o, "=")
		if !ok {
			return fmt.Errorf("invalid -pattern %q: expected NAME=DEFINITION", o)
		}
		dict.AddPattern(name, def)
	}

	pattern, err := dict.Compile(template, namedOnly)
	if err != nil {
		return fmt.Errorf("compiling template: %w", err)
	}

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := scanner.Text()
		m := pattern.MatchAgainst(line)
		if m == nil {
			continue
		}
		pairs := m.Iter()
		fields := make([]string, 0, len(pairs))
		for _, p := range pairs {
			fields = append(fields, p.Key+"="+p.Value)
		}
		fmt.Fprintln(output, strings.Join(fields, " "))
	}
	return scanner.Err()
}
