// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package lang

import (
	"errors"
	"testing"

	"go.astrophena.name/fixlicense/internal/header"
	"go.astrophena.name/fixlicense/internal/testutil"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		name      string
		override  string
		firstLine string
		want      string
		wantErr   error
	}{
		"c source":                 {name: "main.c", want: "c"},
		"cpp header":               {name: "include/foo.hpp", want: "c"},
		"python":                   {name: "setup.py", want: "python"},
		"shell":                    {name: "build.sh", want: "bash"},
		"java":                     {name: "src/Main.java", want: "java"},
		"go":                       {name: "cmd/fixlicense/main.go", want: "go"},
		"override wins":            {name: "main.c", override: "python", want: "python"},
		"unknown override":         {name: "main.c", override: "cobol", wantErr: ErrUnknownLanguage},
		"shebang":                  {name: "script", firstLine: "#!/bin/bash\n", want: "bash"},
		"shebang env":              {name: "script", firstLine: "#!/usr/bin/env python3\n", want: "python"},
		"shebang alias":            {name: "script", firstLine: "#!/bin/sh -e\n", want: "bash"},
		"shebang uppercase":        {name: "script", firstLine: "#!/usr/bin/env Python\n", want: "python"},
		"extension before shebang": {name: "tool.py", firstLine: "#!/bin/sh\n", want: "python"},
		"unknown shebang":          {name: "script", firstLine: "#!/usr/bin/perl\n", wantErr: ErrUnknownLanguage},
		"no shebang":               {name: "README", firstLine: "Hello\n", wantErr: ErrUnknownLanguage},
		"empty file":               {name: "empty", wantErr: ErrUnknownLanguage},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p, err := Default().Resolve(tc.name, tc.override, tc.firstLine)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, p.Name, tc.want)
		})
	}
}

func TestInterpreter(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"#!/bin/sh":                    "sh",
		"#! /bin/bash -eu":             "bash",
		"#!/usr/bin/env python3.11":    "python",
		"#!/usr/bin/env -S python3 -u": "python",
		"#!/usr/bin/env LANG=C bash":   "bash",
		"#!/usr/bin/env":               "",
		"#!":                           "",
		"# not a shebang":              "",
		"":                             "",
		"package main":                 "",
		"  #!/bin/sh":                  "sh",
	}

	for line, want := range cases {
		testutil.AssertEqual(t, Interpreter(line), want)
	}
}

func TestNewTable(t *testing.T) {
	t.Parallel()

	rust := Profile{
		Name:       "rust",
		Comments:   header.Syntax{Line: []string{"//"}},
		Extensions: []string{".rs"},
	}
	shell := Profile{
		Name:       "bash",
		Comments:   header.Syntax{Line: []string{"#"}},
		Extensions: []string{".sh", ".bash"},
	}

	tbl, err := NewTable(append(Default().Profiles(), rust, shell), map[string]string{"rustc": "rust", "SH": "bash"})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, tbl.Names(), []string{"c", "python", "bash", "java", "go", "rust"})

	p, err := tbl.Resolve("lib.rs", "", "")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, p, rust)

	p, err = tbl.Resolve("x.bash", "", "")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, p.Name, "bash")

	p, err = tbl.Resolve("script", "", "#!/usr/bin/rustc")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, p.Name, "rust")

	testutil.AssertEqual(t, tbl.Aliases(), map[string]string{"rustc": "rust", "sh": "bash"})
}

func TestNewTableInvalid(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		profiles []Profile
		aliases  map[string]string
	}{
		"no name": {
			profiles: []Profile{{Comments: header.Syntax{Line: []string{"#"}}}},
		},
		"no syntax": {
			profiles: []Profile{{Name: "x"}},
		},
		"empty prefix": {
			profiles: []Profile{{Name: "x", Comments: header.Syntax{Line: []string{" "}}}},
		},
		"empty delimiter": {
			profiles: []Profile{{Name: "x", Comments: header.Syntax{Block: []header.Delim{{Open: "/*"}}}}},
		},
		"empty extension": {
			profiles: []Profile{{Name: "x", Comments: header.Syntax{Line: []string{"#"}}, Extensions: []string{""}}},
		},
		"alias to unknown language": {
			profiles: []Profile{{Name: "x", Comments: header.Syntax{Line: []string{"#"}}}},
			aliases:  map[string]string{"y": "z"},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := NewTable(tc.profiles, tc.aliases); err == nil {
				t.Fatal("want error, got nil")
			}
		})
	}
}

func TestTableIsolated(t *testing.T) {
	t.Parallel()

	profiles := []Profile{{Name: "x", Comments: header.Syntax{Line: []string{"#"}}, Extensions: []string{".x"}}}
	tbl, err := NewTable(profiles, nil)
	if err != nil {
		t.Fatal(err)
	}
	profiles[0].Extensions[0] = ".y"

	p, ok := tbl.Lookup("x")
	if !ok {
		t.Fatal("x not found")
	}
	testutil.AssertEqual(t, p.Extensions, []string{".x"})

	p.Comments.Line[0] = "//"
	p, _ = tbl.Lookup("x")
	testutil.AssertEqual(t, p.Comments.Line, []string{"#"})
}

func TestZeroTable(t *testing.T) {
	t.Parallel()

	var tbl Table
	testutil.AssertEqual(t, len(tbl.Names()), 0)
	if _, err := tbl.Resolve("main.c", "", ""); !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("want %v, got %v", ErrUnknownLanguage, err)
	}
}
