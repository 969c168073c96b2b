// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package lang maps source files to the comment syntax of their language.
package lang

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.astrophena.name/fixlicense/internal/header"
)

// ErrUnknownLanguage is returned when the language of a file can't be
// determined.
var ErrUnknownLanguage = errors.New("unable to recognize language")

// Profile describes a language.
type Profile struct {
	// Name identifies the language, like "c" or "python".
	Name string
	// Comments describes the comment syntax.
	Comments header.Syntax
	// Extensions are file name suffixes, like ".c" or ".py".
	Extensions []string
}

// Table is an immutable set of language profiles. The zero value is empty.
type Table struct {
	profiles []*Profile
	byName   map[string]*Profile
	aliases  map[string]string
}

// NewTable builds a table from profiles and aliases, which map interpreter
// names found in shebang lines to profile names.
//
// A profile with the same name as an earlier one replaces it in place.
func NewTable(profiles []Profile, aliases map[string]string) (*Table, error) {
	t := &Table{
		byName:  make(map[string]*Profile),
		aliases: make(map[string]string),
	}
	for _, p := range profiles {
		if err := validate(p); err != nil {
			return nil, err
		}
		p := clone(p)
		if old, ok := t.byName[p.Name]; ok {
			t.profiles[slices.Index(t.profiles, old)] = p
		} else {
			t.profiles = append(t.profiles, p)
		}
		t.byName[p.Name] = p
	}
	for alias, name := range aliases {
		if _, ok := t.byName[name]; !ok {
			return nil, fmt.Errorf("alias %q refers to unknown language %q", alias, name)
		}
		t.aliases[strings.ToLower(alias)] = name
	}
	return t, nil
}

func validate(p Profile) error {
	if p.Name == "" {
		return errors.New("language has no name")
	}
	if len(p.Comments.Line) == 0 && len(p.Comments.Block) == 0 {
		return fmt.Errorf("language %q has no comment syntax", p.Name)
	}
	for _, l := range p.Comments.Line {
		if strings.TrimSpace(l) == "" {
			return fmt.Errorf("language %q has an empty line comment prefix", p.Name)
		}
	}
	for _, b := range p.Comments.Block {
		if strings.TrimSpace(b.Open) == "" || strings.TrimSpace(b.Close) == "" {
			return fmt.Errorf("language %q has an empty block comment delimiter", p.Name)
		}
	}
	for _, ext := range p.Extensions {
		if ext == "" {
			return fmt.Errorf("language %q has an empty extension", p.Name)
		}
	}
	return nil
}

func clone(p Profile) *Profile {
	return &Profile{
		Name: p.Name,
		Comments: header.Syntax{
			Line:  slices.Clone(p.Comments.Line),
			Block: slices.Clone(p.Comments.Block),
		},
		Extensions: slices.Clone(p.Extensions),
	}
}

// Names returns the names of all languages in the table, in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.profiles))
	for i, p := range t.profiles {
		names[i] = p.Name
	}
	return names
}

// Profiles returns copies of all profiles in the table, in table order.
func (t *Table) Profiles() []Profile {
	out := make([]Profile, len(t.profiles))
	for i, p := range t.profiles {
		out[i] = *clone(*p)
	}
	return out
}

// Aliases returns a copy of the alias map.
func (t *Table) Aliases() map[string]string {
	out := make(map[string]string, len(t.aliases))
	for k, v := range t.aliases {
		out[k] = v
	}
	return out
}

// Lookup returns the profile with the given name.
func (t *Table) Lookup(name string) (Profile, bool) {
	p, ok := t.byName[name]
	if !ok {
		return Profile{}, false
	}
	return *clone(*p), true
}

// Resolve determines the language of the named file.
//
// If override is not empty, it names the language to use. Otherwise the file
// name is matched against the extensions of each profile and, failing that,
// firstLine is inspected for a shebang naming an interpreter. The returned
// error wraps [ErrUnknownLanguage] if nothing matches.
func (t *Table) Resolve(name, override, firstLine string) (Profile, error) {
	if override != "" {
		p, ok := t.Lookup(override)
		if !ok {
			return Profile{}, fmt.Errorf("%w: unknown language %q", ErrUnknownLanguage, override)
		}
		return p, nil
	}

	base := filepath.Base(name)
	for _, p := range t.profiles {
		for _, ext := range p.Extensions {
			if strings.HasSuffix(base, ext) {
				return *clone(*p), nil
			}
		}
	}

	if interp := Interpreter(firstLine); interp != "" {
		if p, ok := t.Lookup(interp); ok {
			return p, nil
		}
		if p, ok := t.Lookup(t.aliases[interp]); ok {
			return p, nil
		}
	}

	return Profile{}, fmt.Errorf("%w used in %s", ErrUnknownLanguage, name)
}

// Interpreter returns the interpreter named by a shebang line, lowercased and
// without version suffix: "#!/usr/bin/env python3" yields "python". It returns
// an empty string if line is not a shebang.
func Interpreter(line string) string {
	line = strings.ToLower(strings.TrimSpace(line))
	rest, ok := strings.CutPrefix(line, "#!")
	if !ok {
		return ""
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return ""
	}
	prog := filepath.Base(fields[0])
	if prog == "env" {
		prog = ""
		for _, f := range fields[1:] {
			// Skip env options like -S and variable assignments.
			if strings.HasPrefix(f, "-") || strings.Contains(f, "=") {
				continue
			}
			prog = filepath.Base(f)
			break
		}
	}
	return strings.TrimRight(prog, "0123456789.")
}
