// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package config loads fixlicense configuration written in [Starlark].
//
// A configuration file may define two globals:
//
//	languages = [
//	    language(
//	        name = "rust",
//	        line = ["//"],
//	        block = [("/*", "*/")],
//	        extensions = [".rs"],
//	        aliases = ["rustc"],
//	    ),
//	]
//	indicators = ["copyright", "license"]
//
// Languages extend the default ones, replacing those with the same name.
// Indicators, if set, replace the default indicators. Other globals are
// ignored.
//
// [Starlark]: https://github.com/bazelbuild/starlark
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"go.astrophena.name/fixlicense/internal/header"
	"go.astrophena.name/fixlicense/internal/lang"
	"go.astrophena.name/fixlicense/internal/logger"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Config is the loaded configuration.
type Config struct {
	// Languages used to resolve files.
	Languages *lang.Table
	// Indicators used to locate license headers, in order of priority.
	Indicators []string
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Languages:  lang.Default(),
		Indicators: slices.Clone(header.DefaultIndicators),
	}
}

// Load reads and evaluates the configuration file name. Messages printed by
// the configuration are passed to logf.
func Load(name string, logf logger.Logf) (*Config, error) {
	src, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return Parse(name, src, logf)
}

// Parse evaluates configuration source src. The name is used in error
// messages.
func Parse(name string, src []byte, logf logger.Logf) (*Config, error) {
	globals, err := starlark.ExecFileOptions(
		&syntax.FileOptions{
			TopLevelControl: true,
		},
		&starlark.Thread{
			Name:  name,
			Print: func(_ *starlark.Thread, msg string) { logf("%s", msg) },
		},
		name,
		src,
		starlark.StringDict{
			"language": starlark.NewBuiltin("language", languageBuiltin),
		},
	)
	if err != nil {
		return nil, err
	}

	cfg := Default()

	if v, ok := globals["languages"]; ok {
		list, ok := v.(*starlark.List)
		if !ok {
			return nil, fmt.Errorf("%s: languages must be a list, got %s", name, v.Type())
		}
		defaults := lang.Default()
		profiles := defaults.Profiles()
		aliases := defaults.Aliases()
		for i := range list.Len() {
			l, ok := list.Index(i).(*language)
			if !ok {
				return nil, fmt.Errorf("%s: languages[%d] must be created by language(), got %s", name, i, list.Index(i).Type())
			}
			profiles = append(profiles, l.profile)
			for _, a := range l.aliases {
				aliases[a] = l.profile.Name
			}
		}
		cfg.Languages, err = lang.NewTable(profiles, aliases)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	if v, ok := globals["indicators"]; ok {
		cfg.Indicators, err = stringList(v)
		if err != nil {
			return nil, fmt.Errorf("%s: indicators: %w", name, err)
		}
		if len(cfg.Indicators) == 0 {
			return nil, fmt.Errorf("%s: indicators must not be empty", name)
		}
	}

	return cfg, nil
}

// language is a Starlark value describing a language.
type language struct {
	profile lang.Profile
	aliases []string
}

func (l *language) String() string        { return fmt.Sprintf("<language name=%q>", l.profile.Name) }
func (l *language) Type() string          { return "language" }
func (l *language) Freeze()               {} // immutable
func (l *language) Truth() starlark.Bool  { return starlark.Bool(l.profile.Name != "") }
func (l *language) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable: %s", l.Type()) }

func languageBuiltin(_ *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(args) > 0 {
		return nil, errors.New("unexpected positional arguments")
	}
	var (
		name                           string
		line, block, extensions, alias starlark.Value
	)
	if err := starlark.UnpackArgs("language", args, kwargs,
		"name", &name,
		"line?", &line,
		"block?", &block,
		"extensions?", &extensions,
		"aliases?", &alias,
	); err != nil {
		return nil, err
	}

	l := &language{profile: lang.Profile{Name: name}}
	var err error
	if l.profile.Comments.Line, err = stringList(line); err != nil {
		return nil, fmt.Errorf("line: %w", err)
	}
	if l.profile.Extensions, err = stringList(extensions); err != nil {
		return nil, fmt.Errorf("extensions: %w", err)
	}
	if l.aliases, err = stringList(alias); err != nil {
		return nil, fmt.Errorf("aliases: %w", err)
	}
	if block != nil {
		list, ok := block.(*starlark.List)
		if !ok {
			return nil, fmt.Errorf("block: want a list, got %s", block.Type())
		}
		for i := range list.Len() {
			d, err := delim(list.Index(i))
			if err != nil {
				return nil, fmt.Errorf("block[%d]: %w", i, err)
			}
			l.profile.Comments.Block = append(l.profile.Comments.Block, d)
		}
	}
	return l, nil
}

func delim(v starlark.Value) (header.Delim, error) {
	var pair []string
	switch v := v.(type) {
	case starlark.Tuple:
		s, err := stringList(starlark.NewList(v))
		if err != nil {
			return header.Delim{}, err
		}
		pair = s
	case *starlark.List:
		s, err := stringList(v)
		if err != nil {
			return header.Delim{}, err
		}
		pair = s
	default:
		return header.Delim{}, fmt.Errorf("want a pair of strings, got %s", v.Type())
	}
	if len(pair) != 2 {
		return header.Delim{}, fmt.Errorf("want a pair of strings, got %d elements", len(pair))
	}
	return header.Delim{Open: pair[0], Close: pair[1]}, nil
}

// stringList converts a Starlark list of strings. A nil value yields a nil
// slice.
func stringList(v starlark.Value) ([]string, error) {
	if v == nil || v == starlark.None {
		return nil, nil
	}
	list, ok := v.(*starlark.List)
	if !ok {
		return nil, fmt.Errorf("want a list, got %s", v.Type())
	}
	out := make([]string, 0, list.Len())
	for i := range list.Len() {
		s, ok := starlark.AsString(list.Index(i))
		if !ok {
			return nil, fmt.Errorf("element %d must be a string, got %s", i, list.Index(i).Type())
		}
		out = append(out, s)
	}
	return out, nil
}
