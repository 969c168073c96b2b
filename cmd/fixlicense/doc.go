// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Fixlicense makes sure that source files start with the same license header.

# Usage

	$ fixlicense [flags...] <header file> <file>...

For every file, fixlicense looks for a line containing one of the license
indicators ("license", "licence", "copyright" and "author" by default, in this
order) inside a comment. The whole comment holding that line is the license
header of the file. If it differs from the contents of the header file, it's
replaced. If no such comment exists, the header is inserted at the top of the
file.

The header file is taken literally, so it must already be written as a
comment in the language of the files.

The language of a file is determined by its extension or, failing that, by the
interpreter named in its shebang line. Use -l to set it explicitly. The
languages known by default are c, python, bash, java and go.

By default the header is separated from the code around it by a blank line.
Pass -n=false to disable that.

# Configuration

Languages and indicators can be configured with a Starlark file passed with
-config or the FIXLICENSE_CONFIG environment variable:

	languages = [
	    language(
	        name = "lua",
	        line = ["--"],
	        block = [("--[[", "]]")],
	        extensions = [".lua"],
	        aliases = ["luajit"],
	    ),
	]
	indicators = ["copyright", "license"]

Languages are added to the default ones, replacing those with the same name.
Indicators replace the default ones.

# Exit status

Fixlicense exits with non-zero status if the language of any file can't be
determined (no file is changed in this case), if any file can't be read or
written, or, with -dry, if any file needs changes. Files that need changes are
printed to standard output in -dry mode.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/fixlicense/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
