// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package lang

import (
	"sync"

	"go.astrophena.name/fixlicense/internal/header"
)

var cBlock = []header.Delim{{Open: "/*", Close: "*/"}}

// defaultProfiles are the languages known without any configuration.
var defaultProfiles = []Profile{
	{
		Name:       "c",
		Comments:   header.Syntax{Line: []string{"//"}, Block: cBlock},
		Extensions: []string{".c", ".cpp", ".h", ".hpp"},
	},
	{
		Name:       "python",
		Comments:   header.Syntax{Line: []string{"#"}, Block: []header.Delim{{Open: `"""`, Close: `"""`}}},
		Extensions: []string{".py"},
	},
	{
		Name:       "bash",
		Comments:   header.Syntax{Line: []string{"#"}},
		Extensions: []string{".sh"},
	},
	{
		Name:       "java",
		Comments:   header.Syntax{Line: []string{"//"}, Block: cBlock},
		Extensions: []string{".java"},
	},
	{
		Name:       "go",
		Comments:   header.Syntax{Line: []string{"//"}, Block: cBlock},
		Extensions: []string{".go"},
	},
}

// defaultAliases map interpreter names to languages.
var defaultAliases = map[string]string{
	"sh": "bash",
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := NewTable(defaultProfiles, defaultAliases)
	if err != nil {
		panic(err)
	}
	return t
})

// Default returns the table of default languages.
func Default() *Table { return defaultTable() }
