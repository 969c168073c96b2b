// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"os"
	"strings"
)

// SplitLines splits b into lines, keeping the line endings. The last line
// has no line ending if b doesn't end with a newline.
func SplitLines(b []byte) []string {
	if len(b) == 0 {
		return nil
	}
	lines := strings.SplitAfter(string(b), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// JoinLines concatenates lines back into file contents.
func JoinLines(lines []string) []byte {
	return []byte(strings.Join(lines, ""))
}

// Load reads the canonical header from the named file.
//
// If the last line of the header has no line ending, one is added so that the
// header never runs into the line following it.
func Load(name string) ([]string, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	lines := SplitLines(b)
	if n := len(lines); n > 0 && !strings.HasSuffix(lines[n-1], "\n") {
		lines[n-1] += lineEnding(lines)
	}
	return lines, nil
}

// lineEnding returns the line ending used by lines, "\n" by default.
func lineEnding(lines []string) string {
	for _, l := range lines {
		if strings.HasSuffix(l, "\r\n") {
			return "\r\n"
		}
		if strings.HasSuffix(l, "\n") {
			return "\n"
		}
	}
	return "\n"
}

func isBlank(line string) bool { return strings.TrimSpace(line) == "" }
