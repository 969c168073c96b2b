// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package header locates license header comments in source files and
// reconciles them with a canonical header text.
//
// Files are handled as slices of lines that keep their line endings (see
// [SplitLines]). Nothing in this package touches the file system except
// [Load].
package header

import "strings"

// DefaultIndicators are the keywords used to find a license header, in order
// of priority.
var DefaultIndicators = []string{"license", "licence", "copyright", "author"}

// Delim is a pair of block comment delimiters, like "/*" and "*/".
type Delim struct {
	Open  string
	Close string
}

// Syntax describes how comments are written in a language.
type Syntax struct {
	// Line holds line comment prefixes, like "//" or "#".
	Line []string
	// Block holds block comment delimiters.
	Block []Delim
}

// Range is an inclusive range of line indices.
type Range struct {
	Begin int
	End   int
}

// NotFound is the Range returned when no comment block was found.
var NotFound = Range{Begin: -1, End: -1}

// Valid reports whether r denotes actual lines.
func (r Range) Valid() bool { return r.Begin >= 0 && r.Begin <= r.End }

// Len returns the number of lines in r.
func (r Range) Len() int {
	if !r.Valid() {
		return 0
	}
	return r.End - r.Begin + 1
}

// FindIndicator returns the index of the first line containing one of
// indicators, ignoring case, and the index of that indicator.
//
// Indicators are tried in order: the whole file is searched for the first
// indicator before the second one is considered. If nothing matches,
// FindIndicator returns (-1, -1).
func FindIndicator(lines []string, indicators []string) (line, indicator int) {
	for i, ind := range indicators {
		if n := findLine(lines, ind); n >= 0 {
			return n, i
		}
	}
	return -1, -1
}

func findLine(lines []string, indicator string) int {
	indicator = strings.ToLower(indicator)
	if indicator == "" {
		return -1
	}
	for n, l := range lines {
		if strings.Contains(strings.ToLower(l), indicator) {
			return n
		}
	}
	return -1
}

// ExtractBlock returns the range of the comment block that contains line hit,
// extended over the blank lines surrounding it.
//
// If the stripped hit line starts with a line comment prefix, the block is the
// run of adjacent lines starting with the same prefix. Otherwise hit must be
// inside a block comment: the opening delimiter is searched upwards from the
// line above hit and the closing one downwards from hit. A line ending with a
// closing delimiter found above hit before any opening one means hit is not
// inside a block comment. This is a heuristic and can be fooled by delimiters
// in string literals.
//
// ExtractBlock returns [NotFound] if there is no such block.
func ExtractBlock(lines []string, hit int, syntax Syntax) Range {
	if hit < 0 || hit >= len(lines) {
		return NotFound
	}

	var r Range
	if prefix, ok := linePrefix(lines[hit], syntax.Line); ok {
		r = lineCommentRun(lines, hit, prefix)
	} else {
		r = blockComment(lines, hit, syntax.Block)
	}
	if !r.Valid() {
		return NotFound
	}
	return absorbBlankLines(lines, r)
}

func linePrefix(line string, prefixes []string) (string, bool) {
	s := strings.TrimSpace(line)
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(s, p) {
			return p, true
		}
	}
	return "", false
}

func lineCommentRun(lines []string, hit int, prefix string) Range {
	r := Range{Begin: hit, End: hit}
	for r.Begin > 0 && inRun(lines[r.Begin-1], prefix) {
		r.Begin--
	}
	for r.End < len(lines)-1 && inRun(lines[r.End+1], prefix) {
		r.End++
	}
	return r
}

// inRun reports whether line continues a run of line comments. Interpreter
// lines look like "#" comments, but are never part of one.
func inRun(line, prefix string) bool {
	s := strings.TrimSpace(line)
	return !strings.HasPrefix(s, "#!") && strings.HasPrefix(s, prefix)
}

func blockComment(lines []string, hit int, delims []Delim) Range {
	begin, closing := -1, ""
scan:
	for i := hit - 1; i >= 0; i-- {
		s := strings.TrimSpace(lines[i])
		for _, d := range delims {
			if d.Open == "" || d.Close == "" {
				continue
			}
			if strings.HasPrefix(s, d.Open) {
				begin, closing = i, d.Close
				break scan
			}
			if strings.HasSuffix(s, d.Close) {
				// Some other block comment ends here, so hit can't be
				// inside one.
				return NotFound
			}
		}
	}
	if begin < 0 {
		return NotFound
	}

	for i := hit; i < len(lines); i++ {
		if strings.HasSuffix(strings.TrimSpace(lines[i]), closing) {
			return Range{Begin: begin, End: i}
		}
	}
	return NotFound
}

func absorbBlankLines(lines []string, r Range) Range {
	for r.Begin > 0 && isBlank(lines[r.Begin-1]) {
		r.Begin--
	}
	for r.End < len(lines)-1 && isBlank(lines[r.End+1]) {
		r.End++
	}
	return r
}
