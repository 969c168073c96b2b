// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import "slices"

// Status is the outcome of [Reconcile].
type Status int

const (
	// StatusCorrect means the file already has the canonical header.
	StatusCorrect Status = iota
	// StatusReplaced means an existing header was replaced.
	StatusReplaced
	// StatusInserted means the file had no header and one was inserted at
	// the top.
	StatusInserted
)

func (s Status) String() string {
	switch s {
	case StatusCorrect:
		return "correct"
	case StatusReplaced:
		return "replaced"
	case StatusInserted:
		return "inserted"
	default:
		return "unknown"
	}
}

// Reason explains why a header was inserted.
type Reason int

const (
	// ReasonNone is used when a header was found.
	ReasonNone Reason = iota
	// ReasonNoIndicator means no indicator appears anywhere in the file.
	ReasonNoIndicator
	// ReasonNoComment means indicators were found, but none of them inside
	// a comment block.
	ReasonNoComment
)

// Options control [Reconcile].
type Options struct {
	// Indicators are tried in order to find the license header. If empty,
	// DefaultIndicators are used.
	Indicators []string
	// Pad means that the header is separated from the surrounding code with
	// a blank line.
	Pad bool
}

// Result describes what Reconcile found and did.
type Result struct {
	Status Status
	Reason Reason
	// Indicator is the indicator that located the header and Line the line
	// it was found on. Both are unset if the header was inserted.
	Indicator string
	Line      int
	// Range is the range of the original lines that held the header, or
	// NotFound.
	Range Range
	// Lines holds the new file contents. It's nil if Status is
	// StatusCorrect.
	Lines []string
}

// Changed reports whether the file contents have to be rewritten.
func (r Result) Changed() bool { return r.Status != StatusCorrect }

// Block returns the original lines that held the header.
func (r Result) Block(lines []string) []string {
	if !r.Range.Valid() {
		return nil
	}
	return lines[r.Range.Begin : r.Range.End+1]
}

// Reconcile compares the license header of the file with canonical and
// computes the new file contents if they differ.
//
// Each indicator is searched for in turn. The first one found inside a
// comment block identifies the header, which is compared line by line with
// canonical, padded with blank lines if opts.Pad is set and the block doesn't
// touch the start or the end of the file. If no indicator leads to a comment
// block, canonical is inserted at the top of the file in place of any blank
// lines there.
func Reconcile(lines, canonical []string, syntax Syntax, opts Options) Result {
	indicators := opts.Indicators
	if len(indicators) == 0 {
		indicators = DefaultIndicators
	}

	reason := ReasonNoIndicator
	for rest := indicators; len(rest) > 0; {
		hit, i := FindIndicator(lines, rest)
		if hit < 0 {
			break
		}
		ind := rest[i]
		rest = rest[i+1:]
		reason = ReasonNoComment

		r := ExtractBlock(lines, hit, syntax)
		if !r.Valid() {
			continue
		}

		res := Result{
			Indicator: ind,
			Line:      hit,
			Range:     r,
		}
		want := pad(canonical, opts.Pad && r.Begin > 0, opts.Pad && r.End < len(lines)-1)
		if slices.Equal(lines[r.Begin:r.End+1], want) {
			res.Status = StatusCorrect
			return res
		}
		res.Status = StatusReplaced
		res.Lines = splice(lines, r, want)
		return res
	}

	// Leading blank lines would be absorbed into the header block on the next
	// run, so they are replaced.
	top := Range{Begin: 0, End: -1}
	for top.End < len(lines)-1 && isBlank(lines[top.End+1]) {
		top.End++
	}
	return Result{
		Status: StatusInserted,
		Reason: reason,
		Line:   -1,
		Range:  NotFound,
		Lines:  splice(lines, top, pad(canonical, false, opts.Pad && top.End < len(lines)-1)),
	}
}

// pad returns a copy of canonical with blank lines added.
func pad(canonical []string, before, after bool) []string {
	blank := lineEnding(canonical)
	out := make([]string, 0, len(canonical)+2)
	if before {
		out = append(out, blank)
	}
	out = append(out, canonical...)
	if after {
		out = append(out, blank)
	}
	return out
}

// splice returns lines with r replaced by repl. An empty r with End equal
// to Begin-1 inserts repl before Begin.
func splice(lines []string, r Range, repl []string) []string {
	out := make([]string, 0, len(lines)-r.Len()+len(repl))
	out = append(out, lines[:r.Begin]...)
	out = append(out, repl...)
	out = append(out, lines[r.End+1:]...)
	return out
}
