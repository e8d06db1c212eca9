// Package ndiff produces human-readable line deltas in the style of Python's
// difflib.ndiff, built on the sequence matcher of github.com/pmezard/go-difflib.
//
// Every output line starts with a two-character tag:
//
//	"  " line common to both sequences
//	"- " line only in the first sequence
//	"+ " line only in the second sequence
//	"? " intraline hint for the line above it
package ndiff

import (
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"
)

// Line tags
const (
	TagEqual  = "  "
	TagDelete = "- "
	TagInsert = "+ "
	TagHint   = "? "
)

// similarity thresholds used to pair replaced lines for intraline hints
const (
	cutoff      = 0.75
	bestInitial = 0.74
)

// Compare returns the delta turning a into b
func Compare(a, b []string) []string {
	var out []string
	m := difflib.NewMatcher(a, b)
	for _, op := range m.GetOpCodes() {
		switch op.Tag {
		case 'r':
			out = append(out, fancyReplace(a, op.I1, op.I2, b, op.J1, op.J2)...)
		case 'd':
			out = append(out, dump(TagDelete, a, op.I1, op.I2)...)
		case 'i':
			out = append(out, dump(TagInsert, b, op.J1, op.J2)...)
		case 'e':
			out = append(out, dump(TagEqual, a, op.I1, op.I2)...)
		}
	}
	return out
}

// Changed reports whether a delta contains anything but common lines
func Changed(delta []string) bool {
	for _, line := range delta {
		if !strings.HasPrefix(line, TagEqual) {
			return true
		}
	}
	return false
}

func dump(tag string, x []string, lo, hi int) []string {
	out := make([]string, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, tag+x[i])
	}
	return out
}

func plainReplace(a []string, alo, ahi int, b []string, blo, bhi int) []string {
	if bhi-blo < ahi-alo {
		return append(dump(TagInsert, b, blo, bhi), dump(TagDelete, a, alo, ahi)...)
	}
	return append(dump(TagDelete, a, alo, ahi), dump(TagInsert, b, blo, bhi)...)
}

// fancyReplace pairs the most similar lines of a replaced block and marks
// their differences, recursing on the lines around the pair.
func fancyReplace(a []string, alo, ahi int, b []string, blo, bhi int) []string {
	best := bestInitial
	besti, bestj := -1, -1
	for j := blo; j < bhi; j++ {
		bj := chars(b[j])
		for i := alo; i < ahi; i++ {
			if a[i] == b[j] {
				continue
			}
			m := charMatcher(chars(a[i]), bj)
			if m.RealQuickRatio() > best && m.QuickRatio() > best && m.Ratio() > best {
				best, besti, bestj = m.Ratio(), i, j
			}
		}
	}
	if best < cutoff {
		return plainReplace(a, alo, ahi, b, blo, bhi)
	}

	out := fancyHelper(a, alo, besti, b, blo, bestj)
	out = append(out, qformat(a[besti], b[bestj])...)
	return append(out, fancyHelper(a, besti+1, ahi, b, bestj+1, bhi)...)
}

func fancyHelper(a []string, alo, ahi int, b []string, blo, bhi int) []string {
	switch {
	case alo < ahi && blo < bhi:
		return fancyReplace(a, alo, ahi, b, blo, bhi)
	case alo < ahi:
		return dump(TagDelete, a, alo, ahi)
	case blo < bhi:
		return dump(TagInsert, b, blo, bhi)
	}
	return nil
}

// qformat emits a replaced pair with "?" guide lines under each side
func qformat(aline, bline string) []string {
	var atags, btags strings.Builder
	ac, bc := chars(aline), chars(bline)
	for _, op := range charMatcher(ac, bc).GetOpCodes() {
		la, lb := op.I2-op.I1, op.J2-op.J1
		switch op.Tag {
		case 'r':
			atags.WriteString(strings.Repeat("^", la))
			btags.WriteString(strings.Repeat("^", lb))
		case 'd':
			atags.WriteString(strings.Repeat("-", la))
		case 'i':
			btags.WriteString(strings.Repeat("+", lb))
		case 'e':
			atags.WriteString(strings.Repeat(" ", la))
			btags.WriteString(strings.Repeat(" ", lb))
		}
	}

	out := []string{TagDelete + aline}
	if tags := keepWhitespace(ac, atags.String()); tags != "" {
		out = append(out, TagHint+tags)
	}
	out = append(out, TagInsert+bline)
	if tags := keepWhitespace(bc, btags.String()); tags != "" {
		out = append(out, TagHint+tags)
	}
	return out
}

// keepWhitespace copies whitespace from the original line into blank tag positions
// so the guide stays aligned, then trims trailing blanks.
func keepWhitespace(line []string, tags string) string {
	var sb strings.Builder
	for i, t := range tags {
		if t == ' ' && i < len(line) && strings.TrimSpace(line[i]) == "" {
			sb.WriteString(line[i])
			continue
		}
		sb.WriteRune(t)
	}
	return strings.TrimRight(sb.String(), " \t")
}

func charMatcher(a, b []string) *difflib.SequenceMatcher {
	return difflib.NewMatcherWithJunk(a, b, true, isCharacterJunk)
}

func isCharacterJunk(s string) bool {
	return s == " " || s == "\t"
}

func chars(s string) []string {
	return strings.Split(s, "")
}
