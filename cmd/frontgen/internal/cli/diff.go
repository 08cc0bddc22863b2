package cli

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffLine is one line of a line diff. Op is ' ' for context, '-' for a line
// only in the old text, '+' for a line only in the new text and '~' for
// skipped context.
type DiffLine struct {
	Op   byte
	Text string
}

// LineDiff compares old and new line by line, keeping up to context unchanged
// lines around each change. It returns nil when the texts are equal.
func LineDiff(old, new string, context int) []DiffLine {
	if old == new {
		return nil
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(old, new)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var all []DiffLine
	for _, d := range diffs {
		op := byte(' ')
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = '-'
		case diffmatchpatch.DiffInsert:
			op = '+'
		}
		for _, line := range splitLines(d.Text) {
			all = append(all, DiffLine{Op: op, Text: line})
		}
	}
	return collapse(all, context)
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// collapse replaces unchanged runs further than context lines from any change
// with a single '~' line.
func collapse(lines []DiffLine, context int) []DiffLine {
	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.Op == ' ' {
			continue
		}
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			keep[j] = true
		}
	}

	var out []DiffLine
	skipped := false
	for i, l := range lines {
		if keep[i] {
			out = append(out, l)
			skipped = false
			continue
		}
		if !skipped {
			out = append(out, DiffLine{Op: '~', Text: "..."})
			skipped = true
		}
	}
	return out
}
