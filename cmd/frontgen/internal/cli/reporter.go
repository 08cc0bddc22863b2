package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/cuba-labs/frontgen/restgen/model"
)

// Reporter prints user-facing status lines.
type Reporter struct {
	w       io.Writer
	verbose bool

	ok   *color.Color
	warn *color.Color
	fail *color.Color
	dim  *color.Color
}

// NewReporter returns a Reporter writing to w. Colors follow the
// fatih/color terminal detection and NO_COLOR.
func NewReporter(w io.Writer, verbose bool) *Reporter {
	return &Reporter{
		w:       w,
		verbose: verbose,
		ok:      color.New(color.FgGreen),
		warn:    color.New(color.FgYellow, color.Bold),
		fail:    color.New(color.FgRed, color.Bold),
		dim:     color.New(color.Faint),
	}
}

// Success prints a success line.
func (r *Reporter) Success(format string, args ...any) {
	r.ok.Fprint(r.w, "✓ ")
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Failure prints a failure line.
func (r *Reporter) Failure(format string, args ...any) {
	r.fail.Fprint(r.w, "✗ ")
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Warnings prints generation warnings. The warning code is shown in verbose mode.
func (r *Reporter) Warnings(warnings []model.Warning) {
	for _, w := range warnings {
		r.warn.Fprint(r.w, "! ")
		fmt.Fprint(r.w, w.Message)
		if r.verbose {
			r.dim.Fprintf(r.w, " [%s]", w.Code)
		}
		fmt.Fprintln(r.w)
	}
}

// Diff prints a line diff produced by LineDiff, coloring removed and added lines.
func (r *Reporter) Diff(lines []DiffLine) {
	for _, l := range lines {
		switch l.Op {
		case '-':
			r.fail.Fprintf(r.w, "-%s\n", l.Text)
		case '+':
			r.ok.Fprintf(r.w, "+%s\n", l.Text)
		default:
			r.dim.Fprintf(r.w, " %s\n", l.Text)
		}
	}
}
