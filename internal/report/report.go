// Package report is this module's equivalent of a CLI logging facade:
// colorized status lines on stderr, a throttled progress counter, and a
// final summary table, modeled on how command-line tools in this
// ecosystem separate "what the user sees" from the algorithm itself.
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Reporter renders status, progress and a final summary for one run of
// the factorizer. It is not goroutine-safe; the CLI drives it from a
// single thread.
type Reporter struct {
	out, errOut    io.Writer
	verbose, quiet bool
	lastMB         int64

	info  *color.Color
	warn  *color.Color
	fatal *color.Color
}

// New builds a Reporter writing status to errOut and the final table to
// out. quiet silences Infof and progress output; verbose additionally
// enables Debugf.
func New(out, errOut io.Writer, verbose, quiet bool) *Reporter {
	return &Reporter{
		out:     out,
		errOut:  errOut,
		verbose: verbose,
		quiet:   quiet,
		info:    color.New(color.FgCyan),
		warn:    color.New(color.FgYellow),
		fatal:   color.New(color.FgRed, color.Bold),
	}
}

// Infof prints a status line unless the Reporter is quiet.
func (r *Reporter) Infof(format string, args ...interface{}) {
	if r.quiet {
		return
	}
	fmt.Fprintln(r.errOut, r.info.Sprintf(format, args...))
}

// Debugf prints a status line only when the Reporter is verbose.
func (r *Reporter) Debugf(format string, args ...interface{}) {
	if !r.verbose {
		return
	}
	fmt.Fprintf(r.errOut, "debug: "+format+"\n", args...)
}

// Warnf prints a warning line unless the Reporter is quiet.
func (r *Reporter) Warnf(format string, args ...interface{}) {
	if r.quiet {
		return
	}
	fmt.Fprintln(r.errOut, r.warn.Sprintf(format, args...))
}

// Fatalf prints a fatal error line regardless of quiet, for use right
// before the process exits with a non-zero status.
func (r *Reporter) Fatalf(format string, args ...interface{}) {
	fmt.Fprintln(r.errOut, r.fatal.Sprintf(format, args...))
}

// Progress is called on every phrase emission. It throttles to one line
// per megabyte of input consumed, matching the original implementation's
// progress cadence, rendered with humanized byte counts instead of a
// raw megabyte counter.
func (r *Reporter) Progress(textPos, matchLength, total int) {
	if r.quiet {
		return
	}
	consumed := int64(textPos + matchLength)
	mb := consumed / (1024 * 1024)
	if mb == r.lastMB {
		return
	}
	r.lastMB = mb
	fmt.Fprintf(r.errOut, "%s\n", r.info.Sprintf("%s / %s processed",
		humanize.IBytes(uint64(consumed)), humanize.IBytes(uint64(total))))
}

// Stats is the set of summary figures printed once factorization
// completes.
type Stats struct {
	InputSize        int
	PhraseCount      int
	LiteralPositions int
	MaxCost          int
	ExhaustedSources int
}

// Table renders Stats as a box, in the style of this ecosystem's
// command-line tools: a header row plus one line of figures.
func (r *Reporter) Table(s Stats) {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"input bytes", "phrases", "literal bytes", "max cost", "exhausted sources"})
	table.Append([]string{
		humanize.Comma(int64(s.InputSize)),
		humanize.Comma(int64(s.PhraseCount)),
		humanize.Comma(int64(s.LiteralPositions)),
		humanize.Comma(int64(s.MaxCost)),
		humanize.Comma(int64(s.ExhaustedSources)),
	})
	table.Render()
}
