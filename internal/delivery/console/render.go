// Package console prints dataset check results as plain text lines.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/aliskhannn/quran-dataset-check/internal/domain/entities"
)

// Printer writes reports to an output stream.
type Printer struct {
	out        io.Writer
	sampleSize int

	warn    *color.Color
	success *color.Color
	fail    *color.Color
}

// NewPrinter creates a new Printer. With noColor set, verdict lines are written without
// escape sequences; otherwise fatih/color decides based on the terminal.
func NewPrinter(out io.Writer, sampleSize int, noColor bool) *Printer {
	p := &Printer{
		out:        out,
		sampleSize: sampleSize,
		warn:       color.New(color.FgYellow),
		success:    color.New(color.FgGreen),
		fail:       color.New(color.FgRed),
	}

	if noColor {
		p.warn.DisableColor()
		p.success.DisableColor()
		p.fail.DisableColor()
	}

	return p
}

// RenderReport prints the total, the content verdict and the juz list.
func (p *Printer) RenderReport(r *entities.Report) error {
	if _, err := fmt.Fprintf(p.out, msgTotal+"\n", r.Total); err != nil {
		return err
	}

	if r.AllHaveContent() {
		if _, err := p.success.Fprintln(p.out, msgAllHaveText); err != nil {
			return err
		}
	} else {
		if _, err := p.warn.Fprintf(p.out, msgMissing+"\n", len(r.MissingContent)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(p.out, msgSample+"\n", formatNames(r.MissingSample(p.sampleSize))); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(p.out, msgJuzPresent+"\n", formatJuz(r.Juz))
	return err
}

// RenderNotFound prints the missing dataset message.
func (p *Printer) RenderNotFound(path string) error {
	_, err := p.fail.Fprintf(p.out, msgNotFound+"\n", path)
	return err
}

// RenderParseError prints the malformed dataset message with its cause.
func (p *Printer) RenderParseError(cause error) error {
	_, err := p.fail.Fprintf(p.out, msgParseError+"\n", cause)
	return err
}

func formatNames(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func formatJuz(juz []entities.Juz) string {
	parts := make([]string, len(juz))
	for i, j := range juz {
		parts[i] = j.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
