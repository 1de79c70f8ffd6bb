package ui

import (
	"fmt"
	"io"
	"os"
)

// Printer writes status lines: results to Out, failures and warnings to Err.
type Printer struct {
	Out, Err io.Writer
}

// NewPrinter falls back to the process streams for nil writers.
func NewPrinter(out, errw io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errw == nil {
		errw = os.Stderr
	}
	return &Printer{Out: out, Err: errw}
}

func (p *Printer) OK(msg string) {
	t := Current()
	fmt.Fprintln(p.Out, t.Success.Render(t.SymOK+" "+msg))
}

func (p *Printer) Fail(msg string) {
	t := Current()
	fmt.Fprintln(p.Err, t.Error.Render(t.SymFail+" "+msg))
}

func (p *Printer) Warn(msg string) {
	t := Current()
	fmt.Fprintln(p.Err, t.Warn.Render(t.SymWarn+" "+msg))
}

// Title prints a heading such as a menu banner.
func (p *Printer) Title(s string) { fmt.Fprintln(p.Out, Current().Title.Render(s)) }

func (p *Printer) Println(s string) { fmt.Fprintln(p.Out, s) }

// Prompt prints s without a newline.
func (p *Printer) Prompt(s string) { fmt.Fprint(p.Out, s) }
