package run

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/phpsanity/phpsanity/pkg/checker"
)

const (
	messageClean  = "✅ No syntax issues detected in checked files!"
	messageFailed = "❌ Syntax issues found. Please review the files above."
)

type colorFunc func(a ...any) string

// Printer writes the text report.
type Printer struct {
	stdout io.Writer
	red    colorFunc
	green  colorFunc
	yellow colorFunc
}

// NewPrinter returns a Printer writing to stdout.
// noColor wins over forceColor. If neither is set, fatih/color decides by the terminal.
func NewPrinter(stdout io.Writer, noColor, forceColor bool) *Printer {
	return &Printer{
		stdout: stdout,
		red:    newColorFunc(color.FgRed, noColor, forceColor),
		green:  newColorFunc(color.FgGreen, noColor, forceColor),
		yellow: newColorFunc(color.FgYellow, noColor, forceColor),
	}
}

func newColorFunc(attr color.Attribute, noColor, forceColor bool) colorFunc {
	c := color.New(attr)
	switch {
	case noColor:
		c.DisableColor()
	case forceColor:
		c.EnableColor()
	}
	return c.SprintFunc()
}

// Result prints a blank line, the file path, and each finding of a file.
func (p *Printer) Result(result *checker.Result) {
	fmt.Fprintf(p.stdout, "\n%s:\n", p.yellow(result.File))
	for _, f := range result.Findings {
		fmt.Fprintf(p.stdout, "  - %s\n", f)
	}
}

func (p *Printer) Summary(failed bool) {
	if failed {
		fmt.Fprintf(p.stdout, "\n%s\n", p.red(messageFailed))
		return
	}
	fmt.Fprintln(p.stdout, p.green(messageClean))
}
