package prompt

import (
	"bufio"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/interfaces"
)

var labelColor = color.New(color.FgCyan, color.Bold)

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter reading from in and writing labels to out. Inputs
// are injectable so the interactive flow is testable without a terminal.
func New(in io.Reader, out io.Writer) interfaces.Prompter {
	return &prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *prompter) Ask(label string) (string, error) {
	if _, err := labelColor.Fprintf(p.out, "%s: ", label); err != nil {
		return "", goerr.Wrap(err, "failed to write prompt")
	}

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", goerr.Wrap(err, "failed to read input", goerr.V("label", label))
	}

	return strings.TrimSpace(line), nil
}

func (p *prompter) Confirm(label string) (bool, error) {
	answer, err := p.Ask(label + " (y/n)")
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "y", nil
}
