package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/doeshing/aish-go/internal/domain"
	"github.com/doeshing/aish-go/internal/ports"
)

// Prompter implements ConfirmationPrompter: the command goes to out followed
// by a single space, and one line of in decides. An empty line runs it.
// Input is read a byte at a time so nothing past the answer is consumed; the
// executed command inherits the rest of stdin.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewPrompter constructs a prompter referencing stdio.
func NewPrompter(in io.Reader, out, errOut io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Prompter{
		in:     in,
		out:    out,
		errOut: errOut,
	}
}

// Confirm shows guardrail findings on stderr, then the command, then waits.
// End of input without a line declines.
func (p *Prompter) Confirm(command string, risk domain.RiskAssessment) (bool, error) {
	if risk.Elevated() {
		p.warn(risk)
	}

	fmt.Fprint(p.out, command+" ")

	line, err := readLine(p.in)
	if err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return false, nil
		}
		return false, err
	}
	return strings.TrimSpace(line) == "", nil
}

// readLine returns one line without the newline, reading no further.
func readLine(r io.Reader) (string, error) {
	var (
		line []byte
		buf  [1]byte
	)
	for {
		n, err := r.Read(buf[:])
		if n == 1 {
			if buf[0] == '\n' {
				return string(line), nil
			}
			line = append(line, buf[0])
			continue
		}
		if err != nil {
			return string(line), err
		}
	}
}

func (p *Prompter) warn(risk domain.RiskAssessment) {
	c := colorFor(p.errOut, color.FgYellow, color.Bold)
	c.Fprintf(p.errOut, "Warning: %s risk\n", strings.ToUpper(string(risk.Level)))
	for _, reason := range risk.Reasons {
		fmt.Fprintf(p.errOut, " - %s\n", reason)
	}
	fmt.Fprintln(p.errOut, "Press Enter to run, or type anything to cancel.")
}

var _ ports.ConfirmationPrompter = (*Prompter)(nil)
