package cli

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"

	"github.com/doeshing/aish-go/internal/ports"
)

// Spinner shows activity on stderr while the API call is in flight. It is a
// no-op unless the writer is a terminal.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a new spinner
func NewSpinner(w io.Writer) *Spinner {
	if !isTerminal(w) {
		return &Spinner{}
	}
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(w))
	return &Spinner{s: s}
}

// Start begins the spinner animation
func (s *Spinner) Start(message string) {
	if s.s == nil {
		return
	}
	s.s.Suffix = " " + message
	s.s.Start()
}

// Stop stops the spinner animation and clears its line.
func (s *Spinner) Stop() {
	if s.s == nil {
		return
	}
	s.s.Stop()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var _ ports.ProgressReporter = (*Spinner)(nil)
