package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/doeshing/aish-go/internal/domain"
	"github.com/doeshing/aish-go/internal/ports"
)

// LocalExecutor runs commands through the host shell with the terminal's
// standard streams attached, so output is relayed as it is produced.
type LocalExecutor struct {
	shell  string
	goos   string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Option customizes a LocalExecutor.
type Option func(*LocalExecutor)

// WithStreams replaces the process streams, mainly for tests.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(e *LocalExecutor) {
		e.stdin = stdin
		e.stdout = stdout
		e.stderr = stderr
	}
}

// NewLocalExecutor builds a new executor. An empty shell selects `cmd /C` on
// Windows and `sh -c` everywhere else.
func NewLocalExecutor(shell string, opts ...Option) *LocalExecutor {
	e := &LocalExecutor{
		shell:  shell,
		goos:   runtime.GOOS,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute implements ports.CommandExecutor. A non-zero exit status is
// reported in the result, not as an error; only a failure to start the
// interpreter is returned as one.
func (e *LocalExecutor) Execute(ctx context.Context, command string) (domain.ExecutionResult, error) {
	name, args := e.Interpreter()
	c := exec.CommandContext(ctx, name, append(args, command)...)
	c.Stdin = e.stdin
	c.Stdout = e.stdout
	c.Stderr = e.stderr

	start := time.Now()
	err := c.Run()
	result := domain.ExecutionResult{
		DurationMS: time.Since(start).Milliseconds(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.Ran = true
	case errors.As(err, &exitErr):
		result.Ran = true
		result.ExitCode = exitErr.ExitCode()
		result.Err = err
	default:
		result.Err = err
		return result, fmt.Errorf("start %s: %w", name, err)
	}
	return result, nil
}

// Interpreter returns the program and leading arguments used to run a command.
func (e *LocalExecutor) Interpreter() (string, []string) {
	shell := e.shell
	if shell == "" {
		if e.goos == "windows" {
			return "cmd", []string{"/C"}
		}
		return "sh", []string{"-c"}
	}
	base := strings.ToLower(filepath.Base(shell))
	base = strings.TrimSuffix(base, ".exe")
	switch base {
	case "cmd":
		return shell, []string{"/C"}
	case "powershell", "pwsh":
		return shell, []string{"-NoProfile", "-Command"}
	default:
		return shell, []string{"-c"}
	}
}

var _ ports.CommandExecutor = (*LocalExecutor)(nil)
