package contextcollector

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/doeshing/aish-go/internal/domain"
	"github.com/doeshing/aish-go/internal/ports"
)

// BasicCollector implements ContextCollector from the process environment.
type BasicCollector struct {
	getenv func(string) string
	getwd  func() (string, error)
	goos   string
}

func NewBasicCollector() *BasicCollector {
	return &BasicCollector{
		getenv: os.Getenv,
		getwd:  os.Getwd,
		goos:   runtime.GOOS,
	}
}

// Collect gathers context data. It never fails; unknown values are left as
// "unknown" so the prompt template always renders.
func (c *BasicCollector) Collect(context.Context) (domain.ContextSnapshot, error) {
	wd, err := c.getwd()
	if err != nil || wd == "" {
		wd = "unknown"
	}
	return domain.ContextSnapshot{
		WorkingDir: wd,
		Shell:      c.detectShell(),
		OS:         c.goos,
		User:       c.detectUser(),
	}, nil
}

func (c *BasicCollector) detectShell() string {
	if shell := c.getenv("SHELL"); shell != "" {
		return filepath.Base(shell)
	}
	if c.goos == "windows" {
		if comspec := c.getenv("COMSPEC"); comspec != "" {
			name := comspec[strings.LastIndexAny(comspec, `\/`)+1:]
			return strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
		}
		return "cmd"
	}
	return "unknown"
}

func (c *BasicCollector) detectUser() string {
	for _, key := range []string{"USER", "USERNAME"} {
		if user := c.getenv(key); user != "" {
			return user
		}
	}
	return "unknown"
}

var _ ports.ContextCollector = (*BasicCollector)(nil)
