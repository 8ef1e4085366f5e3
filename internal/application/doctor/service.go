package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	appconfig "github.com/doeshing/aish-go/internal/application/config"
	"github.com/doeshing/aish-go/internal/domain"
	"github.com/doeshing/aish-go/internal/ports"
)

// InterpreterResolver reports the program used to run confirmed commands.
type InterpreterResolver interface {
	Interpreter() (string, []string)
}

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider   ports.ConfigProvider
	SecurityService  ports.SecurityService
	ContextCollector ports.ContextCollector
	Interpreter      InterpreterResolver

	// LookupEnv and LookPath default to os.LookupEnv and exec.LookPath.
	LookupEnv appconfig.LookupEnvFunc
	LookPath  func(string) (string, error)
}

// Run executes checks and returns a report. Only a config load failure is
// returned as an error; everything else lands in the report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("format version %s", cfg.ConfigFormatVersion)))

	if err := appconfig.ValidateStructure(cfg); err != nil {
		checks = append(checks, fail("Config structure", err.Error()))
	} else {
		checks = append(checks, ok("Config structure", fmt.Sprintf("%d model(s), default %s", len(cfg.Models), cfg.Preferences.DefaultModel)))
	}

	checks = append(checks, s.credentialCheck(cfg))

	switch {
	case !cfg.IsSecurityEnabled():
		checks = append(checks, warn("Guardrail", "disabled in config"))
	case s.SecurityService == nil:
		checks = append(checks, warn("Guardrail", "security service not initialized"))
	default:
		if _, err := s.SecurityService.Evaluate("ls"); err != nil {
			checks = append(checks, fail("Guardrail", err.Error()))
		} else {
			checks = append(checks, ok("Guardrail", "rules loaded"))
		}
	}

	if s.Interpreter != nil {
		checks = append(checks, s.interpreterCheck())
	}

	if s.ContextCollector != nil {
		if snapshot, err := s.ContextCollector.Collect(ctx); err == nil {
			checks = append(checks, ok("Context collector", fmt.Sprintf("%s/%s in %s", snapshot.OS, snapshot.Shell, snapshot.WorkingDir)))
		} else {
			checks = append(checks, warn("Context collector", err.Error()))
		}
	}

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) credentialCheck(cfg domain.Config) domain.HealthCheck {
	model, err := cfg.ResolveModel("")
	if err != nil {
		return fail("API key", err.Error())
	}
	lookup := s.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	envVar := model.GetAuthEnvVar()
	if key, found := lookup(envVar); !found || strings.TrimSpace(key) == "" {
		return fail("API key", fmt.Sprintf("%s not set", envVar))
	}
	return ok("API key", fmt.Sprintf("%s set for %s", envVar, model.Name))
}

func (s *Service) interpreterCheck() domain.HealthCheck {
	name, args := s.Interpreter.Interpreter()
	lookPath := s.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	path, err := lookPath(name)
	if err != nil {
		return fail("Shell interpreter", fmt.Sprintf("%s not found: %v", name, err))
	}
	return ok("Shell interpreter", fmt.Sprintf("%s %v", path, args))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
