package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/doeshing/aish-go/internal/domain"
)

type stubConfig struct {
	cfg domain.Config
	err error
}

func (s stubConfig) Load(context.Context) (domain.Config, error) { return s.cfg, s.err }

type stubSecurity struct{ err error }

func (s stubSecurity) Evaluate(string) (domain.RiskAssessment, error) {
	return domain.RiskAssessment{Level: domain.RiskSafe}, s.err
}

type stubInterpreter struct{}

func (stubInterpreter) Interpreter() (string, []string) { return "sh", []string{"-c"} }

func healthyConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Preferences:         domain.Preferences{DefaultModel: "sonnet"},
		Models:              []domain.ModelDefinition{{Name: "sonnet"}},
		Security:            domain.SecuritySettings{Enabled: true, RulesFile: "/tmp/rules.yaml"},
	}
}

func statusOf(report domain.HealthReport, name string) domain.HealthStatus {
	for _, check := range report.Checks {
		if check.Name == name {
			return check.Status
		}
	}
	return ""
}

func TestDoctorHealthy(t *testing.T) {
	svc := &Service{
		ConfigProvider:  stubConfig{cfg: healthyConfig()},
		SecurityService: stubSecurity{},
		Interpreter:     stubInterpreter{},
		LookupEnv:       func(string) (string, bool) { return "sk", true },
		LookPath:        func(name string) (string, error) { return "/bin/" + name, nil },
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if !report.Healthy() {
		t.Fatalf("expected healthy report, got %+v", report.Checks)
	}
	for _, name := range []string{"Config file", "Config structure", "API key", "Guardrail", "Shell interpreter"} {
		if statusOf(report, name) != domain.HealthOK {
			t.Errorf("%s = %q", name, statusOf(report, name))
		}
	}
}

func TestDoctorReportsProblems(t *testing.T) {
	svc := &Service{
		ConfigProvider:  stubConfig{cfg: healthyConfig()},
		SecurityService: stubSecurity{err: errors.New("bad rules")},
		Interpreter:     stubInterpreter{},
		LookupEnv:       func(string) (string, bool) { return "", false },
		LookPath:        func(string) (string, error) { return "", errors.New("not found") },
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if report.Healthy() {
		t.Fatal("expected unhealthy report")
	}
	for _, name := range []string{"API key", "Guardrail", "Shell interpreter"} {
		if statusOf(report, name) != domain.HealthError {
			t.Errorf("%s = %q", name, statusOf(report, name))
		}
	}
}

func TestDoctorGuardrailDisabled(t *testing.T) {
	cfg := healthyConfig()
	cfg.Security.Enabled = false
	svc := &Service{
		ConfigProvider: stubConfig{cfg: cfg},
		LookupEnv:      func(string) (string, bool) { return "sk", true },
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if statusOf(report, "Guardrail") != domain.HealthWarn {
		t.Errorf("Guardrail = %q", statusOf(report, "Guardrail"))
	}
}

func TestDoctorConfigLoadFailure(t *testing.T) {
	svc := &Service{ConfigProvider: stubConfig{err: errors.New("broken")}}

	report, err := svc.Run(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if report.Healthy() {
		t.Error("expected failed config check")
	}
}

func TestDoctorKeepsKeyCheckSeparateFromStructure(t *testing.T) {
	cfg := healthyConfig()
	cfg.Preferences.TimeoutSeconds = -1
	svc := &Service{
		ConfigProvider: stubConfig{cfg: cfg},
		LookupEnv: func(key string) (string, bool) {
			if key == "ANTHROPIC_API_KEY" {
				return "sk-set", true
			}
			return "", false
		},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if statusOf(report, "Config structure") != domain.HealthError {
		t.Errorf("Config structure = %q", statusOf(report, "Config structure"))
	}
	if statusOf(report, "API key") != domain.HealthOK {
		t.Errorf("API key = %q, want ok while the key is exported", statusOf(report, "API key"))
	}
}

func TestDoctorBlankKeyIsMissing(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfig{cfg: healthyConfig()},
		LookupEnv:      func(string) (string, bool) { return "   ", true },
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if statusOf(report, "API key") != domain.HealthError {
		t.Errorf("API key = %q", statusOf(report, "API key"))
	}
}
