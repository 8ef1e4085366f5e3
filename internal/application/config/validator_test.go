package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/doeshing/aish-go/internal/domain"
)

func validConfig() domain.Config {
	return domain.Config{
		Preferences: domain.Preferences{DefaultModel: "sonnet"},
		Models: []domain.ModelDefinition{
			{Name: "sonnet", ModelID: "claude-3-7-sonnet-20250219"},
			{Name: "custom", AuthEnvVar: "CUSTOM_KEY", Endpoint: "http://localhost:8080/v1/messages"},
		},
		Security: domain.SecuritySettings{Enabled: true, RulesFile: "/tmp/guardrail.yaml"},
	}
}

func envOf(values map[string]string) LookupEnvFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestValidateReturnsCredentials(t *testing.T) {
	creds, err := Validate(validConfig(), "", envOf(map[string]string{"ANTHROPIC_API_KEY": "sk-test"}))
	if err != nil {
		t.Fatalf("Validate error = %v", err)
	}
	if creds.APIKey != "sk-test" || creds.EnvVar != "ANTHROPIC_API_KEY" || creds.Model.Name != "sonnet" {
		t.Errorf("unexpected credentials %+v", creds)
	}
}

func TestValidateUsesModelAuthEnvVar(t *testing.T) {
	creds, err := Validate(validConfig(), "custom", envOf(map[string]string{"CUSTOM_KEY": "abc"}))
	if err != nil {
		t.Fatalf("Validate error = %v", err)
	}
	if creds.APIKey != "abc" || creds.Model.Name != "custom" {
		t.Errorf("unexpected credentials %+v", creds)
	}
}

func TestValidateMissingCredential(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unset", env: map[string]string{}},
		{name: "blank", env: map[string]string{"ANTHROPIC_API_KEY": "  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(validConfig(), "", envOf(tt.env))
			var cfgErr *domain.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if !errors.Is(err, domain.ErrMissingCredential) {
				t.Errorf("expected ErrMissingCredential in chain: %v", err)
			}
			if !strings.Contains(err.Error(), "ANTHROPIC_API_KEY") {
				t.Errorf("message should name the variable: %q", err.Error())
			}
		})
	}
}

func TestValidateUnknownModelOverride(t *testing.T) {
	_, err := Validate(validConfig(), "nope", envOf(map[string]string{"ANTHROPIC_API_KEY": "k"}))
	var cfgErr *domain.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "model" {
		t.Fatalf("expected model ConfigError, got %v", err)
	}
}

func TestValidateStructure(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Config)
		field  string
	}{
		{name: "valid", mutate: func(*domain.Config) {}},
		{name: "no models", mutate: func(c *domain.Config) { c.Models = nil }, field: "models"},
		{name: "bad endpoint", mutate: func(c *domain.Config) { c.Models[0].Endpoint = "not a url" }, field: "models.sonnet"},
		{name: "ftp endpoint", mutate: func(c *domain.Config) { c.Models[0].Endpoint = "ftp://example.com/x" }, field: "models.sonnet"},
		{name: "negative max tokens", mutate: func(c *domain.Config) { c.Models[0].MaxTokens = -1 }, field: "models.sonnet"},
		{name: "zero max tokens uses default", mutate: func(c *domain.Config) { c.Models[0].MaxTokens = 0 }},
		{name: "negative timeout", mutate: func(c *domain.Config) { c.Preferences.TimeoutSeconds = -5 }, field: "preferences.timeout"},
		{name: "rules file missing", mutate: func(c *domain.Config) { c.Security.RulesFile = "" }, field: "security.rules_file"},
		{name: "rules file ignored when disabled", mutate: func(c *domain.Config) {
			c.Security = domain.SecuritySettings{}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := ValidateStructure(cfg)
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			var cfgErr *domain.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestValidateStructureMaxTokensMessage(t *testing.T) {
	cfg := validConfig()
	cfg.Models[0].MaxTokens = -1

	err := ValidateStructure(cfg)
	if err == nil || !strings.Contains(err.Error(), "max_tokens must be >= 0") {
		t.Fatalf("unexpected error %v", err)
	}
}
