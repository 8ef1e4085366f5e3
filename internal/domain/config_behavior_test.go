package domain_test

import (
	"testing"

	"github.com/doeshing/aish-go/internal/domain"
)

// TestConfig_GetDefaultModel tests retrieving the default model
func TestConfig_GetDefaultModel(t *testing.T) {
	tests := []struct {
		name        string
		config      domain.Config
		wantError   bool
		wantModelID string
	}{
		{
			name: "returns default model successfully",
			config: domain.Config{
				Preferences: domain.Preferences{DefaultModel: "sonnet"},
				Models: []domain.ModelDefinition{
					{Name: "sonnet", ModelID: "claude-3-7-sonnet-20250219"},
					{Name: "haiku", ModelID: "claude-3-5-haiku-latest"},
				},
			},
			wantModelID: "claude-3-7-sonnet-20250219",
		},
		{
			name: "returns error when default model not found",
			config: domain.Config{
				Preferences: domain.Preferences{DefaultModel: "nonexistent"},
				Models:      []domain.ModelDefinition{{Name: "sonnet"}},
			},
			wantError: true,
		},
		{
			name: "returns error when no default model configured",
			config: domain.Config{
				Models: []domain.ModelDefinition{{Name: "sonnet"}},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := tt.config.GetDefaultModel()

			if tt.wantError {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if model.ModelID != tt.wantModelID {
				t.Errorf("got model ID %s, want %s", model.ModelID, tt.wantModelID)
			}
		})
	}
}

// TestConfig_ResolveModel tests override, default and first-model selection
func TestConfig_ResolveModel(t *testing.T) {
	cfg := domain.Config{
		Preferences: domain.Preferences{DefaultModel: "haiku"},
		Models: []domain.ModelDefinition{
			{Name: "sonnet", ModelID: "sonnet-id"},
			{Name: "haiku", ModelID: "haiku-id"},
		},
	}

	tests := []struct {
		name      string
		config    domain.Config
		override  string
		wantName  string
		wantError bool
	}{
		{name: "override wins", config: cfg, override: "sonnet", wantName: "sonnet"},
		{name: "default used without override", config: cfg, wantName: "haiku"},
		{
			name:     "first model when no default",
			config:   domain.Config{Models: cfg.Models},
			wantName: "sonnet",
		},
		{name: "unknown override", config: cfg, override: "opus", wantError: true},
		{name: "no models at all", config: domain.Config{}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := tt.config.ResolveModel(tt.override)
			if tt.wantError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if model.Name != tt.wantName {
				t.Errorf("got model %s, want %s", model.Name, tt.wantName)
			}
		})
	}
}

// TestConfig_ValidateConsistency tests configuration consistency validation
func TestConfig_ValidateConsistency(t *testing.T) {
	tests := []struct {
		name      string
		config    domain.Config
		wantError bool
	}{
		{
			name: "valid configuration",
			config: domain.Config{
				Preferences: domain.Preferences{DefaultModel: "sonnet"},
				Models:      []domain.ModelDefinition{{Name: "sonnet"}},
			},
		},
		{
			name:      "no models",
			config:    domain.Config{},
			wantError: true,
		},
		{
			name: "duplicate model names",
			config: domain.Config{
				Models: []domain.ModelDefinition{{Name: "sonnet"}, {Name: "sonnet"}},
			},
			wantError: true,
		},
		{
			name: "unnamed model",
			config: domain.Config{
				Models: []domain.ModelDefinition{{ModelID: "x"}},
			},
			wantError: true,
		},
		{
			name: "default model missing",
			config: domain.Config{
				Preferences: domain.Preferences{DefaultModel: "opus"},
				Models:      []domain.ModelDefinition{{Name: "sonnet"}},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.ValidateConsistency()
			if tt.wantError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.wantError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// TestConfig_GetExecutionShell tests shell resolution
func TestConfig_GetExecutionShell(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{shell: "", want: ""},
		{shell: "auto", want: ""},
		{shell: "/bin/zsh", want: "/bin/zsh"},
	}

	for _, tt := range tests {
		cfg := domain.Config{Execution: domain.ExecutionSettings{Shell: tt.shell}}
		if got := cfg.GetExecutionShell(); got != tt.want {
			t.Errorf("GetExecutionShell(%q) = %q, want %q", tt.shell, got, tt.want)
		}
	}
}

// TestModelDefinition_Defaults tests fallback values of an empty model definition
func TestModelDefinition_Defaults(t *testing.T) {
	var model domain.ModelDefinition

	if got := model.GetEndpoint(); got != domain.DefaultEndpoint {
		t.Errorf("GetEndpoint() = %s", got)
	}
	if got := model.GetAuthEnvVar(); got != "ANTHROPIC_API_KEY" {
		t.Errorf("GetAuthEnvVar() = %s", got)
	}
	if got := model.GetAPIVersion(); got != "2023-06-01" {
		t.Errorf("GetAPIVersion() = %s", got)
	}
	if got := model.GetMaxTokens(); got != domain.DefaultMaxTokens {
		t.Errorf("GetMaxTokens() = %d", got)
	}
	if got := model.GetModelID(); got != domain.DefaultModelID {
		t.Errorf("GetModelID() = %s", got)
	}

	custom := domain.ModelDefinition{MaxTokens: 256, APIVersion: "2024-01-01"}
	if custom.GetMaxTokens() != 256 || custom.GetAPIVersion() != "2024-01-01" {
		t.Errorf("custom values not honored: %+v", custom)
	}
}

func TestAPIError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  domain.APIError
		want string
	}{
		{
			name: "structured body",
			err:  domain.APIError{StatusCode: 401, Type: "authentication_error", Message: "invalid x-api-key", Body: `{"error":{}}`},
			want: "API error (401 authentication_error): invalid x-api-key",
		},
		{
			name: "message without type",
			err:  domain.APIError{StatusCode: 400, Message: "bad request body"},
			want: "API error (400): bad request body",
		},
		{
			name: "raw body",
			err:  domain.APIError{StatusCode: 529, Body: "overloaded, try later\n"},
			want: "API error (529): overloaded, try later",
		},
		{
			name: "empty body",
			err:  domain.APIError{StatusCode: 502},
			want: "API error (502): Bad Gateway",
		},
		{
			name: "error object in successful reply",
			err:  domain.APIError{Message: "overloaded"},
			want: "API error: overloaded",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPipelineOverridesApply(t *testing.T) {
	tests := []struct {
		name      string
		overrides domain.PipelineOverrides
		want      domain.PipelineOptions
	}{
		{name: "none", want: domain.DefaultPipelineOptions()},
		{name: "no system prompt", overrides: domain.PipelineOverrides{NoSystemPrompt: true}, want: domain.PipelineOptions{CheckHTTPStatus: true, PostProcess: true}},
		{name: "skip status", overrides: domain.PipelineOverrides{SkipStatusCheck: true}, want: domain.PipelineOptions{IncludeSystemPrompt: true, PostProcess: true}},
		{name: "raw", overrides: domain.PipelineOverrides{Raw: true}, want: domain.PipelineOptions{IncludeSystemPrompt: true, CheckHTTPStatus: true}},
		{name: "execute", overrides: domain.PipelineOverrides{Execute: true}, want: domain.PipelineOptions{IncludeSystemPrompt: true, CheckHTTPStatus: true, PostProcess: true, ConfirmBeforeExecute: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.overrides.Apply(domain.DefaultPipelineOptions()); got != tt.want {
				t.Errorf("Apply() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
