// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core depends only on these abstractions; concrete adapters
// (Messages API client, YAML config, shell executor, terminal prompter) live in
// the infrastructure layer.
package ports

import (
	"context"

	"github.com/doeshing/aish-go/internal/domain"
)

// ConfigProvider loads the latest configuration.
// Implementations typically layer ~/.aish/config.yaml over built-in defaults.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ContextCollector gathers environmental context used to render the system prompt.
type ContextCollector interface {
	Collect(context.Context) (domain.ContextSnapshot, error)
}

// ProviderFactory builds AI provider instances based on model definitions.
type ProviderFactory interface {
	ForModel(domain.ModelDefinition) (Provider, error)
}

// Provider turns one task description into model reply text.
type Provider interface {
	Name() string
	Model() domain.ModelDefinition
	Generate(context.Context, ProviderRequest) (ProviderResponse, error)
}

// ProviderRequest contains all data needed for one Messages API exchange.
type ProviderRequest struct {
	Prompt  string
	APIKey  string
	Context domain.ContextSnapshot
	Options domain.PipelineOptions
}

// ProviderResponse carries the decoded reply and, when post-processing ran,
// the extracted command.
type ProviderResponse struct {
	Command string
	Reply   string
	Outcome domain.Outcome
}

// SecurityService evaluates commands against security rules before execution.
type SecurityService interface {
	Evaluate(command string) (domain.RiskAssessment, error)
}

// CommandExecutor runs shell commands in the configured shell environment.
type CommandExecutor interface {
	Execute(ctx context.Context, command string) (domain.ExecutionResult, error)
}

// ConfirmationPrompter shows the command and waits for the user's go-ahead.
type ConfirmationPrompter interface {
	Confirm(command string, risk domain.RiskAssessment) (bool, error)
}

// ProgressReporter shows activity while the application waits on the network.
type ProgressReporter interface {
	Start(message string)
	Stop()
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
