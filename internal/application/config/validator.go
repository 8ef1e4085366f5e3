package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/doeshing/aish-go/internal/domain"
)

// LookupEnvFunc matches os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

// Credentials is the validated, immutable input for one Messages API call.
type Credentials struct {
	Model  domain.ModelDefinition
	EnvVar string
	APIKey string
}

// Validate checks the configuration, resolves the model to use and reads its
// API key. A missing key yields a *domain.ConfigError wrapping
// domain.ErrMissingCredential.
func Validate(cfg domain.Config, modelOverride string, lookupEnv LookupEnvFunc) (Credentials, error) {
	if err := ValidateStructure(cfg); err != nil {
		return Credentials{}, err
	}

	model, err := cfg.ResolveModel(modelOverride)
	if err != nil {
		return Credentials{}, &domain.ConfigError{Field: "model", Err: err}
	}

	envVar := model.GetAuthEnvVar()
	key, ok := lookupEnv(envVar)
	if !ok || strings.TrimSpace(key) == "" {
		return Credentials{}, &domain.ConfigError{
			Field: envVar,
			Err:   fmt.Errorf("%w: set %s", domain.ErrMissingCredential, envVar),
		}
	}

	return Credentials{Model: model, EnvVar: envVar, APIKey: key}, nil
}

// ValidateStructure ensures the config structure is consistent without
// touching the environment.
func ValidateStructure(cfg domain.Config) error {
	if err := cfg.ValidateConsistency(); err != nil {
		return &domain.ConfigError{Field: "models", Err: err}
	}
	for _, model := range cfg.Models {
		if err := validateModel(model); err != nil {
			return &domain.ConfigError{Field: "models." + model.Name, Err: err}
		}
	}
	if cfg.Preferences.TimeoutSeconds < 0 {
		return &domain.ConfigError{Field: "preferences.timeout", Err: errors.New("must be >= 0")}
	}
	if cfg.Security.Enabled && cfg.Security.RulesFile == "" {
		return &domain.ConfigError{Field: "security.rules_file", Err: errors.New("must be set when security is enabled")}
	}
	return nil
}

func validateModel(model domain.ModelDefinition) error {
	endpoint, err := url.ParseRequestURI(model.GetEndpoint())
	if err != nil {
		return fmt.Errorf("invalid endpoint: %w", err)
	}
	if endpoint.Scheme != "https" && endpoint.Scheme != "http" {
		return fmt.Errorf("endpoint scheme must be http or https, got %q", endpoint.Scheme)
	}
	if model.MaxTokens < 0 {
		return errors.New("max_tokens must be >= 0 (0 selects the default)")
	}
	return nil
}
