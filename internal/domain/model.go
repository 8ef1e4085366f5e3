// Package domain defines core business entities and value objects for aish.
//
// This file contains the model definition used to address the Messages API.
// The domain layer is independent of infrastructure concerns.
package domain

// ModelDefinition describes one Messages API target declared in the config file.
type ModelDefinition struct {
	Name       string `yaml:"name" mapstructure:"name"`
	Endpoint   string `yaml:"endpoint,omitempty" mapstructure:"endpoint"`
	AuthEnvVar string `yaml:"auth_env_var,omitempty" mapstructure:"auth_env_var"`
	ModelID    string `yaml:"model_id" mapstructure:"model_id"`
	MaxTokens  int    `yaml:"max_tokens,omitempty" mapstructure:"max_tokens"`
	APIVersion string `yaml:"api_version,omitempty" mapstructure:"api_version"`

	// SystemPrompt and PromptTemplate are text/template sources. Empty values
	// fall back to the built-in shell command instructions.
	SystemPrompt   string `yaml:"system_prompt,omitempty" mapstructure:"system_prompt"`
	PromptTemplate string `yaml:"prompt_template,omitempty" mapstructure:"prompt_template"`
}

// GetEndpoint returns the endpoint URL with default fallback.
func (m ModelDefinition) GetEndpoint() string {
	if m.Endpoint == "" {
		return DefaultEndpoint
	}
	return m.Endpoint
}

// GetAuthEnvVar returns the name of the environment variable holding the API key.
func (m ModelDefinition) GetAuthEnvVar() string {
	if m.AuthEnvVar == "" {
		return DefaultAuthEnvVar
	}
	return m.AuthEnvVar
}

// GetModelID returns the wire model identifier with default fallback.
func (m ModelDefinition) GetModelID() string {
	if m.ModelID == "" {
		return DefaultModelID
	}
	return m.ModelID
}

// GetMaxTokens returns the max-token limit with default fallback.
func (m ModelDefinition) GetMaxTokens() int {
	if m.MaxTokens <= 0 {
		return DefaultMaxTokens
	}
	return m.MaxTokens
}

// GetAPIVersion returns the anthropic-version header value with default fallback.
func (m ModelDefinition) GetAPIVersion() string {
	if m.APIVersion == "" {
		return DefaultAPIVersion
	}
	return m.APIVersion
}
