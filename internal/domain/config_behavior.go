package domain

import "fmt"

// GetDefaultModel retrieves the default model definition from configuration
// Returns an error if the default model is not found
func (c *Config) GetDefaultModel() (ModelDefinition, error) {
	if c.Preferences.DefaultModel == "" {
		return ModelDefinition{}, fmt.Errorf("no default model configured")
	}

	for _, model := range c.Models {
		if model.Name == c.Preferences.DefaultModel {
			return model, nil
		}
	}

	return ModelDefinition{}, fmt.Errorf("default model %s not found in configuration", c.Preferences.DefaultModel)
}

// FindModelByName searches for a model by its name
func (c *Config) FindModelByName(name string) (ModelDefinition, bool) {
	for _, model := range c.Models {
		if model.Name == name {
			return model, true
		}
	}
	return ModelDefinition{}, false
}

// HasModel checks if a model with the given name exists in the configuration
func (c *Config) HasModel(name string) bool {
	_, exists := c.FindModelByName(name)
	return exists
}

// ResolveModel picks the override when given, the default model otherwise,
// and the first configured model when no default is set.
func (c *Config) ResolveModel(override string) (ModelDefinition, error) {
	name := override
	if name == "" {
		name = c.Preferences.DefaultModel
	}
	if name == "" {
		if len(c.Models) == 0 {
			return ModelDefinition{}, fmt.Errorf("no models configured")
		}
		return c.Models[0], nil
	}
	model, ok := c.FindModelByName(name)
	if !ok {
		return ModelDefinition{}, fmt.Errorf("model %s not configured", name)
	}
	return model, nil
}

// IsSecurityEnabled checks if security guardrails are enabled
func (c *Config) IsSecurityEnabled() bool {
	return c.Security.Enabled
}

// GetExecutionShell returns the configured shell for command execution.
// An empty value or "auto" lets the executor pick the platform interpreter.
func (c *Config) GetExecutionShell() string {
	if c.Execution.Shell == "auto" {
		return ""
	}
	return c.Execution.Shell
}

// GetTimeoutSeconds returns the request timeout in seconds, 0 meaning no deadline.
func (c *Config) GetTimeoutSeconds() int {
	if c.Preferences.TimeoutSeconds < 0 {
		return 0
	}
	return c.Preferences.TimeoutSeconds
}

// ValidateConsistency checks the internal consistency of the configuration
func (c *Config) ValidateConsistency() error {
	if len(c.Models) == 0 {
		return fmt.Errorf("at least one model must be configured")
	}

	seen := make(map[string]bool, len(c.Models))
	for _, model := range c.Models {
		if model.Name == "" {
			return fmt.Errorf("model without a name in models list")
		}
		if seen[model.Name] {
			return fmt.Errorf("model %s is declared more than once", model.Name)
		}
		seen[model.Name] = true
	}

	if c.Preferences.DefaultModel != "" && !c.HasModel(c.Preferences.DefaultModel) {
		return fmt.Errorf("default model %s does not exist in models list", c.Preferences.DefaultModel)
	}

	return nil
}
