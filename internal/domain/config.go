package domain

// Config mirrors ~/.aish/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version" mapstructure:"config_format_version"`
	Preferences         Preferences       `yaml:"preferences" mapstructure:"preferences"`
	Models              []ModelDefinition `yaml:"models" mapstructure:"models"`
	Pipeline            PipelineOptions   `yaml:"pipeline" mapstructure:"pipeline"`
	Security            SecuritySettings  `yaml:"security" mapstructure:"security"`
	Execution           ExecutionSettings `yaml:"execution" mapstructure:"execution"`
}

// Preferences captures user level toggles.
type Preferences struct {
	DefaultModel   string `yaml:"default_model" mapstructure:"default_model"`
	TimeoutSeconds int    `yaml:"timeout" mapstructure:"timeout"`
}

// PipelineOptions selects which stages of the request pipeline run.
type PipelineOptions struct {
	IncludeSystemPrompt  bool `yaml:"include_system_prompt" mapstructure:"include_system_prompt"`
	CheckHTTPStatus      bool `yaml:"check_http_status" mapstructure:"check_http_status"`
	PostProcess          bool `yaml:"post_process" mapstructure:"post_process"`
	ConfirmBeforeExecute bool `yaml:"confirm_before_execute" mapstructure:"confirm_before_execute"`
}

// DefaultPipelineOptions is the print-only pipeline with every cleanup stage enabled.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		IncludeSystemPrompt: true,
		CheckHTTPStatus:     true,
		PostProcess:         true,
	}
}

// SecuritySettings defines guardrail behavior.
type SecuritySettings struct {
	Enabled   bool   `yaml:"enabled" mapstructure:"enabled"`
	RulesFile string `yaml:"rules_file" mapstructure:"rules_file"`
}

// ExecutionSettings controls how commands run.
type ExecutionSettings struct {
	Shell string `yaml:"shell" mapstructure:"shell"`
}
