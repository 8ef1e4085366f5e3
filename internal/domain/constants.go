package domain

// Anthropic Messages API defaults.
const (
	DefaultEndpoint   = "https://api.anthropic.com/v1/messages"
	DefaultAPIVersion = "2023-06-01"
	DefaultAuthEnvVar = "ANTHROPIC_API_KEY"
	DefaultModelID    = "claude-3-7-sonnet-20250219"
	DefaultModelName  = "claude-sonnet"
	DefaultMaxTokens  = 1000
)

// Sentinel markers the model is instructed to wrap its answer in.
const (
	MarkerSuccess = "[COMMAND_SUCCESS]"
	MarkerError   = "[COMMAND_ERROR]"
)

// RefusalPrefix marks a refusal in replies from custom templates that skip
// the markers.
const RefusalPrefix = "ERROR: "

// UsageHint is printed when aish runs without a subcommand.
const UsageHint = "Try using the 'ask' subcommand followed by your question"
