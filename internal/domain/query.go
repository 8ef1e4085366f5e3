package domain

import "context"

// QueryRequest captures one `aish ask` invocation.
type QueryRequest struct {
	Context       context.Context
	Prompt        string
	ModelOverride string
	Overrides     PipelineOverrides
}

// PipelineOverrides are per-invocation switches layered over the configured
// pipeline. They can only turn a stage off, or turn execution on.
type PipelineOverrides struct {
	NoSystemPrompt  bool
	SkipStatusCheck bool
	Raw             bool
	Execute         bool
}

// Apply returns base with the overrides applied.
func (o PipelineOverrides) Apply(base PipelineOptions) PipelineOptions {
	if o.NoSystemPrompt {
		base.IncludeSystemPrompt = false
	}
	if o.SkipStatusCheck {
		base.CheckHTTPStatus = false
	}
	if o.Raw {
		base.PostProcess = false
	}
	if o.Execute {
		base.ConfirmBeforeExecute = true
	}
	return base
}

// Outcome classifies the post-processed reply.
type Outcome string

const (
	OutcomePlain   Outcome = "plain"
	OutcomeSuccess Outcome = "success"
	OutcomeError   Outcome = "error"
)

// QueryResponse is the canonical response propagated back to the CLI.
type QueryResponse struct {
	Command            string
	Reply              string
	Outcome            Outcome
	Model              string
	Options            PipelineOptions
	RiskAssessment     RiskAssessment
	Confirmed          bool
	ExecutionResult    *ExecutionResult
	ContextInformation ContextSnapshot
}

// ExecutionResult wraps details from the command executor.
type ExecutionResult struct {
	Ran        bool
	ExitCode   int
	DurationMS int64
	Err        error
}
