package domain

// RiskLevel enumerates guardrail outcomes.
type RiskLevel string

const (
	RiskSafe     RiskLevel = "safe"
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// GuardrailAction describes how the executor should react to a risk level.
type GuardrailAction string

const (
	ActionAllow GuardrailAction = "allow"
	ActionWarn  GuardrailAction = "warn"
	ActionBlock GuardrailAction = "block"
)

// RiskAssessment aggregates security evaluation data.
type RiskAssessment struct {
	Level        RiskLevel
	Action       GuardrailAction
	Reasons      []string
	MatchedRules []string
}

// Elevated reports whether the assessment is worth surfacing to the user.
func (r RiskAssessment) Elevated() bool {
	return r.Level != "" && r.Level != RiskSafe
}
