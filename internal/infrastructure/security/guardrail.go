package security

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/aish-go/assets"
	"github.com/doeshing/aish-go/internal/domain"
	"github.com/doeshing/aish-go/internal/pkg/filesystem"
	"github.com/doeshing/aish-go/internal/ports"
)

// Guardrail implements the SecurityService port.
type Guardrail struct {
	source   string
	patterns []compiledPattern
}

type compiledPattern struct {
	re   *regexp.Regexp
	rule DangerPattern
}

// DangerPattern describes a regex-based guardrail rule.
type DangerPattern struct {
	Pattern string `yaml:"pattern"`
	Level   string `yaml:"level"`
	Message string `yaml:"message"`
	Action  string `yaml:"action"`
}

// RulesFile is the YAML schema root.
type RulesFile struct {
	Rules struct {
		DangerPatterns []DangerPattern `yaml:"danger_patterns"`
	} `yaml:"rules"`
}

// NewGuardrail loads guardrail rules from path, or the embedded defaults when
// path is empty or does not exist.
func NewGuardrail(path string) (*Guardrail, error) {
	raw, source, err := readRules(path)
	if err != nil {
		return nil, err
	}
	return ParseRules(raw, source)
}

// ParseRules compiles a rules document. source names it in error messages.
func ParseRules(raw []byte, source string) (*Guardrail, error) {
	var rules RulesFile
	if err := yaml.Unmarshal(raw, &rules); err != nil {
		return nil, fmt.Errorf("parse guardrail rules %s: %w", source, err)
	}

	compiled := make([]compiledPattern, 0, len(rules.Rules.DangerPatterns))
	for _, pattern := range rules.Rules.DangerPatterns {
		re, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			return nil, fmt.Errorf("guardrail rule %q: %w", pattern.Pattern, err)
		}
		compiled = append(compiled, compiledPattern{re: re, rule: pattern})
	}

	return &Guardrail{source: source, patterns: compiled}, nil
}

// Source reports where the rules were loaded from.
func (g *Guardrail) Source() string {
	return g.source
}

// RuleCount returns the number of compiled rules.
func (g *Guardrail) RuleCount() int {
	return len(g.patterns)
}

// Evaluate implements ports.SecurityService. The most severe matching rule
// decides the level and action; every match contributes a reason.
func (g *Guardrail) Evaluate(command string) (domain.RiskAssessment, error) {
	if g == nil {
		return domain.RiskAssessment{}, errors.New("guardrail nil")
	}
	assessment := domain.RiskAssessment{
		Level:  domain.RiskSafe,
		Action: domain.ActionAllow,
	}
	for _, pattern := range g.patterns {
		if !pattern.re.MatchString(command) {
			continue
		}
		ruleLevel := parseRiskLevel(pattern.rule.Level)
		if moreSevere(ruleLevel, assessment.Level) {
			assessment.Level = ruleLevel
			assessment.Action = parseAction(pattern.rule.Action, ruleLevel)
		}
		assessment.Reasons = append(assessment.Reasons, pattern.rule.Message)
		assessment.MatchedRules = append(assessment.MatchedRules, pattern.rule.Pattern)
	}
	return assessment, nil
}

func readRules(path string) ([]byte, string, error) {
	path = filesystem.ExpandPath(path)
	if path == "" {
		return assets.DefaultGuardrailYAML, "built-in", nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return assets.DefaultGuardrailYAML, "built-in", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("read guardrail rules: %w", err)
	}
	return data, path, nil
}

func parseRiskLevel(value string) domain.RiskLevel {
	switch strings.ToLower(value) {
	case "low":
		return domain.RiskLow
	case "medium":
		return domain.RiskMedium
	case "high":
		return domain.RiskHigh
	case "critical":
		return domain.RiskCritical
	default:
		return domain.RiskSafe
	}
}

func parseAction(value string, fallback domain.RiskLevel) domain.GuardrailAction {
	switch strings.ToLower(value) {
	case "allow":
		return domain.ActionAllow
	case "warn":
		return domain.ActionWarn
	case "block":
		return domain.ActionBlock
	default:
		if fallback == domain.RiskSafe {
			return domain.ActionAllow
		}
		return domain.ActionWarn
	}
}

func moreSevere(next domain.RiskLevel, current domain.RiskLevel) bool {
	order := map[domain.RiskLevel]int{
		domain.RiskSafe:     0,
		domain.RiskLow:      1,
		domain.RiskMedium:   2,
		domain.RiskHigh:     3,
		domain.RiskCritical: 4,
	}
	return order[next] > order[current]
}

var _ ports.SecurityService = (*Guardrail)(nil)
