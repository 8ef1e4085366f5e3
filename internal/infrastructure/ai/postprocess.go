package ai

import (
	"regexp"
	"strings"

	"github.com/doeshing/aish-go/internal/domain"
)

const fence = "```"

// fencePattern matches language-tagged openers such as "```bash\n" first, then
// any leftover bare fence.
var fencePattern = regexp.MustCompile("```(?:bash|sh|shell|zsh|console)?[ \t]*\r?\n|```")

// Extraction is the result of post-processing a reply.
type Extraction struct {
	Text    string
	Outcome domain.Outcome
}

// ProcessResponse returns the command text extracted from a model reply.
func ProcessResponse(text string) string {
	return ExtractCommand(text).Text
}

// ExtractCommand is a best-effort heuristic over free-form model output. It
// never fails: every branch ends in a string, possibly empty.
func ExtractCommand(text string) Extraction {
	cleaned := stripFences(strings.TrimSpace(text))

	if idx := strings.Index(cleaned, domain.MarkerSuccess); idx >= 0 {
		return Extraction{
			Text:    strings.TrimSpace(cleaned[idx+len(domain.MarkerSuccess):]),
			Outcome: domain.OutcomeSuccess,
		}
	}

	if idx := strings.Index(cleaned, domain.MarkerError); idx >= 0 {
		rest := cleaned[idx+len(domain.MarkerError):]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[:nl]
		}
		return Extraction{
			Text:    strings.TrimSpace(rest),
			Outcome: domain.OutcomeError,
		}
	}

	return Extraction{
		Text:    firstCommandLine(cleaned),
		Outcome: domain.OutcomePlain,
	}
}

func stripFences(text string) string {
	if !strings.Contains(text, fence) {
		return text
	}
	return fencePattern.ReplaceAllString(text, "")
}

// firstCommandLine prefers the first line that is neither bracketed nor a
// fence, then any non-empty line, then the trimmed text itself.
func firstCommandLine(text string) string {
	var firstNonEmpty string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if firstNonEmpty == "" {
			firstNonEmpty = line
		}
		if strings.HasPrefix(line, "[") || strings.Contains(line, fence) {
			continue
		}
		return line
	}
	if firstNonEmpty != "" {
		return firstNonEmpty
	}
	return strings.TrimSpace(text)
}
