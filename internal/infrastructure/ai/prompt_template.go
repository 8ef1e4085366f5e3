package ai

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/doeshing/aish-go/internal/domain"
)

// templateData is exposed to system_prompt and prompt_template sources.
//
// Template Variables Available:
//   - {{.Task}}: the user's task description, trimmed
//   - {{.WorkingDir}}: current working directory
//   - {{.Shell}}: active shell (bash, zsh, cmd, ...)
//   - {{.OS}}: operating system
//   - {{.User}}: current user name
type templateData struct {
	Task       string
	WorkingDir string
	Shell      string
	OS         string
	User       string
}

func buildTemplateData(task string, ctx domain.ContextSnapshot) templateData {
	return templateData{
		Task:       strings.TrimSpace(task),
		WorkingDir: ctx.WorkingDir,
		Shell:      ctx.Shell,
		OS:         ctx.OS,
		User:       ctx.User,
	}
}

func renderSystemPrompt(model domain.ModelDefinition, data templateData) (string, error) {
	raw := model.SystemPrompt
	if raw == "" {
		raw = defaultSystemPrompt
	}
	out, err := executeTemplate("system_prompt", raw, data)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func renderUserPrompt(model domain.ModelDefinition, data templateData) (string, error) {
	raw := model.PromptTemplate
	if raw == "" {
		raw = defaultPromptTemplate
	}
	out, err := executeTemplate("prompt_template", raw, data)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func executeTemplate(name, raw string, data templateData) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// The default prompts share one reply contract: a marker line, then the
// payload. Custom templates may drop the markers; a plain reply still goes
// through the first-line heuristic and the "ERROR: " refusal check.
const defaultSystemPrompt = `You are aish, a command-line assistant that translates a task into one shell command.
Current environment:
- OS: {{.OS}}
- Shell: {{.Shell}}
- Directory: {{.WorkingDir}}
Reply with ` + domain.MarkerSuccess + ` followed by the command on the next line.
If the task cannot be done with a shell command, reply with ` + domain.MarkerError + ` followed by a one-line reason.`

const defaultPromptTemplate = `Generate exactly ONE shell command for the following task.
Start the reply with ` + domain.MarkerSuccess + ` and put the command alone on the next line: no explanation, no formatting, no markdown.
If it is impossible, reply with ` + domain.MarkerError + ` and a one-line reason instead.

Task: {{.Task}}`
