// Package ai talks to the Anthropic Messages API.
//
// One Generate call is one synchronous exchange:
//   - BuildRequest wraps the task into the request envelope
//   - Client.Send posts it with the API key and version headers
//   - DecodeResponse joins the text blocks of the reply
//   - ExtractCommand strips fences and sentinel markers from the text
package ai

import (
	"github.com/doeshing/aish-go/internal/domain"
)

// MessagesRequest is the JSON body posted to the messages endpoint.
type MessagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
}

// Message is one chat turn. aish always sends exactly one user message.
type Message struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}

// ContentBlock is one typed unit of message content.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// MessagesResponse is the subset of the reply aish consumes.
type MessagesResponse struct {
	Content []ContentBlock `json:"content"`
	Error   *ErrorObject   `json:"error,omitempty"`
}

// ErrorObject is the API-level error carried inside a reply body.
type ErrorObject struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

const (
	roleUser        = "user"
	contentTypeText = "text"
)

// BuildRequest produces the request envelope for a task. With the system
// prompt enabled the task is wrapped in the model's prompt template and the
// rendered system instruction is attached; otherwise the task is sent verbatim.
func BuildRequest(model domain.ModelDefinition, task string, snapshot domain.ContextSnapshot, opts domain.PipelineOptions) (MessagesRequest, error) {
	req := MessagesRequest{
		Model:     model.GetModelID(),
		MaxTokens: model.GetMaxTokens(),
	}

	text := task
	if opts.IncludeSystemPrompt {
		data := buildTemplateData(task, snapshot)

		system, err := renderSystemPrompt(model, data)
		if err != nil {
			return MessagesRequest{}, err
		}
		req.System = system

		text, err = renderUserPrompt(model, data)
		if err != nil {
			return MessagesRequest{}, err
		}
	}

	req.Messages = []Message{
		{
			Role:    roleUser,
			Content: []ContentBlock{{Type: contentTypeText, Text: text}},
		},
	}
	return req, nil
}
