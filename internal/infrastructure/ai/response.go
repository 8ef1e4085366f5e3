package ai

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/doeshing/aish-go/internal/domain"
)

// DecodeResponse parses a reply body and joins its text blocks with newlines.
// A body that is not the expected shape yields *domain.DecodeError; an error
// object inside the reply yields *domain.APIError.
func DecodeResponse(body []byte) (string, error) {
	var envelope struct {
		Content json.RawMessage `json:"content"`
		Error   *ErrorObject    `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", &domain.DecodeError{Err: err}
	}

	if envelope.Error != nil {
		return "", &domain.APIError{
			Type:    envelope.Error.Type,
			Message: envelope.Error.Message,
			Body:    string(body),
		}
	}

	if len(envelope.Content) == 0 {
		return "", &domain.DecodeError{Err: errors.New(`missing field "content"`)}
	}

	var blocks []ContentBlock
	if err := json.Unmarshal(envelope.Content, &blocks); err != nil {
		return "", &domain.DecodeError{Err: err}
	}

	return joinText(blocks), nil
}

func joinText(blocks []ContentBlock) string {
	texts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if block.Type != contentTypeText {
			continue
		}
		texts = append(texts, block.Text)
	}
	return strings.Join(texts, "\n")
}
