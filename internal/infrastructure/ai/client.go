package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/doeshing/aish-go/internal/domain"
)

// Client posts request envelopes to a messages endpoint.
type Client struct {
	httpClient *http.Client
}

// NewClient wraps an http.Client. A nil client means http.DefaultClient,
// which carries no timeout of its own.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient}
}

// Endpoint identifies where and how to send a request.
type Endpoint struct {
	URL        string
	APIKey     string
	APIVersion string
}

// Send issues one POST and returns the raw response body.
//
// With checkStatus set, any non-2xx status becomes an *domain.APIError carrying
// the status code and raw body. Without it the body is returned regardless of
// status and left to the decoder.
func (c *Client) Send(ctx context.Context, endpoint Endpoint, payload MessagesRequest, checkStatus bool) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create HTTP request: %w", err)
	}
	httpReq.Header.Set("x-api-key", endpoint.APIKey)
	httpReq.Header.Set("anthropic-version", endpoint.APIVersion)
	httpReq.Header.Set("content-type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &domain.TransportError{Endpoint: endpoint.URL, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Endpoint: endpoint.URL, Err: fmt.Errorf("read response body: %w", err)}
	}

	if checkStatus && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return nil, statusError(resp.StatusCode, raw)
	}
	return raw, nil
}

// statusError lifts the structured error fields out of the usual
// {"error": {"type", "message"}} body so the rendered message names them;
// any other body is kept verbatim.
func statusError(code int, body []byte) *domain.APIError {
	apiErr := &domain.APIError{
		StatusCode: code,
		Body:       string(body),
	}
	if gjson.ValidBytes(body) {
		apiErr.Type = gjson.GetBytes(body, "error.type").String()
		apiErr.Message = gjson.GetBytes(body, "error.message").String()
	}
	return apiErr
}
