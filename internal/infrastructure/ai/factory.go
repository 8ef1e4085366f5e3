package ai

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/doeshing/aish-go/internal/domain"
	"github.com/doeshing/aish-go/internal/ports"
)

// Factory creates providers that share one HTTP client.
type Factory struct {
	client *Client
}

// NewFactory creates a provider factory. The HTTP client is left without a
// timeout; callers bound a request through its context instead.
func NewFactory() *Factory {
	return &Factory{client: NewClient(&http.Client{})}
}

// NewFactoryWithClient is NewFactory with a caller-supplied HTTP client.
func NewFactoryWithClient(httpClient *http.Client) *Factory {
	return &Factory{client: NewClient(httpClient)}
}

// ForModel returns a Messages API provider for the model definition.
func (f *Factory) ForModel(model domain.ModelDefinition) (ports.Provider, error) {
	if _, err := url.ParseRequestURI(model.GetEndpoint()); err != nil {
		return nil, fmt.Errorf("model %s: invalid endpoint: %w", model.Name, err)
	}
	return &messagesProvider{model: model, client: f.client}, nil
}

var _ ports.ProviderFactory = (*Factory)(nil)

// messagesProvider runs builder -> transport -> decoder -> post-processor.
type messagesProvider struct {
	model  domain.ModelDefinition
	client *Client
}

func (p *messagesProvider) Name() string {
	return "anthropic"
}

func (p *messagesProvider) Model() domain.ModelDefinition {
	return p.model
}

func (p *messagesProvider) Generate(ctx context.Context, req ports.ProviderRequest) (ports.ProviderResponse, error) {
	payload, err := BuildRequest(p.model, req.Prompt, req.Context, req.Options)
	if err != nil {
		return ports.ProviderResponse{}, fmt.Errorf("build request: %w", err)
	}

	body, err := p.client.Send(ctx, Endpoint{
		URL:        p.model.GetEndpoint(),
		APIKey:     req.APIKey,
		APIVersion: p.model.GetAPIVersion(),
	}, payload, req.Options.CheckHTTPStatus)
	if err != nil {
		return ports.ProviderResponse{}, err
	}

	reply, err := DecodeResponse(body)
	if err != nil {
		return ports.ProviderResponse{}, err
	}

	if !req.Options.PostProcess {
		return ports.ProviderResponse{
			Command: reply,
			Reply:   reply,
			Outcome: domain.OutcomePlain,
		}, nil
	}

	extraction := ExtractCommand(reply)
	return ports.ProviderResponse{
		Command: extraction.Text,
		Reply:   reply,
		Outcome: extraction.Outcome,
	}, nil
}
