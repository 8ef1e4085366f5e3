package query

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	appconfig "github.com/doeshing/aish-go/internal/application/config"
	"github.com/doeshing/aish-go/internal/domain"
	"github.com/doeshing/aish-go/internal/ports"
)

// Service orchestrates the query lifecycle end-to-end.
type Service struct {
	ConfigProvider   ports.ConfigProvider
	ContextCollector ports.ContextCollector
	ProviderFactory  ports.ProviderFactory
	SecurityService  ports.SecurityService
	Executor         ports.CommandExecutor
	Prompter         ports.ConfirmationPrompter
	Progress         ports.ProgressReporter
	Logger           ports.Logger

	// LookupEnv reads the API key variable; nil means os.LookupEnv.
	LookupEnv appconfig.LookupEnvFunc
}

// Run processes a single natural-language query.
func (s *Service) Run(req domain.QueryRequest) (domain.QueryResponse, error) {
	if s.ConfigProvider == nil || s.ContextCollector == nil || s.ProviderFactory == nil || s.Logger == nil {
		return domain.QueryResponse{}, errors.New("query.Service dependencies not satisfied")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return domain.QueryResponse{}, domain.ErrEmptyQuery
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.QueryResponse{}, fmt.Errorf("load config: %w", err)
	}
	opts := req.Overrides.Apply(cfg.Pipeline)

	creds, err := appconfig.Validate(cfg, req.ModelOverride, s.lookupEnv())
	if err != nil {
		return domain.QueryResponse{}, err
	}

	snapshot, err := s.ContextCollector.Collect(ctx)
	if err != nil {
		s.Logger.Warn("context collection failed", map[string]interface{}{"error": err.Error()})
	}

	provider, err := s.ProviderFactory.ForModel(creds.Model)
	if err != nil {
		return domain.QueryResponse{}, fmt.Errorf("provider init: %w", err)
	}

	s.Logger.Debug("calling provider", map[string]interface{}{
		"provider":      provider.Name(),
		"model":         creds.Model.GetModelID(),
		"system_prompt": opts.IncludeSystemPrompt,
		"check_status":  opts.CheckHTTPStatus,
		"post_process":  opts.PostProcess,
		"execute":       opts.ConfirmBeforeExecute,
	})

	aiResp, err := s.generate(ctx, cfg, provider, ports.ProviderRequest{
		Prompt:  prompt,
		APIKey:  creds.APIKey,
		Context: snapshot,
		Options: opts,
	})
	if err != nil {
		return domain.QueryResponse{}, err
	}

	resp := domain.QueryResponse{
		Command:            aiResp.Command,
		Reply:              aiResp.Reply,
		Outcome:            aiResp.Outcome,
		Model:              creds.Model.Name,
		Options:            opts,
		ContextInformation: snapshot,
	}
	s.Logger.Debug("provider replied", map[string]interface{}{
		"outcome": string(aiResp.Outcome),
		"reply":   aiResp.Reply,
	})

	if !opts.ConfirmBeforeExecute {
		return resp, nil
	}
	return s.confirmAndExecute(ctx, cfg, resp)
}

func (s *Service) generate(ctx context.Context, cfg domain.Config, provider ports.Provider, req ports.ProviderRequest) (ports.ProviderResponse, error) {
	if timeout := cfg.GetTimeoutSeconds(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
	}

	if s.Progress != nil {
		s.Progress.Start("Thinking...")
		defer s.Progress.Stop()
	}

	resp, err := provider.Generate(ctx, req)
	if err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && apiErr.Body != "" {
			s.Logger.Debug("API error body", map[string]interface{}{
				"status": apiErr.StatusCode,
				"body":   apiErr.Body,
			})
		}
		return ports.ProviderResponse{}, fmt.Errorf("provider generate: %w", err)
	}
	return resp, nil
}

func (s *Service) confirmAndExecute(ctx context.Context, cfg domain.Config, resp domain.QueryResponse) (domain.QueryResponse, error) {
	if s.Executor == nil || s.Prompter == nil {
		return resp, errors.New("query.Service execution dependencies not satisfied")
	}

	if reason, refused := refusal(resp); refused {
		return resp, fmt.Errorf("%w: %s", domain.ErrNoCommand, reason)
	}

	if cfg.IsSecurityEnabled() && s.SecurityService != nil {
		risk, err := s.SecurityService.Evaluate(resp.Command)
		if err != nil {
			return resp, fmt.Errorf("security evaluate: %w", err)
		}
		resp.RiskAssessment = risk
		if risk.Action == domain.ActionBlock {
			return resp, fmt.Errorf("%w: %s", domain.ErrCommandBlocked, strings.Join(risk.Reasons, "; "))
		}
	}

	confirmed, err := s.Prompter.Confirm(resp.Command, resp.RiskAssessment)
	if err != nil {
		return resp, fmt.Errorf("read confirmation: %w", err)
	}
	resp.Confirmed = confirmed
	if !confirmed {
		s.Logger.Debug("execution declined", nil)
		return resp, nil
	}

	result, err := s.Executor.Execute(ctx, resp.Command)
	resp.ExecutionResult = &result
	if err != nil {
		return resp, fmt.Errorf("execute command: %w", err)
	}
	s.Logger.Info("command finished", map[string]interface{}{
		"exit_code":   result.ExitCode,
		"duration_ms": result.DurationMS,
	})
	if result.ExitCode != 0 {
		s.Logger.Warn("command exited with non-zero status", map[string]interface{}{"exit_code": result.ExitCode})
	}
	return resp, nil
}

// refusal reports whether the model declined to produce a runnable command.
func refusal(resp domain.QueryResponse) (string, bool) {
	command := strings.TrimSpace(resp.Command)
	switch {
	case resp.Outcome == domain.OutcomeError:
		if command == "" {
			command = "no reason given"
		}
		return command, true
	case strings.HasPrefix(command, domain.RefusalPrefix):
		return strings.TrimSpace(strings.TrimPrefix(command, domain.RefusalPrefix)), true
	case command == "":
		return "empty reply", true
	}
	return "", false
}

func (s *Service) lookupEnv() appconfig.LookupEnvFunc {
	if s.LookupEnv != nil {
		return s.LookupEnv
	}
	return os.LookupEnv
}
