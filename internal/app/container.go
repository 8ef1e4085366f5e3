package app

import (
	"context"
	"io"
	"os"

	"github.com/doeshing/aish-go/internal/application/doctor"
	"github.com/doeshing/aish-go/internal/application/query"
	"github.com/doeshing/aish-go/internal/infrastructure/ai"
	"github.com/doeshing/aish-go/internal/infrastructure/config"
	contextcollector "github.com/doeshing/aish-go/internal/infrastructure/context"
	"github.com/doeshing/aish-go/internal/infrastructure/executor"
	"github.com/doeshing/aish-go/internal/infrastructure/security"
	"github.com/doeshing/aish-go/internal/pkg/logger"
)

// Streams are the terminal handles handed to adapters that talk to the user.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	QueryService  *query.Service
	DoctorService *doctor.Service
}

// BuildContainer constructs the dependency graph. The interactive adapters
// (prompter, progress) belong to the CLI layer and are attached by it.
func BuildContainer(ctx context.Context, cfgLoader *config.FileLoader, verbose bool, streams Streams) (*Container, error) {
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewWithWriter(streams.Err, verbose)
	collector := contextcollector.NewBasicCollector()

	guardrail, err := security.NewGuardrail(cfg.Security.RulesFile)
	if err != nil {
		log.Warn("guardrail rules unusable, falling back to built-in rules", map[string]interface{}{
			"rules_file": cfg.Security.RulesFile,
			"error":      err.Error(),
		})
		guardrail, err = security.NewGuardrail("")
		if err != nil {
			return nil, err
		}
	}
	log.Debug("guardrail loaded", map[string]interface{}{
		"source": guardrail.Source(),
		"rules":  guardrail.RuleCount(),
	})

	localExecutor := executor.NewLocalExecutor(
		cfg.GetExecutionShell(),
		executor.WithStreams(streams.In, streams.Out, streams.Err),
	)

	queryService := &query.Service{
		ConfigProvider:   cfgLoader,
		ContextCollector: collector,
		ProviderFactory:  ai.NewFactory(),
		SecurityService:  guardrail,
		Executor:         localExecutor,
		Logger:           log,
	}

	doctorService := &doctor.Service{
		ConfigProvider:   cfgLoader,
		SecurityService:  guardrail,
		ContextCollector: collector,
		Interpreter:      localExecutor,
	}

	return &Container{
		QueryService:  queryService,
		DoctorService: doctorService,
	}, nil
}
