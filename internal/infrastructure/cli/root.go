package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doeshing/aish-go/internal/app"
	"github.com/doeshing/aish-go/internal/domain"
	"github.com/doeshing/aish-go/internal/infrastructure/config"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
	Streams app.Streams
}

type rootFlags struct {
	configPath string
	debug      bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.Streams.In == nil {
		opts.Streams = app.StdStreams()
	}
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "aish",
		Short: "aish - turn a task description into a shell command",
		Long:  "aish asks the Anthropic Messages API for exactly one shell command that performs the task you describe.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), domain.UsageHint)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetIn(opts.Streams.In)
	root.SetOut(opts.Streams.Out)
	root.SetErr(opts.Streams.Err)

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default ~/.aish/config.yaml, or $AISH_CONFIG)")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Enable debug logging on stderr")

	env := &commandEnv{opts: opts, flags: flags}
	root.AddCommand(newAskCommand(env))
	root.AddCommand(newConfigCommand(env))
	root.AddCommand(newDoctorCommand(env))
	root.AddCommand(newVersionCommand())
	return root
}

// commandEnv is shared by subcommands to reach the streams and root flags.
type commandEnv struct {
	opts  Options
	flags *rootFlags
}

func (e *commandEnv) verbose() bool {
	return e.opts.Verbose || e.flags.debug
}

func (e *commandEnv) loader() *config.FileLoader {
	return config.NewFileLoader(e.flags.configPath)
}

func (e *commandEnv) stdout() io.Writer {
	if e.opts.Streams.Out == nil {
		return os.Stdout
	}
	return e.opts.Streams.Out
}

func (e *commandEnv) stderr() io.Writer {
	if e.opts.Streams.Err == nil {
		return os.Stderr
	}
	return e.opts.Streams.Err
}
