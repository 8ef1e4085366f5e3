package cli

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/aish-go/internal/app"
	"github.com/doeshing/aish-go/internal/domain"
)

func newAskCommand(env *commandEnv) *cobra.Command {
	var (
		model     string
		overrides domain.PipelineOverrides
	)

	cmd := &cobra.Command{
		Use:     "ask <query>",
		Aliases: []string{"cmd"},
		Short:   "Generate a shell command from a task description",
		Example: `  aish ask "find all go files changed in the last day"
  aish ask -x "show disk usage of this directory"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := env.loader()
			loader.BindFlag("preferences.timeout", cmd.Flags().Lookup("timeout"))

			container, err := app.BuildContainer(cmd.Context(), loader, env.verbose(), env.opts.Streams)
			if err != nil {
				return err
			}
			container.QueryService.Prompter = NewPrompter(env.opts.Streams.In, env.stdout(), env.stderr())
			container.QueryService.Progress = NewSpinner(env.stderr())

			resp, err := container.QueryService.Run(domain.QueryRequest{
				Context:       cmd.Context(),
				Prompt:        args[0],
				ModelOverride: model,
				Overrides:     overrides,
			})
			if err != nil {
				return err
			}
			if !resp.Options.ConfirmBeforeExecute {
				RenderResponse(env.stdout(), resp)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Use another configured model (default from config)")
	cmd.Flags().Int("timeout", 0, "Request deadline in seconds (0 = none)")
	cmd.Flags().BoolVarP(&overrides.Execute, "execute", "x", false, "Print the command and run it after Enter")
	cmd.Flags().BoolVar(&overrides.NoSystemPrompt, "no-system-prompt", false, "Send the task verbatim, without the system prompt")
	cmd.Flags().BoolVar(&overrides.SkipStatusCheck, "skip-status-check", false, "Decode the body even on a non-2xx status")
	cmd.Flags().BoolVar(&overrides.Raw, "raw", false, "Print the model reply without post-processing")

	return cmd
}
