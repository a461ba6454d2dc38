package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/tasksh/internal/log"
)

func newExecCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <command>...",
		Short: "Run a single command against the task list",
		Long: `Run one command line, print its output and exit.

The exit status is 1 when the command reported an error, such as an
unknown verb or an invalid task ID.`,
		Example: `  tasksh exec add buy milk
  tasksh exec list
  tasksh exec done 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			logger := log.New(cmd.ErrOrStderr(), cfg.Verbose)
			ctx := log.WithLogger(cmd.Context(), logger)

			a, err := newApp(ctx, cfg, flags.memory, logger, true)
			if err != nil {
				return err
			}
			defer a.Close()

			res, _ := a.session.Submit(ctx, strings.Join(args, " "))
			printLines(cmd.OutOrStdout(), res.Lines)
			if res.HasError() {
				return errCommandFailed
			}
			return nil
		},
	}
	// "exec add -x" keeps -x as task text
	cmd.Flags().SetInterspersed(false)
	return cmd
}
