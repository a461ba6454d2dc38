package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/tasksh/internal/config"
)

// errCommandFailed makes the process exit 1 without printing anything more.
var errCommandFailed = errors.New("command produced errors")

type rootFlags struct {
	dbPath     string
	configPath string
	memory     bool
	plain      bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "tasksh",
		Short: "Daily task manager with a terminal interface",
		Long: `tasksh keeps a daily task list behind a small command line.

Type commands such as "add buy milk", "list" or "done 1" into the prompt.
The task list panel next to the terminal stays in sync and can be worked
with the keyboard or the mouse. When stdin is not a terminal, commands are
read one per line and their output printed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			in, out := cmd.InOrStdin(), cmd.OutOrStdout()
			if cfg.Plain || !isTerminal(in) || !isTerminal(out) {
				return runLineMode(cmd.Context(), cfg, flags.memory, in, out, cmd.ErrOrStderr())
			}
			return runTUI(cmd.Context(), cfg, flags.memory)
		},
	}
	cmd.PersistentFlags().StringVar(&flags.dbPath, "db", "", "SQLite database file (default from config)")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tasksh/config.toml)")
	cmd.PersistentFlags().BoolVar(&flags.memory, "memory", false, "keep tasks in memory only")
	cmd.PersistentFlags().BoolVar(&flags.plain, "plain", false, "line mode even on a terminal")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log every command to the diagnostic log")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddCommand(newExecCmd(flags))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command with signal handling.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd()
	root.SetContext(ctx)
	if err := root.Execute(); err != nil {
		if errors.Is(err, errCommandFailed) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "tasksh: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig layers defaults, the config file, the environment and
// explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (config.RuntimeConfig, error) {
	cfg, err := config.LoadFile(config.DefaultRuntimeConfig(), flags.configPath)
	if err != nil {
		return cfg, err
	}
	cfg = config.RuntimeConfigFromEnv(cfg)
	if cmd.Flags().Changed("db") {
		cfg.DBPath = flags.dbPath
	}
	if cmd.Flags().Changed("plain") {
		cfg.Plain = flags.plain
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = flags.verbose
	}
	return cfg, cfg.Validate()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}
