package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"calckit/cli/calc/internal/config"
	"calckit/cli/calc/internal/history"
	"calckit/cli/calc/internal/interpreter"
	"calckit/cli/calc/internal/lineio"
	"calckit/cli/calc/internal/logging"
	"calckit/cli/calc/internal/operations"
	"calckit/cli/calc/internal/opregistry"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	prompt     string
	noHistory  bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Interactive two-operand calculator",
		Long: `calc reads "operation operand1 operand2" lines and prints the result.

Operations: add, subtract, multiply, divide, power.
Special commands: help, history, exit. Ctrl-C or Ctrl-D also exit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, flags)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "config file (default $CALC_CONFIG or <user config dir>/calckit/config.yaml)")
	f.StringVar(&flags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	f.StringVar(&flags.logFormat, "log-format", "", "log format: text or json")
	f.StringVar(&flags.prompt, "prompt", "", "input prompt")
	f.BoolVar(&flags.noHistory, "no-history", false, "disable session history")
	return cmd
}

// resolveConfig layers command-line flags over the config file and env.
func resolveConfig(cmd *cobra.Command, flags rootFlags) (config.Config, error) {
	cfg, path, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = flags.logFormat
	}
	if cmd.Flags().Changed("prompt") {
		cfg.Prompt = flags.prompt
	}
	if flags.noHistory {
		disabled := false
		cfg.History = &disabled
	}
	return cfg, nil
}

func buildRegistry() (*opregistry.Registry, error) {
	reg := opregistry.New()
	if err := operations.Register(reg); err != nil {
		return nil, fmt.Errorf("register operations: %w", err)
	}
	return reg, nil
}

func runREPL(cmd *cobra.Command, flags rootFlags) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log, cmd.ErrOrStderr())
	session := logger.WithField("session", uuid.NewString())

	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	prompter := lineio.NewPrompter(cmd.InOrStdin(), out)
	defer prompter.Close()

	var hist *history.History
	if cfg.HistoryEnabled() {
		hist = history.New()
	}
	styles := interpreter.NewStyles(out)
	it := interpreter.New(reg, prompter, lineio.WriterSink(out), interpreter.Options{
		Prompt:  cfg.Prompt,
		History: hist,
		Logger:  session,
		Styles:  &styles,
	})
	return it.Run(ctx)
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "calc:", err)
		os.Exit(1)
	}
}
