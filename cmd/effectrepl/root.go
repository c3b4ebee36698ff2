package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/on-the-ground/effect_ive_io/effects"
	"github.com/on-the-ground/effect_ive_io/effects/console"
	"github.com/on-the-ground/effect_ive_io/effects/log"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "effectrepl",
		Short:        "Small interactive programs built from effect descriptions",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log interpreter runs to stderr")

	run := func(program func() effects.Node[effects.Unit]) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			return runProgram(cmd, newLogger(verbose), program())
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "factorial",
			Short: "Compute factorials until 'q' is entered",
			Args:  cobra.NoArgs,
			RunE:  run(factorialREPL),
		},
		&cobra.Command{
			Use:   "convert",
			Short: "Convert one temperature from Fahrenheit to Celsius",
			Args:  cobra.NoArgs,
			RunE:  run(converter),
		},
	)
	return root
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// runProgram interprets program once with the command's streams as the terminal.
func runProgram(cmd *cobra.Command, logger *zap.Logger, program effects.Node[effects.Unit]) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, endOfLog := log.WithZapEffectHandler(ctx, logger)
	defer endOfLog()

	ctx, endOfConsole := console.WithEffectHandler(ctx, console.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout()))
	defer endOfConsole()

	_, err := effects.Run(ctx, program)
	return err
}
