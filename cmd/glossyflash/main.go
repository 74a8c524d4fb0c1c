package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codeberg.org/snonux/glossyflash/internal/cli"
	"codeberg.org/snonux/glossyflash/internal/logging"
	"codeberg.org/snonux/glossyflash/internal/models"
	"codeberg.org/snonux/glossyflash/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.TranslationConfig(flags), cmd.OutOrStdout())
		return lister.ListAvailableModels(ctx)
	}

	logger := logging.New(logging.Options{Debug: flags.Debug, JSON: flags.LogJSON})
	defer func() { _ = logger.Sync() }()

	// Create processor
	proc, err := processor.NewProcessor(flags, logger)
	if err != nil {
		return err
	}

	// The terminal front-end takes precedence over everything else
	if flags.TUIMode {
		return proc.RunTerminalMode()
	}

	if flags.BatchFile == "" && len(args) == 0 {
		// No input provided - launch GUI mode by default
		return proc.RunGUIMode()
	}

	glosses, err := proc.CollectGlosses(args)
	if err != nil {
		return err
	}

	if err := proc.ProcessGlosses(ctx, glosses); err != nil {
		logger.Error("Generation failed", zap.Error(err))
		return fmt.Errorf("glossyflash: %w", err)
	}
	return nil
}
