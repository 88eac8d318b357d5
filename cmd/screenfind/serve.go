package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"screenfind/internal/config"
	"screenfind/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the screenfind server",
	Long: `Run the screenfind server.

Loads config.toml (or the file given with --config), opens the
database, and serves the REST API until interrupted.`,
	RunE: runServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("config", "config.toml", "Path to config file")
}

func runServeCmd(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := server.NewLogger(cfg)
	runner := server.NewRunner(cfg, logger)
	if err := runner.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
