package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"screenfind/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config.toml",
	RunE:  runInitCmd,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("config", "config.toml", "Path to write")
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")
}

func runInitCmd(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	fmt.Println("Set TMDB_API_KEY in your environment, then run 'screenfind serve'.")
	return nil
}
