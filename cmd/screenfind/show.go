package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <source> <type> <id>",
	Short: "Show full details for one title",
	Long: `Show full details for one title.

The source and id come from search or browse output.

Examples:
  screenfind show tmdb movie 603
  screenfind show tvmaze series 169`,
	Args: cobra.ExactArgs(3),
	RunE: runShowCmd,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShowCmd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[2])
	if err != nil {
		return err
	}

	client := NewClient(serverURL)
	item, err := client.Details(args[0], args[1], id)
	if err != nil {
		return fmt.Errorf("show failed: %w", err)
	}

	if jsonOutput {
		printJSON(item)
		return nil
	}

	fmt.Printf("%s (%s)\n", item.Title, item.Year)
	fmt.Printf("  %s", item.Type)
	if len(item.Genres) > 0 {
		fmt.Printf(" · %s", strings.Join(item.Genres, ", "))
	}
	if item.Rating > 0 {
		fmt.Printf(" · rated %.1f", item.Rating)
	}
	fmt.Println()
	if item.Status != "" {
		fmt.Printf("  status: %s\n", item.Status)
	}
	if item.Runtime > 0 {
		fmt.Printf("  runtime: %d min\n", item.Runtime)
	}
	if item.Network != "" {
		fmt.Printf("  network: %s\n", item.Network)
	}
	if item.Overview != "" {
		fmt.Printf("\n%s\n", item.Overview)
	}
	return nil
}
