package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var surpriseCmd = &cobra.Command{
	Use:   "surprise",
	Short: "Let the server pick something random to watch",
	Long: `Let the server pick something random to watch.

Examples:
  screenfind surprise
  screenfind surprise --type series --genre 35`,
	RunE: runSurpriseCmd,
}

func init() {
	rootCmd.AddCommand(surpriseCmd)
	surpriseCmd.Flags().String("type", "", "Content type (movie or series, empty for both)")
	surpriseCmd.Flags().Int("genre", 0, "Genre id")
}

func runSurpriseCmd(cmd *cobra.Command, args []string) error {
	typeSel, _ := cmd.Flags().GetString("type")
	genre, _ := cmd.Flags().GetInt("genre")

	client := NewClient(serverURL)
	item, err := client.Surprise(typeSel, genre)
	if err != nil {
		return fmt.Errorf("surprise failed: %w", err)
	}

	if jsonOutput {
		printJSON(item)
		return nil
	}

	fmt.Printf("Tonight's pick: %s (%s)\n", item.Title, item.Year)
	fmt.Printf("  %s", item.Type)
	if len(item.Genres) > 0 {
		fmt.Printf(" · %s", strings.Join(item.Genres, ", "))
	}
	if item.Rating > 0 {
		fmt.Printf(" · rated %.1f", item.Rating)
	}
	fmt.Println()
	if item.Overview != "" {
		fmt.Printf("\n%s\n", item.Overview)
	}
	return nil
}
