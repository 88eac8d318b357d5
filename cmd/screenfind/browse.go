package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse trending, top rated, and popular titles",
	Long: `Browse trending, top rated, and popular titles.

Examples:
  screenfind browse
  screenfind browse --json`,
	RunE: runBrowseCmd,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowseCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	home, err := client.Home()
	if err != nil {
		return fmt.Errorf("browse failed: %w", err)
	}

	if jsonOutput {
		printJSON(home)
		return nil
	}

	printRow("Trending This Week", home.Trending)
	printRow("Top Rated Movies", home.TopRatedMovies)
	printRow("Popular TV Shows", home.PopularTV)
	return nil
}

func printRow(heading string, items []Item) {
	fmt.Printf("%s\n\n", heading)
	if len(items) == 0 {
		fmt.Println("  (unavailable)")
		fmt.Println()
		return
	}
	printItems(items)
	fmt.Println()
}
