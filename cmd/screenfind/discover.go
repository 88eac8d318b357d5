package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Browse the catalog by genre, rating, and year",
	Long: `Browse the catalog by genre, rating, and year.

Examples:
  screenfind discover --type movie --genre 878 --min-rating 7
  screenfind discover --type series --year-from 2015 --sort rating`,
	RunE: runDiscoverCmd,
}

func init() {
	rootCmd.AddCommand(discoverCmd)
	discoverCmd.Flags().String("type", "", "Content type (movie or series, empty for both)")
	discoverCmd.Flags().Int("genre", 0, "Genre id (see 'screenfind genres')")
	discoverCmd.Flags().Float64("min-rating", 0, "Minimum rating")
	discoverCmd.Flags().Int("year-from", 0, "Earliest release year")
	discoverCmd.Flags().Int("year-to", 0, "Latest release year")
	discoverCmd.Flags().String("sort", "", "Sort order (popular, rating, or date)")
	discoverCmd.Flags().Int("page", 1, "Result page")
}

func runDiscoverCmd(cmd *cobra.Command, args []string) error {
	p := DiscoverParams{}
	p.Type, _ = cmd.Flags().GetString("type")
	p.Genre, _ = cmd.Flags().GetInt("genre")
	p.MinRating, _ = cmd.Flags().GetFloat64("min-rating")
	p.YearFrom, _ = cmd.Flags().GetInt("year-from")
	p.YearTo, _ = cmd.Flags().GetInt("year-to")
	p.Sort, _ = cmd.Flags().GetString("sort")
	p.Page, _ = cmd.Flags().GetInt("page")

	client := NewClient(serverURL)
	results, err := client.Discover(p)
	if err != nil {
		return fmt.Errorf("discover failed: %w", err)
	}

	if jsonOutput {
		printJSON(results)
		return nil
	}

	if len(results.Items) == 0 {
		fmt.Println("No results found")
		return nil
	}
	printItems(results.Items)
	if results.TotalPages > 1 {
		fmt.Printf("\nPage %d of %d\n", results.Page, results.TotalPages)
	}
	return nil
}
