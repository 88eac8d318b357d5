package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] <query>...",
	Short: "Search movies and shows across both catalogs",
	Long: `Search movies and shows across both catalogs.

With --live, queries are read interactively line by line and results update
as soon as the input settles.

Examples:
  screenfind search "The Matrix"
  screenfind search breaking bad --page 2
  screenfind search --live`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Int("page", 1, "Result page")
	searchCmd.Flags().Bool("live", false, "Interactive search-as-you-type session")
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)

	if live, _ := cmd.Flags().GetBool("live"); live {
		return runLiveSearch(cmd.InOrStdin(), cmd.OutOrStdout(), clientSearchFunc(client))
	}
	if len(args) == 0 {
		return fmt.Errorf("requires a query (or --live)")
	}

	query := strings.Join(args, " ")
	page, _ := cmd.Flags().GetInt("page")
	results, err := client.Search(query, page)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if jsonOutput {
		printJSON(results)
		return nil
	}

	if len(results.Items) == 0 {
		fmt.Println("No results found")
		if sug, err := client.Suggest(query); err == nil && len(sug.Suggestions) > 0 {
			fmt.Printf("Did you mean: %s?\n", strings.Join(sug.Suggestions, ", "))
		}
		return nil
	}

	printItems(results.Items)
	if results.TotalPages > 1 {
		fmt.Printf("\nPage %d of %d\n", results.Page, results.TotalPages)
	}
	return nil
}

func printItems(items []Item) {
	fmt.Printf("  # │ %-40s │ %-6s │ %-4s │ %6s │ %s\n", "TITLE", "TYPE", "YEAR", "RATING", "SOURCE")
	fmt.Println("────┼──────────────────────────────────────────┼────────┼──────┼────────┼───────")
	for i, item := range items {
		title := item.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		rating := "-"
		if item.Rating > 0 {
			rating = fmt.Sprintf("%.1f", item.Rating)
		}
		fmt.Printf("%3d │ %-40s │ %-6s │ %-4s │ %6s │ %s\n",
			i+1, title, item.Type, item.Year, rating, item.Source)
	}
}
