package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var watchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "Manage the watchlist",
}

var watchlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all watchlist entries",
	RunE:  runWatchlistListCmd,
}

var watchlistAddCmd = &cobra.Command{
	Use:   "add <source> <id> <title>",
	Short: "Add an item to the watchlist",
	Long: `Add an item to the watchlist.

Examples:
  screenfind watchlist add tmdb 603 "The Matrix" --type movie --year 1999`,
	Args: cobra.ExactArgs(3),
	RunE: runWatchlistAddCmd,
}

var watchlistRemoveCmd = &cobra.Command{
	Use:   "remove <source> <id>",
	Short: "Remove an item from the watchlist",
	Args:  cobra.ExactArgs(2),
	RunE:  runWatchlistRemoveCmd,
}

var watchlistMoveCmd = &cobra.Command{
	Use:   "move <source> <id> <category>",
	Short: "Move an entry to a category",
	Long: `Move an entry to a category.

Categories: "To Watch", "Watching Now", "Already Watched".`,
	Args: cobra.ExactArgs(3),
	RunE: runWatchlistMoveCmd,
}

func init() {
	rootCmd.AddCommand(watchlistCmd)
	watchlistCmd.AddCommand(watchlistListCmd)
	watchlistCmd.AddCommand(watchlistAddCmd)
	watchlistCmd.AddCommand(watchlistRemoveCmd)
	watchlistCmd.AddCommand(watchlistMoveCmd)

	watchlistAddCmd.Flags().String("type", "movie", "Content type (movie or series)")
	watchlistAddCmd.Flags().String("year", "", "Release year")
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func runWatchlistListCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	entries, err := client.Watchlist()
	if err != nil {
		return fmt.Errorf("watchlist failed: %w", err)
	}

	if jsonOutput {
		printJSON(entries)
		return nil
	}

	if len(entries) == 0 {
		fmt.Println("Watchlist is empty")
		return nil
	}

	fmt.Printf("%-40s │ %-6s │ %-4s │ %s\n", "TITLE", "TYPE", "YEAR", "CATEGORY")
	fmt.Println("──────────────────────────────────────────┼────────┼──────┼────────────────")
	for _, e := range entries {
		title := e.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Printf("%-40s │ %-6s │ %-4s │ %s\n", title, e.Type, e.Year, e.Category)
	}
	return nil
}

func runWatchlistAddCmd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[1])
	if err != nil {
		return err
	}
	typeSel, _ := cmd.Flags().GetString("type")
	year, _ := cmd.Flags().GetString("year")

	client := NewClient(serverURL)
	entry := WatchlistEntry{
		ID:     id,
		Source: args[0],
		Type:   typeSel,
		Title:  args[2],
		Year:   year,
	}
	if err := client.WatchlistAdd(entry); err != nil {
		return fmt.Errorf("add failed: %w", err)
	}
	fmt.Printf("Added %q to watchlist\n", args[2])
	return nil
}

func runWatchlistRemoveCmd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[1])
	if err != nil {
		return err
	}
	client := NewClient(serverURL)
	if err := client.WatchlistRemove(args[0], id); err != nil {
		return fmt.Errorf("remove failed: %w", err)
	}
	fmt.Println("Removed")
	return nil
}

func runWatchlistMoveCmd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[1])
	if err != nil {
		return err
	}
	client := NewClient(serverURL)
	if err := client.WatchlistSetCategory(args[0], id, args[2]); err != nil {
		return fmt.Errorf("move failed: %w", err)
	}
	fmt.Printf("Moved to %q\n", args[2])
	return nil
}
