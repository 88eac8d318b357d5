package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recent searches",
	RunE:  runRecentCmd,
}

func init() {
	rootCmd.AddCommand(recentCmd)
}

func runRecentCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	recent, err := client.Recent()
	if err != nil {
		return fmt.Errorf("recent failed: %w", err)
	}

	if jsonOutput {
		printJSON(recent)
		return nil
	}

	if len(recent.Searches) == 0 {
		fmt.Println("No recent searches")
		return nil
	}
	for i, term := range recent.Searches {
		fmt.Printf("%2d. %s\n", i+1, term)
	}
	return nil
}
