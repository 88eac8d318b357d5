package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// GenreLists mirrors the server's genre catalog response.
type GenreLists struct {
	Movie []GenreEntry `json:"movie"`
	TV    []GenreEntry `json:"tv"`
}

type GenreEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List genre ids for discover filters",
	RunE:  runGenresCmd,
}

func init() {
	rootCmd.AddCommand(genresCmd)
}

func runGenresCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	var lists GenreLists
	if err := client.get("/api/v1/genres", &lists); err != nil {
		return fmt.Errorf("genres failed: %w", err)
	}

	if jsonOutput {
		printJSON(lists)
		return nil
	}

	fmt.Println("Movies:")
	for _, g := range lists.Movie {
		fmt.Printf("  %5d  %s\n", g.ID, g.Name)
	}
	fmt.Println("\nSeries:")
	for _, g := range lists.TV {
		fmt.Printf("  %5d  %s\n", g.ID, g.Name)
	}
	return nil
}
