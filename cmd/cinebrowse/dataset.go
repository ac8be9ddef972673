package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <movie-id>",
	Short: "Recommend movies from the local similarity dataset",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecommendCmd,
}

var findCmd = &cobra.Command{
	Use:   "find <query>...",
	Short: "Fuzzy search titles in the local dataset",
	Long: `Fuzzy search titles in the local dataset.

When no title matches exactly, the closest title is suggested.

Examples:
  cinebrowse find "fight clbu"
  cinebrowse find --limit 3 godfather`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFindCmd,
}

func init() {
	rootCmd.AddCommand(recommendCmd, findCmd)
	recommendCmd.Flags().IntP("limit", "n", 5, "Number of recommendations")
	findCmd.Flags().IntP("limit", "n", 10, "Maximum matches")
}

func runRecommendCmd(cmd *cobra.Command, args []string) error {
	id, err := parseMovieID(args[0])
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")

	client := NewClient(serverURL)
	resp, err := client.Recommendations(id, limit)
	if err != nil {
		return fmt.Errorf("recommend failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		printJSON(out, resp)
		return nil
	}

	fmt.Fprintf(out, "Because you watched %s:\n\n", resp.Movie.Title)
	if len(resp.Recommendations) == 0 {
		fmt.Fprintln(out, "  No recommendations.")
		return nil
	}
	for i, r := range resp.Recommendations {
		fmt.Fprintf(out, " %2d. %-45s %8d  %.3f\n", i+1, truncate(r.Title, 45), r.ID, r.Score)
	}
	return nil
}

func runFindCmd(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	limit, _ := cmd.Flags().GetInt("limit")

	client := NewClient(serverURL)
	resp, err := client.Search(query, limit)
	if err != nil {
		return fmt.Errorf("find failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		printJSON(out, resp)
		return nil
	}

	if resp.Exact == nil && resp.Suggestion != nil {
		fmt.Fprintf(out, "Did you mean %q (%d)?\n\n", resp.Suggestion.Title, resp.Suggestion.ID)
	}
	if len(resp.Matches) == 0 {
		fmt.Fprintln(out, "No matches.")
		return nil
	}
	for _, m := range resp.Matches {
		fmt.Fprintf(out, "%8d  %s\n", m.ID, m.Title)
	}
	return nil
}
