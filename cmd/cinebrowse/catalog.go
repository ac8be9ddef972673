package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/cinebrowse/internal/browse"
)

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List movie genres",
	Args:  cobra.NoArgs,
	RunE:  runGenresCmd,
}

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "List movies of a category or genre",
	Long: `List movies of a category or genre.

A genre replaces the category listing. The query keeps titles containing
it, ignoring case and accents.

Examples:
  cinebrowse movies
  cinebrowse movies --category "top rated"
  cinebrowse movies --genre Drama --query war`,
	Args: cobra.NoArgs,
	RunE: runMoviesCmd,
}

var showCmd = &cobra.Command{
	Use:   "show <movie-id>",
	Short: "Show poster and overview of a movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runShowCmd,
}

var castCmd = &cobra.Command{
	Use:   "cast <movie-id>",
	Short: "Show the leading cast and crew of a movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runCastCmd,
}

var similarCmd = &cobra.Command{
	Use:   "similar <movie-id>",
	Short: "List movies similar to a movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runSimilarCmd,
}

func init() {
	rootCmd.AddCommand(genresCmd, moviesCmd, showCmd, castCmd, similarCmd)
	moviesCmd.Flags().StringP("category", "c", "", "Category: Popular, Trending, Top Rated, Upcoming")
	moviesCmd.Flags().StringP("genre", "g", "", "Genre name or ID")
	moviesCmd.Flags().StringP("query", "q", "", "Title filter")
}

func runGenresCmd(cmd *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	resp, err := client.Genres()
	if err != nil {
		return fmt.Errorf("genres failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		printJSON(out, resp)
		return nil
	}

	printWarnings(cmd.ErrOrStderr(), resp.Warnings)
	for _, g := range resp.Genres {
		fmt.Fprintf(out, "%6d  %s\n", g.ID, g.Name)
	}
	return nil
}

func runMoviesCmd(cmd *cobra.Command, _ []string) error {
	category, _ := cmd.Flags().GetString("category")
	genre, _ := cmd.Flags().GetString("genre")
	query, _ := cmd.Flags().GetString("query")

	client := NewClient(serverURL)

	genreID, err := resolveGenre(client, genre)
	if err != nil {
		return err
	}

	resp, err := client.Movies(category, genreID, query)
	if err != nil {
		return fmt.Errorf("movies failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		printJSON(out, resp)
		return nil
	}

	printWarnings(cmd.ErrOrStderr(), resp.Warnings)
	printMovies(out, resp.Movies)
	return nil
}

// resolveGenre accepts a numeric ID or a genre name.
func resolveGenre(client *Client, genre string) (int, error) {
	if genre == "" || strings.EqualFold(genre, "all") {
		return 0, nil
	}
	if id, err := strconv.Atoi(genre); err == nil {
		return id, nil
	}

	resp, err := client.Genres()
	if err != nil {
		return 0, fmt.Errorf("genres failed: %w", err)
	}
	byID := make(map[int]string, len(resp.Genres))
	for _, g := range resp.Genres {
		byID[g.ID] = g.Name
	}
	id, ok := browse.GenreByName(byID, genre)
	if !ok {
		return 0, fmt.Errorf("unknown genre: %s", genre)
	}
	return id, nil
}

func printMovies(w io.Writer, movies []Movie) {
	if len(movies) == 0 {
		fmt.Fprintln(w, "No movies found.")
		return
	}

	fmt.Fprintf(w, "%8s │ %-4s │ %-45s │ %s\n", "ID", "YEAR", "TITLE", "RATING")
	fmt.Fprintln(w, "─────────┼──────┼───────────────────────────────────────────────┼───────")
	for _, m := range movies {
		fmt.Fprintf(w, "%8d │ %-4s │ %-45s │ %.1f\n", m.ID, yearOf(&m), truncate(m.Title, 45), m.VoteAverage)
	}
}

func runShowCmd(cmd *cobra.Command, args []string) error {
	id, err := parseMovieID(args[0])
	if err != nil {
		return err
	}

	client := NewClient(serverURL)
	resp, err := client.Movie(id)
	if err != nil {
		return fmt.Errorf("show failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		printJSON(out, resp)
		return nil
	}

	printWarnings(cmd.ErrOrStderr(), resp.Warnings)
	poster := "(no poster)"
	if resp.PosterURL != nil {
		poster = *resp.PosterURL
	}
	fmt.Fprintf(out, "Movie:    %d\n", resp.ID)
	fmt.Fprintf(out, "Poster:   %s\n", poster)
	fmt.Fprintf(out, "Overview: %s\n", resp.Overview)
	return nil
}

func runCastCmd(cmd *cobra.Command, args []string) error {
	id, err := parseMovieID(args[0])
	if err != nil {
		return err
	}

	client := NewClient(serverURL)
	resp, err := client.Cast(id)
	if err != nil {
		return fmt.Errorf("cast failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		printJSON(out, resp)
		return nil
	}

	printWarnings(cmd.ErrOrStderr(), resp.Warnings)
	if len(resp.Cast) == 0 {
		fmt.Fprintln(out, "No cast information.")
		return nil
	}
	for _, c := range resp.Cast {
		fmt.Fprintf(out, "  %-4s  %-30s  %s\n", c.Kind, truncate(c.Name, 30), c.Role)
	}
	return nil
}

func runSimilarCmd(cmd *cobra.Command, args []string) error {
	id, err := parseMovieID(args[0])
	if err != nil {
		return err
	}

	client := NewClient(serverURL)
	resp, err := client.Similar(id)
	if err != nil {
		return fmt.Errorf("similar failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		printJSON(out, resp)
		return nil
	}

	printWarnings(cmd.ErrOrStderr(), resp.Warnings)
	printMovies(out, resp.Movies)
	return nil
}
