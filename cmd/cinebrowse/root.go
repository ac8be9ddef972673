package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	serverURL  string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "cinebrowse",
	Short: "CLI client for the cinebrowse movie catalog",
	Long: `cinebrowse - CLI client for the cinebrowse movie catalog

Browse TMDB categories and genres, inspect a movie's cast and
similar titles, and query the local recommendation dataset.

Run 'cinebrowsed' to start the server daemon.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8585", "Server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("cinebrowse {{.Version}}\n")
}
