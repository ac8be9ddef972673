package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Server status and cache usage",
	Args:  cobra.NoArgs,
	RunE:  runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	status, err := client.Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	if jsonOutput {
		printJSON(cmd.OutOrStdout(), status)
		return nil
	}

	printStatus(cmd.OutOrStdout(), serverURL, status)
	return nil
}

func printStatus(w io.Writer, server string, s *StatusResponse) {
	fmt.Fprintf(w, "Server:     %s (%s)\n", server, s.Status)
	fmt.Fprintf(w, "Version:    %s\n", s.Version)
	fmt.Fprintf(w, "Uptime:     %s\n", time.Duration(s.UptimeSeconds)*time.Second)
	if s.DatasetLoaded {
		fmt.Fprintf(w, "Dataset:    %d movies\n", s.DatasetMovies)
	} else {
		fmt.Fprintln(w, "Dataset:    not loaded")
	}

	if len(s.Caches) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Caches")
	for _, c := range s.Caches {
		fmt.Fprintf(w, "  %-10s %4d/%d\n", c.Name+":", c.Entries, c.Capacity)
	}
}
