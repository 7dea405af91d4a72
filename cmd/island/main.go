// Command island runs the Nexora DevLabs dynamic island in a terminal.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nexoradevlabs/site/internal/island"
	"github.com/nexoradevlabs/site/internal/logging"
	"github.com/nexoradevlabs/site/internal/service"
	"github.com/nexoradevlabs/site/internal/tui"
	"github.com/nexoradevlabs/site/pkg/github"
	"github.com/nexoradevlabs/site/pkg/relay"
)

var flags struct {
	server        string
	org           string
	token         string
	apiURL        string
	logFile       string
	reducedMotion bool
}

var rootCmd = &cobra.Command{
	Use:   "island",
	Short: "Interactive dynamic island for Nexora DevLabs",
	Long: `Launch the Nexora DevLabs dynamic island in the terminal.

The closed pill follows the mouse and plays idle animations. Press enter to
open the quick actions, or jump straight to a panel:

  1/g  GitHub stats     2/c  book a call
  3/m  contact form     4/s  social links

Repository statistics and contact submissions go through the site's API
(--server). Pass --org to read statistics straight from GitHub instead.`,
	SilenceUsage: true,
	RunE:         runIsland,
}

func runIsland(cmd *cobra.Command, args []string) error {
	f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	logging.SetupWriter(f, "island")

	links := island.DefaultLinks()
	opts := tui.Options{ReducedMotion: flags.reducedMotion}

	if flags.server != "" {
		rc := relay.NewHTTP(flags.server)
		opts.Contact = rc
		opts.Stats = tui.RelayStats{Client: rc}
	}
	if flags.org != "" {
		gh := github.NewClient(flags.token, github.WithBaseURL(flags.apiURL))
		opts.Stats = service.NewStatsCache(service.NewStatsService(gh, flags.org), 0)
		links.GitHubOrg = "https://github.com/" + strings.TrimPrefix(flags.org, "/")
	}
	opts.Links = links

	p := tea.NewProgram(tui.New(opts), tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func init() {
	rootCmd.Flags().StringVar(&flags.server, "server", envOr("ISLAND_SERVER", "http://localhost:8080"), "Base URL of the site API")
	rootCmd.Flags().StringVar(&flags.org, "org", "", "Read statistics for this GitHub organization directly")
	rootCmd.Flags().StringVar(&flags.token, "github-token", os.Getenv("GITHUB_TOKEN"), "GitHub token used with --org")
	rootCmd.Flags().StringVar(&flags.apiURL, "github-api-url", "https://api.github.com", "GitHub API base URL used with --org")
	rootCmd.Flags().StringVar(&flags.logFile, "log-file", filepath.Join(os.TempDir(), "nexora-island.log"), "Where to write logs while the TUI owns the terminal")
	rootCmd.Flags().BoolVar(&flags.reducedMotion, "reduced-motion", false, "Disable idle animations")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
