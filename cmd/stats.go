package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/pr-insights/internal/config"
	"github.com/naka-gawa/pr-insights/internal/gateway"
	"github.com/naka-gawa/pr-insights/internal/usecase"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarizes pull request activity of your recent repositories as JSON",
	Long:  `Counts open, merged and closed pull requests across your most recently updated repositories and outputs the summary in JSON format.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newCLILogger(cmd)
		token := githubToken()

		cfg, err := config.Load()
		if err != nil {
			logger.Debugf(".env not loaded: %v", err)
		}

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(token, cfg.GitHub, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		aggregator := usecase.NewAggregator(githubGateway, logger, usecase.DefaultLimits(cfg.GitHub.MaxConcurrency))

		summary, err := aggregator.Stats(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to aggregate stats: %v\n", err)
			os.Exit(1)
		}

		printJSON(summary)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
