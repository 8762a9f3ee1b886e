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

var pullsCmd = &cobra.Command{
	Use:   "pulls",
	Short: "Lists recent pull requests with their AI review status as JSON",
	Long: `Lists the pull requests of your most recently updated repositories, newest first,
marking the ones that received an AI or bot review. Pass both --owner and --repo to
restrict the listing to a single repository.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newCLILogger(cmd)
		token := githubToken()

		owner, _ := cmd.Flags().GetString("owner")
		repo, _ := cmd.Flags().GetString("repo")

		cfg, err := config.Load()
		if err != nil {
			logger.Debugf(".env not loaded: %v", err)
		}

		githubGateway, err := gateway.NewGitHubGateway(token, cfg.GitHub, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		aggregator := usecase.NewAggregator(githubGateway, logger, usecase.DefaultLimits(cfg.GitHub.MaxConcurrency))

		prs, err := aggregator.PullRequests(ctx, usecase.PullRequestFilter{Owner: owner, Repo: repo})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to aggregate pull requests: %v\n", err)
			os.Exit(1)
		}

		printJSON(prs)
	},
}

func init() {
	rootCmd.AddCommand(pullsCmd)
	pullsCmd.Flags().StringP("owner", "o", "", "Repository owner to filter on (requires --repo)")
	pullsCmd.Flags().StringP("repo", "r", "", "Repository name to filter on (requires --owner)")
	pullsCmd.MarkFlagsRequiredTogether("owner", "repo")
}
