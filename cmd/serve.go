package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/naka-gawa/pr-insights/internal/config"
	"github.com/naka-gawa/pr-insights/internal/gateway"
	"github.com/naka-gawa/pr-insights/internal/handler"
	"github.com/naka-gawa/pr-insights/internal/usecase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the dashboard HTTP API",
	Long: `Serves the repositories, pull requests, reviews and stats views over HTTP.
Every /api request must carry the caller's GitHub token as "Authorization: Bearer <token>".`,
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetLevel(logrus.InfoLevel)
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}

		cfg, err := config.Load()
		if err != nil {
			logger.Warnf(".env not found: %v", err)
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.ServerAddr = addr
		}

		factory := gateway.NewClientFactory(cfg.GitHub, logger)
		dashboard := handler.NewDashboardHandler(factory, usecase.DefaultLimits(cfg.GitHub.MaxConcurrency), logger)
		e := handler.NewRouter(dashboard, cfg.AllowedOrigins, logger)

		go func() {
			logger.WithField("addr", cfg.ServerAddr).Info("Server starting")
			if err := e.Start(cfg.ServerAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatalf("Server failed: %v", err)
			}
		}()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()

		logger.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Fatalf("Shutdown failed: %v", err)
		}
		logger.Info("Server exited")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address, overrides SERVER_ADDR")
}
