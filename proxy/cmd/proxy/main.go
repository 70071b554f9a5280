// Command proxy runs the analysis proxy and offers small clients for it.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/automoto/poetics/config"
	"github.com/automoto/poetics/proxy"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		proxyURL string
		timeout  time.Duration
	)

	rootCmd := &cobra.Command{
		Use:   "proxy",
		Short: "Analysis proxy for the poetics lab",
		Long: `proxy forwards lab requests to the generative model and relays the answer.

Run "proxy serve" to start the service. "ask" and "analyze" talk to a running
proxy the same way the lab does.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&proxyURL, "url", defaultProxyURL(), "Proxy base URL (or set "+config.Lab.ProxyURLEnv+")")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 60*time.Second, "Client request timeout")

	var configPath string
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the proxy service",
		Long: `Serves POST /api/analyze-architecture, POST /api/generate and GET /health.

The upstream key is read from ` + config.APIKeyEnv + `. Without it the service still
starts and every request is answered with a configuration error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")

	askCmd := &cobra.Command{
		Use:   "ask [archetype]",
		Short: "Ask the Iconoclast about an everyday object",
		Example: `  proxy ask chair
  proxy ask "desk lamp" --url http://localhost:8787`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			text, err := proxy.NewClient(proxyURL, nil).Generate(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [image]",
		Short: "Translate an architectural image into a sonic profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			sonic, err := proxy.NewClient(proxyURL, nil).AnalyzeFile(ctx, args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(sonic)
		},
	}

	rootCmd.AddCommand(serveCmd, askCmd, analyzeCmd)
	return rootCmd
}

func defaultProxyURL() string {
	if u := os.Getenv(config.Lab.ProxyURLEnv); u != "" {
		return u
	}
	return config.Lab.DefaultProxyURL
}

func runServe(parent context.Context, configPath string) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg, err := config.LoadProxyConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := proxy.NewLogger(*cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var upstream proxy.Upstream
	gemini, err := proxy.NewGeminiUpstream(ctx, *cfg, nil)
	switch {
	case errors.Is(err, proxy.ErrMissingAPIKey):
		logger.Warn("No upstream key configured, requests will fail", zap.String("env", config.APIKeyEnv))
	case err != nil:
		return err
	default:
		upstream = gemini
	}

	return proxy.NewServer(*cfg, upstream, logger).ListenAndServe(ctx)
}
