// cmd/portfolio/main.go
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"portfolio-projects/internal/config"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// cli carries what PersistentPreRunE resolves for the subcommands.
type cli struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Fill a portfolio page with GitHub project cards",
		Long: `portfolio loads a GitHub user's public repositories and renders them as
project cards into the project section of a portfolio page. It can serve the
page live or write the enhanced page once.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Initialize structured logger
			logLevel := new(slog.LevelVar)
			handler := slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: logLevel})
			c.logger = slog.New(handler)
			slog.SetDefault(c.logger)

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			setLogLevel(cfg.LogLevel, logLevel)
			c.cfg = cfg
			c.logger.Info("Configuration loaded successfully", "command", cmd.Name())
			return nil
		},
	}

	root.AddCommand(newServeCmd(c), newBuildCmd(c))
	return root
}

func setLogLevel(level string, v *slog.LevelVar) {
	switch level {
	case "debug":
		v.Set(slog.LevelDebug)
	case "warn":
		v.Set(slog.LevelWarn)
	case "error":
		v.Set(slog.LevelError)
	default:
		v.Set(slog.LevelInfo)
	}
}
