// cmd/portfolio/serve.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"portfolio-projects/internal/api"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(c *cli) *cobra.Command {
	var pagePath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio page with live project cards",
		Long: `Serve the enhanced portfolio page over HTTP. Projects are loaded once at
startup; a failed load can be retried from the page or through the API.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Setup context for graceful shutdown
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			a, err := newApp(c.cfg, pagePath, c.logger)
			if err != nil {
				return err
			}
			if err := a.ctrl.Init(ctx); err != nil {
				return fmt.Errorf("failed to start page controller: %w", err)
			}
			defer a.ctrl.Close()

			srv := &http.Server{
				Addr:              c.cfg.HTTPAddr,
				Handler:           api.NewRouter(a.ctrl, a.doc, c.logger),
				ReadHeaderTimeout: 10 * time.Second,
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				c.logger.Info("HTTP server listening", "addr", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("http server failed: %w", err)
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				c.logger.Info("Shutdown signal received. Stopping HTTP server.")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})

			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&pagePath, "page", "", "portfolio page to enhance (defaults to the bundled page)")
	return cmd
}
