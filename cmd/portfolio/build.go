// cmd/portfolio/build.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"portfolio-projects/internal/model"
)

func newBuildCmd(c *cli) *cobra.Command {
	var (
		pagePath string
		outPath  string
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the portfolio page with project cards filled in",
		Long: `Run one project load and write the enhanced page. A failed load still
writes the page with its error view; use --strict to exit non-zero in that case.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(c.cfg, pagePath, c.logger)
			if err != nil {
				return err
			}
			if err := a.ctrl.Init(ctx); err != nil {
				return fmt.Errorf("failed to start page controller: %w", err)
			}
			defer a.ctrl.Close()

			if err := a.ctrl.Wait(ctx); err != nil {
				return fmt.Errorf("project load did not finish: %w", err)
			}
			state := a.ctrl.State()

			if err := writePage(outPath, a); err != nil {
				return err
			}
			c.logger.Info("Page written", "out", outPath, "state", state.Phase.String(), "cards", len(state.Cards))

			if state.Phase == model.PhaseFailed {
				c.logger.Warn("Projects could not be loaded, page shows the error view", "message", state.Message)
				if strict {
					return fmt.Errorf("project load failed: %s", state.Message)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pagePath, "page", "", "portfolio page to enhance (defaults to the bundled page)")
	cmd.Flags().StringVar(&outPath, "out", "", "where to write the enhanced page")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when the projects fail to load")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func writePage(path string, a *app) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output page: %w", err)
	}
	if err := a.doc.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output page: %w", err)
	}
	return f.Close()
}
