// cmd/portfolio/app.go
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"

	"portfolio-projects/internal/card"
	"portfolio-projects/internal/config"
	"portfolio-projects/internal/dom"
	"portfolio-projects/internal/github"
	"portfolio-projects/internal/locale"
	"portfolio-projects/internal/page"
	"portfolio-projects/internal/render"
	"portfolio-projects/internal/site"
)

// app is one page wired to its project load cycle.
type app struct {
	doc  *dom.Document
	ctrl *page.Controller
}

func newApp(cfg *config.Config, pagePath string, logger *slog.Logger) (*app, error) {
	doc, err := openPage(pagePath)
	if err != nil {
		return nil, err
	}

	l, err := locale.New(cfg.DisplayLocale, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to set up display locale: %w", err)
	}

	ghClient, err := github.NewClient(cfg.GithubAPIURL, cfg.RequestTimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create github client: %w", err)
	}

	renderer, err := render.NewRenderer(doc, l, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	ctrl, err := page.New(page.Deps{
		Fetcher:      ghClient,
		Renderer:     renderer,
		Builder:      card.NewBuilder(l),
		Locale:       l,
		Viewport:     doc,
		Bars:         doc,
		Anchors:      doc.InPageAnchors(),
		SkillBars:    doc.SkillBars(),
		Username:     cfg.GithubUser,
		RetryLimiter: retryLimiter(cfg.RetryMinInterval),
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create page controller: %w", err)
	}

	return &app{doc: doc, ctrl: ctrl}, nil
}

// openPage parses the page at path, or the bundled page when path is empty.
func openPage(path string) (*dom.Document, error) {
	var r io.Reader = site.DefaultPage()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open page: %w", err)
		}
		defer f.Close()
		r = f
	}

	doc, err := dom.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return doc, nil
}

// retryLimiter allows one retry per interval. A zero interval disables throttling.
func retryLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}
