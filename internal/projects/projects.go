// Package projects is the fetch pipeline: request, filter, format.
package projects

import (
	"context"

	"portfolio-projects/internal/card"
	"portfolio-projects/internal/model"
)

// MaxProjects is the most cards the page shows.
const MaxProjects = 6

// Fetcher retrieves a user's repositories.
type Fetcher interface {
	FetchProjects(ctx context.Context, username string) ([]model.RepositoryRecord, error)
}

// FilterAndLimit drops forks and archived repositories and keeps at most
// MaxProjects of the rest, in their original order.
func FilterAndLimit(records []model.RepositoryRecord) []model.RepositoryRecord {
	kept := make([]model.RepositoryRecord, 0, min(len(records), MaxProjects))
	for _, r := range records {
		if len(kept) == MaxProjects {
			break
		}
		if r.Fork || r.Archived {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// Load runs one pass of the pipeline and returns the cards to show.
func Load(ctx context.Context, f Fetcher, b *card.Builder, username string) ([]model.DisplayCard, error) {
	records, err := f.FetchProjects(ctx, username)
	if err != nil {
		return nil, err
	}
	return b.BuildAll(FilterAndLimit(records)), nil
}
