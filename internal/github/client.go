// internal/github/client.go
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-github/v62/github"

	custom_errors "portfolio-projects/internal/errors"
	"portfolio-projects/internal/model"
)

// usernamePattern follows GitHub's rules: alphanumerics and single inner hyphens, at most 39 characters.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9]|-[A-Za-z0-9]){0,38}$`)

// Client is a wrapper around the go-github client.
type Client struct {
	gh       *github.Client
	validate *validator.Validate
	logger   *slog.Logger
}

// NewClient creates a Client talking to baseURL without authentication.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	gh := github.NewClient(&http.Client{Timeout: timeout})

	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github api url %q: %w", baseURL, err)
		}
		if u.Path == "" || u.Path[len(u.Path)-1] != '/' {
			u.Path += "/"
		}
		gh.BaseURL = u
	}

	return &Client{
		gh:       gh,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}, nil
}

// FetchProjects lists the public repositories of username in a single request,
// most recently pushed first. The list is returned as received, unfiltered.
// Every failure is a *custom_errors.FetchError, except an invalid username.
func (c *Client) FetchProjects(ctx context.Context, username string) ([]model.RepositoryRecord, error) {
	if !usernamePattern.MatchString(username) {
		return nil, &custom_errors.ErrInvalidUsername{Username: username}
	}

	opts := &github.RepositoryListByUserOptions{Sort: "pushed"}

	c.logger.Debug("Fetching repositories", "username", username)
	repos, resp, err := c.gh.Repositories.ListByUser(ctx, username, opts)
	if err != nil {
		return nil, classify(resp, err)
	}
	// go-github treats an empty body as success; "null" decodes to nil too.
	if repos == nil {
		return nil, custom_errors.NewDecodeError(errors.New("response body is not a repository list"))
	}

	records := make([]model.RepositoryRecord, 0, len(repos))
	for i, repo := range repos {
		if repo == nil {
			return nil, custom_errors.NewDecodeError(fmt.Errorf("repository %d is null", i))
		}
		record := toRecord(repo)
		if err := c.validate.Struct(record); err != nil {
			return nil, custom_errors.NewDecodeError(fmt.Errorf("repository %d: %w", i, err))
		}
		records = append(records, record)
	}

	c.logger.Debug("Fetched repositories", "username", username, "count", len(records))
	return records, nil
}

// classify maps a go-github error onto the fetch error taxonomy.
func classify(resp *github.Response, err error) error {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return custom_errors.NewHTTPStatusError(errResp.Response.StatusCode, err)
	}
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return custom_errors.NewHTTPStatusError(rateErr.Response.StatusCode, err)
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return custom_errors.NewHTTPStatusError(abuseErr.Response.StatusCode, err)
	}

	if resp != nil && resp.Response != nil {
		code := resp.StatusCode
		if code < 200 || code > 299 {
			return custom_errors.NewHTTPStatusError(code, err)
		}
		// A response arrived with a success status, so the body is what failed.
		return custom_errors.NewDecodeError(err)
	}

	return custom_errors.NewNetworkError(err)
}

// toRecord translates a github.Repository object to our internal model.RepositoryRecord.
func toRecord(r *github.Repository) model.RepositoryRecord {
	return model.RepositoryRecord{
		ID:          r.GetID(),
		Name:        r.GetName(),
		Description: r.GetDescription(),
		Language:    r.GetLanguage(),
		StarsCount:  r.GetStargazersCount(),
		ForksCount:  r.GetForksCount(),
		Homepage:    r.GetHomepage(),
		URL:         r.GetHTMLURL(),
		UpdatedAt:   r.GetUpdatedAt().Time,
		Fork:        r.GetFork(),
		Archived:    r.GetArchived(),
	}
}
