// internal/github/client_test.go
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	custom_errors "portfolio-projects/internal/errors"
)

const reposBody = `[
	{"id": 1, "name": "newest", "description": "Fresh work", "language": "Go", "stargazers_count": 5, "forks_count": 0,
	 "homepage": "https://newest.example.com", "html_url": "https://github.com/octocat/newest", "updated_at": "2024-05-01T12:00:00Z",
	 "fork": false, "archived": false},
	{"id": 2, "name": "forked", "description": null, "language": null, "stargazers_count": 0, "forks_count": 0,
	 "homepage": null, "html_url": "https://github.com/octocat/forked", "updated_at": "2024-04-01T12:00:00Z",
	 "fork": true, "archived": false}
]`

// setupTestClient creates a httptest server and a client pointing to it.
func setupTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client, err := NewClient(server.URL, 2*time.Second, logger)
	require.NoError(t, err)

	return client, server
}

func TestClient_FetchProjects(t *testing.T) {
	t.Run("decodes the list in API order", func(t *testing.T) {
		var requestCount int32
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&requestCount, 1)
			assert.Equal(t, "/users/octocat/repos", r.URL.Path)
			assert.Equal(t, "pushed", r.URL.Query().Get("sort"))
			assert.Empty(t, r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusOK)
			fmt.Fprintln(w, reposBody)
		})
		client, server := setupTestClient(t, handler)
		defer server.Close()

		records, err := client.FetchProjects(context.Background(), "octocat")

		require.NoError(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&requestCount))
		require.Len(t, records, 2)
		assert.Equal(t, "newest", records[0].Name)
		assert.Equal(t, "Fresh work", records[0].Description)
		assert.Equal(t, 5, records[0].StarsCount)
		assert.Equal(t, "https://newest.example.com", records[0].Homepage)
		assert.Equal(t, time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC), records[0].UpdatedAt.UTC())
		assert.True(t, records[1].Fork, "fetcher must not filter")
		assert.Empty(t, records[1].Description)
		assert.Empty(t, records[1].Language)
	})

	t.Run("empty list is not an error", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintln(w, `[]`)
		})
		client, server := setupTestClient(t, handler)
		defer server.Close()

		records, err := client.FetchProjects(context.Background(), "octocat")

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("non-success status is an HTTPStatus error", func(t *testing.T) {
		var requestCount int32
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&requestCount, 1)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintln(w, `{"message": "Not Found"}`)
		})
		client, server := setupTestClient(t, handler)
		defer server.Close()

		_, err := client.FetchProjects(context.Background(), "octocat")

		var fetchErr *custom_errors.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, custom_errors.KindHTTPStatus, fetchErr.Kind)
		assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
		assert.Equal(t, int32(1), atomic.LoadInt32(&requestCount), "fetcher must not retry")
	})

	t.Run("server error is an HTTPStatus error", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		client, server := setupTestClient(t, handler)
		defer server.Close()

		_, err := client.FetchProjects(context.Background(), "octocat")

		var fetchErr *custom_errors.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, custom_errors.KindHTTPStatus, fetchErr.Kind)
		assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
	})

	t.Run("malformed body is a Decode error", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintln(w, `[{"name": "broken"`)
		})
		client, server := setupTestClient(t, handler)
		defer server.Close()

		_, err := client.FetchProjects(context.Background(), "octocat")

		var fetchErr *custom_errors.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, custom_errors.KindDecode, fetchErr.Kind)
	})

	t.Run("empty or null body is a Decode error", func(t *testing.T) {
		for _, body := range []string{"", "null"} {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				fmt.Fprint(w, body)
			})
			client, server := setupTestClient(t, handler)

			records, err := client.FetchProjects(context.Background(), "octocat")
			server.Close()

			var fetchErr *custom_errors.FetchError
			require.ErrorAs(t, err, &fetchErr, "body %q", body)
			assert.Equal(t, custom_errors.KindDecode, fetchErr.Kind)
			assert.Nil(t, records)
		}
	})

	t.Run("object instead of list is a Decode error", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintln(w, `{"name": "not-a-list"}`)
		})
		client, server := setupTestClient(t, handler)
		defer server.Close()

		_, err := client.FetchProjects(context.Background(), "octocat")

		var fetchErr *custom_errors.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, custom_errors.KindDecode, fetchErr.Kind)
	})

	t.Run("record missing required fields is a Decode error", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintln(w, `[{"id": 3, "html_url": "https://github.com/octocat/x", "updated_at": "2024-01-01T00:00:00Z"}]`)
		})
		client, server := setupTestClient(t, handler)
		defer server.Close()

		_, err := client.FetchProjects(context.Background(), "octocat")

		var fetchErr *custom_errors.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, custom_errors.KindDecode, fetchErr.Kind)
	})

	t.Run("refused connection is a Network error", func(t *testing.T) {
		client, server := setupTestClient(t, http.NotFoundHandler())
		server.Close()

		_, err := client.FetchProjects(context.Background(), "octocat")

		var fetchErr *custom_errors.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, custom_errors.KindNetwork, fetchErr.Kind)
		assert.Zero(t, fetchErr.StatusCode)
	})

	t.Run("cancelled context is a Network error", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintln(w, `[]`)
		})
		client, server := setupTestClient(t, handler)
		defer server.Close()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.FetchProjects(ctx, "octocat")

		var fetchErr *custom_errors.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, custom_errors.KindNetwork, fetchErr.Kind)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestClient_FetchProjects_InvalidUsername(t *testing.T) {
	var requestCount int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requestCount, 1)
	})
	client, server := setupTestClient(t, handler)
	defer server.Close()

	for _, name := range []string{"", "-leading", "trailing-", "double--hyphen", "has/slash", "way-too-long-username-for-github-accounts"} {
		_, err := client.FetchProjects(context.Background(), name)

		var invalid *custom_errors.ErrInvalidUsername
		assert.ErrorAs(t, err, &invalid, name)
	}
	assert.Zero(t, atomic.LoadInt32(&requestCount))
}
