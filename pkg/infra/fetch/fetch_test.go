package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/herald/pkg/infra/fetch"
)

func TestDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/shortcut" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("shortcut payload"))
	}))
	t.Cleanup(server.Close)

	ctx := context.Background()

	t.Run("writes the body to the destination", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "MessageDict.shortcut")
		gt.NoError(t, fetch.Download(ctx, server.URL+"/shortcut", dest))

		content, err := os.ReadFile(dest)
		gt.NoError(t, err)
		gt.Value(t, string(content)).Equal("shortcut payload")
	})

	t.Run("overwrites an existing destination", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "MessageDict.shortcut")
		gt.NoError(t, os.WriteFile(dest, []byte("stale"), 0644))

		gt.NoError(t, fetch.Download(ctx, server.URL+"/shortcut", dest))

		content, err := os.ReadFile(dest)
		gt.NoError(t, err)
		gt.Value(t, string(content)).Equal("shortcut payload")
	})

	t.Run("non-200 response leaves no destination file", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "MessageDict.shortcut")
		err := fetch.Download(ctx, server.URL+"/missing", dest)
		gt.Error(t, err)
		gt.String(t, err.Error()).Contains("unexpected status code")

		_, statErr := os.Stat(dest)
		gt.Value(t, os.IsNotExist(statErr)).Equal(true)
	})

	t.Run("unreachable host is an error", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "MessageDict.shortcut")
		err := fetch.Download(ctx, "http://127.0.0.1:1/shortcut", dest)
		gt.Error(t, err)
	})
}
