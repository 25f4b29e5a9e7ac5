package fetch

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Download streams the file at url to dest. The body is written to a
// temporary file next to dest and renamed into place so a failed transfer
// never leaves a half-written artifact.
func Download(ctx context.Context, url, dest string) error {
	logger := ctxlog.From(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create download request", goerr.V("url", url))
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to download file", goerr.V("url", url))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return goerr.New("unexpected status code on download",
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode),
		)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".download-*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary download file")
	}
	defer os.Remove(tmp.Name())

	size, err := io.Copy(tmp, resp.Body)
	if err != nil {
		tmp.Close()
		return goerr.Wrap(err, "failed to write downloaded content", goerr.V("dest", dest))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close temporary download file")
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return goerr.Wrap(err, "failed to move downloaded file into place", goerr.V("dest", dest))
	}

	logger.Info("Downloaded file",
		"url", url,
		"dest", dest,
		"size_bytes", size,
	)
	return nil
}
