package github

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/interfaces"
	"github.com/m-mizutani/herald/pkg/domain/model"
	"github.com/m-mizutani/herald/pkg/domain/types"
)

// assetPrefix is the repository directory uploaded files are stored under
const assetPrefix = "assets"

type client struct {
	githubClient *github.Client
}

// NewClient creates a new GitHub client authenticated with a personal access
// token
func NewClient(token string) interfaces.GitHubClient {
	return &client{
		githubClient: github.NewClient(nil).WithAuthToken(token),
	}
}

// NewClientWithGitHub wraps an existing go-github client. Used by tests to
// point the client at a local test server.
func NewClientWithGitHub(gh *github.Client) interfaces.GitHubClient {
	return &client{githubClient: gh}
}

// UploadFile creates or updates a repository file under assets/ via the
// contents API. The remote API requires the current blob SHA to permit an
// overwrite, so an existing object is looked up first.
func (c *client) UploadFile(ctx context.Context, repo *model.Repository, branch, localPath string) (string, error) {
	logger := ctxlog.From(ctx)

	content, err := os.ReadFile(localPath)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read file for upload", goerr.V("path", localPath))
	}

	filePath := path.Join(assetPrefix, filepath.Base(localPath))

	opts := &github.RepositoryContentFileOptions{
		Message: github.Ptr(fmt.Sprintf("Add QR code: %s", filepath.Base(localPath))),
		Content: content,
		Branch:  github.Ptr(branch),
	}

	existing, _, resp, err := c.githubClient.Repositories.GetContents(ctx, repo.Owner, repo.Name, filePath, &github.RepositoryContentGetOptions{
		Ref: branch,
	})
	if err == nil && existing != nil {
		opts.SHA = github.Ptr(existing.GetSHA())
	} else if resp != nil && resp.StatusCode != http.StatusNotFound {
		logger.Debug("contents lookup failed, attempting create",
			"path", filePath,
			"error", err,
		)
	}

	if opts.SHA != nil {
		_, resp, err = c.githubClient.Repositories.UpdateFile(ctx, repo.Owner, repo.Name, filePath, opts)
	} else {
		_, resp, err = c.githubClient.Repositories.CreateFile(ctx, repo.Owner, repo.Name, filePath, opts)
	}
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusForbidden {
			return "", goerr.Wrap(err, "failed to upload file: the token lacks the required 'repo' scope, check it at https://github.com/settings/tokens",
				goerr.V("path", filePath),
			)
		}
		return "", goerr.Wrap(err, "failed to upload file", goerr.V("path", filePath))
	}

	// The raw content URL is built here rather than taken from the response
	// body, which is not consistent across API versions.
	downloadURL := fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s/%s", repo.Owner, repo.Name, branch, filePath)

	logger.Info("Uploaded repository file",
		"repo", repo.String(),
		"path", filePath,
		"branch", branch,
		"url", downloadURL,
	)

	return downloadURL, nil
}

// CreateRelease creates a non-draft release and attaches the asset at
// assetPath when the file exists. A duplicate tag is reported with
// types.TagReleaseExists so the caller can continue.
func (c *client) CreateRelease(ctx context.Context, repo *model.Repository, input *model.ReleaseInput, assetPath string) (string, error) {
	logger := ctxlog.From(ctx)
	tag := input.FullTag()

	release, resp, err := c.githubClient.Repositories.CreateRelease(ctx, repo.Owner, repo.Name, &github.RepositoryRelease{
		TagName:    github.Ptr(tag),
		Name:       github.Ptr(tag),
		Body:       github.Ptr(input.Changes),
		Draft:      github.Ptr(false),
		Prerelease: github.Ptr(false),
	})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnprocessableEntity {
			return "", goerr.Wrap(err, "release already exists", goerr.T(types.TagReleaseExists), goerr.V("tag", tag))
		}
		return "", goerr.Wrap(err, "failed to create release", goerr.V("tag", tag))
	}

	logger.Info("Release created",
		"repo", repo.String(),
		"tag", tag,
		"url", release.GetHTMLURL(),
	)

	if assetPath != "" {
		if _, err := os.Stat(assetPath); err == nil {
			if err := c.uploadReleaseAsset(ctx, repo, release.GetID(), assetPath); err != nil {
				logger.Warn("Failed to upload release asset",
					"asset", assetPath,
					"error", err,
				)
			}
		}
	}

	return release.GetHTMLURL(), nil
}

func (c *client) uploadReleaseAsset(ctx context.Context, repo *model.Repository, releaseID int64, assetPath string) error {
	logger := ctxlog.From(ctx)

	f, err := os.Open(assetPath)
	if err != nil {
		return goerr.Wrap(err, "failed to open release asset", goerr.V("path", assetPath))
	}
	defer f.Close()

	asset, _, err := c.githubClient.Repositories.UploadReleaseAsset(ctx, repo.Owner, repo.Name, releaseID, &github.UploadOptions{
		Name:      filepath.Base(assetPath),
		MediaType: "image/png",
	}, f)
	if err != nil {
		return goerr.Wrap(err, "failed to upload release asset", goerr.V("path", assetPath))
	}

	logger.Info("Asset uploaded to release",
		"name", asset.GetName(),
		"download_url", asset.GetBrowserDownloadURL(),
	)
	return nil
}
