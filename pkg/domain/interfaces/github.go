package interfaces

import (
	"context"

	"github.com/m-mizutani/herald/pkg/domain/model"
)

// GitHubClient defines operations for interacting with GitHub API
type GitHubClient interface {
	// UploadFile creates or updates a repository file from the local file at
	// localPath and returns the raw content URL of the stored object.
	UploadFile(ctx context.Context, repo *model.Repository, branch, localPath string) (string, error)

	// CreateRelease creates a non-draft release for input.FullTag() and, when
	// assetPath names an existing file, attaches it as a binary asset. It
	// returns the release page URL.
	CreateRelease(ctx context.Context, repo *model.Repository, input *model.ReleaseInput, assetPath string) (string, error)
}
