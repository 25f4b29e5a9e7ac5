package interfaces

import "context"

// GitClient defines the version control operations used by the publish flow.
// Implementations run real git commands; failures carry the command's stderr.
type GitClient interface {
	// RemoteURL returns the configured URL of the origin remote
	RemoteURL(ctx context.Context) (string, error)

	// Fetch updates remote tracking refs without merging
	Fetch(ctx context.Context) error

	// CurrentBranch detects the checked out branch, falling back to the
	// remote HEAD and finally to "main"
	CurrentBranch(ctx context.Context) string

	// DefaultBranch detects the remote default branch, falling back to "main"
	DefaultBranch(ctx context.Context) string

	// BehindCount reports how many commits HEAD is behind origin/<branch>
	BehindCount(ctx context.Context, branch string) (int, error)

	// Pull merges origin/<branch> into the current branch
	Pull(ctx context.Context, branch string) error

	// AddAll stages every change in the working tree
	AddAll(ctx context.Context) error

	// Commit records the staged changes with the given message
	Commit(ctx context.Context, message string) error

	// Push pushes the primary branch, falling back to "master" on failure
	Push(ctx context.Context, branch string) error

	// CreateTag creates an annotated tag
	CreateTag(ctx context.Context, tag string) error

	// PushTag pushes a tag to origin
	PushTag(ctx context.Context, tag string) error
}
