package git

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/interfaces"
)

const fallbackBranch = "main"

type client struct {
	dir string
}

// Option configures the git client
type Option func(*client)

// WithDir sets the working directory for git commands
func WithDir(dir string) Option {
	return func(c *client) {
		c.dir = dir
	}
}

// NewClient creates a git client that shells out to the git binary. Commands
// are always invoked with explicit argument vectors, never through a shell.
func NewClient(options ...Option) interfaces.GitClient {
	c := &client{}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *client) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", goerr.Wrap(err, "git command failed",
			goerr.V("args", args),
			goerr.V("stderr", strings.TrimSpace(stderr.String())),
		)
	}

	return strings.TrimSpace(stdout.String()), nil
}

func (c *client) RemoteURL(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "remote", "get-url", "origin")
	if err != nil {
		return "", goerr.Wrap(err, "no git remote found, please set up the origin remote")
	}
	return out, nil
}

func (c *client) Fetch(ctx context.Context) error {
	if _, err := c.run(ctx, "fetch", "origin"); err != nil {
		return goerr.Wrap(err, "failed to fetch origin")
	}
	return nil
}

func (c *client) CurrentBranch(ctx context.Context) string {
	if out, err := c.run(ctx, "branch", "--show-current"); err == nil && out != "" {
		return out
	}
	return c.DefaultBranch(ctx)
}

func (c *client) DefaultBranch(ctx context.Context) string {
	out, err := c.run(ctx, "symbolic-ref", "refs/remotes/origin/HEAD")
	if err != nil || out == "" {
		return fallbackBranch
	}
	if name := strings.TrimPrefix(out, "refs/remotes/origin/"); name != "" {
		return name
	}
	return fallbackBranch
}

func (c *client) BehindCount(ctx context.Context, branch string) (int, error) {
	out, err := c.run(ctx, "rev-list", "--count", "HEAD..origin/"+branch)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to count commits behind remote", goerr.V("branch", branch))
	}

	n, err := strconv.Atoi(out)
	if err != nil {
		return 0, goerr.Wrap(err, "unexpected rev-list output", goerr.V("output", out))
	}
	return n, nil
}

func (c *client) Pull(ctx context.Context, branch string) error {
	if _, err := c.run(ctx, "pull", "origin", branch); err != nil {
		return goerr.Wrap(err, "failed to pull latest changes", goerr.V("branch", branch))
	}
	return nil
}

func (c *client) AddAll(ctx context.Context) error {
	if _, err := c.run(ctx, "add", "."); err != nil {
		return goerr.Wrap(err, "failed to stage changes")
	}
	return nil
}

func (c *client) Commit(ctx context.Context, message string) error {
	if _, err := c.run(ctx, "commit", "-m", message); err != nil {
		return goerr.Wrap(err, "failed to commit changes")
	}
	return nil
}

func (c *client) Push(ctx context.Context, branch string) error {
	if _, err := c.run(ctx, "push", "origin", branch); err == nil {
		return nil
	}

	// Old checkouts may still use master as the primary branch
	if _, err := c.run(ctx, "push", "origin", "master"); err != nil {
		return goerr.Wrap(err, "failed to push changes", goerr.V("branch", branch))
	}
	return nil
}

func (c *client) CreateTag(ctx context.Context, tag string) error {
	if _, err := c.run(ctx, "tag", "-a", tag, "-m", tag); err != nil {
		return goerr.Wrap(err, "failed to create tag", goerr.V("tag", tag))
	}
	return nil
}

func (c *client) PushTag(ctx context.Context, tag string) error {
	if _, err := c.run(ctx, "push", "origin", tag); err != nil {
		return goerr.Wrap(err, "failed to push tag", goerr.V("tag", tag))
	}
	return nil
}
