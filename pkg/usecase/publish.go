package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/interfaces"
	"github.com/m-mizutani/herald/pkg/domain/model"
	"github.com/m-mizutani/herald/pkg/domain/types"
	"github.com/m-mizutani/herald/pkg/infra/fetch"
	"github.com/m-mizutani/herald/pkg/infra/qrcode"
)

// maxLinkAttempts bounds the interactive re-prompt loop for the shortcut URL
const maxLinkAttempts = 5

// PublishConfig holds the file targets of a publish run
type PublishConfig struct {
	ReadmePath   string
	ShortcutPath string
	LinkLine     int
	ImageLine    int
}

type publishUseCase struct {
	cfg    PublishConfig
	git    interfaces.GitClient
	github interfaces.GitHubClient // nil when no credential is available
	prompt interfaces.Prompter

	download   func(ctx context.Context, url, dest string) error
	generateQR func(url, dest string) error
}

// Option overrides an external collaborator of the publish flow
type Option func(*publishUseCase)

// WithDownloader replaces the artifact download function
func WithDownloader(f func(ctx context.Context, url, dest string) error) Option {
	return func(uc *publishUseCase) {
		uc.download = f
	}
}

// WithQRGenerator replaces the QR code rendering function
func WithQRGenerator(f func(url, dest string) error) Option {
	return func(uc *publishUseCase) {
		uc.generateQR = f
	}
}

// NewPublish creates a new instance of PublishUseCase. githubClient may be
// nil, in which case the credential gated steps are skipped with warnings.
func NewPublish(cfg PublishConfig, gitClient interfaces.GitClient, githubClient interfaces.GitHubClient, prompter interfaces.Prompter, options ...Option) interfaces.PublishUseCase {
	uc := &publishUseCase{
		cfg:        cfg,
		git:        gitClient,
		github:     githubClient,
		prompt:     prompter,
		download:   fetch.Download,
		generateQR: qrcode.Generate,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}

// Publish runs the full publish sequence: sync the checkout, accept and
// validate the new shortcut link, download the artifact, rewrite the README,
// upload a QR code for the link, then commit, tag, push and create a release.
func (uc *publishUseCase) Publish(ctx context.Context) error {
	logger := ctxlog.From(ctx).With("run_id", uuid.NewString())
	ctx = ctxlog.With(ctx, logger)

	logger.Info("Starting shortcut publish process")

	uc.syncRepository(ctx)

	link, err := uc.askShortcutLink(ctx)
	if err != nil {
		return err
	}

	if err := uc.download(ctx, link, uc.cfg.ShortcutPath); err != nil {
		return goerr.Wrap(err, "failed to download shortcut", goerr.V("url", link))
	}

	if err := ReplaceShortcutLink(ctx, uc.cfg.ReadmePath, uc.cfg.LinkLine, link); err != nil {
		return err
	}

	qrFile, err := os.CreateTemp("", "herald_qr_*.png")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary QR code file")
	}
	qrPath := qrFile.Name()
	if err := qrFile.Close(); err != nil {
		return goerr.Wrap(err, "failed to close temporary QR code file")
	}
	defer func() {
		if err := os.Remove(qrPath); err != nil {
			logger.Warn("Could not delete temporary QR code file", "path", qrPath, "error", err)
		}
	}()

	if err := uc.generateQR(link, qrPath); err != nil {
		return err
	}

	remoteURL, err := uc.git.RemoteURL(ctx)
	if err != nil {
		return err
	}
	repo, err := model.ParseRepository(remoteURL)
	if err != nil {
		return err
	}
	logger.Info("Detected GitHub repository", "repo", repo.String())

	uc.publishQRCode(ctx, repo, qrPath)

	input, err := uc.askReleaseInput(ctx)
	if err != nil {
		return err
	}

	if err := uc.commitAndPush(ctx, input); err != nil {
		return err
	}

	if err := uc.createTag(ctx, input.FullTag()); err != nil {
		return err
	}

	uc.createRelease(ctx, repo, input, qrPath)

	logger.Info("Publish process completed")
	return nil
}

// syncRepository checks whether the checkout is behind origin and offers to
// pull. Every failure here is tolerated: publishing from a stale checkout is
// the operator's call.
func (uc *publishUseCase) syncRepository(ctx context.Context) {
	logger := ctxlog.From(ctx)

	logger.Info("Checking if the checkout is up to date")
	if err := uc.git.Fetch(ctx); err != nil {
		logger.Warn("Failed to fetch origin", "error", err)
	}

	branch := uc.git.CurrentBranch(ctx)
	behind, err := uc.git.BehindCount(ctx, branch)
	if err != nil {
		logger.Warn("Could not determine commits behind remote", "branch", branch, "error", err)
		return
	}
	if behind == 0 {
		logger.Info("Already on the latest version", "branch", branch)
		return
	}

	ok, err := uc.prompt.Confirm(fmt.Sprintf("You are %d commit(s) behind origin/%s. Pull the latest changes?", behind, branch))
	if err != nil || !ok {
		logger.Info("Skipping pull, continuing with the current version")
		return
	}

	if err := uc.git.Pull(ctx, branch); err != nil {
		logger.Warn("Failed to pull latest changes", "branch", branch, "error", err)
		return
	}
	logger.Info("Pulled latest changes", "branch", branch)
}

func (uc *publishUseCase) askShortcutLink(ctx context.Context) (string, error) {
	logger := ctxlog.From(ctx)

	for i := 0; i < maxLinkAttempts; i++ {
		raw, err := uc.prompt.Ask("Enter the new shortcut URL")
		if err != nil {
			return "", goerr.Wrap(err, "failed to read shortcut URL")
		}

		ok, diag := ValidateShortcutURL(raw, uc.prompt)
		if ok {
			return raw, nil
		}
		logger.Warn("Invalid shortcut URL, please try again", "reason", diag)
	}

	return "", goerr.New("no valid shortcut URL provided", goerr.V("attempts", maxLinkAttempts))
}

// publishQRCode uploads the QR image via the contents API and rewrites the
// README image field. Both steps degrade with a warning: the run continues
// without an updated image rather than aborting.
func (uc *publishUseCase) publishQRCode(ctx context.Context, repo *model.Repository, qrPath string) {
	logger := ctxlog.From(ctx)

	if uc.github == nil {
		logger.Warn("GITHUB_TOKEN not set, QR code not uploaded; update the README image field manually")
		return
	}

	branch := uc.git.DefaultBranch(ctx)
	imageURL, err := uc.github.UploadFile(ctx, repo, branch, qrPath)
	if err != nil {
		logger.Warn("QR code upload failed, continuing without updating the README image field", "error", err)
		return
	}

	if err := ReplaceQRCodeImage(ctx, uc.cfg.ReadmePath, uc.cfg.ImageLine, imageURL); err != nil {
		logger.Warn("Failed to update the README image field", "error", err)
	}
}

func (uc *publishUseCase) askReleaseInput(ctx context.Context) (*model.ReleaseInput, error) {
	var input model.ReleaseInput
	var err error

	if input.VersionName, err = uc.prompt.Ask("Enter version name"); err != nil {
		return nil, err
	}
	if input.Tag, err = uc.prompt.Ask("Enter tag"); err != nil {
		return nil, err
	}
	if input.Changes, err = uc.prompt.Ask("Enter changes (commit message)"); err != nil {
		return nil, err
	}

	if !input.Valid() {
		return nil, goerr.New("version name, tag, and changes are all required")
	}
	return &input, nil
}

func (uc *publishUseCase) commitAndPush(ctx context.Context, input *model.ReleaseInput) error {
	logger := ctxlog.From(ctx)

	logger.Info("Committing changes")
	if err := uc.git.AddAll(ctx); err != nil {
		return err
	}
	if err := uc.git.Commit(ctx, input.Changes); err != nil {
		return err
	}

	branch := uc.git.CurrentBranch(ctx)
	logger.Info("Pushing to origin", "branch", branch)
	return uc.git.Push(ctx, branch)
}

func (uc *publishUseCase) createTag(ctx context.Context, tag string) error {
	logger := ctxlog.From(ctx)

	logger.Info("Creating tag", "tag", tag)
	if err := uc.git.CreateTag(ctx, tag); err != nil {
		return err
	}
	if err := uc.git.PushTag(ctx, tag); err != nil {
		return err
	}
	logger.Info("Tag created and pushed", "tag", tag)
	return nil
}

func (uc *publishUseCase) createRelease(ctx context.Context, repo *model.Repository, input *model.ReleaseInput, qrPath string) {
	logger := ctxlog.From(ctx)

	if uc.github == nil {
		logger.Warn("GITHUB_TOKEN not set, skipping GitHub release creation")
		return
	}

	logger.Info("Creating GitHub release", "tag", input.FullTag())
	if _, err := uc.github.CreateRelease(ctx, repo, input, qrPath); err != nil {
		if goerr.HasTag(err, types.TagReleaseExists) {
			logger.Warn("Release already exists, continuing", "tag", input.FullTag())
			return
		}
		logger.Warn("Failed to create release", "tag", input.FullTag(), "error", err)
	}
}
