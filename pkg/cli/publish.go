package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/herald/pkg/cli/config"
	"github.com/m-mizutani/herald/pkg/domain/interfaces"
	"github.com/m-mizutani/herald/pkg/infra/git"
	githubinfra "github.com/m-mizutani/herald/pkg/infra/github"
	"github.com/m-mizutani/herald/pkg/usecase"
	"github.com/m-mizutani/herald/pkg/utils/prompt"
	"github.com/urfave/cli/v3"
)

func cmdPublish() *cli.Command {
	var (
		githubCfg  config.GitHub
		publishCfg config.Publish
	)

	flags := append(githubCfg.Flags(), publishCfg.Flags()...)

	return &cli.Command{
		Name:    "publish",
		Aliases: []string{"p"},
		Usage:   "Publish a new shortcut version",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			// The credential is resolved once here and injected; components
			// never read it from the environment themselves.
			var githubClient interfaces.GitHubClient
			if token := githubCfg.Resolve(ctx); token != "" {
				githubClient = githubinfra.NewClient(token)
			} else {
				logger.Warn("No GitHub token found, release steps will be skipped")
			}

			uc := usecase.NewPublish(
				publishCfg.UseCaseConfig(),
				git.NewClient(),
				githubClient,
				prompt.New(os.Stdin, os.Stdout),
			)

			return uc.Publish(ctx)
		},
	}
}
