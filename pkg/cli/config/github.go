package config

import (
	"context"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub credential configuration
type GitHub struct {
	Token       string
	SecretsFile string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Destination: &c.Token,
			Sources:     cli.EnvVars("GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "secrets-file",
			Usage:       "Local secrets file with KEY=value lines",
			Value:       ".secrets",
			Destination: &c.SecretsFile,
			Sources:     cli.EnvVars("HERALD_SECRETS_FILE"),
		},
	}
}

// Resolve returns the access token. The environment (via the flag source)
// wins; otherwise the GITHUB_TOKEN entry of the secrets file is used. A
// missing token is not an error, and an odd looking one only warns: validity
// is ultimately decided by the API.
func (c *GitHub) Resolve(ctx context.Context) string {
	logger := ctxlog.From(ctx)

	token := strings.TrimSpace(c.Token)
	if token == "" && c.SecretsFile != "" {
		if _, err := os.Stat(c.SecretsFile); err == nil {
			values, err := godotenv.Read(c.SecretsFile)
			if err != nil {
				logger.Warn("Could not read secrets file", "path", c.SecretsFile, "error", err)
			} else {
				token = strings.TrimSpace(values["GITHUB_TOKEN"])
			}
		}
	}

	if token != "" && !looksLikeToken(token) {
		logger.Warn("GitHub token format looks unusual, expected ghp_... or github_pat_...")
	}

	return token
}

func looksLikeToken(token string) bool {
	return strings.HasPrefix(token, "ghp_") ||
		strings.HasPrefix(token, "github_pat_") ||
		len(token) > 20
}
