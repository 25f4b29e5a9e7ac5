package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/herald/pkg/cli/config"
)

func writeSecrets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".secrets")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestGitHub_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("flag token wins over secrets file", func(t *testing.T) {
		cfg := &config.GitHub{
			Token:       "ghp_fromenvironment000000000000",
			SecretsFile: writeSecrets(t, "GITHUB_TOKEN=ghp_fromfile0000000000000000\n"),
		}
		gt.Value(t, cfg.Resolve(ctx)).Equal("ghp_fromenvironment000000000000")
	})

	t.Run("secrets file used as fallback", func(t *testing.T) {
		cfg := &config.GitHub{
			SecretsFile: writeSecrets(t, "# credentials for herald\n\nGITHUB_TOKEN=ghp_fromfile0000000000000000\n"),
		}
		gt.Value(t, cfg.Resolve(ctx)).Equal("ghp_fromfile0000000000000000")
	})

	t.Run("missing secrets file yields empty token", func(t *testing.T) {
		cfg := &config.GitHub{
			SecretsFile: filepath.Join(t.TempDir(), "no-such-file"),
		}
		gt.Value(t, cfg.Resolve(ctx)).Equal("")
	})

	t.Run("secrets file without the key yields empty token", func(t *testing.T) {
		cfg := &config.GitHub{
			SecretsFile: writeSecrets(t, "OTHER_KEY=value\n"),
		}
		gt.Value(t, cfg.Resolve(ctx)).Equal("")
	})

	t.Run("unusual token shape is returned anyway", func(t *testing.T) {
		// Shape problems only warn: the API decides validity
		cfg := &config.GitHub{Token: "short"}
		gt.Value(t, cfg.Resolve(ctx)).Equal("short")
	})
}
