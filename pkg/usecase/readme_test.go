package usecase_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/herald/pkg/usecase"
)

// writeTestReadme creates a README with the install link at line 57 and the
// QR image tag at line 59, matching the conventional layout.
func writeTestReadme(t *testing.T) string {
	t.Helper()

	lines := make([]string, 60)
	for i := range lines {
		lines[i] = fmt.Sprintf("filler line %d", i+1)
	}
	lines[56] = "**Install MessageDict:** https://old.example/x"
	lines[58] = `<img src="https://old.example/qr.png" alt="MessageDict QR Code" width="200">`

	path := filepath.Join(t.TempDir(), "README.md")
	gt.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	gt.NoError(t, err)
	return strings.Split(string(data), "\n")
}

func TestReplaceShortcutLink(t *testing.T) {
	ctx := context.Background()

	t.Run("rewrites only the target line", func(t *testing.T) {
		path := writeTestReadme(t)
		before := readLines(t, path)

		gt.NoError(t, usecase.ReplaceShortcutLink(ctx, path, 57, "https://new.example/y"))

		after := readLines(t, path)
		gt.Value(t, after[56]).Equal("**Install MessageDict:** https://new.example/y")
		for i := range after {
			if i == 56 {
				continue
			}
			gt.Value(t, after[i]).Equal(before[i])
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		path := writeTestReadme(t)

		gt.NoError(t, usecase.ReplaceShortcutLink(ctx, path, 57, "https://new.example/y"))
		once, err := os.ReadFile(path)
		gt.NoError(t, err)

		gt.NoError(t, usecase.ReplaceShortcutLink(ctx, path, 57, "https://new.example/y"))
		twice, err := os.ReadFile(path)
		gt.NoError(t, err)

		gt.Value(t, string(twice)).Equal(string(once))
	})

	t.Run("non-matching line is left untouched", func(t *testing.T) {
		path := writeTestReadme(t)
		before, err := os.ReadFile(path)
		gt.NoError(t, err)

		// Line 10 is filler, not an install link
		gt.NoError(t, usecase.ReplaceShortcutLink(ctx, path, 10, "https://new.example/y"))

		after, err := os.ReadFile(path)
		gt.NoError(t, err)
		gt.Value(t, string(after)).Equal(string(before))
	})

	t.Run("line number out of range is a no-op", func(t *testing.T) {
		path := writeTestReadme(t)
		before, err := os.ReadFile(path)
		gt.NoError(t, err)

		gt.NoError(t, usecase.ReplaceShortcutLink(ctx, path, 1000, "https://new.example/y"))

		after, err := os.ReadFile(path)
		gt.NoError(t, err)
		gt.Value(t, string(after)).Equal(string(before))
	})

	t.Run("missing document is an error", func(t *testing.T) {
		err := usecase.ReplaceShortcutLink(ctx, filepath.Join(t.TempDir(), "no-such.md"), 57, "https://new.example/y")
		gt.Error(t, err)
	})
}

func TestReplaceQRCodeImage(t *testing.T) {
	ctx := context.Background()

	t.Run("rewrites only the image source", func(t *testing.T) {
		path := writeTestReadme(t)

		gt.NoError(t, usecase.ReplaceQRCodeImage(ctx, path, 59, "https://raw.githubusercontent.com/acme/widget/main/assets/qr.png"))

		after := readLines(t, path)
		gt.Value(t, after[58]).Equal(`<img src="https://raw.githubusercontent.com/acme/widget/main/assets/qr.png" alt="MessageDict QR Code" width="200">`)
		gt.Value(t, after[56]).Equal("**Install MessageDict:** https://old.example/x")
	})
}
