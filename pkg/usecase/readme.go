package usecase

import (
	"context"
	"os"
	"regexp"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

var (
	// linkPattern matches the visible install link line in the README
	linkPattern = regexp.MustCompile(`(\*\*Install MessageDict:\*\* )https://[^\s]+`)

	// imagePattern matches the embedded QR code image tag, capturing the
	// surrounding markup so only the src value is replaced
	imagePattern = regexp.MustCompile(`(<img src=")[^"]+(" alt="MessageDict QR Code"[^>]*>)`)
)

// ReplaceShortcutLink rewrites the install link on the given README line
func ReplaceShortcutLink(ctx context.Context, path string, lineNo int, link string) error {
	return patchLine(ctx, path, lineNo, linkPattern, func(m []string) string {
		return m[1] + link
	})
}

// ReplaceQRCodeImage rewrites the QR code image source on the given README line
func ReplaceQRCodeImage(ctx context.Context, path string, lineNo int, imageURL string) error {
	return patchLine(ctx, path, lineNo, imagePattern, func(m []string) string {
		return m[1] + imageURL + m[2]
	})
}

// patchLine rewrites the 1-based line lineNo of the document at path when it
// matches pattern, leaving every other byte of the file untouched. A line
// that does not match is left as is with a warning; the expected pattern may
// legitimately move between document revisions.
func patchLine(ctx context.Context, path string, lineNo int, pattern *regexp.Regexp, build func(match []string) string) error {
	logger := ctxlog.From(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read document", goerr.V("path", path))
	}

	lines := strings.Split(string(data), "\n")
	if lineNo < 1 || lineNo > len(lines) {
		logger.Warn("Target line is out of range, document left unchanged",
			"path", path,
			"line", lineNo,
			"total_lines", len(lines),
		)
		return nil
	}

	line := lines[lineNo-1]
	match := pattern.FindStringSubmatch(line)
	if match == nil {
		logger.Warn("Target line does not match the expected pattern, document left unchanged",
			"path", path,
			"line", lineNo,
		)
		return nil
	}

	lines[lineNo-1] = strings.Replace(line, match[0], build(match), 1)

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return goerr.Wrap(err, "failed to write document", goerr.V("path", path))
	}

	logger.Info("Document updated", "path", path, "line", lineNo)
	return nil
}
