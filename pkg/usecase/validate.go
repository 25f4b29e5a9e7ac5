package usecase

import (
	"net/url"
	"strings"

	"github.com/m-mizutani/herald/pkg/domain/interfaces"
)

// credentialPrefixes are GitHub personal access token prefixes. A pasted
// token is the most likely wrong-clipboard input, so it gets a dedicated
// diagnostic instead of the generic URL error.
var credentialPrefixes = []string{"ghp_", "github_pat_"}

// ValidateShortcutURL checks that raw is an absolute URL that plausibly
// points at an iCloud Shortcut. URLs outside the expected domain are not
// rejected outright: the operator is asked to confirm via prompter, and
// declining counts as a validation failure. It returns whether the URL was
// accepted and a diagnostic for the rejection.
func ValidateShortcutURL(raw string, prompter interfaces.Prompter) (bool, string) {
	if raw == "" {
		return false, "URL is empty"
	}

	for _, prefix := range credentialPrefixes {
		if strings.HasPrefix(raw, prefix) {
			return false, "this looks like a GitHub token, not a shortcut URL; enter the iCloud Shortcuts URL (e.g. https://www.icloud.com/shortcuts/...)"
		}
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return false, "invalid URL format, please include http:// or https://"
	}

	lower := strings.ToLower(raw)
	if !strings.Contains(lower, "icloud.com/shortcuts") && !strings.Contains(lower, "shortcuts") {
		ok, err := prompter.Confirm("This doesn't look like an iCloud Shortcuts URL (expected https://www.icloud.com/shortcuts/...). Continue anyway?")
		if err != nil || !ok {
			return false, "URL validation cancelled by user"
		}
	}

	return true, ""
}
