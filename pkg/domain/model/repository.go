package model

import (
	"fmt"
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// Repository identifies a GitHub repository
type Repository struct {
	Owner string
	Name  string
}

func (r Repository) String() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.Name)
}

// remotePatterns covers the common remote URL shapes:
// git@github.com:owner/repo.git, https://github.com/owner/repo,
// with or without the .git suffix or a trailing slash.
var remotePatterns = []*regexp.Regexp{
	regexp.MustCompile(`github\.com[:/]([^/]+)/([^/]+?)(?:\.git)?$`),
	regexp.MustCompile(`github\.com[:/]([^/]+)/([^/]+?)(?:\.git)?/$`),
}

// ParseRepository extracts the owner/name pair from a git remote URL.
func ParseRepository(remoteURL string) (*Repository, error) {
	for _, re := range remotePatterns {
		if m := re.FindStringSubmatch(remoteURL); m != nil {
			return &Repository{Owner: m[1], Name: m[2]}, nil
		}
	}
	return nil, goerr.New("could not parse GitHub repository from remote URL", goerr.V("remote_url", remoteURL))
}
