package types

import "github.com/m-mizutani/goerr/v2"

// Version is embedded via -ldflags at release time
var Version = "dev"

// TagReleaseExists marks a release creation failure caused by a duplicate
// tag. Callers treat it as non-fatal.
var TagReleaseExists = goerr.NewTag("release_exists")
