package config

import (
	"github.com/m-mizutani/herald/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Publish holds the file targets of the publish command
type Publish struct {
	ReadmePath   string
	ShortcutPath string
	LinkLine     int
	ImageLine    int
}

// Flags returns CLI flags for publish configuration. The defaults match the
// MessageDict repository layout.
func (c *Publish) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "readme",
			Usage:       "Documentation file to rewrite",
			Value:       "README.md",
			Destination: &c.ReadmePath,
			Sources:     cli.EnvVars("HERALD_README"),
		},
		&cli.StringFlag{
			Name:        "shortcut-path",
			Usage:       "Local path the shortcut is downloaded to",
			Value:       "MessageDict.shortcut",
			Destination: &c.ShortcutPath,
			Sources:     cli.EnvVars("HERALD_SHORTCUT_PATH"),
		},
		&cli.IntFlag{
			Name:        "link-line",
			Usage:       "1-based README line holding the install link",
			Value:       57,
			Destination: &c.LinkLine,
			Sources:     cli.EnvVars("HERALD_LINK_LINE"),
		},
		&cli.IntFlag{
			Name:        "image-line",
			Usage:       "1-based README line holding the QR image tag",
			Value:       59,
			Destination: &c.ImageLine,
			Sources:     cli.EnvVars("HERALD_IMAGE_LINE"),
		},
	}
}

// UseCaseConfig converts the flag values into the publish use case config
func (c *Publish) UseCaseConfig() usecase.PublishConfig {
	return usecase.PublishConfig{
		ReadmePath:   c.ReadmePath,
		ShortcutPath: c.ShortcutPath,
		LinkLine:     c.LinkLine,
		ImageLine:    c.ImageLine,
	}
}
