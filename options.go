package arcdata

import (
	"github.com/rs/zerolog"

	"github.com/KuroZantetsuken/ARC-Raiders-Data-CLI/pkg/constants"
)

// Option is a function that configures a Pipeline instance.
type Option func(*config) error

// config holds the pipeline configuration assembled from options.
type config struct {
	sourceDir string
	destDir   string
	logger    *zerolog.Logger
}

// defaultConfig returns the configuration used when no options override it.
func defaultConfig() *config {
	return &config{
		sourceDir: constants.DefaultSourceDir,
		destDir:   constants.DefaultDestDir,
	}
}

// WithSourceDir configures the directory item records are loaded from.
func WithSourceDir(dir string) Option {
	return func(c *config) error {
		c.sourceDir = dir
		return nil
	}
}

// WithDestDir configures the directory the annotated catalog is published to.
func WithDestDir(dir string) Option {
	return func(c *config) error {
		c.destDir = dir
		return nil
	}
}

// WithLogger configures the logger used for pipeline progress and warnings.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
