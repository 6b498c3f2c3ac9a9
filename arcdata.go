// Package arcdata provides the stash savings pipeline for an ARC Raiders
// item catalog. One run loads every item record from a source directory,
// computes the stash savings metric for each craftable item, and republishes
// the annotated catalog into a destination directory.
package arcdata

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/KuroZantetsuken/ARC-Raiders-Data-CLI/pkg/catalogs"
	"github.com/KuroZantetsuken/ARC-Raiders-Data-CLI/pkg/errors"
	"github.com/KuroZantetsuken/ARC-Raiders-Data-CLI/pkg/logging"
	"github.com/KuroZantetsuken/ARC-Raiders-Data-CLI/pkg/publish"
)

// Pipeline runs the load / calculate / publish pass. Configuration is
// supplied through options at construction; there is no package-level
// mutable state, so pipelines over arbitrary directories can coexist.
type Pipeline struct {
	config *config
	logger *zerolog.Logger
}

// New creates a new Pipeline with the given options.
func New(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		config: defaultConfig(),
	}

	for _, opt := range opts {
		if err := opt(p.config); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	if p.config.sourceDir == "" {
		return nil, errors.NewConfigError("pipeline", "source directory is required", nil)
	}
	if p.config.destDir == "" {
		return nil, errors.NewConfigError("pipeline", "destination directory is required", nil)
	}

	if p.config.logger != nil {
		p.logger = p.config.logger
	} else {
		p.logger = logging.Default()
	}

	return p, nil
}

// Run executes one pipeline pass. The catalog is loaded and verified before
// the destination directory is touched: a missing source directory or a
// source that yields zero items returns a typed error satisfying
// errors.IsNoItems, and previously published output is left intact.
func (p *Pipeline) Run(ctx context.Context) (*publish.Result, error) {
	p.logger.Info().
		Str("source", p.config.sourceDir).
		Msg("Loading item catalog")

	cat, err := catalogs.Load(p.config.sourceDir)
	if err != nil {
		return nil, err
	}
	if cat.Len() == 0 {
		return nil, errors.NewSourceError(p.config.sourceDir, "no items loaded", errors.ErrNoItems)
	}

	p.logger.Info().
		Int("items", cat.Len()).
		Int("files", len(cat.Files())).
		Msg("Loaded item catalog")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.logger.Info().
		Str("dest", p.config.destDir).
		Msg("Calculating savings and writing files")

	result, err := publish.Publish(cat, p.config.destDir)
	if err != nil {
		return nil, err
	}

	p.logger.Info().
		Int("processed", result.Processed).
		Int("calculated", result.Calculated).
		Msg("Published annotated catalog")

	return result, nil
}

// SourceDir returns the configured source directory.
func (p *Pipeline) SourceDir() string {
	return p.config.sourceDir
}

// DestDir returns the configured destination directory.
func (p *Pipeline) DestDir() string {
	return p.config.destDir
}
