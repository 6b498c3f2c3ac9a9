// Package publish regenerates the destination directory as an annotated
// mirror of the loaded catalog snapshot: every record is republished under
// its source filename, augmented with a stashSavings field when the savings
// calculator produces a value.
package publish

import (
	"os"
	"path/filepath"

	"github.com/KuroZantetsuken/ARC-Raiders-Data-CLI/pkg/catalogs"
	"github.com/KuroZantetsuken/ARC-Raiders-Data-CLI/pkg/constants"
	"github.com/KuroZantetsuken/ARC-Raiders-Data-CLI/pkg/errors"
	"github.com/KuroZantetsuken/ARC-Raiders-Data-CLI/pkg/logging"
	"github.com/KuroZantetsuken/ARC-Raiders-Data-CLI/pkg/savings"
)

// Result summarizes one publishing pass.
type Result struct {
	// Processed counts records successfully written to the destination.
	Processed int

	// Calculated counts records that received a stashSavings value.
	Calculated int
}

// Publish clears destDir and republishes the catalog snapshot into it.
// The destination is treated as derived data: anything already there is
// deleted, so after a run it holds exactly the snapshot's files.
//
// Per-record failures are logged and skipped; only failures to reset the
// destination directory itself abort the pass. Callers must only invoke
// Publish with a non-empty catalog, so a misconfigured run cannot destroy
// previously published output.
func Publish(cat *catalogs.Catalog, destDir string) (*Result, error) {
	if err := reset(destDir); err != nil {
		return nil, err
	}

	result := &Result{}
	for _, f := range cat.Files() {
		item := f.Item

		// The savings field is derived, never copied through: stale values
		// from the source are dropped and recomputed when possible.
		item.DeleteStashSavings()
		if item.ID() != "" {
			if value, ok := savings.Compute(item, cat); ok {
				item.SetStashSavings(value)
				result.Calculated++
			}
		}

		data, err := item.Encode()
		if err != nil {
			logging.Warn().
				Str("file", f.Name).
				Err(err).
				Msg("Skipping record that failed to serialize")
			continue
		}

		destPath := filepath.Join(destDir, f.Name)
		if err := os.WriteFile(destPath, data, constants.FilePermissions); err != nil {
			logging.Error().
				Str("file", f.Name).
				Err(err).
				Msg("Skipping record that failed to write")
			continue
		}

		result.Processed++
	}

	return result, nil
}

// reset deletes the destination directory recursively and recreates it
// empty, so no stale files from a previous run survive.
func reset(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		logging.Info().Str("dir", dir).Msg("Clearing destination directory")
		if err := os.RemoveAll(dir); err != nil {
			return errors.WrapIO("delete", dir, err)
		}
	}
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}
	return nil
}
