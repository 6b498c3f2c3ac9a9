package catalogs

import (
	"io/fs"
	"os"
	"sort"

	"github.com/KuroZantetsuken/ARC-Raiders-Data-CLI/pkg/errors"
	"github.com/KuroZantetsuken/ARC-Raiders-Data-CLI/pkg/logging"
)

// Load reads every item record in dir into a catalog. The directory is
// scanned exactly once; the resulting snapshot serves both ingredient
// lookups and publishing, so the two phases can never diverge.
//
// File-level problems (unreadable or unparsable records) are logged and
// skipped. A missing source directory is fatal and returns a SourceError.
// Load does not check that anything was loaded; callers that need a
// non-empty catalog test Len themselves.
func Load(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewSourceError(dir, "does not exist", err)
		}
		return nil, errors.WrapIO("stat", dir, err)
	}
	if !info.IsDir() {
		return nil, errors.NewSourceError(dir, "is not a directory", nil)
	}

	return LoadFS(os.DirFS(dir))
}

// LoadFS reads every item record at the root of fsys into a catalog.
// It is the filesystem-agnostic core of Load, usable with any fs.FS.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, errors.WrapIO("read", ".", err)
	}

	// fs.ReadDir sorts by filename; keep the sort explicit since the
	// duplicate-ID policy below depends on it.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var files []File
	seen := make(map[string]string) // item ID -> filename that defined it

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			continue
		}
		if _, ok := FormatFor(name); !ok {
			continue
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			logging.Warn().
				Str("file", name).
				Err(err).
				Msg("Skipping unreadable record")
			continue
		}

		item, err := Decode(name, data)
		if err != nil {
			logging.Warn().
				Str("file", name).
				Err(err).
				Msg("Skipping unparsable record")
			continue
		}

		files = append(files, File{Name: name, Item: item})
		logging.Debug().
			Str("file", name).
			Msg("Loaded record")

		id := item.ID()
		if id == "" {
			logging.Warn().
				Str("file", name).
				Msg("Record has no 'id' field; excluded from lookups")
			continue
		}
		if prev, dup := seen[id]; dup {
			// Data-integrity warning; the later file wins in the index.
			logging.Warn().
				Str("id", id).
				Str("file", name).
				Str("previous", prev).
				Msg("Duplicate item ID")
		}
		seen[id] = name
	}

	return New(files...), nil
}
