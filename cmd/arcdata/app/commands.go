package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	arcdata "github.com/KuroZantetsuken/ARC-Raiders-Data-CLI"
	"github.com/KuroZantetsuken/ARC-Raiders-Data-CLI/pkg/catalogs"
	"github.com/KuroZantetsuken/ARC-Raiders-Data-CLI/pkg/constants"
	"github.com/KuroZantetsuken/ARC-Raiders-Data-CLI/pkg/errors"
)

// NewSavingsCommand creates the savings command: one full pipeline pass.
func (a *App) NewSavingsCommand() *cobra.Command {
	var sourceDir, destDir string

	cmd := &cobra.Command{
		Use:   "savings",
		Short: "Compute stash savings and publish the annotated catalog",
		Long: `Savings loads every item record from the source directory, computes the
stash savings metric for each craftable item, and regenerates the
destination directory with the annotated records.

The destination directory is derived data: it is cleared and fully
rewritten on every run, but only after the source has yielded at least
one loadable item.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pipeline, err := arcdata.New(
				arcdata.WithSourceDir(sourceDir),
				arcdata.WithDestDir(destDir),
				arcdata.WithLogger(a.Logger()),
			)
			if err != nil {
				return err
			}

			result, err := pipeline.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Processed %d files. Calculated savings for %d items.\n",
				result.Processed, result.Calculated)
			fmt.Fprintf(out, "Output saved to %s\n", destDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceDir, "source", a.config.SourceDir, "directory holding raw item records")
	cmd.Flags().StringVar(&destDir, "dest", a.config.DestDir, "directory the annotated catalog is written to")

	return cmd
}

// NewValidateCommand creates the validate command: a read-only
// data-integrity report over the source catalog.
func (a *App) NewValidateCommand() *cobra.Command {
	var sourceDir string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the source catalog for data-integrity issues",
		Long: `Validate loads the source catalog and reports records without an 'id'
field, duplicate item IDs, and recipes referencing ingredient IDs that do
not exist in the catalog. Nothing is written; the command exits with
status 2 when issues are found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalogs.Load(sourceDir)
			if err != nil {
				return err
			}

			issues := reportIssues(cmd, cat)

			out := cmd.OutOrStdout()
			if issues == 0 {
				fmt.Fprintf(out, "Catalog OK: %d items in %d files.\n", cat.Len(), len(cat.Files()))
				return nil
			}
			return errors.NewValidationError("", nil,
				fmt.Sprintf("%d data-integrity issue(s) in %s", issues, sourceDir))
		},
	}

	cmd.Flags().StringVar(&sourceDir, "source", a.config.SourceDir, "directory holding raw item records")

	return cmd
}

// reportIssues prints one line per data-integrity issue and returns the count.
func reportIssues(cmd *cobra.Command, cat *catalogs.Catalog) int {
	out := cmd.OutOrStdout()
	issues := 0

	byID := make(map[string][]string)
	for _, f := range cat.Files() {
		if id := f.Item.ID(); id != "" {
			byID[id] = append(byID[id], f.Name)
		}
	}

	for _, f := range cat.Files() {
		item := f.Item

		id := item.ID()
		if id == "" {
			fmt.Fprintf(out, "%s: record has no 'id' field\n", f.Name)
			issues++
		} else if names := byID[id]; len(names) > 1 && names[len(names)-1] == f.Name {
			fmt.Fprintf(out, "%s: duplicate item ID %q (also in %v)\n", f.Name, id, names[:len(names)-1])
			issues++
		}

		raw, has := item.Get(constants.FieldRecipe)
		if !has {
			continue
		}
		recipe, ok := raw.(*orderedmap.OrderedMap[string, any])
		if !ok {
			fmt.Fprintf(out, "%s: recipe is not a mapping\n", f.Name)
			issues++
			continue
		}
		if recipe.Len() == 0 {
			continue
		}
		ingredients, ok := item.Recipe()
		if !ok {
			fmt.Fprintf(out, "%s: recipe has a non-numeric quantity\n", f.Name)
			issues++
			continue
		}
		for _, ing := range ingredients {
			if _, found := cat.Item(ing.ID); !found {
				fmt.Fprintf(out, "%s: recipe ingredient %q not found in catalog\n", f.Name, ing.ID)
				issues++
			}
		}
	}

	return issues
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show version information for the arcdata CLI.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "arcdata version %s\n", a.version)
			fmt.Fprintf(out, "commit: %s\n", a.commit)
			fmt.Fprintf(out, "built: %s\n", a.date)
			fmt.Fprintf(out, "built by: %s\n", a.builtBy)
			fmt.Fprintf(out, "go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
