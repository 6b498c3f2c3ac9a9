// Package savings computes the stash savings metric: the inventory slots
// saved by holding a crafted item instead of its raw ingredients.
package savings

import (
	"github.com/KuroZantetsuken/ARC-Raiders-Data-CLI/pkg/catalogs"
)

// Compute returns the stash savings for item, resolving recipe ingredients
// against the catalog. ok is false when the metric is not applicable: the
// item has no usable recipe, or any ingredient ID is missing from the
// catalog. The missing-ingredient rule is strict; partial sums are
// discarded rather than reported as zero.
//
// Compute is purely functional over its inputs. The result may be negative
// when crafting costs more space than it saves; no rounding is applied.
func Compute(item *catalogs.Item, catalog *catalogs.Catalog) (float64, bool) {
	recipe, ok := item.Recipe()
	if !ok {
		return 0, false
	}

	var ingredientSpace float64
	for _, ing := range recipe {
		ingredient, found := catalog.Item(ing.ID)
		if !found {
			return 0, false
		}
		ingredientSpace += ing.Quantity / ingredient.StackSize()
	}

	targetSpace := item.CraftQuantity() / item.StackSize()

	return ingredientSpace - targetSpace, true
}
