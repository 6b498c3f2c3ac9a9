// Package catalogs provides the in-memory item catalog for the arcdata system.
// A catalog is built from a single scan of a source directory of item record
// files and is read-only afterwards: the savings calculator resolves recipe
// ingredients against it and the publisher republishes its snapshot.
package catalogs

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/KuroZantetsuken/ARC-Raiders-Data-CLI/pkg/constants"
)

// Format identifies the serialization format of an item record file.
type Format string

// Supported record formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Item is one game-item record. Fields are kept in an insertion-ordered map
// so that republished files preserve the source field order, including fields
// this system never reads.
type Item struct {
	fields *orderedmap.OrderedMap[string, any]
	format Format
}

// Ingredient is one recipe requirement: an ingredient item ID and the
// quantity of it consumed per craft.
type Ingredient struct {
	ID       string
	Quantity float64
}

// Format returns the serialization format the record was loaded from.
func (it *Item) Format() Format {
	return it.format
}

// ID returns the item's unique identifier, or "" when the record has no
// usable id field. Records without an ID are excluded from catalog lookups
// but are still republished.
func (it *Item) ID() string {
	v, ok := it.fields.Get(constants.FieldID)
	if !ok {
		return ""
	}
	id, ok := v.(string)
	if !ok {
		return ""
	}
	return id
}

// Recipe returns the item's crafting recipe in declaration order.
// ok is false when the recipe field is absent, empty, not a mapping, or
// contains a non-numeric quantity; callers treat all of those as
// "not craftable".
func (it *Item) Recipe() ([]Ingredient, bool) {
	v, ok := it.fields.Get(constants.FieldRecipe)
	if !ok {
		return nil, false
	}

	recipe, ok := v.(*orderedmap.OrderedMap[string, any])
	if !ok || recipe.Len() == 0 {
		return nil, false
	}

	ingredients := make([]Ingredient, 0, recipe.Len())
	for pair := recipe.Oldest(); pair != nil; pair = pair.Next() {
		quantity, ok := toFloat(pair.Value)
		if !ok {
			return nil, false
		}
		ingredients = append(ingredients, Ingredient{ID: pair.Key, Quantity: quantity})
	}
	return ingredients, true
}

// StackSize returns the effective stack size: the declared stackSize,
// defaulting to 1 when absent or non-numeric, and clamped to 1 when the
// declared value is zero or negative. This guards the space division.
func (it *Item) StackSize() float64 {
	v, ok := it.fields.Get(constants.FieldStackSize)
	if !ok {
		return constants.DefaultStackSize
	}
	size, ok := toFloat(v)
	if !ok || size <= 0 {
		return constants.DefaultStackSize
	}
	return size
}

// CraftQuantity returns the number of units produced per craft,
// defaulting to 1 when absent or non-numeric.
func (it *Item) CraftQuantity() float64 {
	v, ok := it.fields.Get(constants.FieldCraftQuantity)
	if !ok {
		return constants.DefaultCraftQuantity
	}
	quantity, ok := toFloat(v)
	if !ok {
		return constants.DefaultCraftQuantity
	}
	return quantity
}

// SetStashSavings sets the derived stashSavings field on the record.
func (it *Item) SetStashSavings(v float64) {
	it.fields.Set(constants.FieldStashSavings, v)
}

// DeleteStashSavings removes any stashSavings field from the record, so a
// record whose savings are not computable is published without one.
func (it *Item) DeleteStashSavings() {
	it.fields.Delete(constants.FieldStashSavings)
}

// Get returns the raw value of a named field.
func (it *Item) Get(key string) (any, bool) {
	return it.fields.Get(key)
}

// Keys returns the record's field names in declaration order.
func (it *Item) Keys() []string {
	keys := make([]string, 0, it.fields.Len())
	for pair := it.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// toFloat converts the numeric types the JSON and YAML decoders produce.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
