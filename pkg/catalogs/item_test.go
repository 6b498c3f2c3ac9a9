package catalogs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSONItem(t *testing.T, record string) *Item {
	t.Helper()
	item, err := Decode("item.json", []byte(record))
	require.NoError(t, err)
	return item
}

func TestItem_ID(t *testing.T) {
	tests := []struct {
		name   string
		record string
		want   string
	}{
		{"present", `{"id": "rusty-gear", "name": "Rusty Gear"}`, "rusty-gear"},
		{"absent", `{"name": "Rusty Gear"}`, ""},
		{"non-string", `{"id": 42}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeJSONItem(t, tt.record).ID())
		})
	}
}

func TestItem_StackSize(t *testing.T) {
	tests := []struct {
		name   string
		record string
		want   float64
	}{
		{"declared", `{"stackSize": 10}`, 10},
		{"fractional", `{"stackSize": 2.5}`, 2.5},
		{"absent defaults to one", `{}`, 1},
		{"zero clamped to one", `{"stackSize": 0}`, 1},
		{"negative clamped to one", `{"stackSize": -3}`, 1},
		{"non-numeric defaults to one", `{"stackSize": "big"}`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeJSONItem(t, tt.record).StackSize())
		})
	}
}

func TestItem_CraftQuantity(t *testing.T) {
	assert.Equal(t, 3.0, decodeJSONItem(t, `{"craftQuantity": 3}`).CraftQuantity())
	assert.Equal(t, 1.0, decodeJSONItem(t, `{}`).CraftQuantity())
	assert.Equal(t, 1.0, decodeJSONItem(t, `{"craftQuantity": null}`).CraftQuantity())
}

func TestItem_Recipe(t *testing.T) {
	t.Run("declaration order preserved", func(t *testing.T) {
		item := decodeJSONItem(t, `{"id": "kit", "recipe": {"wire": 2, "scrap": 4, "tape": 1}}`)
		recipe, ok := item.Recipe()
		require.True(t, ok)
		require.Len(t, recipe, 3)
		assert.Equal(t, []Ingredient{
			{ID: "wire", Quantity: 2},
			{ID: "scrap", Quantity: 4},
			{ID: "tape", Quantity: 1},
		}, recipe)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := decodeJSONItem(t, `{"id": "scrap"}`).Recipe()
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := decodeJSONItem(t, `{"id": "scrap", "recipe": {}}`).Recipe()
		assert.False(t, ok)
	})

	t.Run("not a mapping", func(t *testing.T) {
		_, ok := decodeJSONItem(t, `{"id": "scrap", "recipe": ["wire"]}`).Recipe()
		assert.False(t, ok)
	})

	t.Run("non-numeric quantity", func(t *testing.T) {
		_, ok := decodeJSONItem(t, `{"id": "kit", "recipe": {"wire": "two"}}`).Recipe()
		assert.False(t, ok)
	})
}

func TestItem_StashSavings(t *testing.T) {
	item := decodeJSONItem(t, `{"id": "kit", "name": "Kit"}`)

	item.SetStashSavings(1.5)
	v, has := item.Get("stashSavings")
	require.True(t, has)
	assert.Equal(t, 1.5, v)
	assert.Equal(t, []string{"id", "name", "stashSavings"}, item.Keys())

	item.DeleteStashSavings()
	_, has = item.Get("stashSavings")
	assert.False(t, has)
	assert.Equal(t, []string{"id", "name"}, item.Keys())
}

// A stale savings value in the source keeps its position until deleted;
// delete-then-set is what moves it to the end deterministically.
func TestItem_StashSavings_StaleField(t *testing.T) {
	item := decodeJSONItem(t, `{"id": "kit", "stashSavings": 9.9, "name": "Kit"}`)

	item.DeleteStashSavings()
	item.SetStashSavings(0.5)

	assert.Equal(t, []string{"id", "name", "stashSavings"}, item.Keys())
}
