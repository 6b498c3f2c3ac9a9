package savings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KuroZantetsuken/ARC-Raiders-Data-CLI/pkg/catalogs"
)

// mustItem parses a JSON record for tests.
func mustItem(t *testing.T, record string) *catalogs.Item {
	t.Helper()
	item, err := catalogs.Decode("item.json", []byte(record))
	require.NoError(t, err)
	return item
}

// buildCatalog builds a catalog from filename -> JSON record pairs.
func buildCatalog(t *testing.T, records map[string]string) *catalogs.Catalog {
	t.Helper()
	var files []catalogs.File
	for name, record := range records {
		files = append(files, catalogs.File{Name: name, Item: mustItem(t, record)})
	}
	return catalogs.New(files...)
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name        string
		item        string
		catalog     map[string]string
		want        float64
		wantOK      bool
	}{
		{
			name: "single ingredient costs more space than it saves",
			item: `{"id": "frag-grenade", "stackSize": 1, "craftQuantity": 1, "recipe": {"powder": 4}}`,
			catalog: map[string]string{
				"powder.json": `{"id": "powder", "stackSize": 8}`,
			},
			want:   -0.5,
			wantOK: true,
		},
		{
			name: "two ingredients",
			item: `{"id": "toolkit", "stackSize": 1, "craftQuantity": 1, "recipe": {"scrap": 10, "wire": 5}}`,
			catalog: map[string]string{
				"scrap.json": `{"id": "scrap", "stackSize": 5}`,
				"wire.json":  `{"id": "wire", "stackSize": 5}`,
			},
			want:   2.0,
			wantOK: true,
		},
		{
			name: "zero stack size treated as one",
			item: `{"id": "widget", "stackSize": 0, "recipe": {"scrap": 4}}`,
			catalog: map[string]string{
				"scrap.json": `{"id": "scrap", "stackSize": 8}`,
			},
			want:   -0.5,
			wantOK: true,
		},
		{
			name: "negative ingredient stack size clamped to one",
			item: `{"id": "widget", "recipe": {"scrap": 3}}`,
			catalog: map[string]string{
				"scrap.json": `{"id": "scrap", "stackSize": -2}`,
			},
			want:   2.0,
			wantOK: true,
		},
		{
			name: "ingredient without stack size defaults to one",
			item: `{"id": "widget", "stackSize": 2, "craftQuantity": 2, "recipe": {"scrap": 5}}`,
			catalog: map[string]string{
				"scrap.json": `{"id": "scrap"}`,
			},
			want:   4.0,
			wantOK: true,
		},
		{
			name: "craft quantity scales target space",
			item: `{"id": "ammo", "stackSize": 20, "craftQuantity": 10, "recipe": {"powder": 2}}`,
			catalog: map[string]string{
				"powder.json": `{"id": "powder", "stackSize": 8}`,
			},
			want:   -0.25,
			wantOK: true,
		},
		{
			name: "missing ingredient voids the whole result",
			item: `{"id": "widget", "recipe": {"scrap": 10, "unobtainium": 1}}`,
			catalog: map[string]string{
				"scrap.json": `{"id": "scrap", "stackSize": 5}`,
			},
			wantOK: false,
		},
		{
			name:    "absent recipe is not craftable",
			item:    `{"id": "scrap", "stackSize": 5}`,
			catalog: map[string]string{},
			wantOK:  false,
		},
		{
			name:    "empty recipe is not craftable",
			item:    `{"id": "scrap", "recipe": {}}`,
			catalog: map[string]string{},
			wantOK:  false,
		},
		{
			name: "non-numeric quantity is not computable",
			item: `{"id": "widget", "recipe": {"scrap": "lots"}}`,
			catalog: map[string]string{
				"scrap.json": `{"id": "scrap", "stackSize": 5}`,
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := mustItem(t, tt.item)
			cat := buildCatalog(t, tt.catalog)

			got, ok := Compute(item, cat)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

// TestCompute_NoSideEffects verifies the calculator never mutates the record.
func TestCompute_NoSideEffects(t *testing.T) {
	item := mustItem(t, `{"id": "widget", "recipe": {"scrap": 4}}`)
	cat := buildCatalog(t, map[string]string{
		"scrap.json":  `{"id": "scrap", "stackSize": 8}`,
		"widget.json": `{"id": "widget", "recipe": {"scrap": 4}}`,
	})

	before := item.Keys()
	_, ok := Compute(item, cat)
	require.True(t, ok)
	assert.Equal(t, before, item.Keys())
	_, has := item.Get("stashSavings")
	assert.False(t, has, "Compute must not write the savings field")
}
