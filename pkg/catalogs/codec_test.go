package catalogs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		ok     bool
	}{
		{"metal-parts.json", FormatJSON, true},
		{"metal-parts.JSON", FormatJSON, true},
		{"metal-parts.yaml", FormatYAML, true},
		{"metal-parts.yml", FormatYAML, true},
		{"notes.txt", "", false},
		{"README.md", "", false},
	}

	for _, tt := range tests {
		format, ok := FormatFor(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		assert.Equal(t, tt.format, format, tt.name)
	}
}

func TestDecode_InvalidRecords(t *testing.T) {
	_, err := Decode("broken.json", []byte(`{"id": "x",`))
	assert.Error(t, err)

	_, err = Decode("list.json", []byte(`[1, 2, 3]`))
	assert.Error(t, err)

	_, err = Decode("notes.txt", []byte(`anything`))
	assert.Error(t, err)
}

// Published JSON keeps the source field order, two-space indentation, and
// non-ASCII characters literally.
func TestJSONRoundTrip(t *testing.T) {
	source := `{
  "id": "metal-parts",
  "name": "Pièces métalliques",
  "stackSize": 10,
  "recipe": {
    "scrap": 2,
    "wire": 1
  },
  "tags": [
    "crafting",
    "loot"
  ]
}
`

	item, err := Decode("metal-parts.json", []byte(source))
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, item.Format())
	assert.Equal(t, []string{"id", "name", "stackSize", "recipe", "tags"}, item.Keys())

	out, err := item.Encode()
	require.NoError(t, err)
	assert.Equal(t, source, string(out))
}

// Nested objects decode into ordered maps the recipe reader understands and
// keep their source key order even when it is not alphabetical, including
// objects inside arrays.
func TestJSONRoundTrip_NestedOrder(t *testing.T) {
	source := `{
  "id": "weapon-kit",
  "recipe": {
    "wire": 2,
    "scrap": 4,
    "chemicals": 1
  },
  "drops": [
    {
      "zone": "rust-belt",
      "rate": 0.2
    }
  ],
  "stackSize": 1
}
`

	item, err := Decode("weapon-kit.json", []byte(source))
	require.NoError(t, err)

	recipe, ok := item.Recipe()
	require.True(t, ok, "recipe of a JSON record must be readable")
	assert.Equal(t, []Ingredient{
		{ID: "wire", Quantity: 2},
		{ID: "scrap", Quantity: 4},
		{ID: "chemicals", Quantity: 1},
	}, recipe)

	out, err := item.Encode()
	require.NoError(t, err)
	assert.Equal(t, source, string(out))
}

// Encoding twice yields identical bytes.
func TestJSONEncode_Deterministic(t *testing.T) {
	item, err := Decode("kit.json", []byte(`{"id": "kit", "recipe": {"scrap": 4}}`))
	require.NoError(t, err)

	first, err := item.Encode()
	require.NoError(t, err)
	second, err := item.Encode()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestYAMLRoundTrip(t *testing.T) {
	source := "id: metal-parts\nstackSize: 10\nrecipe:\n  scrap: 2\n  wire: 1\n"

	item, err := Decode("metal-parts.yaml", []byte(source))
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, item.Format())
	assert.Equal(t, []string{"id", "stackSize", "recipe"}, item.Keys())
	assert.Equal(t, 10.0, item.StackSize())

	recipe, ok := item.Recipe()
	require.True(t, ok)
	assert.Equal(t, []Ingredient{
		{ID: "scrap", Quantity: 2},
		{ID: "wire", Quantity: 1},
	}, recipe)

	out, err := item.Encode()
	require.NoError(t, err)

	// Re-decode and compare field order and values; YAML scalar styles may
	// legitimately differ from the source bytes.
	again, err := Decode("metal-parts.yaml", out)
	require.NoError(t, err)
	assert.Equal(t, item.Keys(), again.Keys())
	assert.Equal(t, "metal-parts", again.ID())
	assert.Equal(t, 10.0, again.StackSize())
}

func TestEncode_AddedSavingsField(t *testing.T) {
	item, err := Decode("kit.json", []byte(`{"id": "kit", "recipe": {"scrap": 4}}`))
	require.NoError(t, err)

	item.SetStashSavings(-0.5)
	out, err := item.Encode()
	require.NoError(t, err)

	assert.Contains(t, string(out), `"stashSavings": -0.5`)

	again, err := Decode("kit.json", out)
	require.NoError(t, err)
	v, has := again.Get("stashSavings")
	require.True(t, has)
	assert.Equal(t, -0.5, v)
}
