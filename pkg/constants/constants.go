// Package constants provides shared constants used throughout the arcdata codebase.
// This includes file permissions, default catalog paths, and serialization
// settings that should be consistent across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Path constants
const (
	// DefaultSourceDir is the default directory holding raw item records
	DefaultSourceDir = "arcraiders-data/items"

	// DefaultDestDir is the default directory the annotated catalog is published to
	DefaultDestDir = "data/items"

	// DefaultConfigName is the config file searched for in $HOME and the working directory
	DefaultConfigName = ".arcdata"
)

// Record field names as they appear in item files
const (
	// FieldID is the unique item identifier
	FieldID = "id"

	// FieldRecipe maps ingredient item IDs to required quantities
	FieldRecipe = "recipe"

	// FieldStackSize is the maximum units of an item per inventory slot
	FieldStackSize = "stackSize"

	// FieldCraftQuantity is the number of units produced per craft
	FieldCraftQuantity = "craftQuantity"

	// FieldStashSavings is the derived metric written by the publisher
	FieldStashSavings = "stashSavings"
)

// Serialization constants
const (
	// JSONIndent is the indentation used for published JSON records
	JSONIndent = "  "

	// JSONExt is the extension for JSON item records
	JSONExt = ".json"

	// YAMLExt is the extension for YAML item records
	YAMLExt = ".yaml"
)

// Crafting defaults
const (
	// DefaultStackSize is used when a record omits stackSize or declares a
	// degenerate (zero or negative) value
	DefaultStackSize = 1

	// DefaultCraftQuantity is used when a record omits craftQuantity
	DefaultCraftQuantity = 1
)
