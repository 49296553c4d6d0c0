// Package leaderboard holds the domain model shared by the chat bot and the
// query service: the category registry, canonical periods, rank assignment
// and value formatting.
package leaderboard

import "strings"

// Category identifies one leaderboard dimension.
type Category string

// The five concrete categories, plus the meta-selector All which expands to
// the full set at query time and is never stored as a result key.
const (
	Monetizer        Category = "monetizer"
	ContentMachine   Category = "content_machine"
	EyeballEmperor   Category = "eyeball_emperor"
	HostWithTheMost  Category = "host_with_the_most"
	ProductWhisperer Category = "product_whisperer"
	All              Category = "all"
)

// ValueFormat selects how a category's metric is rendered.
type ValueFormat int

const (
	FormatCurrency ValueFormat = iota
	FormatCount
	FormatText // freeform text only, no rank or value
)

// Info carries a category's display metadata.
type Info struct {
	Emoji  string
	Label  string
	Format ValueFormat
}

// DisplayOrder is the fixed rendering order used when showing "all".
var DisplayOrder = []Category{
	Monetizer,
	ContentMachine,
	EyeballEmperor,
	HostWithTheMost,
	ProductWhisperer,
}

var registry = map[Category]Info{
	Monetizer:        {Emoji: "💰", Label: "Monetizer", Format: FormatCurrency},
	ContentMachine:   {Emoji: "📸", Label: "Content Machine", Format: FormatCount},
	EyeballEmperor:   {Emoji: "👀", Label: "Eyeball Emperor", Format: FormatCount},
	HostWithTheMost:  {Emoji: "🎤", Label: "Host With The Most", Format: FormatCount},
	ProductWhisperer: {Emoji: "🧠", Label: "Product Whisperer", Format: FormatText},
}

// Lookup returns the display metadata for a concrete category.
func Lookup(c Category) (Info, bool) {
	info, ok := registry[c]
	return info, ok
}

// IsValid reports whether c is a concrete category or the "all" selector.
func IsValid(c Category) bool {
	if c == All {
		return true
	}
	_, ok := registry[c]
	return ok
}

// ValidNames lists every accepted category identifier, display order first,
// "all" last. Used in validation error messages.
func ValidNames() []string {
	names := make([]string, 0, len(DisplayOrder)+1)
	for _, c := range DisplayOrder {
		names = append(names, string(c))
	}
	return append(names, string(All))
}

// ValidNamesList renders ValidNames as a comma-separated string.
func ValidNamesList() string {
	return strings.Join(ValidNames(), ", ")
}

// Expand resolves a selector to the concrete categories it covers.
func Expand(selector Category) []Category {
	if selector == All {
		return DisplayOrder
	}
	return []Category{selector}
}
