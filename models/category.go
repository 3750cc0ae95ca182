package models

// Category defines which of the four fixed guide tabs a section belongs to.
// The set is closed: values outside the four constants below are rejected by
// validation and never rendered with a fallback.
type Category string

const (
	// CategoryEssentials covers check-in, house rules, wifi and similar basics.
	CategoryEssentials Category = "essentials"

	// CategoryGear covers appliances and equipment instructions.
	CategoryGear Category = "gear"

	// CategoryLogistics covers directions, parking, transport and check-out.
	CategoryLogistics Category = "logistics"

	// CategoryFun covers local recommendations and activities.
	CategoryFun Category = "fun"
)

// CategoryInfo is the static presentation metadata attached to each category.
type CategoryInfo struct {
	// ID is the category value itself, as stored and transmitted.
	ID Category `json:"id"`

	// Label is the human-facing tab title (e.g. "The Essentials").
	Label string `json:"label"`

	// Icon is a short glyph used by terminal rendering of category tabs.
	Icon string `json:"icon"`
}

// categoryOrder is the fixed display order used by tabs, grouping, and the
// print table of contents.
var categoryOrder = []CategoryInfo{
	{ID: CategoryEssentials, Label: "The Essentials", Icon: "[E]"},
	{ID: CategoryGear, Label: "The Gear", Icon: "[G]"},
	{ID: CategoryLogistics, Label: "The Logistics", Icon: "[L]"},
	{ID: CategoryFun, Label: "The Fun", Icon: "[F]"},
}

// Categories returns the four fixed categories in display order.
// The returned slice is a copy; callers may not mutate the registry.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Valid reports whether c is one of the four fixed categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryEssentials, CategoryGear, CategoryLogistics, CategoryFun:
		return true
	default:
		return false
	}
}

// Info returns the presentation metadata for c and an ok flag.
// ok is false for values outside the closed set.
func (c Category) Info() (CategoryInfo, bool) {
	for _, info := range categoryOrder {
		if info.ID == c {
			return info, true
		}
	}
	return CategoryInfo{}, false
}

// Label returns the human-facing label for c, or the raw value if c is not
// part of the closed set (display-only convenience; validation still rejects
// unknown values).
func (c Category) Label() string {
	if info, ok := c.Info(); ok {
		return info.Label
	}
	return string(c)
}
