package models

// PublicProperty is the guest-facing projection of a [Property]. It carries
// only fields meant for unauthenticated viewers: in particular, OwnerID and
// the internal ID never leave the server on the public path.
type PublicProperty struct {
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Address    string `json:"address"`
	CoverImage string `json:"cover_image"`
}

// Public returns the guest-facing projection of p.
func (p Property) Public() PublicProperty {
	return PublicProperty{
		Name:       p.Name,
		Slug:       p.Slug,
		Address:    p.Address,
		CoverImage: p.CoverImage,
	}
}

// Guide is the result of public resolution: a property's guest projection
// together with all of its sections.
type Guide struct {
	Property PublicProperty `json:"property"`
	Sections []Section      `json:"sections"`
}

// CategoryGroup is one category's worth of sections, paired with its
// presentation metadata, as used by the guest view and the print table of
// contents.
type CategoryGroup struct {
	Info     CategoryInfo `json:"info"`
	Sections []Section    `json:"sections"`
}

// GroupSections groups sections by the four fixed categories in display
// order. Categories with zero sections are omitted, so the result doubles as
// the print table of contents. Sections carrying a value outside the closed
// set are dropped.
func GroupSections(sections []Section) []CategoryGroup {
	groups := make([]CategoryGroup, 0, len(categoryOrder))
	for _, info := range categoryOrder {
		matched := FilterByCategory(sections, info.ID)
		if len(matched) == 0 {
			continue
		}
		groups = append(groups, CategoryGroup{Info: info, Sections: matched})
	}
	return groups
}
