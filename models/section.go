package models

// Section is one titled, categorized, markdown-bodied entry within a
// property's guide. Sections always belong to exactly one property and are
// only reachable by guests through the parent property's slug.
type Section struct {
	// ID is the internal unique identifier, assigned by the database.
	ID int64 `json:"id"`

	// PropertyID references the parent [Property]. Immutable.
	PropertyID int64 `json:"property_id"`

	// Category places the section under one of the four fixed guide tabs.
	Category Category `json:"category"`

	// Title is required for save.
	Title string `json:"title"`

	// Content is the optional markdown body rendered for guests.
	Content string `json:"content"`

	// ImageURL is an optional illustration URL.
	ImageURL string `json:"image_url"`
}

// TableName returns the name of the database table
// associated with the Section model.
func (s Section) TableName() string {
	return "manual_sections"
}

// SectionPayload is the full editable payload of a section, used by both
// create and update: updates replace all editable fields rather than
// patching (the editor form always submits the complete form state).
type SectionPayload struct {
	Category Category `json:"category"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	ImageURL string   `json:"image_url"`
}

// Payload extracts the editable fields of a section.
func (s Section) Payload() SectionPayload {
	return SectionPayload{
		Category: s.Category,
		Title:    s.Title,
		Content:  s.Content,
		ImageURL: s.ImageURL,
	}
}

// Apply overwrites the editable fields of the section with the payload.
func (s *Section) Apply(p SectionPayload) {
	s.Category = p.Category
	s.Title = p.Title
	s.Content = p.Content
	s.ImageURL = p.ImageURL
}

// FilterByCategory returns the subset of sections whose category equals c,
// preserving input order. An unknown category yields an empty result.
func FilterByCategory(sections []Section, c Category) []Section {
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		if s.Category == c {
			out = append(out, s)
		}
	}
	return out
}

// CountByCategory returns the number of sections per category. Only the four
// fixed categories appear as keys.
func CountByCategory(sections []Section) map[Category]int {
	counts := make(map[Category]int, len(categoryOrder))
	for _, info := range categoryOrder {
		counts[info.ID] = 0
	}
	for _, s := range sections {
		if _, ok := counts[s.Category]; ok {
			counts[s.Category]++
		}
	}
	return counts
}
