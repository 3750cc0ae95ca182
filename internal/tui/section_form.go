package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/staykeeper/staykeeper/models"
)

type sectionFormModel struct {
	inputs     []textinput.Model
	focus      int
	category   models.Category
	editing    bool
	sectionID  int64
	submitting bool
}

// newSectionFormModel builds the form for one section. category fixes the tab
// the section is filed under; section is non-nil when editing.
func newSectionFormModel(category models.Category, section *models.Section) sectionFormModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 60
	}
	inputs[0].Placeholder = "title"
	inputs[1].Placeholder = "markdown body (optional)"
	inputs[1].CharLimit = 0
	inputs[2].Placeholder = "image URL (optional)"
	inputs[0].Focus()

	m := sectionFormModel{inputs: inputs, category: category}
	if section == nil {
		return m
	}

	m.editing = true
	m.sectionID = section.ID
	m.category = section.Category
	m.inputs[0].SetValue(section.Title)
	m.inputs[1].SetValue(section.Content)
	m.inputs[2].SetValue(section.ImageURL)
	return m
}

func (m sectionFormModel) title() string { return strings.TrimSpace(m.inputs[0].Value()) }

func (m sectionFormModel) toPayload() models.SectionPayload {
	return models.SectionPayload{
		Category: m.category,
		Title:    m.title(),
		Content:  m.inputs[1].Value(),
		ImageURL: strings.TrimSpace(m.inputs[2].Value()),
	}
}

func (m sectionFormModel) View() string {
	title := "New section under " + m.category.Label()
	if m.editing {
		title = "Edit: " + fitText(m.inputs[0].Value(), 40)
	}

	var b strings.Builder
	b.WriteString("Title   [" + m.inputs[0].View() + "]\n")
	b.WriteString("Body    [" + m.inputs[1].View() + "]\n")
	b.WriteString("Image   [" + m.inputs[2].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	return renderPage(title, b.String(), "esc: cancel │ tab: next field │ enter: save")
}
