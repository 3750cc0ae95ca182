package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/staykeeper/staykeeper/models"
)

type propertyFormModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	propertyID int64
	submitting bool
}

func newPropertyFormModel(property *models.Property) propertyFormModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[0].Placeholder = "Seaside Villa"
	inputs[1].Placeholder = "street address (optional)"
	inputs[2].Placeholder = "cover image URL (optional)"
	inputs[0].Focus()

	m := propertyFormModel{inputs: inputs}
	if property == nil {
		return m
	}

	m.editing = true
	m.propertyID = property.ID
	m.inputs[0].SetValue(property.Name)
	m.inputs[1].SetValue(property.Address)
	m.inputs[2].SetValue(property.CoverImage)
	return m
}

func (m propertyFormModel) name() string       { return strings.TrimSpace(m.inputs[0].Value()) }
func (m propertyFormModel) address() string    { return strings.TrimSpace(m.inputs[1].Value()) }
func (m propertyFormModel) coverImage() string { return strings.TrimSpace(m.inputs[2].Value()) }

// patch builds the partial update submitted when editing. All three fields
// are always sent: the form holds the full current values.
func (m propertyFormModel) patch() models.PropertyPatch {
	name := m.name()
	address := m.address()
	coverImage := m.coverImage()
	return models.PropertyPatch{
		Name:       &name,
		Address:    &address,
		CoverImage: &coverImage,
	}
}

func (m propertyFormModel) View() string {
	title := "New property"
	if m.editing {
		title = "Edit: " + fitText(m.inputs[0].Value(), 40)
	}

	var b strings.Builder
	b.WriteString("Name        [" + m.inputs[0].View() + "]\n")
	b.WriteString("Address     [" + m.inputs[1].View() + "]\n")
	b.WriteString("Cover image [" + m.inputs[2].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	return renderPage(title, b.String(), "esc: cancel │ tab: next field │ enter: save")
}
