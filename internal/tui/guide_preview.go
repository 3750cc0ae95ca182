package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/staykeeper/staykeeper/models"
)

// previewModel shows the published guide the way an unauthenticated guest
// resolves it: by slug, grouped under the four category tabs.
type previewModel struct {
	slug    string
	guide   models.Guide
	loading bool
	spinner spinner.Model
}

func newPreviewModel() previewModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return previewModel{spinner: s}
}

func (m previewModel) View() string {
	if m.loading {
		return renderPage("Guest preview", m.spinner.View()+" Loading...", "esc: back")
	}

	var b strings.Builder
	if m.guide.Property.Address != "" {
		b.WriteString(helpStyle.Render(m.guide.Property.Address) + "\n\n")
	}

	for _, group := range models.GroupSections(m.guide.Sections) {
		b.WriteString(titleStyle.Render(group.Info.Icon+" "+group.Info.Label) + "\n")
		for _, section := range group.Sections {
			b.WriteString("  • " + section.Title + "\n")
			if section.Content != "" {
				for _, line := range strings.Split(fitText(section.Content, 200), "\n") {
					b.WriteString("      " + line + "\n")
				}
			}
		}
		b.WriteString("\n")
	}

	if len(m.guide.Sections) == 0 {
		b.WriteString("This guide has no sections yet.\n")
	}

	return renderPage("Guest preview: "+m.guide.Property.Name, b.String(), "esc: back │ q: quit")
}
