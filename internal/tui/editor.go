package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/staykeeper/staykeeper/models"
)

// editorModel renders one property's manual as four fixed category tabs.
// The section working copy itself lives in the editor service; this model
// only holds cursor and presentation state.
type editorModel struct {
	property  models.Property
	tabs      []models.CategoryInfo
	tab       int
	sections  []models.Section
	idx       int
	loading   bool
	fromCache bool
	spinner   spinner.Model
	status    string
}

func newEditorModel() editorModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return editorModel{tabs: models.Categories(), spinner: s}
}

func (m editorModel) activeCategory() models.Category {
	return m.tabs[m.tab].ID
}

// setSections replaces the rendered sections with the slice filtered for the
// active tab and clamps the cursor.
func (m *editorModel) setSections(all []models.Section) {
	m.sections = models.FilterByCategory(all, m.activeCategory())
	if m.idx >= len(m.sections) {
		m.idx = len(m.sections) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// removeSection drops one section from the rendered slice without touching
// the working copy. Used for the optimistic delete.
func (m *editorModel) removeSection(sectionID int64) {
	kept := m.sections[:0:0]
	for _, section := range m.sections {
		if section.ID != sectionID {
			kept = append(kept, section)
		}
	}
	m.sections = kept
	if m.idx >= len(m.sections) {
		m.idx = len(m.sections) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m editorModel) current() (models.Section, bool) {
	if len(m.sections) == 0 || m.idx < 0 || m.idx >= len(m.sections) {
		return models.Section{}, false
	}
	return m.sections[m.idx], true
}

func (m editorModel) View() string {
	var b strings.Builder

	var tabs []string
	for i, info := range m.tabs {
		label := info.Icon + " " + info.Label
		if i == m.tab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, "   "))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading...\n")
	case len(m.sections) == 0:
		b.WriteString("No sections under this tab yet. Press n to add one.\n")
	default:
		for i, section := range m.sections {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s\n", cursor, fitText(section.Title, 50)))
		}
	}

	if m.fromCache {
		b.WriteString("\n" + offlineStyle.Render("offline: showing the last saved copy") + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	help := "←/→: switch tab │ n: new │ e: edit │ d: delete │ esc: back │ q: quit"
	return renderPage(fitText(m.property.Name, 50), b.String(), help)
}
