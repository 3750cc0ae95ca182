package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/staykeeper/staykeeper/models"
)

type dashboardModel struct {
	properties []models.Property
	idx        int
	loading    bool
	fromCache  bool
	spinner    spinner.Model
	status     string
	email      string
}

func newDashboardModel() dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return dashboardModel{spinner: s, loading: true}
}

func (m dashboardModel) current() (models.Property, bool) {
	if len(m.properties) == 0 || m.idx < 0 || m.idx >= len(m.properties) {
		return models.Property{}, false
	}
	return m.properties[m.idx], true
}

func (m dashboardModel) View() string {
	title := "Your properties"
	if m.email != "" {
		title += "  " + helpStyle.Render("("+m.email+")")
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading...\n")
	case len(m.properties) == 0:
		b.WriteString("No properties yet. Press n to add your first one.\n")
	default:
		for i, property := range m.properties {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%s", cursor, fitText(property.Name, 40))
			if property.Address != "" {
				line += helpStyle.Render("  " + fitText(property.Address, 30))
			}
			b.WriteString(line + "\n")
		}
	}

	if m.fromCache {
		b.WriteString("\n" + offlineStyle.Render("offline: showing the last saved copy") + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	help := "enter: open │ n: new │ e: edit │ d: delete │ c: copy guest link │ p: preview │ r: refresh │ l: log out │ q: quit"
	return renderPage(title, b.String(), help)
}
