package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// configNoticeModel is shown instead of the regular UI when the client is
// missing a required connection parameter (the server endpoint or the public
// API key). It explains how to supply them and exits on any key.
type configNoticeModel struct {
	reason string
}

func (m configNoticeModel) Init() tea.Cmd { return nil }

func (m configNoticeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, tea.Quit
	}
	return m, nil
}

func (m configNoticeModel) View() string {
	body := "The client is not configured yet.\n\n"
	if m.reason != "" {
		body += helpStyle.Render(m.reason) + "\n\n"
	}
	body += "Point it at your StayKeeper server with one of:\n\n"
	body += "  env      CLIENT_ENDPOINT_URL=http://host:port  CLIENT_API_KEY=key\n"
	body += "  flag     -endpoint http://host:port  -api-key key\n"
	body += "  json     {\"client\": {\"endpoint_url\": \"...\", \"api_key\": \"...\"}}  (-config file.json)\n"
	return appStyle.Render(renderPage("StayKeeper is not configured", body, "press any key to exit"))
}

// ShowConfigNotice runs the configuration help screen. It is used when the
// regular UI cannot start because the endpoint or API key is missing.
func ShowConfigNotice(reason error) error {
	message := ""
	if reason != nil {
		message = reason.Error()
	}

	_, err := tea.NewProgram(configNoticeModel{reason: message}).Run()
	return err
}
