package tui

import "github.com/charmbracelet/bubbles/spinner"

// loadingModel is shown while the persisted session is being restored.
// No identity-dependent content may render before restore settles.
type loadingModel struct {
	spinner spinner.Model
}

func newLoadingModel() loadingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return loadingModel{spinner: s}
}

func (m loadingModel) View() string {
	return renderPage("StayKeeper", m.spinner.View()+" Restoring your session...", "")
}
