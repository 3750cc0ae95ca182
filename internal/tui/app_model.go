package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/staykeeper/staykeeper/internal/service"
	"github.com/staykeeper/staykeeper/models"
)

type screen int

const (
	screenLoading screen = iota
	screenWelcome
	screenLogin
	screenRegister
	screenDashboard
	screenPropertyForm
	screenEditor
	screenSectionForm
	screenPreview
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	currentScreen screen

	loadingScreen loadingModel
	welcome       welcomeModel
	login         loginFormModel
	register      registerFormModel
	dashboard     dashboardModel
	propertyForm  propertyFormModel
	editor        editorModel
	sectionForm   sectionFormModel
	preview       previewModel

	err          error
	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel

	pendingDeleteProperty int64
	pendingDeleteSection  int64
}

func newAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		currentScreen: screenLoading,
		loadingScreen: newLoadingModel(),
		welcome:       newWelcomeModel(),
		login:         newLoginFormModel(),
		register:      newRegisterFormModel(),
		dashboard:     newDashboardModel(),
		editor:        newEditorModel(),
		preview:       newPreviewModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.loadingScreen.spinner.Tick, m.cmdRestoreSession())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case sessionRestoredMsg:
		return m.onSessionRestored(msg)
	case authDoneMsg:
		return m.onAuthDone(msg)
	case loggedOutMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenWelcome
		m.dashboard = newDashboardModel()
		return m, nil
	case propertiesLoadedMsg:
		return m.onPropertiesLoaded(msg)
	case propertySavedMsg:
		m.propertyForm.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenDashboard
		m.dashboard.loading = true
		return m, tea.Batch(m.dashboard.spinner.Tick, m.cmdLoadProperties())
	case propertyDeletedMsg:
		m.pendingDeleteProperty = 0
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.dashboard.loading = true
		return m, tea.Batch(m.dashboard.spinner.Tick, m.cmdLoadProperties())
	case sectionsLoadedMsg:
		return m.onSectionsLoaded(msg)
	case sectionSavedMsg:
		m.sectionForm.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenEditor
		m.editor.setSections(m.services.EditorService.Sections())
		return m, nil
	case sectionDeletedMsg:
		m.pendingDeleteSection = 0
		// resync from the working copy: on failure the service has restored
		// the deleted section, on success nothing changes visually
		m.editor.setSections(m.services.EditorService.Sections())
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		return m, nil
	case guideLoadedMsg:
		m.preview.loading = false
		if msg.err != nil {
			m.currentScreen = screenDashboard
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.preview.guide = msg.guide
		return m, nil
	case copiedMsg:
		m.dashboard.status = "Guest link copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.dashboard.status = ""
		m.editor.status = ""
		return m, nil
	case spinner.TickMsg:
		return m.updateSpinners(msg)
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLoading:
		return m, nil
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenPropertyForm:
		return m.updatePropertyForm(msg)
	case screenEditor:
		return m.updateEditor(msg)
	case screenSectionForm:
		return m.updateSectionForm(msg)
	case screenPreview:
		return m.updatePreview(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenLoading:
		body = m.loadingScreen.View()
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenDashboard:
		body = m.dashboard.View()
	case screenPropertyForm:
		body = m.propertyForm.View()
	case screenEditor:
		body = m.editor.View()
	case screenSectionForm:
		body = m.sectionForm.View()
	case screenPreview:
		body = m.preview.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// ─── message handlers ───

func (m appModel) onSessionRestored(msg sessionRestoredMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.currentScreen = screenWelcome
		if !errors.Is(msg.err, service.ErrNoActiveSession) {
			m.showErrorf(humanizeError(msg.err))
		}
		return m, nil
	}

	m.currentScreen = screenDashboard
	m.dashboard.email = msg.session.Email
	m.dashboard.loading = true
	return m, tea.Batch(m.dashboard.spinner.Tick, m.cmdLoadProperties())
}

func (m appModel) onAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	m.login.submitting = false
	m.register.submitting = false
	if msg.err != nil {
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	}

	m.currentScreen = screenDashboard
	m.dashboard.email = msg.session.Email
	m.dashboard.loading = true
	return m, tea.Batch(m.dashboard.spinner.Tick, m.cmdLoadProperties())
}

func (m appModel) onPropertiesLoaded(msg propertiesLoadedMsg) (tea.Model, tea.Cmd) {
	m.dashboard.loading = false
	if msg.err != nil {
		if errors.Is(msg.err, service.ErrTokenIsExpiredOrInvalid) {
			m.currentScreen = screenWelcome
			m.dashboard = newDashboardModel()
		}
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	}

	m.dashboard.properties = msg.properties
	m.dashboard.fromCache = msg.fromCache
	if m.dashboard.idx >= len(m.dashboard.properties) {
		m.dashboard.idx = len(m.dashboard.properties) - 1
	}
	if m.dashboard.idx < 0 {
		m.dashboard.idx = 0
	}
	return m, nil
}

func (m appModel) onSectionsLoaded(msg sectionsLoadedMsg) (tea.Model, tea.Cmd) {
	m.editor.loading = false
	if msg.err != nil {
		m.currentScreen = screenDashboard
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	}

	m.editor.fromCache = msg.fromCache
	m.editor.setSections(m.services.EditorService.Sections())
	return m, nil
}

func (m appModel) updateSpinners(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.currentScreen == screenLoading:
		m.loadingScreen.spinner, cmd = m.loadingScreen.spinner.Update(msg)
	case m.dashboard.loading:
		m.dashboard.spinner, cmd = m.dashboard.spinner.Update(msg)
	case m.editor.loading:
		m.editor.spinner, cmd = m.editor.spinner.Update(msg)
	case m.preview.loading:
		m.preview.spinner, cmd = m.preview.spinner.Update(msg)
	}
	return m, cmd
}

// ─── per-screen key handling ───

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		if m.pendingDeleteSection != 0 {
			// optimistic removal: drop the row immediately, the service
			// restores the working copy if the server says no
			sectionID := m.pendingDeleteSection
			m.editor.removeSection(sectionID)
			return m, m.cmdDeleteSection(sectionID)
		}
		if m.pendingDeleteProperty != 0 {
			return m, m.cmdDeleteProperty(m.pendingDeleteProperty)
		}
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDeleteProperty = 0
		m.pendingDeleteSection = 0
	}
	return m, nil
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.login = newLoginFormModel()
			m.currentScreen = screenLogin
		} else {
			m.register = newRegisterFormModel()
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.inputs, m.login.focus = focusNext(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.inputs, m.login.focus = focusPrev(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			if m.login.email() == "" || m.login.password() == "" {
				m.showErrorf("Email and password are required.")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(m.login.email(), m.login.password())
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.inputs, m.register.focus = focusNext(m.register.inputs, m.register.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.inputs, m.register.focus = focusPrev(m.register.inputs, m.register.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			if m.register.email() == "" || m.register.password() == "" {
				m.showErrorf("Email and password are required.")
				return m, nil
			}
			if m.register.password() != m.register.repeat() {
				m.showErrorf("Passwords do not match.")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(m.register.email(), m.register.password())
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.dashboard.idx > 0 {
			m.dashboard.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.dashboard.idx < len(m.dashboard.properties)-1 {
			m.dashboard.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		property, ok := m.dashboard.current()
		if !ok {
			return m, nil
		}
		m.editor = newEditorModel()
		m.editor.property = property
		m.editor.loading = true
		m.currentScreen = screenEditor
		return m, tea.Batch(m.editor.spinner.Tick, m.cmdLoadSections(property.ID))
	case key.Matches(keyMsg, keys.newItem):
		m.propertyForm = newPropertyFormModel(nil)
		m.currentScreen = screenPropertyForm
	case key.Matches(keyMsg, keys.edit):
		property, ok := m.dashboard.current()
		if !ok {
			return m, nil
		}
		m.propertyForm = newPropertyFormModel(&property)
		m.currentScreen = screenPropertyForm
	case key.Matches(keyMsg, keys.delete):
		property, ok := m.dashboard.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = property.Name
		m.pendingDeleteProperty = property.ID
	case key.Matches(keyMsg, keys.copyLink):
		property, ok := m.dashboard.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdCopyGuestLink(property)
	case key.Matches(keyMsg, keys.preview):
		property, ok := m.dashboard.current()
		if !ok {
			return m, nil
		}
		m.preview = newPreviewModel()
		m.preview.slug = property.Slug
		m.preview.loading = true
		m.currentScreen = screenPreview
		return m, tea.Batch(m.preview.spinner.Tick, m.cmdResolveGuide(property.Slug))
	case key.Matches(keyMsg, keys.refresh):
		if m.dashboard.loading {
			return m, nil
		}
		m.dashboard.loading = true
		return m, tea.Batch(m.dashboard.spinner.Tick, m.cmdLoadProperties())
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updatePropertyForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenDashboard
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.propertyForm.inputs, m.propertyForm.focus = focusNext(m.propertyForm.inputs, m.propertyForm.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.propertyForm.inputs, m.propertyForm.focus = focusPrev(m.propertyForm.inputs, m.propertyForm.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.propertyForm.submitting {
				return m, nil
			}
			if m.propertyForm.name() == "" {
				m.showErrorf("The property needs a name.")
				return m, nil
			}
			m.propertyForm.submitting = true
			if m.propertyForm.editing {
				return m, m.cmdUpdateProperty(m.propertyForm.propertyID, m.propertyForm.patch())
			}
			return m, m.cmdCreateProperty(m.propertyForm.name(), m.propertyForm.address(), m.propertyForm.coverImage())
		}
	}

	var cmd tea.Cmd
	m.propertyForm.inputs[m.propertyForm.focus], cmd = m.propertyForm.inputs[m.propertyForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDashboard
		return m, nil
	case key.Matches(keyMsg, keys.left):
		if m.editor.tab > 0 {
			m.editor.tab--
			m.editor.idx = 0
			m.editor.setSections(m.services.EditorService.Sections())
		}
	case key.Matches(keyMsg, keys.right):
		if m.editor.tab < len(m.editor.tabs)-1 {
			m.editor.tab++
			m.editor.idx = 0
			m.editor.setSections(m.services.EditorService.Sections())
		}
	case key.Matches(keyMsg, keys.up):
		if m.editor.idx > 0 {
			m.editor.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.editor.idx < len(m.editor.sections)-1 {
			m.editor.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.sectionForm = newSectionFormModel(m.editor.activeCategory(), nil)
		m.currentScreen = screenSectionForm
	case key.Matches(keyMsg, keys.edit):
		section, ok := m.editor.current()
		if !ok {
			return m, nil
		}
		m.sectionForm = newSectionFormModel(section.Category, &section)
		m.currentScreen = screenSectionForm
	case key.Matches(keyMsg, keys.delete):
		section, ok := m.editor.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = section.Title
		m.pendingDeleteSection = section.ID
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateSectionForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenEditor
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.sectionForm.inputs, m.sectionForm.focus = focusNext(m.sectionForm.inputs, m.sectionForm.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.sectionForm.inputs, m.sectionForm.focus = focusPrev(m.sectionForm.inputs, m.sectionForm.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.sectionForm.submitting {
				return m, nil
			}
			if m.sectionForm.title() == "" {
				m.showErrorf("The section needs a title.")
				return m, nil
			}
			m.sectionForm.submitting = true
			return m, m.cmdSaveSection(m.sectionForm.sectionID, m.sectionForm.toPayload())
		}
	}

	var cmd tea.Cmd
	m.sectionForm.inputs[m.sectionForm.focus], cmd = m.sectionForm.inputs[m.sectionForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updatePreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDashboard
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

// ─── commands ───

func (m appModel) cmdRestoreSession() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.RestoreSession(ctx)
		return sessionRestoredMsg{session: session, err: err}
	}
}

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Login(ctx, email, password)
		return authDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdRegister(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Register(ctx, email, password)
		return authDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func (m appModel) cmdLoadProperties() tea.Cmd {
	ctx := m.ctx
	dashboard := m.services.DashboardService
	return func() tea.Msg {
		properties, fromCache, err := dashboard.Properties(ctx)
		return propertiesLoadedMsg{properties: properties, fromCache: fromCache, err: err}
	}
}

func (m appModel) cmdCreateProperty(name, address, coverImage string) tea.Cmd {
	ctx := m.ctx
	dashboard := m.services.DashboardService
	return func() tea.Msg {
		_, err := dashboard.CreateProperty(ctx, name, address, coverImage)
		return propertySavedMsg{err: err}
	}
}

func (m appModel) cmdUpdateProperty(propertyID int64, patch models.PropertyPatch) tea.Cmd {
	ctx := m.ctx
	dashboard := m.services.DashboardService
	return func() tea.Msg {
		_, err := dashboard.UpdateProperty(ctx, propertyID, patch)
		return propertySavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteProperty(propertyID int64) tea.Cmd {
	ctx := m.ctx
	dashboard := m.services.DashboardService
	return func() tea.Msg {
		return propertyDeletedMsg{err: dashboard.DeleteProperty(ctx, propertyID)}
	}
}

func (m appModel) cmdLoadSections(propertyID int64) tea.Cmd {
	ctx := m.ctx
	editor := m.services.EditorService
	return func() tea.Msg {
		_, fromCache, err := editor.Load(ctx, propertyID)
		return sectionsLoadedMsg{fromCache: fromCache, err: err}
	}
}

func (m appModel) cmdSaveSection(sectionID int64, payload models.SectionPayload) tea.Cmd {
	ctx := m.ctx
	editor := m.services.EditorService
	return func() tea.Msg {
		_, err := editor.SaveSection(ctx, sectionID, payload)
		return sectionSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteSection(sectionID int64) tea.Cmd {
	ctx := m.ctx
	editor := m.services.EditorService
	return func() tea.Msg {
		return sectionDeletedMsg{err: editor.DeleteSection(ctx, sectionID)}
	}
}

func (m appModel) cmdResolveGuide(slug string) tea.Cmd {
	ctx := m.ctx
	editor := m.services.EditorService
	return func() tea.Msg {
		guide, err := editor.ResolveGuide(ctx, slug)
		return guideLoadedMsg{guide: guide, err: err}
	}
}

func (m appModel) cmdCopyGuestLink(property models.Property) tea.Cmd {
	link := m.services.DashboardService.GuestLink(property)
	return func() tea.Msg {
		if err := clipboard.WriteAll(link); err != nil {
			return sectionSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
