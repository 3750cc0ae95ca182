package tui

import (
	"github.com/staykeeper/staykeeper/models"
)

type sessionRestoredMsg struct {
	session models.Session
	err     error
}

type authDoneMsg struct {
	session models.Session
	err     error
}

type loggedOutMsg struct {
	err error
}

type propertiesLoadedMsg struct {
	properties []models.Property
	fromCache  bool
	err        error
}

type propertySavedMsg struct {
	err error
}

type propertyDeletedMsg struct {
	err error
}

type sectionsLoadedMsg struct {
	fromCache bool
	err       error
}

type sectionSavedMsg struct {
	err error
}

type sectionDeletedMsg struct {
	err error
}

type guideLoadedMsg struct {
	guide models.Guide
	err   error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
