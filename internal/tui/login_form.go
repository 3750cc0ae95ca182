package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type loginFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginFormModel() loginFormModel {
	email := textinput.New()
	email.Placeholder = "owner@example.com"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginFormModel{inputs: []textinput.Model{email, password}}
}

func (m loginFormModel) email() string    { return strings.TrimSpace(m.inputs[0].Value()) }
func (m loginFormModel) password() string { return m.inputs[1].Value() }

func (m loginFormModel) View() string {
	var b strings.Builder
	b.WriteString("Email    [" + m.inputs[0].View() + "]\n")
	b.WriteString("Password [" + m.inputs[1].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	return renderPage("Sign in", b.String(), "esc: back │ tab: next field │ enter: submit")
}
