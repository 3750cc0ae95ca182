package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type registerFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterFormModel() registerFormModel {
	email := textinput.New()
	email.Placeholder = "owner@example.com"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "at least 8 characters"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	repeat := textinput.New()
	repeat.Placeholder = "repeat password"
	repeat.CharLimit = 256
	repeat.Width = 40
	repeat.EchoMode = textinput.EchoPassword
	repeat.EchoCharacter = '*'

	return registerFormModel{inputs: []textinput.Model{email, password, repeat}}
}

func (m registerFormModel) email() string    { return strings.TrimSpace(m.inputs[0].Value()) }
func (m registerFormModel) password() string { return m.inputs[1].Value() }
func (m registerFormModel) repeat() string   { return m.inputs[2].Value() }

func (m registerFormModel) View() string {
	var b strings.Builder
	b.WriteString("Email           [" + m.inputs[0].View() + "]\n")
	b.WriteString("Password        [" + m.inputs[1].View() + "]\n")
	b.WriteString("Repeat password [" + m.inputs[2].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	return renderPage("Create an account", b.String(), "esc: back │ tab: next field │ enter: submit")
}
