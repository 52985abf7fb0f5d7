package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 30
	usernameInput.Width = 40
	usernameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	repeatInput := textinput.New()
	repeatInput.Placeholder = "repeat password"
	repeatInput.CharLimit = 256
	repeatInput.Width = 40
	repeatInput.EchoMode = textinput.EchoPassword
	repeatInput.EchoCharacter = '*'

	return registerModel{inputs: []textinput.Model{usernameInput, emailInput, passwordInput, repeatInput}}
}

func (m registerModel) View() string {
	out := titleStyle.Render("Create account") + "\n\n"
	out += "Username: [" + m.inputs[0].View() + "]\n"
	out += "Email:    [" + m.inputs[1].View() + "]\n"
	out += "Password: [" + m.inputs[2].View() + "]\n"
	out += "Repeat:   [" + m.inputs[3].View() + "]\n"

	if m.submitting {
		out += "\nCreating account...\n"
	}

	out += "\n" + helpStyle.Render("esc back  tab next field  enter submit")
	return out
}
