// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// loginModel renders the sign-in form: email, password, and a remember-me
// toggle that decides whether the session survives a restart.
type loginModel struct {
	inputs     []textinput.Model
	focus      int
	remember   bool
	submitting bool
}

const loginRememberRow = 2

func newLoginModel() loginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{emailInput, passwordInput}}
}

// rows is the number of focusable rows: the text inputs plus the toggle.
func (m loginModel) rows() int {
	return len(m.inputs) + 1
}

func (m loginModel) View() string {
	remember := "[ ]"
	if m.remember {
		remember = "[x]"
	}
	rememberCursor := "  "
	if m.focus == loginRememberRow {
		rememberCursor = "> "
	}

	out := titleStyle.Render("Sign in") + "\n\n"
	out += "Email:    [" + m.inputs[0].View() + "]\n"
	out += "Password: [" + m.inputs[1].View() + "]\n"
	out += rememberCursor + remember + " remember me\n"

	if m.submitting {
		out += "\nSigning in...\n"
	}

	out += "\n" + helpStyle.Render("esc back  tab next field  space toggle  enter submit")
	return out
}
