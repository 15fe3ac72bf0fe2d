// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curllabs/curllabs-client/internal/service"
	"github.com/curllabs/curllabs-client/models"
)

const minPasswordLength = 8

// RegisterModel is the Bubble Tea model for the sign-up screen. It renders
// email, password and password confirmation inputs. A new account is signed
// in right away, so success is reported with a [LoginResult].
type RegisterModel struct {
	ctx  context.Context
	auth service.AuthService

	form       form
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.AuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(
			fieldSpec{label: "Email", placeholder: "you@example.com", limit: 254},
			fieldSpec{label: "Password", placeholder: "at least 8 characters", secret: true, limit: 256},
			fieldSpec{label: "Repeat", placeholder: "repeat password", secret: true, limit: 256},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. enter checks that every field is set and
// the passwords match before dispatching the async registration.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			if errMsg := m.check(); errMsg != "" {
				m.errMsg = errMsg
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(m.form.value(0), m.form.value(1))
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) check() string {
	email, pass, repeat := m.form.value(0), m.form.value(1), m.form.value(2)
	switch {
	case email == "" || pass == "":
		return "Email and password are required"
	case len(pass) < minPasswordLength:
		return "Password must be at least 8 characters"
	case pass != repeat:
		return "Passwords do not match"
	}
	return ""
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view("Create account", m.submitting))
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(statusLines(m.errMsg, ""))
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(email, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Register(ctx, models.SignUp{Email: email, Password: pass})
		return LoginResult{User: user, Err: err}
	}
}
