// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curllabs/curllabs-client/internal/onboarding"
	"github.com/curllabs/curllabs-client/internal/service"
	"github.com/curllabs/curllabs-client/models"
)

// ProfileModel shows the account and hair profile and edits both in one
// form. Fields left empty are not changed.
type ProfileModel struct {
	ctx      context.Context
	profiles service.ProfileService

	user    models.User
	loaded  bool
	editing bool
	form    form

	submitting bool
	loading    bool
	errMsg     string
	status     string
}

func NewProfileModel(ctx context.Context, profiles service.ProfileService) *ProfileModel {
	return &ProfileModel{ctx: ctx, profiles: profiles}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.loading = true
	ctx, profiles := m.ctx, m.profiles
	return func() tea.Msg {
		user, err := profiles.Get(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.user = msg.user
		m.loaded = true
		return m, nil
	case profileSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.editing = false
		m.errMsg = ""
		m.user = msg.user
		m.status = "Profile saved"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if m.editing {
		if ok {
			switch {
			case key.Matches(keyMsg, keys.esc):
				m.editing = false
				m.errMsg = ""
				return m, nil
			case key.Matches(keyMsg, keys.enter):
				if m.submitting {
					return m, nil
				}
				m.submitting = true
				return m, m.cmdSave(m.updateFromForm())
			}
		}
		return m, m.form.update(msg)
	}
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageHome} }
	case key.Matches(keyMsg, keys.edit):
		if m.loaded {
			m.startEdit()
		}
	}
	return m, nil
}

func (m *ProfileModel) startEdit() {
	u := m.user
	m.editing = true
	m.status = ""
	m.form = newForm(
		fieldSpec{label: "Email", value: u.Email, limit: 254},
		fieldSpec{label: "Curl pattern", placeholder: optionValues(onboarding.CurlPatterns), value: valueOrEmpty(u.CurlPattern)},
		fieldSpec{label: "Porosity", placeholder: optionValues(onboarding.Porosities), value: valueOrEmpty(u.Porosity)},
		fieldSpec{label: "Density", placeholder: optionValues(onboarding.Densities), value: valueOrEmpty(u.Density)},
		fieldSpec{label: "Thickness", placeholder: optionValues(onboarding.Thicknesses), value: valueOrEmpty(u.Thickness)},
		fieldSpec{label: "Scalp", placeholder: optionValues(onboarding.ScalpTypes), value: valueOrEmpty(u.ScalpType)},
		fieldSpec{label: "Location", placeholder: "City, Country", value: valueOrEmpty(u.Location)},
	)
}

// updateFromForm sends the email only when it changed.
func (m *ProfileModel) updateFromForm() models.UserUpdate {
	update := models.UserUpdate{
		UserProfile: models.UserProfile{
			CurlPattern: optionalText(m.form.value(1)),
			Porosity:    optionalText(m.form.value(2)),
			Density:     optionalText(m.form.value(3)),
			Thickness:   optionalText(m.form.value(4)),
			ScalpType:   optionalText(m.form.value(5)),
			Location:    optionalText(m.form.value(6)),
		},
	}
	if email := m.form.value(0); email != "" && email != m.user.Email {
		update.Email = &email
	}
	return update
}

func (m *ProfileModel) cmdSave(update models.UserUpdate) tea.Cmd {
	ctx, profiles := m.ctx, m.profiles
	return func() tea.Msg {
		user, err := profiles.UpdateAccount(ctx, update)
		return profileSavedMsg{user: user, err: err}
	}
}

func (m *ProfileModel) View() string {
	if m.editing {
		out := m.form.view("Save", m.submitting)
		if m.errMsg != "" {
			out += "\n" + statusLines(m.errMsg, "")
		}
		return renderPage("EDIT PROFILE", strings.TrimRight(out, "\n"), "esc: cancel │ tab: next field │ enter: save")
	}

	var b strings.Builder
	b.WriteString(statusLines(m.errMsg, m.status))

	if !m.loaded {
		if m.loading {
			b.WriteString("Loading profile...")
		}
		return renderPage("HAIR PROFILE", b.String(), "esc: back")
	}

	u := m.user
	rows := [][2]string{
		{"Email", u.Email},
		{"Curl pattern", valueOrDash(u.CurlPattern)},
		{"Porosity", valueOrDash(u.Porosity)},
		{"Density", valueOrDash(u.Density)},
		{"Thickness", valueOrDash(u.Thickness)},
		{"Scalp", valueOrDash(u.ScalpType)},
		{"Location", valueOrDash(u.Location)},
		{"Member since", u.CreatedAt.Format(models.DateLayout)},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "%-12s │ %s\n", row[0], row[1])
	}

	return renderPage("HAIR PROFILE", strings.TrimRight(b.String(), "\n"), "e: edit │ esc: back")
}

func optionValues(options []onboarding.Option) string {
	values := make([]string, len(options))
	for i, o := range options {
		values[i] = o.Value
	}
	return strings.Join(values, "/")
}
