// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curllabs/curllabs-client/internal/onboarding"
	"github.com/curllabs/curllabs-client/models"
)

// OnboardingModel walks the user through the hair-profile wizard. Option
// steps are answered by moving the cursor; the location step takes text.
type OnboardingModel struct {
	ctx      context.Context
	profiles onboarding.ProfileUpdater

	wizard   *onboarding.Wizard
	cursor   int
	location textinput.Model

	submitting bool
	errMsg     string
}

// NewOnboardingModel starts the wizard, pre-selecting whatever user already
// has in the profile.
func NewOnboardingModel(ctx context.Context, profiles onboarding.ProfileUpdater, user models.User) *OnboardingModel {
	w := onboarding.New()
	known := map[onboarding.Field]*string{
		onboarding.FieldCurlPattern: user.CurlPattern,
		onboarding.FieldPorosity:    user.Porosity,
		onboarding.FieldDensity:     user.Density,
		onboarding.FieldThickness:   user.Thickness,
		onboarding.FieldScalpType:   user.ScalpType,
		onboarding.FieldLocation:    user.Location,
	}
	for {
		if v := known[w.Step().Field]; v != nil {
			w.Select(*v)
		}
		if w.IsLastStep() || w.Next() != nil {
			break
		}
	}
	for w.Index() > 0 {
		w.Back()
	}

	location := textinput.New()
	location.Placeholder = "City, Country"
	location.Width = 40
	location.CharLimit = 120
	if user.Location != nil {
		location.SetValue(*user.Location)
	}

	m := &OnboardingModel{
		ctx:      ctx,
		profiles: profiles,
		wizard:   w,
		location: location,
	}
	m.syncCursor()
	return m
}

func (m *OnboardingModel) Init() tea.Cmd {
	return nil
}

func (m *OnboardingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(onboardingDoneMsg); ok {
		m.submitting = false
		if done.err != nil {
			m.errMsg = humanizeError(done.err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateLocation(msg)
	}
	if m.submitting {
		return m, nil
	}

	step := m.wizard.Step()
	textStep := len(step.Options) == 0

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.wizard.Back()
		m.errMsg = ""
		m.syncCursor()
		return m, nil
	case textStep && keyMsg.Type == tea.KeyTab:
		return m, m.advance(true)
	case key.Matches(keyMsg, keys.enter):
		return m, m.advance(false)
	case !textStep && key.Matches(keyMsg, keys.up):
		m.cursor = moveCursor(m.cursor, -1, len(step.Options))
		return m, nil
	case !textStep && key.Matches(keyMsg, keys.down):
		m.cursor = moveCursor(m.cursor, 1, len(step.Options))
		return m, nil
	case !textStep && key.Matches(keyMsg, keys.skip):
		if err := m.wizard.Skip(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.syncCursor()
		return m, nil
	}

	return m, m.updateLocation(msg)
}

// advance answers the current step and moves on, or submits on the last
// one. skip leaves the step unanswered.
func (m *OnboardingModel) advance(skip bool) tea.Cmd {
	step := m.wizard.Step()
	if !skip {
		if len(step.Options) == 0 {
			m.wizard.Select(m.location.Value())
		} else {
			m.wizard.Select(step.Options[m.cursor].Value)
		}
	}

	if m.wizard.IsLastStep() {
		m.submitting = true
		m.errMsg = ""
		return m.cmdSubmit()
	}

	var err error
	if skip {
		err = m.wizard.Skip()
	} else {
		err = m.wizard.Next()
	}
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}

	m.errMsg = ""
	m.syncCursor()
	return nil
}

func (m *OnboardingModel) updateLocation(msg tea.Msg) tea.Cmd {
	if len(m.wizard.Step().Options) > 0 {
		return nil
	}
	var cmd tea.Cmd
	m.location, cmd = m.location.Update(msg)
	return cmd
}

// syncCursor points the cursor at the current answer and focuses the text
// input on the location step.
func (m *OnboardingModel) syncCursor() {
	step := m.wizard.Step()
	m.cursor = 0
	for i, opt := range step.Options {
		if opt.Value == m.wizard.Value(step.Field) {
			m.cursor = i
		}
	}

	if len(step.Options) == 0 {
		m.location.Focus()
	} else {
		m.location.Blur()
	}
}

func (m *OnboardingModel) cmdSubmit() tea.Cmd {
	ctx := m.ctx
	w := m.wizard
	profiles := m.profiles

	return func() tea.Msg {
		user, err := w.Submit(ctx, profiles)
		return onboardingDoneMsg{user: user, err: err}
	}
}

func (m *OnboardingModel) View() string {
	step := m.wizard.Step()

	var b strings.Builder
	fmt.Fprintf(&b, "Step %d of %d │ %d%%\n\n", m.wizard.Index()+1, m.wizard.Total(), m.wizard.Progress())
	b.WriteString(sectionStyle.Render(step.Title))
	b.WriteString("\n")
	b.WriteString(step.Prompt)
	b.WriteString("\n\n")

	if len(step.Options) == 0 {
		b.WriteString("[")
		b.WriteString(m.location.View())
		b.WriteString("]\n")
	}
	for i, opt := range step.Options {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		fmt.Fprintf(&b, "%s %-22s %s\n", cursor, opt.Label, helpStyle.Render(opt.Description))
	}

	if m.submitting {
		b.WriteString("\nSaving profile...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(statusLines(m.errMsg, ""))
	}

	return renderPage("YOUR HAIR PROFILE", strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m *OnboardingModel) hotKeys() string {
	parts := []string{"esc: back"}
	switch {
	case len(m.wizard.Step().Options) == 0:
		parts = append(parts, "tab: skip")
	case m.wizard.CanSkip():
		parts = append(parts, "↑/↓: choose", "s: skip")
	default:
		parts = append(parts, "↑/↓: choose")
	}
	if m.wizard.IsLastStep() {
		parts = append(parts, "enter: finish")
	} else {
		parts = append(parts, "enter: next")
	}
	return strings.Join(parts, " │ ")
}
