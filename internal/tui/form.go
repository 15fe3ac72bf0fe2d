// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fieldSpec configures one input of a [form].
type fieldSpec struct {
	label       string
	placeholder string
	value       string
	secret      bool
	limit       int
}

// form is a column of labelled text inputs with tab focus, shared by every
// page that edits a record.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(specs ...fieldSpec) form {
	f := form{
		labels: make([]string, len(specs)),
		inputs: make([]textinput.Model, len(specs)),
	}

	for i, fs := range specs {
		in := textinput.New()
		in.Placeholder = fs.placeholder
		in.Width = 40
		if fs.limit > 0 {
			in.CharLimit = fs.limit
		}
		if fs.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		in.SetValue(fs.value)

		f.labels[i] = fs.label
		f.inputs[i] = in
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

// value returns the trimmed content of input i. Secret inputs are returned
// as typed.
func (f *form) value(i int) string {
	if f.inputs[i].EchoMode == textinput.EchoPassword {
		return f.inputs[i].Value()
	}
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// update moves focus on tab and shift+tab (or the arrows) and forwards everything else to
// the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			f.focusNext()
			return nil
		case key.Matches(keyMsg, keys.backtab):
			f.focusPrev()
			return nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// view renders the inputs as a two-column table followed by the action row.
func (f *form) view(action string, submitting bool) string {
	width := lipgloss.Width("Field")
	for _, l := range f.labels {
		width = max(width, lipgloss.Width(l))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s │ Value\n", width, "Field")
	b.WriteString(strings.Repeat("─", width))
	b.WriteString("─┼────────────────────────────────────────────\n")
	for i, in := range f.inputs {
		fmt.Fprintf(&b, "%-*s │ [%s]\n", width, f.labels[i], in.View())
	}

	if submitting {
		fmt.Fprintf(&b, "\n[%s...]\n", action)
	} else {
		fmt.Fprintf(&b, "\n[%s]\n", action)
	}
	return b.String()
}
