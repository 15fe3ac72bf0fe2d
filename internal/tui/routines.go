// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curllabs/curllabs-client/internal/service"
	"github.com/curllabs/curllabs-client/models"
)

type routinesMode int

const (
	routinesList routinesMode = iota
	routinesDetail
	routinesAdd
	routinesConfirmDelete
)

// splitList splits a comma-separated field, dropping blanks.
var splitList = service.SplitIngredients

// RoutinesModel lists routine templates and their steps.
type RoutinesModel struct {
	ctx      context.Context
	routines service.RoutineService

	items []models.Routine
	idx   int

	mode       routinesMode
	form       form
	submitting bool

	loading bool
	errMsg  string
	status  string
}

func NewRoutinesModel(ctx context.Context, routines service.RoutineService) *RoutinesModel {
	return &RoutinesModel{ctx: ctx, routines: routines}
}

func (m *RoutinesModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *RoutinesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case routinesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.routines
		m.idx = moveCursor(m.idx, 0, len(m.items))
		return m, nil
	case routineSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.mode = routinesList
		m.errMsg = ""
		m.status = "Routine " + msg.routine.Name + " saved"
		return m, m.Init()
	case routineDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Routine deleted"
		return m, m.Init()
	}

	keyMsg, isKey := msg.(tea.KeyMsg)

	switch m.mode {
	case routinesAdd:
		return m.updateForm(msg)
	case routinesConfirmDelete:
		if isKey {
			m.mode = routinesList
			if key.Matches(keyMsg, keys.yes) && m.idx < len(m.items) {
				return m, m.cmdDelete(m.items[m.idx].ID)
			}
		}
		return m, nil
	case routinesDetail:
		if isKey && (key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.enter)) {
			m.mode = routinesList
		}
		return m, nil
	}

	if !isKey {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageHome} }
	case key.Matches(keyMsg, keys.up):
		m.idx = moveCursor(m.idx, -1, len(m.items))
	case key.Matches(keyMsg, keys.down):
		m.idx = moveCursor(m.idx, 1, len(m.items))
	case key.Matches(keyMsg, keys.enter):
		if len(m.items) > 0 {
			m.mode = routinesDetail
		}
	case key.Matches(keyMsg, keys.newItem):
		m.mode = routinesAdd
		m.status = ""
		m.form = newForm(
			fieldSpec{label: "Name", limit: 100},
			fieldSpec{label: "Steps", placeholder: "cleanse, condition, style"},
			fieldSpec{label: "Method tags", placeholder: "comma separated"},
			fieldSpec{label: "Drying", placeholder: "air dry, diffuse..."},
		)
	case key.Matches(keyMsg, keys.delete):
		if len(m.items) > 0 {
			m.mode = routinesConfirmDelete
		}
	}
	return m, nil
}

func (m *RoutinesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.mode = routinesList
			m.errMsg = ""
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			return m, m.cmdCreate(m.routineFromForm())
		}
	}
	return m, m.form.update(msg)
}

// routineFromForm numbers the listed steps in the order they were typed.
func (m *RoutinesModel) routineFromForm() models.RoutineCreate {
	routine := models.RoutineCreate{
		Name:       m.form.value(0),
		IsTemplate: true,
		MethodTags: splitList(m.form.value(2)),
	}
	for i, step := range splitList(m.form.value(1)) {
		routine.Steps = append(routine.Steps, models.RoutineStep{StepType: step, Order: i + 1})
	}
	if drying := m.form.value(3); drying != "" {
		routine.DryingMethod = &drying
	}
	return routine
}

func (m *RoutinesModel) cmdLoad() tea.Cmd {
	ctx, routines := m.ctx, m.routines
	return func() tea.Msg {
		items, err := routines.List(ctx)
		return routinesLoadedMsg{routines: items, err: err}
	}
}

func (m *RoutinesModel) cmdCreate(routine models.RoutineCreate) tea.Cmd {
	ctx, routines := m.ctx, m.routines
	return func() tea.Msg {
		created, err := routines.Create(ctx, routine)
		return routineSavedMsg{routine: created, err: err}
	}
}

func (m *RoutinesModel) cmdDelete(id int64) tea.Cmd {
	ctx, routines := m.ctx, m.routines
	return func() tea.Msg {
		return routineDeletedMsg{err: routines.Delete(ctx, id)}
	}
}

func (m *RoutinesModel) View() string {
	switch m.mode {
	case routinesAdd:
		out := m.form.view("Save", m.submitting)
		if m.errMsg != "" {
			out += "\n" + statusLines(m.errMsg, "")
		}
		return renderPage("NEW ROUTINE", strings.TrimRight(out, "\n"), "esc: cancel │ tab: next field │ enter: save")
	case routinesDetail:
		return renderPage("ROUTINE", strings.TrimRight(renderRoutine(m.items[m.idx]), "\n"), "esc: back")
	case routinesConfirmDelete:
		return renderPage("ROUTINES", confirmModel{message: m.items[m.idx].Name}.View(), "y: delete │ n: keep")
	}

	const hotKeys = "enter: open │ a: add │ ctrl+d: delete │ ↑/↓: navigate │ esc: back"

	var b strings.Builder
	b.WriteString(statusLines(m.errMsg, m.status))

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString("Loading routines...")
	case len(m.items) == 0:
		b.WriteString("No routines yet")
	default:
		b.WriteString("ID   │ Name                     │ Steps │ Drying\n")
		b.WriteString("─────┼──────────────────────────┼───────┼────────────────\n")
		for i, r := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			fmt.Fprintf(&b, "%s %-3d│ %-24s │ %5d │ %s\n", cursor, i+1, fitText(r.Name, 24), len(r.Steps), valueOrDash(r.DryingMethod))
		}
	}

	return renderPage("ROUTINES", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func renderRoutine(r models.Routine) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name:    %s\n", r.Name)
	fmt.Fprintf(&b, "Drying:  %s\n", valueOrDash(r.DryingMethod))
	if len(r.MethodTags) > 0 {
		fmt.Fprintf(&b, "Methods: %s\n", strings.Join(r.MethodTags, ", "))
	}
	b.WriteString("\nSteps:\n")
	if len(r.Steps) == 0 {
		b.WriteString("  -\n")
	}
	for i, step := range r.Steps {
		fmt.Fprintf(&b, "  %d. %s", i+1, step.StepType)
		if step.ProductID != nil {
			fmt.Fprintf(&b, " (product #%d)", *step.ProductID)
		}
		if step.Notes != "" {
			fmt.Fprintf(&b, " │ %s", step.Notes)
		}
		b.WriteString("\n")
	}
	return b.String()
}
