// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curllabs/curllabs-client/internal/service"
	"github.com/curllabs/curllabs-client/models"
)

type logsMode int

const (
	logsList logsMode = iota
	logsQuickLog
	logsRate
	logsConfirmDelete
)

const recentLogs = 30

// LogsModel lists recent routine logs, records a quick log for today and
// rates how a logged day turned out.
type LogsModel struct {
	ctx  context.Context
	logs service.RoutineLogService
	now  func() time.Time

	items []models.RoutineLog
	idx   int

	mode       logsMode
	form       form
	submitting bool

	loading bool
	errMsg  string
	status  string
}

func NewLogsModel(ctx context.Context, logs service.RoutineLogService) *LogsModel {
	return &LogsModel{ctx: ctx, logs: logs, now: time.Now}
}

func (m *LogsModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *LogsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case logsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.logs
		m.idx = moveCursor(m.idx, 0, len(m.items))
		return m, nil
	case logSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.mode = logsList
		m.errMsg = ""
		m.status = "Logged " + msg.log.Date.String()
		return m, m.Init()
	case logDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Log deleted"
		return m, m.Init()
	case outcomeSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.mode = logsList
		m.errMsg = ""
		m.status = fmt.Sprintf("Rated %.1f out of %d", msg.outcome.OverallScore, models.MaxRating)
		return m, nil
	}

	switch m.mode {
	case logsQuickLog, logsRate:
		return m.updateForm(msg)
	case logsConfirmDelete:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			m.mode = logsList
			if key.Matches(keyMsg, keys.yes) && m.idx < len(m.items) {
				return m, m.cmdDelete(m.items[m.idx].ID)
			}
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageHome} }
	case key.Matches(keyMsg, keys.up):
		m.idx = moveCursor(m.idx, -1, len(m.items))
	case key.Matches(keyMsg, keys.down):
		m.idx = moveCursor(m.idx, 1, len(m.items))
	case key.Matches(keyMsg, keys.newItem):
		m.startQuickLog()
	case key.Matches(keyMsg, keys.rate):
		if len(m.items) == 0 {
			m.status = errNothingSelected.Error()
			return m, nil
		}
		m.startRate()
	case key.Matches(keyMsg, keys.delete):
		if len(m.items) > 0 {
			m.mode = logsConfirmDelete
		}
	}
	return m, nil
}

func (m *LogsModel) startQuickLog() {
	m.mode = logsQuickLog
	m.status = ""
	m.errMsg = ""
	m.form = newForm(
		fieldSpec{label: "Routine ID", placeholder: "optional"},
		fieldSpec{label: "Wash day", placeholder: "y/n", value: "y", limit: 1},
		fieldSpec{label: "Styling", placeholder: "optional"},
		fieldSpec{label: "Drying", placeholder: "optional"},
		fieldSpec{label: "Minutes", placeholder: "optional"},
		fieldSpec{label: "Notes"},
	)
}

func (m *LogsModel) startRate() {
	m.mode = logsRate
	m.status = ""
	m.errMsg = ""
	m.form = newForm(
		fieldSpec{label: "Frizz", placeholder: "1 (none) .. 5", limit: 1},
		fieldSpec{label: "Definition", placeholder: "1 .. 5", limit: 1},
		fieldSpec{label: "Softness", placeholder: "1 .. 5", limit: 1},
		fieldSpec{label: "Hold hours", placeholder: "optional"},
		fieldSpec{label: "Notes"},
	)
}

func (m *LogsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.mode = logsList
			m.errMsg = ""
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			if m.mode == logsRate {
				outcome, err := m.outcomeFromForm()
				if err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
				m.submitting = true
				return m, m.cmdRate(outcome)
			}

			entry, err := m.logFromForm()
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.submitting = true
			return m, m.cmdCreate(entry)
		}
	}
	return m, m.form.update(msg)
}

func (m *LogsModel) logFromForm() (models.RoutineLogCreate, error) {
	entry := models.RoutineLogCreate{
		Date:          models.NewDate(m.now()),
		WashDay:       strings.EqualFold(m.form.value(1), "y"),
		StylingMethod: optionalText(m.form.value(2)),
		DryingMethod:  optionalText(m.form.value(3)),
		Notes:         optionalText(m.form.value(5)),
	}

	if v := m.form.value(0); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return models.RoutineLogCreate{}, errors.New("routine id must be a positive number")
		}
		entry.RoutineID = &id
	}
	if v := m.form.value(4); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			return models.RoutineLogCreate{}, errors.New("minutes must be a number")
		}
		entry.TimeSpent = &minutes
	}
	return entry, nil
}

// outcomeFromForm parses the ratings. Range checks are left to the service.
func (m *LogsModel) outcomeFromForm() (models.OutcomeCreate, error) {
	outcome := models.OutcomeCreate{
		RoutineLogID: m.items[m.idx].ID,
		Notes:        optionalText(m.form.value(4)),
	}

	ratings := []*int{&outcome.Frizz, &outcome.Definition, &outcome.Softness}
	for i, dst := range ratings {
		v, err := strconv.Atoi(m.form.value(i))
		if err != nil {
			return models.OutcomeCreate{}, fmt.Errorf("%s must be a number from %d to %d",
				strings.ToLower(m.form.labels[i]), models.MinRating, models.MaxRating)
		}
		*dst = v
	}

	if v := m.form.value(3); v != "" {
		hours, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return models.OutcomeCreate{}, errors.New("hold hours must be a number")
		}
		outcome.HoldHours = &hours
	}
	return outcome, nil
}

func (m *LogsModel) cmdLoad() tea.Cmd {
	ctx, logs := m.ctx, m.logs
	return func() tea.Msg {
		items, err := logs.List(ctx, models.RoutineLogFilter{Limit: recentLogs})
		return logsLoadedMsg{logs: items, err: err}
	}
}

func (m *LogsModel) cmdCreate(entry models.RoutineLogCreate) tea.Cmd {
	ctx, logs := m.ctx, m.logs
	return func() tea.Msg {
		created, err := logs.Create(ctx, entry)
		return logSavedMsg{log: created, err: err}
	}
}

func (m *LogsModel) cmdRate(outcome models.OutcomeCreate) tea.Cmd {
	ctx, logs := m.ctx, m.logs
	return func() tea.Msg {
		saved, err := logs.RateOutcome(ctx, outcome)
		return outcomeSavedMsg{outcome: saved, err: err}
	}
}

func (m *LogsModel) cmdDelete(id int64) tea.Cmd {
	ctx, logs := m.ctx, m.logs
	return func() tea.Msg {
		return logDeletedMsg{err: logs.Delete(ctx, id)}
	}
}

func (m *LogsModel) View() string {
	switch m.mode {
	case logsQuickLog:
		out := "Date: " + models.NewDate(m.now()).String() + "\n\n" + m.form.view("Save", m.submitting)
		if m.errMsg != "" {
			out += "\n" + statusLines(m.errMsg, "")
		}
		return renderPage("QUICK LOG", strings.TrimRight(out, "\n"), "esc: cancel │ tab: next field │ enter: save")
	case logsRate:
		out := "Log: " + m.items[m.idx].Date.String() + "\n\n" + m.form.view("Rate", m.submitting)
		if outcome, err := m.outcomeFromForm(); err == nil {
			out += fmt.Sprintf("\nOverall score: %.1f\n", outcome.Preview())
		}
		if m.errMsg != "" {
			out += "\n" + statusLines(m.errMsg, "")
		}
		return renderPage("RATE OUTCOME", strings.TrimRight(out, "\n"), "esc: cancel │ tab: next field │ enter: save")
	case logsConfirmDelete:
		return renderPage("ROUTINE LOG", confirmModel{message: "log of " + m.items[m.idx].Date.String()}.View(), "y: delete │ n: keep")
	}

	const hotKeys = "a: quick log │ r: rate │ ctrl+d: delete │ ↑/↓: navigate │ esc: back"

	var b strings.Builder
	b.WriteString(statusLines(m.errMsg, m.status))

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString("Loading logs...")
	case len(m.items) == 0:
		b.WriteString("Nothing logged yet")
	default:
		b.WriteString("  Date       │ Wash │ Routine │ Styling          │ Notes\n")
		b.WriteString("────────────┼──────┼─────────┼──────────────────┼────────────────\n")
		for i, l := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			wash := "no"
			if l.WashDay {
				wash = "yes"
			}
			routine := "-"
			if l.RoutineID != nil {
				routine = "#" + strconv.FormatInt(*l.RoutineID, 10)
			}
			fmt.Fprintf(&b, "%s %s │ %-4s │ %-7s │ %-16s │ %s\n",
				cursor, l.Date, wash, routine, fitText(valueOrDash(l.StylingMethod), 16), fitText(valueOrDash(l.Notes), 30))
		}
	}

	return renderPage("ROUTINE LOG", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func optionalText(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
