// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// menuItem opens page, or runs action when one is set.
type menuItem struct {
	label  string
	page   string
	action tea.Cmd
}

// MenuModel is a numbered list of actions. It serves as the start menu of
// the sign-in flow and as the home page of the main loop.
type MenuModel struct {
	title  string
	header func() string
	items  []menuItem
	idx    int
	status string
}

func newStartMenu(notice string) *MenuModel {
	return &MenuModel{
		title: "CURLLABS",
		items: []menuItem{
			{label: "Sign in", page: pageLogin},
			{label: "Create account", page: pageRegister},
		},
		status: notice,
	}
}

// newHomeMenu builds the main-loop menu. header is evaluated on every render
// so profile changes show up right away.
func newHomeMenu(header func() string, logout tea.Cmd) *MenuModel {
	return &MenuModel{
		title:  "HOME",
		header: header,
		items: []menuItem{
			{label: "Dashboard", page: pageDashboard},
			{label: "Products", page: pageProducts},
			{label: "Routines", page: pageRoutines},
			{label: "Routine log", page: pageLogs},
			{label: "Hair profile", page: pageProfile},
			{label: "Sign out", action: logout},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(noticeMsg); ok {
		m.status = notice.text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.idx = moveCursor(m.idx, -1, len(m.items))
	case key.Matches(keyMsg, keys.down):
		m.idx = moveCursor(m.idx, 1, len(m.items))
	case key.Matches(keyMsg, keys.enter):
		m.status = ""
		item := m.items[m.idx]
		if item.action != nil {
			return m, item.action
		}
		return m, func() tea.Msg { return NavigateTo{Page: item.page} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.label); w > actionColWidth {
			actionColWidth = w
		}
	}

	if m.header != nil {
		if h := m.header(); h != "" {
			b.WriteString(h)
			b.WriteString("\n\n")
		}
	}
	b.WriteString(statusLines("", m.status))

	fmt.Fprintf(&b, "%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Action")
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		fmt.Fprintf(&b, "%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.label)
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: about")
}
