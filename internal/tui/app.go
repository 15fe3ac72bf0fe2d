// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curllabs/curllabs-client/models"
)

// exitReason records why a [RootModel] stopped its program.
type exitReason int

const (
	exitNone exitReason = iota
	exitQuit
	exitSignedIn
	exitOnboarded
	exitLogout
	exitExpired
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the build info overlay
// 3) handles NavigateTo messages
// 4) finishes the program on sign-in, onboarding, sign-out and session expiry
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	version   string
	buildInfo models.AppBuildInfo

	showBuildInfo bool

	exit         exitReason
	user         models.User
	expiredCause error
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage, version string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		version:   version,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.exit = exitQuit
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo) && r.isMenuPage():
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.current.Init()
	case LoginResult:
		if msg.Err == nil {
			r.user = msg.User
			r.exit = exitSignedIn
			return r, tea.Quit
		}
	case onboardingDoneMsg:
		if msg.err == nil {
			r.user = msg.user
			r.exit = exitOnboarded
			return r, tea.Quit
		}
	case logoutMsg:
		r.exit = exitLogout
		return r, tea.Quit
	case sessionExpiredMsg:
		r.exit = exitExpired
		r.expiredCause = msg.cause
		return r, tea.Quit
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.version, r.buildInfo)
	}
	if r.current == nil {
		return renderPage("CURLLABS", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
