// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curllabs/curllabs-client/models"
)

// Page names known to [RootModel].
const (
	pageMenu       = "menu"
	pageLogin      = "login"
	pageRegister   = "register"
	pageOnboarding = "onboarding"
	pageHome       = "home"
	pageDashboard  = "dashboard"
	pageProducts   = "products"
	pageRoutines   = "routines"
	pageLogs       = "logs"
	pageProfile    = "profile"
)

// NavigateTo switches the active page. Payload, when set, is delivered to the
// new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the sign-in flow. Register produces it too, since a
// new account is signed in right away.
type LoginResult struct {
	User models.User
	Err  error
}

// noticeMsg is shown as a status line on the page that receives it.
type noticeMsg struct {
	text string
}

type sessionExpiredMsg struct {
	cause error
}

type logoutMsg struct{}

type onboardingDoneMsg struct {
	user models.User
	err  error
}

type dashboardLoadedMsg struct {
	overview models.DashboardOverview
	err      error
}

type weatherLoadedMsg struct {
	readings []models.WeatherData
	err      error
}

type weatherCapturedMsg struct {
	weather models.WeatherData
	err     error
}

type catalogLoadedMsg struct {
	catalog models.Catalog
	err     error
}

type productSavedMsg struct {
	product models.Product
	status  string
	err     error
}

type productDeletedMsg struct {
	err error
}

type routinesLoadedMsg struct {
	routines []models.Routine
	err      error
}

type routineSavedMsg struct {
	routine models.Routine
	err     error
}

type routineDeletedMsg struct {
	err error
}

type logsLoadedMsg struct {
	logs []models.RoutineLog
	err  error
}

type logSavedMsg struct {
	log models.RoutineLog
	err error
}

type logDeletedMsg struct {
	err error
}

type outcomeSavedMsg struct {
	outcome models.Outcome
	err     error
}

type profileLoadedMsg struct {
	user models.User
	err  error
}

type profileSavedMsg struct {
	user models.User
	err  error
}
