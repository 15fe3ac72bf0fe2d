// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the client on top
// of bubbletea. Every flow runs as its own program routed by [RootModel].
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/curllabs/curllabs-client/internal/logger"
	"github.com/curllabs/curllabs-client/internal/service"
	"github.com/curllabs/curllabs-client/internal/session"
	"github.com/curllabs/curllabs-client/models"
)

// Exit tells the caller of [TUI.MainLoop] why the loop ended.
type Exit int

const (
	ExitQuit Exit = iota
	ExitLogout
	ExitExpired
)

type TUI struct {
	services *service.ClientServices
	session  *session.Session
	logger   *logger.Logger
}

func New(services *service.ClientServices, sess *session.Session, log *logger.Logger) (*TUI, error) {
	if services == nil || sess == nil {
		return nil, errors.New("tui: services and session are required")
	}
	return &TUI{services: services, session: sess, logger: log.WithComponent("tui")}, nil
}

// LoginFlow shows the start menu with notice as its status line and blocks
// until the user signs in or quits.
func (t *TUI) LoginFlow(ctx context.Context, notice string) (models.User, error) {
	pages := map[string]tea.Model{
		pageMenu:     newStartMenu(notice),
		pageLogin:    NewLoginModel(ctx, t.services.Auth),
		pageRegister: NewRegisterModel(ctx, t.services.Auth),
	}

	result, err := t.run(ctx, pages, pageMenu, false)
	if err != nil {
		return models.User{}, err
	}
	if result.exit != exitSignedIn {
		return models.User{}, ErrUserQuit
	}
	return result.user, nil
}

// Onboarding runs the hair-profile wizard for user and returns the updated
// user.
func (t *TUI) Onboarding(ctx context.Context, user models.User) (models.User, error) {
	pages := map[string]tea.Model{
		pageOnboarding: NewOnboardingModel(ctx, t.services.Profile, user),
	}

	result, err := t.run(ctx, pages, pageOnboarding, true)
	if err != nil {
		return models.User{}, err
	}

	switch result.exit {
	case exitOnboarded:
		return result.user, nil
	case exitExpired:
		return models.User{}, fmt.Errorf("onboarding: %w", service.ErrSessionExpired)
	default:
		return models.User{}, ErrUserQuit
	}
}

// MainLoop runs the home page and everything reachable from it until the
// user quits or signs out, or the session expires.
func (t *TUI) MainLoop(ctx context.Context) (Exit, error) {
	auth := t.services.Auth
	header := func() string {
		user, ok := auth.CurrentUser()
		if !ok {
			return ""
		}
		return "Signed in as " + user.Email
	}
	logout := func() tea.Msg {
		if err := auth.Logout(ctx); err != nil {
			t.logger.Err(err).Msg("failed to clear credentials on sign out")
		}
		return logoutMsg{}
	}

	pages := map[string]tea.Model{
		pageHome:      newHomeMenu(header, logout),
		pageDashboard: NewDashboardModel(ctx, t.services.Dashboard, t.services.Weather),
		pageProducts:  NewProductsModel(ctx, t.services.Products),
		pageRoutines:  NewRoutinesModel(ctx, t.services.Routines),
		pageLogs:      NewLogsModel(ctx, t.services.RoutineLogs),
		pageProfile:   NewProfileModel(ctx, t.services.Profile),
	}

	result, err := t.run(ctx, pages, pageHome, true)
	if err != nil {
		return ExitQuit, err
	}

	switch result.exit {
	case exitLogout:
		return ExitLogout, nil
	case exitExpired:
		t.logger.Info().AnErr("cause", result.expiredCause).Msg("session expired, returning to sign in")
		return ExitExpired, nil
	default:
		return ExitQuit, nil
	}
}

// run starts a program over pages. With watchExpiry set, a session expiry
// anywhere in the process ends the program.
func (t *TUI) run(ctx context.Context, pages map[string]tea.Model, start string, watchExpiry bool) (RootModel, error) {
	appInfo := t.services.AppInfo
	root := NewRootModel(pages, start, appInfo.GetAppVersion(ctx), appInfo.BuildInfo())
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	if watchExpiry {
		unsubscribe := t.session.OnExpired(func(cause error) {
			program.Send(sessionExpiredMsg{cause: cause})
		})
		defer unsubscribe()
	}

	finalModel, err := program.Run()
	if err != nil {
		return RootModel{}, fmt.Errorf("run %s: %w", start, err)
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return RootModel{}, tea.ErrProgramKilled
	}
	return result, nil
}
