// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/curllabs/curllabs-client/internal/logger"
	"github.com/curllabs/curllabs-client/internal/service"
	"github.com/curllabs/curllabs-client/internal/tui"
	"github.com/curllabs/curllabs-client/internal/workers"
	"github.com/curllabs/curllabs-client/models"
)

const (
	noticeExpired   = "Your session has expired. Please sign in again."
	noticeSignedOut = "You have signed out."
)

type App struct {
	auth       SessionRestorer
	profiles   OnboardingChecker
	ui         UI
	background workers.Worker

	logger *logger.Logger
}

// NewApp builds the client runtime. Background workers run only while a user
// is signed in.
func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}

	return &App{
		auth:       services.Auth,
		profiles:   services.Profile,
		ui:         ui,
		background: workers.NewWorkers(services.WeatherJob),
		logger:     log.WithComponent("client_app"),
	}, nil
}

// Run resumes the stored session or asks the user to sign in, then keeps
// cycling between the main loop and the sign-in flow until the user quits.
func (a *App) Run(ctx context.Context) error {
	user, notice, signedIn := a.restore(ctx)

	for {
		if !signedIn {
			var err error
			user, err = a.ui.LoginFlow(ctx, notice)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
		}

		exit, err := a.signedIn(ctx, user)
		if err != nil {
			return err
		}

		switch exit {
		case tui.ExitLogout:
			a.logger.Info().Msg("user signed out")
			notice = noticeSignedOut
		case tui.ExitExpired:
			notice = noticeExpired
		default:
			return nil
		}
		signedIn = false
	}
}

func (a *App) restore(ctx context.Context) (models.User, string, bool) {
	user, err := a.auth.RestoreSession(ctx)
	switch {
	case err == nil:
		a.logger.Info().Int64("user_id", user.ID).Msg("session restored")
		return user, "", true
	case errors.Is(err, service.ErrNotSignedIn):
		return models.User{}, "", false
	case errors.Is(err, service.ErrSessionExpired):
		a.logger.Info().Err(err).Msg("stored session has expired")
		return models.User{}, noticeExpired, false
	default:
		a.logger.Warn().Err(err).Msg("could not restore session")
		return models.User{}, "Could not restore your session, please sign in.", false
	}
}

// signedIn runs onboarding when the profile is incomplete and then the main
// loop, with background workers running.
func (a *App) signedIn(ctx context.Context, user models.User) (tui.Exit, error) {
	if a.profiles.NeedsOnboarding(user) {
		_, err := a.ui.Onboarding(ctx, user)
		switch {
		case errors.Is(err, service.ErrSessionExpired):
			return tui.ExitExpired, nil
		case errors.Is(err, tui.ErrUserQuit):
			return tui.ExitQuit, nil
		case err != nil:
			return tui.ExitQuit, fmt.Errorf("onboarding: %w", err)
		}
	}

	a.background.Start(ctx)
	defer a.background.Stop()

	exit, err := a.ui.MainLoop(ctx)
	if err != nil {
		return tui.ExitQuit, fmt.Errorf("main loop: %w", err)
	}
	return exit, nil
}
