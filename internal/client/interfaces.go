// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/curllabs/curllabs-client/internal/tui"
	"github.com/curllabs/curllabs-client/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive surface driven by [App]. [tui.TUI] implements it.
type UI interface {
	// LoginFlow blocks until the user signs in. notice is shown on the start
	// screen. Returns tui.ErrUserQuit when the user leaves instead.
	LoginFlow(ctx context.Context, notice string) (models.User, error)

	// Onboarding collects the hair profile of user.
	Onboarding(ctx context.Context, user models.User) (models.User, error)

	// MainLoop runs the signed-in screens.
	MainLoop(ctx context.Context) (tui.Exit, error)
}

// SessionRestorer resumes the session of an earlier run.
type SessionRestorer interface {
	RestoreSession(ctx context.Context) (models.User, error)
}

// OnboardingChecker reports whether a user still has to complete the
// profile wizard.
type OnboardingChecker interface {
	NeedsOnboarding(user models.User) bool
}
