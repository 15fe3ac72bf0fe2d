// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curllabs/curllabs-client/internal/logger"
	"github.com/curllabs/curllabs-client/internal/service"
	"github.com/curllabs/curllabs-client/internal/tui"
	"github.com/curllabs/curllabs-client/models"
)

var testUser = models.User{ID: 1, Email: "curly@example.com"}

type fakeRestorer struct {
	user models.User
	err  error
}

func (f fakeRestorer) RestoreSession(context.Context) (models.User, error) {
	return f.user, f.err
}

type fakeChecker struct {
	needs bool
}

func (f fakeChecker) NeedsOnboarding(models.User) bool { return f.needs }

type fakeWorker struct {
	starts, stops int
}

func (w *fakeWorker) Start(context.Context) { w.starts++ }
func (w *fakeWorker) Stop()                 { w.stops++ }

// fakeUI replays scripted results and records what it was asked to do.
type fakeUI struct {
	logins      []error
	onboardings []error
	exits       []tui.Exit

	notices []string
	calls   []string
}

func (u *fakeUI) LoginFlow(_ context.Context, notice string) (models.User, error) {
	u.calls = append(u.calls, "login")
	u.notices = append(u.notices, notice)
	err := u.logins[0]
	u.logins = u.logins[1:]
	if err != nil {
		return models.User{}, err
	}
	return testUser, nil
}

func (u *fakeUI) Onboarding(_ context.Context, user models.User) (models.User, error) {
	u.calls = append(u.calls, "onboarding")
	err := u.onboardings[0]
	u.onboardings = u.onboardings[1:]
	return user, err
}

func (u *fakeUI) MainLoop(context.Context) (tui.Exit, error) {
	u.calls = append(u.calls, "main")
	exit := u.exits[0]
	u.exits = u.exits[1:]
	return exit, nil
}

func newTestApp(restorer SessionRestorer, checker OnboardingChecker, ui UI, worker *fakeWorker) *App {
	return &App{
		auth:       restorer,
		profiles:   checker,
		ui:         ui,
		background: worker,
		logger:     logger.Nop(),
	}
}

func TestApp_Run_RestoredSessionSkipsLogin(t *testing.T) {
	ui := &fakeUI{exits: []tui.Exit{tui.ExitQuit}}
	worker := &fakeWorker{}
	app := newTestApp(fakeRestorer{user: testUser}, fakeChecker{}, ui, worker)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, []string{"main"}, ui.calls)
	assert.Equal(t, 1, worker.starts)
	assert.Equal(t, 1, worker.stops)
}

func TestApp_Run_LogoutReturnsToLogin(t *testing.T) {
	ui := &fakeUI{
		logins: []error{nil, tui.ErrUserQuit},
		exits:  []tui.Exit{tui.ExitLogout},
	}
	worker := &fakeWorker{}
	app := newTestApp(fakeRestorer{err: service.ErrNotSignedIn}, fakeChecker{}, ui, worker)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, []string{"login", "main", "login"}, ui.calls)
	assert.Equal(t, []string{"", noticeSignedOut}, ui.notices)
	assert.Equal(t, 1, worker.starts)
	assert.Equal(t, 1, worker.stops)
}

func TestApp_Run_ExpiryReturnsToLogin(t *testing.T) {
	ui := &fakeUI{
		logins: []error{nil, tui.ErrUserQuit},
		exits:  []tui.Exit{tui.ExitExpired},
	}
	app := newTestApp(fakeRestorer{user: testUser}, fakeChecker{}, ui, &fakeWorker{})

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, []string{"main", "login"}, ui.calls)
	assert.Equal(t, []string{noticeExpired}, ui.notices)
}

func TestApp_Run_RestoreFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		notice string
	}{
		{name: "expired", err: fmt.Errorf("restore: %w", service.ErrSessionExpired), notice: noticeExpired},
		{name: "backend down", err: errors.New("dial tcp: connection refused"), notice: "Could not restore your session, please sign in."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &fakeUI{logins: []error{tui.ErrUserQuit}}
			app := newTestApp(fakeRestorer{err: tt.err}, fakeChecker{}, ui, &fakeWorker{})

			require.NoError(t, app.Run(context.Background()))
			assert.Equal(t, []string{tt.notice}, ui.notices)
		})
	}
}

func TestApp_Run_Onboarding(t *testing.T) {
	t.Run("runs before the main loop", func(t *testing.T) {
		ui := &fakeUI{onboardings: []error{nil}, exits: []tui.Exit{tui.ExitQuit}}
		app := newTestApp(fakeRestorer{user: testUser}, fakeChecker{needs: true}, ui, &fakeWorker{})

		require.NoError(t, app.Run(context.Background()))
		assert.Equal(t, []string{"onboarding", "main"}, ui.calls)
	})

	t.Run("expiry during onboarding returns to login", func(t *testing.T) {
		ui := &fakeUI{
			logins:      []error{tui.ErrUserQuit},
			onboardings: []error{fmt.Errorf("onboarding: %w", service.ErrSessionExpired)},
		}
		worker := &fakeWorker{}
		app := newTestApp(fakeRestorer{user: testUser}, fakeChecker{needs: true}, ui, worker)

		require.NoError(t, app.Run(context.Background()))
		assert.Equal(t, []string{"onboarding", "login"}, ui.calls)
		assert.Equal(t, []string{noticeExpired}, ui.notices)
		assert.Zero(t, worker.starts)
	})

	t.Run("quitting onboarding ends the app", func(t *testing.T) {
		ui := &fakeUI{onboardings: []error{tui.ErrUserQuit}}
		app := newTestApp(fakeRestorer{user: testUser}, fakeChecker{needs: true}, ui, &fakeWorker{})

		require.NoError(t, app.Run(context.Background()))
		assert.Equal(t, []string{"onboarding"}, ui.calls)
	})
}

func TestApp_Run_LoginFlowError(t *testing.T) {
	boom := errors.New("terminal gone")
	ui := &fakeUI{logins: []error{boom}}
	app := newTestApp(fakeRestorer{err: service.ErrNotSignedIn}, fakeChecker{}, ui, &fakeWorker{})

	err := app.Run(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, logger.Nop())
	assert.Error(t, err)
}
