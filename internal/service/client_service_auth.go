// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/curllabs/curllabs-client/internal/adapter"
	"github.com/curllabs/curllabs-client/internal/logger"
	"github.com/curllabs/curllabs-client/internal/session"
	"github.com/curllabs/curllabs-client/internal/validators"
	"github.com/curllabs/curllabs-client/models"
)

type clientAuthService struct {
	auth    adapter.AuthAPI
	users   adapter.UsersAPI
	session *session.Session

	validator validators.Validator

	mu      sync.RWMutex
	current *models.User

	logger *logger.Logger
}

// NewClientAuthService binds the auth flow to sess. The cached user is
// dropped whenever sess expires.
func NewClientAuthService(auth adapter.AuthAPI, users adapter.UsersAPI, sess *session.Session, validator validators.Validator, log *logger.Logger) AuthService {
	s := &clientAuthService{
		auth:      auth,
		users:     users,
		session:   sess,
		validator: validator,
		logger:    log.WithComponent("auth_service"),
	}

	sess.OnExpired(func(error) { s.forget() })

	return s
}

func (a *clientAuthService) Register(ctx context.Context, signUp models.SignUp) (models.User, error) {
	signUp.Email = strings.TrimSpace(signUp.Email)
	if err := a.validator.Validate(ctx, signUp); err != nil {
		return models.User{}, fmt.Errorf("sign up validation: %w", err)
	}

	if _, err := a.auth.Register(ctx, signUp); err != nil {
		return models.User{}, fmt.Errorf("register on server: %w", mapAdapterError(err))
	}
	a.logger.Info().Msg("account registered")

	return a.Login(ctx, models.SignIn{Email: signUp.Email, Password: signUp.Password})
}

func (a *clientAuthService) Login(ctx context.Context, signIn models.SignIn) (models.User, error) {
	signIn.Email = strings.TrimSpace(signIn.Email)
	if err := a.validator.Validate(ctx, signIn); err != nil {
		return models.User{}, fmt.Errorf("sign in validation: %w", err)
	}

	pair, err := a.auth.Login(ctx, signIn)
	if err != nil {
		return models.User{}, fmt.Errorf("login on server: %w", mapAdapterError(err))
	}

	if err = a.session.Replace(ctx, pair); err != nil {
		return models.User{}, fmt.Errorf("store credentials: %w", err)
	}

	user, err := a.users.Me(ctx)
	if err != nil {
		a.discard(ctx)
		return models.User{}, fmt.Errorf("load signed-in user: %w", mapAdapterError(err))
	}

	a.SetCurrentUser(user)
	a.logger.Info().Int64("user_id", user.ID).Msg("signed in")

	return user, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.forget()

	if err := a.session.Clear(ctx); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	a.logger.Info().Msg("signed out")

	return nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.User, error) {
	if !a.session.Authenticated(ctx) {
		return models.User{}, ErrNotSignedIn
	}

	user, err := a.users.Me(ctx)
	if err != nil {
		if !errors.Is(err, ErrSessionExpired) {
			a.discard(ctx)
		}
		return models.User{}, fmt.Errorf("restore session: %w", mapAdapterError(err))
	}

	a.SetCurrentUser(user)
	a.logger.Info().Int64("user_id", user.ID).Msg("session restored")

	return user, nil
}

func (a *clientAuthService) CurrentUser() (models.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.current == nil {
		return models.User{}, false
	}
	return *a.current, true
}

func (a *clientAuthService) SetCurrentUser(user models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = &user
}

func (a *clientAuthService) forget() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = nil
}

// discard drops a pair that turned out to be unusable.
func (a *clientAuthService) discard(ctx context.Context) {
	a.forget()
	if err := a.session.Clear(ctx); err != nil {
		a.logger.Error().Err(err).Msg("failed to clear credentials")
	}
}
