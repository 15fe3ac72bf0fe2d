// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the client's credential pair. Every read and write of
// the access and refresh tokens goes through a [Session], which is injected
// into the transport and the services instead of living in a global.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/curllabs/curllabs-client/internal/logger"
	"github.com/curllabs/curllabs-client/internal/store"
	"github.com/curllabs/curllabs-client/internal/utils"
	"github.com/curllabs/curllabs-client/models"
)

var (
	// ErrSessionExpired is returned once the stored credentials could not be
	// renewed and have been removed. The user has to sign in again.
	ErrSessionExpired = errors.New("session expired")

	// ErrIncompleteCredentials is returned by Replace for a pair missing
	// either token.
	ErrIncompleteCredentials = errors.New("incomplete credentials")

	// ErrNoCredentials is returned by Claims when nothing is stored.
	ErrNoCredentials = errors.New("no credentials stored")
)

// CredentialStore is the persistence the session reads from and writes to.
// [store.CredentialRepository] implementations satisfy it.
type CredentialStore interface {
	Load(ctx context.Context) (models.Credentials, error)
	Save(ctx context.Context, credentials models.Credentials) error
	Delete(ctx context.Context) error
}

// Session mediates access to the stored credentials and broadcasts expiry.
type Session struct {
	store  CredentialStore
	logger *logger.Logger

	mu        sync.Mutex
	listeners map[int]func(error)
	nextID    int
}

// New returns a Session backed by credentialStore.
func New(credentialStore CredentialStore, log *logger.Logger) *Session {
	return &Session{
		store:     credentialStore,
		logger:    log,
		listeners: make(map[int]func(error)),
	}
}

// Credentials returns the stored pair. An absent pair is not an error: the
// zero value is returned instead.
func (s *Session) Credentials(ctx context.Context) (models.Credentials, error) {
	credentials, err := s.store.Load(ctx)
	if errors.Is(err, store.ErrCredentialsNotFound) {
		return models.Credentials{}, nil
	}
	if err != nil {
		return models.Credentials{}, fmt.Errorf("load credentials: %w", err)
	}

	return credentials, nil
}

// Replace persists a new pair, overwriting both stored values at once.
func (s *Session) Replace(ctx context.Context, credentials models.Credentials) error {
	if !credentials.Complete() {
		return ErrIncompleteCredentials
	}

	if err := s.store.Save(ctx, credentials); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}

	return nil
}

// Clear removes both stored values.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx); err != nil {
		return fmt.Errorf("delete credentials: %w", err)
	}

	return nil
}

// Expire clears the credentials, notifies every expiry listener and returns
// an error wrapping both [ErrSessionExpired] and cause.
func (s *Session) Expire(ctx context.Context, cause error) error {
	if err := s.Clear(ctx); err != nil {
		s.logger.Err(err).Str("func", "Session.Expire").Msg("failed to clear credentials of expired session")
	}

	s.logger.Warn().AnErr("cause", cause).Msg("session expired")

	s.mu.Lock()
	listeners := make([]func(error), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(cause)
	}

	if cause == nil {
		return ErrSessionExpired
	}
	return fmt.Errorf("%w: %w", ErrSessionExpired, cause)
}

// OnExpired registers fn to be called after the session expires. The
// returned func removes the registration.
func (s *Session) OnExpired(fn func(cause error)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Authenticated reports whether an access token is stored.
func (s *Session) Authenticated(ctx context.Context) bool {
	credentials, err := s.Credentials(ctx)
	return err == nil && credentials.Access != ""
}

// Claims decodes the stored access token without verifying its signature.
func (s *Session) Claims(ctx context.Context) (models.AccessClaims, error) {
	credentials, err := s.Credentials(ctx)
	if err != nil {
		return models.AccessClaims{}, err
	}
	if credentials.Access == "" {
		return models.AccessClaims{}, ErrNoCredentials
	}

	claims, err := utils.ParseAccessClaims(credentials.Access)
	if err != nil {
		return models.AccessClaims{}, fmt.Errorf("parse access token: %w", err)
	}

	return claims, nil
}
