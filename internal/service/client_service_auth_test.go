// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/curllabs/curllabs-client/internal/adapter"
	"github.com/curllabs/curllabs-client/internal/logger"
	"github.com/curllabs/curllabs-client/internal/mock"
	"github.com/curllabs/curllabs-client/internal/session"
	"github.com/curllabs/curllabs-client/internal/store"
	"github.com/curllabs/curllabs-client/internal/validators"
	"github.com/curllabs/curllabs-client/models"
)

var testPair = models.Credentials{Access: "A1", Refresh: "R1", TokenType: "bearer"}

// newTestAuthSvc builds clientAuthService on mocks and an
// in-memory session.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (
	*clientAuthService,
	*mock.MockAuthAPI,
	*mock.MockUsersAPI,
	*session.Session,
) {
	t.Helper()
	mockAuth := mock.NewMockAuthAPI(ctrl)
	mockUsers := mock.NewMockUsersAPI(ctrl)
	sess := session.New(store.NewMemoryCredentialRepository(), logger.Nop())

	svc := NewClientAuthService(mockAuth, mockUsers, sess, validators.NewStructValidator(), logger.Nop()).(*clientAuthService)

	return svc, mockAuth, mockUsers, sess
}

func stored(t *testing.T, sess *session.Session) models.Credentials {
	t.Helper()
	credentials, err := sess.Credentials(context.Background())
	require.NoError(t, err)
	return credentials
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_SignsIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAuth, mockUsers, sess := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 7, Email: "alice@example.com"}

	gomock.InOrder(
		mockAuth.EXPECT().Register(ctx, models.SignUp{Email: "alice@example.com", Password: "curly-girl-1"}).Return(user, nil),
		mockAuth.EXPECT().Login(ctx, models.SignIn{Email: "alice@example.com", Password: "curly-girl-1"}).Return(testPair, nil),
		mockUsers.EXPECT().Me(ctx).Return(user, nil),
	)

	got, err := svc.Register(ctx, models.SignUp{Email: "  alice@example.com ", Password: "curly-girl-1"})

	require.NoError(t, err)
	assert.Equal(t, user, got)
	assert.Equal(t, testPair, stored(t, sess))

	current, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, int64(7), current.ID)
}

func TestClientAuthService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAuth, _, sess := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAuth.EXPECT().Register(ctx, gomock.Any()).
		Return(models.User{}, adapter.NewStatusError(http.StatusBadRequest, "Email already registered"))

	_, err := svc.Register(ctx, models.SignUp{Email: "alice@example.com", Password: "curly-girl-1"})

	require.ErrorIs(t, err, ErrEmailTaken)
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
	assert.False(t, sess.Authenticated(ctx))
}

func TestClientAuthService_Register_InvalidInput_NoServerCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Register(context.Background(), models.SignUp{Email: "not-an-email", Password: "short"})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "email must be a valid email address")
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAuth, _, sess := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	rejected := fmt.Errorf("%w: %w", adapter.ErrAuthenticationRequired,
		adapter.NewStatusError(http.StatusUnauthorized, "Incorrect email or password"))
	mockAuth.EXPECT().Login(ctx, gomock.Any()).Return(models.Credentials{}, rejected)

	_, err := svc.Login(ctx, models.SignIn{Email: "alice@example.com", Password: "nope"})

	require.ErrorIs(t, err, ErrWrongCredentials)
	assert.Equal(t, "Incorrect email or password", adapter.Detail(err))
	assert.False(t, sess.Authenticated(ctx))
	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

func TestClientAuthService_Login_IncompletePairIsNotStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAuth, _, sess := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAuth.EXPECT().Login(ctx, gomock.Any()).Return(models.Credentials{Access: "A1"}, nil)

	_, err := svc.Login(ctx, models.SignIn{Email: "alice@example.com", Password: "pw"})

	require.ErrorIs(t, err, session.ErrIncompleteCredentials)
	assert.False(t, sess.Authenticated(ctx))
}

func TestClientAuthService_Login_UserLoadFails_DiscardsPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAuth, mockUsers, sess := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAuth.EXPECT().Login(ctx, gomock.Any()).Return(testPair, nil)
	mockUsers.EXPECT().Me(ctx).Return(models.User{}, adapter.NewStatusError(http.StatusInternalServerError, ""))

	_, err := svc.Login(ctx, models.SignIn{Email: "alice@example.com", Password: "pw"})

	require.ErrorIs(t, err, adapter.ErrInternalServerError)
	assert.True(t, stored(t, sess).Empty())
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, sess := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	require.NoError(t, sess.Replace(ctx, testPair))
	svc.SetCurrentUser(models.User{ID: 1})

	require.NoError(t, svc.Logout(ctx))

	assert.True(t, stored(t, sess).Empty())
	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

// ── RestoreSession ───────────────────────────────────────────────────────────

func TestClientAuthService_RestoreSession_NoCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.RestoreSession(context.Background())

	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestClientAuthService_RestoreSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockUsers, sess := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	require.NoError(t, sess.Replace(ctx, testPair))

	mockUsers.EXPECT().Me(ctx).Return(models.User{ID: 3}, nil)

	user, err := svc.RestoreSession(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, testPair, stored(t, sess))
}

func TestClientAuthService_RestoreSession_FailureClearsCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockUsers, sess := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	require.NoError(t, sess.Replace(ctx, testPair))

	mockUsers.EXPECT().Me(ctx).Return(models.User{}, errors.New("connection refused"))

	_, err := svc.RestoreSession(ctx)

	require.Error(t, err)
	assert.True(t, stored(t, sess).Empty())
}

func TestClientAuthService_SessionExpiryForgetsUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, sess := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	require.NoError(t, sess.Replace(ctx, testPair))
	svc.SetCurrentUser(models.User{ID: 1})

	err := sess.Expire(ctx, errors.New("refresh rejected"))

	require.ErrorIs(t, err, ErrSessionExpired)
	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}
