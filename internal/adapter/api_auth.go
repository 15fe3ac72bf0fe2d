// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"strings"

	"github.com/curllabs/curllabs-client/models"
)

type authAPI struct {
	client *SessionClient
}

// NewAuthAPI returns the [AuthAPI] bound to client.
func NewAuthAPI(client *SessionClient) AuthAPI {
	return &authAPI{client: client}
}

// Register POSTs the sign-up payload to /auth/register.
func (a *authAPI) Register(ctx context.Context, signUp models.SignUp) (models.User, error) {
	var user models.User
	err := a.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body:   signUp,
		Result: &user,
	})
	return user, err
}

// Login sends the OAuth2 password form to /auth/login: the email travels as
// "username".
func (a *authAPI) Login(ctx context.Context, signIn models.SignIn) (models.Credentials, error) {
	var credentials models.Credentials
	err := a.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Form: map[string]string{
			"username": strings.TrimSpace(signIn.Email),
			"password": signIn.Password,
		},
		Result: &credentials,
	})
	return credentials, err
}

func (a *authAPI) Refresh(ctx context.Context, refreshToken string) (models.Credentials, error) {
	return a.client.Refresh(ctx, refreshToken)
}
