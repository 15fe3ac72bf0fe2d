// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"

	"github.com/curllabs/curllabs-client/models"
)

type usersAPI struct {
	client *SessionClient
}

// NewUsersAPI returns the [UsersAPI] bound to client.
func NewUsersAPI(client *SessionClient) UsersAPI {
	return &usersAPI{client: client}
}

func (u *usersAPI) Me(ctx context.Context) (models.User, error) {
	var user models.User
	err := u.client.Do(ctx, Request{Method: http.MethodGet, Path: "/users/me", Result: &user})
	return user, err
}

func (u *usersAPI) UpdateMe(ctx context.Context, update models.UserUpdate) (models.User, error) {
	var user models.User
	err := u.client.Do(ctx, Request{Method: http.MethodPut, Path: "/users/me", Body: update, Result: &user})
	return user, err
}

func (u *usersAPI) UpdateProfile(ctx context.Context, profile models.UserProfile) (models.User, error) {
	var user models.User
	err := u.client.Do(ctx, Request{Method: http.MethodPut, Path: "/users/me/profile", Body: profile, Result: &user})
	return user, err
}
