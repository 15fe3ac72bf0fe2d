// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/curllabs/curllabs-client/internal/adapter"
	"github.com/curllabs/curllabs-client/internal/validators"
	"github.com/curllabs/curllabs-client/models"
)

type clientProfileService struct {
	users     adapter.UsersAPI
	auth      AuthService
	validator validators.Validator
}

// NewClientProfileService keeps auth's cached user in step with every
// successful profile change.
func NewClientProfileService(users adapter.UsersAPI, auth AuthService, validator validators.Validator) ProfileService {
	return &clientProfileService{users: users, auth: auth, validator: validator}
}

func (p *clientProfileService) Get(ctx context.Context) (models.User, error) {
	user, err := p.users.Me(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("get profile: %w", mapAdapterError(err))
	}

	p.auth.SetCurrentUser(user)
	return user, nil
}

func (p *clientProfileService) Update(ctx context.Context, profile models.UserProfile) (models.User, error) {
	profile = trimProfile(profile)
	if err := p.validator.Validate(ctx, profile); err != nil {
		return models.User{}, fmt.Errorf("profile validation: %w", err)
	}

	user, err := p.users.UpdateProfile(ctx, profile)
	if err != nil {
		return models.User{}, fmt.Errorf("update profile: %w", mapAdapterError(err))
	}

	p.auth.SetCurrentUser(user)
	return user, nil
}

func (p *clientProfileService) UpdateAccount(ctx context.Context, update models.UserUpdate) (models.User, error) {
	if update.Email != nil {
		email := strings.TrimSpace(*update.Email)
		update.Email = &email
	}
	update.UserProfile = trimProfile(update.UserProfile)

	if err := p.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("account validation: %w", err)
	}

	user, err := p.users.UpdateMe(ctx, update)
	if err != nil {
		return models.User{}, fmt.Errorf("update account: %w", mapAdapterError(err))
	}

	p.auth.SetCurrentUser(user)
	return user, nil
}

func (p *clientProfileService) NeedsOnboarding(user models.User) bool {
	return blank(user.CurlPattern) || blank(user.Porosity)
}

// trimProfile trims every set field and unsets the ones left empty.
func trimProfile(profile models.UserProfile) models.UserProfile {
	for _, field := range []**string{
		&profile.CurlPattern,
		&profile.Porosity,
		&profile.Density,
		&profile.Thickness,
		&profile.ScalpType,
		&profile.Location,
	} {
		*field = optional(*field)
	}
	return profile
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
