// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the account record returned by GET /users/me. Profile attributes
// are optional until the onboarding wizard has been completed.
type User struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	CurlPattern *string    `json:"curl_pattern,omitempty"`
	Porosity    *string    `json:"porosity,omitempty"`
	Density     *string    `json:"density,omitempty"`
	Thickness   *string    `json:"thickness,omitempty"`
	ScalpType   *string    `json:"scalp_type,omitempty"`
	Location    *string    `json:"location,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Profile returns the hair-profile part of the user record.
func (u User) Profile() UserProfile {
	return UserProfile{
		CurlPattern: u.CurlPattern,
		Porosity:    u.Porosity,
		Density:     u.Density,
		Thickness:   u.Thickness,
		ScalpType:   u.ScalpType,
		Location:    u.Location,
	}
}

// SignUp is the body of POST /auth/register.
type SignUp struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SignIn holds the credentials sent as form fields to POST /auth/login.
// The backend follows the OAuth2 password form, so the email travels in the
// "username" field.
type SignIn struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// UserProfile is the body of PUT /users/me/profile. Nil fields are left
// untouched by the backend.
type UserProfile struct {
	CurlPattern *string `json:"curl_pattern,omitempty"`
	Porosity    *string `json:"porosity,omitempty" validate:"omitempty,oneof=low medium high"`
	Density     *string `json:"density,omitempty" validate:"omitempty,oneof=low medium high"`
	Thickness   *string `json:"thickness,omitempty" validate:"omitempty,oneof=fine medium coarse"`
	ScalpType   *string `json:"scalp_type,omitempty" validate:"omitempty,oneof=dry oily sensitive normal"`
	Location    *string `json:"location,omitempty"`
}

// UserUpdate is the body of PUT /users/me.
type UserUpdate struct {
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	UserProfile
}
