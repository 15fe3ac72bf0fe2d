// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Credentials is the pair of tokens that keeps a client session alive.
//
// Access is the short-lived bearer token attached to every authorized request.
// Refresh is the longer-lived token whose sole purpose is to be exchanged for
// a new pair. Both values are always stored and replaced together.
//
// The JSON layout matches the backend's token response
// ({"access_token", "refresh_token", "token_type"}).
type Credentials struct {
	// Access is the bearer token sent in the Authorization header.
	Access string `json:"access_token"`

	// Refresh is the token exchanged at /auth/refresh for a new pair.
	Refresh string `json:"refresh_token"`

	// TokenType is informational; the backend always answers "bearer".
	TokenType string `json:"token_type,omitempty"`
}

// Complete reports whether both tokens are present. An incomplete pair must
// never be persisted.
func (c Credentials) Complete() bool {
	return strings.TrimSpace(c.Access) != "" && strings.TrimSpace(c.Refresh) != ""
}

// Empty reports whether neither token is present.
func (c Credentials) Empty() bool {
	return c.Access == "" && c.Refresh == ""
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// AccessClaims holds the subset of access-token claims the client cares about.
// The client never verifies signatures; the values are used for display and
// for deciding whether a stored session is worth restoring.
type AccessClaims struct {
	// UserID is the "sub" claim parsed as an integer.
	UserID int64

	// ExpiresAt is the "exp" claim; zero when the token carries none.
	ExpiresAt time.Time
}

// Expired reports whether the claims carry an expiry that lies before now.
func (c AccessClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
