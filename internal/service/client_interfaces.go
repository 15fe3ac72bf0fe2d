// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/curllabs/curllabs-client/models"
)

// AppInfoService reports what build of the client is running.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	BuildInfo() models.AppBuildInfo
}

// AuthService defines the client-side contract for registration, sign-in and
// the lifetime of the stored session.
type AuthService interface {
	// Register creates the account and then signs in with the same
	// credentials. Returns ErrEmailTaken if the email is already in use.
	Register(ctx context.Context, signUp models.SignUp) (models.User, error)

	// Login exchanges email and password for a credential pair, persists the
	// pair and loads the signed-in user. If the user cannot be loaded the pair
	// is discarded again. Returns ErrWrongCredentials on a rejected password.
	Login(ctx context.Context, signIn models.SignIn) (models.User, error)

	// Logout deletes the stored credentials.
	Logout(ctx context.Context) error

	// RestoreSession resumes a session persisted by an earlier run. Returns
	// ErrNotSignedIn when no credentials are stored. Any failure to load the
	// user clears the stored credentials.
	RestoreSession(ctx context.Context) (models.User, error)

	// CurrentUser returns the signed-in user, if any.
	CurrentUser() (models.User, bool)

	// SetCurrentUser replaces the cached user after a profile change.
	SetCurrentUser(user models.User)
}

// ProfileService reads and edits the signed-in user's hair profile.
type ProfileService interface {
	Get(ctx context.Context) (models.User, error)
	Update(ctx context.Context, profile models.UserProfile) (models.User, error)
	UpdateAccount(ctx context.Context, update models.UserUpdate) (models.User, error)

	// NeedsOnboarding reports whether user still lacks one of the required
	// profile fields: curl pattern or porosity.
	NeedsOnboarding(user models.User) bool
}

// ProductInput is the product form as typed by the user. Ingredients is a
// comma-separated list.
type ProductInput struct {
	Brand       string
	Name        string
	Type        string
	Ingredients string
	Notes       string
}

// ProductService manages the user's product shelf.
type ProductService interface {
	List(ctx context.Context) ([]models.Product, error)

	// Catalog lists the products arranged for display. See [models.NewCatalog]
	// for grouping and filterType.
	Catalog(ctx context.Context, filterType string) (models.Catalog, error)

	// Create trims every field, splits the ingredient list and validates the
	// result before sending it.
	Create(ctx context.Context, input ProductInput) (models.Product, error)

	Update(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)

	// ToggleStar flips the starred flag of product.
	ToggleStar(ctx context.Context, product models.Product) (models.Product, error)

	Delete(ctx context.Context, id int64) error
}

// RoutineService manages routine templates. Steps are returned ordered by
// their Order field.
type RoutineService interface {
	List(ctx context.Context) ([]models.Routine, error)
	Get(ctx context.Context, id int64) (models.Routine, error)
	Create(ctx context.Context, routine models.RoutineCreate) (models.Routine, error)
	Update(ctx context.Context, id int64, update models.RoutineUpdate) (models.Routine, error)
	Delete(ctx context.Context, id int64) error
}

// RoutineLogService records routine usage and rates how it turned out.
type RoutineLogService interface {
	List(ctx context.Context, filter models.RoutineLogFilter) ([]models.RoutineLog, error)
	Create(ctx context.Context, log models.RoutineLogCreate) (models.RoutineLog, error)
	Update(ctx context.Context, id int64, update models.RoutineLogUpdate) (models.RoutineLog, error)
	Delete(ctx context.Context, id int64) error

	// RateOutcome validates the 1..5 ratings and stores an outcome for the
	// log.
	RateOutcome(ctx context.Context, outcome models.OutcomeCreate) (models.Outcome, error)
}

// OutcomeService manages outcome ratings directly.
type OutcomeService interface {
	List(ctx context.Context) ([]models.Outcome, error)
	Create(ctx context.Context, outcome models.OutcomeCreate) (models.Outcome, error)
	Update(ctx context.Context, id int64, update models.OutcomeUpdate) (models.Outcome, error)
	Delete(ctx context.Context, id int64) error
}

// WeatherService reads stored weather and captures new readings.
type WeatherService interface {
	List(ctx context.Context, dateRange models.WeatherRange) ([]models.WeatherData, error)

	// Capture asks the backend to store today's weather for the signed-in
	// user's profile location. Returns ErrNoLocation when the profile has
	// none.
	Capture(ctx context.Context) (models.WeatherData, error)
}

// DashboardService assembles the dashboard.
type DashboardService interface {
	// Overview loads stats, trends over days days and insights.
	Overview(ctx context.Context, days int) (models.DashboardOverview, error)
}
