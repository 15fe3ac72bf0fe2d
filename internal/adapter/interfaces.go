// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the curllabs client
// and its REST backend.
//
// Every call goes through one [SessionClient], which attaches the stored
// access credential and transparently renews the session once when the
// backend answers 401. Typed APIs ([AuthAPI], [ProductsAPI], ...) sit on top
// of it and are bundled by [NewHTTPServerAdapter].
//
// Non-2xx responses are mapped by mapHTTPError to [StatusError] values that
// unwrap to the sentinels in errors.go, so callers use [errors.Is] (e.g.
// [ErrNotFound] for 404, [ErrSessionExpired] after a failed renewal).
package adapter

import (
	"context"

	"github.com/curllabs/curllabs-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthAPI covers /auth. None of its calls needs a stored session.
type AuthAPI interface {
	// Register creates the account. It does not sign in.
	Register(ctx context.Context, signUp models.SignUp) (models.User, error)

	// Login exchanges email and password for a credential pair. The pair is
	// returned, not stored.
	Login(ctx context.Context, signIn models.SignIn) (models.Credentials, error)

	// Refresh exchanges a refresh token for a new pair.
	Refresh(ctx context.Context, refreshToken string) (models.Credentials, error)
}

// UsersAPI covers /users/me.
type UsersAPI interface {
	Me(ctx context.Context) (models.User, error)
	UpdateMe(ctx context.Context, update models.UserUpdate) (models.User, error)
	UpdateProfile(ctx context.Context, profile models.UserProfile) (models.User, error)
}

// ProductsAPI covers /products.
type ProductsAPI interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id int64) (models.Product, error)
	Create(ctx context.Context, product models.ProductCreate) (models.Product, error)
	Update(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)
	Delete(ctx context.Context, id int64) error
}

// RoutinesAPI covers /routines.
type RoutinesAPI interface {
	List(ctx context.Context) ([]models.Routine, error)
	Get(ctx context.Context, id int64) (models.Routine, error)
	Create(ctx context.Context, routine models.RoutineCreate) (models.Routine, error)
	Update(ctx context.Context, id int64, update models.RoutineUpdate) (models.Routine, error)
	Delete(ctx context.Context, id int64) error
}

// RoutineLogsAPI covers /routine-logs.
type RoutineLogsAPI interface {
	List(ctx context.Context, filter models.RoutineLogFilter) ([]models.RoutineLog, error)
	Get(ctx context.Context, id int64) (models.RoutineLog, error)
	Create(ctx context.Context, log models.RoutineLogCreate) (models.RoutineLog, error)
	Update(ctx context.Context, id int64, update models.RoutineLogUpdate) (models.RoutineLog, error)
	Delete(ctx context.Context, id int64) error
}

// OutcomesAPI covers /outcomes.
type OutcomesAPI interface {
	List(ctx context.Context) ([]models.Outcome, error)
	Get(ctx context.Context, id int64) (models.Outcome, error)
	Create(ctx context.Context, outcome models.OutcomeCreate) (models.Outcome, error)
	Update(ctx context.Context, id int64, update models.OutcomeUpdate) (models.Outcome, error)
	Delete(ctx context.Context, id int64) error
}

// WeatherAPI covers /weather.
type WeatherAPI interface {
	List(ctx context.Context, dateRange models.WeatherRange) ([]models.WeatherData, error)

	// FetchAndSave asks the backend to look up and store the weather of date
	// at location. An empty location lets the backend use the profile's.
	FetchAndSave(ctx context.Context, date models.Date, location string) (models.WeatherData, error)
}

// DashboardAPI covers /dashboard.
type DashboardAPI interface {
	Stats(ctx context.Context) (models.DashboardStats, error)

	// Trends returns per-day means over the last days days; non-positive
	// values use the default of 30.
	Trends(ctx context.Context, days int) ([]models.TrendPoint, error)

	Insights(ctx context.Context) ([]models.Insight, error)
}
