// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/curllabs/curllabs-client/internal/adapter"
	"github.com/curllabs/curllabs-client/internal/logger"
	"github.com/curllabs/curllabs-client/internal/session"
	"github.com/curllabs/curllabs-client/internal/validators"
	"github.com/curllabs/curllabs-client/internal/workers"
)

type ClientServices struct {
	AppInfo     AppInfoService
	Auth        AuthService
	Profile     ProfileService
	Products    ProductService
	Routines    RoutineService
	RoutineLogs RoutineLogService
	Outcomes    OutcomeService
	Weather     WeatherService
	Dashboard   DashboardService
	WeatherJob  *workers.Periodic
}

func NewClientServices(serverAdapter *adapter.ServerAdapter, sess *session.Session, appInfo AppInfoService, weatherInterval time.Duration, log *logger.Logger) *ClientServices {
	validator := validators.NewStructValidator()

	authSvc := NewClientAuthService(serverAdapter.Auth, serverAdapter.Users, sess, validator, log)
	weatherSvc := NewClientWeatherService(serverAdapter.Weather, authSvc)

	return &ClientServices{
		AppInfo:     appInfo,
		Auth:        authSvc,
		Profile:     NewClientProfileService(serverAdapter.Users, authSvc, validator),
		Products:    NewClientProductService(serverAdapter.Products, validator),
		Routines:    NewClientRoutineService(serverAdapter.Routines, validator),
		RoutineLogs: NewClientRoutineLogService(serverAdapter.RoutineLogs, serverAdapter.Outcomes, validator),
		Outcomes:    NewClientOutcomeService(serverAdapter.Outcomes, validator),
		Weather:     weatherSvc,
		Dashboard:   NewClientDashboardService(serverAdapter.Dashboard),
		WeatherJob:  NewWeatherJob(weatherSvc, weatherInterval, log),
	}
}
