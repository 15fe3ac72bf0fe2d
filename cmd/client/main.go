// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/curllabs/curllabs-client/internal/adapter"
	"github.com/curllabs/curllabs-client/internal/client"
	"github.com/curllabs/curllabs-client/internal/config"
	"github.com/curllabs/curllabs-client/internal/logger"
	"github.com/curllabs/curllabs-client/internal/service"
	"github.com/curllabs/curllabs-client/internal/session"
	"github.com/curllabs/curllabs-client/internal/store"
	"github.com/curllabs/curllabs-client/internal/tui"
	"github.com/curllabs/curllabs-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("curllabs-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("curllabs-client", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	sess := session.New(storages.Credentials, log)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, sess, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	appInfo, err := service.NewAppInfoService(cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create app info service")
	}

	services := service.NewClientServices(serverAdapter, sess, appInfo, cfg.Workers.WeatherInterval, log)

	ui, err := tui.New(services, sess, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
