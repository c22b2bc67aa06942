package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-member-portal/internal/config"
	"github.com/MKhiriev/go-member-portal/internal/email"
	myHTTP "github.com/MKhiriev/go-member-portal/internal/handler/http"
	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/server"
	"github.com/MKhiriev/go-member-portal/internal/service"
	"github.com/MKhiriev/go-member-portal/internal/store"
	"github.com/MKhiriev/go-member-portal/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("member-portal-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	sender, err := email.NewSender(cfg.Email, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating email sender")
	}

	services := service.NewServices(storages, sender, cfg, log)

	if err := services.AccountService.EnsureAdminAccount(ctx); err != nil {
		log.Fatal().Err(err).Msg("error ensuring bootstrap admin account")
	}

	handler := myHTTP.NewHandler(services, cfg.Auth, log)
	background := workers.NewWorkers(storages, cfg.Workers, log)

	srv, err := server.NewServer(handler.Init(), background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
