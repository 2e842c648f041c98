package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-users-api/internal/adapter"
	"github.com/MKhiriev/go-users-api/internal/client"
	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("users-client", os.Stderr)
	if err := logger.SetLevel("info"); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if len(args) == 1 && args[0] == "version" {
		fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	usersClient, err := adapter.NewHTTPUsersClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create users client")
	}

	app, err := client.NewApp(usersClient, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, args); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}
