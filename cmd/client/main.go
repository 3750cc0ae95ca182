package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/staykeeper/staykeeper/internal/client"
	"github.com/staykeeper/staykeeper/internal/config"
	"github.com/staykeeper/staykeeper/internal/logger"
	"github.com/staykeeper/staykeeper/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("staykeeper-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		if errors.Is(err, config.ErrMissingClientEndpoint) || errors.Is(err, config.ErrMissingClientAPIKey) {
			if noticeErr := tui.ShowConfigNotice(err); noticeErr != nil {
				log.Fatal().Err(noticeErr).Msg("error showing configuration notice")
			}
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app, err := client.NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
