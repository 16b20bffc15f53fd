package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/posh-choice/storefront-core/internal/app"
	config "github.com/posh-choice/storefront-core/internal/cfg"
	"github.com/posh-choice/storefront-core/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
