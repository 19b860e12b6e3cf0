package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"programas/adapters/source"
	"programas/app"
	"programas/domain/catalog"
	"programas/internal/config"
	"programas/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(appConfig.Server.GinMode)

	fetcher := source.NewFetcher(time.Duration(appConfig.Data.FetchTimeoutSeconds) * time.Second)
	service := app.NewCatalogService(fetcher, appConfig.Data.Source)

	// The dataset loads exactly once per session; a load failure is fatal
	// and never retried.
	if err := service.Load(context.Background()); err != nil {
		log.Fatalf("Failed to load dataset from %s: %v", appConfig.Data.Source, err)
	}

	formatter := catalog.NewCurrencyFormatter(appConfig.Locale.Currency)

	server := ui.NewServer(service, formatter)
	if err := server.Initialize(); err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	log.Printf("Starting catalog server on port %s", appConfig.Server.Port)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
