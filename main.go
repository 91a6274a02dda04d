package main

import (
	"log"

	"github.com/joho/godotenv"

	"habitlens/adapters/excel"
	"habitlens/app"
	"habitlens/internal/config"
	"habitlens/internal/dataset"
	"habitlens/ui"
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

	// The dataset is read once; a bad file stops startup
	excelConfig := excel.DefaultExcelConfig()
	excelConfig.FilePath = appConfig.Data.File
	excelConfig.Sheet = appConfig.Data.Sheet

	ds, err := dataset.LoadFile(excelConfig)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	service := app.NewDashboardService(ds, app.PipelineOptions(appConfig))
	server := ui.NewApp(service)

	log.Printf("🚀 Starting habitlens on port %s (%d students)", appConfig.Server.Port, ds.Len())
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
