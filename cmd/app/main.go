package main

import (
	"log"
	_ "supertag/docs"
	"supertag/internal/adapters/http"
	"supertag/internal/adapters/repository/influx"
	"supertag/internal/adapters/repository/memory"
	"supertag/internal/config"
	"supertag/internal/core/ports"
	"supertag/internal/core/services"

	"github.com/gin-gonic/gin"
)

// Package main SuperTag State Analysis Server.
//
// @title SuperTag State Analysis Server
// @version 1.0
// @description Parameter discovery and state-duration segmentation over device event history
//
// @BasePath /api/v1
func main() {

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	var repo ports.EventRepository
	switch cfg.EventStore {
	case config.StoreInflux:
		influxRepo := influx.NewEventRepository(cfg.Influx)
		defer influxRepo.Close()
		repo = influxRepo
		log.Printf("event store: influx url=%s org=%s bucket=%s measurement=%s",
			cfg.Influx.URL, cfg.Influx.Org, cfg.Influx.Bucket, cfg.Influx.Measurement)
	default:
		memRepo := memory.NewEventRepository()
		if cfg.EventsCSV != "" {
			if err := memRepo.LoadFromCSV(cfg.EventsCSV); err != nil {
				log.Fatalf("failed to load events from %s: %v", cfg.EventsCSV, err)
			}
			log.Printf("events loaded from %s: %d devices", cfg.EventsCSV, memRepo.Count())
		}
		repo = memRepo
	}

	analysisSvc := services.NewAnalysisService(repo, cfg.Lookback)

	r := gin.Default()
	http.RegisterRoutes(r, analysisSvc)

	log.Printf("Starting server on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Could not start server: %v", err)
	}
}
