package main

import (
	"context"
	"log"
	"time"

	"freight-emissions/internal/core/cache"
	"freight-emissions/internal/core/config"
	"freight-emissions/internal/core/logger"
	"freight-emissions/internal/core/server"
	analyticshandler "freight-emissions/internal/features/analytics/handler"
	analyticsservice "freight-emissions/internal/features/analytics/service"
	factoradapter "freight-emissions/internal/features/factors/adapters"
	factorhandler "freight-emissions/internal/features/factors/handler"
	factorservice "freight-emissions/internal/features/factors/service"
	legadapter "freight-emissions/internal/features/legs/adapters"
	locationadapter "freight-emissions/internal/features/locations/adapters"
	locationhandler "freight-emissions/internal/features/locations/handler"
	locationservice "freight-emissions/internal/features/locations/service"
	shipmentadapter "freight-emissions/internal/features/shipments/adapters"
	shipmenthandler "freight-emissions/internal/features/shipments/handler"

	"go.uber.org/zap"
)

// @title Freight Emissions API
// @version 1.0
// @description Shipment composition, emission calculation and analytics for multi-leg freight.
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize Redis and verify connectivity
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer redisCache.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		l.Fatal("Redis health check failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Emission factors
	factorRepo := factoradapter.NewRedisFactorRepository(redisCache)
	factorSvc := factorservice.NewFactorService(factorRepo)
	factorHdl := factorhandler.NewFactorHandler(factorSvc)

	if _, err := factorSvc.Seed(pingCtx); err != nil {
		l.Warn("Emission factor seeding failed", zap.Error(err))
	}

	// Location search
	geocoder := locationadapter.NewNominatimAdapter(cfg.Geo.GeocodingURL)
	airports, err := locationadapter.NewAirportIndex(cfg.Geo.AirportsPath)
	if err != nil {
		l.Warn("Airport catalog unavailable, airport search disabled",
			zap.String("path", cfg.Geo.AirportsPath),
			zap.Error(err),
		)
		airports = locationadapter.NewAirportIndexFromSlice(nil)
	}
	searchSvc := locationservice.NewSearchService(geocoder, airports)
	locationHdl := locationhandler.NewLocationHandler(searchSvc, airports, cfg.Search.DebounceMs)

	// Shipments
	resolver := legadapter.NewRouteResolver(cfg.Geo.RoutingURL)
	shipmentRepo := shipmentadapter.NewRedisShipmentRepository(redisCache)
	shipmentHdl := shipmenthandler.NewShipmentHandler(resolver, factorSvc, factorSvc, shipmentRepo)

	// Analytics
	aggregator := analyticsservice.NewAggregator(shipmentRepo)
	analyticsHdl := analyticshandler.NewAnalyticsHandler(aggregator)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/locations/search", locationHdl.SearchLocations)
	srv.App.Get("/locations/search-config", locationHdl.SearchConfig)
	srv.App.Get("/airports/search", locationHdl.SearchAirports)

	srv.App.Post("/shipments", shipmentHdl.CreateShipment)
	srv.App.Get("/shipments", shipmentHdl.ListShipments)
	srv.App.Delete("/shipments/bulk", shipmentHdl.BulkDeleteShipments)
	srv.App.Post("/shipments/reset", shipmentHdl.ResetShipments)

	srv.App.Post("/shipments/analytics", analyticsHdl.TripAnalytics)
	srv.App.Get("/shipments/scatter-analytics", analyticsHdl.ScatterAnalytics)

	srv.App.Post("/emission-factors", factorHdl.CreateFactor)
	srv.App.Get("/emission-factors", factorHdl.ListFactors)
	srv.App.Post("/emission-factors/seed", factorHdl.SeedFactors)
	srv.App.Put("/emission-factors/:id", factorHdl.UpdateFactor)
	srv.App.Delete("/emission-factors/:id", factorHdl.DeleteFactor)
	srv.App.Get("/vehicle-types/:mode", factorHdl.VehicleTypes)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
