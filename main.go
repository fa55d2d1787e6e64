package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"property-investment/config"
	httpLayer "property-investment/http"
	"property-investment/logger"
	"property-investment/repository"
	"property-investment/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(logger.Config{Level: "error"})
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)

	var rates repository.RateRepository = repository.NewStaticRateRepository(cfg.IndexedUnitValue)
	if cfg.RedisAddr != "" {
		redisRates := repository.NewRedisRateRepository(cfg.RedisAddr, cfg.IndexedUnitValue, log)
		defer redisRates.Close()
		rates = redisRates
		log.Info().Str("addr", cfg.RedisAddr).Msg("Indexed unit value overridable from Redis")
	}

	narrator := service.NewReportNarrator(service.NarratorConfig{
		APIKey: cfg.OpenAIAPIKey,
		APIURL: cfg.OpenAIAPIURL,
		Model:  cfg.OpenAIModel,
	}, log)

	investmentService := service.NewInvestmentService(rates, narrator, log)
	termService := service.NewTermComparisonService(narrator, log)
	handler := httpLayer.NewHandler(investmentService, termService, log)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow, log)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      httpLayer.NewRouter(handler, rateLimiter, cfg.CORSAllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Float64("indexed_unit_value", cfg.IndexedUnitValue).Msg("API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error().Err(err).Msg("Error starting server")
		return
	case <-quit:
		log.Info().Msg("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server exited")
}
