// README: Entry point; loads config and the fare model, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farecast/internal/ai"
	"farecast/internal/config"
	httptransport "farecast/internal/http"
	"farecast/internal/infra"
	"farecast/internal/maps"
	"farecast/internal/modules/assistant"
	"farecast/internal/modules/location"
	"farecast/internal/modules/predictor"
	"farecast/internal/modules/pricing"
	"farecast/internal/modules/samples"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := infra.NewLogger(cfg.AppEnv, "fare-api")
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing model keeps the server up; fare endpoints answer 503.
	var model predictor.Predictor
	var modelID string
	if m, err := infra.LoadModel(ctx, cfg); err != nil {
		log.Error("fare model unavailable", zap.String("source", cfg.Model.Source), zap.Error(err))
		model = predictor.Unavailable(err)
	} else {
		log.Info("fare model loaded",
			zap.String("name", m.Info.Name),
			zap.Int("version", m.Info.Version),
			zap.String("kind", m.Info.Kind),
			zap.String("checksum", m.Info.Checksum),
		)
		model, modelID = m, m.Info.Checksum
	}

	var cache pricing.Cache
	if cfg.Redis.Addr != "" && modelID != "" {
		client, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Warn("quote cache disabled", zap.Error(err))
		} else {
			defer client.Close()
			cache = pricing.NewRedisCache(client, modelID, cfg.Redis.CacheTTL)
		}
	}
	pricingSvc := pricing.NewService(model, cache, log.Named("pricing"))

	var table *samples.Table
	if cfg.Samples.Path != "" {
		table, err = samples.Open(cfg.Samples.Path)
		if err != nil {
			log.Warn("sample rows unavailable", zap.String("path", cfg.Samples.Path), zap.Error(err))
			table = nil
		} else {
			table.LogSkipped(log.Named("samples"))
		}
	}

	deps := httptransport.ServerDeps{
		Pricing:     pricingSvc,
		Samples:     table,
		SamplesSize: cfg.Samples.Size,
		SamplesSeed: cfg.Samples.Seed,
		Logger:      log.Named("http"),
	}

	if cfg.Maps.APIKey != "" {
		geocoder, err := maps.NewGeocodeService(cfg.Maps.APIKey, location.NewYorkRegion)
		if err != nil {
			log.Warn("geocoding disabled", zap.Error(err))
		} else {
			deps.Geocoder = geocoder
		}
	}
	if cfg.AI.GeminiKey != "" && deps.Geocoder != nil {
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Warn("trip assistant disabled", zap.Error(err))
		} else {
			defer provider.Close()
			deps.Assistant = assistant.NewService(provider, deps.Geocoder, pricingSvc, log.Named("assistant"))
		}
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httptransport.NewServer(deps).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", zap.Error(err))
		}
	}()

	log.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server", zap.Error(err))
	}
}
