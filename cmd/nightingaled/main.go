package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/antoniostano/nightingale/internal/config"
	"github.com/antoniostano/nightingale/internal/httpapi"
	"github.com/antoniostano/nightingale/internal/observability"
	"github.com/antoniostano/nightingale/internal/tts"
	"github.com/antoniostano/nightingale/internal/voices"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	metrics := observability.NewMetrics(cfg.MetricsNamespace)

	synth := tts.NewService(tts.ServiceConfig{
		Endpoint:      cfg.WSSEndpoint,
		OutputFormat:  cfg.OutputFormat,
		DefaultVoice:  cfg.DefaultVoice,
		DefaultRate:   cfg.DefaultRate,
		DefaultVolume: cfg.DefaultVolume,
		DefaultPitch:  cfg.DefaultPitch,
	})
	catalog := voices.NewCatalog(cfg.VoiceListURL, nil)

	api := httpapi.New(cfg, synth, catalog, metrics)
	httpServer := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: api.Router(),
	}

	go func() {
		log.Printf("server listening on %s", cfg.BindAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Printf("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		_ = httpServer.Close()
	}

	log.Printf("shutdown complete")
}
