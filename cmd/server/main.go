package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"voicedesk.app/api-server/core/config"
	"voicedesk.app/api-server/core/db"
	"voicedesk.app/api-server/core/observability"
	"voicedesk.app/api-server/internal/elevenlabs"
	"voicedesk.app/api-server/internal/http/handler"
	"voicedesk.app/api-server/internal/http/middleware"
	"voicedesk.app/api-server/internal/http/router"
	"voicedesk.app/api-server/internal/service"
	"voicedesk.app/api-server/internal/store"
)

const serviceName = "voicedesk-api-server"

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, serviceName, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			slog.Error("failed to shut down telemetry", "error", err)
		}
	}()

	userPool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer userPool.Close()

	servicePool, err := db.NewPool(ctx, cfg.ServiceDatabaseURL)
	if err != nil {
		return err
	}
	defer servicePool.Close()

	userStores := store.New(userPool)
	serviceStores := store.New(servicePool)

	voiceClient, err := elevenlabs.NewClient(cfg.ElevenLabs.APIKey, cfg.ElevenLabs.BaseURL)
	if err != nil {
		return err
	}

	authService := service.NewAuthService(userStores.Users(), userStores.Sessions(), cfg.WorkOS)
	authorizer := service.NewAuthorizer(userStores.Memberships())
	orgService := service.NewOrganizationService(userStores, serviceStores)
	agentService := service.NewAgentService(authorizer, userStores, serviceStores)
	voiceService := service.NewVoiceService(voiceClient)

	limiter := middleware.NewRateLimiter(middleware.RateLimitRequests, middleware.RateLimitWindow)

	engine := router.New(router.Handlers{
		Auth:          handler.NewAuthHandler(authService, cfg.DashboardURL, cfg.IsProduction()),
		Organizations: handler.NewOrganizationHandler(orgService),
		Agents:        handler.NewAgentHandler(agentService),
		Voices:        handler.NewVoiceHandler(voiceService),
	}, authService, limiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
